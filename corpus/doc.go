// Package corpus implements the Mallet instance format codec: streaming
// decode of line-oriented corpora into bag-of-words documents, streaming
// encode with a recorded offset table, and offset-indexed random access to
// single documents.
//
// # Format
//
// One document per line, UTF-8, newline-terminated:
//
//	<doc-id> <label> <token> <token> ... <token>\n
//
// Fields are space-separated; repeated tokens carry the occurrence count (the
// format has no explicit count field). The doc-id and label fields are opaque
// on decode. On encode the doc-id is always the document's zero-based
// position in the written sequence, and the label defaults to UnknownLabel
// when no metadata is supplied.
//
// # Decoding
//
//	dict, _ := vocab.Load("corpus.vocab")
//	r, _ := corpus.NewReader("corpus.mallet", dict)
//	for bow, err := range r.Documents() {
//	    if err != nil {
//	        return err
//	    }
//	    process(bow)
//	}
//
// # Encoding
//
//	offsets, err := corpus.Serialize("corpus.mallet", docs, dict)
//
// The returned offset table enables later random access through
// Reader.DocumentAt. Offsets are only byte-addressable on uncompressed
// corpus files.
package corpus
