// Package mallet reads and writes text corpora in the Mallet instance
// format: one document per line, each line carrying a document id, a label,
// and the document's tokens.
//
//	<doc-id> <label> <token> <token> ... <token>\n
//
// Documents are converted to and from a sparse bag-of-words representation
// (vocabulary id, occurrence count) through a bidirectional token<->id
// mapping. Counts are implicit in token repetition; the format has no count
// field.
//
// # Core Features
//
//   - Streaming, lazy decode of corpora into bag-of-words documents,
//     with or without per-document (doc-id, label) metadata
//   - Streaming encode with a recorded byte-offset table per document
//   - Exact random access to single documents by recorded offset
//   - Transparent gzip/zstd/s2/lz4 compression by file name extension
//   - Checksummed dictionary persistence
//
// # Basic Usage
//
// Encoding a corpus:
//
//	docs := []corpus.BagOfWords{
//	    {{ID: 0, Count: 2}, {ID: 1, Count: 1}},
//	}
//	offsets, err := mallet.Serialize("corpus.mallet", docs, dict)
//
// Decoding:
//
//	r, err := mallet.Open("corpus.mallet", dict)
//	for bow, err := range r.Documents() {
//	    ...
//	}
//
// Random access:
//
//	bow, err := r.DocumentAt(offsets[3])
//
// This package provides thin wrappers over the corpus and vocab packages,
// which expose the full API.
package mallet

import (
	"log/slog"

	"github.com/corpuskit/mallet/corpus"
	"github.com/corpuskit/mallet/vocab"
)

// Open creates a reader over the named corpus file. See corpus.NewReader.
func Open(fname string, dict corpus.Mapping, opts ...corpus.ReaderOption) (*corpus.Reader, error) {
	return corpus.NewReader(fname, dict, opts...)
}

// Serialize writes docs to the named file with label corpus.UnknownLabel and
// returns the offset table. When dict is nil, a mapping is first derived
// from the corpus itself (every id maps to its decimal rendering), which is
// why docs is a slice: the sequence is traversed twice.
func Serialize(fname string, docs []corpus.BagOfWords, dict corpus.Mapping, opts ...corpus.WriterOption) ([]int64, error) {
	if dict == nil {
		slog.Info("no token mapping provided; deriving one from the corpus")
		dict = vocab.FromCorpus(docs)
	}

	return corpus.Serialize(fname, docs, dict, opts...)
}

// SerializeWithMeta writes docs with their labels and returns the offset
// table. Written doc-ids are the zero-based sequence positions regardless of
// each document's DocID field. A nil dict is derived from the corpus as in
// Serialize.
func SerializeWithMeta(fname string, docs []corpus.DocumentWithMeta, dict corpus.Mapping, opts ...corpus.WriterOption) ([]int64, error) {
	if dict == nil {
		bows := make([]corpus.BagOfWords, len(docs))
		for i, doc := range docs {
			bows[i] = doc.BOW
		}

		slog.Info("no token mapping provided; deriving one from the corpus")
		dict = vocab.FromCorpus(bows)
	}

	return corpus.SerializeWithMeta(fname, docs, dict, opts...)
}
