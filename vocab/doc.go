// Package vocab provides the bidirectional token<->id mapping the corpus
// codec borrows: an in-memory Dictionary, a builder that derives a mapping
// from a corpus with no supplied vocabulary, and a checksummed text file
// format for persisting dictionaries alongside their corpora.
package vocab
