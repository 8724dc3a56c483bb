package corpus

// Pair is one (vocabulary id, occurrence count) element of a bag-of-words.
//
// Count is a float64 because upstream transformations produce fractional
// weights; the Mallet text format itself can only carry integer counts, so
// fractional values are truncated toward zero on encode.
type Pair struct {
	ID    int
	Count float64
}

// BagOfWords is the sparse representation of one document. Ids are unique
// within a document. Pair order follows the token stream's first-occurrence
// order on decode; it carries no semantic meaning but is preserved.
type BagOfWords []Pair

// DocumentWithMeta pairs a bag-of-words with the two metadata fields of the
// Mallet line format. Both fields are opaque echoes of the source line on
// decode. On encode the written doc-id is always the document's zero-based
// sequence position, never DocID.
type DocumentWithMeta struct {
	BOW   BagOfWords
	DocID string
	Label string
}

// Mapping is the bidirectional token<->id table the codec borrows for the
// duration of one decode or encode call. The codec never mutates it, so a
// single instance may back any number of readers and writers.
type Mapping interface {
	// TokenID returns the id bound to token, with ok=false when absent.
	TokenID(token string) (id int, ok bool)

	// Token returns the token bound to id, with ok=false when absent.
	Token(id int) (token string, ok bool)
}
