package corpus

import (
	"fmt"
	"strings"

	"github.com/corpuskit/mallet/errs"
)

// UnknownLabel is the placeholder written as the label field when a document
// carries no metadata.
const UnknownLabel = "__unknown__"

// ParseLine decodes one corpus line into a bag-of-words with its metadata.
//
// The line is stripped of surrounding whitespace and split on spaces;
// consecutive separators produce empty fields, which are discarded. The first
// field is the doc-id and the second the label; fewer than two fields yield
// errs.ErrMalformedLine. The remaining fields form the token stream, reduced
// to (id, count) pairs via dict. Tokens absent from dict are silently
// dropped.
//
// ParseLine has no side effects and never modifies dict.
func ParseLine(line string, dict Mapping) (DocumentWithMeta, error) {
	if dict == nil {
		return DocumentWithMeta{}, errs.ErrNilMapping
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return DocumentWithMeta{}, fmt.Errorf("%w: %q", errs.ErrMalformedLine, line)
	}

	return DocumentWithMeta{
		BOW:   tokensToBagOfWords(fields[2:], dict),
		DocID: fields[0],
		Label: fields[1],
	}, nil
}

// tokensToBagOfWords groups equal tokens and emits one (id, count) pair per
// distinct token in first-occurrence order, skipping tokens without an id.
func tokensToBagOfWords(tokens []string, dict Mapping) BagOfWords {
	if len(tokens) == 0 {
		return BagOfWords{}
	}

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	bow := make(BagOfWords, 0, len(order))
	for _, tok := range order {
		if id, ok := dict.TokenID(tok); ok {
			bow = append(bow, Pair{ID: id, Count: float64(counts[tok])})
		}
	}

	return bow
}
