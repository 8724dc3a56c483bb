package vocab

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/corpuskit/mallet/corpus"
	"github.com/corpuskit/mallet/errs"
)

// Dictionary is an in-memory bidirectional token<->id table.
//
// Ids are non-negative and need not be contiguous. A Dictionary is safe to
// share across any number of readers and writers as long as no goroutine
// mutates it concurrently; the corpus codec itself never mutates one.
type Dictionary struct {
	token2id map[string]int
	id2token map[int]string
	nextID   int
}

var _ corpus.Mapping = (*Dictionary)(nil)

// New creates an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{
		token2id: make(map[string]int),
		id2token: make(map[int]string),
	}
}

// Add returns the id bound to token, assigning the lowest unused id on first
// sight. Tokens must be non-empty and free of whitespace, since whitespace
// cannot survive the space-separated line format.
func (d *Dictionary) Add(token string) (int, error) {
	if err := validateToken(token); err != nil {
		return 0, err
	}

	if id, ok := d.token2id[token]; ok {
		return id, nil
	}

	id := d.nextID
	d.bind(token, id)

	return id, nil
}

// Set binds token to a specific non-negative id. Rebinding an id to a
// different token fails with errs.ErrDuplicateID, and rebinding a token to a
// different id fails with errs.ErrDuplicateToken; setting an existing pair
// again is a no-op.
func (d *Dictionary) Set(token string, id int) error {
	if err := validateToken(token); err != nil {
		return err
	}
	if id < 0 {
		return fmt.Errorf("id must be non-negative, got %d", id)
	}

	if existing, ok := d.id2token[id]; ok && existing != token {
		return fmt.Errorf("%w: id %d -> %q", errs.ErrDuplicateID, id, existing)
	}
	if existing, ok := d.token2id[token]; ok && existing != id {
		return fmt.Errorf("%w: %q -> id %d", errs.ErrDuplicateToken, token, existing)
	}

	d.bind(token, id)

	return nil
}

func (d *Dictionary) bind(token string, id int) {
	d.token2id[token] = id
	d.id2token[id] = token
	if id >= d.nextID {
		d.nextID = id + 1
	}
}

// TokenID returns the id bound to token, with ok=false when absent.
func (d *Dictionary) TokenID(token string) (int, bool) {
	id, ok := d.token2id[token]
	return id, ok
}

// Token returns the token bound to id, with ok=false when absent.
func (d *Dictionary) Token(id int) (string, bool) {
	token, ok := d.id2token[id]
	return token, ok
}

// Len returns the number of token<->id bindings.
func (d *Dictionary) Len() int {
	return len(d.token2id)
}

// IDs returns all bound ids in ascending order.
func (d *Dictionary) IDs() []int {
	ids := make([]int, 0, len(d.id2token))
	for id := range d.id2token {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// FromCorpus derives a Mapping for a corpus that has no vocabulary: every id
// in [0, maxID] maps to its own decimal rendering, so encoding the same
// corpus can never hit an unresolved id. An empty corpus yields an empty
// dictionary.
func FromCorpus(docs []corpus.BagOfWords) *Dictionary {
	maxID := -1
	for _, doc := range docs {
		for _, p := range doc {
			if p.ID > maxID {
				maxID = p.ID
			}
		}
	}

	d := New()
	for id := 0; id <= maxID; id++ {
		// Generated tokens are valid and unique, so Set cannot fail.
		_ = d.Set(strconv.Itoa(id), id)
	}

	return d
}

func validateToken(token string) error {
	if token == "" || strings.IndexFunc(token, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", errs.ErrInvalidToken, token)
	}

	return nil
}
