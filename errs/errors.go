// Package errs defines the sentinel errors shared across the mallet packages.
//
// Call sites wrap these with fmt.Errorf("%w: detail", errs.ErrXxx) so callers
// can match with errors.Is while still getting contextual detail.
package errs

import "errors"

var (
	// ErrMalformedLine indicates a corpus line with fewer than the two
	// mandatory fields (document id and label) after whitespace splitting.
	ErrMalformedLine = errors.New("malformed corpus line: need at least 2 fields")

	// ErrNilMapping indicates a nil token mapping was passed where one is required.
	ErrNilMapping = errors.New("nil token mapping")

	// ErrUnknownID indicates an id with no token in the mapping during encoding.
	ErrUnknownID = errors.New("id not present in mapping")

	// ErrWriterClosed indicates a write attempt on a closed corpus writer.
	ErrWriterClosed = errors.New("corpus writer is closed")

	// ErrNegativeOffset indicates a negative byte offset passed to a
	// random-access document lookup.
	ErrNegativeOffset = errors.New("negative document offset")

	// ErrNotSeekable indicates a source that cannot support random access,
	// typically because it is compressed.
	ErrNotSeekable = errors.New("source does not support random access")

	// ErrUnknownCompression indicates a compression type with no registered codec.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrInvalidToken indicates an empty or whitespace-carrying token,
	// which cannot survive the space-separated line format.
	ErrInvalidToken = errors.New("invalid token")

	// ErrDuplicateID indicates an attempt to bind two tokens to the same id.
	ErrDuplicateID = errors.New("id already bound to another token")

	// ErrDuplicateToken indicates an attempt to bind one token to two ids.
	ErrDuplicateToken = errors.New("token already bound to another id")

	// ErrMalformedDictionary indicates a dictionary file that does not parse.
	ErrMalformedDictionary = errors.New("malformed dictionary file")

	// ErrChecksumMismatch indicates a dictionary file whose checksum footer
	// does not match its entries.
	ErrChecksumMismatch = errors.New("dictionary checksum mismatch")
)
