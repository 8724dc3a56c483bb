package corpus

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpuskit/mallet/errs"
)

func TestWriterLineRendering(t *testing.T) {
	dict := newTestDict("cat", "dog")

	t.Run("tokens repeat count times", func(t *testing.T) {
		var sink bytes.Buffer
		w, err := NewWriter(&sink, dict)
		require.NoError(t, err)

		require.NoError(t, w.WriteDocument(BagOfWords{{ID: 0, Count: 2}, {ID: 1, Count: 1}}))
		require.NoError(t, w.Close())

		require.Equal(t, "0 __unknown__ cat cat dog\n", sink.String())
		require.Equal(t, []int64{0}, w.Offsets())
	})

	t.Run("doc-id is the write index, label defaults", func(t *testing.T) {
		var sink bytes.Buffer
		w, err := NewWriter(&sink, dict)
		require.NoError(t, err)

		require.NoError(t, w.WriteDocument(BagOfWords{{ID: 0, Count: 1}}))
		require.NoError(t, w.WriteDocument(BagOfWords{{ID: 1, Count: 1}}))
		require.NoError(t, w.Close())

		require.Equal(t, "0 __unknown__ cat\n1 __unknown__ dog\n", sink.String())
	})

	t.Run("metadata supplies the label but never the doc-id", func(t *testing.T) {
		var sink bytes.Buffer
		w, err := NewWriter(&sink, dict)
		require.NoError(t, err)

		doc := DocumentWithMeta{BOW: BagOfWords{{ID: 1, Count: 2}}, DocID: "ignored", Label: "en"}
		require.NoError(t, w.WriteDocumentWithMeta(doc))
		require.NoError(t, w.Close())

		require.Equal(t, "0 en dog dog\n", sink.String())
	})

	t.Run("empty label falls back to the placeholder", func(t *testing.T) {
		var sink bytes.Buffer
		w, err := NewWriter(&sink, dict)
		require.NoError(t, err)

		require.NoError(t, w.WriteDocumentWithMeta(DocumentWithMeta{BOW: BagOfWords{{ID: 0, Count: 1}}}))
		require.NoError(t, w.Close())

		require.Equal(t, "0 __unknown__ cat\n", sink.String())
	})

	t.Run("empty document still writes a line", func(t *testing.T) {
		var sink bytes.Buffer
		w, err := NewWriter(&sink, dict)
		require.NoError(t, err)

		require.NoError(t, w.WriteDocument(BagOfWords{}))
		require.NoError(t, w.Close())

		require.Equal(t, "0 __unknown__ \n", sink.String())

		// The empty line still decodes to an empty bag.
		doc, err := ParseLine(strings.TrimSuffix(sink.String(), "\n"), dict)
		require.NoError(t, err)
		require.Empty(t, doc.BOW)
	})

	t.Run("unknown id aborts the write", func(t *testing.T) {
		var sink bytes.Buffer
		w, err := NewWriter(&sink, dict)
		require.NoError(t, err)

		err = w.WriteDocument(BagOfWords{{ID: 99, Count: 1}})
		require.ErrorIs(t, err, errs.ErrUnknownID)
		require.Empty(t, w.Offsets())
	})
}

func TestWriterOffsets(t *testing.T) {
	dict := newTestDict("cat", "dog")

	var sink bytes.Buffer
	w, err := NewWriter(&sink, dict)
	require.NoError(t, err)

	docs := []BagOfWords{
		{{ID: 0, Count: 3}},
		{{ID: 1, Count: 1}, {ID: 0, Count: 1}},
		{},
	}
	for _, doc := range docs {
		require.NoError(t, w.WriteDocument(doc))
	}
	require.NoError(t, w.Close())

	offsets := w.Offsets()
	require.Len(t, offsets, len(docs))

	// Each offset must point at the start of its document's line.
	data := sink.Bytes()
	for i, off := range offsets {
		rest := string(data[off:])
		line := rest[:strings.IndexByte(rest, '\n')]
		doc, err := ParseLine(line, dict)
		require.NoError(t, err)
		require.Equal(t, docs[i], doc.BOW, "document %d", i)
	}
}

func TestWriterTruncation(t *testing.T) {
	dict := newTestDict("cat", "dog")

	t.Run("fractional counts truncate toward zero with one aggregate warning", func(t *testing.T) {
		var sink, logBuf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logBuf, nil))

		w, err := NewWriter(&sink, dict, WithLogger(logger))
		require.NoError(t, err)

		require.NoError(t, w.WriteDocument(BagOfWords{{ID: 0, Count: 2.7}}))
		require.NoError(t, w.WriteDocument(BagOfWords{{ID: 1, Count: 1.5}}))
		require.NoError(t, w.Close())

		require.Equal(t, "0 __unknown__ cat cat\n1 __unknown__ dog\n", sink.String())
		require.Equal(t, 2, w.Truncated())

		logLines := strings.Split(strings.TrimSpace(logBuf.String()), "\n")
		require.Len(t, logLines, 1, "exactly one aggregate warning per encode")
		require.Contains(t, logLines[0], "truncated=2")
		require.Contains(t, logLines[0], "level=WARN")
	})

	t.Run("near-integer counts within tolerance are not tallied", func(t *testing.T) {
		var sink, logBuf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logBuf, nil))

		w, err := NewWriter(&sink, dict, WithLogger(logger))
		require.NoError(t, err)

		require.NoError(t, w.WriteDocument(BagOfWords{{ID: 0, Count: 3.0000001}}))
		require.NoError(t, w.Close())

		require.Equal(t, "0 __unknown__ cat cat cat\n", sink.String())
		require.Zero(t, w.Truncated())
		require.Empty(t, logBuf.String())
	})
}

func TestWriterClosed(t *testing.T) {
	dict := newTestDict("cat")

	var sink bytes.Buffer
	w, err := NewWriter(&sink, dict)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "double close is a no-op")

	err = w.WriteDocument(BagOfWords{{ID: 0, Count: 1}})
	require.ErrorIs(t, err, errs.ErrWriterClosed)
}

func TestNewWriterValidation(t *testing.T) {
	var sink bytes.Buffer

	_, err := NewWriter(&sink, nil)
	require.ErrorIs(t, err, errs.ErrNilMapping)

	_, err = NewWriter(&sink, newTestDict("cat"), WithLogger(nil))
	require.Error(t, err)
}

func TestSerialize(t *testing.T) {
	dict := newTestDict("cat", "dog")

	t.Run("writes all documents and returns offsets", func(t *testing.T) {
		fname := filepath.Join(t.TempDir(), "corpus.mallet")
		docs := []BagOfWords{
			{{ID: 0, Count: 2}, {ID: 1, Count: 1}},
			{{ID: 1, Count: 1}},
		}

		offsets, err := Serialize(fname, docs, dict)
		require.NoError(t, err)
		require.Equal(t, []int64{0, 26}, offsets)

		data, err := os.ReadFile(fname)
		require.NoError(t, err)
		require.Equal(t, "0 __unknown__ cat cat dog\n1 __unknown__ dog\n", string(data))
	})

	t.Run("metadata mode writes supplied labels", func(t *testing.T) {
		fname := filepath.Join(t.TempDir(), "corpus.mallet")
		docs := []DocumentWithMeta{
			{BOW: BagOfWords{{ID: 0, Count: 1}}, DocID: "a", Label: "en"},
			{BOW: BagOfWords{{ID: 1, Count: 1}}, DocID: "b", Label: "fr"},
		}

		_, err := SerializeWithMeta(fname, docs, dict)
		require.NoError(t, err)

		data, err := os.ReadFile(fname)
		require.NoError(t, err)
		require.Equal(t, "0 en cat\n1 fr dog\n", string(data))
	})

	t.Run("unknown id reports the failing document", func(t *testing.T) {
		fname := filepath.Join(t.TempDir(), "corpus.mallet")
		docs := []BagOfWords{
			{{ID: 0, Count: 1}},
			{{ID: 7, Count: 1}},
		}

		_, err := Serialize(fname, docs, dict)
		require.ErrorIs(t, err, errs.ErrUnknownID)
		require.Contains(t, err.Error(), "document 1")
	})
}
