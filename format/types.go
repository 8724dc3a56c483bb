package format

import (
	"path/filepath"
	"strings"
)

// Compression identifies the transparent compression applied to a corpus file.
type Compression uint8

const (
	CompressionNone Compression = 0x1 // CompressionNone represents plain, uncompressed text.
	CompressionGzip Compression = 0x2 // CompressionGzip represents gzip compression.
	CompressionZstd Compression = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   Compression = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4  Compression = 0x5 // CompressionLZ4 represents LZ4 frame compression.
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file name extension conventionally used for this
// compression type, or the empty string for CompressionNone.
func (c Compression) Extension() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// DetectCompression returns the compression type implied by the file name
// extension. Unrecognized extensions map to CompressionNone, so plain corpus
// files need no special casing.
func DetectCompression(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
