// Package stream provides the byte-stream capability the corpus codec reads
// from and writes to: opening corpus files with transparent compression
// detected from the file name extension, seekable access for offset-based
// document lookups, and a counting writer that reports write positions.
//
// Supported compression formats:
//   - None: plain UTF-8 text, the only format supporting random access
//   - Gzip: .gz (klauspost/compress/gzip)
//   - Zstd: .zst (klauspost/compress/zstd, or valyala/gozstd with the gozstd build tag)
//   - S2:   .s2  (klauspost/compress/s2)
//   - LZ4:  .lz4 (pierrec/lz4)
//
// All returned readers and writers own the underlying file: Close releases
// both the compression wrapper and the file handle, in that order.
package stream
