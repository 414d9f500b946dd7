package hash

import (
	"hash"
	"hash/crc32"
	"io"
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// Writer forwards writes to an underlying writer while accumulating their
// CRC32C and byte count. Checksums cover the bytes as stored, after any
// compression applied upstream.
type Writer struct {
	w io.Writer
	h hash.Hash32
	n int64
}

// NewWriter returns a Writer forwarding to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, h: crc32.New(crc32cTable)}
}

func (c *Writer) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.h.Write(p[:n])
	c.n += int64(n)
	return n, err
}

// Sum32 returns the checksum of everything written so far.
func (c *Writer) Sum32() uint32 { return c.h.Sum32() }

// Size returns the number of bytes written so far.
func (c *Writer) Size() int64 { return c.n }
