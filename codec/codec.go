// Package codec encodes generated values as newline-delimited decimal text
// and frames artifacts with optional compression.
//
// The text format is fixed: one value per line, six decimal places, '\n'
// terminated, identical to printf("%.6f\n"). Changing it changes every
// artifact byte, so it is not configurable.
package codec

import (
	"bufio"
	"io"
	"strconv"
)

// Precision is the number of decimal places written per value.
const Precision = 6

// AppendFloat appends v formatted as a single line to dst.
func AppendFloat(dst []byte, v float64) []byte {
	dst = strconv.AppendFloat(dst, v, 'f', Precision, 64)
	return append(dst, '\n')
}

// Encoder writes values line by line through a buffered writer.
type Encoder struct {
	w       *bufio.Writer
	scratch []byte
	lines   int64
	bytes   int64
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:       bufio.NewWriterSize(w, 64*1024),
		scratch: make([]byte, 0, 32),
	}
}

// Encode writes a single value.
func (e *Encoder) Encode(v float64) error {
	e.scratch = AppendFloat(e.scratch[:0], v)
	n, err := e.w.Write(e.scratch)
	e.bytes += int64(n)
	if err != nil {
		return err
	}
	e.lines++
	return nil
}

// EncodeAll writes every value in order.
func (e *Encoder) EncodeAll(vs []float64) error {
	for _, v := range vs {
		if err := e.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}

// Lines returns the number of values encoded so far.
func (e *Encoder) Lines() int64 { return e.lines }

// Bytes returns the number of text bytes encoded so far, before compression.
func (e *Encoder) Bytes() int64 { return e.bytes }
