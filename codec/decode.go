package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SyntaxError reports a line that does not start with a decimal value.
type SyntaxError struct {
	Line  int
	Text  string
	cause error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("codec: line %d: invalid value %q", e.Line, e.Text)
}

func (e *SyntaxError) Unwrap() error { return e.cause }

// Decoder reads one value per line.
//
// Blank lines are skipped. Only the first field of a line is used, fields
// being separated by any of ",; \t", so single-column CSV and
// whitespace-separated files both decode.
type Decoder struct {
	s    *bufio.Scanner
	line int
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 8192), 1024*1024)
	return &Decoder{s: s}
}

// Decode returns the next value, or io.EOF when the input is exhausted.
func (d *Decoder) Decode() (float64, error) {
	for d.s.Scan() {
		d.line++
		text := d.s.Text()
		field := firstField(text)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return 0, &SyntaxError{Line: d.line, Text: field, cause: err}
		}
		return v, nil
	}
	if err := d.s.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}

func firstField(line string) string {
	line = strings.TrimLeft(line, ",; \t\r")
	if i := strings.IndexAny(line, ",; \t\r"); i >= 0 {
		line = line[:i]
	}
	return line
}

// ReadAll decodes every value from r.
func ReadAll(r io.Reader) ([]float64, error) {
	d := NewDecoder(r)
	var out []float64
	for {
		v, err := d.Decode()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}
