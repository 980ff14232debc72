package pricesync

import (
	"bytes"
	"io"
	"strings"
)

// revChunk is the read size of the backward scan. One chunk is enough for
// any sane ledger line, but lines longer than a chunk are still assembled
// correctly across reads.
const revChunk = 4096

// ReverseScanner yields the lines of an io.ReaderAt from the last to the
// first, reading the underlying source backward in fixed-size chunks. It
// never holds more than the unconsumed tail in memory, which is what makes
// reading the last line of an unbounded ledger cheap.
//
// The usage mirrors bufio.Scanner:
//
//	s := NewReverseScanner(f, size)
//	for s.Scan() {
//		line := s.Text()
//	}
//	if err := s.Err(); err != nil { ... }
type ReverseScanner struct {
	r       io.ReaderAt
	offset  int64  // lower bound of the bytes not yet read from r
	buf     []byte // bytes read but not yet emitted as lines
	line    string
	err     error
	pending bool // a line (possibly empty) remains to be emitted
}

// NewReverseScanner returns a scanner over the first size bytes of r.
func NewReverseScanner(r io.ReaderAt, size int64) *ReverseScanner {
	s := &ReverseScanner{r: r, offset: size, pending: size > 0}
	// A trailing newline terminates the last line, it does not open an
	// extra empty one. Consuming it here keeps Scan simple.
	s.fill()
	if n := len(s.buf); s.err == nil && n > 0 && s.buf[n-1] == '\n' {
		s.buf = s.buf[:n-1]
	}
	return s
}

// fill prepends one more chunk from the source to the buffer.
func (s *ReverseScanner) fill() {
	if s.err != nil || s.offset == 0 {
		return
	}
	n := int64(revChunk)
	if s.offset < n {
		n = s.offset
	}
	chunk := make([]byte, n, n+int64(len(s.buf)))
	if _, err := s.r.ReadAt(chunk, s.offset-n); err != nil {
		s.err = err
		return
	}
	s.offset -= n
	s.buf = append(chunk, s.buf...)
}

// Scan advances the scanner to the previous line, which is then available
// through Text. It returns false when the scan has passed the first line of
// the source or reading failed.
func (s *ReverseScanner) Scan() bool {
	if s.err != nil || !s.pending {
		return false
	}
	for {
		if i := bytes.LastIndexByte(s.buf, '\n'); i >= 0 {
			// The bytes before the newline are still at least one line.
			s.line = text(s.buf[i+1:])
			s.buf = s.buf[:i]
			return true
		}
		if s.offset == 0 {
			// Whatever remains is the first line of the source.
			s.line = text(s.buf)
			s.buf = nil
			s.pending = false
			return true
		}
		s.fill()
		if s.err != nil {
			return false
		}
	}
}

// Text returns the line reached by the last call to Scan, without its line
// terminator. A "\r\n" terminator is consumed entirely.
func (s *ReverseScanner) Text() string { return s.line }

// Err returns the first error encountered while reading the source.
func (s *ReverseScanner) Err() error { return s.err }

// text converts a line's bytes dropping a trailing carriage return.
func text(b []byte) string { return strings.TrimSuffix(string(b), "\r") }
