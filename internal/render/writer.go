package render

import (
	"bytes"

	"github.com/mattn/go-runewidth"
)

// writer accumulates the formatted output. Besides the byte buffer it tracks,
// per token, the offset just past the token's rendered text, so that the
// trailing-comma pass can edit already-emitted text at exact positions
// without rescanning the buffer.
type writer struct {
	buf  []byte
	ends []int
}

func newWriter(numTokens, capacity int) *writer {
	ends := make([]int, numTokens)
	for i := range ends {
		ends[i] = -1
	}
	return &writer{buf: make([]byte, 0, capacity), ends: ends}
}

func (w *writer) writeToken(i int, text string) {
	w.buf = append(w.buf, text...)
	w.ends[i] = len(w.buf)
}

func (w *writer) append(s string) {
	w.buf = append(w.buf, s...)
}

func (w *writer) len() int { return len(w.buf) }

func (w *writer) String() string { return string(w.buf) }

// tokenEnd returns the offset just past token i's rendered text, or -1 if the
// token has not been emitted yet.
func (w *writer) tokenEnd(i int) int {
	if i < 0 || i >= len(w.ends) {
		return -1
	}
	return w.ends[i]
}

// column returns the horizontal position at the end of the buffer, measured
// as the display width of the text since the last emitted newline. Display
// width rather than byte count keeps margin columns honest when wide or
// multibyte runes precede a margin string on the line.
func (w *writer) column() int {
	line := w.buf
	if i := bytes.LastIndexByte(w.buf, '\n'); i >= 0 {
		line = w.buf[i+1:]
	}
	return runewidth.StringWidth(string(line))
}

// overwrite replaces the byte at pos in place. Token offsets are unaffected.
func (w *writer) overwrite(pos int, b byte) {
	if pos < 0 || pos >= len(w.buf) {
		return
	}
	w.buf[pos] = b
}

// insert shifts the emitted text after pos right by one byte.
func (w *writer) insert(pos int, b byte) {
	if pos < 0 || pos > len(w.buf) {
		return
	}
	w.buf = append(w.buf, 0)
	copy(w.buf[pos+1:], w.buf[pos:])
	w.buf[pos] = b
	for i, end := range w.ends {
		if end > pos {
			w.ends[i] = end + 1
		}
	}
}

// deleteByte removes the byte at pos, shifting the emitted text after it.
func (w *writer) deleteByte(pos int) {
	if pos < 0 || pos >= len(w.buf) {
		return
	}
	copy(w.buf[pos:], w.buf[pos+1:])
	w.buf = w.buf[:len(w.buf)-1]
	for i, end := range w.ends {
		if end > pos {
			w.ends[i] = end - 1
		}
	}
}
