package itksn

// Reader is a forward-only cursor over a serial number.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of b.
func NewReader(b []byte) *Reader { return &Reader{buf: b} }

// Offset is the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining is the number of bytes not yet consumed.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Read consumes n bytes. It returns false, consuming nothing, when fewer
// than n bytes remain. The returned slice is a copy.
func (r *Reader) Read(n int) ([]byte, bool) {
	if n < 0 || r.Remaining() < n {
		return nil, false
	}
	out := make([]byte, n)
	copy(out, r.buf[r.off:r.off+n])
	r.off += n
	return out, true
}

// PeekAt returns n bytes starting at the absolute offset at without
// consuming anything.
func (r *Reader) PeekAt(at, n int) ([]byte, bool) {
	if at < 0 || n < 0 || at+n > len(r.buf) {
		return nil, false
	}
	out := make([]byte, n)
	copy(out, r.buf[at:at+n])
	return out, true
}

// Writer accumulates encoded bytes.
type Writer struct {
	buf []byte
}

// Write appends b.
func (w *Writer) Write(b []byte) { w.buf = append(w.buf, b...) }

// Len is the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte { return w.buf }

// Slice returns the written bytes in [from, from+n) when available.
func (w *Writer) Slice(from, n int) ([]byte, bool) {
	if from < 0 || n < 0 || from+n > len(w.buf) {
		return nil, false
	}
	return w.buf[from : from+n], true
}
