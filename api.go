package itksn

// Codec decodes and encodes one node of the serial-number grammar.
//
// Decode consumes bytes from r and returns the decoded value. sc is the
// scope of the enclosing record: it holds the siblings decoded so far and
// links to the ancestors. p is the path of the node, used to place Issues.
//
// Encode is the mirror: it writes v to w, seeing the same scope as Decode
// would have seen.
type Codec interface {
	Decode(r *Reader, sc *Scope, p PathRef) (Value, error)
	Encode(w *Writer, sc *Scope, p PathRef, v Value) error
	// Width reports the fixed number of bytes the codec consumes, or -1 when
	// it depends on the input.
	Width() int
}

// DecodeAll decodes b with c and fails with CodeTrailingData when bytes are
// left over.
func DecodeAll(c Codec, b []byte) (Value, error) {
	r := NewReader(b)
	v, err := c.Decode(r, nil, Root())
	if err != nil {
		return nil, err
	}
	if n := r.Remaining(); n > 0 {
		return nil, IssueAt(Root(), CodeTrailingData, r.Offset(), "got", n, "hint", string(b[r.Offset():]))
	}
	return v, nil
}

// EncodeAll encodes v with c.
func EncodeAll(c Codec, v Value) ([]byte, error) {
	w := &Writer{}
	if err := c.Encode(w, nil, Root(), v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
