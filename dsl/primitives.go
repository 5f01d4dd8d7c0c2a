package dsl

import (
	"bytes"
	"fmt"

	"github.com/reoring/itksn"
)

func truncated(p itksn.PathRef, r *itksn.Reader, want int) error {
	return itksn.IssueAt(p, itksn.CodeTruncated, r.Offset(), "want", want, "got", r.Remaining())
}

func invalidType(p itksn.PathRef, w *itksn.Writer, want string, v itksn.Value) error {
	return itksn.IssueAt(p, itksn.CodeInvalidType, w.Len(), "want", want, "hint", fmt.Sprintf("%T", v))
}

// ---- Enum ----

// EnumCodec is a fixed-width enumerated field.
type EnumCodec struct {
	width  int
	names  []string
	dec    map[string]string
	enc    map[string][]byte
	strict bool
}

// Enum builds a fixed-width enumerated field from alternating name/code
// pairs. When two names share a code, decoding yields the one declared
// first. Enum panics on an odd number of arguments and on a name given
// twice, since decode and encode would disagree on its code.
func Enum(width int, pairs ...string) *EnumCodec {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("dsl.Enum: odd number of name/code arguments (%d)", len(pairs)))
	}
	c := &EnumCodec{
		width: width,
		dec:   make(map[string]string, len(pairs)/2),
		enc:   make(map[string][]byte, len(pairs)/2),
	}
	for i := 0; i < len(pairs); i += 2 {
		name, code := pairs[i], pairs[i+1]
		if _, dup := c.enc[name]; dup {
			panic(fmt.Sprintf("dsl.Enum: name %q given twice (argument %d)", name, i))
		}
		c.names = append(c.names, name)
		c.enc[name] = []byte(code)
		if _, taken := c.dec[code]; !taken {
			c.dec[code] = name
		}
	}
	return c
}

// Strict returns a copy that rejects unknown codes with invalid_enum instead
// of tolerating them.
func (c *EnumCodec) Strict() *EnumCodec {
	cp := *c
	cp.strict = true
	return &cp
}

// Names lists the symbol names in declaration order.
func (c *EnumCodec) Names() []string { return append([]string(nil), c.names...) }

// Code returns the byte code of a symbol name.
func (c *EnumCodec) Code(name string) ([]byte, bool) {
	b, ok := c.enc[name]
	return b, ok
}

// Name returns the symbol that a byte code decodes to.
func (c *EnumCodec) Name(code []byte) (string, bool) {
	n, ok := c.dec[string(code)]
	return n, ok
}

func (c *EnumCodec) Width() int { return c.width }

func (c *EnumCodec) Decode(r *itksn.Reader, _ *itksn.Scope, p itksn.PathRef) (itksn.Value, error) {
	off := r.Offset()
	b, ok := r.Read(c.width)
	if !ok {
		return nil, truncated(p, r, c.width)
	}
	if name, ok := c.dec[string(b)]; ok {
		return itksn.Enum{Name: name, Code: b}, nil
	}
	if c.strict {
		return nil, itksn.IssueAt(p, itksn.CodeInvalidEnum, off, "hint", string(b))
	}
	return itksn.Enum{Code: b}, nil
}

func (c *EnumCodec) Encode(w *itksn.Writer, _ *itksn.Scope, p itksn.PathRef, v itksn.Value) error {
	e, ok := v.(itksn.Enum)
	if !ok {
		return invalidType(p, w, "enum", v)
	}
	code := e.Code
	if e.Name != "" {
		if code, ok = c.enc[e.Name]; !ok {
			return itksn.IssueAt(p, itksn.CodeUnknownSymbol, w.Len(), "hint", e.Name)
		}
	} else if c.strict {
		return itksn.IssueAt(p, itksn.CodeUnknownSymbol, w.Len(), "hint", string(e.Code))
	}
	if len(code) != c.width {
		return itksn.IssueAt(p, itksn.CodeWidthMismatch, w.Len(), "want", c.width, "got", len(code), "hint", string(code))
	}
	w.Write(code)
	return nil
}

// ---- Bytes ----

// BytesCodec passes a fixed number of raw bytes through.
type BytesCodec struct{ n int }

// Bytes is a raw field of n bytes.
func Bytes(n int) *BytesCodec { return &BytesCodec{n: n} }

func (c *BytesCodec) Width() int { return c.n }

func (c *BytesCodec) Decode(r *itksn.Reader, _ *itksn.Scope, p itksn.PathRef) (itksn.Value, error) {
	b, ok := r.Read(c.n)
	if !ok {
		return nil, truncated(p, r, c.n)
	}
	return itksn.Bytes(b), nil
}

func (c *BytesCodec) Encode(w *itksn.Writer, _ *itksn.Scope, p itksn.PathRef, v itksn.Value) error {
	b, ok := v.(itksn.Bytes)
	if !ok {
		return invalidType(p, w, "bytes", v)
	}
	if len(b) != c.n {
		return itksn.IssueAt(p, itksn.CodeWidthMismatch, w.Len(), "want", c.n, "got", len(b))
	}
	w.Write(b)
	return nil
}

// ---- Greedy ----

// GreedyCodec takes every byte of the record not claimed by the fixed-width
// fields declared after it.
type GreedyCodec struct{}

// Greedy is a raw field of variable width; it must be the last variable
// field of a Struct.
func Greedy() *GreedyCodec { return &GreedyCodec{} }

func (*GreedyCodec) Width() int { return -1 }

// Decode outside a Struct consumes everything left in r.
func (c *GreedyCodec) Decode(r *itksn.Reader, sc *itksn.Scope, p itksn.PathRef) (itksn.Value, error) {
	return c.decodeN(r, p, r.Remaining())
}

func (*GreedyCodec) decodeN(r *itksn.Reader, p itksn.PathRef, n int) (itksn.Value, error) {
	if n < 0 {
		return nil, truncated(p, r, r.Remaining()-n)
	}
	b, _ := r.Read(n)
	return itksn.Bytes(b), nil
}

func (*GreedyCodec) Encode(w *itksn.Writer, _ *itksn.Scope, p itksn.PathRef, v itksn.Value) error {
	b, ok := v.(itksn.Bytes)
	if !ok {
		return invalidType(p, w, "bytes", v)
	}
	w.Write(b)
	return nil
}

// ---- Const / OneOf ----

// ConstCodec matches one of a set of literal codes of equal width.
type ConstCodec struct {
	codes [][]byte
	width int
}

// Const matches exactly code.
func Const(code string) *ConstCodec { return OneOf(code) }

// OneOf matches the first of codes that the input equals. All codes must
// have the same width; OneOf panics otherwise.
func OneOf(codes ...string) *ConstCodec {
	if len(codes) == 0 {
		panic("dsl.OneOf: no codes")
	}
	c := &ConstCodec{width: len(codes[0])}
	for _, s := range codes {
		if len(s) != c.width {
			panic(fmt.Sprintf("dsl.OneOf: code %q is not %d bytes wide", s, c.width))
		}
		c.codes = append(c.codes, []byte(s))
	}
	return c
}

func (c *ConstCodec) Width() int { return c.width }

func (c *ConstCodec) match(b []byte) bool {
	for _, code := range c.codes {
		if bytes.Equal(code, b) {
			return true
		}
	}
	return false
}

func (c *ConstCodec) Decode(r *itksn.Reader, _ *itksn.Scope, p itksn.PathRef) (itksn.Value, error) {
	off := r.Offset()
	b, ok := r.Read(c.width)
	if !ok {
		return nil, truncated(p, r, c.width)
	}
	if !c.match(b) {
		return nil, itksn.IssueAt(p, itksn.CodeConstMismatch, off, "want", c.want(), "hint", string(b))
	}
	return itksn.Bytes(b), nil
}

func (c *ConstCodec) Encode(w *itksn.Writer, _ *itksn.Scope, p itksn.PathRef, v itksn.Value) error {
	if v == nil && len(c.codes) == 1 {
		w.Write(c.codes[0])
		return nil
	}
	b, ok := v.(itksn.Bytes)
	if !ok {
		return invalidType(p, w, "bytes", v)
	}
	if !c.match(b) {
		return itksn.IssueAt(p, itksn.CodeConstMismatch, w.Len(), "want", c.want(), "hint", string(b))
	}
	w.Write(b)
	return nil
}

func (c *ConstCodec) want() string {
	parts := make([][]byte, len(c.codes))
	copy(parts, c.codes)
	return string(bytes.Join(parts, []byte("|")))
}
