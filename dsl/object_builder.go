package dsl

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/reoring/itksn"
)

type fieldKind int

const (
	kindPlain fieldKind = iota
	kindOptional
	kindComputed
	kindPeek
)

type structField struct {
	name    string
	kind    fieldKind
	codec   itksn.Codec
	present func(*itksn.Scope) bool
	compute func(*itksn.Scope) (itksn.Value, error)
	offset  int // kindPeek: relative to the record start
	width   int // kindPeek
}

type structBuilder struct {
	fields []structField
}

// Struct creates a new record builder.
func Struct() *structBuilder {
	return &structBuilder{}
}

// Field appends a field decoded by c.
func (b *structBuilder) Field(name string, c itksn.Codec) *structBuilder {
	b.fields = append(b.fields, structField{name: name, kind: kindPlain, codec: c})
	return b
}

// OptionalIf appends a field that is only present when present reports true
// for the siblings decoded so far. An absent field holds a nil value and
// consumes nothing.
func (b *structBuilder) OptionalIf(name string, present func(*itksn.Scope) bool, c itksn.Codec) *structBuilder {
	b.fields = append(b.fields, structField{name: name, kind: kindOptional, codec: c, present: present})
	return b
}

// Computed appends a field derived from the siblings decoded so far. It is
// never read from nor written to the bytes.
func (b *structBuilder) Computed(name string, fn func(*itksn.Scope) (itksn.Value, error)) *structBuilder {
	b.fields = append(b.fields, structField{name: name, kind: kindComputed, compute: fn})
	return b
}

// Peek appends a view of width raw bytes at offset from the start of the
// record. The bytes belong to a later field; the view only makes them
// available as a discriminant ahead of time.
func (b *structBuilder) Peek(name string, offset, width int) *structBuilder {
	b.fields = append(b.fields, structField{name: name, kind: kindPeek, offset: offset, width: width})
	return b
}

// Build validates the layout and returns the codec. A Greedy field must only
// be followed by fixed-width fields.
func (b *structBuilder) Build() (*StructCodec, error) {
	seen := map[string]struct{}{}
	greedy := -1
	for i, f := range b.fields {
		if _, dup := seen[f.name]; dup {
			return nil, fmt.Errorf("dsl.Struct: duplicate field %q", f.name)
		}
		seen[f.name] = struct{}{}
		if f.codec == nil {
			continue
		}
		if _, ok := f.codec.(*GreedyCodec); ok {
			if greedy >= 0 {
				return nil, fmt.Errorf("dsl.Struct: second greedy field %q", f.name)
			}
			greedy = i
			continue
		}
		if greedy >= 0 && (f.kind == kindOptional || f.codec.Width() < 0) {
			return nil, fmt.Errorf("dsl.Struct: variable-width field %q after greedy field %q", f.name, b.fields[greedy].name)
		}
	}
	fields := append([]structField(nil), b.fields...)
	return &StructCodec{fields: fields}, nil
}

// MustBuild is like Build but panics on an invalid layout. It is meant for
// static schema tables.
func (b *structBuilder) MustBuild() *StructCodec {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

// StructCodec is an ordered record of named fields.
type StructCodec struct {
	fields []structField
}

// FieldNames lists the declared field names in order.
func (c *StructCodec) FieldNames() []string {
	out := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		out = append(out, f.name)
	}
	return out
}

func (c *StructCodec) Width() int {
	total := 0
	for _, f := range c.fields {
		switch f.kind {
		case kindComputed, kindPeek:
			continue
		case kindOptional:
			return -1
		}
		w := f.codec.Width()
		if w < 0 {
			return -1
		}
		total += w
	}
	return total
}

// tail is the number of bytes claimed by the fields after index i.
func (c *StructCodec) tail(i int) int {
	n := 0
	for _, f := range c.fields[i+1:] {
		if f.kind == kindPlain {
			n += f.codec.Width()
		}
	}
	return n
}

func (c *StructCodec) Decode(r *itksn.Reader, parent *itksn.Scope, p itksn.PathRef) (itksn.Value, error) {
	rec := &itksn.Record{}
	sc := itksn.NewScope(parent, rec, r.Offset())
	for i, f := range c.fields {
		fp := p.Field(f.name)
		switch f.kind {
		case kindComputed:
			v, err := f.compute(sc)
			if err != nil {
				return nil, computeIssue(fp, r.Offset(), err)
			}
			rec.Append(itksn.Field{Name: f.name, Value: v, Computed: true})
			continue
		case kindPeek:
			b, ok := r.PeekAt(sc.Start()+f.offset, f.width)
			if !ok {
				return nil, itksn.IssueAt(fp, itksn.CodeTruncated, sc.Start()+f.offset, "want", f.width)
			}
			rec.Append(itksn.Field{Name: f.name, Value: itksn.Bytes(b), View: true})
			continue
		case kindOptional:
			if !f.present(sc) {
				rec.Append(itksn.Field{Name: f.name, Value: nil})
				continue
			}
		}
		var (
			v   itksn.Value
			err error
		)
		if g, ok := f.codec.(*GreedyCodec); ok {
			v, err = g.decodeN(r, fp, r.Remaining()-c.tail(i))
		} else {
			v, err = f.codec.Decode(r, sc, fp)
		}
		if err != nil {
			return nil, err
		}
		rec.Append(itksn.Field{Name: f.name, Value: v})
	}
	return rec, nil
}

type pendingView struct {
	name  string
	at    int
	value itksn.Bytes
}

func (c *StructCodec) Encode(w *itksn.Writer, parent *itksn.Scope, p itksn.PathRef, v itksn.Value) error {
	in, ok := v.(*itksn.Record)
	if !ok {
		return invalidType(p, w, "record", v)
	}
	rec := &itksn.Record{}
	sc := itksn.NewScope(parent, rec, w.Len())
	var views []pendingView
	for _, f := range c.fields {
		fp := p.Field(f.name)
		switch f.kind {
		case kindComputed:
			// re-derived from the siblings; whatever the input holds is ignored
			cv, err := f.compute(sc)
			if err != nil {
				return computeIssue(fp, w.Len(), err)
			}
			rec.Append(itksn.Field{Name: f.name, Value: cv, Computed: true})
			continue
		case kindPeek:
			fv, ok := in.Get(f.name)
			if !ok {
				return itksn.IssueAt(fp, itksn.CodeRequired, w.Len())
			}
			b, ok := fv.(itksn.Bytes)
			if !ok {
				return invalidType(fp, w, "bytes", fv)
			}
			views = append(views, pendingView{name: f.name, at: sc.Start() + f.offset, value: b})
			rec.Append(itksn.Field{Name: f.name, Value: b, View: true})
			continue
		case kindOptional:
			if !f.present(sc) {
				if fv := in.Value(f.name); fv != nil {
					return itksn.IssueAt(fp, itksn.CodeInvalidType, w.Len(), "want", "absent", "hint", fv.String())
				}
				rec.Append(itksn.Field{Name: f.name, Value: nil})
				continue
			}
		}
		fv, ok := in.Get(f.name)
		if !ok {
			if _, isConst := f.codec.(*ConstCodec); !isConst {
				return itksn.IssueAt(fp, itksn.CodeRequired, w.Len())
			}
		}
		if err := f.codec.Encode(w, sc, fp, fv); err != nil {
			return err
		}
		rec.Append(itksn.Field{Name: f.name, Value: fv})
	}
	for _, pv := range views {
		got, ok := w.Slice(pv.at, len(pv.value))
		if !ok || !bytes.Equal(got, pv.value) {
			return itksn.IssueAt(p.Field(pv.name), itksn.CodeInconsistentView, pv.at, "want", string(pv.value), "hint", string(got))
		}
	}
	return nil
}

// ---- computed field helpers ----

type computeError struct {
	code string
	hint string
}

func (e *computeError) Error() string { return e.code + ": " + e.hint }

// Fail reports a computed-field failure with the given issue code.
func Fail(code, hint string) error { return &computeError{code: code, hint: hint} }

func computeIssue(p itksn.PathRef, off int, err error) error {
	var ce *computeError
	if errors.As(err, &ce) {
		return itksn.IssueAt(p, ce.code, off, "hint", ce.hint)
	}
	if _, ok := itksn.AsIssues(err); ok {
		return err
	}
	return itksn.Issues{{Path: p.Pointer(), Code: itksn.CodeInvalidType, Message: err.Error(), Cause: err, Offset: int64(off)}}
}

// Number parses the named sibling, which must hold decimal digits.
func Number(sc *itksn.Scope, name string) (int64, error) {
	v, ok := sc.Lookup(name)
	if !ok || v == nil {
		return 0, Fail(itksn.CodeRequired, name)
	}
	s := v.String()
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, Fail(itksn.CodeInvalidNumber, s)
	}
	return n, nil
}

// Is returns a presence predicate that holds when the named sibling is the
// known symbol name.
func Is(field, name string) func(*itksn.Scope) bool {
	return func(sc *itksn.Scope) bool {
		v, _ := sc.Lookup(field)
		e, ok := v.(itksn.Enum)
		return ok && e.Is(name)
	}
}
