package itksn

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Value is a decoded node. The concrete types are Enum, Bytes, Int, Text
// and *Record; an absent optional field is a nil Value.
type Value interface {
	String() string
	isValue()
}

// Enum is a symbolic name paired with the fixed-width byte code it was
// decoded from. An unrecognized code has an empty Name and keeps the raw
// Code so that it can be inspected and re-encoded.
type Enum struct {
	Name string
	Code []byte
}

// Known reports whether the code resolved to a symbolic name.
func (e Enum) Known() bool { return e.Name != "" }

// Is reports whether e is the known symbol name. An unknown value is never
// equal to any name.
func (e Enum) Is(name string) bool { return e.Name != "" && e.Name == name }

func (e Enum) String() string {
	if e.Name == "" {
		return "unknown(" + strconv.Quote(string(e.Code)) + ")"
	}
	return e.Name
}

func (Enum) isValue() {}

// Bytes is a raw pass-through field.
type Bytes []byte

func (b Bytes) String() string { return string(b) }
func (Bytes) isValue()         {}

// Int is an integer produced by a computed field.
type Int int64

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (Int) isValue()         {}

// Text is a string produced by a computed field.
type Text string

func (t Text) String() string { return string(t) }
func (Text) isValue()         {}

// Field is one named entry of a Record.
type Field struct {
	Name  string
	Value Value
	// Computed fields are derived from siblings and never written.
	Computed bool
	// View fields look at bytes owned by a later field and are never written.
	View bool
}

// Record is an ordered list of named fields.
type Record struct {
	Fields []Field
}

// NewRecord returns a record holding the given name/value pairs, in order.
// It is mostly useful to build encode input by hand. A nil value is an
// absent optional field. NewRecord panics on an odd number of arguments, a
// non-string name or a value that is not a Value.
func NewRecord(kv ...any) *Record {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("itksn.NewRecord: odd number of name/value arguments (%d)", len(kv)))
	}
	r := &Record{}
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("itksn.NewRecord: argument %d is %T, want a field name", i, kv[i]))
		}
		var v Value
		if kv[i+1] != nil {
			if v, ok = kv[i+1].(Value); !ok {
				panic(fmt.Sprintf("itksn.NewRecord: argument %d (%s) is %T, want a Value", i+1, name, kv[i+1]))
			}
		}
		r.Set(name, v)
	}
	return r
}

// Get returns the value of the named field.
func (r *Record) Get(name string) (Value, bool) {
	if r == nil {
		return nil, false
	}
	for i := len(r.Fields) - 1; i >= 0; i-- {
		if r.Fields[i].Name == name {
			return r.Fields[i].Value, true
		}
	}
	return nil, false
}

// Value returns the named field or nil.
func (r *Record) Value(name string) Value {
	v, _ := r.Get(name)
	return v
}

// Set replaces the named field or appends it.
func (r *Record) Set(name string, v Value) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			r.Fields[i].Value = v
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: v})
}

// Append adds f after the existing fields.
func (r *Record) Append(f Field) { r.Fields = append(r.Fields, f) }

// Names lists the field names in order.
func (r *Record) Names() []string {
	out := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		out = append(out, f.Name)
	}
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Fields)
}

func (r *Record) String() string {
	b := &strings.Builder{}
	r.write(b, 0)
	return b.String()
}

func (r *Record) write(b *strings.Builder, depth int) {
	b.WriteString("Record:")
	for _, f := range r.Fields {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("    ", depth+1))
		b.WriteString(f.Name)
		b.WriteString(" = ")
		switch v := f.Value.(type) {
		case nil:
			b.WriteString("None")
		case *Record:
			v.write(b, depth+1)
		case Bytes:
			fmt.Fprintf(b, "%q", []byte(v))
		default:
			b.WriteString(v.String())
		}
	}
}

func (*Record) isValue() {}

// Lookup walks nested records by field name.
func Lookup(v Value, path ...string) (Value, bool) {
	cur := v
	for _, name := range path {
		rec, ok := cur.(*Record)
		if !ok {
			return nil, false
		}
		cur, ok = rec.Get(name)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Equal reports whether two values are structurally identical.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Enum:
		y, ok := b.(Enum)
		return ok && x.Name == y.Name && bytes.Equal(x.Code, y.Code)
	case Bytes:
		y, ok := b.(Bytes)
		return ok && bytes.Equal(x, y)
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case *Record:
		y, ok := b.(*Record)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i := range x.Fields {
			fx, fy := x.Fields[i], y.Fields[i]
			if fx.Name != fy.Name || fx.Computed != fy.Computed || fx.View != fy.View || !Equal(fx.Value, fy.Value) {
				return false
			}
		}
		return true
	}
	return false
}
