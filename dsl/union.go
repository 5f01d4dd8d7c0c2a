package dsl

import (
	"github.com/reoring/itksn"
)

// Key names the discriminant of a Switch: a field of the current record,
// or of an ancestor reached by walking up explicitly.
type Key struct {
	name string
	up   int
}

// This refers to a field of the record that holds the Switch.
func This(name string) Key { return Key{name: name} }

// Parent refers to a field of the record enclosing the one that holds the
// Switch.
func Parent(name string) Key { return Key{name: name, up: 1} }

// Name returns the field name of the key.
func (k Key) Name() string { return k.name }

func (k Key) resolve(sc *itksn.Scope) (itksn.Value, bool) {
	for i := 0; i < k.up; i++ {
		sc = sc.Parent()
	}
	return sc.Lookup(k.name)
}

// Cases maps a discriminant symbol (or raw string for byte fields) to a codec.
type Cases map[string]itksn.Codec

// SwitchCodec selects the codec of a node from an already decoded field.
type SwitchCodec struct {
	key   Key
	cases Cases
	def   itksn.Codec
}

// Switch dispatches on key. Without a default, a discriminant that is not
// a known symbol fails with invalid_discriminant, and a known symbol with
// no case fails with no_matching_variant.
func Switch(key Key, cases Cases) *SwitchCodec {
	return &SwitchCodec{key: key, cases: cases}
}

// Default returns a copy that falls back to c when no case applies.
func (s *SwitchCodec) Default(c itksn.Codec) *SwitchCodec {
	cp := *s
	cp.def = c
	return &cp
}

// caseKey turns a discriminant into a case label.
func caseKey(v itksn.Value) (string, bool) {
	switch x := v.(type) {
	case itksn.Enum:
		return x.Name, x.Known()
	case itksn.Bytes:
		return string(x), true
	case itksn.Text:
		return string(x), true
	case itksn.Int:
		return x.String(), true
	}
	return "", false
}

func (s *SwitchCodec) selectCodec(sc *itksn.Scope, p itksn.PathRef, off int) (itksn.Codec, error) {
	v, _ := s.key.resolve(sc)
	label, ok := caseKey(v)
	if !ok {
		if s.def != nil {
			return s.def, nil
		}
		hint := s.key.name
		if v != nil {
			hint += "=" + v.String()
		}
		return nil, itksn.IssueAt(p, itksn.CodeInvalidDiscriminant, off, "hint", hint)
	}
	if c, ok := s.cases[label]; ok {
		return c, nil
	}
	if s.def != nil {
		return s.def, nil
	}
	return nil, itksn.IssueAt(p, itksn.CodeNoMatchingVariant, off, "hint", s.key.name+"="+label)
}

func (s *SwitchCodec) Decode(r *itksn.Reader, sc *itksn.Scope, p itksn.PathRef) (itksn.Value, error) {
	c, err := s.selectCodec(sc, p, r.Offset())
	if err != nil {
		return nil, err
	}
	return c.Decode(r, sc, p)
}

func (s *SwitchCodec) Encode(w *itksn.Writer, sc *itksn.Scope, p itksn.PathRef, v itksn.Value) error {
	c, err := s.selectCodec(sc, p, w.Len())
	if err != nil {
		return err
	}
	return c.Encode(w, sc, p, v)
}

// Width is the common width of every branch, or -1.
func (s *SwitchCodec) Width() int {
	w := -2
	check := func(c itksn.Codec) bool {
		cw := c.Width()
		if w == -2 {
			w = cw
		}
		return cw == w
	}
	for _, c := range s.cases {
		if !check(c) {
			return -1
		}
	}
	if s.def != nil && !check(s.def) {
		return -1
	}
	if w < 0 {
		return -1
	}
	return w
}

// ---- Gap ----

// GapCodec always fails. It marks a layout that is known to exist but is
// not defined (or is contradictory) in the serial-number scheme.
type GapCodec struct{ reason string }

// Gap returns an always-failing codec carrying reason in the issue hint.
func Gap(reason string) *GapCodec { return &GapCodec{reason: reason} }

// Reason returns the documented reason of the gap.
func (g *GapCodec) Reason() string { return g.reason }

func (*GapCodec) Width() int { return -1 }

func (g *GapCodec) Decode(r *itksn.Reader, _ *itksn.Scope, p itksn.PathRef) (itksn.Value, error) {
	return nil, itksn.IssueAt(p, itksn.CodeNoMatchingVariant, r.Offset(), "hint", g.reason)
}

func (g *GapCodec) Encode(w *itksn.Writer, _ *itksn.Scope, p itksn.PathRef, _ itksn.Value) error {
	return itksn.IssueAt(p, itksn.CodeNoMatchingVariant, w.Len(), "hint", g.reason)
}
