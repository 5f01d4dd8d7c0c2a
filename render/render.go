// Package render prints decoded serial numbers as text, JSON, YAML or CBOR.
//
// All formats keep the field order of the record except CBOR, which uses
// core deterministic encoding and therefore sorts map keys.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/reoring/itksn"
)

// Format names an output format.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{Text, JSON, YAML, CBOR} }

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("render: unknown format %q (want one of %s)", s, joinFormats())
}

func joinFormats() string {
	parts := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		parts = append(parts, string(f))
	}
	return strings.Join(parts, ", ")
}

// Options tunes how a tree is rendered.
type Options struct {
	// Views includes non-consuming view fields such as peeked bytes.
	Views bool
	// Codes renders enums as {name, code} pairs instead of bare names.
	Codes bool
}

// Marshal renders v in format f.
func Marshal(f Format, v itksn.Value, o Options) ([]byte, error) {
	switch f {
	case Text:
		return []byte(textOf(v, o)), nil
	case JSON:
		return marshalJSON(v, o)
	case YAML:
		return marshalYAML(v, o)
	case CBOR:
		return marshalCBOR(v, o)
	}
	return nil, fmt.Errorf("render: unknown format %q", f)
}

// Write renders v to w, ending text formats with a newline.
func Write(w io.Writer, f Format, v itksn.Value, o Options) error {
	b, err := Marshal(f, v, o)
	if err != nil {
		return err
	}
	if f != CBOR && !bytes.HasSuffix(b, []byte("\n")) {
		b = append(b, '\n')
	}
	_, err = w.Write(b)
	return err
}

// member is one key/value pair of an ordered object.
type member struct {
	key   string
	value any
}

// object is a record flattened into plain values, in field order.
type object []member

// plain converts a decoded value into strings, integers, nil and objects.
func plain(v itksn.Value, o Options) any {
	switch x := v.(type) {
	case nil:
		return nil
	case itksn.Enum:
		if o.Codes {
			return object{{"name", x.Name}, {"code", string(x.Code)}}
		}
		return x.String()
	case itksn.Bytes:
		return string(x)
	case itksn.Int:
		return int64(x)
	case itksn.Text:
		return string(x)
	case *itksn.Record:
		out := make(object, 0, x.Len())
		for _, f := range x.Fields {
			if f.View && !o.Views {
				continue
			}
			out = append(out, member{f.Name, plain(f.Value, o)})
		}
		return out
	}
	return v.String()
}

// toMap drops the field order for encoders that sort keys anyway.
func toMap(v any) any {
	obj, ok := v.(object)
	if !ok {
		return v
	}
	m := make(map[string]any, len(obj))
	for _, mb := range obj {
		m[mb.key] = toMap(mb.value)
	}
	return m
}
