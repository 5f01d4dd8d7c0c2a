// Package corpus reads YAML files of serial numbers with their expected
// decodes and checks them against a parser.
//
//	- serial: 20UPGFW2123456
//	  expect:
//	    component_code: FE_chip_wafer
//	    identifier/batch: RD53A
//	- serial: 20UPGMC2291234999
//	  error: trailing_data
package corpus

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/itksn"
	"github.com/reoring/itksn/serial"
)

// Case is one serial number and what decoding it must give.
type Case struct {
	Serial string
	// Expect maps a slash separated field path to its expected string form.
	// A nil value expects an absent optional field.
	Expect map[string]any
	// Error is the expected issue code; empty means decoding must succeed.
	Error string
	Line  int
}

// DuplicateKeyError reports a key given twice in one YAML mapping.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// Read decodes every document of r; each document is a sequence of cases.
func Read(r io.Reader) ([]Case, error) {
	dec := yaml.NewDecoder(r)
	var out []Case
	for {
		var root yaml.Node
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		cases, err := casesOf(&root)
		if err != nil {
			return nil, err
		}
		out = append(out, cases...)
	}
}

func casesOf(n *yaml.Node) ([]Case, error) {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil, nil
		}
		n = n.Content[0]
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("corpus: line %d: want a sequence of cases", n.Line)
	}
	out := make([]Case, 0, len(n.Content))
	for _, item := range n.Content {
		v, err := plain(item)
		if err != nil {
			return nil, err
		}
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("corpus: line %d: want a mapping", item.Line)
		}
		c := Case{Line: item.Line}
		c.Serial, _ = m["serial"].(string)
		if c.Serial == "" {
			return nil, fmt.Errorf("corpus: line %d: missing serial", item.Line)
		}
		c.Error, _ = m["error"].(string)
		if exp, ok := m["expect"]; ok {
			em, ok := exp.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("corpus: line %d: expect must be a mapping", item.Line)
			}
			c.Expect = em
		}
		out = append(out, c)
	}
	return out, nil
}

// plain converts a node into maps, slices and scalars, rejecting duplicate
// mapping keys.
func plain(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if pos, dup := first[k.Value]; dup {
				return nil, &DuplicateKeyError{Key: k.Value, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[k.Value] = [2]int{k.Line, k.Column}
			val, err := plain(v)
			if err != nil {
				return nil, err
			}
			m[k.Value] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := plain(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		// numbers stay text: "0002" and 0002 must not differ
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.AliasNode:
		return plain(n.Alias)
	}
	return nil, nil
}

// Failure describes one case that did not behave as expected.
type Failure struct {
	Case    Case
	Problem string
}

func (f Failure) String() string {
	return fmt.Sprintf("line %d: %s: %s", f.Case.Line, f.Case.Serial, f.Problem)
}

// Check decodes c.Serial with p and reports every mismatch. A successful
// decode must also encode back to the same bytes.
func Check(p *serial.Parser, c Case) []Failure {
	var out []Failure
	fail := func(format string, args ...any) {
		out = append(out, Failure{Case: c, Problem: fmt.Sprintf(format, args...)})
	}
	sn, err := p.DecodeString(c.Serial)
	if c.Error != "" {
		switch {
		case err == nil:
			fail("decoded, want %s", c.Error)
		case !itksn.HasCode(err, c.Error):
			fail("got %v, want %s", err, c.Error)
		}
		return out
	}
	if err != nil {
		fail("decode: %v", err)
		return out
	}
	rec := sn.Record()
	paths := make([]string, 0, len(c.Expect))
	for k := range c.Expect {
		paths = append(paths, k)
	}
	sort.Strings(paths)
	for _, path := range paths {
		want := c.Expect[path]
		got, ok := itksn.Lookup(rec, strings.Split(path, "/")...)
		if !ok {
			fail("%s: no such field", path)
			continue
		}
		if want == nil || got == nil {
			if want != nil || got != nil {
				fail("%s = %v, want %v", path, got, want)
			}
			continue
		}
		if ws := fmt.Sprint(want); got.String() != ws {
			fail("%s = %q, want %q", path, got.String(), ws)
		}
	}
	b, err := p.Encode(sn)
	if err != nil {
		fail("encode: %v", err)
	} else if string(b) != c.Serial {
		fail("encode = %q, want the input back", b)
	}
	return out
}

// CheckAll runs Check over cases.
func CheckAll(p *serial.Parser, cases []Case) []Failure {
	var out []Failure
	for _, c := range cases {
		out = append(out, Check(p, c)...)
	}
	return out
}
