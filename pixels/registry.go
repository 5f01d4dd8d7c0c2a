package pixels

import (
	"fmt"

	"github.com/reoring/itksn"
	"github.com/reoring/itksn/dsl"
)

// Component is one row of a component code table: the symbolic component
// type, its two-byte code and the sub-areas the code is valid in.
type Component struct {
	Name  string
	Code  string
	Areas []Area
}

// ValidIn reports whether the component code is registered for area a.
func (c Component) ValidIn(a Area) bool {
	for _, x := range c.Areas {
		if x == a {
			return true
		}
	}
	return false
}

// Payload binds a component type to the codec of its identifier.
type Payload struct {
	Name  string
	Codec itksn.Codec
}

// Resolution tells how Lookup found the identifier codec.
type Resolution int

const (
	// Resolved means a payload codec is registered for the component.
	Resolved Resolution = iota
	// Gapped means the component is registered with an always-failing codec.
	Gapped
	// Fallback means no payload is registered and the identifier is raw bytes.
	Fallback
)

func (r Resolution) String() string {
	switch r {
	case Resolved:
		return "payload"
	case Gapped:
		return "gap"
	case Fallback:
		return "raw"
	}
	return fmt.Sprintf("Resolution(%d)", int(r))
}

// FallbackWidth is the identifier width used when a component has no
// registered payload.
const FallbackWidth = 7

var fallback = dsl.Bytes(FallbackWidth)

// Registry is the immutable schema registry of the pixel project. It is
// safe for concurrent use.
type Registry struct {
	components []Component
	payloads   map[string]itksn.Codec
	enums      map[Area]*dsl.EnumCodec
}

// NewRegistry builds a registry from component rows and payload bindings.
// Component rows keep their order; when two rows of a sub-area share a
// code, the earlier row is what the code decodes to.
func NewRegistry(components []Component, payloads []Payload) (*Registry, error) {
	r := &Registry{
		components: append([]Component(nil), components...),
		payloads:   make(map[string]itksn.Codec, len(payloads)),
		enums:      make(map[Area]*dsl.EnumCodec, len(Areas)),
	}
	for _, p := range payloads {
		if p.Codec == nil {
			return nil, fmt.Errorf("pixels: payload %q has no codec", p.Name)
		}
		if _, dup := r.payloads[p.Name]; dup {
			return nil, fmt.Errorf("pixels: payload %q registered twice", p.Name)
		}
		r.payloads[p.Name] = p.Codec
	}
	for _, a := range Areas {
		var pairs []string
		seen := make(map[string]bool)
		for _, c := range r.components {
			if !c.ValidIn(a) {
				continue
			}
			if seen[c.Name] {
				return nil, fmt.Errorf("pixels: component %q listed twice in %s", c.Name, a)
			}
			seen[c.Name] = true
			pairs = append(pairs, c.Name, c.Code)
		}
		r.enums[a] = dsl.Enum(2, pairs...)
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry(components []Component, payloads []Payload) *Registry {
	r, err := NewRegistry(components, payloads)
	if err != nil {
		panic(err)
	}
	return r
}

// Default is the registry built from the module, service and local support
// tables.
var Default = MustRegistry(defaultComponents(), defaultPayloads())

func defaultComponents() []Component {
	var out []Component
	out = append(out, moduleComponents...)
	out = append(out, serviceComponents...)
	out = append(out, localSupportComponents...)
	return out
}

func defaultPayloads() []Payload {
	var out []Payload
	out = append(out, modulePayloads...)
	out = append(out, servicePayloads...)
	out = append(out, localSupportPayloads()...)
	return out
}

// Components returns the component_code field of sub-area a, or nil for an
// area without a code table.
func (r *Registry) Components(a Area) *dsl.EnumCodec { return r.enums[a] }

// Lookup returns the identifier codec of the named component in area a.
// A component with no payload, or one that is not valid in a, resolves to
// raw bytes; a registered gap resolves to a codec that always fails.
func (r *Registry) Lookup(name string, a Area) (itksn.Codec, Resolution) {
	if !r.validIn(name, a) {
		return fallback, Fallback
	}
	c, ok := r.payloads[name]
	if !ok {
		return fallback, Fallback
	}
	if _, gap := c.(*dsl.GapCodec); gap {
		return c, Gapped
	}
	return c, Resolved
}

func (r *Registry) validIn(name string, a Area) bool {
	for _, c := range r.components {
		if c.Name == name && c.ValidIn(a) {
			return true
		}
	}
	return false
}

// CodeFor returns the code of the named component in area a.
func (r *Registry) CodeFor(name string, a Area) (string, bool) {
	for _, c := range r.components {
		if c.Name == name && c.ValidIn(a) {
			return c.Code, true
		}
	}
	return "", false
}

// List returns the component rows valid in area a, in table order.
func (r *Registry) List(a Area) []Component {
	var out []Component
	for _, c := range r.components {
		if c.ValidIn(a) {
			out = append(out, c)
		}
	}
	return out
}

// Resolve reports how every component of area a resolves, keyed by name.
func (r *Registry) Resolve(a Area) map[string]Resolution {
	out := make(map[string]Resolution)
	for _, c := range r.List(a) {
		_, res := r.Lookup(c.Name, a)
		out[c.Name] = res
	}
	return out
}
