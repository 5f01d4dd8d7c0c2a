// Package serial decodes and encodes ITk serial numbers.
//
// A serial number is the fixed envelope
//
//	20 U P G FW 2123456
//	|  | | | |  identifier (payload chosen by the component code)
//	|  | | | component_code
//	|  | | subproject_code
//	|  | project_code
//	|  system_code
//	atlas_project
//
// Decode and Encode use a shared Parser built on pixels.Default; use
// NewParser to attach a logger or another registry.
package serial

import (
	"fmt"
	"log/slog"

	"github.com/reoring/itksn"
	"github.com/reoring/itksn/pixels"
)

// SerialNumber is a decoded serial number.
type SerialNumber struct {
	AtlasProject itksn.Enum
	SystemCode   itksn.Enum
	ProjectCode  itksn.Enum
	// SubprojectCode is an Enum, or Bytes for an unknown project.
	SubprojectCode itksn.Value
	// ComponentCode is an Enum for pixel sub-areas and Bytes elsewhere.
	ComponentCode itksn.Value
	// Identifier is the payload record, or Bytes when no payload applies.
	Identifier itksn.Value
}

// Area returns the pixel sub-area of the serial number.
func (s *SerialNumber) Area() (pixels.Area, bool) {
	e, ok := s.SubprojectCode.(itksn.Enum)
	if !ok || !e.Known() {
		return "", false
	}
	return pixels.AreaOf(e.Name)
}

// Component returns the symbolic component type, or "" when the component
// code is not a known symbol.
func (s *SerialNumber) Component() string {
	if e, ok := s.ComponentCode.(itksn.Enum); ok {
		return e.Name
	}
	return ""
}

// Record returns the serial number as a generic record in field order.
func (s *SerialNumber) Record() *itksn.Record {
	return &itksn.Record{Fields: []itksn.Field{
		{Name: "atlas_project", Value: s.AtlasProject},
		{Name: "system_code", Value: s.SystemCode},
		{Name: "project_code", Value: s.ProjectCode},
		{Name: "subproject_code", Value: s.SubprojectCode},
		{Name: "component_code", Value: s.ComponentCode},
		{Name: "identifier", Value: s.Identifier},
	}}
}

func (s *SerialNumber) String() string { return s.Record().String() }

// FromRecord converts a decoded top-level record.
func FromRecord(rec *itksn.Record) (*SerialNumber, error) {
	enum := func(name string) (itksn.Enum, error) {
		v := rec.Value(name)
		e, ok := v.(itksn.Enum)
		if !ok {
			return itksn.Enum{}, itksn.IssueAt(itksn.Root().Field(name), itksn.CodeInvalidType, -1, "want", "enum", "hint", fmt.Sprintf("%T", v))
		}
		return e, nil
	}
	var (
		sn  SerialNumber
		err error
	)
	if sn.AtlasProject, err = enum("atlas_project"); err != nil {
		return nil, err
	}
	if sn.SystemCode, err = enum("system_code"); err != nil {
		return nil, err
	}
	if sn.ProjectCode, err = enum("project_code"); err != nil {
		return nil, err
	}
	sn.SubprojectCode = rec.Value("subproject_code")
	sn.ComponentCode = rec.Value("component_code")
	sn.Identifier = rec.Value("identifier")
	return &sn, nil
}

// Parser decodes and encodes serial numbers against a registry. A Parser
// is immutable and safe for concurrent use.
type Parser struct {
	reg   *pixels.Registry
	log   *slog.Logger
	codec itksn.Codec
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for debug output. A nil logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// WithRegistry replaces pixels.Default.
func WithRegistry(r *pixels.Registry) Option {
	return func(p *Parser) { p.reg = r }
}

// NewParser returns a Parser configured by opts.
func NewParser(opts ...Option) *Parser {
	p := &Parser{reg: pixels.Default}
	for _, o := range opts {
		o(p)
	}
	if p.log == nil {
		p.log = slog.New(slog.DiscardHandler)
	}
	if p.reg == nil {
		p.reg = pixels.Default
	}
	p.codec = envelope(p.reg, p.log)
	return p
}

// Codec returns the codec of the whole serial number.
func (p *Parser) Codec() itksn.Codec { return p.codec }

// Decode decodes b. Every byte must be consumed.
func (p *Parser) Decode(b []byte) (*SerialNumber, error) {
	v, err := itksn.DecodeAll(p.codec, b)
	if err != nil {
		p.log.Debug("decode failed", "serial", string(b), "error", err)
		return nil, err
	}
	sn, err := FromRecord(v.(*itksn.Record))
	if err != nil {
		return nil, err
	}
	p.log.Debug("decoded", "serial", string(b), "component", sn.Component())
	return sn, nil
}

// DecodeString decodes s.
func (p *Parser) DecodeString(s string) (*SerialNumber, error) {
	return p.Decode([]byte(s))
}

// Encode writes the canonical bytes of sn.
func (p *Parser) Encode(sn *SerialNumber) ([]byte, error) {
	if sn == nil {
		return nil, itksn.IssueAt(itksn.Root(), itksn.CodeRequired, 0)
	}
	b, err := itksn.EncodeAll(p.codec, sn.Record())
	if err != nil {
		p.log.Debug("encode failed", "error", err)
		return nil, err
	}
	return b, nil
}

var std = NewParser()

// Decode decodes b with the default parser.
func Decode(b []byte) (*SerialNumber, error) { return std.Decode(b) }

// DecodeString decodes s with the default parser.
func DecodeString(s string) (*SerialNumber, error) { return std.DecodeString(s) }

// Encode encodes sn with the default parser.
func Encode(sn *SerialNumber) ([]byte, error) { return std.Encode(sn) }
