package serial

import (
	"log/slog"

	"github.com/reoring/itksn"
	"github.com/reoring/itksn/dsl"
	"github.com/reoring/itksn/pixels"
)

var atlasProject = dsl.Enum(2, "atlas_detector", "20").Strict()

var systemCode = dsl.Enum(1, "phaseII_upgrade", "U")

var projectCode = dsl.Enum(1,
	"pixel", "P",
	"strip", "S",
	"common", "C",
)

var stripSubprojects = dsl.Enum(1,
	"strip_general", "G",
	"strip_barrel", "B",
	"strip_endcaps", "E",
)

// Common codes are two letters wide in a one-byte field, so they never
// decode and never encode.
var commonSubprojects = dsl.Enum(1,
	"common_mechanics", "CM",
	"common_electronics", "CE",
)

// envelope builds the top-level record around a registry.
func envelope(reg *pixels.Registry, log *slog.Logger) *dsl.StructCodec {
	components := dsl.Cases{}
	for _, a := range pixels.Areas {
		components[a.Subproject()] = reg.Components(a)
	}
	return dsl.Struct().
		Field("atlas_project", atlasProject).
		Field("system_code", systemCode).
		Field("project_code", projectCode).
		Field("subproject_code", dsl.Switch(dsl.This("project_code"), dsl.Cases{
			"pixel":  pixels.Subprojects,
			"strip":  stripSubprojects,
			"common": commonSubprojects,
		}).Default(dsl.Bytes(1))).
		Field("component_code", dsl.Switch(dsl.This("subproject_code"), components).Default(dsl.Bytes(2))).
		Field("identifier", &identifierCodec{reg: reg, log: log}).
		MustBuild()
}

// identifierCodec resolves the payload of a pixel serial number through the
// registry. Other projects carry a raw identifier.
type identifierCodec struct {
	reg *pixels.Registry
	log *slog.Logger
}

func (*identifierCodec) Width() int { return -1 }

func (c *identifierCodec) resolve(sc *itksn.Scope, p itksn.PathRef, off int) (itksn.Codec, error) {
	sub, _ := sc.Lookup("subproject_code")
	se, _ := sub.(itksn.Enum)
	area, ok := pixels.AreaOf(se.Name)
	if !se.Known() || !ok {
		return dsl.Bytes(pixels.FallbackWidth), nil
	}
	cc, _ := sc.Lookup("component_code")
	ce, ok := cc.(itksn.Enum)
	if !ok || !ce.Known() {
		hint := "component_code"
		if cc != nil {
			hint += "=" + cc.String()
		}
		c.log.Debug("component code not registered", "area", string(area), "code", hint)
		return nil, itksn.IssueAt(p, itksn.CodeInvalidDiscriminant, off, "hint", hint)
	}
	codec, res := c.reg.Lookup(ce.Name, area)
	c.log.Debug("identifier resolved",
		"area", string(area),
		"component", ce.Name,
		"resolution", res.String(),
	)
	return codec, nil
}

func (c *identifierCodec) Decode(r *itksn.Reader, sc *itksn.Scope, p itksn.PathRef) (itksn.Value, error) {
	codec, err := c.resolve(sc, p, r.Offset())
	if err != nil {
		return nil, err
	}
	return codec.Decode(r, sc, p)
}

func (c *identifierCodec) Encode(w *itksn.Writer, sc *itksn.Scope, p itksn.PathRef, v itksn.Value) error {
	codec, err := c.resolve(sc, p, w.Len())
	if err != nil {
		return err
	}
	return codec.Encode(w, sc, p, v)
}
