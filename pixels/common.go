package pixels

import (
	"github.com/reoring/itksn"
	"github.com/reoring/itksn/dsl"
)

// Area is a pixel sub-area as written in the component tables.
type Area string

const (
	InnerPixel       Area = "PI"
	PixelGeneral     Area = "PG"
	OuterPixelBarrel Area = "PB"
	PixelEndcaps     Area = "PE"
)

// Areas lists the sub-areas that carry component codes, in table order.
var Areas = []Area{InnerPixel, PixelGeneral, OuterPixelBarrel, PixelEndcaps}

var subprojectNames = map[Area]string{
	InnerPixel:       "inner_pixel",
	PixelGeneral:     "pixel_general",
	OuterPixelBarrel: "outer_pixel_barrel",
	PixelEndcaps:     "pixel_endcaps",
}

// Subproject returns the symbolic subproject_code of the area.
func (a Area) Subproject() string { return subprojectNames[a] }

// AreaOf maps a decoded subproject_code symbol to its area.
func AreaOf(subproject string) (Area, bool) {
	for a, n := range subprojectNames {
		if n == subproject {
			return a, true
		}
	}
	return "", false
}

// Subprojects is the subproject_code field of the pixel project.
var Subprojects = dsl.Enum(1,
	"inner_pixel", "I",
	"outer_pixel_barrel", "B",
	"pixel_general", "G",
	"pixel_endcaps", "E",
)

var pcbManufacturer = dsl.Enum(1,
	"Dummy", "0",
	"EPEC", "1",
	"NCAB_100um", "2",
	"ATLAFLEX", "3",
	"SFCircuits", "4",
	"PHOENIX", "5",
	"Yamashita_Material", "6",
	"NCAB_75um", "7",
	"Tecnomec", "8",
)

// bySubarea picks a payload per sub-area of the enclosing serial number;
// a nil entry is a gap for that sub-area.
func bySubarea(pg, pi, pe, pb itksn.Codec) *dsl.SwitchCodec {
	or := func(c itksn.Codec, a Area) itksn.Codec {
		if c == nil {
			return dsl.Gap("payload not defined for " + a.Subproject())
		}
		return c
	}
	return dsl.Switch(dsl.This("subproject_code"), dsl.Cases{
		InnerPixel.Subproject():       or(pi, InnerPixel),
		OuterPixelBarrel.Subproject(): or(pb, OuterPixelBarrel),
		PixelGeneral.Subproject():     or(pg, PixelGeneral),
		PixelEndcaps.Subproject():     or(pe, PixelEndcaps),
	})
}
