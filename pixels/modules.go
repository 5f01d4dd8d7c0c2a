package pixels

import (
	"github.com/reoring/itksn"
	"github.com/reoring/itksn/dsl"
)

var tripletAssemblySite = dsl.Enum(1,
	"Genova", "0",
	"Barcelona", "1",
	"Oslo", "2",
	"Milano", "3",
	"LBNL", "4",
)

// batchNames is indexed by bits 16-19 of the FE chip number.
var batchNames = [16]string{
	"RD53A",
	"ITkpix_v1",
	"ITkpix_v2", "ITkpix_v2", "ITkpix_v2", "ITkpix_v2", "ITkpix_v2", "ITkpix_v2",
	"ITkpix_v2", "ITkpix_v2", "ITkpix_v2", "ITkpix_v2", "ITkpix_v2", "ITkpix_v2",
	"ITkpix_v2", "ITkpix_v2",
}

// bits extracts (number & mask) >> shift from a decimal sibling.
func bits(field string, mask int64, shift uint) func(*itksn.Scope) (itksn.Value, error) {
	return func(sc *itksn.Scope) (itksn.Value, error) {
		n, err := dsl.Number(sc, field)
		if err != nil {
			return nil, err
		}
		return itksn.Int((n & mask) >> shift), nil
	}
}

var feChip = dsl.Struct().
	Field("number", dsl.Bytes(7)).
	Computed("batch_number", bits("number", 0xF0000, 16)).
	Computed("batch", func(sc *itksn.Scope) (itksn.Value, error) {
		n, err := dsl.Number(sc, "number")
		if err != nil {
			return nil, err
		}
		return itksn.Text(batchNames[(n&0xF0000)>>16]), nil
	}).
	Computed("wafer", bits("number", 0x0FF00, 8)).
	Computed("row", bits("number", 0x000F0, 4)).
	Computed("column", bits("number", 0x0000F, 0)).
	MustBuild()

var feChipVersion = dsl.Enum(1,
	"RD53A", "0",
	"ITkpix_v1", "1",
	"ITkpix_v1p1", "2",
	"ITkpix_v2", "3",
	"No_chip", "9",
)

var feChipVersionPCB = dsl.Enum(1,
	"RD53A", "0",
	"Prototype_ITkpix_v1", "1",
	"Pre_production_OS_ITkpix_v1", "2",
	"Pre_production_IS_ITkpix_v1", "3",
	"Production_OS_ITkpix_v2", "4",
	"Production_IS_ITkpix_v2", "5",
	"No_chip", "9",
)

var sensor = dsl.Struct().
	Field("manufacturer", dsl.Enum(1,
		"V1_ADVACAM", "0",
		"V2_HLL", "1",
		"V3_FBK_planar", "2",
		"V4_HPK", "3",
		"V5_LFoundry", "4",
		"V6_MICRON", "5",
		"V7_CNM", "6",
		"V8_FBK_3D", "7",
		"V9_SINTEF", "8",
		"Dummy", "9",
	)).
	Field("sensor_type", dsl.Enum(1,
		"RD53A_test_structure", "0",
		"Single", "1",
		"Halfmoon_preproduction_Double_MS", "2",
		"Quad", "3",
		"Planar_diode_test_structure_1", "4",
		"Strip_test_structure_2", "5",
		"Mini_sensor_test_structure_3", "6",
		"Interpixel_capacitance_test_structure_4", "7",
		"Biasing_test_structure_5", "8",
		"ThreeD_diode_test_structure_6", "9",
	)).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var bareModule = dsl.Struct().
	Field("FE_chip_version", feChipVersion).
	Field("sensor_type", dsl.Enum(1,
		"No_sensor", "0",
		"Market_survey_sensor_tile", "1",
		"L0_inner_pixel_3D_sensor_tile", "2",
		"L0_inner_pixel_planar_sensor_tile", "3",
		"L1_inner_pixel_quad_sensor_tile", "4",
		"Outer_pixel_quad_sensor_tile", "5",
		"Dummy_sensor_tile", "9",
	)).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var pcbLoadingSite = dsl.Enum(1,
	"outdated", "0",
	"Oslo", "2",
	"TOPRO", "5",
	"NORBIT", "6",
	"CERN", "7",
	"unloaded", "9",
)

var pcbReceptionSite = dsl.Enum(1,
	"Genova", "0",
	"Barcelona", "1",
	"Oslo", "2",
	"Milano", "3",
	"Bergen", "4",
)

var pcb = dsl.Struct().
	Field("FE_chip_version", feChipVersionPCB).
	Field("PCB_manufacturer", pcbManufacturer).
	Field("number", dsl.Bytes(5)).
	MustBuild()

// Dummy PCBs (and some digital ones) carry raw bytes in the loading and
// reception positions.
var pcbTriplets = dsl.Struct().
	Field("FE_chip_version", feChipVersionPCB).
	Field("PCB_manufacturer", pcbManufacturer).
	Field("loading", dsl.Switch(dsl.This("PCB_manufacturer"), dsl.Cases{"Dummy": dsl.Bytes(1)}).Default(pcbLoadingSite)).
	Field("reception", dsl.Switch(dsl.This("PCB_manufacturer"), dsl.Cases{"Dummy": dsl.Bytes(1)}).Default(pcbReceptionSite)).
	Field("number", dsl.Bytes(3)).
	MustBuild()

// Only RD53A modules carry a PCB manufacturer; the number takes the rest.
var module = dsl.Struct().
	Field("FE_chip_version", feChipVersion).
	OptionalIf("PCB_manufacturer", dsl.Is("FE_chip_version", "RD53A"), pcbManufacturer).
	Field("number", dsl.Greedy()).
	MustBuild()

var tripletModule = dsl.Struct().
	Field("FE_chip_version", feChipVersion).
	Field("assembly_site", tripletAssemblySite).
	Field("not_used", dsl.Bytes(1)).
	Field("number", dsl.Bytes(4)).
	MustBuild()

var moduleCarrier = dsl.Struct().
	Field("module_type", dsl.Enum(1,
		"Quad_module_carrier", "0",
		"Cell_loaded_quad_module_bottom_cover", "1",
		"Linear_triplet_module_carrier", "2",
		"Ring_triplet_module_carrier", "3",
	)).
	Field("module_version", dsl.Enum(1,
		"Not_used", "0",
		"Triplet_v1p0", "1",
		"Quad_v2p1", "2",
		"Quad_v4p1", "3",
		"Quad_v4p2", "4",
		"Quad_v4p3", "5",
	)).
	Field("manufacturer", dsl.Bytes(1)).
	Field("number", dsl.Bytes(4)).
	MustBuild()

var moduleComponents = []Component{
	// pixel modules and subcomponents
	{"FE_chip_wafer", "FW", []Area{PixelGeneral}},
	{"FE_chip", "FC", []Area{PixelGeneral}},
	{"Planar_sensor_wafer_100um_thickness", "W6", []Area{InnerPixel, PixelGeneral}},
	{"Planar_sensor_wafer_150um_thickness", "W7", []Area{PixelGeneral}},
	{"ThreeD_sensor_wafer", "W8", []Area{InnerPixel, PixelGeneral}},
	{"L0_inner_pixel_3D_sensor_wafer_25x100um", "W0", []Area{InnerPixel}},
	{"L0_inner_pixel_3D_sensor_wafer_50x50um", "W1", []Area{InnerPixel}},
	{"L1_inner_pixel_sensor_wafer_100um_thickness", "W2", []Area{InnerPixel}},
	{"Outer_pixel_sensor_wafer_150um_thickness", "W3", []Area{PixelGeneral}},
	{"Half_size_planar_sensor_tile_100um_thickness", "S6", []Area{PixelGeneral}},
	{"Half_size_planar_sensor_tile_150um_thickness", "S7", []Area{PixelGeneral}},
	{"Full_size_planar_sensor_tile_100um_thickness", "S8", []Area{InnerPixel}},
	{"Full_size_planar_sensor_tile_150um_thickness", "S9", []Area{PixelGeneral}},
	{"Half_size_3D_sensor_tile_25x100um", "SG", []Area{PixelGeneral}},
	{"Full_size_3D_sensor_tile_25x100um", "SH", []Area{PixelGeneral}},
	{"Half_size_3D_sensor_tile_50x50um", "SI", []Area{PixelGeneral}},
	{"Full_size_3D_sensor_tile_50x50um", "SJ", []Area{PixelGeneral}},
	{"L0_inner_pixel_3D_sensor_tile_25x100um", "S0", []Area{InnerPixel}},
	{"L0_inner_pixel_3D_sensor_tile_50x50um", "S1", []Area{InnerPixel}},
	{"L1_inner_pixel_quad_sensor_tile", "S2", []Area{InnerPixel}},
	{"Outer_pixel_quad_sensor_tile", "S3", []Area{PixelGeneral}},
	{"Planar_Sensor_test_structure_100um_thickness", "ST", []Area{InnerPixel}},
	{"Planar_Sensor_test_structure_150um_thickness", "SU", []Area{PixelGeneral}},
	{"ThreeD_Sensor_test_structure_25x100um", "SV", []Area{InnerPixel, PixelGeneral}},
	{"ThreeD_Sensor_test_structure_50x50um", "SW", []Area{InnerPixel, PixelGeneral}},
	{"Planar_Sensor_half_moon_100um_thickness", "HT", []Area{InnerPixel}},
	{"Planar_Sensor_half_moon_150um_thickness", "HU", []Area{PixelGeneral}},
	{"ThreeD_Sensor_half_moon_25x100um", "HV", []Area{InnerPixel, PixelGeneral}},
	{"ThreeD_Sensor_half_moon_50x50um", "HW", []Area{InnerPixel, PixelGeneral}},
	{"Single_bare_module", "B1", []Area{PixelGeneral}},
	{"Dual_bare_module", "B2", []Area{PixelGeneral}},
	{"Quad_bare_module", "B4", []Area{PixelGeneral}},
	{"Digital_single_bare_module", "BS", []Area{PixelGeneral}},
	{"Digital_quad_bare_module", "BQ", []Area{PixelGeneral}},
	{"FourInch_bare_module_gel_pack", "G4", []Area{PixelGeneral}},
	{"SixInch_bare_module_gel_pack", "G6", []Area{PixelGeneral}},
	{"Triplet_L0_Stave_PCB", "PT", []Area{InnerPixel}},
	{"Triplet_L0_R0_PCB", "P0", []Area{InnerPixel}},
	{"Triplet_L0_R0p5_PCB", "P5", []Area{InnerPixel}},
	{"Quad_PCB", "PQ", []Area{PixelGeneral}},
	{"Dual_PCB", "PD", []Area{PixelGeneral}},
	{"PCB_test_coupon", "PC", []Area{PixelGeneral}},
	// "P" is not a sub-area; the roof can never be decoded
	{"OB_wirebond_protection_roof", "WP", []Area{"P"}},
	{"Triplet_L0_stave_module", "MS", []Area{InnerPixel}},
	{"Triplet_L0_Ring0_module", "M0", []Area{InnerPixel}},
	{"Triplet_L0_Ring0p5_module", "M5", []Area{InnerPixel}},
	{"L1_quad_module", "M1", []Area{InnerPixel}},
	{"Outer_system_quad_module", "M2", []Area{PixelGeneral}},
	{"Dual_chip_module", "R2", []Area{PixelGeneral}},
	{"Single_chip_module", "R0", []Area{PixelGeneral}},
	{"Digital_triplet_L0_stave_module", "R6", []Area{InnerPixel}},
	{"Digital_triplet_L0_ring0_module", "R7", []Area{InnerPixel}},
	{"Digital_triplet_L0_ring0p5_module", "R8", []Area{InnerPixel}},
	{"Digital_quad_module", "R9", []Area{PixelGeneral}},
	// one-byte code in a two-byte field: never decodes, never encodes
	{"Digital_L1_quad_module", "R", []Area{InnerPixel}},
	{"Dummy_triplet_L0_stave_module", "RT", []Area{InnerPixel}},
	{"Dummy_triplet_L0_ring0_module", "RU", []Area{InnerPixel}},
	{"Dummy_triplet_L0_ring0p5_module", "RV", []Area{InnerPixel}},
	{"Dummy_quad_module", "RQ", []Area{PixelGeneral}},
	{"Dummy_L1_quad_module", "RR", []Area{PixelGeneral}},
	{"Module_carrier", "MC", []Area{PixelGeneral}},
	// dummy for testing of GUIs/tutorials
	{"Dummy_FE_chip_wafer", "XW", []Area{PixelGeneral}},
	{"Dummy_tutorial_FE_chip", "XF", []Area{PixelGeneral}},
	// shares XH with Dummy_sensor_half_moon; this entry is declared first and wins
	{"Dummy_sensor_wafer (with dummy tiles/test structures", "XH", []Area{PixelGeneral}},
	{"Dummy_tutorial_sensor_tile", "XS", []Area{PixelGeneral}},
	{"Dummy_sensor_test_structure", "XT", []Area{PixelGeneral}},
	{"Dummy_sensor_half_moon", "XH", []Area{PixelGeneral}},
	{"Dummy_single_bare_module", "BT", []Area{PixelGeneral}},
	{"Dummy_quad_bare_module", "BR", []Area{PixelGeneral}},
	{"Dummy_tutorial_bare_module", "XB", []Area{PixelGeneral}},
	{"Dummy_bare_module_gel_pack", "XG", []Area{PixelGeneral}},
	{"Dummy_tutorial_PCB", "XP", []Area{PixelGeneral}},
	{"Dummy_PCB_test_coupon", "XD", []Area{PixelGeneral}},
	{"Dummy_OB_wirebond_protection_roof", "XE", []Area{OuterPixelBarrel}},
	{"Dummy_tutorial_module", "XM", []Area{PixelGeneral}},
	{"Dummy_module_carrier", "XC", []Area{PixelGeneral}},
}

var modulePayloads = []Payload{
	{"FE_chip_wafer", feChip},
	{"FE_chip", feChip},
	{"Planar_sensor_wafer_100um_thickness", sensor},
	{"Planar_sensor_wafer_150um_thickness", sensor},
	{"ThreeD_sensor_wafer", sensor},
	{"L0_inner_pixel_3D_sensor_wafer_25x100um", sensor},
	{"L0_inner_pixel_3D_sensor_wafer_50x50um", sensor},
	{"L1_inner_pixel_sensor_wafer_100um_thickness", sensor},
	{"Outer_pixel_sensor_wafer_150um_thickness", sensor},
	{"Half_size_planar_sensor_tile_100um_thickness", sensor},
	{"Half_size_planar_sensor_tile_150um_thickness", sensor},
	{"Full_size_planar_sensor_tile_100um_thickness", sensor},
	{"Full_size_planar_sensor_tile_150um_thickness", sensor},
	{"Half_size_3D_sensor_tile_25x100um", sensor},
	{"Full_size_3D_sensor_tile_25x100um", sensor},
	{"Half_size_3D_sensor_tile_50x50um", sensor},
	{"Full_size_3D_sensor_tile_50x50um", sensor},
	{"L0_inner_pixel_3D_sensor_tile_25x100um", sensor},
	{"L0_inner_pixel_3D_sensor_tile_50x50um", sensor},
	{"L1_inner_pixel_quad_sensor_tile", sensor},
	{"Outer_pixel_quad_sensor_tile", sensor},
	{"Planar_Sensor_test_structure_100um_thickness", sensor},
	{"Planar_Sensor_test_structure_150um_thickness", sensor},
	{"ThreeD_Sensor_test_structure_25x100um", sensor},
	{"ThreeD_Sensor_test_structure_50x50um", sensor},
	{"Planar_Sensor_half_moon_100um_thickness", sensor},
	{"Planar_Sensor_half_moon_150um_thickness", sensor},
	{"ThreeD_Sensor_half_moon_25x100um", sensor},
	{"ThreeD_Sensor_half_moon_50x50um", sensor},
	{"Single_bare_module", bareModule},
	{"Dual_bare_module", bareModule},
	{"Quad_bare_module", bareModule},
	{"Digital_single_bare_module", bareModule},
	{"Digital_quad_bare_module", bareModule},
	{"FourInch_bare_module_gel_pack", dsl.Gap("gel pack layout not defined")},
	{"SixInch_bare_module_gel_pack", dsl.Gap("gel pack layout not defined")},
	{"Triplet_L0_Stave_PCB", pcbTriplets},
	{"Triplet_L0_R0_PCB", pcbTriplets},
	{"Triplet_L0_R0p5_PCB", pcbTriplets},
	{"Quad_PCB", pcb},
	{"Dual_PCB", pcb},
	{"PCB_test_coupon", pcb},
	{"OB_wirebond_protection_roof", dsl.Gap("wirebond protection roof layout not defined")},
	{"Triplet_L0_stave_module", tripletModule},
	{"Triplet_L0_Ring0_module", tripletModule},
	{"Triplet_L0_Ring0p5_module", tripletModule},
	{"L1_quad_module", module},
	{"Outer_system_quad_module", module},
	{"Dual_chip_module", module},
	{"Single_chip_module", module},
	{"Digital_triplet_L0_stave_module", tripletModule},
	{"Digital_triplet_L0_ring0_module", tripletModule},
	{"Digital_triplet_L0_ring0p5_module", tripletModule},
	{"Digital_quad_module", module},
	{"Digital_L1_quad_module", module},
	{"Dummy_triplet_L0_stave_module", tripletModule},
	{"Dummy_triplet_L0_ring0_module", tripletModule},
	{"Dummy_triplet_L0_ring0p5_module", tripletModule},
	{"Dummy_quad_module", module},
	{"Dummy_L1_quad_module", module},
	{"Module_carrier", moduleCarrier},
	// dummy for testing of GUIs/tutorials
	{"Dummy_FE_chip_wafer", feChip},
	{"Dummy_tutorial_FE_chip", feChip},
	// no code is named like this; the code table says "Dummy_sensor_wafer (with ..."
	{"Dummy_sensor_wafer", sensor},
	{"Dummy_tutorial_sensor_tile", sensor},
	{"Dummy_sensor_test_structure", sensor},
	{"Dummy_sensor_half_moon", sensor},
	{"Dummy_single_bare_module", bareModule},
	{"Dummy_quad_bare_module", bareModule},
	{"Dummy_tutorial_bare_module", bareModule},
	{"Dummy_bare_module_gel_pack", dsl.Gap("gel pack layout not defined")},
	{"Dummy_tutorial_PCB", pcb},
	{"Dummy_PCB_test_coupon", pcb},
	{"Dummy_OB_wirebond_protection_roof", dsl.Gap("wirebond protection roof layout not defined")},
	{"Dummy_tutorial_module", module},
	{"Dummy_module_carrier", moduleCarrier},
}
