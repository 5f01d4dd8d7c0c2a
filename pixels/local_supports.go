package pixels

import (
	"github.com/reoring/itksn/dsl"
)

var localSupportsProductionType = dsl.Enum(1,
	"Pre_production", "0",
	"Production", "1",
	"Prototype", "2",
	"All_types", "9",
)

var localSupportsFlavor = dsl.Enum(1,
	"L0", "0",
	"L1", "1",
	"R01", "2",
	"R0p5", "3",
	"R1", "4",
)

var localSupportsLongeronFlavor = dsl.Enum(1,
	"L0", "0",
	"L1", "1",
	"R01", "2",
	"R0p5", "3",
	"R1", "4",
	"A_side", "5",
	"C_side", "6",
)

var localSupports = dsl.Struct().
	Field("layer", dsl.Bytes(1)).
	Field("production_type", localSupportsProductionType).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var localSupportsIS = dsl.Struct().
	Field("production_type", localSupportsProductionType).
	Field("type", localSupportsFlavor).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var localSupportsLongeron = dsl.Struct().
	Field("production_type", localSupportsProductionType).
	Field("type", localSupportsLongeronFlavor).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var localSupportsIHR = dsl.Struct().
	Field("production_type", localSupportsProductionType).
	Field("type", localSupportsFlavor).
	Field("position", dsl.Enum(1,
		"Standard", "1",
		"Last", "2",
	)).
	Field("number", dsl.Bytes(4)).
	MustBuild()

var loadedLocalSupportsOBModule = dsl.Struct().
	Field("production_type", localSupportsProductionType).
	Field("PCB_manufacturer", pcbManufacturer).
	Field("number", dsl.Bytes(5)).
	MustBuild()

// Only the type digit of a handling frame/box is documented; the other six
// bytes stay raw.
var localSupportsFrameBox = dsl.Struct().
	Field("type", dsl.Enum(1,
		"Longeron", "1",
		"HR", "2",
	)).
	Field("number", dsl.Bytes(6)).
	MustBuild()

var localSupportComponents = []Component{
	// local supports
	{"IS_capillary", "CP", []Area{InnerPixel}},
	{"IS_end_tube", "ET", []Area{InnerPixel}},
	{"IS_cooling_tube", "CA", []Area{InnerPixel}},
	{"IS_bare_local_support_stave", "SS", []Area{InnerPixel}},
	{"IS_bare_local_support_ring", "RS", []Area{InnerPixel}},
	{"IS_ring_local_support_assembly_loaded_ring", "RL", []Area{InnerPixel}},
	{"IS_barrel_stave_assembly_loaded_stave", "SL", []Area{InnerPixel}},
	{"OB_Base_Block", "BB", []Area{OuterPixelBarrel}},
	{"OB_Cooling_Block", "CB", []Area{OuterPixelBarrel}},
	{"OB_TPG_Tile", "GT", []Area{OuterPixelBarrel}},
	{"OB_Local_Support_Inserts", "IN", []Area{OuterPixelBarrel}},
	{"OB_Gusset", "RG", []Area{OuterPixelBarrel}},
	{"OB_Truss", "LT", []Area{OuterPixelBarrel}},
	{"OB_Half_Ring_Shell", "RS", []Area{OuterPixelBarrel}},
	{"OB_End_of_longeron_Bracket_End_Gusset", "EG", []Area{OuterPixelBarrel}},
	{"OB_Pipe_Support", "PS", []Area{OuterPixelBarrel}},
	{"OB_Evaporator_Sleeves", "ES", []Area{OuterPixelBarrel}},
	{"OB_Cooling_Pipe_IHR", "RP", []Area{OuterPixelBarrel}},
	{"OB_Cooling_Pipe_Longeron", "LP", []Area{OuterPixelBarrel}},
	{"OB_Functional_Pipe_for_IHR", "RE", []Area{OuterPixelBarrel}},
	{"OB_Functional_Pipe_for_Longeron", "LE", []Area{OuterPixelBarrel}},
	{"OB_End_of_longeron_Support", "EL", []Area{OuterPixelBarrel}},
	{"OB_Bare_Module_Cell", "BC", []Area{OuterPixelBarrel}},
	{"OB_Functional_IHR", "FR", []Area{OuterPixelBarrel}},
	{"OB_Functional_Longeron", "FL", []Area{OuterPixelBarrel}},
	{"OB_Loaded_Module_Cell", "LC", []Area{OuterPixelBarrel}},
	{"OB_Loaded_IHR", "LR", []Area{OuterPixelBarrel}},
	{"OB_Loaded_Longeron", "LL", []Area{OuterPixelBarrel}},
	{"OB_IHR_Handling_Frame", "HR", []Area{OuterPixelBarrel}},
	{"OB_Longeron_Handling_Frame", "HL", []Area{OuterPixelBarrel}},
	{"OB_Bare_Cell_Transport_Box", "TB", []Area{OuterPixelBarrel}},
	{"OEC_Trapezoids", "TZ", []Area{PixelEndcaps}},
	{"OEC_Electrical break", "EB", []Area{PixelEndcaps}},
	{"OEC_Inner_Rim_Insert", "II", []Area{PixelEndcaps}},
	{"OEC_Outer_Rim_mounting_lugs", "ML", []Area{PixelEndcaps}},
	{"OEC_Inner_Rim_Closeout", "IC", []Area{PixelEndcaps}},
	{"OEC_Outer_Rim_Closeout", "OC", []Area{PixelEndcaps}},
	{"OEC_Pipe_Closeout_support_closeout", "SC", []Area{PixelEndcaps}},
	{"OEC_Half_Sandwich", "HS", []Area{PixelEndcaps}},
	{"OEC_Evaporator", "EV", []Area{PixelEndcaps}},
	{"OEC_Bare_half_ring_assembly_Bare_support", "BH", []Area{PixelEndcaps}},
	{"OEC_Loaded_local_support_loaded_support", "LS", []Area{PixelEndcaps}},
	{"OEC_Handling_frame_support_frame", "SF", []Area{PixelEndcaps}},
	{"OEC_Transport/storage_box_support_box", "SB", []Area{PixelEndcaps}},
	{"Local_support_handling_frame_box", "LB", []Area{PixelEndcaps, InnerPixel, OuterPixelBarrel}},
	{"High_voltage_group", "VG", []Area{PixelEndcaps, InnerPixel, OuterPixelBarrel}},
	{"Serial_powering_scheme", "SP", []Area{PixelEndcaps, InnerPixel, OuterPixelBarrel}},
	// dummy local supports
	{"Dummy_IS_capillary", "YA", []Area{InnerPixel}},
	{"Dummy_IS_end_tube", "YB", []Area{InnerPixel}},
	{"Dummy_IS_cooling_tube", "YD", []Area{InnerPixel}},
	{"Dummy_IS_bare_local_support_stave", "YE", []Area{InnerPixel}},
	{"Dummy_IS_bare_local_support_ring", "YF", []Area{InnerPixel}},
	{"Dummy_IS_ring_local_support_assembly_loaded_ring", "YG", []Area{InnerPixel}},
	{"Dummy_IS_barrel_stave_assembly_loaded_stave", "YH", []Area{InnerPixel}},
	{"Dummy_OB_Base_Block", "ZA", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Cooling_Block", "ZB", []Area{OuterPixelBarrel}},
	{"Dummy_OB_TPG_Tile", "ZC", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Local_Support_Inserts", "ZD", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Gusset", "ZE", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Truss", "ZF", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Half_Ring_Shell", "ZG", []Area{OuterPixelBarrel}},
	{"Dummy_OB_End_of_longeron_Bracket_End_Gusset", "ZH", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Pipe_Support", "ZI", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Evaporator_Sleeves", "ZJ", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Cooling_Pipe_IHR", "ZK", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Cooling_Pipe_Longeron", "ZL", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Functional_Pipe_for_IHR", "ZM", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Functional_Pipe_for_Longeron", "ZN", []Area{OuterPixelBarrel}},
	{"Dummy_OB_End_of_longeron_Support", "ZO", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Bare_Module_Cell", "ZP", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Functional_IHR", "ZQ", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Functional_Longeron", "ZR", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Loaded_Module_Cell", "ZS", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Loaded_IHR", "ZT", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Loaded_Longeron", "ZU", []Area{OuterPixelBarrel}},
	{"Dummy_OB_IHR_Handling_Frame", "ZV", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Longeron_Handling_Frame", "ZW", []Area{OuterPixelBarrel}},
	{"Dummy_OB_Bare_Cell_Transport_Box", "ZX", []Area{OuterPixelBarrel}},
	{"Dummy_OEC_Trapezoids", "YI", []Area{PixelEndcaps}},
	{"Dummy_OEC_Electrical break", "YJ", []Area{PixelEndcaps}},
	{"Dummy_OEC_Inner_Rim_Insert", "YK", []Area{PixelEndcaps}},
	{"Dummy_OEC_Outer_Rim_mounting_lugs", "YL", []Area{PixelEndcaps}},
	{"Dummy_OEC_Inner_Rim_Closeout", "YM", []Area{PixelEndcaps}},
	{"Dummy_OEC_Outer_Rim_Closeout", "YN", []Area{PixelEndcaps}},
	{"Dummy_OEC_Pipe_Closeout_support_closeout", "YO", []Area{PixelEndcaps}},
	{"Dummy_OEC_Half_Sandwich", "YP", []Area{PixelEndcaps}},
	{"Dummy_OEC_Evaporator", "YQ", []Area{PixelEndcaps}},
	{"Dummy_OEC_Bare_half_ring_assembly_Bare_support", "YR", []Area{PixelEndcaps}},
	{"Dummy_OEC_Loaded_local_support_loaded_support", "YS", []Area{PixelEndcaps}},
	{"Dummy_OEC_Handling_frame_support_frame", "YT", []Area{PixelEndcaps}},
	{"Dummy_OEC_Transport/storage_box_support_box", "YU", []Area{PixelEndcaps}},
	{"Dummy_Local_support_handling_frame_box", "YV", []Area{PixelEndcaps, InnerPixel, OuterPixelBarrel}},
	{"Dummy_High_voltage_group", "YW", []Area{PixelEndcaps, InnerPixel, OuterPixelBarrel}},
	{"Dummy_Serial_powering_scheme", "YX", []Area{PixelEndcaps, InnerPixel, OuterPixelBarrel}},
}

// localSupportPayloads is shared by each real component and its dummy twin.
func localSupportPayloads() []Payload {
	base := []Payload{
		{"IS_capillary", localSupportsIS},
		{"IS_end_tube", localSupportsIS},
		{"IS_cooling_tube", localSupportsIS},
		{"IS_bare_local_support_stave", localSupportsIS},
		{"IS_bare_local_support_ring", localSupportsIS},
		{"IS_ring_local_support_assembly_loaded_ring", localSupports},
		{"IS_barrel_stave_assembly_loaded_stave", localSupports},
		{"OB_Base_Block", localSupports},
		{"OB_Cooling_Block", localSupports},
		{"OB_TPG_Tile", localSupports},
		{"OB_Local_Support_Inserts", localSupports},
		{"OB_Gusset", localSupports},
		{"OB_Truss", localSupports},
		{"OB_Half_Ring_Shell", localSupports},
		{"OB_End_of_longeron_Bracket_End_Gusset", localSupports},
		{"OB_Pipe_Support", localSupports},
		{"OB_Evaporator_Sleeves", localSupports},
		{"OB_Cooling_Pipe_IHR", localSupports},
		{"OB_Cooling_Pipe_Longeron", localSupports},
		{"OB_Functional_Pipe_for_IHR", localSupports},
		{"OB_Functional_Pipe_for_Longeron", localSupports},
		{"OB_End_of_longeron_Support", localSupports},
		{"OB_Bare_Module_Cell", localSupports},
		{"OB_Functional_IHR", localSupportsIHR},
		{"OB_Functional_Longeron", localSupportsLongeron},
		{"OB_Loaded_Module_Cell", loadedLocalSupportsOBModule},
		{"OB_Loaded_IHR", localSupports},
		{"OB_Loaded_Longeron", localSupports},
		{"OB_IHR_Handling_Frame", localSupports},
		{"OB_Longeron_Handling_Frame", localSupports},
		{"OB_Bare_Cell_Transport_Box", localSupports},
		{"OEC_Trapezoids", localSupports},
		{"OEC_Electrical break", localSupports},
		{"OEC_Inner_Rim_Insert", localSupports},
		{"OEC_Outer_Rim_mounting_lugs", localSupports},
		{"OEC_Inner_Rim_Closeout", localSupports},
		{"OEC_Outer_Rim_Closeout", localSupports},
		{"OEC_Pipe_Closeout_support_closeout", localSupports},
		{"OEC_Half_Sandwich", localSupports},
		{"OEC_Evaporator", localSupports},
		{"OEC_Bare_half_ring_assembly_Bare_support", localSupports},
		{"OEC_Loaded_local_support_loaded_support", localSupports},
		{"OEC_Handling_frame_support_frame", localSupports},
		{"OEC_Transport/storage_box_support_box", localSupports},
		{"Local_support_handling_frame_box", localSupportsFrameBox},
		{"High_voltage_group", localSupports},
		{"Serial_powering_scheme", localSupports},
	}
	out := make([]Payload, 0, 2*len(base))
	out = append(out, base...)
	for _, p := range base {
		out = append(out, Payload{"Dummy_" + p.Name, p.Codec})
	}
	return out
}
