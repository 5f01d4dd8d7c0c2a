package pixels

import (
	"github.com/reoring/itksn"
	"github.com/reoring/itksn/dsl"
)

var orientation = dsl.Enum(1,
	"normal", "0",
	"mirror", "1",
)

// production versions 2, 3 and 5 are missing from the optoboard table
var optoboard = dsl.Struct().
	Field("production_version", dsl.OneOf("2", "3", "4", "5")).
	Field("LpGBT_count", dsl.Enum(1,
		"one", "1",
		"two", "2",
		"four", "4",
	)).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var terminationBoard = dsl.Struct().
	Field("production_version", dsl.Const("0")).
	Field("flavor", dsl.Enum(1,
		"Normal_L_long", "0",
		"Normal_L_short", "1",
		"Mirror_L_long", "2",
		"Mirror_L_short", "3",
		"Normal_slim", "4",
		"Mirror_slim", "5",
		"Normal_extended_slim", "6",
	)).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var optoboxPowerboardConnector = dsl.Struct().
	Field("production_version", dsl.OneOf("0", "2", "3")).
	Field("orientation", orientation).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var optobox = dsl.Struct().
	Field("production_version", dsl.Const("0")).
	Field("orientation", orientation).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var canbus = dsl.Struct().
	Field("production_version", dsl.Const("0")).
	Field("connector_type", dsl.Enum(1,
		"six", "6",
		"eight", "8",
	)).
	Field("number", dsl.Bytes(5)).
	MustBuild()

type flavorPair struct{ flavor, subflavor string }

// type0Components names the physical part of an inner system type-0
// cable, per component type and (flavor, subflavor).
var type0Components = map[string]map[flavorPair]string{
	"Data_PP0": {
		{"Barrel_Triplet", "NA"}: "L0 Barrel Data Flex",
		{"Barrel_Quad", "F1"}:    "L1 Barrel Data Flex",
		{"Barrel_Quad", "F2"}:    "L1 Barrel Data Flex",
		{"Barrel_Quad", "F3"}:    "L1 Barrel Data Flex",
		{"Barrel_Quad", "F4"}:    "L1 Barrel Data Flex",
		{"Ring0_Triplet", "F1"}:  "R0 Data Flex",
		{"Ring0_Triplet", "F2"}:  "R0 Data Flex",
		{"Ring0_Triplet", "F3"}:  "R0 Data Flex",
		{"Ring05_Triplet", "F1"}: "R0.5 Data Flex",
		{"Ring05_Triplet", "F2"}: "R0.5 Data Flex",
	},
	"Power_pigtail": {
		{"Barrel_Triplet", "NA"}: "L0 Barrel Power Flex",
		{"Barrel_Quad", "F1"}:    "L1 Barrel Power Flex",
		{"Barrel_Quad", "F2"}:    "L1 Barrel Power Flex",
		{"Ring0_Triplet", "NA"}:  "R0 Power",
		{"Ring0_Triplet", "F1"}:  "R0 Power Jumper",
	},
	"Rigid_flex": {
		{"Ring_Both", "NA"}:     "Coupled Ring R0/R1",
		{"Ring_Quad", "NA"}:     "Quad Ring R1",
		{"Ring0_Triplet", "NA"}: "Intermediate Ring",
	},
	"Pigtail": {
		{"Ring_Quad", "NA"}: "Quad Module Z-Ray Flex",
		{"Ring_Both", "F1"}: "Type-0 to PP0",
		{"Ring_Both", "F2"}: "Type-0 to PP0",
	},
}

// type0Component looks the part up from the enclosing component_code and
// the flavor/subflavor siblings.
func type0Component(sc *itksn.Scope) (itksn.Value, error) {
	cc, _ := sc.Parent().Lookup("component_code")
	fl, _ := sc.Lookup("flavor")
	sub, _ := sc.Lookup("subflavor")
	name := func(v itksn.Value) string {
		if v == nil {
			return ""
		}
		return v.String()
	}
	key := flavorPair{name(fl), name(sub)}
	byFlavor, ok := type0Components[name(cc)]
	if !ok {
		return nil, dsl.Fail(itksn.CodeNoMatchingVariant, "no type-0 parts for "+name(cc))
	}
	part, ok := byFlavor[key]
	if !ok {
		return nil, dsl.Fail(itksn.CodeNoMatchingVariant, name(cc)+" has no part "+key.flavor+"/"+key.subflavor)
	}
	return itksn.Text(part), nil
}

var isType0Cable = dsl.Struct().
	Field("production_version", dsl.Enum(1,
		"Pre_production", "0",
		"Production", "1",
		"Dummy", "9",
	)).
	Field("flavor", dsl.Enum(1,
		"Barrel_Triplet", "0",
		"Barrel_Quad", "1",
		"Ring0_Triplet", "2",
		"Ring_Quad", "3",
		"Ring_Both", "4",
		"Ring05_Triplet", "5",
	)).
	Field("subflavor", dsl.Enum(1,
		"NA", "0",
		"F1", "1",
		"F2", "2",
		"F3", "3",
		"F4", "4",
		"F5", "5",
		"F6", "6",
	)).
	Computed("component", type0Component).
	Field("number", dsl.Bytes(4)).
	MustBuild()

var type1ProductionVersion = dsl.Enum(1,
	"Prototype", "0",
	"Pre_production", "1",
	"Production", "2",
	"Dummy", "9",
)

var isType1Cable = dsl.Struct().
	Field("production_version", type1ProductionVersion).
	Field("flavor", dsl.Enum(1,
		"L0L1", "0",
		"L02xL1", "1",
		"Coupled_Ring", "2",
		"Intermediate_Ring", "3",
		"QR1", "4",
		"QR2", "5",
	)).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var pp1 = dsl.Struct().
	Field("production_version", type1ProductionVersion).
	Field("glenair_part", dsl.Enum(1,
		"Type_2_Header", "0",
		"Type_1_Receptacle", "1",
		"Strain_Arm", "3",
		"Filter_Plug", "9",
	)).
	Field("flavor", dsl.Enum(1,
		"N", "0",
		"A", "1",
		"B", "2",
		"C", "3",
		"D", "4",
		"E", "5",
	)).
	Field("number", dsl.Bytes(4)).
	MustBuild()

var piType0PP0 = dsl.Struct().
	Field("production_version", dsl.Enum(1,
		"Prototype", "0",
		"Pre_production", "1",
		"Production", "2",
		"Dummy", "9",
	)).
	Field("flavor", dsl.Enum(1,
		"Zp_3Stave", "0",
		"Zm_3Stave", "1",
		"Zp_2Stave", "2",
		"Zm_2Stave", "3",
		"Coupled_Ring", "4",
		"Intermediate_Ring", "5",
		"Quad_Ring", "6",
	)).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var pbType0Type = dsl.Enum(1,
	"Flat", "0",
	"Inclined", "1",
	"Inclined_test_coupon", "2",
)

var pbType0Version = dsl.Enum(1,
	"Pre_production", "0",
	"Production", "1",
	"Prototype", "9",
)

// pigtails and pigtail panels; an inclined test coupon has no flavor table
var pbType0Cable = dsl.Struct().
	Field("type", pbType0Type).
	Field("flavor", dsl.Switch(dsl.This("type"), dsl.Cases{
		"Flat": dsl.Enum(1,
			"Bottom", "0",
			"Top", "1",
		),
		"Inclined": dsl.Enum(1,
			"Front", "0",
			"Back", "1",
			"Front_Last_ring", "2",
			"Back_Last_ring", "3",
		),
	})).
	Field("version", pbType0Version).
	Field("number", dsl.Bytes(4)).
	MustBuild()

var pbType0InclinedFlavor = dsl.Enum(1,
	"L2_SP1", "0",
	"L2_SP2", "1",
	"L3_SP1", "2",
	"L3_SP2", "3",
	"L4_SP1", "4",
	"L4_SP2", "5",
	"Dummy", "9",
)

// rigid flex PP0; test coupons reuse the inclined table
var pbType0PP0 = dsl.Struct().
	Field("type", pbType0Type).
	Field("flavor", dsl.Switch(dsl.This("type"), dsl.Cases{
		"Flat": dsl.Enum(1,
			"Short_L2", "0",
			"Long_L2", "1",
			"Short_L3_L4", "2",
			"Long_L3_L4", "3",
		),
		"Inclined":             pbType0InclinedFlavor,
		"Inclined_test_coupon": pbType0InclinedFlavor,
	})).
	Field("version", pbType0Version).
	Field("number", dsl.Bytes(4)).
	MustBuild()

var pbType1Power = dsl.Struct().
	Field("type", dsl.Enum(1,
		"Flat", "0",
		"Inclined", "1",
	)).
	Field("serial_power_chains", dsl.Enum(1,
		"F1", "4",
		"F2", "2",
	)).
	Field("number", dsl.Bytes(5)).
	MustBuild()

var pbType1DataBundle = dsl.Struct().
	Field("flavor", dsl.Enum(2,
		"Flat_L2_Normal_Slim", "00",
		"Flat_L2_Mirror_Slim", "01",
		"Flat_L3_L4_Mirror_Slim", "02",
		"Flat_L3_L4_Normal_Slim", "03",
		"Inclined_L2_Normal_L_short", "04",
		"Inclined_L2_Normal_L_long", "05",
		"Inclined_L2_Mirror_L_short", "06",
		"Inclined_L2_Mirror_L_long", "07",
		"Inclined_L3_Normal_Slim10", "08",
		"Inclined_L3_Mirror_Slim10", "09",
		"Inclined_L4_Mirror_Slim16", "10",
		"Inclined_L4_Normal_Slim", "11",
		"Inclined_L3_L4_Mirror_Slim12", "12",
		"Inclined_L3_L4_Normal_Slim12", "13",
	)).
	MustBuild()

var pbType1DataInclined = dsl.Struct().
	Field("version", dsl.Bytes(1)).
	Field("manufacturer", dsl.Bytes(1)).
	MustBuild()

// The length bytes ("00" for inclined cables) decide how the first two
// bytes read, so they are peeked before the data field.
var pbType1Data = dsl.Struct().
	Peek("_reserved", 2, 2).
	Field("data", dsl.Switch(dsl.This("_reserved"), dsl.Cases{
		"00": pbType1DataInclined,
	}).Default(pbType1DataBundle)).
	Field("length", dsl.Bytes(2)).
	Field("number", dsl.Bytes(3)).
	MustBuild()

var endcapLayer = dsl.Enum(1,
	"L2", "2",
	"L3", "3",
	"L4", "4",
	"All", "9",
)

var peType0Data = dsl.Struct().
	Field("layer", endcapLayer).
	Field("flavor", dsl.Switch(dsl.This("layer"), dsl.Cases{
		"L2": dsl.Enum(1,
			"ring15_Front", "0",
			"ring15_Back", "1",
			"ring611_Front", "2",
			"ring611_Back", "3",
		),
		"L3": dsl.Enum(1,
			"Front_5downlinks", "0",
			"Back_5downlinks", "1",
			"Front_6downlinks", "2",
			"Back_6downlinks", "3",
		),
		"L4": dsl.Enum(1,
			"ring17_Front_4downlinks", "0",
			"ring17_Back_4downlinks", "1",
			"ring17_Front_5downlinks", "2",
			"ring17_Back_5downlinks", "3",
			"ring89_Front_4downlinks", "4",
			"ring89_Back_4downlinks", "5",
			"ring89_Front_5downlinks", "6",
			"ring89_Back_5downlinks", "7",
		),
	})).
	Field("reserved", dsl.Const("0")).
	Field("number", dsl.Bytes(4)).
	MustBuild()

var peType0Power = dsl.Struct().
	Field("layer", endcapLayer).
	Field("flavor", dsl.Bytes(1)).
	Field("reserved", dsl.Const("0")).
	Field("number", dsl.Bytes(4)).
	MustBuild()

// PP1 connectors and power bustapes of the endcaps
var peType1 = dsl.Struct().
	Field("flavor", dsl.Bytes(1)).
	Field("reserved", dsl.Const("0")).
	Field("length", dsl.Enum(1,
		"_50cm", "0",
		"_250cm", "9",
	)).
	Field("number", dsl.Bytes(4)).
	MustBuild()

var type2 = dsl.Struct().
	Field("flavor", dsl.Switch(dsl.Parent("component_code"), dsl.Cases{
		"Type_2_power_cable": dsl.Enum(1,
			"normal", "1",
			"abnormal", "2",
		),
		"Type_2_optobox_cable": dsl.Const("0"),
		"PP2_box": dsl.Enum(1,
			"F1", "1",
			"F2", "2",
			"F3", "3",
			"F4", "4",
			"F5", "5",
			"F6", "6",
			"F7", "7",
			"F8", "8",
		),
	})).
	Field("number", dsl.Bytes(6)).
	MustBuild()

var type3 = dsl.Struct().
	Field("flavor", dsl.Const("0")).
	Field("numbers", dsl.Bytes(6)).
	MustBuild()

// only the flavor digit is defined for PP3
var type4 = dsl.Struct().
	Field("flavor", dsl.Enum(1,
		"Pre_production_non_rad_hard", "0",
		"Pre_production_rad_hard", "1",
		"Production", "2",
	)).
	MustBuild()

var mopsChip = dsl.Struct().
	Field("reserved", dsl.Const("00")).
	Field("production_version", dsl.Enum(1,
		"Pre_production", "0",
		"Production", "3",
	)).
	Field("vendor", dsl.Bytes(4)).
	MustBuild()

var serviceComponents = []Component{
	{"Optoboard", "OB", []Area{PixelGeneral}},
	{"Optoboard_termination_board", "OT", []Area{PixelGeneral}},
	{"Optobox", "OX", []Area{PixelGeneral}},
	{"Optobox_powerbox", "OW", []Area{PixelGeneral}},
	{"Optobox_connector_board", "OC", []Area{PixelGeneral}},
	{"Optobox_optical_fan_out", "OF", []Area{PixelGeneral}},
	{"Optopanel", "OS", []Area{PixelGeneral}},
	{"Optopanel_cooling_plate", "OO", []Area{PixelGeneral}},
	{"Optobox_powerboard", "OP", []Area{PixelGeneral}},
	{"LpGBT_chip", "OL", []Area{PixelGeneral}},
	{"GBCR_chip", "OG", []Area{PixelGeneral}},
	{"Vtrx_module", "OV", []Area{PixelGeneral}},
	{"Bpol2V5_chip", "O5", []Area{PixelGeneral}},
	{"Bpol2V5_carrier_board", "OK", []Area{PixelGeneral}},
	{"Bpol12V_chip", "O2", []Area{PixelGeneral}},
	{"MOPS_chip", "MP", []Area{PixelGeneral}},
	{"Power_cables", "OI", []Area{PixelGeneral}},
	{"CAN_bus_cable", "OD", []Area{PixelGeneral}},
	{"Pigtail", "PG", []Area{InnerPixel, OuterPixelBarrel}},
	{"Rigid_flex", "RF", []Area{InnerPixel, OuterPixelBarrel}},
	{"Data_PP0", "DP", []Area{InnerPixel, PixelEndcaps}},
	{"Power_pigtail", "PP", []Area{InnerPixel, PixelEndcaps}},
	{"Power_bustape", "PB", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Bare_bustape", "NB", []Area{PixelEndcaps}},
	{"Pigtail_panel", "PL", []Area{OuterPixelBarrel}},
	{"PP0", "0P", []Area{InnerPixel}},
	{"Finger", "FI", []Area{InnerPixel}},
	// the trailing space is part of the name
	{"Type_1_Data_link ", "D1", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Type_1_Power_DCS_line", "P1", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Environmental_link", "E1", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"PP1_connector", "1P", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"PP1_connector_pieces_segments", "CS", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	// lower case here, upper case in the payload table: decodes to raw bytes
	{"strain_relief", "SR", []Area{OuterPixelBarrel}},
	{"Type_2_power_cable", "P2", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Type_2_optobox_cable", "20", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"PP2_box", "2P", []Area{PixelGeneral}},
	{"Type_3_HV_cable", "P3", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Type_3_LV_cable", "L3", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"MOPS_cable", "M3", []Area{PixelGeneral}},
	{"TiLock", "TL", []Area{PixelGeneral}},
	{"OPTO_MOPS", "OM", []Area{PixelGeneral}},
	{"PP3_power", "3P", []Area{PixelGeneral}},
	// dummy services; Q1..Q5 are handed out twice (no dummy LpGBT chip,
	// bare bustape or strain relief exists)
	{"Dummy_Optoboard", "Q1", []Area{PixelGeneral}},
	{"Dummy_Optoboard_termination_board", "Q2", []Area{PixelGeneral}},
	{"Dummy_Optobox", "Q3", []Area{PixelGeneral}},
	{"Dummy_Optobox_powerbox", "Q4", []Area{PixelGeneral}},
	{"Dummy_Optobox_connector_board", "Q5", []Area{PixelGeneral}},
	{"Dummy_Optobox_optical_fan_out", "Q6", []Area{PixelGeneral}},
	{"Dummy_Optopanel", "Q7", []Area{PixelGeneral}},
	{"Dummy_Optopanel_cooling_plate", "Q8", []Area{PixelGeneral}},
	{"Dummy_Optobox_powerboard", "Q9", []Area{PixelGeneral}},
	{"Dummy_GBCR_chip", "QA", []Area{PixelGeneral}},
	{"Dummy_Vtrx_module", "QB", []Area{PixelGeneral}},
	{"Dummy_Bpol2V5_chip", "QC", []Area{PixelGeneral}},
	{"Dummy_Bpol2V5_carrier_board", "QD", []Area{PixelGeneral}},
	{"Dummy_Bpol12V_chip", "QE", []Area{PixelGeneral}},
	{"Dummy_MOPS_chip", "QF", []Area{PixelGeneral}},
	{"Dummy_Power_cables", "QG", []Area{PixelGeneral}},
	{"Dummy_CAN_bus_cable", "QH", []Area{PixelGeneral}},
	{"Dummy_Pigtail", "QI", []Area{OuterPixelBarrel}},
	{"Dummy_Rigid_flex", "QK", []Area{InnerPixel, OuterPixelBarrel}},
	{"Dummy_Data_PP0", "QL", []Area{InnerPixel, PixelEndcaps}},
	{"Dummy_Power_pigtail", "QM", []Area{InnerPixel, PixelEndcaps}},
	{"Dummy_Power_bustape", "QN", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Dummy_Pigtail_panel", "QO", []Area{OuterPixelBarrel}},
	{"Dummy_PP0", "QP", []Area{InnerPixel}},
	{"Dummy_Finger", "QV", []Area{InnerPixel}},
	{"Dummy_Type_1_Data_link ", "QQ", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Dummy_Type_1_Power_DCS_line", "QR", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Dummy_Environmental_link", "QS", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Dummy_PP1_connector", "QT", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Dummy_PP1_connector_pieces_segments", "QU", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Dummy_Type_2_power_cable", "QW", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Dummy_Type_2_optobox_cable", "QX", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Dummy_PP2_box", "QY", []Area{PixelGeneral}},
	{"Dummy_Type_3_HV_cable", "QZ", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Dummy_Type_3_LV_cable", "Q1", []Area{InnerPixel, OuterPixelBarrel, PixelEndcaps}},
	{"Dummy_MOPS_cable", "Q2", []Area{PixelGeneral}},
	{"Dummy_TiLock", "Q3", []Area{PixelGeneral}},
	{"Dummy_OPTO_MOPS", "Q4", []Area{PixelGeneral}},
	{"Dummy_PP3_power", "Q5", []Area{PixelGeneral}},
}

func gap(what string) *dsl.GapCodec {
	return dsl.Gap(what + " layout not defined")
}

var (
	pigtail            = bySubarea(nil, isType0Cable, nil, pbType0Cable)
	rigidFlex          = bySubarea(nil, isType0Cable, nil, pbType0PP0)
	dataPP0            = bySubarea(nil, isType0Cable, peType0Data, nil)
	powerPigtail       = bySubarea(nil, isType0Cable, peType0Power, nil)
	powerBustape       = bySubarea(nil, nil, peType0Power, nil)
	pp0                = bySubarea(nil, piType0PP0, nil, nil)
	type1DataLink      = bySubarea(nil, nil, nil, pbType1Data)
	type1PowerDCSLine  = bySubarea(nil, isType1Cable, peType1, pbType1Power)
	pp1Connector       = bySubarea(nil, pp1, peType1, nil)
	pp1ConnectorPieces = bySubarea(nil, nil, nil, nil)
)

var servicePayloads = []Payload{
	{"Optoboard", optoboard},
	// termination boards of the outer barrel are not covered
	{"Optoboard_termination_board", terminationBoard},
	{"Optobox", optobox},
	{"Optobox_powerbox", optobox},
	{"Optobox_connector_board", optoboxPowerboardConnector},
	{"Optobox_optical_fan_out", optobox},
	{"Optopanel", gap("optopanel")},
	{"Optopanel_cooling_plate", gap("optopanel cooling plate")},
	{"Optobox_powerboard", optoboxPowerboardConnector},
	{"LpGBT_chip", gap("lpGBT chip")},
	{"GBCR_chip", gap("GBCR chip")},
	{"Vtrx_module", gap("VTRx module")},
	{"Bpol2V5_chip", gap("bPOL2V5 chip")},
	{"Bpol2V5_carrier_board", gap("bPOL2V5 carrier board")},
	{"Bpol12V_chip", gap("bPOL12V chip")},
	{"MOPS_chip", mopsChip},
	{"Power_cables", gap("power cable")},
	{"CAN_bus_cable", canbus},
	{"Pigtail", pigtail},
	{"Rigid_flex", rigidFlex},
	{"Data_PP0", dataPP0},
	{"Power_pigtail", powerPigtail},
	{"Power_bustape", powerBustape},
	{"Bare_bustape", gap("bare bustape")},
	{"Pigtail_panel", pbType0Cable},
	{"PP0", pp0},
	{"Finger", gap("finger")},
	{"Type_1_Data_link ", type1DataLink},
	{"Type_1_Power_DCS_line", type1PowerDCSLine},
	{"Environmental_link", gap("environmental link")},
	{"PP1_connector", pp1Connector},
	{"PP1_connector_pieces_segments", pp1ConnectorPieces},
	{"Strain_relief", gap("strain relief")},
	{"Type_2_power_cable", type2},
	{"Type_2_optobox_cable", type2},
	{"PP2_box", type2},
	{"Type_3_HV_cable", type3},
	{"Type_3_LV_cable", type3},
	{"MOPS_cable", type3},
	{"TiLock", type3},
	{"OPTO_MOPS", type3},
	{"PP3_power", type4},
	// dummy services
	{"Dummy_Optoboard", optoboard},
	{"Dummy_Optoboard_termination_board", terminationBoard},
	{"Dummy_Optobox", optobox},
	{"Dummy_Optobox_powerbox", optobox},
	{"Dummy_Optobox_connector_board", optoboxPowerboardConnector},
	{"Dummy_Optobox_optical_fan_out", optobox},
	{"Dummy_Optopanel", gap("optopanel")},
	{"Dummy_Optopanel_cooling_plate", gap("optopanel cooling plate")},
	{"Dummy_Optobox_powerboard", optoboxPowerboardConnector},
	{"Dummy_GBCR_chip", gap("GBCR chip")},
	{"Dummy_Vtrx_module", gap("VTRx module")},
	{"Dummy_Bpol2V5_chip", gap("bPOL2V5 chip")},
	{"Dummy_Bpol2V5_carrier_board", gap("bPOL2V5 carrier board")},
	{"Dummy_Bpol12V_chip", gap("bPOL12V chip")},
	{"Dummy_MOPS_chip", mopsChip},
	{"Dummy_Power_cables", gap("power cable")},
	{"Dummy_CAN_bus_cable", canbus},
	{"Dummy_Pigtail", pigtail},
	{"Dummy_Rigid_flex", rigidFlex},
	{"Dummy_Data_PP0", dataPP0},
	{"Dummy_Power_pigtail", powerPigtail},
	{"Dummy_Power_bustape", powerBustape},
	{"Dummy_Pigtail_panel", pbType0Cable},
	{"Dummy_PP0", pp0},
	{"Dummy_Finger", gap("finger")},
	{"Dummy_Type_1_Data_link ", type1DataLink},
	{"Dummy_Type_1_Power_DCS_line", type1PowerDCSLine},
	{"Dummy_Environmental_link", gap("environmental link")},
	{"Dummy_PP1_connector", pp1Connector},
	{"Dummy_PP1_connector_pieces_segments", pp1ConnectorPieces},
	{"Dummy_Type_2_power_cable", type2},
	{"Dummy_Type_2_optobox_cable", type2},
	{"Dummy_PP2_box", type2},
	{"Dummy_Type_3_HV_cable", type3},
	{"Dummy_Type_3_LV_cable", type3},
	{"Dummy_MOPS_cable", type3},
	{"Dummy_TiLock", type3},
	{"Dummy_OPTO_MOPS", type3},
	{"Dummy_PP3_power", type4},
}
