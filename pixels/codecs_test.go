package pixels

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/itksn"
	"github.com/reoring/itksn/dsl"
)

func lookup(t *testing.T, v itksn.Value, path ...string) string {
	t.Helper()
	got, ok := itksn.Lookup(v, path...)
	if !ok || got == nil {
		t.Fatalf("no value at %v in\n%v", path, v)
	}
	return got.String()
}

func TestFEChip_Bits(t *testing.T) {
	v, err := itksn.DecodeAll(feChip, []byte("1048575"))
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]string{}
	for _, n := range []string{"batch_number", "batch", "wafer", "row", "column"} {
		got[n] = lookup(t, v, n)
	}
	want := map[string]string{"batch_number": "15", "batch": "ITkpix_v2", "wafer": "255", "row": "15", "column": "15"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	if _, err := itksn.DecodeAll(feChip, []byte("12a4567")); !itksn.HasCode(err, itksn.CodeInvalidNumber) {
		t.Fatalf("want invalid_number, got %v", err)
	}
}

func TestModule_OptionalPCB(t *testing.T) {
	v, err := itksn.DecodeAll(module, []byte("0101041"))
	if err != nil {
		t.Fatal(err)
	}
	if got := lookup(t, v, "PCB_manufacturer"); got != "EPEC" {
		t.Fatalf("PCB_manufacturer = %q", got)
	}
	if got := lookup(t, v, "number"); got != "01041" {
		t.Fatalf("number = %q", got)
	}

	v, err = itksn.DecodeAll(module, []byte("2101041"))
	if err != nil {
		t.Fatal(err)
	}
	if pcb, ok := itksn.Lookup(v, "PCB_manufacturer"); !ok || pcb != nil {
		t.Fatalf("PCB_manufacturer = %v, %v", pcb, ok)
	}
	if got := lookup(t, v, "number"); got != "101041" {
		t.Fatalf("number = %q", got)
	}
	b, err := itksn.EncodeAll(module, v)
	if err != nil || string(b) != "2101041" {
		t.Fatalf("encode = %q, %v", b, err)
	}
}

func TestPBType1Data_PeekSelectsLayout(t *testing.T) {
	v, err := itksn.DecodeAll(pbType1Data, []byte("AB00345"))
	if err != nil {
		t.Fatal(err)
	}
	if got := lookup(t, v, "data", "version"); got != "A" {
		t.Fatalf("version = %q", got)
	}
	rec := v.(*itksn.Record)
	if !rec.Fields[0].View || rec.Fields[0].Name != "_reserved" {
		t.Fatalf("first field = %+v", rec.Fields[0])
	}

	v, err = itksn.DecodeAll(pbType1Data, []byte("0512345"))
	if err != nil {
		t.Fatal(err)
	}
	if got := lookup(t, v, "data", "flavor"); got != "Inclined_L2_Normal_L_long" {
		t.Fatalf("flavor = %q", got)
	}
	b, err := itksn.EncodeAll(pbType1Data, v)
	if err != nil || string(b) != "0512345" {
		t.Fatalf("encode = %q, %v", b, err)
	}
}

func TestPBType1Data_InconsistentView(t *testing.T) {
	v, err := itksn.DecodeAll(pbType1Data, []byte("AB00345"))
	if err != nil {
		t.Fatal(err)
	}
	v.(*itksn.Record).Set("length", itksn.Bytes("12"))
	_, err = itksn.EncodeAll(pbType1Data, v)
	if !itksn.HasCode(err, itksn.CodeInconsistentView) {
		t.Fatalf("want inconsistent_view, got %v", err)
	}
}

// withComponent wraps a payload the way the serial envelope does, so that
// codecs reading the enclosing component_code can be tested alone.
func withComponent(payload itksn.Codec) itksn.Codec {
	return dsl.Struct().
		Field("component_code", dsl.Enum(2,
			"Pigtail", "PG",
			"Rigid_flex", "RF",
			"Data_PP0", "DP",
			"PP0", "0P",
			"Type_2_power_cable", "P2",
		)).
		Field("identifier", payload).
		MustBuild()
}

func TestType0Component(t *testing.T) {
	c := withComponent(isType0Cable)
	cases := []struct {
		in, want string
	}{
		{"RF0400000", "Coupled Ring R0/R1"},
		{"PG0300000", "Quad Module Z-Ray Flex"},
		{"DP1140001", "L1 Barrel Data Flex"},
	}
	for _, tc := range cases {
		v, err := itksn.DecodeAll(c, []byte(tc.in))
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if got := lookup(t, v, "identifier", "component"); got != tc.want {
			t.Errorf("%s: component = %q, want %q", tc.in, got, tc.want)
		}
		b, err := itksn.EncodeAll(c, v)
		if err != nil || string(b) != tc.in {
			t.Errorf("%s: encode = %q, %v", tc.in, b, err)
		}
	}

	for _, in := range []string{"PG0000000", "0P0000000"} {
		_, err := itksn.DecodeAll(c, []byte(in))
		if !itksn.HasCode(err, itksn.CodeNoMatchingVariant) {
			t.Errorf("%s: want no_matching_variant, got %v", in, err)
		}
	}
}

func TestType2_FlavorFollowsComponent(t *testing.T) {
	c := withComponent(type2)
	v, err := itksn.DecodeAll(c, []byte("P22123456"))
	if err != nil {
		t.Fatal(err)
	}
	if got := lookup(t, v, "identifier", "flavor"); got != "abnormal" {
		t.Fatalf("flavor = %q", got)
	}
	if _, err := itksn.DecodeAll(c, []byte("PG2123456")); !itksn.HasCode(err, itksn.CodeNoMatchingVariant) {
		t.Fatalf("want no_matching_variant, got %v", err)
	}
}

func TestBySubarea_MissingAreaIsGap(t *testing.T) {
	c := dsl.Struct().
		Field("subproject_code", Subprojects).
		Field("identifier", pp0).
		MustBuild()
	if _, err := itksn.DecodeAll(c, []byte("I2412345")); err != nil {
		t.Fatalf("inner pixel PP0: %v", err)
	}
	_, err := itksn.DecodeAll(c, []byte("B2412345"))
	if !itksn.HasCode(err, itksn.CodeNoMatchingVariant) {
		t.Fatalf("want no_matching_variant, got %v", err)
	}
	iss, _ := itksn.AsIssues(err)
	if iss[0].Hint != "payload not defined for outer_pixel_barrel" {
		t.Fatalf("hint = %q", iss[0].Hint)
	}
}

func TestPCBTriplets_DummyKeepsRawSites(t *testing.T) {
	v, err := itksn.DecodeAll(pcbTriplets, []byte("1025123"))
	if err != nil {
		t.Fatal(err)
	}
	loading, _ := itksn.Lookup(v, "loading")
	if _, raw := loading.(itksn.Bytes); !raw {
		t.Fatalf("loading = %#v, want raw bytes", loading)
	}
	v, err = itksn.DecodeAll(pcbTriplets, []byte("1121123"))
	if err != nil {
		t.Fatal(err)
	}
	if got := lookup(t, v, "loading"); got != "Oslo" {
		t.Fatalf("loading = %q", got)
	}
}
