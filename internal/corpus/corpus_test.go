package corpus

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/itksn/serial"
)

func TestRead(t *testing.T) {
	in := `
- serial: 20UPGFW2123456
  expect:
    component_code: FE_chip_wafer
    identifier/number: 0002123
    identifier/pcb: null
- serial: 20UPGMC2291234999
  error: trailing_data
---
- serial: 20UPICP1299999
`
	got, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []Case{
		{
			Serial: "20UPGFW2123456",
			Expect: map[string]any{
				"component_code":    "FE_chip_wafer",
				"identifier/number": "0002123",
				"identifier/pcb":    nil,
			},
			Line: 2,
		},
		{Serial: "20UPGMC2291234999", Error: "trailing_data", Line: 7},
		{Serial: "20UPICP1299999", Line: 10},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestRead_DuplicateKey(t *testing.T) {
	in := "- serial: 20UPGFW2123456\n  serial: 20UPGFC1048575\n"
	_, err := Read(strings.NewReader(in))
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
	if dup.Key != "serial" || dup.FirstLine != 1 || dup.Line != 2 {
		t.Fatalf("unexpected %+v", dup)
	}
}

func TestRead_Malformed(t *testing.T) {
	for name, in := range map[string]string{
		"not a sequence": "serial: 20UPGFW2123456\n",
		"missing serial": "- expect: {a: b}\n",
		"scalar case":    "- 20UPGFW2123456\n",
		"scalar expect":  "- serial: 20UPGFW2123456\n  expect: FE_chip_wafer\n",
		"bad yaml":       "- serial: [\n",
	} {
		if _, err := Read(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	if cases, err := Read(strings.NewReader("")); err != nil || len(cases) != 0 {
		t.Fatalf("empty input = %v, %v", cases, err)
	}
}

func TestCheck(t *testing.T) {
	p := serial.NewParser()
	pass := []Case{
		{Serial: "20UPGFW2123456", Expect: map[string]any{"identifier/batch": "RD53A", "identifier/wafer": "102"}},
		{Serial: "20UPIM12602173", Expect: map[string]any{"identifier/PCB_manufacturer": nil}},
		{Serial: "20UPGMC2291234999", Error: "trailing_data"},
	}
	if got := CheckAll(p, pass); len(got) != 0 {
		t.Fatalf("unexpected failures: %v", got)
	}

	fail := []struct {
		c    Case
		want string
	}{
		{Case{Serial: "20UPGFW2123456", Expect: map[string]any{"identifier/batch": "ITkpix_v1"}}, `identifier/batch = "RD53A", want "ITkpix_v1"`},
		{Case{Serial: "20UPGFW2123456", Expect: map[string]any{"identifier/nope": "x"}}, "identifier/nope: no such field"},
		{Case{Serial: "20UPGFW2123456", Expect: map[string]any{"identifier/batch": nil}}, "identifier/batch = RD53A, want <nil>"},
		{Case{Serial: "20UPGFW2123456", Error: "truncated"}, "decoded, want truncated"},
		{Case{Serial: "20UPGFW212345", Error: "trailing_data"}, "want trailing_data"},
		{Case{Serial: "20UPGFW212345"}, "decode: truncated"},
	}
	for _, tc := range fail {
		got := Check(p, tc.c)
		if len(got) != 1 || !strings.Contains(got[0].Problem, tc.want) {
			t.Errorf("%s: failures %v, want one containing %q", tc.c.Serial, got, tc.want)
		}
	}
}

func TestFailure_String(t *testing.T) {
	f := Failure{Case: Case{Serial: "20UPGFW2123456", Line: 4}, Problem: "boom"}
	if got := f.String(); got != "line 4: 20UPGFW2123456: boom" {
		t.Fatalf("String() = %q", got)
	}
}
