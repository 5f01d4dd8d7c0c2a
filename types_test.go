package itksn_test

import (
	"strings"
	"testing"

	"github.com/reoring/itksn"
)

func sampleRecord() *itksn.Record {
	return &itksn.Record{Fields: []itksn.Field{
		{Name: "component_code", Value: itksn.Enum{Name: "FE_chip_wafer", Code: []byte("FW")}},
		{Name: "identifier", Value: &itksn.Record{Fields: []itksn.Field{
			{Name: "number", Value: itksn.Bytes("2123456")},
			{Name: "batch", Value: itksn.Text("RD53A"), Computed: true},
			{Name: "pcb", Value: nil},
		}}},
	}}
}

func TestRecord_String(t *testing.T) {
	want := "Record:\n" +
		"    component_code = FE_chip_wafer\n" +
		"    identifier = Record:\n" +
		"        number = \"2123456\"\n" +
		"        batch = RD53A\n" +
		"        pcb = None"
	if got := sampleRecord().String(); got != want {
		t.Fatalf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestLookup(t *testing.T) {
	rec := sampleRecord()
	if v, ok := itksn.Lookup(rec, "identifier", "number"); !ok || v.String() != "2123456" {
		t.Fatalf("Lookup number = %v %v", v, ok)
	}
	if v, ok := itksn.Lookup(rec, "identifier", "pcb"); !ok || v != nil {
		t.Fatalf("Lookup pcb = %v %v", v, ok)
	}
	if _, ok := itksn.Lookup(rec, "identifier", "missing"); ok {
		t.Fatal("missing field found")
	}
	if _, ok := itksn.Lookup(rec, "component_code", "deeper"); ok {
		t.Fatal("walked into a scalar")
	}
	if v, ok := itksn.Lookup(rec); !ok || v != itksn.Value(rec) {
		t.Fatal("empty path should return the value itself")
	}
}

func TestRecord_SetAndNames(t *testing.T) {
	r := itksn.NewRecord("a", itksn.Bytes("1"), "b", itksn.Bytes("2"))
	r.Set("a", itksn.Bytes("9"))
	r.Set("c", itksn.Int(3))
	names := r.Names()
	if len(names) != 3 || names[0] != "a" || names[2] != "c" {
		t.Fatalf("names = %v", names)
	}
	if r.Value("a").String() != "9" || r.Len() != 3 {
		t.Fatalf("record = %v", r)
	}
	var nilRec *itksn.Record
	if _, ok := nilRec.Get("a"); ok || nilRec.Len() != 0 {
		t.Fatal("nil record has fields")
	}
}

func TestNewRecord_Absent(t *testing.T) {
	r := itksn.NewRecord("pcb", nil)
	if v, ok := r.Get("pcb"); !ok || v != nil {
		t.Fatalf("pcb = %v %v", v, ok)
	}
}

func TestNewRecord_BadArguments(t *testing.T) {
	cases := map[string]struct {
		kv   []any
		want string
	}{
		"odd":       {[]any{"a", itksn.Bytes("1"), "b"}, "odd number"},
		"name":      {[]any{1, itksn.Bytes("1")}, "argument 0 is int"},
		"raw value": {[]any{"a", itksn.Bytes("1"), "number", "2123456"}, "argument 3 (number) is string"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				msg, _ := recover().(string)
				if !strings.Contains(msg, tc.want) {
					t.Fatalf("panic = %q, want %q", msg, tc.want)
				}
			}()
			itksn.NewRecord(tc.kv...)
		})
	}
}

func TestEnum(t *testing.T) {
	known := itksn.Enum{Name: "pixel", Code: []byte("P")}
	unknown := itksn.Enum{Code: []byte("Q")}
	if !known.Known() || !known.Is("pixel") || known.Is("strip") {
		t.Fatal("known enum")
	}
	if unknown.Known() || unknown.Is("") || unknown.String() != `unknown("Q")` {
		t.Fatalf("unknown enum: %s", unknown)
	}
}

func TestEqual(t *testing.T) {
	if !itksn.Equal(sampleRecord(), sampleRecord()) {
		t.Fatal("identical records differ")
	}
	other := sampleRecord()
	other.Fields[1].Value.(*itksn.Record).Set("number", itksn.Bytes("2123457"))
	if itksn.Equal(sampleRecord(), other) {
		t.Fatal("different records are equal")
	}
	cases := []struct {
		a, b itksn.Value
		want bool
	}{
		{nil, nil, true},
		{itksn.Int(1), itksn.Int(1), true},
		{itksn.Int(1), itksn.Text("1"), false},
		{itksn.Enum{Name: "x", Code: []byte("1")}, itksn.Enum{Name: "x", Code: []byte("2")}, false},
		{itksn.Bytes("a"), nil, false},
	}
	for _, tc := range cases {
		if got := itksn.Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%v, %v) = %v", tc.a, tc.b, got)
		}
	}
}

func TestReader_Writer(t *testing.T) {
	r := itksn.NewReader([]byte("20UPG"))
	if b, ok := r.Read(2); !ok || string(b) != "20" {
		t.Fatalf("Read = %q %v", b, ok)
	}
	if b, ok := r.PeekAt(4, 1); !ok || string(b) != "G" || r.Offset() != 2 {
		t.Fatalf("PeekAt = %q %v, offset %d", b, ok, r.Offset())
	}
	if _, ok := r.Read(4); ok || r.Offset() != 2 || r.Remaining() != 3 {
		t.Fatal("short read consumed input")
	}
	if _, ok := r.PeekAt(4, 2); ok {
		t.Fatal("peek past the end")
	}

	w := &itksn.Writer{}
	w.Write([]byte("20"))
	w.Write([]byte("U"))
	if w.Len() != 3 || string(w.Bytes()) != "20U" {
		t.Fatalf("writer = %q", w.Bytes())
	}
	if b, ok := w.Slice(1, 2); !ok || string(b) != "0U" {
		t.Fatalf("Slice = %q %v", b, ok)
	}
	if _, ok := w.Slice(2, 5); ok {
		t.Fatal("slice past the end")
	}
}
