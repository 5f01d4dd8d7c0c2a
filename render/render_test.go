package render_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	j "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/reoring/itksn"
	"github.com/reoring/itksn/render"
	"github.com/reoring/itksn/serial"
)

func decode(t *testing.T, s string) *itksn.Record {
	t.Helper()
	sn, err := serial.DecodeString(s)
	if err != nil {
		t.Fatalf("decode %s: %v", s, err)
	}
	return sn.Record()
}

func mustMarshal(t *testing.T, f render.Format, v itksn.Value, o render.Options) []byte {
	t.Helper()
	b, err := render.Marshal(f, v, o)
	if err != nil {
		t.Fatalf("marshal %s: %v", f, err)
	}
	return b
}

func assertOrder(t *testing.T, out string, keys ...string) {
	t.Helper()
	last := -1
	for _, k := range keys {
		i := strings.Index(out, k)
		if i < 0 {
			t.Fatalf("%q missing from\n%s", k, out)
		}
		if i < last {
			t.Fatalf("%q out of order in\n%s", k, out)
		}
		last = i
	}
}

func TestJSON_KeepsFieldOrder(t *testing.T) {
	rec := decode(t, "20UPGFW2123456")
	out := mustMarshal(t, render.JSON, rec, render.Options{})
	assertOrder(t, string(out), `"atlas_project"`, `"system_code"`, `"project_code"`,
		`"subproject_code"`, `"component_code"`, `"identifier"`, `"number"`, `"batch_number"`, `"batch"`, `"wafer"`)

	var got map[string]any
	if err := j.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	id := got["identifier"].(map[string]any)
	if id["number"] != "2123456" || id["wafer"] != float64(102) || id["batch"] != "RD53A" {
		t.Fatalf("identifier = %v", id)
	}
}

func TestJSON_CodesAndViews(t *testing.T) {
	rec := decode(t, "20UPBD1AB00345")
	plain := mustMarshal(t, render.JSON, rec, render.Options{})
	if bytes.Contains(plain, []byte("_reserved")) {
		t.Fatalf("view rendered without Views:\n%s", plain)
	}
	withViews := mustMarshal(t, render.JSON, rec, render.Options{Views: true, Codes: true})
	var got map[string]any
	if err := j.Unmarshal(withViews, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{"name": "pixel", "code": "P"}
	if diff := cmp.Diff(want, got["project_code"]); diff != "" {
		t.Fatalf("project_code (-want +got):\n%s", diff)
	}
	if id := got["identifier"].(map[string]any); id["_reserved"] != "00" {
		t.Fatalf("identifier = %v", id)
	}
}

func TestYAML(t *testing.T) {
	rec := decode(t, "20UPIM12602173")
	out := mustMarshal(t, render.YAML, rec, render.Options{})
	assertOrder(t, string(out), "atlas_project:", "component_code:", "identifier:", "FE_chip_version:", "PCB_manufacturer:", "number:")

	var got map[string]any
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	id := got["identifier"].(map[string]any)
	// digits stay strings and an absent field is null
	want := map[string]any{"FE_chip_version": "ITkpix_v1p1", "PCB_manufacturer": nil, "number": "602173"}
	if diff := cmp.Diff(want, id); diff != "" {
		t.Fatalf("identifier (-want +got):\n%s", diff)
	}
}

func TestYAML_Int(t *testing.T) {
	rec := decode(t, "20UPGFC1048575")
	out := mustMarshal(t, render.YAML, rec, render.Options{})
	var got map[string]any
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	id := got["identifier"].(map[string]any)
	if id["wafer"] != 255 || id["number"] != "1048575" {
		t.Fatalf("identifier = %v", id)
	}
}

func TestCBOR_Deterministic(t *testing.T) {
	rec := decode(t, "20UPGFW2123456")
	a := mustMarshal(t, render.CBOR, rec, render.Options{})
	b := mustMarshal(t, render.CBOR, decode(t, "20UPGFW2123456"), render.Options{})
	if !bytes.Equal(a, b) {
		t.Fatal("CBOR output differs between runs")
	}

	dm, err := cbor.DecOptions{DefaultMapType: reflect.TypeOf(map[string]any(nil))}.DecMode()
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := dm.Unmarshal(a, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	id := got["identifier"].(map[string]any)
	if id["number"] != "2123456" || id["wafer"] != uint64(102) || id["column"] != uint64(0) {
		t.Fatalf("identifier = %v", id)
	}
	if got["component_code"] != "FE_chip_wafer" {
		t.Fatalf("component_code = %v", got["component_code"])
	}
}

func TestText(t *testing.T) {
	rec := decode(t, "20UPBD1AB00345")
	out := string(mustMarshal(t, render.Text, rec, render.Options{}))
	if !strings.HasPrefix(out, "Record:\n    atlas_project = atlas_detector") {
		t.Fatalf("text =\n%s", out)
	}
	if strings.Contains(out, "_reserved") {
		t.Fatalf("view rendered without Views:\n%s", out)
	}
	if out := string(mustMarshal(t, render.Text, rec, render.Options{Views: true})); out != rec.String() {
		t.Fatalf("text with views =\n%s\nwant\n%s", out, rec.String())
	}
	if out := string(mustMarshal(t, render.Text, nil, render.Options{})); out != "None" {
		t.Fatalf("nil = %q", out)
	}
}

func TestWrite_Newline(t *testing.T) {
	rec := decode(t, "20UPGMC2291234")
	for _, f := range render.Formats() {
		var buf bytes.Buffer
		if err := render.Write(&buf, f, rec, render.Options{}); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		nl := bytes.HasSuffix(buf.Bytes(), []byte("\n"))
		if f != render.CBOR && !nl {
			t.Errorf("%s output lacks a trailing newline", f)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := render.ParseFormat(" JSON "); err != nil || f != render.JSON {
		t.Fatalf("ParseFormat = %q, %v", f, err)
	}
	if _, err := render.ParseFormat("xml"); err == nil || !strings.Contains(err.Error(), "text, json, yaml, cbor") {
		t.Fatalf("expected an error listing formats, got %v", err)
	}
	if _, err := render.Marshal("xml", nil, render.Options{}); err == nil {
		t.Fatal("unknown format marshalled")
	}
}
