package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/itksn"
	"github.com/reoring/itksn/i18n"
	"github.com/reoring/itksn/internal/version"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errb.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, errOut, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, version.Version()) || !strings.HasPrefix(out, "itksn version ") {
		t.Fatalf("stdout = %q", out)
	}
	if errOut != "" {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil || !strings.HasPrefix(out, "itksn version ") {
		t.Fatalf("version = %q, %v", out, err)
	}
}

func TestParse_OtherProject(t *testing.T) {
	out, _, err := run(t, "parse", "20Uxxyynnnnnnn")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`project_code = unknown("x")`, `component_code = "yy"`, `identifier = "nnnnnnn"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestParse_Formats(t *testing.T) {
	out, _, err := run(t, "parse", "-o", "json", "20UPICP1299999")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(strings.Join(strings.Fields(out), ""), `"production_type":"Production"`) {
		t.Fatalf("json output:\n%s", out)
	}

	out, _, err = run(t, "parse", "--output=yaml", "--codes", "20UPICP1299999")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "code: CP") {
		t.Fatalf("yaml output:\n%s", out)
	}

	if _, _, err := run(t, "parse", "-o", "xml", "20UPICP1299999"); err == nil {
		t.Fatal("unknown format accepted")
	}
}

func TestParse_Failure(t *testing.T) {
	_, _, err := run(t, "parse", "20UPGMC2291234999")
	if err == nil || !strings.Contains(err.Error(), "trailing_data") {
		t.Fatalf("err = %v", err)
	}
	if _, _, err := run(t, "parse"); err == nil {
		t.Fatal("missing argument accepted")
	}
}

func TestParse_VerboseLogsJSON(t *testing.T) {
	_, errOut, err := run(t, "-v", "parse", "20UPGOS0000000")
	if err == nil {
		t.Fatal("optopanel decoded")
	}
	for _, want := range []string{`"level":"DEBUG"`, `"resolution":"gap"`, `"command":"parse"`} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr lacks %s:\n%s", want, errOut)
		}
	}
}

func TestParse_DebugEnv(t *testing.T) {
	t.Setenv(debugEnv, "1")
	_, errOut, err := run(t, "parse", "20UPBSR1234567")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, `"resolution":"raw"`) {
		t.Fatalf("stderr:\n%s", errOut)
	}
}

func TestParse_QuietByDefault(t *testing.T) {
	_, errOut, err := run(t, "parse", "20UPGFW2123456")
	if err != nil || errOut != "" {
		t.Fatalf("stderr = %q, err = %v", errOut, err)
	}
}

func TestParse_Japanese(t *testing.T) {
	defer i18n.SetLanguage("en")
	_, _, err := run(t, "--lang", "ja", "parse", "20UPGFW212345")
	iss, ok := itksn.AsIssues(err)
	if !ok || iss[0].Code != itksn.CodeTruncated {
		t.Fatalf("err = %v", err)
	}
	if !strings.HasPrefix(iss[0].Message, "バイト数が不足しています") {
		t.Fatalf("message = %q", iss[0].Message)
	}
}

func TestMain_LocalizedStderr(t *testing.T) {
	defer i18n.SetLanguage("en")
	cases := map[string]string{
		"en": "itksn: parse 20UPGFW212345: truncated at /identifier/number (offset 7): not enough bytes",
		"ja": "itksn: parse 20UPGFW212345: truncated at /identifier/number (offset 7): バイト数が不足しています",
	}
	for lang, want := range cases {
		t.Run(lang, func(t *testing.T) {
			var errb bytes.Buffer
			if code := mainTo(&errb, []string{"--lang", lang, "parse", "20UPGFW212345"}); code != 1 {
				t.Fatalf("exit code = %d", code)
			}
			if !strings.HasPrefix(errb.String(), want) {
				t.Fatalf("stderr = %q, want prefix %q", errb.String(), want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	out, _, err := run(t, "encode", "20UPGMC2291234", "20UPEDP2209999")
	if err != nil {
		t.Fatal(err)
	}
	if out != "20UPGMC2291234\n20UPEDP2209999\n" {
		t.Fatalf("stdout = %q", out)
	}
	if _, _, err := run(t, "encode", "20UPIFW2123456"); err == nil {
		t.Fatal("invalid serial encoded")
	}
}

func TestComponents(t *testing.T) {
	out, _, err := run(t, "components", "--area", "pb")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "AREA") {
		t.Fatalf("header = %q", lines[0])
	}
	var sawRaw bool
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, "PB ") {
			t.Fatalf("row outside PB: %q", l)
		}
		if strings.Contains(l, "strain_relief") && strings.HasSuffix(l, "raw") {
			sawRaw = true
		}
	}
	if !sawRaw {
		t.Fatalf("strain_relief not listed as raw:\n%s", out)
	}
	if _, _, err := run(t, "components", "--area", "XX"); err == nil {
		t.Fatal("unknown area accepted")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("- serial: 20UPGFW2123456\n  expect:\n    identifier/batch: RD53A\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("- serial: 20UPGFW2123456\n  error: truncated\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "check", good)
	if err != nil || out != "ok 1 cases\n" {
		t.Fatalf("check good = %q, %v", out, err)
	}

	out, _, err = run(t, "check", good, bad)
	if err == nil || !strings.Contains(err.Error(), "1 problems in 2 cases") {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out, "bad.yaml:line 1: 20UPGFW2123456: decoded, want truncated") {
		t.Fatalf("stdout = %q", out)
	}

	if _, _, err := run(t, "check", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestCheck_RepositoryCorpus(t *testing.T) {
	out, _, err := run(t, "check", "../../serial/testdata/serials.yaml")
	if err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
}

func TestMain_ExitCode(t *testing.T) {
	if code := Main([]string{"encode", "20UPGMC2291234999"}); code != 1 {
		t.Fatalf("exit code = %d", code)
	}
}
