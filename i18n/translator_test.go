package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("truncated", nil); msg == "truncated" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("truncated", nil); msg == "not enough bytes" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Details(t *testing.T) {
	msg := T("truncated", map[string]string{"want": "7", "got": "3", "hint": "ignored"})
	if msg != "not enough bytes (got=3, want=7)" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestTranslator_Custom(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("truncated", nil); msg != "X:truncated" {
		t.Fatalf("custom translator not used: %q", msg)
	}
}
