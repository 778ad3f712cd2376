package i18n

import "testing"

func TestTranslator_DefaultAndItalian(t *testing.T) {
	// default is en
	if msg := T("type_mismatch", nil); msg != "type mismatch" {
		t.Fatalf("expected english message, got %q", msg)
	}

	SetLanguage("it")
	if msg := T("type_mismatch", nil); msg != "tipo non valido" {
		t.Fatalf("expected italian message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Details(t *testing.T) {
	msg := T("type_mismatch", map[string]string{"field": "width", "expected": "integer"})
	if msg != "type mismatch (width: integer)" {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := T("missing_field", map[string]string{"field": "file_id"}); msg != "required field missing (file_id)" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("nope", map[string]string{"field": "x"}); msg != "nope" {
		t.Fatalf("expected code passthrough, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("unknown_key", nil); msg != "X:unknown_key" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
}

func TestTranslator_DuplicateKey(t *testing.T) {
	if msg := T("duplicate_key", map[string]string{"field": "width"}); msg != "duplicate key (width)" {
		t.Fatalf("unexpected message %q", msg)
	}
}
