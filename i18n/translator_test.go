package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("duplicate_enum_variant_name", nil); msg == "duplicate_enum_variant_name" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	en := english["duplicate_enum_variant_name"]
	if msg := T("duplicate_enum_variant_name", nil); msg == en {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	msg := T("duplicate_enum_variant_name", map[string]string{"symbol": "level", "variant": "low"})
	want := "enum 'level' already has a variant named 'low'"
	if msg != want {
		t.Fatalf("got %q want %q", msg, want)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("no_such_code", map[string]string{"symbol": "x"}); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

func TestTranslator_CatalogsCoverSameCodes(t *testing.T) {
	for code := range english {
		if _, ok := japanese[code]; !ok {
			t.Fatalf("japanese catalog misses %q", code)
		}
	}
	if len(english) != len(japanese) {
		t.Fatalf("catalog size mismatch: en=%d ja=%d", len(english), len(japanese))
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	if got := T("bad_name", nil); got != "X:bad_name" {
		t.Fatalf("custom translator not used: %q", got)
	}
	SetTranslator(nil)
	if got := T("bad_name", nil); got == "X:bad_name" {
		t.Fatalf("nil translator should restore default")
	}
}
