package i18n

import "testing"

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("en-US,en;q=0.9") != "en" {
		t.Fatalf("expected en")
	}
	if DetectLanguage("EN-gb") != "en" {
		t.Fatalf("expected en for EN-gb")
	}
	if DetectLanguage("en_US.UTF-8") != "en" {
		t.Fatalf("expected en for en_US.UTF-8")
	}
	if DetectLanguage("fr-FR,fr;q=0.8") != "fr" {
		t.Fatalf("expected fr")
	}
	if DetectLanguage("") != "fr" {
		t.Fatalf("expected default fr")
	}
	if DetectLanguage("es-ES") != "fr" {
		t.Fatalf("expected fr fallback for es")
	}
}

func TestTranslations(t *testing.T) {
	if T("en", "title_quote") != "QUOTE" {
		t.Fatalf("expected QUOTE")
	}
	if T("fr", "title_quote") != "DEVIS" {
		t.Fatalf("expected DEVIS")
	}
	if T("en", "required") != "Required" {
		t.Fatalf("expected Required")
	}
	if T("fr", "required") != "Requis" {
		t.Fatalf("expected Requis")
	}
	// unknown code -> fallback to code
	if T("en", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> fallback to fr translation if exists
	if T("es", "required") != "Requis" {
		t.Fatalf("expected fr fallback for es lang")
	}
}
