// Package i18n provides the label translations used on rendered documents
// and in CLI messages. French is the default and fallback language.
package i18n

import "strings"

const defaultLang = "fr"

// translations maps a label code to its per-language text. A language
// missing a code falls back to French, then to the code itself.
var translations = map[string]map[string]string{
	"title_quote":      {"fr": "DEVIS", "en": "QUOTE"},
	"title_invoice":    {"fr": "FACTURE", "en": "INVOICE"},
	"date":             {"fr": "Date", "en": "Date"},
	"issuer":           {"fr": "Émetteur", "en": "Issuer"},
	"customer":         {"fr": "Client", "en": "Customer"},
	"subject":          {"fr": "Sujet", "en": "Subject"},
	"validity":         {"fr": "Validité du devis", "en": "Quote valid until"},
	"email":            {"fr": "Email", "en": "Email"},
	"phone":            {"fr": "Téléphone", "en": "Phone"},
	"th_description":   {"fr": "Description", "en": "Description"},
	"th_unit":          {"fr": "Unité", "en": "Unit"},
	"th_qty":           {"fr": "Qté", "en": "Qty"},
	"th_unit_price":    {"fr": "PU", "en": "Unit price"},
	"th_tax":           {"fr": "TVA %", "en": "VAT %"},
	"th_discount":      {"fr": "% Rem.", "en": "Disc. %"},
	"th_total":         {"fr": "Total HT", "en": "Total excl. tax"},
	"subtotal":         {"fr": "TOTAL HT", "en": "TOTAL EXCL. TAX"},
	"total_tva":        {"fr": "TOTAL TVA", "en": "TOTAL VAT"},
	"net_to_pay":       {"fr": "Net à payer", "en": "Net to pay"},
	"notes":            {"fr": "Notes", "en": "Notes"},
	"page":             {"fr": "Page", "en": "Page"},
	"required":         {"fr": "Requis", "en": "Required"},
	"must_be_positive": {"fr": "Doit être positif", "en": "Must be positive"},
	"out_of_range":     {"fr": "Hors limites", "en": "Out of range"},
}

// T returns the translation of code in lang. Unknown languages fall back to
// French; unknown codes fall back to the code itself.
func T(lang, code string) string {
	byLang, ok := translations[code]
	if !ok {
		return code
	}
	if s, ok := byLang[lang]; ok {
		return s
	}
	if s, ok := byLang[defaultLang]; ok {
		return s
	}
	return code
}

// DetectLanguage picks a supported language from a locale preference string
// such as "en-US,en;q=0.9", "fr_FR.UTF-8" or "en". Anything unrecognized
// falls back to French.
func DetectLanguage(pref string) string {
	pref = strings.ToLower(strings.TrimSpace(pref))
	if pref == "" {
		return defaultLang
	}
	if i := strings.IndexByte(pref, ','); i >= 0 {
		pref = pref[:i]
	}
	parts := strings.FieldsFunc(pref, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ';'
	})
	if len(parts) == 0 {
		return defaultLang
	}
	switch parts[0] {
	case "en":
		return "en"
	default:
		return defaultLang
	}
}
