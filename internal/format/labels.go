package format

import "strings"

// LabelSet holds the language-dependent text fragments the computation
// engine places into the document.
type LabelSet struct {
	HourUnit           string // Canonical display label for hour-based units
	ServicePeriodLabel string // Caption for the optional service-period block
	ExemptionNote      string // §19 UStG small-business note; no VAT is ever charged
}

var labelSets = map[string]LabelSet{
	LangDE: {
		HourUnit:           "Std.",
		ServicePeriodLabel: "Leistungszeitraum",
		ExemptionNote:      "Gemäß §19 UStG wird keine Umsatzsteuer berechnet.",
	},
	LangEN: {
		HourUnit:           "hrs",
		ServicePeriodLabel: "Service period",
		ExemptionNote:      "No VAT charged in accordance with §19 UStG (German small business exemption).",
	},
}

// Labels returns the label set for the given language.
func Labels(lang string) LabelSet {
	return labelSets[ResolveLang(lang)]
}

// hourSynonyms are the unit spellings treated as "hours", matched
// case-insensitively after trimming.
var hourSynonyms = map[string]bool{
	"h":       true,
	"hour":    true,
	"hours":   true,
	"std":     true,
	"std.":    true,
	"stunde":  true,
	"stunden": true,
}

// NormalizeUnit maps recognized hour synonyms to the language's
// canonical hour label. Any other unit text is returned unchanged
// (and must still be escaped by the caller).
func NormalizeUnit(unit, lang string) string {
	if hourSynonyms[strings.ToLower(strings.TrimSpace(unit))] {
		return Labels(lang).HourUnit
	}
	return unit
}
