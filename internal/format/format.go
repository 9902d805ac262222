// Package format provides the locale-aware display formatting for
// invoice documents: money and date rendering, HTML escaping, and the
// per-language label set.
//
// Escaping boundary: every user-supplied string must pass through
// Escape before it enters the render dataset. The template renderer
// performs no escaping of its own.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LangDE and LangEN are the supported document languages.
const (
	LangDE = "de"
	LangEN = "en"
)

// ResolveLang lowercases the requested language and falls back to
// German for anything unrecognized.
func ResolveLang(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case LangEN:
		return LangEN
	default:
		return LangDE
	}
}

// Money renders an amount with exactly two fractional digits and a dot
// decimal separator, rounding half-up (ties away from zero). This is
// the fixed numeric form used in the QR payload.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// MoneyFor renders an amount for display in the given language. German
// uses a comma decimal separator; no thousands separators are inserted
// in either language.
func MoneyFor(d decimal.Decimal, lang string) string {
	s := Money(d)
	if ResolveLang(lang) == LangDE {
		return strings.ReplaceAll(s, ".", ",")
	}
	return s
}

// Date renders a calendar date for the given language: DD.MM.YYYY for
// German, YYYY-MM-DD for English.
func Date(t time.Time, lang string) string {
	if ResolveLang(lang) == LangDE {
		return t.Format("02.01.2006")
	}
	return t.Format("2006-01-02")
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces the five HTML-significant characters. Ampersand is
// replaced first, so already-escaped input is escaped again:
// Escape("&amp;") yields "&amp;amp;". That is intended; callers must
// escape exactly once.
func Escape(s string) string {
	return escaper.Replace(s)
}
