// Package template performs literal placeholder substitution into the
// localized HTML invoice templates.
//
// The contract is deliberately permissive: every occurrence of each
// {{NAME}} token is replaced with its dataset value, and placeholders
// without a dataset entry pass through unchanged. The two language
// templates carry different placeholder sets and rely on this. No
// escaping happens here; the computation engine escapes everything
// before it enters the dataset.
package template

import (
	_ "embed"
	"strings"
)

//go:embed template_de.html
var templateDE string

//go:embed template_en.html
var templateEN string

// ForLanguage returns the embedded template text for the language.
// Anything other than "en" selects the German template.
func ForLanguage(lang string) string {
	if strings.ToLower(lang) == "en" {
		return templateEN
	}
	return templateDE
}

// Render substitutes every {{NAME}} occurrence with its value.
func Render(templateText string, values map[string]string) string {
	out := templateText
	for k, v := range values {
		out = strings.ReplaceAll(out, "{{"+k+"}}", v)
	}
	return out
}
