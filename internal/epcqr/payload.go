// Package epcqr builds EPC069-12 "SCT" payment QR payloads and renders
// them to inline SVG. Scanning the code pre-fills a SEPA credit
// transfer with the beneficiary, IBAN, amount and remittance text.
package epcqr

import (
	"strings"

	"github.com/shopspring/decimal"

	"invoicegen/internal/format"
)

// BuildPayload assembles the 11-line EPC069-12 payload. The field order
// and the presence of empty-but-present lines are load-bearing; banking
// apps reject payloads with a different shape.
//
// The payload is not HTML: the beneficiary name goes in raw, and the
// amount always uses a dot decimal regardless of the document language.
// bic may be empty where the scheme permits omission.
func BuildPayload(name, iban string, amount decimal.Decimal, remittance, bic string) string {
	lines := []string{
		"BCD",
		"002", // version
		"1",   // charset (1 = UTF-8)
		"SCT",
		bic,
		name,
		strings.ReplaceAll(iban, " ", ""),
		"EUR" + format.Money(amount),
		"", // purpose code
		remittance,
		"", // free text
	}
	return strings.Join(lines, "\n")
}
