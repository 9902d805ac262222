// Package invoice loads invoice records and computes the render dataset
// for the HTML template: localized formatting, per-line totals with
// half-up cent rounding, and the EPC069-12 payment QR fragment.
//
// Every value placed into the dataset is already escaped (or is a
// fragment built from escaped inputs); the template renderer performs
// no escaping of its own.
package invoice

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invoicegen/internal/epcqr"
	"invoicegen/internal/format"
	"invoicegen/internal/logger"
	"invoicegen/pkg/models"
)

// Generator computes the render dataset for one invoice.
type Generator struct {
	log zerolog.Logger
	qr  epcqr.Encoder
}

// NewGenerator creates a Generator with the given QR encoder. A nil
// encoder selects the default SVG encoder.
func NewGenerator(enc epcqr.Encoder) *Generator {
	if enc == nil {
		enc = epcqr.SVGEncoder{}
	}
	return &Generator{
		log: logger.WithComponent("generator"),
		qr:  enc,
	}
}

// RenderData is the dataset consumed exactly once by the template
// renderer, plus the resolved language (which selects the template
// variant) and non-fatal operator notes.
type RenderData struct {
	Values map[string]string
	Lang   string
	Notes  []string
}

// Build validates the loaded records and assembles the render dataset.
// It fails when the invoice has no issue date, has no line items, or
// when the trimmed IBAN is empty. QR encoding failure is not an error;
// the document is produced without the image and a note is surfaced.
func (g *Generator) Build(cfg *models.Config, inv *models.Invoice) (*RenderData, error) {
	if inv.Date.IsZero() {
		return nil, ErrMissingDate
	}
	if len(inv.Items) == 0 {
		return nil, ErrNoItems
	}
	iban := strings.TrimSpace(cfg.Payment.IBAN)
	if iban == "" {
		return nil, ErrMissingIBAN
	}

	lang := format.ResolveLang(inv.Lang)
	labels := format.Labels(lang)

	termsDays := cfg.Payment.TermsDays
	if termsDays <= 0 {
		termsDays = models.DefaultTermsDays
	}
	dueDate := inv.Date.AddDate(0, 0, termsDays)

	currency := strings.TrimSpace(cfg.Payment.Currency)
	if currency == "" {
		currency = models.DefaultCurrency
	}

	// Per-line totals are rounded to cents before summation; the
	// invoice total is the sum of already-rounded line totals.
	total := decimal.Zero
	var rows []string
	for _, item := range inv.Items {
		lineTotal := item.Total()
		total = total.Add(lineTotal)
		rows = append(rows, fmt.Sprintf(
			`<tr><td>%s</td><td class="num">%s</td><td>%s</td><td class="num">%s</td><td class="num">%s</td></tr>`,
			format.Escape(item.Description),
			format.Escape(item.Quantity.String()),
			format.Escape(format.NormalizeUnit(item.Unit, lang)),
			format.MoneyFor(item.UnitPrice, lang),
			format.MoneyFor(lineTotal, lang),
		))
	}

	servicePeriod := ""
	if sp := strings.TrimSpace(inv.ServicePeriod); sp != "" {
		servicePeriod = fmt.Sprintf(`<p class="service-period">%s: %s</p>`,
			format.Escape(labels.ServicePeriodLabel), format.Escape(sp))
	}

	var notes []string
	payload := epcqr.BuildPayload(cfg.Seller.Name, iban, total, inv.Number, strings.TrimSpace(cfg.Payment.BIC))
	qrSVG, err := g.qr.EncodeSVG(payload)
	if err != nil {
		g.log.Warn().Err(err).Str("invoice", inv.Number).Msg("QR rendering unavailable, continuing without image")
		qrSVG = ""
		notes = append(notes, "QR code not embedded: "+err.Error())
	}

	taxNumber := strings.TrimSpace(cfg.Seller.TaxNumber)
	if taxNumber == "" {
		taxNumber = models.PendingTaxNumber
	}

	values := map[string]string{
		"INVOICE_NO":     format.Escape(inv.Number),
		"INVOICE_DATE":   format.Escape(format.Date(inv.Date, lang)),
		"DUE_DATE":       format.Escape(format.Date(dueDate, lang)),
		"SERVICE_PERIOD": servicePeriod,

		"SELLER_NAME":     format.Escape(cfg.Seller.Name),
		"SELLER_ADDRESS1": format.Escape(cfg.Seller.Address1),
		"SELLER_ADDRESS2": format.Escape(cfg.Seller.Address2),
		"SELLER_EMAIL":    format.Escape(cfg.Seller.Email),
		"SELLER_WEBSITE":  format.Escape(cfg.Seller.Website),
		"SELLER_TAXNO":    format.Escape(taxNumber),

		"CLIENT_NAME":     format.Escape(inv.Client.Name),
		"CLIENT_ADDRESS1": format.Escape(inv.Client.Address1),
		"CLIENT_ADDRESS2": format.Escape(inv.Client.Address2),

		"ITEM_ROWS": strings.Join(rows, "\n"),
		"TOTAL":     format.MoneyFor(total, lang),
		"VAT_TOTAL": format.MoneyFor(decimal.Zero, lang),
		"CURRENCY":  format.Escape(currency),

		"IBAN": format.Escape(cfg.Payment.IBAN),
		"BIC":  format.Escape(cfg.Payment.BIC),
		"BANK": format.Escape(cfg.Payment.Bank),

		"QR_SVG":         qrSVG,
		"EXEMPTION_NOTE": format.Escape(labels.ExemptionNote),
	}

	g.log.Info().
		Str("invoice", inv.Number).
		Str("lang", lang).
		Int("items", len(inv.Items)).
		Str("total", format.Money(total)).
		Str("due_date", dueDate.Format("2006-01-02")).
		Msg("Render dataset assembled")

	return &RenderData{Values: values, Lang: lang, Notes: notes}, nil
}
