package invoice_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/internal/epcqr"
	"invoicegen/internal/invoice"
	"invoicegen/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		Seller: models.SellerProfile{
			Name:      "Max Mustermann",
			Address1:  "Musterstraße 1",
			Address2:  "10115 Berlin",
			Email:     "max@example.com",
			Website:   "example.com",
			TaxNumber: "12/345/67890",
		},
		Payment: models.PaymentInfo{
			IBAN:      "DE02 1203 0000 0000 2020 51",
			BIC:       "BYLADEM1001",
			Bank:      "Deutsche Kreditbank",
			TermsDays: 14,
			Currency:  "EUR",
		},
	}
}

func testInvoice() *models.Invoice {
	return &models.Invoice{
		Number: "2026-0001",
		Date:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Lang:   "de",
		Client: models.ClientInfo{
			Name:     "Client GmbH",
			Address1: "Beispielweg 2",
			Address2: "80331 München",
		},
		Items: []models.LineItem{
			{
				Description: "Consulting",
				Quantity:    decimal.NewFromInt(10),
				Unit:        "h",
				UnitPrice:   decimal.RequireFromString("95.00"),
			},
		},
	}
}

func TestBuildGermanInvoice(t *testing.T) {
	data, err := invoice.NewGenerator(nil).Build(testConfig(), testInvoice())
	require.NoError(t, err)

	assert.Equal(t, "de", data.Lang)
	assert.Empty(t, data.Notes)
	assert.Equal(t, "950,00", data.Values["TOTAL"])
	assert.Equal(t, "0,00", data.Values["VAT_TOTAL"])
	assert.Equal(t, "05.01.2026", data.Values["INVOICE_DATE"])
	assert.Equal(t, "19.01.2026", data.Values["DUE_DATE"], "due date is issue date + 14 days")
	assert.Contains(t, data.Values["ITEM_ROWS"], "<td>Std.</td>", `"h" normalizes to the German hour label`)
	assert.Contains(t, data.Values["ITEM_ROWS"], `<td class="num">95,00</td>`)
	assert.Contains(t, data.Values["EXEMPTION_NOTE"], "§19 UStG")
	assert.True(t, strings.HasPrefix(data.Values["QR_SVG"], "<svg "))
}

func TestBuildEnglishInvoice(t *testing.T) {
	inv := testInvoice()
	inv.Lang = "EN"

	data, err := invoice.NewGenerator(nil).Build(testConfig(), inv)
	require.NoError(t, err)

	assert.Equal(t, "en", data.Lang)
	assert.Equal(t, "950.00", data.Values["TOTAL"])
	assert.Equal(t, "2026-01-05", data.Values["INVOICE_DATE"])
	assert.Equal(t, "2026-01-19", data.Values["DUE_DATE"])
	assert.Contains(t, data.Values["ITEM_ROWS"], "<td>hrs</td>")
}

func TestBuildUnknownLanguageFallsBackToGerman(t *testing.T) {
	inv := testInvoice()
	inv.Lang = "fr"

	data, err := invoice.NewGenerator(nil).Build(testConfig(), inv)
	require.NoError(t, err)
	assert.Equal(t, "de", data.Lang)
}

func TestBuildRoundsPerLineBeforeSumming(t *testing.T) {
	// Three lines of 3 × 1.135 = 3.405, each rounding half-up to 3.41.
	// Per-line rounding gives 10.23; rounding the raw sum (10.215)
	// would give 10.22 instead.
	inv := testInvoice()
	inv.Items = nil
	for i := 0; i < 3; i++ {
		inv.Items = append(inv.Items, models.LineItem{
			Description: "Part",
			Quantity:    decimal.NewFromInt(3),
			UnitPrice:   decimal.RequireFromString("1.135"),
		})
	}

	data, err := invoice.NewGenerator(nil).Build(testConfig(), inv)
	require.NoError(t, err)
	assert.Equal(t, "10,23", data.Values["TOTAL"])
}

func TestBuildEscapesUserText(t *testing.T) {
	inv := testInvoice()
	inv.Items[0].Description = `Design & <script>`
	inv.Client.Name = `"Quotes" GmbH`

	data, err := invoice.NewGenerator(nil).Build(testConfig(), inv)
	require.NoError(t, err)
	assert.Contains(t, data.Values["ITEM_ROWS"], "Design &amp; &lt;script&gt;")
	assert.Equal(t, "&quot;Quotes&quot; GmbH", data.Values["CLIENT_NAME"])
}

func TestBuildServicePeriod(t *testing.T) {
	inv := testInvoice()
	inv.ServicePeriod = "Januar 2026"

	data, err := invoice.NewGenerator(nil).Build(testConfig(), inv)
	require.NoError(t, err)
	assert.Contains(t, data.Values["SERVICE_PERIOD"], "Leistungszeitraum")
	assert.Contains(t, data.Values["SERVICE_PERIOD"], "Januar 2026")

	inv.ServicePeriod = "   "
	data, err = invoice.NewGenerator(nil).Build(testConfig(), inv)
	require.NoError(t, err)
	assert.Empty(t, data.Values["SERVICE_PERIOD"], "blank service period renders nothing")
}

func TestBuildMissingDate(t *testing.T) {
	inv := testInvoice()
	inv.Date = time.Time{}

	_, err := invoice.NewGenerator(nil).Build(testConfig(), inv)
	assert.ErrorIs(t, err, invoice.ErrMissingDate)
}

func TestBuildNoItems(t *testing.T) {
	inv := testInvoice()
	inv.Items = nil

	_, err := invoice.NewGenerator(nil).Build(testConfig(), inv)
	assert.ErrorIs(t, err, invoice.ErrNoItems)
}

func TestBuildMissingIBAN(t *testing.T) {
	cfg := testConfig()
	cfg.Payment.IBAN = "   "

	_, err := invoice.NewGenerator(nil).Build(cfg, testInvoice())
	assert.ErrorIs(t, err, invoice.ErrMissingIBAN)
}

func TestBuildQREncoderUnavailable(t *testing.T) {
	data, err := invoice.NewGenerator(epcqr.NoopEncoder{}).Build(testConfig(), testInvoice())
	require.NoError(t, err, "QR failure is never fatal")

	assert.Empty(t, data.Values["QR_SVG"])
	require.Len(t, data.Notes, 1)
	assert.Contains(t, data.Notes[0], "QR code not embedded")
	assert.Equal(t, "950,00", data.Values["TOTAL"], "document is still complete")
}

type failingEncoder struct{}

func (failingEncoder) EncodeSVG(string) (string, error) {
	return "", errors.New("boom")
}

func TestBuildQREncoderError(t *testing.T) {
	data, err := invoice.NewGenerator(failingEncoder{}).Build(testConfig(), testInvoice())
	require.NoError(t, err)
	assert.Empty(t, data.Values["QR_SVG"])
	assert.Len(t, data.Notes, 1)
}

func TestBuildIBANDisplayKeepsSpaces(t *testing.T) {
	data, err := invoice.NewGenerator(nil).Build(testConfig(), testInvoice())
	require.NoError(t, err)
	// Display keeps the grouped form; only the QR payload compacts it.
	assert.Equal(t, "DE02 1203 0000 0000 2020 51", data.Values["IBAN"])
}
