package invoice

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"invoicegen/pkg/models"
)

// rawInvoice mirrors the invoice TOML document before validation.
// Quantity and unit price stay untyped here: TOML authors write them as
// integers, floats, or strings, and string amounts keep their exactness.
type rawInvoice struct {
	Date          string    `toml:"date"`
	Lang          string    `toml:"lang"`
	ServicePeriod string    `toml:"service_period"`
	Client        rawClient `toml:"client"`
	Items         []rawItem `toml:"items"`
}

type rawClient struct {
	Name     string `toml:"name"`
	Address1 string `toml:"address1"`
	Address2 string `toml:"address2"`
}

type rawItem struct {
	Description string      `toml:"description"`
	Quantity    interface{} `toml:"quantity"`
	Unit        string      `toml:"unit"`
	UnitPrice   interface{} `toml:"unit_price"`
}

// LoadFile reads and validates an invoice TOML document. The invoice
// number is not part of the document; it is derived from the file name
// by the caller and injected here. A partially-valid record never
// escapes this function: the result is either a fully-populated
// models.Invoice or a field-naming error.
func LoadFile(path, number string) (*models.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewGenerationError("LoadFile", err, path)
	}
	return Parse(data, number)
}

// Parse validates a raw invoice TOML document into a typed record.
func Parse(data []byte, number string) (*models.Invoice, error) {
	var raw rawInvoice
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, NewGenerationError("Parse", err, "invalid invoice TOML")
	}

	if strings.TrimSpace(raw.Date) == "" {
		return nil, ErrMissingDate
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(raw.Date))
	if err != nil {
		return nil, NewValidationError("date", raw.Date, `not an ISO-8601 date (expected "YYYY-MM-DD")`)
	}

	if strings.TrimSpace(raw.Client.Name) == "" {
		return nil, NewValidationError("client.name", raw.Client.Name, "required")
	}
	if strings.TrimSpace(raw.Client.Address1) == "" {
		return nil, NewValidationError("client.address1", raw.Client.Address1, "required")
	}
	if strings.TrimSpace(raw.Client.Address2) == "" {
		return nil, NewValidationError("client.address2", raw.Client.Address2, "required")
	}

	items := make([]models.LineItem, 0, len(raw.Items))
	for i, it := range raw.Items {
		item, err := parseItem(i, it)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &models.Invoice{
		Number:        number,
		Date:          date,
		Lang:          raw.Lang,
		ServicePeriod: raw.ServicePeriod,
		Client: models.ClientInfo{
			Name:     raw.Client.Name,
			Address1: raw.Client.Address1,
			Address2: raw.Client.Address2,
		},
		Items: items,
	}, nil
}

func parseItem(i int, it rawItem) (models.LineItem, error) {
	field := func(name string) string {
		return fmt.Sprintf("items[%d].%s", i, name)
	}

	if strings.TrimSpace(it.Description) == "" {
		return models.LineItem{}, NewValidationError(field("description"), it.Description, "required")
	}

	if it.UnitPrice == nil {
		return models.LineItem{}, NewValidationError(field("unit_price"), nil, "required")
	}
	price, err := decimalValue(it.UnitPrice)
	if err != nil {
		return models.LineItem{}, NewValidationError(field("unit_price"), it.UnitPrice, err.Error())
	}

	qty := decimal.NewFromInt(1)
	if it.Quantity != nil {
		qty, err = decimalValue(it.Quantity)
		if err != nil {
			return models.LineItem{}, NewValidationError(field("quantity"), it.Quantity, err.Error())
		}
	}

	return models.LineItem{
		Description: it.Description,
		Quantity:    qty,
		Unit:        it.Unit,
		UnitPrice:   price,
	}, nil
}

// decimalValue converts the TOML value forms go-toml produces for
// untyped fields into an exact decimal.
func decimalValue(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case int64:
		return decimal.NewFromInt(n), nil
	case uint64:
		return decimal.NewFromUint64(n), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("not a decimal number")
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("not a number (got %T)", v)
	}
}
