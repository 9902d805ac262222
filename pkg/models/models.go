package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Defaults applied when the config leaves optional payment and seller
// fields unset.
const (
	DefaultTermsDays = 14
	DefaultCurrency  = "EUR"
	PendingTaxNumber = "PENDING"
)

// SellerProfile identifies the issuing party on the invoice.
type SellerProfile struct {
	Name      string // Business or personal name
	Address1  string // Street and number
	Address2  string // Postal code and city
	Email     string // Optional contact email
	Website   string // Optional website
	TaxNumber string // Tax number; "PENDING" until one is assigned
}

// PaymentInfo holds the banking details used for the payment block and
// the EPC payment QR code.
type PaymentInfo struct {
	IBAN      string // Required; may contain grouping spaces for display
	BIC       string // Optional
	Bank      string // Optional bank name
	TermsDays int    // Payment term in days (default 14)
	Currency  string // Currency code (default EUR)
}

// CompactIBAN returns the IBAN with all spaces removed, the form the
// QR payload requires.
func (p PaymentInfo) CompactIBAN() string {
	return strings.ReplaceAll(p.IBAN, " ", "")
}

// ClientInfo identifies the invoiced party. All fields are required.
type ClientInfo struct {
	Name     string
	Address1 string
	Address2 string
}

// LineItem is a single billed position.
type LineItem struct {
	Description string          // Required
	Quantity    decimal.Decimal // Defaults to 1
	Unit        string          // Free text; hour synonyms are normalized for display
	UnitPrice   decimal.Decimal // Required, price per unit
}

// Total returns quantity × unit price rounded half-up to cents.
// Rounding happens per line, before summation.
func (li LineItem) Total() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice).Round(2)
}

// Invoice is one fully-loaded invoice record.
type Invoice struct {
	Number        string     // Derived from the source file's base name
	Date          time.Time  // Issue date
	Lang          string     // "de" or "en"; anything else falls back to "de"
	ServicePeriod string     // Optional free text
	Client        ClientInfo
	Items         []LineItem
}

// Config is the seller-side configuration loaded once per run.
type Config struct {
	Seller  SellerProfile
	Payment PaymentInfo
}
