package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"invoicegen/pkg/models"
)

type rawConfig struct {
	Seller  rawSeller  `toml:"seller"`
	Payment rawPayment `toml:"payment"`
}

type rawSeller struct {
	Name      string `toml:"name"`
	Address1  string `toml:"address1"`
	Address2  string `toml:"address2"`
	Email     string `toml:"email"`
	Website   string `toml:"website"`
	TaxNumber string `toml:"tax_number"`
}

type rawPayment struct {
	IBAN      string `toml:"iban"`
	BIC       string `toml:"bic"`
	Bank      string `toml:"bank"`
	TermsDays int    `toml:"terms_days"`
	Currency  string `toml:"currency"`
}

// LoadConfigFile reads and validates the seller/payment configuration.
// Defaults are applied here so the rest of the program only ever sees a
// fully-populated record.
func LoadConfigFile(path string) (*models.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid config TOML %s: %w", path, err)
	}

	cfg := &models.Config{
		Seller: models.SellerProfile{
			Name:      raw.Seller.Name,
			Address1:  raw.Seller.Address1,
			Address2:  raw.Seller.Address2,
			Email:     raw.Seller.Email,
			Website:   raw.Seller.Website,
			TaxNumber: raw.Seller.TaxNumber,
		},
		Payment: models.PaymentInfo{
			IBAN:      raw.Payment.IBAN,
			BIC:       raw.Payment.BIC,
			Bank:      raw.Payment.Bank,
			TermsDays: raw.Payment.TermsDays,
			Currency:  raw.Payment.Currency,
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed for %s: %w", path, err)
	}

	if strings.TrimSpace(cfg.Seller.TaxNumber) == "" {
		cfg.Seller.TaxNumber = models.PendingTaxNumber
	}
	if cfg.Payment.TermsDays <= 0 {
		cfg.Payment.TermsDays = models.DefaultTermsDays
	}
	if strings.TrimSpace(cfg.Payment.Currency) == "" {
		cfg.Payment.Currency = models.DefaultCurrency
	}

	return cfg, nil
}

func validateConfig(cfg *models.Config) error {
	if strings.TrimSpace(cfg.Seller.Name) == "" {
		return fmt.Errorf("[seller].name is required")
	}
	if strings.TrimSpace(cfg.Seller.Address1) == "" {
		return fmt.Errorf("[seller].address1 is required")
	}
	if strings.TrimSpace(cfg.Seller.Address2) == "" {
		return fmt.Errorf("[seller].address2 is required")
	}
	return nil
}
