package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"invoicegen/internal/config"
	"invoicegen/internal/epcqr"
	"invoicegen/internal/invoice"
	"invoicegen/internal/logger"
	"invoicegen/internal/template"
)

var generateCmd = &cobra.Command{
	Use:   "generate [invoice-toml]",
	Short: "Generate an HTML invoice from a TOML invoice file",
	Long: `Generate reads one invoice TOML document and the seller/payment
config.toml, computes totals with exact cent rounding, and writes a
localized HTML invoice with an embedded EPC069-12 payment QR code.

The invoice number is the invoice file's base name without extension.
The config file is resolved in order: --config, the INVOICE_CONFIG
environment variable, then ./config.toml, the per-user config
directory, and the iCloud Drive invoices folder.`,
	Example: `  # Generate data/2026-0001.toml into data/.out/2026-0001.html
  invoicegen generate data/2026-0001.toml

  # Explicit config and output directory
  invoicegen generate data/2026-0001.toml --config ./config.toml --out ./dist

  # Generate and open in the default browser
  invoicegen generate data/2026-0001.toml --open

  # Skip the QR code image
  invoicegen generate data/2026-0001.toml --no-qr`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("config", "c", "", "Path to config.toml (otherwise auto-detected)")
	generateCmd.Flags().StringP("out", "o", "", "Output directory (default: .out next to the invoice file)")
	generateCmd.Flags().Bool("open", false, "Open the generated HTML in the default browser")
	generateCmd.Flags().Bool("no-qr", false, "Generate without the payment QR image")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")

	configFlag, _ := cmd.Flags().GetString("config")
	outDirFlag, _ := cmd.Flags().GetString("out")
	openAfter, _ := cmd.Flags().GetBool("open")
	noQR, _ := cmd.Flags().GetBool("no-qr")

	invoicePath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve invoice path: %w", err)
	}
	if err := validateInvoiceFile(invoicePath, log); err != nil {
		return err
	}

	// The invoice number is purely a naming convention; it is never
	// validated for uniqueness or format.
	number := strings.TrimSuffix(filepath.Base(invoicePath), filepath.Ext(invoicePath))

	configPath, err := config.ResolvePath(configFlag, config.Load().ConfigPath, config.DefaultCandidates())
	if err != nil {
		log.Error().Err(err).Msg("Config resolution failed")
		return err
	}

	cfg, err := config.LoadConfigFile(configPath)
	if err != nil {
		log.Error().Err(err).Str("config", configPath).Msg("Config loading failed")
		return err
	}

	inv, err := invoice.LoadFile(invoicePath, number)
	if err != nil {
		log.Error().Err(err).Str("file", invoicePath).Msg("Invoice loading failed")
		return err
	}

	var encoder epcqr.Encoder = epcqr.SVGEncoder{}
	if noQR {
		encoder = epcqr.NoopEncoder{}
	}

	data, err := invoice.NewGenerator(encoder).Build(cfg, inv)
	if err != nil {
		log.Error().Err(err).Str("invoice", number).Msg("Invoice generation failed")
		return err
	}

	html := template.Render(template.ForLanguage(data.Lang), data.Values)

	outDir := outDirFlag
	if outDir == "" {
		outDir = filepath.Join(filepath.Dir(invoicePath), ".out")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}
	outPath := filepath.Join(outDir, number+".html")
	if err := os.WriteFile(outPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}

	log.Info().
		Str("config", configPath).
		Str("invoice", invoicePath).
		Str("number", number).
		Str("output", outPath).
		Msg("Invoice generated")

	fmt.Printf("Config:   %s\n", configPath)
	fmt.Printf("Invoice:  %s\n", invoicePath)
	fmt.Printf("Invoice#: %s\n", number)
	fmt.Printf("Output:   %s\n", outPath)
	for _, note := range data.Notes {
		fmt.Printf("Note: %s\n", note)
	}

	if openAfter {
		if err := openInBrowser(outPath); err != nil {
			// Best effort only; the document is already on disk.
			log.Warn().Err(err).Str("file", outPath).Msg("Could not open browser")
		}
	}

	return nil
}

// validateInvoiceFile checks the invoice TOML path before any parsing.
func validateInvoiceFile(path string, log zerolog.Logger) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Error().
				Str("file", path).
				Msg("Invoice file not found")
			return fmt.Errorf("invoice file not found: %s", path)
		}
		if os.IsPermission(err) {
			log.Error().
				Str("file", path).
				Msg("Permission denied accessing invoice file")
			return fmt.Errorf("permission denied accessing invoice file: %s", path)
		}
		return fmt.Errorf("error accessing invoice file: %w", err)
	}

	if !info.Mode().IsRegular() {
		log.Error().
			Str("file", path).
			Msg("Path is not a regular file")
		return fmt.Errorf("path is not a regular file: %s", path)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".toml") {
		log.Warn().
			Str("file", path).
			Msg("File does not have .toml extension")
	}

	if info.Size() == 0 {
		log.Error().
			Str("file", path).
			Msg("Invoice file is empty")
		return fmt.Errorf("invoice file is empty: %s", path)
	}

	return nil
}
