package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"invoicegen/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "invoicegen",
	Short: "invoicegen - Generate localized HTML invoices from TOML files",
	Long: `invoicegen turns a TOML invoice record plus a TOML seller/payment
configuration into a printable HTML invoice, including computed totals,
German or English formatting, and an embedded EPC069-12 payment QR code.

One invocation processes exactly one invoice, synchronously, to
completion or failure.`,
	Version: version,
}

// Execute runs the root command. Any error (validation, missing file,
// unwritable output) exits with code 2; every failure is a deterministic
// input problem fixable by rerunning with the named artifact corrected.
func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
