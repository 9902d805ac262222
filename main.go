package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"invoicegen/cmd"
	"invoicegen/internal/config"
	"invoicegen/internal/logger"
)

func main() {
	// Load environment variables; a missing .env file is the normal case
	// for an installed binary.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cmd.Execute()

	os.Exit(0)
}
