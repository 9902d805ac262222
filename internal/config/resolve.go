package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrConfigNotFound is returned when no config.toml could be resolved.
var ErrConfigNotFound = errors.New("config not found")

// NotFoundError reports a failed config resolution together with every
// path that was attempted.
type NotFoundError struct {
	Attempted []string
}

func (e *NotFoundError) Error() string {
	if len(e.Attempted) == 1 {
		return fmt.Sprintf("config not found: %s", e.Attempted[0])
	}
	return fmt.Sprintf("no config.toml found (tried: %s); provide --config or set INVOICE_CONFIG",
		strings.Join(e.Attempted, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// DefaultCandidates returns the ordered default locations probed for
// config.toml: the current directory, the per-user config directory,
// and the iCloud Drive invoices folder when present.
func DefaultCandidates() []string {
	candidates := []string{"config.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "invoice", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home,
			"Library", "Mobile Documents", "com~apple~CloudDocs", "Invoices", "config.toml"))
	}
	return candidates
}

// ResolvePath picks the config file location. An explicit path (CLI
// flag) wins, then an override path (INVOICE_CONFIG), then the first
// existing candidate. Explicit and override paths must exist; a miss is
// an error naming the path rather than a silent fallback.
func ResolvePath(explicit, override string, candidates []string) (string, error) {
	if explicit != "" {
		if fileExists(explicit) {
			return explicit, nil
		}
		return "", &NotFoundError{Attempted: []string{explicit}}
	}
	if override != "" {
		if fileExists(override) {
			return override, nil
		}
		return "", &NotFoundError{Attempted: []string{override}}
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c, nil
		}
	}
	return "", &NotFoundError{Attempted: candidates}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
