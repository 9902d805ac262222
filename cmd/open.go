package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openInBrowser opens the file with the platform's default handler.
// Failure is never fatal; callers log and move on.
func openInBrowser(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "linux":
		return exec.Command("xdg-open", path).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
