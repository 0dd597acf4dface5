// Package browser opens URLs in the system web browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Open launches the system browser for url. Only http(s) URLs are
// accepted; anything else is rejected before touching the shell.
func Open(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refusing to open non-http url: %s", url)
	}

	cmd := openCommand(url)
	if cmd == nil {
		return fmt.Errorf("no browser opener found")
	}
	return cmd.Start()
}

// openCommand returns the platform's URL opener
func openCommand(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		if commandExists("xdg-open") {
			return exec.Command("xdg-open", url)
		}
		if commandExists("sensible-browser") {
			return exec.Command("sensible-browser", url)
		}
		return nil
	}
}

// commandExists checks if a command is available in PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
