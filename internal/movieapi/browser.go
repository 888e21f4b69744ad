package movieapi

import (
	"fmt"
	"os/exec"
	"runtime"
)

// browserCommand builds the platform launcher that hands url to the desktop
func browserCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

// OpenBrowser starts the system browser on url without waiting for it
func OpenBrowser(url string) error {
	if _, err := startDetached(browserCommand(runtime.GOOS, url)); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

// startDetached starts cmd and reaps it in the background. The returned
// channel receives the exit result once the process is gone.
func startDetached(cmd *exec.Cmd) (<-chan error, error) {
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	return done, nil
}
