package ui

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// releaseHost is the only host the opener will hand to the platform launcher.
const releaseHost = "github.com"

// BrowserOpener launches URLs with the platform's default handler.
type BrowserOpener struct {
	// command builds the launcher; tests replace it.
	command func(name string, args ...string) *exec.Cmd
}

// NewBrowserOpener returns an opener using os/exec.
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{command: exec.Command}
}

// Open starts the default browser on rawURL without waiting for it to exit.
// Anything other than an https github.com URL is refused before launch.
func (b *BrowserOpener) Open(rawURL string) error {
	if err := validateReleaseURL(rawURL); err != nil {
		return err
	}
	name, args, err := browserCommand(runtime.GOOS, rawURL)
	if err != nil {
		return err
	}
	command := b.command
	if command == nil {
		command = exec.Command
	}
	return command(name, args...).Start()
}

func validateReleaseURL(rawURL string) error {
	if strings.ContainsAny(rawURL, " \t\r\n\"&|<>^%`") {
		return fmt.Errorf("refusing to open %q: unexpected characters", rawURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("refusing to open %q: %w", rawURL, err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: scheme must be https", rawURL)
	}
	if u.User != nil || !strings.EqualFold(u.Host, releaseHost) {
		return fmt.Errorf("refusing to open %q: host must be %s", rawURL, releaseHost)
	}
	return nil
}

func browserCommand(goos, rawURL string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{rawURL}, nil
	case "windows":
		// rundll32 takes the URL as a plain argument; cmd /c start would parse it.
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
