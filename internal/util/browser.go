package util

import (
	"fmt"
	"net"
	"os/exec"
	"runtime"
)

// startCommand starts a detached process; replaced in tests.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// OpenBrowser opens url in the default browser on Windows, macOS and Linux.
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "windows":
		// rundll32 also works on Windows 7, unlike "cmd /c start"
		return startCommand("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return startCommand("open", url)
	default:
		return startCommand("xdg-open", url)
	}
}

// OpenBrowserWithFallback tries OpenBrowser, then explorer on Windows or a
// few well-known browsers on Linux.
func OpenBrowserWithFallback(url string) error {
	err := OpenBrowser(url)
	if err == nil {
		return nil
	}

	switch runtime.GOOS {
	case "windows":
		return startCommand("explorer", url)
	case "linux":
		browsers := []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"}
		for _, browser := range browsers {
			if err := startCommand(browser, url); err == nil {
				return nil
			}
		}
	}

	return err
}

// FindAvailablePort returns the first port from startPort on that can be
// bound on all interfaces, trying at most attempts ports.
func FindAvailablePort(startPort, attempts int) (int, error) {
	for port := startPort; port < startPort+attempts && port <= 65535; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			continue
		}
		_ = ln.Close()
		return port, nil
	}
	return 0, fmt.Errorf("no free port in %d..%d", startPort, startPort+attempts-1)
}
