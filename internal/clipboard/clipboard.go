// Package clipboard copies search results to the system clipboard.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available")

// WriteLines copies lines, newline separated, to the clipboard.
func WriteLines(lines []string) error {
	return Write(strings.Join(lines, "\n") + "\n")
}

// Write copies text to the system clipboard.
func Write(text string) error {
	name, args, err := commandFor(runtime.GOOS, exec.LookPath)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	_, _, err := commandFor(runtime.GOOS, exec.LookPath)
	return err == nil
}

// commandFor picks the clipboard command for goos.
func commandFor(goos string, lookPath func(string) (string, error)) (string, []string, error) {
	switch goos {
	case "darwin":
		if _, err := lookPath("pbcopy"); err == nil {
			return "pbcopy", nil, nil
		}
	case "windows":
		return "cmd", []string{"/c", "clip"}, nil
	default:
		// Try xclip first, fall back to xsel, then Wayland
		if _, err := lookPath("xclip"); err == nil {
			return "xclip", []string{"-selection", "clipboard"}, nil
		}
		if _, err := lookPath("xsel"); err == nil {
			return "xsel", []string{"--clipboard", "--input"}, nil
		}
		if _, err := lookPath("wl-copy"); err == nil {
			return "wl-copy", nil, nil
		}
	}
	return "", nil, ErrUnavailable
}
