package shell

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalPrompt reads a token from the controlling terminal with echo
// suppressed. It opens /dev/tty directly rather than using stdin so the
// prompt still works when the program itself is being piped, as in the
// fetch-script-then-execute pattern.
type TerminalPrompt struct{}

func NewTerminalPrompt() *TerminalPrompt {
	return &TerminalPrompt{}
}

func (this *TerminalPrompt) ReadToken(prompt string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return "", fmt.Errorf("no controlling terminal available to prompt for a token: %w", err)
	}
	defer func() { _ = tty.Close() }()

	_, _ = fmt.Fprint(tty, prompt)
	raw, err := term.ReadPassword(int(tty.Fd()))
	_, _ = fmt.Fprintln(tty)
	if err != nil {
		return "", fmt.Errorf("reading token from terminal: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
