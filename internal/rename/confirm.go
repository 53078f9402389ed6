package rename

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the operator a yes/no question. Abstracted so the rename
// workflow can be tested without a terminal.
type Confirmer interface {
	Confirm(prompt string) bool
}

// TerminalConfirmer reads a single line from In. Only a case-insensitive
// "y" counts as yes; anything else, including EOF, is no.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c TerminalConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.Out, "%s (y/n): ", prompt)
	scanner := bufio.NewScanner(c.In)
	if !scanner.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(scanner.Text()), "y")
}
