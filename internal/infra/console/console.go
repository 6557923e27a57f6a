// Package console implements the blocking user-acknowledgment prompt.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// Ensure Acknowledger implements domain.Acknowledger.
var _ domain.Acknowledger = (*Acknowledger)(nil)

// Acknowledger blocks on a line read from the console.
type Acknowledger struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates an Acknowledger reading from in and prompting on out.
func New(in io.Reader, out io.Writer) *Acknowledger {
	return &Acknowledger{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Acknowledge prints the prompt and waits for the user to press Enter.
// EOF counts as acknowledgment so runs with a closed stdin do not hang.
func (a *Acknowledger) Acknowledge(prompt string) error {
	if _, err := fmt.Fprint(a.out, prompt); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	if _, err := a.in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read acknowledgment: %w", err)
	}
	return nil
}
