package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/extscan/internal/tui/components"
	"github.com/vvka-141/extscan/pkg/extscan"
)

// Confirmer implements extscan.Confirmer by running a single-key bubbletea
// prompt per file.
type Confirmer struct {
	in   io.Reader
	out  io.Writer
	opts []tea.ProgramOption
}

// NewConfirmer creates a Confirmer reading keys from in and drawing on out.
func NewConfirmer(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *Confirmer {
	return &Confirmer{in: in, out: out, opts: opts}
}

// Confirm runs the prompt until a bound key is pressed or ctx is done.
func (c *Confirmer) Confirm(ctx context.Context, prompt string) (extscan.Decision, error) {
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	}, c.opts...)

	final, err := tea.NewProgram(components.NewConfirm(prompt), opts...).Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return extscan.DecisionQuit, ctxErr
	}
	if err != nil {
		return extscan.DecisionQuit, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	model, ok := final.(components.Confirm)
	if !ok || !model.Answered() {
		return extscan.DecisionQuit, nil
	}
	return model.Decision(), nil
}

var _ extscan.Confirmer = (*Confirmer)(nil)
