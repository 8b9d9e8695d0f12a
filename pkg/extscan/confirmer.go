package extscan

import "context"

// Decision is the answer to a per-file confirmation prompt.
type Decision int

const (
	// DecisionNo skips the current file.
	DecisionNo Decision = iota
	// DecisionYes approves the current file.
	DecisionYes
	// DecisionAll approves the current file and every remaining one.
	DecisionAll
	// DecisionQuit stops the run; no further file is processed.
	DecisionQuit
)

func (d Decision) String() string {
	switch d {
	case DecisionYes:
		return "yes"
	case DecisionAll:
		return "all"
	case DecisionQuit:
		return "quit"
	default:
		return "no"
	}
}

// Confirmer asks the user whether an action may proceed.
//
// Implementations:
//   - ui.ConsolePrompt: line-based prompt on stdin/stderr
//   - tui.Confirmer: single-key bubbletea prompt for terminals
//   - ui.ScriptedConfirmer: replays fixed answers (tests, --yes)
type Confirmer interface {
	// Confirm shows prompt and blocks until an answer is given or ctx is done.
	Confirm(ctx context.Context, prompt string) (Decision, error)
}
