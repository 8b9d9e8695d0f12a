package ui

import (
	"context"
	"sync"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// ScriptedConfirmer replays fixed decisions in order, then repeats Fallback.
// Used by tests and by --yes.
type ScriptedConfirmer struct {
	mu        sync.Mutex
	decisions []extscan.Decision
	Fallback  extscan.Decision
	prompts   []string
}

// NewScriptedConfirmer returns a confirmer answering decisions in order and
// no afterwards.
func NewScriptedConfirmer(decisions ...extscan.Decision) *ScriptedConfirmer {
	return &ScriptedConfirmer{decisions: decisions, Fallback: extscan.DecisionNo}
}

// AlwaysYes answers all to the first prompt, which approves every file.
func AlwaysYes() *ScriptedConfirmer {
	return &ScriptedConfirmer{Fallback: extscan.DecisionAll}
}

func (s *ScriptedConfirmer) Confirm(ctx context.Context, prompt string) (extscan.Decision, error) {
	if err := ctx.Err(); err != nil {
		return extscan.DecisionQuit, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, prompt)
	if len(s.decisions) == 0 {
		return s.Fallback, nil
	}
	d := s.decisions[0]
	s.decisions = s.decisions[1:]
	return d, nil
}

// Prompts returns every prompt shown so far.
func (s *ScriptedConfirmer) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

var _ extscan.Confirmer = (*ScriptedConfirmer)(nil)
