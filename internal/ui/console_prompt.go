package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vvka-141/extscan/pkg/extscan"
)

type line struct {
	text string
	err  error
}

// ConsolePrompt implements extscan.Confirmer with a line-based prompt.
// Answers are read by a single background goroutine so a cancelled context
// returns immediately without losing the next line.
type ConsolePrompt struct {
	in          io.Reader
	out         io.Writer
	maxAttempts int

	once      sync.Once
	lines     chan line
	done      chan struct{}
	closeOnce sync.Once
}

// NewConsolePrompt creates a prompt reading answers from in and writing to out
// (usually os.Stdin and os.Stderr).
func NewConsolePrompt(in io.Reader, out io.Writer) *ConsolePrompt {
	return &ConsolePrompt{
		in:          in,
		out:         out,
		maxAttempts: extscan.MaxPromptAttempts,
		done:        make(chan struct{}),
	}
}

// Close stops the reader goroutine. A read already blocked on the input
// cannot be interrupted; the goroutine exits as soon as it returns.
// Confirm after Close answers quit.
func (p *ConsolePrompt) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return nil
}

// Confirm asks prompt until a recognized answer is given.
// Empty input means no. After maxAttempts unrecognized answers the file is
// skipped. End of input means quit.
func (p *ConsolePrompt) Confirm(ctx context.Context, prompt string) (extscan.Decision, error) {
	p.once.Do(p.startReader)

	select {
	case <-p.done:
		return extscan.DecisionQuit, nil
	default:
	}

	for attempt := 1; ; attempt++ {
		fmt.Fprintf(p.out, "%s [y]es/[n]o/[a]ll/[q]uit: ", prompt)

		var l line
		var open bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return extscan.DecisionQuit, ctx.Err()
		case l, open = <-p.lines:
			if !open {
				l = line{err: io.EOF}
			}
		}

		if l.err == io.EOF && strings.TrimSpace(l.text) == "" {
			fmt.Fprintln(p.out)
			return extscan.DecisionQuit, nil
		}
		if l.err != nil && l.err != io.EOF {
			return extscan.DecisionQuit, fmt.Errorf("failed to read input: %w", l.err)
		}

		if decision, ok := ParseAnswer(l.text); ok {
			return decision, nil
		}
		if attempt >= p.maxAttempts {
			fmt.Fprintf(p.out, "Unrecognized answer %q, skipping.\n", strings.TrimSpace(l.text))
			return extscan.DecisionNo, nil
		}
		fmt.Fprintf(p.out, "Please answer y, n, a or q.\n")
	}
}

func (p *ConsolePrompt) startReader() {
	p.lines = make(chan line)
	go func() {
		defer close(p.lines)
		reader := bufio.NewReader(p.in)
		for {
			text, err := reader.ReadString('\n')
			select {
			case <-p.done:
				return
			default:
			}
			select {
			case p.lines <- line{text: text, err: err}:
			case <-p.done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
}

// ParseAnswer maps a typed answer to a decision, accepting English and French
// words case-insensitively. The empty answer is no.
func ParseAnswer(s string) (extscan.Decision, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n", "no", "non":
		return extscan.DecisionNo, true
	case "y", "yes", "o", "oui":
		return extscan.DecisionYes, true
	case "a", "all", "t", "tout":
		return extscan.DecisionAll, true
	case "q", "quit":
		return extscan.DecisionQuit, true
	}
	return extscan.DecisionNo, false
}

var _ extscan.Confirmer = (*ConsolePrompt)(nil)
