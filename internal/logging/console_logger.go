package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// ConsoleLogger writes log messages to a diagnostic writer (stderr by default).
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	out     io.Writer
	verbose bool
	mu      sync.Mutex

	verboseStyle lipgloss.Style
	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	styled       bool
}

// NewConsoleLogger creates a ConsoleLogger writing to stderr.
// If verbose is false, Verbose() calls are no-ops.
// Prefixes are colored when stderr is a terminal and NO_COLOR is unset.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	color := os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stderr.Fd()))
	return NewConsoleLoggerWithWriter(os.Stderr, verbose, color)
}

// NewConsoleLoggerWithWriter creates a ConsoleLogger writing to out.
func NewConsoleLoggerWithWriter(out io.Writer, verbose, color bool) *ConsoleLogger {
	l := &ConsoleLogger{out: out, verbose: verbose, styled: color}
	if color {
		r := lipgloss.NewRenderer(out)
		l.verboseStyle = r.NewStyle().Foreground(lipgloss.Color("240"))
		l.warnStyle = r.NewStyle().Foreground(lipgloss.Color("214"))
		l.errorStyle = r.NewStyle().Foreground(lipgloss.Color("196"))
	}
	return l
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.verboseStyle, "[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(lipgloss.Style{}, "", format, args)
}

// Warn logs non-fatal problems.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write(l.warnStyle, "[WARN] ", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.errorStyle, "[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(style lipgloss.Style, prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if l.styled && prefix != "" {
		prefix = style.Render(prefix[:len(prefix)-1]) + " "
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, prefix+msg+"\n")
}

var _ extscan.Logger = (*ConsoleLogger)(nil)
