package actions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/extscan/internal/files/filesystem"
	"github.com/vvka-141/extscan/pkg/extscan"
)

const ruleWidth = 50

// Dependencies are the collaborators of a Runner.
// Confirmer is required only with Confirm and an action; Trasher only with Delete.
type Dependencies struct {
	Out       io.Writer
	FS        filesystem.FileSystemProvider
	Confirmer extscan.Confirmer
	Trasher   extscan.Trasher
	Logger    extscan.Logger
}

// Runner executes the actions selected by ActionOptions over a list of files.
// Not safe for concurrent Run calls.
type Runner struct {
	deps Dependencies
	opts extscan.ActionOptions
	rule string
}

// NewRunner creates a Runner. It panics on missing dependencies, which are
// programming errors rather than runtime conditions.
func NewRunner(deps Dependencies, opts extscan.ActionOptions) *Runner {
	if deps.Out == nil {
		panic("out cannot be nil")
	}
	if deps.FS == nil {
		panic("filesystem cannot be nil")
	}
	if deps.Logger == nil {
		panic("logger cannot be nil")
	}
	if opts.Delete && deps.Trasher == nil {
		panic("trasher cannot be nil when deleting")
	}
	if opts.Confirm && opts.HasAction() && deps.Confirmer == nil {
		panic("confirmer cannot be nil when confirming")
	}
	if opts.DisplayLimit < 0 {
		opts.DisplayLimit = 0
	}
	return &Runner{deps: deps, opts: opts, rule: strings.Repeat("─", ruleWidth)}
}

// Run applies the actions to entries in the given order.
//
// It returns extscan.ErrNothingProcessed when actions were attempted and every
// one of them failed. Interruption and Quit are not errors: the report is
// marked Aborted and the untouched files are counted in Remaining.
func (r *Runner) Run(ctx context.Context, entries []extscan.FileEntry) (extscan.RunReport, error) {
	report := extscan.RunReport{Matched: len(entries)}
	if len(entries) == 0 {
		return report, nil
	}

	if !r.opts.HasAction() {
		r.list(entries)
		r.printf("\nUse --delete or --display to act on these files.\n")
		return report, nil
	}

	switch {
	case r.opts.Delete:
		r.printf("Files to move to trash (%d):\n", len(entries))
		r.list(entries)
	case r.opts.Confirm:
		r.printf("Files to display (%d):\n", len(entries))
		r.list(entries)
	}

	askDisplay := r.opts.Display && r.opts.Confirm
	askDelete := r.opts.Delete && r.opts.Confirm
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			r.deps.Logger.Warn("Interrupted: %v", err)
			r.abort(&report, entries[i:])
			break
		}

		outcome := extscan.FileOutcome{Path: entry.Path}

		if r.opts.Display {
			show := true
			if askDisplay {
				decision, err := r.ask(ctx, entry, fmt.Sprintf("Show content of %s?", entry.Path))
				if err != nil {
					r.stop(&report, outcome, entries[i+1:])
					return report, err
				}
				switch decision {
				case extscan.DecisionQuit:
					r.stop(&report, outcome, entries[i+1:])
					return r.finish(report)
				case extscan.DecisionAll:
					askDisplay = false
				case extscan.DecisionNo:
					show = false
					outcome.DisplaySkipped = true
					report.DisplaySkipped++
					r.printf("Skipped content of %s\n", entry.Path)
				}
			}
			if show {
				r.display(entry, &outcome, &report)
			}
		}

		if r.opts.Delete {
			if askDelete {
				decision, err := r.ask(ctx, entry, fmt.Sprintf("Move %s to trash?", entry.Path))
				if err != nil {
					r.stop(&report, outcome, entries[i+1:])
					return report, err
				}
				switch decision {
				case extscan.DecisionQuit:
					r.stop(&report, outcome, entries[i+1:])
					return r.finish(report)
				case extscan.DecisionAll:
					askDelete = false
				case extscan.DecisionNo:
					outcome.Deletion = extscan.DeletionSkipped
					report.Skipped++
					r.printf("Skipped %s\n", entry.Path)
					report.Outcomes = append(report.Outcomes, outcome)
					continue
				}
			}
			r.delete(entry, &outcome, &report)
		}

		report.Outcomes = append(report.Outcomes, outcome)
	}

	return r.finish(report)
}

// ask prompts for one file. Cancellation while waiting reads as Quit; any
// other confirmer failure is returned and ends the run.
func (r *Runner) ask(ctx context.Context, entry extscan.FileEntry, prompt string) (extscan.Decision, error) {
	decision, err := r.deps.Confirmer.Confirm(ctx, prompt)
	if err != nil && ctx.Err() == nil {
		return extscan.DecisionQuit, fmt.Errorf("confirmation for %s failed: %w", entry.Path, err)
	}
	if err != nil {
		r.deps.Logger.Warn("Interrupted: %v", err)
		return extscan.DecisionQuit, nil
	}
	return decision, nil
}

func (r *Runner) list(entries []extscan.FileEntry) {
	for i, e := range entries {
		r.printf("%d. %s\n", i+1, e.Path)
	}
	r.printf("\nTotal: %d file(s)\n", len(entries))
}

func (r *Runner) display(entry extscan.FileEntry, outcome *extscan.FileOutcome, report *extscan.RunReport) {
	data, err := r.deps.FS.ReadFile(entry.Path)
	if err != nil {
		err = fmt.Errorf("%w: %s: %v", extscan.ErrFileUnreadable, entry.Path, err)
	} else {
		err = checkText(data)
		if err != nil {
			err = fmt.Errorf("%s: %w", entry.Path, err)
		}
	}
	if err != nil {
		outcome.DisplayErr = err
		report.DisplayFailed++
		r.deps.Logger.Error("Cannot display %s: %v", entry.Path, err)
		return
	}

	shown, truncated := truncate(data, r.opts.DisplayLimit)
	r.printf("\nContent of %s:\n%s\n", entry.Path, r.rule)
	r.write(shown)
	if len(shown) > 0 && shown[len(shown)-1] != '\n' {
		r.printf("\n")
	}
	if truncated {
		r.printf("[...] content truncated after %d of %d bytes.\n", len(shown), len(data))
	}
	r.printf("%s\n", r.rule)

	outcome.Displayed = true
	report.Displayed++
}

func (r *Runner) delete(entry extscan.FileEntry, outcome *extscan.FileOutcome, report *extscan.RunReport) {
	fail := func(err error) {
		outcome.Deletion = extscan.DeletionFailed
		outcome.DeleteErr = err
		report.DeleteFailed++
		r.deps.Logger.Error("Cannot move %s to trash: %v", entry.Path, err)
	}

	if _, err := r.deps.FS.Stat(entry.Path); err != nil {
		fail(fmt.Errorf("%w: %s no longer exists: %v", extscan.ErrDeleteFailed, entry.Path, err))
		return
	}

	rec, err := r.deps.Trasher.Trash(entry.Path)
	if err != nil {
		if !errors.Is(err, extscan.ErrTrashUnavailable) && !errors.Is(err, extscan.ErrDeleteFailed) {
			err = fmt.Errorf("%w: %v", extscan.ErrDeleteFailed, err)
		}
		fail(err)
		return
	}

	outcome.Deletion = extscan.DeletionDeleted
	outcome.Trash = &rec
	report.Deleted++
	r.printf("Moved %s to trash.\n", entry.Path)
	r.deps.Logger.Verbose("Trashed %s as %s", entry.Path, rec.TrashedPath)
}

// stop records the current file as not reached and aborts the rest.
func (r *Runner) stop(report *extscan.RunReport, current extscan.FileOutcome, rest []extscan.FileEntry) {
	if r.opts.Delete {
		current.Deletion = extscan.DeletionNotReached
	}
	report.Outcomes = append(report.Outcomes, current)
	report.Remaining++
	r.abort(report, rest)
}

// abort marks rest as never reached.
func (r *Runner) abort(report *extscan.RunReport, rest []extscan.FileEntry) {
	report.Aborted = true
	for _, e := range rest {
		state := extscan.DeletionNotRequested
		if r.opts.Delete {
			state = extscan.DeletionNotReached
		}
		report.Outcomes = append(report.Outcomes, extscan.FileOutcome{Path: e.Path, Deletion: state})
		report.Remaining++
	}
}

func (r *Runner) finish(report extscan.RunReport) (extscan.RunReport, error) {
	if r.opts.Delete {
		r.printf("\n%d file(s) moved to trash out of %d.\n", report.Deleted, report.Matched)
	}
	if report.Aborted && report.Remaining > 0 {
		r.deps.Logger.Info("Stopped early: %d file(s) left untouched.", report.Remaining)
	}
	if report.Attempted() > 0 && report.Succeeded() == 0 {
		return report, fmt.Errorf("%w: %d action(s) attempted on %d file(s)",
			extscan.ErrNothingProcessed, report.Attempted(), report.Matched)
	}
	return report, nil
}

func (r *Runner) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.deps.Out, format, args...)
}

func (r *Runner) write(p []byte) {
	_, _ = r.deps.Out.Write(p)
}
