package actions

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/extscan/internal/files/filesystem"
	"github.com/vvka-141/extscan/internal/logging"
	"github.com/vvka-141/extscan/internal/trash"
	"github.com/vvka-141/extscan/internal/ui"
	"github.com/vvka-141/extscan/pkg/extscan"
)

type fixture struct {
	fs     *filesystem.MemoryFileSystem
	trash  *trash.Memory
	logger *logging.BufferLogger
	out    *bytes.Buffer
}

func newFixture(files map[string]string) *fixture {
	mfs := filesystem.NewMemoryFileSystem("/data")
	for p, c := range files {
		mfs.AddFile(p, c)
	}
	return &fixture{
		fs:     mfs,
		trash:  trash.NewMemory(mfs),
		logger: logging.NewBufferLogger(),
		out:    &bytes.Buffer{},
	}
}

func (f *fixture) runner(opts extscan.ActionOptions, c extscan.Confirmer) *Runner {
	return NewRunner(Dependencies{
		Out:       f.out,
		FS:        f.fs,
		Confirmer: c,
		Trasher:   f.trash,
		Logger:    f.logger,
	}, opts)
}

func entries(paths ...string) []extscan.FileEntry {
	out := make([]extscan.FileEntry, len(paths))
	for i, p := range paths {
		out[i] = extscan.FileEntry{Path: p, Extension: extscan.ExtensionOf(p)}
	}
	return out
}

func TestRun_ListOnly(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "A", "/data/b.txt": "B"})

	report, err := f.runner(extscan.ActionOptions{}, nil).Run(context.Background(), entries("/data/a.txt", "/data/b.txt"))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Matched)
	assert.Zero(t, report.Attempted())
	out := f.out.String()
	assert.Contains(t, out, "1. /data/a.txt\n2. /data/b.txt\n")
	assert.Contains(t, out, "Total: 2 file(s)")
	assert.Contains(t, out, "Use --delete or --display")
	assert.True(t, f.fs.Exists("/data/a.txt"))
}

func TestRun_NoEntries(t *testing.T) {
	f := newFixture(nil)

	report, err := f.runner(extscan.ActionOptions{Delete: true}, nil).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, report.Matched)
	assert.Empty(t, f.out.String())
}

func TestRun_DisplayPrintsContentInOrder(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "alpha\n", "/data/b.txt": "beta"})

	report, err := f.runner(extscan.ActionOptions{Display: true}, nil).Run(context.Background(), entries("/data/b.txt", "/data/a.txt"))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Displayed)
	out := f.out.String()
	iB := strings.Index(out, "Content of /data/b.txt:")
	iA := strings.Index(out, "Content of /data/a.txt:")
	require.NotEqual(t, -1, iA)
	require.NotEqual(t, -1, iB)
	assert.Less(t, iB, iA)
	assert.Contains(t, out, "alpha\n")
	assert.Contains(t, out, "beta\n")
	assert.True(t, f.fs.Exists("/data/a.txt"), "display must not delete")
}

func TestRun_DisplayBinaryIsNonFatal(t *testing.T) {
	f := newFixture(map[string]string{"/data/b.txt": "fine"})
	f.fs.AddFileBytes("/data/a.txt", []byte{'P', 'K', 0, 3, 4})

	report, err := f.runner(extscan.ActionOptions{Display: true}, nil).Run(context.Background(), entries("/data/a.txt", "/data/b.txt"))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Displayed)
	assert.Equal(t, 1, report.DisplayFailed)
	assert.ErrorIs(t, report.Outcomes[0].DisplayErr, extscan.ErrUndecodableContent)
	assert.True(t, report.Outcomes[1].Displayed)
	assert.True(t, f.logger.Contains("error", "/data/a.txt"))
}

func TestRun_DisplayUnreadable(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "secret"})
	f.fs.SetUnreadable("/data/a.txt")

	report, err := f.runner(extscan.ActionOptions{Display: true}, nil).Run(context.Background(), entries("/data/a.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, extscan.ErrNothingProcessed)
	assert.ErrorIs(t, report.Outcomes[0].DisplayErr, extscan.ErrFileUnreadable)
}

func TestRun_DisplayTruncates(t *testing.T) {
	f := newFixture(map[string]string{"/data/big.txt": strings.Repeat("é", 10)})

	_, err := f.runner(extscan.ActionOptions{Display: true, DisplayLimit: 5}, nil).Run(context.Background(), entries("/data/big.txt"))
	require.NoError(t, err)

	out := f.out.String()
	assert.Contains(t, out, "éé\n")
	assert.NotContains(t, out, "ééé")
	assert.Contains(t, out, "content truncated after 4 of 20 bytes")
}

func TestRun_DeleteWithoutConfirm(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "A", "/data/b.txt": "B", "/data/keep.md": "K"})

	report, err := f.runner(extscan.ActionOptions{Delete: true}, nil).Run(context.Background(), entries("/data/a.txt", "/data/b.txt"))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Deleted)
	assert.Equal(t, []string{"/data/a.txt", "/data/b.txt"}, f.trash.Trashed())
	assert.False(t, f.fs.Exists("/data/a.txt"))
	assert.True(t, f.fs.Exists("/data/keep.md"))
	assert.Contains(t, f.out.String(), "2 file(s) moved to trash out of 2.")
	require.NotNil(t, report.Outcomes[0].Trash)

	content, ok := f.trash.Content(*report.Outcomes[0].Trash)
	require.True(t, ok)
	assert.Equal(t, "A", string(content))
}

func TestRun_ConfirmDecisions(t *testing.T) {
	paths := []string{"/data/1.txt", "/data/2.txt", "/data/3.txt", "/data/4.txt"}
	files := map[string]string{}
	for _, p := range paths {
		files[p] = p
	}

	tests := []struct {
		name        string
		decisions   []extscan.Decision
		wantTrashed []string
		wantStates  []extscan.DeletionState
		wantPrompts int
		aborted     bool
	}{
		{
			name:        "yes no yes no",
			decisions:   []extscan.Decision{extscan.DecisionYes, extscan.DecisionNo, extscan.DecisionYes, extscan.DecisionNo},
			wantTrashed: []string{"/data/1.txt", "/data/3.txt"},
			wantStates:  []extscan.DeletionState{extscan.DeletionDeleted, extscan.DeletionSkipped, extscan.DeletionDeleted, extscan.DeletionSkipped},
			wantPrompts: 4,
		},
		{
			name:        "all stops prompting",
			decisions:   []extscan.Decision{extscan.DecisionNo, extscan.DecisionAll},
			wantTrashed: []string{"/data/2.txt", "/data/3.txt", "/data/4.txt"},
			wantStates:  []extscan.DeletionState{extscan.DeletionSkipped, extscan.DeletionDeleted, extscan.DeletionDeleted, extscan.DeletionDeleted},
			wantPrompts: 2,
		},
		{
			name:        "quit leaves the rest",
			decisions:   []extscan.Decision{extscan.DecisionYes, extscan.DecisionQuit},
			wantTrashed: []string{"/data/1.txt"},
			wantStates:  []extscan.DeletionState{extscan.DeletionDeleted, extscan.DeletionNotReached, extscan.DeletionNotReached, extscan.DeletionNotReached},
			wantPrompts: 2,
			aborted:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(files)
			c := ui.NewScriptedConfirmer(tt.decisions...)

			report, err := f.runner(extscan.ActionOptions{Delete: true, Confirm: true}, c).Run(context.Background(), entries(paths...))
			require.NoError(t, err)

			assert.Equal(t, tt.wantTrashed, f.trash.Trashed())
			require.Len(t, report.Outcomes, len(paths))
			for i, want := range tt.wantStates {
				assert.Equal(t, want, report.Outcomes[i].Deletion, "file %d", i)
			}
			assert.Len(t, c.Prompts(), tt.wantPrompts)
			assert.Equal(t, tt.aborted, report.Aborted)
			for _, p := range paths {
				trashed := false
				for _, tp := range tt.wantTrashed {
					trashed = trashed || tp == p
				}
				assert.Equal(t, !trashed, f.fs.Exists(p), p)
			}
		})
	}
}

func TestRun_QuitCountsRemaining(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "A", "/data/b.txt": "B", "/data/c.txt": "C"})
	c := ui.NewScriptedConfirmer(extscan.DecisionNo, extscan.DecisionQuit)

	report, err := f.runner(extscan.ActionOptions{Delete: true, Confirm: true}, c).Run(context.Background(), entries("/data/a.txt", "/data/b.txt", "/data/c.txt"))
	require.NoError(t, err, "quit after a skip is not a failure")

	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 2, report.Remaining)
	assert.Contains(t, f.out.String(), "0 file(s) moved to trash out of 3.")
	assert.True(t, f.logger.Contains("info", "2 file(s) left untouched"))
}

func TestRun_FailureAffectsOnlyThatFile(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "A", "/data/b.txt": "B"})
	f.trash.FailOn("/data/a.txt", extscan.ErrTrashUnavailable)

	report, err := f.runner(extscan.ActionOptions{Delete: true}, nil).Run(context.Background(), entries("/data/a.txt", "/data/b.txt"))
	require.NoError(t, err)

	assert.Equal(t, extscan.DeletionFailed, report.Outcomes[0].Deletion)
	assert.ErrorIs(t, report.Outcomes[0].DeleteErr, extscan.ErrTrashUnavailable)
	assert.Equal(t, extscan.DeletionDeleted, report.Outcomes[1].Deletion)
	assert.True(t, f.fs.Exists("/data/a.txt"))
	assert.Contains(t, f.out.String(), "1 file(s) moved to trash out of 2.")
}

func TestRun_FileVanishedBeforeDelete(t *testing.T) {
	f := newFixture(map[string]string{"/data/b.txt": "B"})

	report, err := f.runner(extscan.ActionOptions{Delete: true}, nil).Run(context.Background(), entries("/data/gone.txt", "/data/b.txt"))
	require.NoError(t, err)

	assert.ErrorIs(t, report.Outcomes[0].DeleteErr, extscan.ErrDeleteFailed)
	assert.Equal(t, 1, report.Deleted)
	assert.Equal(t, []string{"/data/b.txt"}, f.trash.Trashed())
}

func TestRun_EverythingFailed(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "A"})
	f.trash.FailOn("/data/a.txt", errors.New("read-only filesystem"))

	report, err := f.runner(extscan.ActionOptions{Delete: true}, nil).Run(context.Background(), entries("/data/a.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, extscan.ErrNothingProcessed)
	assert.ErrorIs(t, report.Outcomes[0].DeleteErr, extscan.ErrDeleteFailed)
}

func TestRun_AllSkippedIsNotFailure(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "A"})

	_, err := f.runner(extscan.ActionOptions{Delete: true, Confirm: true}, ui.NewScriptedConfirmer()).Run(context.Background(), entries("/data/a.txt"))
	assert.NoError(t, err)
	assert.True(t, f.fs.Exists("/data/a.txt"))
}

func TestRun_CancelledContextStopsBeforeFirstFile(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "A", "/data/b.txt": "B"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := f.runner(extscan.ActionOptions{Delete: true}, nil).Run(ctx, entries("/data/a.txt", "/data/b.txt"))
	require.NoError(t, err)

	assert.True(t, report.Aborted)
	assert.Equal(t, 2, report.Remaining)
	assert.Empty(t, f.trash.Trashed())
	assert.True(t, f.fs.Exists("/data/a.txt"))
}

type cancellingConfirmer struct {
	cancel context.CancelFunc
}

func (c cancellingConfirmer) Confirm(ctx context.Context, _ string) (extscan.Decision, error) {
	c.cancel()
	return extscan.DecisionQuit, ctx.Err()
}

func TestRun_InterruptDuringPrompt(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "A", "/data/b.txt": "B"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	report, err := f.runner(extscan.ActionOptions{Delete: true, Confirm: true}, cancellingConfirmer{cancel: cancel}).
		Run(ctx, entries("/data/a.txt", "/data/b.txt"))
	require.NoError(t, err)

	assert.True(t, report.Aborted)
	assert.Equal(t, 2, report.Remaining)
	assert.Empty(t, f.trash.Trashed())
}

type brokenConfirmer struct{}

func (brokenConfirmer) Confirm(context.Context, string) (extscan.Decision, error) {
	return extscan.DecisionNo, errors.New("terminal lost")
}

func TestRun_ConfirmerError(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "A"})

	report, err := f.runner(extscan.ActionOptions{Delete: true, Confirm: true}, brokenConfirmer{}).Run(context.Background(), entries("/data/a.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal lost")
	assert.Equal(t, 1, report.Remaining)
	assert.True(t, f.fs.Exists("/data/a.txt"))
}

func TestRun_DisplayThenDelete(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "A"})

	report, err := f.runner(extscan.ActionOptions{Display: true, Delete: true}, nil).Run(context.Background(), entries("/data/a.txt"))
	require.NoError(t, err)

	assert.True(t, report.Outcomes[0].Displayed)
	assert.Equal(t, extscan.DeletionDeleted, report.Outcomes[0].Deletion)
	out := f.out.String()
	assert.Less(t, strings.Index(out, "Content of /data/a.txt:"), strings.Index(out, "Moved /data/a.txt to trash."))
}

func TestRun_ConfirmDisplay(t *testing.T) {
	files := map[string]string{"/data/a.txt": "alpha", "/data/b.txt": "beta", "/data/c.txt": "gamma"}
	paths := []string{"/data/a.txt", "/data/b.txt", "/data/c.txt"}

	tests := []struct {
		name          string
		decisions     []extscan.Decision
		wantShown     []string
		wantHidden    []string
		wantPrompts   int
		wantRemaining int
	}{
		{
			name:        "yes no yes",
			decisions:   []extscan.Decision{extscan.DecisionYes, extscan.DecisionNo, extscan.DecisionYes},
			wantShown:   []string{"alpha", "gamma"},
			wantHidden:  []string{"beta"},
			wantPrompts: 3,
		},
		{
			name:        "all shows the rest without asking",
			decisions:   []extscan.Decision{extscan.DecisionNo, extscan.DecisionAll},
			wantShown:   []string{"beta", "gamma"},
			wantHidden:  []string{"alpha"},
			wantPrompts: 2,
		},
		{
			name:          "quit ends the run",
			decisions:     []extscan.Decision{extscan.DecisionYes, extscan.DecisionQuit},
			wantShown:     []string{"alpha"},
			wantHidden:    []string{"beta", "gamma"},
			wantPrompts:   2,
			wantRemaining: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(files)
			c := ui.NewScriptedConfirmer(tt.decisions...)

			report, err := f.runner(extscan.ActionOptions{Display: true, Confirm: true}, c).Run(context.Background(), entries(paths...))
			require.NoError(t, err)

			out := f.out.String()
			for _, content := range tt.wantShown {
				assert.Contains(t, out, content)
			}
			for _, content := range tt.wantHidden {
				assert.NotContains(t, out, content)
			}
			assert.Len(t, c.Prompts(), tt.wantPrompts)
			assert.Equal(t, "Show content of /data/a.txt?", c.Prompts()[0])
			assert.Equal(t, len(tt.wantShown), report.Displayed)
			assert.Equal(t, tt.wantRemaining, report.Remaining)
			assert.Equal(t, tt.wantRemaining > 0, report.Aborted)
			for _, o := range report.Outcomes {
				assert.Equal(t, extscan.DeletionNotRequested, o.Deletion, o.Path)
			}
		})
	}
}

func TestRun_ConfirmDisplayDeclinedIsNotFailure(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "A"})

	report, err := f.runner(extscan.ActionOptions{Display: true, Confirm: true}, ui.NewScriptedConfirmer(extscan.DecisionNo)).
		Run(context.Background(), entries("/data/a.txt"))
	require.NoError(t, err)

	assert.Equal(t, 1, report.DisplaySkipped)
	assert.True(t, report.Outcomes[0].DisplaySkipped)
	assert.False(t, report.Outcomes[0].Displayed)
	assert.Contains(t, f.out.String(), "Skipped content of /data/a.txt")
	assert.Contains(t, f.out.String(), "Files to display (1):\n1. /data/a.txt\n")
}

func TestRun_ConfirmDisplayThenDelete(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "alpha", "/data/b.txt": "beta"})
	c := ui.NewScriptedConfirmer(
		extscan.DecisionNo, extscan.DecisionYes, // a: hide, trash
		extscan.DecisionYes, extscan.DecisionNo, // b: show, keep
	)

	report, err := f.runner(extscan.ActionOptions{Display: true, Delete: true, Confirm: true}, c).
		Run(context.Background(), entries("/data/a.txt", "/data/b.txt"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Show content of /data/a.txt?",
		"Move /data/a.txt to trash?",
		"Show content of /data/b.txt?",
		"Move /data/b.txt to trash?",
	}, c.Prompts())
	assert.Equal(t, []string{"/data/a.txt"}, f.trash.Trashed())
	assert.True(t, f.fs.Exists("/data/b.txt"))
	assert.NotContains(t, f.out.String(), "alpha")
	assert.Contains(t, f.out.String(), "beta")
	assert.Equal(t, 1, report.Deleted)
	assert.Equal(t, 1, report.Skipped)
}

func TestRun_InterruptDuringDisplayPrompt(t *testing.T) {
	f := newFixture(map[string]string{"/data/a.txt": "alpha", "/data/b.txt": "beta"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	report, err := f.runner(extscan.ActionOptions{Display: true, Confirm: true}, cancellingConfirmer{cancel: cancel}).
		Run(ctx, entries("/data/a.txt", "/data/b.txt"))
	require.NoError(t, err)

	assert.True(t, report.Aborted)
	assert.Equal(t, 2, report.Remaining)
	assert.NotContains(t, f.out.String(), "alpha")
}

func TestNewRunner_PanicsOnMissingDependencies(t *testing.T) {
	f := newFixture(nil)
	assert.Panics(t, func() {
		NewRunner(Dependencies{Out: f.out, FS: f.fs, Logger: f.logger}, extscan.ActionOptions{Delete: true})
	})
	assert.Panics(t, func() {
		NewRunner(Dependencies{Out: f.out, FS: f.fs, Logger: f.logger, Trasher: f.trash}, extscan.ActionOptions{Delete: true, Confirm: true})
	})
	assert.NotPanics(t, func() {
		NewRunner(Dependencies{Out: f.out, FS: f.fs, Logger: f.logger}, extscan.ActionOptions{Display: true})
	})
	assert.Panics(t, func() {
		NewRunner(Dependencies{Out: f.out, FS: f.fs, Logger: f.logger}, extscan.ActionOptions{Display: true, Confirm: true})
	})
	assert.NotPanics(t, func() {
		NewRunner(Dependencies{Out: f.out, FS: f.fs, Logger: f.logger}, extscan.ActionOptions{Confirm: true})
	})
}
