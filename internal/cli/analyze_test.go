package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/extscan/pkg/extscan"
)

func TestAnalyze_PrintsDistribution(t *testing.T) {
	isolate(t)
	root := makeTree(t, map[string]string{"x.py": "", "y.py": "", "z": ""})

	res := execute(t, "", "analyze", root)
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "Files by extension in "+root)
	assert.Contains(t, res.stdout, ".py")
	assert.Contains(t, res.stdout, extscan.NoExtensionLabel)
	assert.Contains(t, res.stdout, "66.7%")
	assert.Contains(t, res.stdout, "Total")
	assert.NotContains(t, res.stdout, "\x1b[", "no ANSI codes when writing to a buffer")
}

func TestAnalyze_EmptyDirectory(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	res := execute(t, "", "analyze", root)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No files found")
}

func TestAnalyze_Errors(t *testing.T) {
	isolate(t)

	res := execute(t, "", "analyze", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, res.err)
	assert.Equal(t, extscan.ExitDirectoryError, extscan.ExitCodeForError(res.err))

	res = execute(t, "", "analyze")
	require.Error(t, res.err)
	assert.Equal(t, extscan.ExitUsageError, extscan.ExitCodeForError(res.err))

	res = execute(t, "", "analyze", "a", "b")
	require.Error(t, res.err)
	assert.Equal(t, extscan.ExitUsageError, extscan.ExitCodeForError(res.err))
}
