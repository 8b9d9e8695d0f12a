package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default. Commands are package-level
// globals, so values and Changed bits persist across Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func resetSearchFlags() {
	searchFlags = searchFlagValues{}
}

// isolate runs the test in an empty working directory with no extscan
// environment and a private trash.
func isolate(t *testing.T) (trashDir string) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{"EXTSCAN_CONFIG", "EXTSCAN_SORT_ORDER", "EXTSCAN_DISPLAY_LIMIT", "EXTSCAN_NON_INTERACTIVE"} {
		t.Setenv(key, "")
	}
	t.Setenv("NO_COLOR", "1")
	trashDir = filepath.Join(t.TempDir(), "Trash")
	t.Setenv("EXTSCAN_TRASH_DIR", trashDir)
	return trashDir
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	resetFlags(rootCmd)
	resetSearchFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func makeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}
