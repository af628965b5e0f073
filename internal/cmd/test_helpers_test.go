package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCmd executes a fresh root command with the given args and returns
// the combined stdout/stderr output.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, stderr, err := executeCmdSplit(t, args...)
	return stdout + stderr, err
}

// executeCmdSplit executes a fresh root command and returns stdout and
// stderr separately.
func executeCmdSplit(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if args == nil {
		// Empty slice, not nil, which would make cobra read os.Args
		args = []string{}
	}
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
