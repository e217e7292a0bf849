package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	configPath, dictPath, logLevel = "", "", ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListSeedWords(t *testing.T) {
	out, _, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "app, apple, application, ball, banana, bat, cat, dog, elephant\n", out)
}

func TestFind(t *testing.T) {
	out, _, err := run(t, "", "find", "app")
	require.NoError(t, err)
	assert.Equal(t, "Next possible letters: l\napp, apple, application\n", out)

	out, _, err = run(t, "", "find", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "No words found starting with 'zzz'.\n", out)
}

func TestNext(t *testing.T) {
	out, _, err := run(t, "", "next", "ba")
	require.NoError(t, err)
	assert.Equal(t, "Next possible letters: l, n, t\n", out)
}

func TestDictionaryFile(t *testing.T) {
	dict := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(dict, []byte("zebra\nzeal\n"), 0o644))

	out, stderr, err := run(t, "", "--dict", dict, "--log-level", "info", "find", "ze")
	require.NoError(t, err)
	assert.Equal(t, "Next possible letters: a, b\nzeal, zebra\n", out)
	assert.Contains(t, stderr, "Loaded dictionary")
}

func TestMissingDictionaryFile(t *testing.T) {
	_, _, err := run(t, "", "--dict", filepath.Join(t.TempDir(), "missing.txt"), "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "", "--log-level", "loud", "list")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "dictionary:\n  seed: [dog, cat]\ndisplay:\n  separator: \" / \"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, _, err := run(t, "", "--config", path, "list")
	require.NoError(t, err)
	assert.Equal(t, "cat / dog\n", out)
}

func TestShell(t *testing.T) {
	out, _, err := run(t, "clear\nadd zoo\nfind z\nexit\n", "shell")
	require.NoError(t, err)

	want := "Type 'help' for a list of commands.\n" +
		"app, apple, application, ball, banana, bat, cat, dog, elephant\n" +
		"Dictionary cleared.\n" +
		"Added 'zoo' to the dictionary.\n" +
		"zoo\n" +
		"Next possible letters: o\n" +
		"zoo\n"
	assert.Equal(t, want, out)
}

func TestTooManyArgs(t *testing.T) {
	_, _, err := run(t, "", "find", "a", "b")
	require.Error(t, err)
}

func TestExecuteInterrupted(t *testing.T) {
	configPath, dictPath, logLevel = "", "", ""

	var stdout bytes.Buffer
	rootCmd.SetArgs([]string{"shell"})
	rootCmd.SetIn(strings.NewReader("add cat\n"))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, execute(ctx))
	assert.NotContains(t, stdout.String(), "Added 'cat'")
}
