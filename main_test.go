package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tidytext/batch"
)

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.toml")
}

func TestCleanCommandArgs(t *testing.T) {
	out, _, err := runCLI(t, []string{"clean", "ur", "gr8"}, missingConfig(t), "")
	require.NoError(t, err)
	require.Equal(t, "Your great.\n", out)
}

func TestCleanCommandReport(t *testing.T) {
	cfg := writeConfig(t, "[output]\ncolor = \"never\"\n")

	_, stderr, err := runCLI(t, []string{"clean", "--report", "sooo", "good"}, cfg, "")
	require.NoError(t, err)
	require.Contains(t, stderr, "[OK] cleaned")

	_, stderr, err = runCLI(t, []string{"clean", "--report", "I am here."}, cfg, "")
	require.NoError(t, err)
	require.Contains(t, stderr, "[INFO] already clean")

	out, stderr, err := runCLI(t, []string{"clean", "--report", "see", "http://example.com"}, cfg, "")
	require.NoError(t, err)
	require.Equal(t, "see http://example.com\n", out)
	require.Contains(t, stderr, "[WARN]")
	require.NotContains(t, stderr, ansiReset)
}

func TestCleanCommandStdin(t *testing.T) {
	cfg := writeConfig(t, "[logging]\nlevel = \"error\"\n")
	in := "ur gr8\n\nhttp://example.com\nhello , world\n"

	out, stderr, err := runCLI(t, []string{"clean"}, cfg, in)
	require.NoError(t, err)
	require.Equal(t, "Your great.\n\nhttp://example.com\nHello, world.\n", out)
	require.Empty(t, stderr)
}

func TestCleanCommandUsesConfigOverrides(t *testing.T) {
	cfg := writeConfig(t, "[shorthand]\nr = \"are\"\nSMH = \"shaking my head\"\n")

	out, _, err := runCLI(t, []string{"clean", "smh", "how", "r", "u"}, cfg, "")
	require.NoError(t, err)
	require.Equal(t, "Shaking my head how are you.\n", out)
}

func TestCleanCommandRejectsBadLogLevel(t *testing.T) {
	_, _, err := runCLI(t, []string{"--log-level", "loud", "clean", "hi"}, missingConfig(t), "")
	require.Error(t, err)
}

func TestCleanCommandJSONLogs(t *testing.T) {
	_, stderr, err := runCLI(t, []string{"--log-format", "json", "clean"}, missingConfig(t), "ur gr8\n")
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"batch finished"`)
	require.Contains(t, stderr, `"run_id":`)
}

func TestFileCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(input, []byte("the the dog ran\nto day is gr8\n"), 0o644))

	out, _, err := runCLI(t, []string{"file", input, output}, missingConfig(t), "")
	require.NoError(t, err)
	require.Contains(t, out, "Lines")
	require.Contains(t, out, "Changed")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "The dog ran.\nToday is great.\n", string(data))

	require.FileExists(t, output+".lock")

	require.NoError(t, os.WriteFile(input, []byte("u ok\n"), 0o644))
	_, _, err = runCLI(t, []string{"file", input, output}, missingConfig(t), "")
	require.NoError(t, err, "a leftover lock file must not block the next run")

	data, err = os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "You ok.\n", string(data))
}

func TestFileCommandKeepsOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")
	tooLong := strings.Repeat("a", (1<<20)+16)
	require.NoError(t, os.WriteFile(input, []byte("ur gr8\n"+tooLong+"\n"), 0o644))
	require.NoError(t, os.WriteFile(output, []byte("previous run\n"), 0o644))

	_, _, err := runCLI(t, []string{"file", input, output}, missingConfig(t), "")
	require.Error(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "previous run\n", string(data))

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	require.Empty(t, leftovers)
}

func TestFileCommandValidation(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(input, []byte("hi\n"), 0o644))

	testCases := []struct {
		name string
		args []string
	}{
		{"bad input extension", []string{filepath.Join(dir, "in.md"), filepath.Join(dir, "out.txt")}},
		{"bad output extension", []string{input, filepath.Join(dir, "out.csv")}},
		{"hidden output", []string{input, filepath.Join(dir, ".txt")}},
		{"same file", []string{input, input}},
		{"missing input", []string{filepath.Join(dir, "nope.txt"), filepath.Join(dir, "out.txt")}},
		{"missing output dir", []string{input, filepath.Join(dir, "missing", "out.txt")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCLI(t, append([]string{"file"}, tc.args...), missingConfig(t), "")
			require.ErrorIs(t, err, batch.ErrInvalidArgument)
		})
	}
}

func TestDictCommand(t *testing.T) {
	cfg := writeConfig(t, "[shorthand]\nr = \"are\"\nzzz = \"sleeping\"\nu = \"you all\"\n")

	out, _, err := runCLI(t, []string{"dict", "--filter", "gr"}, cfg, "")
	require.NoError(t, err)
	require.Contains(t, out, "gr8")
	require.Contains(t, out, "great")
	require.NotContains(t, out, "sleeping")

	out, _, err = runCLI(t, []string{"dict", "--overrides"}, cfg, "")
	require.NoError(t, err)
	require.Contains(t, out, "sleeping")
	require.Contains(t, out, "override")
	require.Contains(t, out, "3 of ")
	require.Contains(t, out, "Replaces")

	out, _, err = runCLI(t, []string{"dict", "--overrides", "--filter", "u"}, cfg, "")
	require.NoError(t, err)
	var row string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "you all") {
			row = line
		}
	}
	require.NotEmpty(t, row)
	require.Equal(t, 2, strings.Count(row, "you"), "override row should show the built-in expansion it replaces: %q", row)

	out, _, err = runCLI(t, []string{"dict", "--filter", "qqqq"}, cfg, "")
	require.NoError(t, err)
	require.Contains(t, out, "No matching entries")
}

func TestConfigInitAndValidate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, missingConfig(t), "")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote sample configuration")
	require.FileExists(t, target)

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, missingConfig(t), "")
	require.ErrorContains(t, err, "already exists")

	_, _, err = runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, missingConfig(t), "")
	require.NoError(t, err)

	out, _, err = runCLI(t, []string{"config", "validate"}, target, "")
	require.NoError(t, err)
	require.Contains(t, out, "Configuration valid")
	require.Contains(t, out, "Shorthand overrides: 0")
}

func TestConfigInitSkipsBrokenConfig(t *testing.T) {
	broken := writeConfig(t, "[logging]\nlevel = \"shout\"\n")
	target := filepath.Join(t.TempDir(), "config.toml")

	_, _, err := runCLI(t, []string{"config", "init", "--path", target}, broken, "")
	require.NoError(t, err)

	_, _, err = runCLI(t, []string{"config", "validate"}, broken, "")
	require.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	path := missingConfig(t)
	out, _, err := runCLI(t, []string{"config", "path"}, path, "")
	require.NoError(t, err)
	require.Contains(t, out, path)
	require.Contains(t, out, "Exists:      no")
}

func TestRenderStatusLine(t *testing.T) {
	plain := renderStatusLine("sentence", statusOK, "cleaned", false)
	require.Equal(t, "sentence:  [OK] cleaned", plain)

	colored := renderStatusLine("sentence", statusError, "", true)
	require.True(t, strings.HasPrefix(colored, ansiRed))
	require.True(t, strings.HasSuffix(colored, ansiReset))
	require.Contains(t, colored, "[ERROR]")
}

func TestIsValidTxtFile(t *testing.T) {
	require.True(t, isValidTxtFile("notes.txt"))
	require.True(t, isValidTxtFile("dir/NOTES.TXT"))
	require.False(t, isValidTxtFile(".txt"))
	require.False(t, isValidTxtFile("dir/.hidden.txt"))
	require.False(t, isValidTxtFile("notes.md"))
}
