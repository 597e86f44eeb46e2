package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, stdin string, interactive bool, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, &stderr, interactive)
	err := app.Run(append([]string{"kparse"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRunStdin(t *testing.T) {
	stdout, stderr, err := runApp(t, "def f(x) x*2; f(4)", false)
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Equal(t, "parsed definition\nparsed top level expression\n", stderr)
}

func TestRunInteractivePrompt(t *testing.T) {
	_, stderr, err := runApp(t, "1", true)
	require.NoError(t, err)
	require.Equal(t, "ready> parsed top level expression\nready> ", stderr)

	_, stderr, err = runApp(t, "1", true, "--prompt", "> ")
	require.NoError(t, err)
	require.Equal(t, "> parsed top level expression\n> ", stderr)
}

func TestRunPromptFromEnv(t *testing.T) {
	t.Setenv("KALEIDO_PROMPT", "kal> ")
	_, stderr, err := runApp(t, "", false)
	require.NoError(t, err)
	require.Equal(t, "kal> ", stderr)
}

func TestRunSyntaxErrorsDoNotFail(t *testing.T) {
	_, stderr, err := runApp(t, "foo(1", false)
	require.NoError(t, err)
	require.Contains(t, stderr, "error: line 1:6: expected ')' or ',' in argument list")
	require.Contains(t, stderr, "token type: eof")
}

func TestRunJSONAndVerbose(t *testing.T) {
	stdout, _, err := runApp(t, "extern sin(x)", false, "--json")
	require.NoError(t, err)
	require.Equal(t, `{"kind":"extern","node":{"kind":"prototype","name":"sin","params":["x"],"line":1,"column":8}}`+"\n", stdout)

	stdout, _, err = runApp(t, "a-b", false, "-v", "--style", "tree")
	require.NoError(t, err)
	require.Equal(t, "Function\n  Prototype __anon_expr()\n  Binary -\n    Variable a\n    Variable b\n", stdout)
}

func TestRunTokens(t *testing.T) {
	stdout, _, err := runApp(t, "extern f", false, "--tokens")
	require.NoError(t, err)
	require.Equal(t, "token type: extern\ntoken type: ident. f\n", stdout)
}

func TestRunStrictNumbers(t *testing.T) {
	_, stderr, err := runApp(t, "1..2", false, "--strict-numbers")
	require.NoError(t, err)
	require.Contains(t, stderr, "malformed number literal")
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.k")
	b := filepath.Join(dir, "b.k")
	require.NoError(t, os.WriteFile(a, []byte("def one() 1"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("extern two()"), 0o644))

	_, stderr, err := runApp(t, "ignored", true, a, b)
	require.NoError(t, err)
	require.Equal(t, "parsed definition\nparsed extern\n", stderr)

	_, _, err = runApp(t, "", false, a, filepath.Join(dir, "missing.k"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.k")
}

func TestRunBadStyle(t *testing.T) {
	_, _, err := runApp(t, "1", false, "--style", "xml")
	require.Error(t, err)
}
