package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	emptySHA3_256 = "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"
	abcdeSHA3_256 = "d716ec61e18904a8f58679b71cb065d4d5db72e0e0c3f155a4feff7add0e58eb"
	abcdeSHA3_512 = "1d7c3aa6ee17da5f4aeb78be968aa38476dbee54842e1ae2856f4c9a5cd04d45dc75c2902182b07c130ed582d476995b502b8777ccf69f60574471600386639b"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"sha3", "--verbosity", "error"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestString(t *testing.T) {
	out, err := runApp(t, "--string", "abcde")
	require.NoError(t, err)
	require.Equal(t, abcdeSHA3_256+"\n", out)

	out, err = runApp(t, "--algo", "512", "--string", "abcde")
	require.NoError(t, err)
	require.Equal(t, abcdeSHA3_512+"\n", out)
}

func TestAlgoFromEnv(t *testing.T) {
	t.Setenv("SHA3_ALGO", "512")
	out, err := runApp(t, "--string", "abcde")
	require.NoError(t, err)
	require.Equal(t, abcdeSHA3_512+"\n", out)
}

// A value read from the environment must not leak into later apps.
func TestAlgoEnvDoesNotPersist(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		t.Setenv("SHA3_ALGO", "512")
		out, err := runApp(t, "--string", "abcde")
		require.NoError(t, err)
		require.Equal(t, abcdeSHA3_512+"\n", out)
	})

	out, err := runApp(t, "--string", "abcde")
	require.NoError(t, err)
	require.Equal(t, abcdeSHA3_256+"\n", out)
}

func TestSelfTestRejectsUnsupportedAlgo(t *testing.T) {
	out, err := runApp(t, "--algo", "1024", "--test")
	require.ErrorIs(t, err, errUnsupportedAlgo)
	require.NotContains(t, out, "[OK]")

	out, err = runApp(t, "--algo", "384", "--test")
	require.NoError(t, err)
	require.Contains(t, out, "All 12 tests completed successfully!")
}

func TestUnsupportedAlgo(t *testing.T) {
	for _, algo := range []string{"128", "sha256", ""} {
		out, err := runApp(t, "--algo", algo, "--string", "abcde")
		require.ErrorIs(t, err, errUnsupportedAlgo, "algo %q", algo)
		require.Empty(t, out)
	}
}

func TestNoInput(t *testing.T) {
	_, err := runApp(t)
	require.ErrorIs(t, err, errNoInput)

	_, err = runApp(t, "--algo", "384")
	require.ErrorIs(t, err, errNoInput)
}

func TestConflictingInput(t *testing.T) {
	_, err := runApp(t, "--string", "abc", "--test")
	require.ErrorIs(t, err, errConflictingInput)

	path := writeFile(t, t.TempDir(), "a", "abc")
	_, err = runApp(t, "--string", "abc", "--path", path)
	require.ErrorIs(t, err, errConflictingInput)
}

func TestSinglePath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "abcde.txt", "abcde")

	out, err := runApp(t, "--path", path)
	require.NoError(t, err)
	require.Equal(t, abcdeSHA3_256+"\n", out)
}

func TestMultiplePaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a", "abcde")
	b := writeFile(t, dir, "b", "")

	out, err := runApp(t, "--jobs", "1", "--path", a, "--path", b)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		abcdeSHA3_256 + "  " + a,
		emptySHA3_256 + "  " + b,
	}, lines)
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := runApp(t, "--path", missing)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), missing)
}

func TestHashFilesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 20; i++ {
		content := strings.Repeat("x", i*31)
		paths = append(paths, writeFile(t, dir, strings.Repeat("f", i+1), content))
	}

	parallel, err := hashFiles(context.Background(), paths, 384, 4)
	require.NoError(t, err)
	serial, err := hashFiles(context.Background(), paths, 384, 1)
	require.NoError(t, err)
	require.Equal(t, serial, parallel)
	for _, d := range parallel {
		require.Len(t, d, 96)
	}
}

func TestSelfTest(t *testing.T) {
	out, err := runApp(t, "--test")
	require.NoError(t, err)
	require.Equal(t, len(selfTestVectors), strings.Count(out, "[OK]"))
	require.Contains(t, out, "All 12 tests completed successfully!")
	require.NotContains(t, out, "[FAILED]")
}

func TestSelfTestFailure(t *testing.T) {
	var out bytes.Buffer
	vectors := []vector{
		{256, "abcde", abcdeSHA3_256},
		{256, "abcde", emptySHA3_256},
		{100, "abcde", abcdeSHA3_256},
	}
	err := runSelfTest(&out, vectors)
	require.ErrorIs(t, err, errSelfTest)
	require.Equal(t, 1, strings.Count(out.String(), "[OK]"))
	require.Equal(t, 2, strings.Count(out.String(), "[FAILED]"))
	require.Contains(t, out.String(), "[1 / 3] passed")
}

func TestParseAlgo(t *testing.T) {
	for _, s := range []string{"224", "256", "384", "512"} {
		size, err := parseAlgo(s)
		require.NoError(t, err)
		require.Equal(t, s, strconv.Itoa(size))
	}
	_, err := parseAlgo("1088")
	require.ErrorIs(t, err, errUnsupportedAlgo)
}
