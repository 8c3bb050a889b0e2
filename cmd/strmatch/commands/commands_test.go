package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree with the given stdin and arguments.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootShowsHelp(t *testing.T) {
	out, _, err := run(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "search")
	assert.Contains(t, out, "compare")
}

func TestRootRejectsUnknownFlags(t *testing.T) {
	_, _, err := run(t, "", "--unknown-flag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "strmatch dev (commit: none, built: unknown)\n", out)
}

func TestSearchStdin(t *testing.T) {
	out, _, err := run(t, "ABABABABAB", "search", "ABAB")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"(standard input):0",
		"(standard input):2",
		"(standard input):4",
		"(standard input):6",
	}, "\n")+"\n", out)
}

func TestSearchAlgorithms(t *testing.T) {
	for _, name := range []string{"gsv", "morris-pratt", "mp", "kmp", "kmp-standard", "aho-corasick"} {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, "ABABACABABAC", "search", "--algorithm", name, "ABABAC")
			require.NoError(t, err)
			assert.Equal(t, "(standard input):0\n(standard input):6\n", out)
		})
	}
}

func TestSearchFilesCount(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "abababa")
	b := writeFile(t, dir, "b.txt", "xyz")

	out, _, err := run(t, "", "search", "--count", "a", a, b)
	require.NoError(t, err)
	assert.Equal(t, a+":4\n"+b+":0\n", out)
}

func TestSearchStdinDash(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "f.txt", "needle")

	out, _, err := run(t, "a needle", "search", "-c", "needle", f, "-")
	require.NoError(t, err)
	assert.Equal(t, f+":1\n(standard input):1\n", out)
}

func TestSearchNoMatches(t *testing.T) {
	out, _, err := run(t, "abcdefg", "search", "xyz")
	require.ErrorIs(t, err, ErrNoMatches)
	assert.Empty(t, out)
}

func TestSearchContext(t *testing.T) {
	out, _, err := run(t, "the quick brown", "search", "-C", "2", "quick")
	require.NoError(t, err)
	assert.Equal(t, "(standard input):4: e quick b\n", out)
}

func TestSearchParallel(t *testing.T) {
	out, _, err := run(t, "aaaaa", "search", "-w", "4", "--parallel-threshold", "0", "-c", "aa")
	require.NoError(t, err)
	assert.Equal(t, "(standard input):4\n", out)
}

func TestSearchErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no_pattern", []string{"search"}, "arg"},
		{"empty_pattern", []string{"search", ""}, "empty pattern"},
		{"unknown_algorithm", []string{"search", "-a", "boyer-moore", "x"}, "algorithm"},
		{"too_many_workers", []string{"search", "-w", "5000", "x"}, "workers"},
		{"bad_color", []string{"search", "--color", "rainbow", "x"}, "color"},
		{"missing_file", []string{"search", "x", missing}, "missing.txt"},
		{"missing_config", []string{"search", "--config", missing, "x"}, "missing.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "x", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSearchConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "strmatch.yaml", "algorithm: kmp\ncontext: 1\ncolor: never\n")

	out, stderr, err := run(t, "abc", "search", "--config", cfg, "--log-level", "debug", "b")
	require.NoError(t, err)
	assert.Equal(t, "(standard input):1: abc\n", out)
	assert.Contains(t, stderr, "algorithm=kmp")
	assert.Contains(t, stderr, "run_id=")

	// Flags override the file.
	out, _, err = run(t, "abc", "search", "--config", cfg, "--context", "0", "b")
	require.NoError(t, err)
	assert.Equal(t, "(standard input):1\n", out)
}

func TestSearchDebugLogsStages(t *testing.T) {
	_, stderr, err := run(t, "abcabcabcd", "search", "--log-level", "debug", "abcd")
	require.NoError(t, err)
	assert.Contains(t, stderr, "stage complete")
	assert.Contains(t, stderr, "search complete")
}

func TestSearchMetrics(t *testing.T) {
	out, stderr, err := run(t, "abab", "search", "--metrics", "ab")
	require.NoError(t, err)
	assert.Equal(t, "(standard input):0\n(standard input):2\n", out)
	assert.Contains(t, stderr, `strmatch_searches_total{algorithm="gsv"} 1`)
	assert.Contains(t, stderr, `strmatch_matches_total{algorithm="gsv"} 2`)
	assert.Contains(t, stderr, `strmatch_gsv_stages_total{case="seed"} 1`)
}

func TestSearchTrace(t *testing.T) {
	_, stderr, err := run(t, "abab", "search", "--trace", "ab")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"Name": "search"`)
	assert.Contains(t, stderr, `"Name": "find"`)
	assert.Contains(t, stderr, "strmatch.run_id")
}

func TestCompare(t *testing.T) {
	out, _, err := run(t, "xyzabcdefghiabcdef", "compare", "abcdef")
	require.NoError(t, err)
	assert.Contains(t, out, "(standard input) (18 bytes)")
	for _, name := range []string{"gsv", "morris-pratt", "mp", "kmp", "kmp-standard", "aho-corasick"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "MISMATCH")
	assert.Equal(t, 6, strings.Count(out, " ok"))
}

func TestCompareParallelAndMetrics(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "periodic.txt", strings.Repeat("ab", 200)+"c")

	out, stderr, err := run(t, "", "compare", "-w", "4", "--parallel-threshold", "0", "--metrics", strings.Repeat("ab", 8), f)
	require.NoError(t, err)
	assert.NotContains(t, out, "MISMATCH")
	assert.Contains(t, stderr, `strmatch_searches_total{algorithm="aho-corasick"} 1`)
	assert.Contains(t, stderr, `strmatch_gsv_stages_total{case="periodic"}`)
}
