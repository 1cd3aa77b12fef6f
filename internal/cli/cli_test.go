package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/crystalix007/intervals/internal/cli"
)

// testCase is a single invocation described in testdata/*.yaml.
type testCase struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Args        []string `yaml:"args"`
	Expect      struct {
		Stdout   string `yaml:"stdout"`
		Stderr   string `yaml:"stderr"`
		ExitCode int    `yaml:"exitCode"`
	} `yaml:"expect"`
}

type testGroup struct {
	Tests []testCase `yaml:"tests"`
}

func TestMain(m *testing.M) {
	color.NoColor = true

	os.Exit(m.Run())
}

func run(args ...string) (stdout, stderr string, exitCode int) {
	var out, errOut bytes.Buffer
	exitCode = cli.Run(args, &out, &errOut)

	return out.String(), errOut.String(), exitCode
}

func readCases(t *testing.T) map[string][]testCase {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	groups := make(map[string][]testCase, len(paths))

	for _, path := range paths {
		content, err := os.ReadFile(path)
		require.NoError(t, err)

		var group testGroup
		require.NoError(t, yaml.Unmarshal(content, &group), path)
		require.NotEmpty(t, group.Tests, path)

		groups[filepath.Base(path)] = group.Tests
	}

	return groups
}

func TestRun_cases(t *testing.T) {
	for file, tests := range readCases(t) {
		t.Run(file, func(t *testing.T) {
			for _, test := range tests {
				t.Run(test.Name, func(t *testing.T) {
					stdout, stderr, exitCode := run(test.Args...)

					require.Equal(t, test.Expect.ExitCode, exitCode, "stderr: %s", stderr)
					require.Equal(t, test.Expect.Stdout, stdout)
					require.Contains(t, stderr, test.Expect.Stderr)
				})
			}
		})
	}
}

func TestRun_golden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"union_disjoint", []string{"union", "[0, 3)", "[5, 8)"}},
		{"union_overlapping", []string{"union", "[0, 3)", "[1, 4)"}},
		{"iter_left_open", []string{"iter", "(0, 10]"}},
		{"iter_negative", []string{"iter", "[-3, 2)"}},
	}

	g := goldie.New(t)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stdout, stderr, exitCode := run(test.args...)
			require.Zero(t, exitCode, stderr)

			g.Assert(t, test.name, []byte(stdout))
		})
	}
}

func TestRun_verbose(t *testing.T) {
	stdout, stderr, exitCode := run("--verbose", "union", "[0, 3)", "[5, 8)")
	require.Zero(t, exitCode)
	require.Equal(t, "[0, 3)\n[5, 8)\n", stdout)
	require.Contains(t, stderr, "intervals")
	require.Contains(t, stderr, "union")
	require.Contains(t, stderr, "[0, 8)")

	_, stderr, exitCode = run("union", "[0, 3)", "[5, 8)")
	require.Zero(t, exitCode)
	require.Empty(t, stderr)
}

func TestRun_noColor(t *testing.T) {
	_, stderr, exitCode := run("--no-color", "intersect", "[3, 0]", "[0, 1]")
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr, "error: ")
	require.NotContains(t, stderr, "\x1b[")
}
