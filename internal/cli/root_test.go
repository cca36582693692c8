package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "gridpath", cmd.Use)
	assert.Contains(t, cmd.Long, "flower bed")
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	defaults := map[string]string{"format": "text", "tie-break": "down", "strategy": "memo"}
	for name, def := range defaults {
		f := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, def, f.DefValue, name)
	}
}

func TestRun_DefaultOutput(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Empty(t, stderr, "no logs without --verbose")
	assertGolden(t, "flower_bed", stdout)
}

func TestRun_TabulatedSameOutput(t *testing.T) {
	stdout, _, err := execute(t, "--strategy", "table")
	require.NoError(t, err)
	assertGolden(t, "flower_bed", stdout)
}

func TestRun_PreferRight(t *testing.T) {
	stdout, _, err := execute(t, "--tie-break", "right")
	require.NoError(t, err)
	assertGolden(t, "flower_bed_prefer_right", stdout)
}

func TestRun_Verbose(t *testing.T) {
	stdout, stderr, err := execute(t, "-v")
	require.NoError(t, err)
	assertGolden(t, "flower_bed", stdout)
	assert.Contains(t, stderr, "msg=solved")
	assert.Contains(t, stderr, "cost=1000")
	assert.Contains(t, stderr, "strategy=memo")
}

func TestRun_YAML(t *testing.T) {
	stdout, _, err := execute(t, "--format", "yaml")
	require.NoError(t, err)

	var got struct {
		Cost uint64   `yaml:"cost"`
		Path [][2]int `yaml:"path"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, uint64(1000), got.Cost)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {1, 3}, {2, 3}}, got.Path)
}

func TestRun_CommandErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"PositionalArg", []string{"grid.txt"}},
		{"UnknownFlag", []string{"--size", "3"}},
		{"BadFormat", []string{"--format", "json"}},
		{"BadTieBreak", []string{"--tie-break", "left"}},
		{"BadStrategy", []string{"--strategy", "greedy"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Empty(t, stdout)
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "x")))

	wrapped := WrapExitError(ExitFailure, "solve", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Equal(t, "solve: "+assert.AnError.Error(), wrapped.Error())
}
