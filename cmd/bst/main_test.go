package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	buildConfig.strings, buildConfig.order, buildConfig.remove = false, "in", nil
	buildConfig.mirror, buildConfig.stats = false, false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuild(t *testing.T) {
	for _, c := range []struct {
		stdin string
		args  []string
		want  string
	}{
		{"", []string{"build", "5", "3", "8", "1", "4", "7", "9"}, "1 3 4 5 7 8 9\n"},
		{"5 3 8\n1 4 7 9\n", []string{"build", "--order", "pre"}, "5 3 1 4 8 7 9\n"},
		{"", []string{"build", "-o", "post", "5", "3", "8", "1", "4", "7", "9"}, "1 4 3 7 9 8 5\n"},
		{"", []string{"build", "-o", "level", "5", "3", "8", "1", "4", "7", "9"}, "5 3 8 1 4 7 9\n"},
		{"", []string{"build", "-r", "5", "5", "3", "8", "1", "4", "7", "9"}, "1 3 4 7 8 9\n"},
		{"", []string{"build", "--mirror", "5", "3", "8", "1", "4", "7", "9"}, "9 8 7 5 4 3 1\n"},
		{"", []string{"build", "--strings", "pear", "apple", "fig"}, "apple fig pear\n"},
		{"", []string{"build", "--strings", "10", "9", "100"}, "10 100 9\n"},
	} {
		got, err := run(t, c.stdin, c.args...)
		require.NoError(t, err, "%v", c.args)
		require.Equal(t, c.want, got, "%v", c.args)
	}
}

func TestBuildStats(t *testing.T) {
	got, err := run(t, "", "build", "--stats", "5", "3", "8", "1", "4", "7", "9")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "1 3 4 5 7 8 9\n"))
	for _, s := range []string{"SIZE", "HEIGHT", "FIRST", "LAST", "MIRRORED", "7", "2", "false"} {
		require.Contains(t, got, s)
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := run(t, "", "build", "--order", "sideways", "1")
	require.Error(t, err)
	_, err = run(t, "", "build", "1", "two")
	require.Error(t, err)
	_, err = run(t, "", "build", "-r", "4", "1", "2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}
