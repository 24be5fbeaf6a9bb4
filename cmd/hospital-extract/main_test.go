// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args. Flag values persist between
// calls, so every test passes the flags it relies on.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "healthcare_dataset.csv")
	output := filepath.Join(dir, "distinct_hospitals.txt")
	require.NoError(t, os.WriteFile(input, []byte(
		"Name,Hospital,Ward\nBobby,A,1\nLeslie,B,2\nDanny,A,3\nAndrew,,4\nAdrienne,C,5\n",
	), 0o644))

	t.Run("extracts hospitals", func(t *testing.T) {
		stdout, stderr, err := execute(t, "--input", input, "--output", output, "--column", "Hospital")
		require.NoError(t, err)
		assert.Equal(t, "Hôpitaux distincts :\nA\nB\nC\n", stdout)
		assert.Contains(t, stderr, "wrote")

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "A\nB\nC\n", string(data))
	})

	t.Run("quiet suppresses progress", func(t *testing.T) {
		_, stderr, err := execute(t, "--input", input, "--output", output, "--column", "Hospital", "--quiet")
		require.NoError(t, err)
		assert.NotContains(t, stderr, "wrote")
	})

	t.Run("unknown column fails", func(t *testing.T) {
		require.NoError(t, os.Remove(output))
		_, stderr, err := execute(t, "--input", input, "--output", output, "--column", "Clinic")
		require.Error(t, err)
		assert.Contains(t, stderr, `column "Clinic" not found`)
		assert.NoFileExists(t, output)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, _, err := execute(t, "--input", input, "--output", output, "--column", "Hospital", "extra")
		require.Error(t, err)
	})
}

func TestConfigCommand(t *testing.T) {
	stdout, _, err := execute(t, "config", "--column", "Ward", "--input", "data/wards.db", "--output", "wards.txt")
	require.NoError(t, err)
	assert.Contains(t, stdout, "column: Ward")
	assert.Contains(t, stdout, "path: data/wards.db")
	assert.Contains(t, stdout, "path: wards.txt")
	assert.Contains(t, stdout, "table: records")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hospital-extract dev\n", stdout)
}
