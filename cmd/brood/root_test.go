package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/brood/pkg/brood/census"
)

const defaultOutput = "A child is born! They say, \"Hey, I'm Bob! :)\"\n" +
	"A child is born! They say, \"Hey, I'm Jeff! :)\"\n" +
	"A child is born! They say, \"Hey, I'm Chad! :)\"\n" +
	"A child is born! They say, \"Hey, I'm Stacy! :)\"\n" +
	"And they all come together and say, \n" +
	"\"And we all live inside of this vector!\"\n" +
	"Bob says, \"AND HEY, I'M STILL BOB! :)\"\n"

// execute runs the root command with args and returns stdout, stderr, and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDefaultRun(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)

	assert.Equal(t, defaultOutput, stdout)
	assert.Empty(t, stderr)
}

func TestRejectsArguments(t *testing.T) {
	stdout, _, err := execute(t, "extra")
	assert.Error(t, err)
	assert.Empty(t, stdout)
}

func TestConfigFileNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brood.yaml")
	require.NoError(t, os.WriteFile(path, []byte("names: [Ann, Ben]\n"), 0o600))

	stdout, _, err := execute(t, "--config", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "I'm Ann!")
	assert.Contains(t, stdout, "I'm Ben!")
	assert.Contains(t, stdout, "Ann says, \"AND HEY, I'M STILL BOB! :)\"\n")
	assert.NotContains(t, stdout, "Bob")
}

func TestEmptyNamesFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brood.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"names":[]}`), 0o600))

	_, stderr, err := execute(t, "-c", path)
	assert.Error(t, err)
	assert.Contains(t, stderr, "at least one name is required")
}

func TestLogLevelFlag(t *testing.T) {
	stdout, stderr, err := execute(t, "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, defaultOutput, stdout)
	assert.Contains(t, stderr, "person registered")
	assert.Contains(t, stderr, "run completed")
}

func TestLogLevelFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brood.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o600))

	_, stderr, err := execute(t, "-c", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestInvalidLogLevel(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "loud")
	assert.Error(t, err)
	assert.Contains(t, stderr, "invalid log level")
}

func TestMissingConfigFile(t *testing.T) {
	_, stderr, err := execute(t, "-c", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, stderr, "read config file")
}

func TestCensusFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "census.db")

	stdout, _, err := execute(t, "--census", path, "--run-id", "run-cli")
	require.NoError(t, err)
	assert.Equal(t, defaultOutput, stdout)

	store, err := census.NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.List("run-cli")
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "Bob", entries[0].Name)
	assert.Equal(t, "Stacy", entries[3].Name)
}

func TestCensusDuplicateRunFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "census.db")

	_, _, err := execute(t, "--census", path, "--run-id", "same")
	require.NoError(t, err)

	_, stderr, err := execute(t, "--census", path, "--run-id", "same")
	assert.ErrorIs(t, err, census.ErrDuplicateEntry)
	assert.Contains(t, stderr, "census record for Bob")
}
