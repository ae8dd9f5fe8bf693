package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoadOptions(t *testing.T) {
	path := writeFile(t, `
[db]
path = "/tmp/cup.db"
use-wal = true
slow-threshold = "1s"

[log]
level = "debug"
format = "json"
`)
	opts, err := LoadOptions(path)
	require.NoError(t, err)
	require.NoError(t, opts.FillDefaults())

	assert.Equal(t, "/tmp/cup.db", opts.DB.Path)
	assert.True(t, opts.DB.UseWAL)
	assert.Equal(t, time.Second, opts.DB.SlowThreshold)
	assert.Equal(t, time.Minute, opts.DB.BusyTimeout)
	assert.NotNil(t, opts.DB.IDs)
	assert.Equal(t, "debug", opts.Log.Level)
	assert.Equal(t, "json", opts.Log.Format)
}

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions(writeFile(t, ""))
	require.NoError(t, err)
	require.NoError(t, opts.FillDefaults())

	assert.Equal(t, "futsal.db", filepath.Base(opts.DB.Path))
	assert.Equal(t, appDir, filepath.Base(filepath.Dir(opts.DB.Path)))
	assert.Equal(t, "warn", opts.Log.Level)
	assert.Equal(t, "text", opts.Log.Format)
}

func TestLoadOptionsErrors(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = LoadOptions(writeFile(t, "[db]\npaht = \"x\"\n"))
	require.ErrorContains(t, err, "db.paht")

	_, err = LoadOptions(writeFile(t, "[db\n"))
	require.Error(t, err)
}
