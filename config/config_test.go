package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, text string) (path string) {
	path = filepath.Join(t.TempDir(), "ls8.toml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	return
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.False(cfg.Verbose)
	assert.Equal("-", cfg.Output)
	assert.Empty(cfg.Equates)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, `
verbose = true

[equates]
COUNT = "5"
BASE = "0x10"
`)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.True(cfg.Verbose)
	assert.Equal("-", cfg.Output)
	assert.Equal(map[string]string{"COUNT": "5", "BASE": "0x10"}, cfg.Equates)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)

	var cfgerr *ErrConfig
	assert.ErrorAs(err, &cfgerr)

	_, err = Load(writeConfig(t, "verbose = \n"))
	assert.Error(err)

	_, err = Load(writeConfig(t, "speed = 10\n"))
	assert.ErrorIs(err, ErrConfigUnknownKey)
}
