package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown timezone", func(c *Config) { c.Datetime.Timezone = "Mars/Olympus" }},
		{"empty timezone", func(c *Config) { c.Datetime.Timezone = "" }},
		{"unsupported lang", func(c *Config) { c.Datetime.DefaultLang = "fr" }},
		{"zero last days", func(c *Config) { c.Datetime.LastDays = 0 }},
		{"file output without path", func(c *Config) { c.Log.Output = "file" }},
		{"both output without path", func(c *Config) { c.Log.Output = "both" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, Validate(c))
		})
	}
}

func TestLoggingConfig(t *testing.T) {
	c := Default()
	c.Log.Output = "file"
	c.Log.File = "/var/log/dateutil.log"

	lc := c.LoggingConfig("dateutil", "cli")
	assert.Equal(t, "dateutil", lc.Service)
	assert.Equal(t, "cli", lc.Module)
	assert.Equal(t, "file", lc.Output)
	assert.Equal(t, "/var/log/dateutil.log", lc.File)
	assert.Equal(t, 100, lc.MaxSize)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dateutil.toml")
	content := `
version = "v2"

[log]
level = "debug"
format = "json"

[datetime]
timezone = "UTC"
default_lang = "en"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("APP_DATETIME_LAST_DAYS", "14")

	conf := Default()
	require.NoError(t, Load(path, conf))

	assert.Equal(t, "v2", conf.Version)
	assert.Equal(t, "debug", conf.Log.Level)
	assert.Equal(t, "json", conf.Log.Format)
	assert.Equal(t, "stderr", conf.Log.Output, "missing keys keep defaults")
	assert.Equal(t, "UTC", conf.Datetime.Timezone)
	assert.Equal(t, "en", conf.Datetime.DefaultLang)
	assert.Equal(t, 14, conf.Datetime.LastDays)
	assert.Same(t, GetViper(), GetViper())
}

func TestLoadMissingFile(t *testing.T) {
	conf := Default()
	err := Load(filepath.Join(t.TempDir(), "missing.toml"), conf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config error")
}
