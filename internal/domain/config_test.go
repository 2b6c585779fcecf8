package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, CommandUsage, cfg.DefaultCommand)
	assert.Equal(t, "usage.txt", cfg.UsageFile)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config has no warnings", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.DefaultCommand = CommandInteractive
		cfg.Format = FormatYAML
		cfg.Validate()
		assert.Empty(t, cfg.Warnings)
		assert.Equal(t, CommandInteractive, cfg.DefaultCommand)
	})

	t.Run("unknown default command", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.DefaultCommand = "bogus"
		cfg.Validate()
		assert.Equal(t, CommandUsage, cfg.DefaultCommand)
		assert.Len(t, cfg.Warnings, 1)
	})

	t.Run("conversion default command", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.DefaultCommand = CommandFToC
		cfg.Validate()
		assert.Equal(t, CommandUsage, cfg.DefaultCommand)
		assert.Len(t, cfg.Warnings, 1)
	})

	t.Run("bad format and log level", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Format = "xml"
		cfg.Log.Level = "loud"
		cfg.Validate()
		assert.Equal(t, FormatText, cfg.Format)
		assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
		assert.Len(t, cfg.Warnings, 2)
	})
}

func TestValidateFormat(t *testing.T) {
	for _, f := range Formats() {
		assert.NoError(t, ValidateFormat(f))
	}
	assert.ErrorIs(t, ValidateFormat("xml"), ErrUnknownFormat)
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, "/home/u/.config/tempconv", GlobalConfigDir("/home/u/.config"))
	assert.Equal(t, "/work/.tempconv.toml", LocalConfigPath("/work"))
}
