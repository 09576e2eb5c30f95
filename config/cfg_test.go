package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxf-codec/core"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "yaml", cfg.Dump.Format)
	assert.Equal(t, "normal", cfg.Logging.ConsoleLogger.Level)

	v, err := cfg.Codec.Version()
	require.NoError(t, err)
	assert.Equal(t, core.R2018, v)
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `version: 1
codec:
  output_version: AC1015
  write_handles: false
  code_page: windows-1252
dump:
  format: msgpack
logging:
  console:
    level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadConfiguration(configPath)
	require.NoError(t, err)

	v, err := cfg.Codec.Version()
	require.NoError(t, err)
	assert.Equal(t, core.R2000, v)
	assert.False(t, cfg.Codec.WriteHandles)
	assert.Equal(t, "windows-1252", cfg.Codec.CodePage)
	assert.Equal(t, "msgpack", cfg.Dump.Format)
	assert.Equal(t, "debug", cfg.Logging.ConsoleLogger.Level)
}

func TestLoadConfiguration_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "version: 1\nbogus: true\n"},
		{"bad format", "version: 1\ndump:\n  format: xml\n"},
		{"bad version", "version: 2\n"},
		{"bad output version", "version: 1\ncodec:\n  output_version: R9\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0644))

			_, err := LoadConfiguration(configPath)
			assert.Error(t, err)
		})
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)

	data, err := Dump(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "output_version: R2018")
	assert.Contains(t, string(data), "format: yaml")
}

func TestLoggingPrepare(t *testing.T) {
	conf := LoggingConfig{ConsoleLogger: LoggerConfig{Level: "none"}}
	log := conf.Prepare("test")
	require.NotNil(t, log)
	assert.False(t, log.Core().Enabled(0))

	conf.ConsoleLogger.Level = "debug"
	log = conf.Prepare("test")
	assert.True(t, log.Core().Enabled(-1))
}
