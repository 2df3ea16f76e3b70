package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/secretgate/internal/common/errorwrapper"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points discovery at empty directories so a developer's own config is never picked up.
func isolate(t *testing.T) string {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatal(err)
		}
	})
	return dir
}

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, DefaultAllowlistFile, cfg.AllowlistConfig.File)
	assert.Equal(t, "trufflehog", cfg.DetectorConfig.BinaryPath)
	assert.Equal(t, ".trufflehog_exclude.txt", cfg.DetectorConfig.ExcludePathsFile)
	assert.Equal(t, ".trufflehog_scan_list.tmp", cfg.DetectorConfig.ScanListFile)
	assert.Equal(t, int64(1048576), cfg.ScanConfig.MaxFileSizeBytes)
	assert.Contains(t, cfg.ScanConfig.Extensions, ".rs")
	assert.Contains(t, cfg.ScanConfig.Extensions, ".env")
	assert.NotContains(t, cfg.ScanConfig.Extensions, ".png")
	assert.Equal(t, VCSBackendAuto, cfg.VCSConfig.Backend)
	assert.Equal(t, ColorModeAuto, cfg.ReporterConfig.Color)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestNewDefaultScanConfig_DoesNotAliasDefaults(t *testing.T) {
	cfg := NewDefaultScanConfig()
	cfg.Extensions[0] = ".changed"
	assert.Equal(t, ".rs", DefaultScanExtensions[0])
}

func TestLoadGlobalConfig_NoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, NewDefaultGlobalConfig(), cfg)
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	isolate(t)

	cfg, err := LoadGlobalConfig("/nonexistent/config.yaml", zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidConfiguration)
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "custom.yaml")
	configData := `
scan_config:
  extensions: [".PY", ".go"]
  max_file_size_bytes: 2048
detector_config:
  binary_path: /opt/bin/trufflehog
  extra_args: ["--no-update"]
allowlist_config:
  file: .secrets-allow.json
vcs_config:
  backend: GO-GIT
log_config:
  log_level: debug
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, []string{".py", ".go"}, cfg.ScanConfig.Extensions)
	assert.Equal(t, int64(2048), cfg.ScanConfig.MaxFileSizeBytes)
	assert.Equal(t, "/opt/bin/trufflehog", cfg.DetectorConfig.BinaryPath)
	assert.Equal(t, []string{"--no-update"}, cfg.DetectorConfig.ExtraArgs)
	// Fields absent from the file keep their defaults
	assert.Equal(t, ".trufflehog_scan_list.tmp", cfg.DetectorConfig.ScanListFile)
	assert.Equal(t, ".secrets-allow.json", cfg.AllowlistConfig.File)
	assert.Equal(t, VCSBackendGoGit, cfg.VCSConfig.Backend)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "config.json")
	configData := `{"reporter_config": {"color": "never"}, "detector_config": {"timeout_seconds": 30}}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, ColorModeNever, cfg.ReporterConfig.Color)
	assert.Equal(t, 30, cfg.DetectorConfig.TimeoutSeconds)
	assert.Equal(t, "trufflehog", cfg.DetectorConfig.BinaryPath)
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("scan_config: [unclosed"), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to unmarshal YAML")
}

func TestGetConfigPath_Priority(t *testing.T) {
	dir := isolate(t)

	assert.Equal(t, "", GetConfigPath(""))

	cwdConfig := filepath.Join(dir, ".secretgate.yaml")
	require.NoError(t, os.WriteFile(cwdConfig, []byte("{}"), 0644))
	found := GetConfigPath("")
	require.NotEmpty(t, found)
	assert.Equal(t, ".secretgate.yaml", filepath.Base(found))

	envConfig := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(envConfig, []byte("{}"), 0644))
	t.Setenv(ConfigPathEnvVar, envConfig)
	assert.Equal(t, envConfig, GetConfigPath(""))

	flagConfig := filepath.Join(t.TempDir(), "flag.yaml")
	require.NoError(t, os.WriteFile(flagConfig, []byte("{}"), 0644))
	assert.Equal(t, flagConfig, GetConfigPath(flagConfig))
}

func TestGetConfigPath_HomeDirectory(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	userConfig := filepath.Join(home, UserConfigDir, "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(userConfig), 0755))
	require.NoError(t, os.WriteFile(userConfig, []byte("{}"), 0644))

	assert.Equal(t, userConfig, GetConfigPath(""))
	assert.Equal(t, userConfig, GetConfigPath("~/"+UserConfigDir+"/config.yaml"))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *GlobalConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *GlobalConfig) {},
		},
		{
			name:    "extension without dot",
			mutate:  func(cfg *GlobalConfig) { cfg.ScanConfig.Extensions = []string{"go"} },
			wantErr: "extension",
		},
		{
			name:    "empty extension list",
			mutate:  func(cfg *GlobalConfig) { cfg.ScanConfig.Extensions = nil },
			wantErr: "Extensions",
		},
		{
			name:    "zero size ceiling",
			mutate:  func(cfg *GlobalConfig) { cfg.ScanConfig.MaxFileSizeBytes = 0 },
			wantErr: "MaxFileSizeBytes",
		},
		{
			name:    "unknown backend",
			mutate:  func(cfg *GlobalConfig) { cfg.VCSConfig.Backend = "hg" },
			wantErr: "Backend",
		},
		{
			name:    "unknown colour mode",
			mutate:  func(cfg *GlobalConfig) { cfg.ReporterConfig.Color = "sometimes" },
			wantErr: "Color",
		},
		{
			name:    "bad log level",
			mutate:  func(cfg *GlobalConfig) { cfg.LogConfig.LogLevel = "loud" },
			wantErr: "loglevel",
		},
		{
			name:    "missing detector binary",
			mutate:  func(cfg *GlobalConfig) { cfg.DetectorConfig.BinaryPath = "" },
			wantErr: "BinaryPath",
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *GlobalConfig) { cfg.DetectorConfig.TimeoutSeconds = -1 },
			wantErr: "TimeoutSeconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGlobalConfig()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errorwrapper.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_Nil(t *testing.T) {
	assert.Error(t, ValidateConfig(nil))
}
