package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/secretgate/internal/common/errorwrapper"
	"github.com/aleister1102/secretgate/internal/common/file"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// maxConfigFileSize bounds how much of a config file is read.
const maxConfigFileSize = 10 * 1024 * 1024

type GlobalConfig struct {
	AllowlistConfig AllowlistConfig `json:"allowlist_config,omitempty" yaml:"allowlist_config,omitempty"`
	DetectorConfig  DetectorConfig  `json:"detector_config,omitempty" yaml:"detector_config,omitempty"`
	LogConfig       LogConfig       `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ReporterConfig  ReporterConfig  `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	ScanConfig      ScanConfig      `json:"scan_config,omitempty" yaml:"scan_config,omitempty"`
	VCSConfig       VCSConfig       `json:"vcs_config,omitempty" yaml:"vcs_config,omitempty"`
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		AllowlistConfig: NewDefaultAllowlistConfig(),
		DetectorConfig:  NewDefaultDetectorConfig(),
		LogConfig:       NewDefaultLogConfig(),
		ReporterConfig:  NewDefaultReporterConfig(),
		ScanConfig:      NewDefaultScanConfig(),
		VCSConfig:       NewDefaultVCSConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both JSON and YAML.
// YAML is used if the file extension is .yaml or .yml. With no config file found the
// defaults are returned.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		if providedPath != "" {
			return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
		}
		return cfg, nil
	}

	data, err := loadConfigFileContent(file.NewFileValidator(logger), filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}
	normalizeConfig(cfg)

	logger.Debug().Str("path", filePath).Msg("Configuration file loaded")
	return cfg, nil
}

// loadConfigFileContent reads the config file after checking its size
func loadConfigFileContent(fv *file.FileValidator, filePath string) ([]byte, error) {
	info, err := fv.GetFileInfo(filePath)
	if err != nil {
		return nil, err
	}
	if info.IsDir {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "is a directory, not a file")
	}
	if info.Size > maxConfigFileSize {
		return nil, errorwrapper.NewValidationError("config_file", info.Size, "exceeds maximum config file size")
	}
	return os.ReadFile(filePath)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	if isYAMLFile(filepath.Ext(filePath)) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	ext = strings.ToLower(ext)
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

// normalizeConfig lower-cases extensions and enum-like values so lookups are case-insensitive.
func normalizeConfig(cfg *GlobalConfig) {
	for i, ext := range cfg.ScanConfig.Extensions {
		cfg.ScanConfig.Extensions[i] = strings.ToLower(strings.TrimSpace(ext))
	}
	cfg.VCSConfig.Backend = strings.ToLower(strings.TrimSpace(cfg.VCSConfig.Backend))
	cfg.ReporterConfig.Color = strings.ToLower(strings.TrimSpace(cfg.ReporterConfig.Color))
}
