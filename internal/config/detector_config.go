package config

// DetectorConfig holds the configuration for the external secret detector (trufflehog).
type DetectorConfig struct {
	BinaryPath       string   `json:"binary_path,omitempty" yaml:"binary_path,omitempty" validate:"required"`
	ExcludePathsFile string   `json:"exclude_paths_file,omitempty" yaml:"exclude_paths_file,omitempty"`
	ScanListFile     string   `json:"scan_list_file,omitempty" yaml:"scan_list_file,omitempty" validate:"required"`
	ExtraArgs        []string `json:"extra_args,omitempty" yaml:"extra_args,omitempty"`
	TimeoutSeconds   int      `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"min=0"`
}

// NewDefaultDetectorConfig creates a new DetectorConfig with default values.
func NewDefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		BinaryPath:       DefaultDetectorBinaryPath,
		ExcludePathsFile: DefaultDetectorExcludePathsFile,
		ScanListFile:     DefaultDetectorScanListFile,
		ExtraArgs:        []string{},
		TimeoutSeconds:   DefaultDetectorTimeoutSeconds,
	}
}
