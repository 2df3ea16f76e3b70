package config

// ScanConfig controls which staged files are submitted to the detector.
type ScanConfig struct {
	Extensions       []string `json:"extensions,omitempty" yaml:"extensions,omitempty" validate:"required,min=1,dive,extension"`
	MaxFileSizeBytes int64    `json:"max_file_size_bytes,omitempty" yaml:"max_file_size_bytes,omitempty" validate:"gt=0"`
}

// NewDefaultScanConfig creates a ScanConfig with the default extension set and a 1 MiB ceiling.
func NewDefaultScanConfig() ScanConfig {
	exts := make([]string, len(DefaultScanExtensions))
	copy(exts, DefaultScanExtensions)
	return ScanConfig{
		Extensions:       exts,
		MaxFileSizeBytes: DefaultMaxFileSizeBytes,
	}
}
