package config

// AllowlistConfig points at the repository-tracked allowlist document.
type AllowlistConfig struct {
	File string `json:"file,omitempty" yaml:"file,omitempty" validate:"required"`
}

func NewDefaultAllowlistConfig() AllowlistConfig {
	return AllowlistConfig{
		File: DefaultAllowlistFile,
	}
}
