package config

// ReporterConfig defines configuration for the console report
type ReporterConfig struct {
	Color string `json:"color,omitempty" yaml:"color,omitempty" validate:"required,oneof=auto always never"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		Color: DefaultReporterColor,
	}
}
