package config

// VCSConfig selects how staged files are discovered.
type VCSConfig struct {
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty" validate:"required,oneof=auto git go-git"`
	GitPath string `json:"git_path,omitempty" yaml:"git_path,omitempty"`
}

func NewDefaultVCSConfig() VCSConfig {
	return VCSConfig{
		Backend: DefaultVCSBackend,
		GitPath: DefaultGitPath,
	}
}
