package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. path passed on the command line (a leading ~ is expanded)
// 2. SECRETGATE_CONFIG_PATH environment variable
// 3. .secretgate.yaml, .secretgate.yml, .secretgate.json in the current working directory
// 4. ~/.config/secretgate/config.yaml
// An explicit path that does not exist yields "" so the caller can report it.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		if path := existingPath(configFilePathFlag); path != "" {
			return path
		}
		return ""
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if path := existingPath(envPath); path != "" {
			return path
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		for _, name := range DefaultConfigFileNames {
			path := filepath.Join(cwd, name)
			if fileExists(path) {
				return path
			}
		}
	}

	if home, err := homedir.Dir(); err == nil {
		path := filepath.Join(home, UserConfigDir, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return "" // No config file found
}

// existingPath expands a leading ~ and returns the path if it names an existing file.
func existingPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return ""
	}
	if !fileExists(expanded) {
		return ""
	}
	return expanded
}

// Helper function to check if a file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
