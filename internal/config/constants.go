package config

const (
	// Scan filter defaults
	DefaultMaxFileSizeBytes int64 = 1024 * 1024 // 1 MiB

	// Detector defaults
	DefaultDetectorBinaryPath       = "trufflehog"
	DefaultDetectorExcludePathsFile = ".trufflehog_exclude.txt"
	DefaultDetectorScanListFile     = ".trufflehog_scan_list.tmp"
	DefaultDetectorTimeoutSeconds   = 0 // no timeout

	// Allowlist defaults
	DefaultAllowlistFile = "allow.json"

	// VCS defaults
	DefaultVCSBackend = VCSBackendAuto
	DefaultGitPath    = "git"

	// Reporter defaults
	DefaultReporterColor = ColorModeAuto

	// Log defaults
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Config discovery
	ConfigPathEnvVar = "SECRETGATE_CONFIG_PATH"
	UserConfigDir    = ".config/secretgate"
)

// VCS backends
const (
	VCSBackendAuto  = "auto"
	VCSBackendGit   = "git"
	VCSBackendGoGit = "go-git"
)

// Reporter colour modes
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

// DefaultScanExtensions lists the file extensions submitted to the detector by default.
// Source, structured config, scripts, docs and env files; never binaries, images or lockfiles.
var DefaultScanExtensions = []string{
	".rs",
	".go",
	".toml",
	".json",
	".yml",
	".yaml",
	".sh",
	".bash",
	".txt",
	".md",
	".env",
}

// DefaultConfigFileNames are looked up in the working directory, in order.
var DefaultConfigFileNames = []string{".secretgate.yaml", ".secretgate.yml", ".secretgate.json"}
