package reporter

const (
	// Report layout
	SeparatorWidth = 60
	SeparatorChar  = "="

	// Install hint shown when the detector is missing
	DetectorInstallHint = "Install with: brew install trufflehog (macOS) or see https://github.com/trufflesecurity/trufflehog"

	// Bypass offered by the hook framework
	BypassCommand = "git commit --no-verify"
)
