package secrets

import "context"

// ScanOptions are passed to the detector for every file.
type ScanOptions struct {
	// ExcludePathsFile is forwarded as --exclude-paths when non-empty.
	ExcludePathsFile string
}

// Detector is an external secret detection engine.
type Detector interface {
	// Version probes the detector; an error means it cannot be used.
	Version(ctx context.Context) (string, error)
	// Scan runs the detector against target, requesting verified-only,
	// line-delimited JSON output. Stdout is returned even when err is non-nil.
	Scan(ctx context.Context, target string, opts ScanOptions) ([]byte, error)
}
