// Package scanfilter decides which staged files are worth sending to the detector.
package scanfilter

import (
	"strings"

	"github.com/aleister1102/secretgate/internal/config"
	"github.com/aleister1102/secretgate/internal/models"
)

// Filter accepts files whose extension is in the allow-set and whose size is
// known and no larger than the ceiling.
type Filter struct {
	extensions map[string]struct{}
	maxSize    int64
}

// NewFilter builds a Filter from the scan configuration.
func NewFilter(cfg *config.ScanConfig) *Filter {
	exts := make(map[string]struct{}, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}
	return &Filter{
		extensions: exts,
		maxSize:    cfg.MaxFileSizeBytes,
	}
}

// Eligible reports whether f should be scanned. A file of exactly the ceiling
// size is accepted; an unknown size is rejected.
func (flt *Filter) Eligible(f models.StagedFile) bool {
	if _, ok := flt.extensions[strings.ToLower(f.Extension)]; !ok {
		return false
	}
	if f.Size < 0 {
		return false
	}
	return f.Size <= flt.maxSize
}

// Apply returns the eligible files, preserving order.
func (flt *Filter) Apply(files []models.StagedFile) []models.StagedFile {
	candidates := make([]models.StagedFile, 0, len(files))
	for _, f := range files {
		if flt.Eligible(f) {
			candidates = append(candidates, f)
		}
	}
	return candidates
}
