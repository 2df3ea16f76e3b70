package vcs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// LocateRepoRoot returns the top-level directory of the enclosing work tree.
// When the query fails it falls back to the current working directory, and to
// "." if even that is unknown.
func LocateRepoRoot(ctx context.Context, vc VersionControl, logger zerolog.Logger) string {
	root, err := vc.TopLevel(ctx)
	if err == nil && root != "" {
		return filepath.Clean(root)
	}

	cwd, cwdErr := os.Getwd()
	if cwdErr != nil {
		logger.Warn().Err(err).AnErr("cwd_error", cwdErr).Msg("Could not resolve repository root or working directory, using '.'")
		return "."
	}
	logger.Warn().Err(err).Str("fallback", cwd).Msg("Could not resolve repository root, using working directory")
	return cwd
}
