// Package vcs discovers the repository root and the files staged for the next commit.
package vcs

import (
	"context"
	"os"

	"github.com/aleister1102/secretgate/internal/config"
	"github.com/rs/zerolog"
)

// VersionControl is the subset of git the guard needs.
type VersionControl interface {
	// TopLevel returns the absolute top-level directory of the enclosing work tree.
	TopLevel(ctx context.Context) (string, error)
	// StagedPaths returns repository-relative, slash separated paths that are
	// added, copied or modified in the index relative to HEAD, in git's order.
	StagedPaths(ctx context.Context, root string) ([]string, error)
}

// NewVersionControl selects a backend. "auto" prefers the git binary and falls
// back to the go-git implementation when git is not on PATH.
func NewVersionControl(cfg *config.VCSConfig, logger zerolog.Logger) VersionControl {
	gitPath := cfg.GitPath
	if gitPath == "" {
		gitPath = config.DefaultGitPath
	}
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	switch cfg.Backend {
	case config.VCSBackendGoGit:
		return NewGoGitRepository(workDir, logger)
	case config.VCSBackendGit:
		return NewGitBinary(gitPath, workDir, logger)
	}

	if GitExists(gitPath) {
		return NewGitBinary(gitPath, workDir, logger)
	}
	logger.Debug().Str("git_path", gitPath).Msg("git binary not found, using go-git backend")
	return NewGoGitRepository(workDir, logger)
}
