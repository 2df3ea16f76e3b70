package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/aleister1102/secretgate/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// GitExists checks if the git binary is available.
// This can be used to fall back to go-git implementation.
func GitExists(gitPath string) bool {
	_, err := exec.LookPath(gitPath)
	return err == nil
}

// GitBinary implements VersionControl by running the git executable.
type GitBinary struct {
	path    string
	workDir string
	logger  zerolog.Logger
}

// NewGitBinary creates a backend running gitPath from workDir.
func NewGitBinary(gitPath, workDir string, logger zerolog.Logger) *GitBinary {
	return &GitBinary{
		path:    gitPath,
		workDir: workDir,
		logger:  logger.With().Str("component", "GitBinary").Logger(),
	}
}

// TopLevel runs `git rev-parse --show-toplevel`.
func (g *GitBinary) TopLevel(ctx context.Context) (string, error) {
	out, err := g.run(ctx, g.workDir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %w", errorwrapper.ErrNotARepository, err)
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", errorwrapper.ErrNotARepository
	}
	return filepath.FromSlash(root), nil
}

// StagedPaths runs `git diff --cached --name-only --diff-filter=ACM -z` in root.
// NUL separated output keeps unusual file names unquoted.
func (g *GitBinary) StagedPaths(ctx context.Context, root string) ([]string, error) {
	out, err := g.run(ctx, root, "diff", "--cached", "--name-only", "--diff-filter=ACM", "-z")
	if err != nil {
		return nil, err
	}
	return splitNul(out), nil
}

func (g *GitBinary) run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, g.path, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	g.logger.Debug().Str("command", cmd.String()).Str("dir", dir).Msg("Executing git")
	if err := cmd.Run(); err != nil {
		return nil, errorwrapper.NewCommandError(
			strings.Join(append([]string{g.path}, args...), " "),
			strings.TrimSpace(stderrBuf.String()),
			err,
		)
	}
	return stdoutBuf.Bytes(), nil
}

// splitNul splits NUL terminated records, dropping empty ones.
func splitNul(out []byte) []string {
	var paths []string
	for _, rec := range bytes.Split(out, []byte{0}) {
		if p := strings.TrimRight(string(rec), "\r\n"); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
