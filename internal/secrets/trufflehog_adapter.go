package secrets

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/aleister1102/secretgate/internal/common/contextutils"
	"github.com/aleister1102/secretgate/internal/common/errorwrapper"
	"github.com/aleister1102/secretgate/internal/config"
	"github.com/rs/zerolog"
)

// TruffleHogAdapter is responsible for interacting with the TruffleHog tool via CLI.
type TruffleHogAdapter struct {
	config *config.DetectorConfig
	logger zerolog.Logger
}

// NewTruffleHogAdapter creates a new TruffleHogAdapter.
func NewTruffleHogAdapter(cfg *config.DetectorConfig, log zerolog.Logger) *TruffleHogAdapter {
	return &TruffleHogAdapter{
		config: cfg,
		logger: log.With().Str("adapter", "TruffleHogAdapter").Logger(),
	}
}

// Version runs `trufflehog --version`.
func (a *TruffleHogAdapter) Version(ctx context.Context) (string, error) {
	if a.config.BinaryPath == "" {
		return "", fmt.Errorf("%w: TruffleHog path is not configured", errorwrapper.ErrDetectorUnavailable)
	}

	cmd := exec.CommandContext(ctx, a.config.BinaryPath, "--version")
	out, err := cmd.CombinedOutput()
	if err != nil {
		cmdErr := errorwrapper.NewCommandError(cmd.String(), strings.TrimSpace(string(out)), err)
		return "", fmt.Errorf("%w: %w", errorwrapper.ErrDetectorUnavailable, cmdErr)
	}

	version := strings.TrimSpace(string(out))
	a.logger.Debug().Str("version", version).Msg("TruffleHog available")
	return version, nil
}

// Args builds the trufflehog command line for one target.
func (a *TruffleHogAdapter) Args(target string, opts ScanOptions) []string {
	args := []string{"filesystem", "--only-verified", "--json"}
	if opts.ExcludePathsFile != "" {
		args = append(args, "--exclude-paths", opts.ExcludePathsFile)
	}
	args = append(args, a.config.ExtraArgs...)
	return append(args, target)
}

// Scan executes TruffleHog against a single path and returns its JSONL stdout.
func (a *TruffleHogAdapter) Scan(ctx context.Context, target string, opts ScanOptions) ([]byte, error) {
	ctx, cancel := contextutils.WithOptionalTimeout(ctx, time.Duration(a.config.TimeoutSeconds)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.config.BinaryPath, a.Args(target, opts)...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	a.logger.Debug().Str("command", cmd.String()).Msg("Executing TruffleHog")

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return stdoutBuf.Bytes(), fmt.Errorf("trufflehog scan of %s timed out after %d seconds", target, a.config.TimeoutSeconds)
		}
		return stdoutBuf.Bytes(), errorwrapper.NewCommandError(cmd.String(), firstNLines(stderrBuf.String(), 5), err)
	}
	return stdoutBuf.Bytes(), nil
}

// firstNLines returns the first N lines of a string, for cleaner logging.
func firstNLines(s string, n int) string {
	lines := strings.SplitN(strings.TrimSpace(s), "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\\n")
}
