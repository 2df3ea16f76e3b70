package orchestrator

import (
	"context"
	"errors"
	"io"

	"github.com/aleister1102/secretgate/internal/allowlist"
	"github.com/aleister1102/secretgate/internal/config"
	"github.com/aleister1102/secretgate/internal/models"
	"github.com/aleister1102/secretgate/internal/reporter"
	"github.com/aleister1102/secretgate/internal/scanfilter"
	"github.com/aleister1102/secretgate/internal/secrets"
	"github.com/aleister1102/secretgate/internal/vcs"
	"github.com/rs/zerolog"
)

// GuardOrchestrator runs one pre-commit secret scan from staged-file discovery
// to the final verdict.
type GuardOrchestrator struct {
	globalConfig *config.GlobalConfig
	vc           vcs.VersionControl
	invoker      *secrets.ScannerInvoker
	filter       *scanfilter.Filter
	reporter     *reporter.ConsoleReporter
	logger       zerolog.Logger
}

// NewGuardOrchestrator creates a GuardOrchestrator. The report is written to out.
func NewGuardOrchestrator(
	cfg *config.GlobalConfig,
	vc vcs.VersionControl,
	detector secrets.Detector,
	out io.Writer,
	logger zerolog.Logger,
) *GuardOrchestrator {
	return &GuardOrchestrator{
		globalConfig: cfg,
		vc:           vc,
		invoker:      secrets.NewScannerInvoker(detector, &cfg.DetectorConfig, logger),
		filter:       scanfilter.NewFilter(&cfg.ScanConfig),
		reporter:     reporter.NewConsoleReporter(out, &cfg.ReporterConfig, cfg.AllowlistConfig.File),
		logger:       logger.With().Str("component", "GuardOrchestrator").Logger(),
	}
}

// Run executes the guard and returns the outcome with the process exit code.
// Exit 1 means blocking findings were reported, or ctx was cancelled mid-scan:
// an interrupted scan cannot vouch for the unscanned files, so it blocks.
// Every environment or data problem (no repository, no detector, unreadable
// allowlist, detector crash) degrades to exit 0.
func (g *GuardOrchestrator) Run(ctx context.Context) (models.ScanOutcome, int) {
	var outcome models.ScanOutcome

	root := vcs.LocateRepoRoot(ctx, g.vc, g.logger)
	staged := vcs.ListStagedFiles(ctx, g.vc, root, g.logger)
	outcome.StagedFiles = len(staged)
	if len(staged) == 0 {
		g.logger.Debug().Msg("No staged files, nothing to scan")
		return outcome, outcome.ExitCode()
	}

	candidates := g.filter.Apply(staged)
	if len(candidates) == 0 {
		g.logger.Debug().Int("staged", len(staged)).Msg("No staged files eligible for scanning")
		return outcome, outcome.ExitCode()
	}

	if err := g.invoker.Probe(ctx); err != nil {
		g.logger.Debug().Err(err).Msg("Detector probe failed")
		outcome.Skipped = true
		outcome.SkipReason = "TruffleHog not installed"
		g.reporter.Skipped(outcome.SkipReason)
		return outcome, outcome.ExitCode()
	}

	g.reporter.Scanning(len(candidates))
	findings, err := g.invoker.ScanFiles(ctx, root, candidates)
	outcome.FilesScanned = len(candidates)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			outcome.Interrupted = true
			g.reporter.Interrupted()
			return outcome, outcome.ExitCode()
		}
		g.logger.Warn().Err(err).Msg("Scan finished with error")
	}
	outcome.TotalFindings = len(findings)

	allowed := allowlist.Load(root, g.globalConfig.AllowlistConfig.File, g.logger)
	blocking, suppressed := allowlist.Suppress(findings, allowed)
	outcome.Blocking = blocking
	outcome.Suppressed = len(suppressed)

	g.logger.Info().
		Int("files_scanned", outcome.FilesScanned).
		Int("findings", outcome.TotalFindings).
		Int("suppressed", outcome.Suppressed).
		Int("blocking", outcome.BlockingCount()).
		Msg("Secret scan complete")

	return outcome, g.reporter.Render(outcome)
}
