package secrets

import (
	"context"
	"path/filepath"

	"github.com/aleister1102/secretgate/internal/common/contextutils"
	"github.com/aleister1102/secretgate/internal/common/file"
	"github.com/aleister1102/secretgate/internal/config"
	"github.com/aleister1102/secretgate/internal/models"
	"github.com/rs/zerolog"
)

// ScannerInvoker runs the detector once per scan candidate and aggregates the findings.
type ScannerInvoker struct {
	detector Detector
	config   *config.DetectorConfig
	files    *file.FileValidator
	logger   zerolog.Logger
}

// NewScannerInvoker creates a ScannerInvoker.
func NewScannerInvoker(detector Detector, cfg *config.DetectorConfig, logger zerolog.Logger) *ScannerInvoker {
	return &ScannerInvoker{
		detector: detector,
		config:   cfg,
		files:    file.NewFileValidator(logger),
		logger:   logger.With().Str("component", "ScannerInvoker").Logger(),
	}
}

// Probe checks that the detector can be run at all.
func (s *ScannerInvoker) Probe(ctx context.Context) error {
	_, err := s.detector.Version(ctx)
	return err
}

// ScanFiles scans every candidate in order and returns all decoded findings.
// A per-file detector failure is logged and does not stop the scan. The scratch
// file list is removed on every return path, panics included. The only error
// returned is context cancellation, together with the findings gathered so far.
func (s *ScannerInvoker) ScanFiles(ctx context.Context, root string, candidates []models.StagedFile) ([]models.SecretFinding, error) {
	listPath := filepath.Join(root, s.config.ScanListFile)
	defer func() {
		if err := s.files.RemoveIfExists(listPath); err != nil {
			s.logger.Warn().Err(err).Str("path", listPath).Msg("Failed to remove scan list")
		}
	}()

	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = c.Path
	}
	if err := s.files.WriteLines(listPath, paths, file.DefaultFileWriteOptions()); err != nil {
		s.logger.Warn().Err(err).Msg("Could not write scan list, continuing")
	}

	opts := ScanOptions{}
	if s.config.ExcludePathsFile != "" {
		excludePath := filepath.Join(root, s.config.ExcludePathsFile)
		if s.files.FileExists(excludePath) {
			opts.ExcludePathsFile = excludePath
		}
	}

	var findings []models.SecretFinding
	for _, candidate := range candidates {
		if result := contextutils.CheckCancellationWithLog(ctx, s.logger, "scan "+candidate.RelPath); result.Cancelled {
			return findings, result.Error
		}

		output, err := s.detector.Scan(ctx, candidate.Path, opts)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return findings, ctxErr
			}
			s.logger.Warn().Err(err).Str("file", candidate.RelPath).Msg("TruffleHog command failed, but will still parse stdout")
		}

		fileFindings := ParseFindings(output, candidate.Path, s.logger)
		s.logger.Debug().Str("file", candidate.RelPath).Int("findings", len(fileFindings)).Msg("File scanned")
		findings = append(findings, fileFindings...)
	}

	return findings, nil
}
