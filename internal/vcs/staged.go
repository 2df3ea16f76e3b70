package vcs

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/aleister1102/secretgate/internal/common/errorwrapper"
	"github.com/aleister1102/secretgate/internal/common/file"
	"github.com/aleister1102/secretgate/internal/models"
	"github.com/rs/zerolog"
)

// ListStagedFiles returns the staged files that still exist on disk, in the
// order the backend reported them. Any failure to query the index yields an
// empty list.
func ListStagedFiles(ctx context.Context, vc VersionControl, root string, logger zerolog.Logger) []models.StagedFile {
	paths, err := vc.StagedPaths(ctx, root)
	if err != nil {
		logger.Warn().Err(err).Str("root", root).Msg("Could not list staged files")
		return []models.StagedFile{}
	}

	fv := file.NewFileValidator(logger)
	staged := make([]models.StagedFile, 0, len(paths))
	for _, rel := range paths {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		if !filepath.IsAbs(abs) {
			if resolved, absErr := filepath.Abs(abs); absErr == nil {
				abs = resolved
			}
		}

		size := models.UnknownSize
		info, err := fv.GetFileInfo(abs)
		switch {
		case errors.Is(err, errorwrapper.ErrNotFound):
			logger.Debug().Str("path", rel).Msg("Staged file no longer on disk, skipping")
			continue
		case err != nil:
			logger.Debug().Err(err).Str("path", rel).Msg("Could not stat staged file")
		case info.IsDir:
			// submodules show up as directories
			continue
		default:
			size = info.Size
		}

		staged = append(staged, models.StagedFile{
			Path:      abs,
			RelPath:   rel,
			Extension: strings.ToLower(filepath.Ext(abs)),
			Size:      size,
		})
	}

	logger.Debug().Int("reported", len(paths)).Int("present", len(staged)).Msg("Staged files resolved")
	return staged
}
