package file

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/aleister1102/secretgate/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// FileValidator handles file validation operations
type FileValidator struct {
	logger zerolog.Logger
}

// NewFileValidator creates a new FileValidator instance
func NewFileValidator(logger zerolog.Logger) *FileValidator {
	return &FileValidator{
		logger: logger.With().Str("component", "FileValidator").Logger(),
	}
}

// GetFileInfo returns information about a file. A missing file yields an
// error matching errorwrapper.ErrNotFound.
func (fv *FileValidator) GetFileInfo(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errorwrapper.WrapErrorf(errorwrapper.ErrNotFound, "file %s", path)
		}
		return nil, errorwrapper.WrapErrorf(err, "failed to get file info for %s", path)
	}

	return &FileInfo{
		Path:        path,
		Name:        stat.Name(),
		Size:        stat.Size(),
		IsDir:       stat.IsDir(),
		ModTime:     stat.ModTime(),
		Permissions: stat.Mode(),
	}, nil
}

// FileExists reports whether path exists and is a regular file (or a link to one)
func (fv *FileValidator) FileExists(path string) bool {
	info, err := fv.GetFileInfo(path)
	return err == nil && !info.IsDir
}

// WriteLines writes one line per entry, replacing any existing file.
func (fv *FileValidator) WriteLines(path string, lines []string, opts FileWriteOptions) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), opts.Permissions); err != nil {
		return errorwrapper.WrapErrorf(err, "failed to write %s", path)
	}
	fv.logger.Debug().Str("path", path).Int("lines", len(lines)).Msg("File written")
	return nil
}

// RemoveIfExists deletes path, treating an already-missing file as success.
func (fv *FileValidator) RemoveIfExists(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errorwrapper.WrapErrorf(err, "failed to remove %s", path)
}
