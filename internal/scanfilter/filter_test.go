package scanfilter

import (
	"testing"

	"github.com/aleister1102/secretgate/internal/config"
	"github.com/aleister1102/secretgate/internal/models"
	"github.com/stretchr/testify/assert"
)

const mib = 1024 * 1024

func TestFilter_Eligible(t *testing.T) {
	cfg := config.NewDefaultScanConfig()
	flt := NewFilter(&cfg)

	tests := []struct {
		name string
		file models.StagedFile
		want bool
	}{
		{name: "rust source", file: models.StagedFile{Extension: ".rs", Size: 100}, want: true},
		{name: "env file", file: models.StagedFile{Extension: ".env", Size: 10}, want: true},
		{name: "empty file", file: models.StagedFile{Extension: ".md", Size: 0}, want: true},
		{name: "upper case extension", file: models.StagedFile{Extension: ".YAML", Size: 10}, want: true},
		{name: "exactly one MiB", file: models.StagedFile{Extension: ".json", Size: mib}, want: true},
		{name: "one MiB plus one byte", file: models.StagedFile{Extension: ".json", Size: mib + 1}, want: false},
		{name: "image", file: models.StagedFile{Extension: ".png", Size: 10}, want: false},
		{name: "lockfile", file: models.StagedFile{Extension: ".lock", Size: 10}, want: false},
		{name: "no extension", file: models.StagedFile{Extension: "", Size: 10}, want: false},
		{name: "unknown size", file: models.StagedFile{Extension: ".go", Size: models.UnknownSize}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flt.Eligible(tt.file))
		})
	}
}

func TestFilter_CustomConfig(t *testing.T) {
	flt := NewFilter(&config.ScanConfig{Extensions: []string{".PY"}, MaxFileSizeBytes: 10})

	assert.True(t, flt.Eligible(models.StagedFile{Extension: ".py", Size: 10}))
	assert.False(t, flt.Eligible(models.StagedFile{Extension: ".py", Size: 11}))
	assert.False(t, flt.Eligible(models.StagedFile{Extension: ".rs", Size: 1}))
}

func TestFilter_Apply(t *testing.T) {
	cfg := config.NewDefaultScanConfig()
	flt := NewFilter(&cfg)

	files := []models.StagedFile{
		{RelPath: "b.go", Extension: ".go", Size: 1},
		{RelPath: "secret.png", Extension: ".png", Size: 1},
		{RelPath: "a.toml", Extension: ".toml", Size: 1},
		{RelPath: "huge.txt", Extension: ".txt", Size: 2 * mib},
	}

	got := flt.Apply(files)

	assert.Equal(t, []models.StagedFile{files[0], files[2]}, got)
	assert.Empty(t, flt.Apply(nil))
}
