package models

// UnknownSize marks a staged file whose size could not be read.
const UnknownSize int64 = -1

// StagedFile is a file queued in the index for the next commit.
type StagedFile struct {
	Path      string // absolute path on disk
	RelPath   string // path relative to the repository root, as reported by git
	Extension string // lower-cased, including the leading dot
	Size      int64  // bytes, or UnknownSize
}
