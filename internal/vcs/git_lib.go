package vcs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/aleister1102/secretgate/internal/common/errorwrapper"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog"
)

// IndexFileEnvVar is set by git to a temporary index during `git commit <paths>`.
const IndexFileEnvVar = "GIT_INDEX_FILE"

// GoGitRepository implements VersionControl in pure Go for machines without a git binary.
//
// Staged paths come from comparing the index, honouring GIT_INDEX_FILE, with the
// HEAD tree. Rename detection is not performed: a renamed file's destination is
// reported as added, where `git diff --diff-filter=ACM` would report R and omit it.
// Copies are likewise reported as added.
type GoGitRepository struct {
	workDir string
	logger  zerolog.Logger
}

// NewGoGitRepository creates a backend that discovers the repository from workDir upwards.
func NewGoGitRepository(workDir string, logger zerolog.Logger) *GoGitRepository {
	return &GoGitRepository{
		workDir: workDir,
		logger:  logger.With().Str("component", "GoGitRepository").Logger(),
	}
}

func (r *GoGitRepository) open(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errorwrapper.ErrNotARepository, err)
	}
	return repo, nil
}

// TopLevel returns the root of the worktree filesystem.
func (r *GoGitRepository) TopLevel(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	repo, err := r.open(r.workDir)
	if err != nil {
		return "", err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to open worktree")
	}
	return worktree.Filesystem.Root(), nil
}

// StagedPaths returns index entries that are new or changed relative to HEAD, sorted by path.
func (r *GoGitRepository) StagedPaths(ctx context.Context, root string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo, err := r.open(root)
	if err != nil {
		return nil, err
	}

	idx, err := r.readIndex(repo)
	if err != nil {
		return nil, err
	}
	head, err := headTree(repo)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range idx.Entries {
		// Stages 1-3 are unmerged conflict entries.
		if entry.Stage != 0 || entry.IntentToAdd {
			continue
		}
		changed, err := differsFromHead(head, entry)
		if err != nil {
			return nil, err
		}
		if changed {
			paths = append(paths, entry.Name)
		}
	}
	sort.Strings(paths)

	r.logger.Debug().Int("staged", len(paths)).Msg("Read staged paths from index")
	return paths, nil
}

// readIndex loads the index named by GIT_INDEX_FILE, or the repository's own.
func (r *GoGitRepository) readIndex(repo *git.Repository) (*index.Index, error) {
	path := os.Getenv(IndexFileEnvVar)
	if path == "" {
		idx, err := repo.Storer.Index()
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to read index")
		}
		return idx, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errorwrapper.WrapErrorf(err, "failed to open %s %s", IndexFileEnvVar, path)
	}
	defer f.Close()

	idx := &index.Index{}
	if err := index.NewDecoder(f).Decode(idx); err != nil {
		return nil, errorwrapper.WrapErrorf(err, "failed to decode index %s", path)
	}
	r.logger.Debug().Str("path", path).Msg("Using index from environment")
	return idx, nil
}

// headTree returns the tree of HEAD, or nil for a repository without commits.
func headTree(repo *git.Repository) (*object.Tree, error) {
	ref, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, errorwrapper.WrapError(err, "failed to resolve HEAD")
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read HEAD commit")
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read HEAD tree")
	}
	return tree, nil
}

func differsFromHead(head *object.Tree, entry *index.Entry) (bool, error) {
	if head == nil {
		return true, nil
	}
	treeEntry, err := head.FindEntry(entry.Name)
	if err != nil {
		if errors.Is(err, object.ErrEntryNotFound) || errors.Is(err, object.ErrDirectoryNotFound) {
			return true, nil
		}
		return false, errorwrapper.WrapErrorf(err, "failed to look up %s in HEAD", entry.Name)
	}
	return treeEntry.Hash != entry.Hash || treeEntry.Mode != entry.Mode, nil
}
