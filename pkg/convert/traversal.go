package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"totxt/pkg/ignore"
)

// ErrInvalidRoot marks a repository path that does not exist or is not
// a directory. It aborts the whole run.
var ErrInvalidRoot = errors.New("invalid repository root")

// Candidate is a file below the repository root that survived directory
// pruning and is considered for inclusion. Candidates are recomputed on
// every run, never persisted.
type Candidate struct {
	Path    string // Absolute path to the file.
	RelPath string // Slash-separated path relative to the root.
	Size    int64  // Byte size from directory metadata.
}

// validateRoot resolves the repository path and confirms it is an
// existing directory.
func validateRoot(repoPath string) (string, error) {
	absRoot, err := filepath.Abs(repoPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidRoot, repoPath, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidRoot, repoPath)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, repoPath)
	}
	return absRoot, nil
}

// walkRepository walks root in lexicographic per-directory order and
// calls fn for each candidate file, in traversal order. Directories
// matched by the rule set or the built-in exclusion list are pruned
// before descent. Symlinks are not followed. Unreadable paths are
// logged and skipped; they never abort the walk.
func walkRepository(root string, rules *ignore.RuleSet, logger *zap.Logger, fn func(Candidate) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug("Skipping unreadable path",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			logger.Debug("Skipping path outside root",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath == "." {
				return nil
			}
			if ExcludedDirs[d.Name()] || rules.Match(relPath, true) {
				logger.Debug("Pruned directory",
					zap.String("directory", relPath))
				return filepath.SkipDir
			}
			return nil
		}

		// Symlinks are skipped entirely; following them could loop.
		if d.Type()&fs.ModeSymlink != 0 {
			logger.Debug("Skipping symlink", zap.String("path", relPath))
			return nil
		}

		info, err := d.Info()
		if err != nil {
			logger.Debug("Skipping file without metadata",
				zap.String("path", relPath),
				zap.Error(err))
			return nil
		}

		return fn(Candidate{
			Path:    path,
			RelPath: relPath,
			Size:    info.Size(),
		})
	})
}
