package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"totxt/pkg/ignore"
)

// RenderTree renders the directory tree of the repository, honoring the
// same exclusions as the conversion itself, so the tree mirrors what
// ends up in the aggregate output.
func RenderTree(root string, rules *ignore.RuleSet, logger *zap.Logger) (string, error) {
	var b strings.Builder
	b.WriteString(filepath.Base(root) + "/\n")

	subtree, err := renderSubtree(root, root, rules, "", logger)
	if err != nil {
		return "", err
	}
	if subtree != "" {
		b.WriteString(subtree)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// renderSubtree builds the tree below directory recursively. Entries
// are sorted directories first, then files, case-insensitively.
func renderSubtree(directory, root string, rules *ignore.RuleSet, prefix string, logger *zap.Logger) (string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", directory, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var lines []string
	for i, entry := range entries {
		connector, extension := "├── ", "│   "
		if i == len(entries)-1 {
			connector, extension = "└── ", "    "
		}

		entryPath := filepath.Join(directory, entry.Name())
		relPath, err := filepath.Rel(root, entryPath)
		if err != nil {
			continue
		}
		relPath = filepath.ToSlash(relPath)

		if entry.IsDir() {
			if ExcludedDirs[entry.Name()] || rules.Match(relPath, true) {
				logger.Debug("Pruned directory in tree", zap.String("directory", relPath))
				continue
			}
			lines = append(lines, prefix+connector+entry.Name()+"/")
			subtree, err := renderSubtree(entryPath, root, rules, prefix+extension, logger)
			if err != nil {
				logger.Debug("Skipping unreadable subtree",
					zap.String("directory", relPath),
					zap.Error(err))
				continue
			}
			if subtree != "" {
				lines = append(lines, subtree)
			}
		} else if !rules.Match(relPath, false) {
			lines = append(lines, prefix+connector+entry.Name())
		}
	}

	return strings.Join(lines, "\n"), nil
}
