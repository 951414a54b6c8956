// Package ignore loads gitignore-style exclusion rules and matches
// repository paths against them.
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// RuleSet holds the combined ignore patterns for one conversion run.
// Patterns are ordered global file → repository .gitignore files
// (root to leaf) → command-line patterns, so the last matching pattern
// wins, matching git's own precedence.
type RuleSet struct {
	matcher gitignore.Matcher
	root    string
}

// Options controls which pattern sources are loaded into a RuleSet.
type Options struct {
	// GlobalFile is an optional path to an ignore file whose patterns
	// apply before any .gitignore found in the repository.
	GlobalFile string

	// Patterns are extra gitignore-syntax patterns appended after all
	// file-sourced patterns, anchored at the repository root.
	Patterns []string
}

// NewRuleSet reads every .gitignore file under root (nested files apply
// to their own subtree) and combines them with the sources in opts.
func NewRuleSet(root string, opts Options) (*RuleSet, error) {
	var patterns []gitignore.Pattern

	if opts.GlobalFile != "" {
		global, err := readIgnoreFile(opts.GlobalFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read global ignore file: %w", err)
		}
		patterns = append(patterns, global...)
	}

	repo, err := gitignore.ReadPatterns(osfs.New(root), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read gitignore patterns: %w", err)
	}
	patterns = append(patterns, repo...)

	for _, p := range opts.Patterns {
		if p = strings.TrimSpace(p); p != "" && !strings.HasPrefix(p, "#") {
			patterns = append(patterns, gitignore.ParsePattern(p, nil))
		}
	}

	return &RuleSet{
		matcher: gitignore.NewMatcher(patterns),
		root:    root,
	}, nil
}

// Match reports whether the path relative to the repository root is
// excluded by the rule set. Matching a directory excludes its whole
// subtree unless a later negation re-includes part of it.
func (rs *RuleSet) Match(relPath string, isDir bool) bool {
	if relPath == "." || relPath == "" {
		return false
	}
	parts := strings.Split(filepath.ToSlash(relPath), "/")
	return rs.matcher.Match(parts, isDir)
}

// Root returns the repository root the rule set was built for.
func (rs *RuleSet) Root() string {
	return rs.root
}

// readIgnoreFile parses a standalone ignore file into patterns.
// Blank lines and comments are skipped; a malformed line is dropped
// rather than aborting the parse.
func readIgnoreFile(path string) ([]gitignore.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}
