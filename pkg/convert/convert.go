// Package convert implements the repository-to-text pipeline:
// enumerate candidate files, filter them through ignore rules and size
// and type heuristics, decode their contents, and concatenate the
// survivors into a single annotated output document.
package convert

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"totxt/pkg/ignore"
)

// Skip reasons reported in verbose logs.
const (
	reasonExcludedName    = "excluded file name"
	reasonBinaryExtension = "binary extension"
	reasonIgnoreRule      = "ignore rule"
	reasonTooLarge        = "exceeds size ceiling"
	reasonBinaryContent   = "binary content"
	reasonUnreadable      = "unreadable"
	reasonOutputFile      = "aggregate output file"
)

// Result summarizes a completed conversion run.
type Result struct {
	FilesProcessed int
	FilesSkipped   int
	Bytes          int
	Lines          int
	Tokens         int
}

// Converter runs the pipeline once, start to finish. Files are
// processed and written sequentially in traversal order, so output is
// deterministic for an unchanged tree.
type Converter struct {
	args    Arguments
	logger  *zap.Logger
	counter Counter
}

// New creates a Converter for the given arguments.
func New(args Arguments, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}

	var counter Counter = SimpleCounter{}
	if args.Stats {
		if tc, err := NewTiktokenCounter(tokenModel); err == nil {
			counter = tc
		} else {
			logger.Warn("Falling back to simple token estimates", zap.Error(err))
		}
	}

	return &Converter{args: args, logger: logger, counter: counter}
}

// Run executes the conversion. An invalid root or a failure to create
// or write the output file is fatal; per-file problems are logged and
// skipped.
func (c *Converter) Run() (*Result, error) {
	root, err := validateRoot(c.args.RepoPath)
	if err != nil {
		return nil, err
	}

	rules, err := ignore.NewRuleSet(root, ignore.Options{
		GlobalFile: c.args.GlobalIgnore,
		Patterns:   c.args.IgnorePatterns,
	})
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Loaded ignore rules",
		zap.String("root", root),
		zap.Strings("extraPatterns", c.args.IgnorePatterns))

	absOutput, err := filepath.Abs(c.args.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path: %w", err)
	}

	out, err := os.Create(absOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", c.args.Output, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	aw := newAggregateWriter(w)
	if err := aw.WritePreamble(root); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	result := &Result{}
	maxSize := c.args.MaxFileSize()

	err = walkRepository(root, rules, c.logger, func(cand Candidate) error {
		// Guard against swallowing our own output when it lives
		// inside the tree being converted.
		if cand.Path == absOutput {
			c.logSkip(cand, reasonOutputFile)
			return nil
		}

		if reason, skip := shouldSkip(cand, rules, maxSize); skip {
			c.logSkip(cand, reason)
			result.FilesSkipped++
			return nil
		}

		content, err := os.ReadFile(cand.Path)
		if err != nil {
			c.logger.Debug("Skipped file",
				zap.String("path", cand.RelPath),
				zap.String("reason", reasonUnreadable),
				zap.Error(err))
			result.FilesSkipped++
			return nil
		}

		if isBinaryContent(content) {
			c.logSkip(cand, reasonBinaryContent)
			result.FilesSkipped++
			return nil
		}

		text, enc := decodeText(content)
		if err := aw.WriteEntry(cand.RelPath, text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		byteCount, tokens, lines := c.counter.Count(text)
		result.FilesProcessed++
		result.Bytes += byteCount
		result.Tokens += tokens
		result.Lines += lines

		c.logger.Debug("Included file",
			zap.String("path", cand.RelPath),
			zap.String("encoding", enc),
			zap.Int64("sizeBytes", cand.Size))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush output: %w", err)
	}

	if c.args.Tree != "" {
		tree, err := RenderTree(root, rules, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to render tree: %w", err)
		}
		if err := os.WriteFile(c.args.Tree, []byte(tree), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write tree file %s: %w", c.args.Tree, err)
		}
	}

	c.logger.Info("Conversion complete",
		zap.String("output", c.args.Output),
		zap.Int("filesProcessed", result.FilesProcessed),
		zap.Int("filesSkipped", result.FilesSkipped),
		zap.Int("lines", result.Lines),
		zap.Int("tokens", result.Tokens))
	return result, nil
}

// shouldSkip applies the pre-read filters in order of cost: built-in
// name and extension exclusions, ignore rules, then the size ceiling.
// A file exactly at the ceiling is included; one byte over is not.
func shouldSkip(cand Candidate, rules *ignore.RuleSet, maxSize int64) (string, bool) {
	switch {
	case ExcludedFiles[path.Base(cand.RelPath)]:
		return reasonExcludedName, true
	case hasBinaryExtension(cand.RelPath):
		return reasonBinaryExtension, true
	case rules.Match(cand.RelPath, false):
		return reasonIgnoreRule, true
	case cand.Size > maxSize:
		return reasonTooLarge, true
	}
	return "", false
}

func (c *Converter) logSkip(cand Candidate, reason string) {
	c.logger.Debug("Skipped file",
		zap.String("path", cand.RelPath),
		zap.String("reason", reason),
		zap.Int64("sizeBytes", cand.Size))
}
