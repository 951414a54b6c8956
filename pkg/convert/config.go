package convert

import "path/filepath"

// DefaultMaxFileSizeKB is the size ceiling applied when none is given.
const DefaultMaxFileSizeKB = 100

// Arguments holds the configuration for one conversion run. It is built
// once from the command line and passed down the pipeline; nothing in
// this package keeps process-wide state.
type Arguments struct {
	RepoPath       string   // Root of the repository to convert.
	Output         string   // Destination path for the aggregate output file.
	Tree           string   // Optional destination for a directory tree rendering.
	GlobalIgnore   string   // Optional path to a global ignore file.
	IgnorePatterns []string // Extra ignore patterns given on the command line.
	MaxFileSizeKB  int      // Size ceiling in KB; larger files are skipped.
	Stats          bool     // Collect token counts for the output summary.
}

// MaxFileSize returns the size ceiling in bytes.
func (a Arguments) MaxFileSize() int64 {
	kb := a.MaxFileSizeKB
	if kb <= 0 {
		kb = DefaultMaxFileSizeKB
	}
	return int64(kb) * 1024
}

// DefaultOutputName derives the default output file name from the
// repository path, e.g. /src/myrepo -> myrepo_output.txt.
func DefaultOutputName(repoPath string) string {
	if abs, err := filepath.Abs(repoPath); err == nil {
		repoPath = abs
	}
	return filepath.Base(repoPath) + "_output.txt"
}

// ExcludedDirs are directory names that are never descended into,
// regardless of ignore rules: version control metadata and common
// dependency or build output directories.
var ExcludedDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"dist":         true,
	"build":        true,
}

// ExcludedFiles are file names excluded regardless of ignore rules,
// mostly machine-generated lockfiles that add noise without value.
var ExcludedFiles = map[string]bool{
	"package-lock.json": true,
	"yarn.lock":         true,
	"pnpm-lock.yaml":    true,
	"Cargo.lock":        true,
	"poetry.lock":       true,
	"Gemfile.lock":      true,
	"composer.lock":     true,
	"go.sum":            true,
	".DS_Store":         true,
}

// BinaryExtensions are file extensions of known non-text formats,
// skipped before any content is read.
var BinaryExtensions = map[string]bool{
	// images
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".ico": true, ".webp": true, ".tiff": true,
	// audio / video
	".mp3": true, ".wav": true, ".ogg": true, ".flac": true,
	".mp4": true, ".avi": true, ".mkv": true, ".mov": true,
	// archives
	".zip": true, ".tar": true, ".gz": true, ".bz2": true,
	".xz": true, ".7z": true, ".rar": true,
	// compiled artifacts
	".exe": true, ".dll": true, ".so": true, ".dylib": true,
	".a": true, ".o": true, ".obj": true, ".class": true,
	".pyc": true, ".pyo": true, ".wasm": true,
	// documents and fonts
	".pdf": true, ".doc": true, ".docx": true, ".xls": true,
	".xlsx": true, ".ppt": true, ".pptx": true,
	".ttf": true, ".otf": true, ".woff": true, ".woff2": true,
	".eot": true,
	// misc binary data
	".db": true, ".sqlite": true, ".bin": true, ".dat": true,
	".iso": true, ".img": true,
}
