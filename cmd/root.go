package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"totxt/pkg/convert"
	"totxt/pkg/logging"
	"totxt/pkg/version"
)

var rootFlags struct {
	maxSizeKB      int
	output         string
	tree           string
	globalIgnore   string
	ignorePatterns []string
	verbose        bool
	stats          bool
}

// RootCmd is the base command: it runs the conversion itself.
var RootCmd = &cobra.Command{
	Use:   "totxt <repository_path>",
	Short: "totxt converts a source repository into a single text file",
	Long: `totxt walks a repository, filters files through .gitignore rules,
built-in exclusions and a size ceiling, detects text encoding, and
concatenates the surviving files into one annotated text output.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger, err := logging.Setup(rootFlags.verbose, "totxt", version.Get().Version)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logging.Sync(logger)

	repoPath := args[0]
	output := rootFlags.output
	if output == "" {
		output = convert.DefaultOutputName(repoPath)
	}

	conv := convert.New(convert.Arguments{
		RepoPath:       repoPath,
		Output:         output,
		Tree:           rootFlags.tree,
		GlobalIgnore:   rootFlags.globalIgnore,
		IgnorePatterns: rootFlags.ignorePatterns,
		MaxFileSizeKB:  rootFlags.maxSizeKB,
		Stats:          rootFlags.stats,
	}, logger)

	result, err := conv.Run()
	if err != nil {
		return err
	}

	fmt.Printf("Conversion successful!\n")
	fmt.Printf("Processed Files: %d\n", result.FilesProcessed)
	fmt.Printf("Output File: %s\n", output)
	if rootFlags.stats {
		fmt.Printf("Bytes: %d  Lines: %d  Tokens: %d\n", result.Bytes, result.Lines, result.Tokens)
	}
	return nil
}

func init() {
	RootCmd.Flags().IntVar(&rootFlags.maxSizeKB, "max-size", convert.DefaultMaxFileSizeKB, "Maximum file size in KB")
	RootCmd.Flags().StringVarP(&rootFlags.output, "output", "o", "", "Output file path (default: <repo>_output.txt)")
	RootCmd.Flags().StringVar(&rootFlags.tree, "tree", "", "Also write a directory tree rendering to this path")
	RootCmd.Flags().StringVar(&rootFlags.globalIgnore, "global-ignore", "", "Path to a global ignore file applied before .gitignore rules")
	RootCmd.Flags().StringArrayVar(&rootFlags.ignorePatterns, "ignore", nil, "Extra gitignore-syntax pattern (repeatable)")
	RootCmd.Flags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable per-file inclusion/exclusion logging")
	RootCmd.Flags().BoolVar(&rootFlags.stats, "stats", false, "Print byte/line/token statistics for the output")
}

// Execute runs the root command and exits non-zero on failure. Cobra
// has already printed the error by the time Execute returns it.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
