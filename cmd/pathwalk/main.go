// Command pathwalk is the thin CLI façade over the walker library: it
// parses flags, builds a cli.Config, and forwards to cli.Run. All of the
// actual traversal, ignore-file, and glob logic lives in internal/.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dl/pathwalk/internal/cli"
)

var cfg cli.Config

var (
	colorFlag string
	typeFlag  string
	exitCode  int
)

var rootCmd = &cobra.Command{
	Use:   "pathwalk [PATTERN...] [PATH...]",
	Short: "Find files and directories by glob pattern, honouring .gitignore",
	Long: `pathwalk walks a directory tree depth-first, reporting entries whose
path satisfies one or more glob include patterns, while honouring the
.gitignore / .git/info/exclude / core.excludesFile rules of the
enclosing repository.

Without any pattern every non-ignored entry is reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Patterns, cfg.Paths = splitPatternsAndPaths(args)
		if len(cfg.Paths) == 0 {
			cfg.Paths = []string{"."}
		}

		switch colorFlag {
		case "always":
			cfg.Color = cli.ColorAlways
		case "never":
			cfg.Color = cli.ColorNever
		default:
			cfg.Color = cli.ColorAuto
		}

		switch typeFlag {
		case "f", "file", "files":
			cfg.Type = cli.TypeFiles
		case "d", "dir", "directory", "directories":
			cfg.Type = cli.TypeDirs
		default:
			cfg.Type = cli.TypeAll
		}

		exitCode = cli.Run(cfg)
		return nil
	},
	SilenceUsage: true,
}

// splitPatternsAndPaths partitions positional args into glob patterns and
// existing filesystem paths: an argument that names a directory already on
// disk is treated as a start path, everything else as an include pattern.
// This mirrors the common fd/rg convention of "PATTERN [PATH...]" without
// requiring a separate flag when no path is given.
func splitPatternsAndPaths(args []string) (patterns, paths []string) {
	for _, a := range args {
		if fi, err := os.Stat(a); err == nil && fi.IsDir() {
			paths = append(paths, a)
			continue
		}
		patterns = append(patterns, a)
	}
	return patterns, paths
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&cfg.Hidden, "hidden", false, "include hidden files and directories")
	flags.BoolVar(&cfg.NoIgnore, "no-ignore", false, "don't respect .gitignore / exclude files")
	flags.BoolVarP(&cfg.FollowSymlinks, "follow", "L", false, "follow symbolic links")
	flags.IntVarP(&cfg.MaxDepth, "max-depth", "d", -1, "maximum descent depth (-1 = unbounded)")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "emit JSON Lines instead of plain paths")
	flags.StringVar(&colorFlag, "color", "auto", "when to colorize output: auto, always, never")
	flags.StringVarP(&typeFlag, "type", "t", "all", "entry kinds to print: all, f(ile), d(ir)")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress output, exit 0 only if something matched")
}

func main() {
	rootCmd.SetArgs(prependConfigArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(exitCode)
}

func prependConfigArgs(argv []string) []string {
	if extra := cli.LoadConfigArgs(); len(extra) > 0 {
		return append(extra, argv...)
	}
	return argv
}
