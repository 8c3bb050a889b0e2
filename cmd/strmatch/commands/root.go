package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/strmatch/internal/printer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ErrNoMatches is returned by search when no input contains the pattern.
var ErrNoMatches = errors.New("no matches")

// ErrDisagreement is returned by compare when an algorithm's result differs
// from GSV's.
var ErrDisagreement = errors.New("algorithms disagree")

var rootCmd = newRootCmd()

// globalOptions holds the persistent flags.
type globalOptions struct {
	configPath string
	logLevel   string
	color      string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "strmatch",
		Short: "strmatch - exact string matching with the GSV dueling algorithm",
		Long: `strmatch finds every occurrence of a fixed byte pattern in its inputs.

The default engine is the Galil-Seiferas-Vishkin dueling matcher, which
verifies pattern prefixes of doubling length and eliminates candidates by
duels. Morris-Pratt, KMP and Aho-Corasick matchers are available for
comparison.`,
		Version: versionString(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	f.StringVar(&opts.color, "color", printer.ColorAuto, "Color output: auto, always or never")

	cmd.AddCommand(
		newSearchCmd(opts),
		newCompareCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and prints any error other than
// ErrNoMatches to stderr.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, ErrNoMatches) {
		printer.New(rootCmd.ErrOrStderr(), printer.ColorAuto).Error(err)
	}
	return err
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = versionString()
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "strmatch %s\n", versionString())
			return err
		},
	}
}
