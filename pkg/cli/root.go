package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	app *app
}

// NewRootCmd builds the varexpand command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "varexpand",
		Short: "varexpand expands %-directive templates",
		Long: `varexpand expands templates such as "%u@%d" or "%{sha1;rounds=2:%u}"
against a table of variables.

Variables come from -v/-l flags and from an optional YAML or JSON variables
file given with --config or the VAREXPAND_CONFIG environment variable.`,
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Execute()
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts, cmd.Flags().Changed("log-level"), cmd.Flags().Changed("log-format"), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Variables file or ** glob of files (YAML or JSON; default $VAREXPAND_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(
		newExpandCmd(opts),
		newHasKeyCmd(),
		newKeyRangeCmd(),
		newAlgorithmsCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command line in args and returns the process exit code.
// This is called by main.main().
func Execute(args []string, stdout, stderr io.Writer) int {
	code, _ := execute(args, stdout, stderr)
	return code
}

// execute runs the command line and closes the app even when the command
// failed, which cobra's post-run hooks do not.
func execute(args []string, stdout, stderr io.Writer) (int, *rootOptions) {
	opts := &rootOptions{}
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if opts.app != nil {
		if cerr := opts.app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return exitCode(err), opts
}

// Main is Execute on the process arguments and standard streams.
func Main() int {
	return Execute(os.Args[1:], os.Stdout, os.Stderr)
}
