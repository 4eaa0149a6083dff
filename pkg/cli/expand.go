package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/varexpand/pkg/cli/internal/flags"
	"github.com/getmockd/varexpand/pkg/cli/internal/output"
	"github.com/getmockd/varexpand/pkg/cli/internal/parse"
	"github.com/getmockd/varexpand/pkg/config"
	"github.com/getmockd/varexpand/pkg/varexpand"
)

// ExpandOutput is the --json form of expand.
type ExpandOutput struct {
	Output string `json:"output"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type expandOptions struct {
	shortVars flags.StringSlice
	longVars  flags.StringSlice
	json      bool
	strict    bool
}

func newExpandCmd(root *rootOptions) *cobra.Command {
	opts := &expandOptions{}

	cmd := &cobra.Command{
		Use:   "expand <template>",
		Short: "Expand a template",
		Long: `Expand a template and print the result.

Variables given with -v and -l take precedence over the variables file.
The functions %{uuid}, %{ulid}, %{random:N}, %{upper:text},
%{lower:text} and %{expr:expression} are available. Expressions see the
long variables by name.

The exit status is 1 when a directive fails fatally and, with --strict,
2 when a directive is unsupported.`,
		Example: `  # Short and long variables
  varexpand expand -v u=alice -v d=example.com '%u@%d'

  # Hash with options
  varexpand expand -l user=alice '%{sha256;rounds=10,salt=%{pid}:%{user}}'

  # Range and modifiers
  varexpand expand -v u=Alice '%3Uu'

  # Expression over long variables
  varexpand expand -l user=alice '%{expr:upper(user) + "!"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, root.app, opts, args[0])
		},
	}

	cmd.Flags().VarP(&opts.shortVars, "var", "v", "Short variable c=VALUE (repeatable)")
	cmd.Flags().VarP(&opts.longVars, "long", "l", "Long variable name=VALUE (repeatable)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output result, status and error as JSON")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when any directive is unsupported")
	return cmd
}

func runExpand(cmd *cobra.Command, a *app, opts *expandOptions, tmpl string) error {
	table, err := commandTable(a, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out, status, expandErr := a.engine.ExpandString(tmpl, table, builtinFuncs(), exprEnv(table))
	a.logger.Debug("expanded template", "template", tmpl, "status", status.String())

	if opts.json {
		res := ExpandOutput{Output: out, Status: status.String()}
		if expandErr != nil {
			res.Error = expandErr.Error()
		}
		if err := output.JSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	switch {
	case status == varexpand.StatusFatal:
		return &ExitCodeError{Code: ExitError, Err: expandErr}
	case status == varexpand.StatusUnsupported && opts.strict:
		return &ExitCodeError{Code: ExitUnsupported, Err: ErrUnsupported}
	}
	return nil
}

// commandTable puts the flag variables ahead of the file's, so they win the
// first-match lookup. Short keys no directive can reach are warned about on
// warn but still added.
func commandTable(a *app, opts *expandOptions, warn io.Writer) (varexpand.Table, error) {
	var table varexpand.Table
	for _, s := range opts.shortVars {
		key, value, err := parse.ShortVar(s)
		if err != nil {
			return nil, err
		}
		if config.IsReservedKey(key) {
			output.Warn(warn, "variable %q can never be referenced: %q is a modifier or prefix character", s, key)
		}
		table = append(table, varexpand.Entry{Key: key, Value: value})
	}
	for _, s := range opts.longVars {
		name, value, err := parse.LongVar(s)
		if err != nil {
			return nil, err
		}
		table = append(table, varexpand.Entry{LongKey: name, Value: value})
	}
	return append(table, a.file.Table()...), nil
}
