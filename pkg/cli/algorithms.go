package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/varexpand/pkg/cli/internal/output"
)

// AlgorithmOutput describes one hash method for --json.
type AlgorithmOutput struct {
	Name string `json:"name"`
	Bits int    `json:"bits"`
}

func newAlgorithmsCmd(root *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List hash methods usable as %{name;options:data}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hashes := root.app.hashes
			names := hashes.Names()

			if jsonOutput {
				out := make([]AlgorithmOutput, 0, len(names))
				for _, name := range names {
					m, _ := hashes.Lookup(name)
					out = append(out, AlgorithmOutput{Name: name, Bits: m.DigestSize * 8})
				}
				return output.JSON(cmd.OutOrStdout(), out)
			}

			tw := output.Table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "NAME\tBITS")
			for _, name := range names {
				m, _ := hashes.Lookup(name)
				fmt.Fprintf(tw, "%s\t%d\n", name, m.DigestSize*8)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
