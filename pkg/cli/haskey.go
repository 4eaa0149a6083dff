package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/getmockd/varexpand/pkg/varexpand"
)

func newHasKeyCmd() *cobra.Command {
	var (
		key     string
		longKey string
	)

	cmd := &cobra.Command{
		Use:   "has-key <template>",
		Short: "Report whether a template references a variable",
		Example: `  varexpand has-key --key u '%u@%d'          # true
  varexpand has-key --long user '%{sha1:%{user}}' # true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" && longKey == "" {
				return errors.New("one of --key or --long is required")
			}
			if len(key) > 1 {
				return fmt.Errorf("--key must be a single character, got %q", key)
			}
			var c byte
			if key != "" {
				c = key[0]
			}
			found := varexpand.HasKey(args[0], c, longKey)
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(found))
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Short key to look for")
	cmd.Flags().StringVar(&longKey, "long", "", "Long key to look for")
	return cmd
}

func newKeyRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key-range <directive>",
		Short: "Print the index and size of the key in a directive (without the %)",
		Example: `  varexpand key-range -- '-2.3Lu'   # 5 1
  varexpand key-range 'M{sha1:x}'   # 2 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, size := varexpand.KeyRange(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), idx, size)
			return nil
		},
	}
}
