package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "Print the Tailwind plugins the token map requires",
	Args:  cobra.NoArgs,
	RunE:  runPlugins,
}

func init() {
	rootCmd.AddCommand(pluginsCmd)
}

func runPlugins(cmd *cobra.Command, _ []string) error {
	d, _, err := prepare()
	if err != nil {
		return err
	}
	for _, p := range d.Tokens.Plugins() {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
