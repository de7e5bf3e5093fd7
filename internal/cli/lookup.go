package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup NAME...",
	Short: "Print the daisyUI token for each Ionic variable",
	Long: `Print the daisyUI token for each Ionic variable, one per line in
argument order. The leading "--" may be omitted; pass names that keep it
after a "--" separator so they are not read as flags.

Examples:
  themeport lookup ion-color-primary            # primary
  themeport lookup ion-color-step-500           # color-500
  themeport lookup -- --ion-border-color        # --border-color`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	d, _, err := prepare()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var errs []error
	for _, arg := range args {
		// Names pasted from editors may carry decomposed characters or padding.
		name := norm.NFC.String(strings.TrimSpace(arg))
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		target, err := d.Tokens.Lookup(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		_, _ = fmt.Fprintln(out, target)
	}
	return errors.Join(errs...)
}
