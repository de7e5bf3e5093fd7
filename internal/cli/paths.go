package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the theme stylesheets and the generated output location",
	Args:  cobra.NoArgs,
	RunE:  runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, _ []string) error {
	d, root, err := prepare()
	if err != nil {
		return err
	}
	cfg := d.Config.Get()

	details := make([]string, 0, len(cfg.Sources.Themes)+3)
	for _, t := range cfg.Sources.Themes {
		details = append(details, fmt.Sprintf("%-9s %-16s %s", t.Name, t.Selector, cfg.Sources.ResolveTheme(root, t)))
	}
	details = append(details,
		"",
		fmt.Sprintf("output    %-16s %s", cfg.Output.Format, cfg.Output.ResolvePath(root)),
	)
	if tm := cfg.Sources.ResolveTokenMap(root); tm != "" {
		details = append(details, fmt.Sprintf("token map %-16s %s", "", tm))
	}

	printCard(cmd.OutOrStdout(), d, "Project "+root, details...)
	return nil
}
