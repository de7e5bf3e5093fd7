package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modu-ai/themeport/internal/fsutil"
	"github.com/modu-ai/themeport/internal/rewrite"
	"github.com/modu-ai/themeport/internal/ui"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite FILE...",
	Short: "Rename Ionic variables in stylesheets to daisyUI tokens",
	Long: `Rename every mapped --ion-* custom property in the given stylesheets,
both declarations and var() references. Only names change; formatting
and values are kept as they are.

By default the rewritten stylesheets are printed to stdout. With --write
each file is replaced in place.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().BoolP("write", "w", false, "Rewrite files in place")
	rewriteCmd.Flags().Bool("strict", false, "Fail on unmapped --ion-* variables")
}

func runRewrite(cmd *cobra.Command, files []string) error {
	d, _, err := prepare()
	if err != nil {
		return err
	}

	opts := rewrite.Options{Strict: getBoolFlag(cmd, "strict") || d.Config.Get().Output.Strict}
	if !getBoolFlag(cmd, "write") {
		for _, file := range files {
			res, err := rewriteFile(file, d, opts)
			if err != nil {
				return err
			}
			warnUnmapped(cmd.ErrOrStderr(), d, file, res.Unmapped)
			if _, err := fmt.Fprint(cmd.OutOrStdout(), res.Output); err != nil {
				return err
			}
		}
		return nil
	}

	bar := ui.NewProgress(d.Theme, d.Headless, cmd.ErrOrStderr()).Start("rewrite", len(files))
	changed, replaced := 0, 0
	var unmapped [][2]string
	for _, file := range files {
		res, err := rewriteFile(file, d, opts)
		if err != nil {
			bar.Done()
			return err
		}
		if res.Changed() {
			if err := fsutil.WriteFileAtomic(file, []byte(res.Output), fsutil.FileMode(file, 0o644)); err != nil {
				bar.Done()
				return fmt.Errorf("write %s: %w", file, err)
			}
			changed++
			replaced += res.Replaced
		}
		for _, name := range res.Unmapped {
			unmapped = append(unmapped, [2]string{file, name})
		}
		bar.Step(file)
	}
	bar.Done()

	for _, u := range unmapped {
		d.Logger.Warn("unmapped variable left unchanged", "file", u[0], "variable", u[1])
	}
	printCard(cmd.OutOrStdout(), d, fmt.Sprintf("Rewrote %d of %d file(s)", changed, len(files)),
		fmt.Sprintf("replacements: %d", replaced),
		fmt.Sprintf("unmapped: %d", len(unmapped)),
	)
	return nil
}

func rewriteFile(file string, d *Dependencies, opts rewrite.Options) (rewrite.Result, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return rewrite.Result{}, fmt.Errorf("read stylesheet: %w", err)
	}
	res, err := rewrite.Rewrite(string(src), d.Tokens, opts)
	if err != nil {
		return res, fmt.Errorf("%s: %w", file, err)
	}
	return res, nil
}
