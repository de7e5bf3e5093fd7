package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/themeport/internal/config"
	"github.com/modu-ai/themeport/internal/fsutil"
	"github.com/modu-ai/themeport/internal/render"
	"github.com/modu-ai/themeport/internal/theme"
	"github.com/modu-ai/themeport/internal/ui"
	"github.com/modu-ai/themeport/pkg/version"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate daisyUI themes from the Ionic theme stylesheets",
	Long: `Generate daisyUI themes from the Ionic theme stylesheets.

Every configured theme source is read, its --ion-* variables are mapped
through the token map, and the result is written as CSS variables
(--format css) or as a tailwind.config.js with the daisyui plugin
(--format tailwind).

Unmapped --ion-* variables are reported and skipped unless --strict is set.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("format", "", "Output format: "+strings.Join(config.ValidFormats(), ", ")+" (default: from config)")
	generateCmd.Flags().StringP("output", "o", "", "Output file (default: from config)")
	generateCmd.Flags().Bool("strict", false, "Fail on unmapped --ion-* variables")
	generateCmd.Flags().Bool("dry-run", false, "Print the generated file instead of writing it")
	generateCmd.Flags().BoolP("yes", "y", false, "Overwrite an existing output file without asking")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	d, root, err := prepare()
	if err != nil {
		return err
	}
	cfg := d.Config.Get()

	output := cfg.Output
	if format := getStringFlag(cmd, "format"); format != "" {
		if !slices.Contains(config.ValidFormats(), format) {
			return fmt.Errorf("%w: %q (want one of: %s)", config.ErrInvalidFormat, format, strings.Join(config.ValidFormats(), ", "))
		}
		if format != output.Format {
			// A configured path belongs to the configured format.
			output.Path = ""
		}
		output.Format = format
	}
	if path := getStringFlag(cmd, "output"); path != "" {
		output.Path = path
	}
	strict := output.Strict || getBoolFlag(cmd, "strict")

	sources := make([]theme.Source, 0, len(cfg.Sources.Themes))
	for _, t := range cfg.Sources.Themes {
		sources = append(sources, theme.Source{Name: t.Name, Selector: t.Selector, Path: t.Path})
	}
	resolve := func(s theme.Source) string {
		return cfg.Sources.ResolveTheme(root, config.ThemeSource{Name: s.Name, Selector: s.Selector, Path: s.Path})
	}

	themes, err := theme.Extract(commandContext(cmd), sources, resolve, d.Tokens, strict)
	if err != nil {
		return err
	}

	data, err := render.RenderDocument(d.Renderer, output.Format, render.Document{
		Version: version.GetVersion(),
		Themes:  themes,
		Plugins: d.Tokens.Plugins(),
		Content: output.Content,
	})
	if err != nil {
		return fmt.Errorf("render %s output: %w", output.Format, err)
	}

	out := cmd.OutOrStdout()
	if getBoolFlag(cmd, "dry-run") {
		_, err := out.Write(data)
		return err
	}

	path := output.ResolvePath(root)
	if fsutil.Exists(path) && !getBoolFlag(cmd, "yes") {
		ok, err := ui.NewPrompt(d.Theme, d.Headless).Confirm(fmt.Sprintf("Overwrite %s?", path), true)
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(out, "Aborted; nothing written.")
			return nil
		}
	}

	if err := fsutil.WriteFileAtomic(path, data, fsutil.FileMode(path, 0o644)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	d.Logger.Debug("generated output", "path", path, "format", output.Format, "bytes", len(data))

	tokens, unmapped := 0, 0
	for _, th := range themes {
		tokens += len(th.Tokens)
		unmapped += len(th.Unmapped)
	}
	details := []string{
		"format: " + output.Format,
		fmt.Sprintf("themes: %d", len(themes)),
		fmt.Sprintf("tokens: %d", tokens),
	}
	if unmapped > 0 {
		details = append(details, d.Theme.Warn().Render(fmt.Sprintf("skipped: %d unmapped variable(s)", unmapped)))
	}
	printCard(out, d, "Generated "+path, details...)
	return nil
}
