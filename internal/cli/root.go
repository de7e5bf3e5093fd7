package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modu-ai/themeport/pkg/version"
)

// Global flag values.
var (
	flagProject string
	flagVerbose bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "themeport",
	Short: "Migrate Ionic theme variables to Tailwind/daisyUI tokens",
	Long: `themeport maps Ionic CSS custom properties (--ion-*) onto the
daisyUI token namespace.

It looks up single variables, lists the token map, generates daisyUI
themes from the Ionic theme stylesheets (as CSS variables or a
tailwind.config.js), and rewrites existing stylesheets in place.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("themeport %s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().StringVar(&flagProject, "project", "", "Project root directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// projectRoot returns the absolute project root from --project or the working directory.
func projectRoot() (string, error) {
	if flagProject != "" {
		abs, err := filepath.Abs(flagProject)
		if err != nil {
			return "", fmt.Errorf("resolve project root: %w", err)
		}
		return abs, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

func runtimeOptions() RuntimeOptions {
	return RuntimeOptions{Verbose: flagVerbose, NoColor: flagNoColor}
}

// prepare loads the project configuration and returns the wired dependencies.
func prepare() (*Dependencies, string, error) {
	if deps == nil {
		return nil, "", fmt.Errorf("dependencies not initialized")
	}
	root, err := projectRoot()
	if err != nil {
		return nil, "", err
	}
	if err := deps.EnsureConfig(root, runtimeOptions()); err != nil {
		return nil, "", err
	}
	return deps, root, nil
}

// commandContext returns the command context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
