package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modu-ai/themeport/internal/config"
	"github.com/modu-ai/themeport/internal/defs"
	"github.com/modu-ai/themeport/internal/fsutil"
)

// ErrAlreadyInitialized is returned by init when the configuration exists and --force is unset.
var ErrAlreadyInitialized = errors.New("cli: project already initialized")

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default themeport configuration",
	Long: `Write the default configuration sections to .themeport/sections/
in the project root (sources.yaml, output.yaml, system.yaml).

Use --force to replace an existing configuration with the defaults.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
}

func runInit(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	root, err := projectRoot()
	if err != nil {
		return err
	}
	// The existing configuration may be the reason for running init, so
	// it is not loaded here.
	deps.ConfigureLogging(config.NewDefaultSystemConfig(), runtimeOptions())

	sectionsDir := filepath.Join(config.ConfigDir(root), defs.SectionsSubdir)
	if fsutil.Exists(sectionsDir) && !getBoolFlag(cmd, "force") {
		return fmt.Errorf("%w: %s exists (use --force to overwrite)", ErrAlreadyInitialized, sectionsDir)
	}

	deps.Config.Reset(root)
	if err := deps.Config.Save(); err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}
	deps.Logger.Debug("configuration written", "dir", sectionsDir)

	printCard(cmd.OutOrStdout(), deps, "Initialized "+sectionsDir,
		defs.SourcesYAML,
		defs.OutputYAML,
		defs.SystemYAML,
	)
	return nil
}
