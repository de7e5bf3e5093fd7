package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/modu-ai/themeport/internal/config"
	"github.com/modu-ai/themeport/internal/render"
	"github.com/modu-ai/themeport/internal/tokenmap"
	"github.com/modu-ai/themeport/internal/ui"
)

// fixtureStyles are the four Ionic theme stylesheets, keyed by their
// location relative to the project root.
var fixtureStyles = map[string]string{
	"src/theme/styles/light.css": `:root {
  --ion-color-primary: #154666;
  --ion-color-primary-contrast: #fff;
  --ion-color-primary-rgb: 21, 70, 102;
  --app-max-width: 960px;
}
`,
	"src/theme/styles/dark.css": `body.dark {
  --ion-color-primary: #428cff;
}
`,
	"src/theme/styles/ios.css": `.ios body.dark {
  --ion-background-color: #000;
}
`,
	"src/theme/styles/md.css": `.md body.dark {
  --ion-border-color: #222;
}
`,
}

// setupCLI installs headless test dependencies, points --project at a
// fresh project root and clears environment overrides.
func setupCLI(t *testing.T) (*Dependencies, string) {
	t.Helper()

	for _, env := range []string{
		"THEMEPORT_CONFIG_DIR", "THEMEPORT_LOG_LEVEL", "THEMEPORT_LOG_FORMAT",
		"THEMEPORT_NO_COLOR", "THEMEPORT_STRICT",
	} {
		t.Setenv(env, "")
	}

	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)
	d := &Dependencies{
		Config:    config.NewConfigManager(),
		Tokens:    tokenmap.Default(),
		Renderer:  render.Builtin(),
		Theme:     ui.NewTheme(true),
		Headless:  hm,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		LogOutput: io.Discard,
	}

	prevDeps, prevLogger := deps, slog.Default()
	prevProject, prevVerbose, prevNoColor := flagProject, flagVerbose, flagNoColor
	t.Cleanup(func() {
		SetDeps(prevDeps)
		slog.SetDefault(prevLogger)
		flagProject, flagVerbose, flagNoColor = prevProject, prevVerbose, prevNoColor
	})

	root := t.TempDir()
	SetDeps(d)
	flagProject = root
	flagVerbose = false
	flagNoColor = true
	return d, root
}

// writeFixtureProject writes the Ionic theme stylesheets under root.
func writeFixtureProject(t *testing.T, root string) {
	t.Helper()
	for rel, content := range fixtureStyles {
		writeFile(t, filepath.Join(root, rel), content)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// runCmd calls cmd.RunE with captured output. Flags are restored to
// their defaults when the test ends.
func runCmd(t *testing.T, cmd *cobra.Command, args []string, flags map[string]string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	})

	for name, value := range flags {
		name, value := name, value
		f := cmd.Flags().Lookup(name)
		if f == nil {
			t.Fatalf("%s has no --%s flag", cmd.Name(), name)
		}
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("set --%s: %v", name, err)
		}
		def := f.DefValue
		t.Cleanup(func() {
			_ = cmd.Flags().Set(name, def)
			f.Changed = false
		})
	}

	err := cmd.RunE(cmd, args)
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"lookup", "list", "plugins", "paths", "generate", "rewrite", "init", "version"}
	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("%s should be registered as a subcommand of root", name)
		}
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"project", "verbose", "no-color"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command should have --%s flag", name)
		}
	}
}

func TestPrepare_NoDependencies(t *testing.T) {
	prev := deps
	t.Cleanup(func() { SetDeps(prev) })
	SetDeps(nil)

	if _, _, err := prepare(); err == nil {
		t.Error("prepare() should fail without dependencies")
	}
}

func TestProjectRoot_DefaultsToWorkingDirectory(t *testing.T) {
	prev := flagProject
	t.Cleanup(func() { flagProject = prev })
	flagProject = ""

	got, err := projectRoot()
	if err != nil {
		t.Fatalf("projectRoot() error: %v", err)
	}
	cwd, _ := os.Getwd()
	if got != cwd {
		t.Errorf("projectRoot() = %q, want %q", got, cwd)
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := runCmd(t, versionCmd, nil, nil)
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "themeport ") {
		t.Errorf("version output = %q", out)
	}
}
