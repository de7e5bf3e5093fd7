package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modu-ai/themeport/internal/config"
	"github.com/modu-ai/themeport/internal/defs"
	"github.com/modu-ai/themeport/internal/fsutil"
)

func TestInitCmd_WritesSections(t *testing.T) {
	_, root := setupCLI(t)

	out, _, err := runCmd(t, initCmd, nil, nil)
	if err != nil {
		t.Fatalf("init error: %v", err)
	}

	dir := filepath.Join(root, defs.ConfigDir, defs.SectionsSubdir)
	for _, name := range []string{defs.SourcesYAML, defs.OutputYAML, defs.SystemYAML} {
		if !fsutil.Exists(filepath.Join(dir, name)) {
			t.Errorf("%s not written", name)
		}
	}
	if !strings.Contains(out, "Initialized "+dir) {
		t.Errorf("init output = %q", out)
	}

	cfg, err := config.NewConfigManager().Load(root)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if len(cfg.Sources.Themes) != 4 || cfg.Sources.BaseDir != defs.StylesDir {
		t.Errorf("written config = %+v", cfg.Sources)
	}
}

func TestInitCmd_ExistingRequiresForce(t *testing.T) {
	_, root := setupCLI(t)
	output := filepath.Join(root, defs.ConfigDir, defs.SectionsSubdir, defs.OutputYAML)
	writeFile(t, output, "output:\n  format: scss\n")

	_, _, err := runCmd(t, initCmd, nil, nil)
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("error = %v, want ErrAlreadyInitialized", err)
	}

	if _, _, err := runCmd(t, initCmd, nil, map[string]string{"force": "true"}); err != nil {
		t.Fatalf("init --force error: %v", err)
	}
	if got := readFile(t, output); !strings.Contains(got, "format: css") {
		t.Errorf("--force should restore defaults, got:\n%s", got)
	}
}
