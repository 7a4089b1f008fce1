package themes

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskThemePath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

//go:embed *.yaml
var ThemesFS embed.FS

// Load reads a theme file, preferring an on-disk copy under themes/ so edits
// take effect without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanThemePath(name)
	if data, err := os.ReadFile(diskThemePath(clean)); err == nil {
		return data, nil
	}
	return ThemesFS.ReadFile(clean)
}

// Names lists the embedded theme basenames, sorted.
func Names() []string {
	entries, err := fs.Glob(ThemesFS, "*.yaml")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e, ".yaml"))
	}
	sort.Strings(names)
	return names
}

func cleanThemePath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "themes/"); ok {
		s = after
	}
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "themes/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "themes/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskThemePath(clean string) string {
	return filepath.Join("themes", filepath.FromSlash(clean))
}
