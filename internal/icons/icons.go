// Package icons resolves titlebar button icons to raw SVG markup by walking
// the icon theme directories, and recolors the markup to match the palette. A
// lookup miss yields empty markup; the renderer falls back to builtin glyphs.
package icons

import (
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/waydecor/waydecor/internal/theme"
)

// fileNames maps logical icons to the symbolic icon file names shipped by
// GNOME-style icon themes.
var fileNames = map[theme.Icon]string{
	theme.IconClose:    "window-close-symbolic.svg",
	theme.IconMinimize: "window-minimize-symbolic.svg",
	theme.IconMaximize: "window-maximize-symbolic.svg",
	theme.IconRestore:  "window-restore-symbolic.svg",
}

// searchRoots returns the icon theme base directories in lookup order: the
// user's private themes, the user's data dir, then the system themes.
func searchRoots() []string {
	var roots []string
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, ".icons"))
	}
	if data := os.Getenv("XDG_DATA_HOME"); data != "" {
		roots = append(roots, filepath.Join(data, "icons"))
	} else if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, ".local", "share", "icons"))
	}
	return append(roots, "/usr/share/icons")
}

// Load resolves every logical icon against the given theme names in order,
// always trying "Adwaita" last. Missing icons are simply absent from the
// result.
func Load(themes ...string) map[theme.Icon]string {
	names := make([]string, 0, len(themes)+1)
	for _, t := range themes {
		if t != "" {
			names = append(names, t)
		}
	}
	names = append(names, "Adwaita")

	roots := searchRoots()
	out := make(map[theme.Icon]string, len(fileNames))
	for icon, file := range fileNames {
		markup, err := lookup(roots, names, file)
		if err != nil {
			continue
		}
		out[icon] = markup
	}
	return out
}

// lookup walks each theme directory under each root and returns the contents
// of the first file whose base name matches.
func lookup(roots, themes []string, file string) (string, error) {
	for _, themeName := range themes {
		for _, root := range roots {
			dir := filepath.Join(root, themeName)
			if _, err := os.Stat(dir); err != nil {
				continue
			}
			var found string
			err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return nil
				}
				if !d.IsDir() && d.Name() == file {
					found = path
					return filepath.SkipAll
				}
				return nil
			})
			if err != nil || found == "" {
				continue
			}
			data, err := os.ReadFile(found)
			if err != nil {
				continue
			}
			return string(data), nil
		}
	}
	return "", fmt.Errorf("icons: no %q in themes %v", file, themes)
}

var (
	fillAttr    = regexp.MustCompile(`fill=["']#[0-9A-Fa-f]{6}["']`)
	fillStyle   = regexp.MustCompile(`fill:#[0-9A-Fa-f]{6}`)
	fillCurrent = regexp.MustCompile(`fill=["']currentColor["']`)
)

// Recolor rewrites every fill color token in the SVG markup to c. Symbolic
// icons ship with a single hard-coded or currentColor fill.
func Recolor(markup string, c color.RGBA) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	markup = fillAttr.ReplaceAllString(markup, `fill="`+hex+`"`)
	markup = fillStyle.ReplaceAllString(markup, "fill:"+hex)
	markup = fillCurrent.ReplaceAllString(markup, `fill="`+hex+`"`)
	return markup
}
