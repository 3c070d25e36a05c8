package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "waydecor.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestFileSourceReadAll(t *testing.T) {
	path := writeSettings(t, `
button_layout: "appmenu:minimize,maximize,close"
color_scheme: dark
titlebar_font: "Cantarell Bold 11"
`)

	snap, err := NewFileSource(path).ReadAll(nil)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if got := snap.Get(GroupWMPreferences, KeyButtonLayout); got != "appmenu:minimize,maximize,close" {
		t.Fatalf("button layout=%v", got)
	}
	if got := snap.Get(GroupAppearance, KeyColorScheme); got != uint32(1) {
		t.Fatalf("color scheme=%v (%T), want uint32(1)", got, got)
	}
	if got := snap.Get(GroupWMPreferences, KeyTitlebarFont); got != "Cantarell Bold 11" {
		t.Fatalf("titlebar font=%v", got)
	}
}

func TestFileSourceLightScheme(t *testing.T) {
	path := writeSettings(t, "color_scheme: light\n")

	snap, err := NewFileSource(path).ReadAll(nil)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got := snap.Get(GroupAppearance, KeyColorScheme); got != uint32(0) {
		t.Fatalf("color scheme=%v, want uint32(0)", got)
	}
	if got := snap.Get(GroupWMPreferences, KeyButtonLayout); got != nil {
		t.Fatalf("button layout=%v, want absent", got)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml"))

	snap, err := src.ReadAll(nil)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(snap) != 0 {
		t.Fatalf("snapshot=%v, want empty", snap)
	}
}

func TestFileSourceEmptyFile(t *testing.T) {
	path := writeSettings(t, "")

	snap, err := NewFileSource(path).ReadAll(nil)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(snap) != 0 {
		t.Fatalf("snapshot=%v, want empty", snap)
	}
}

func TestFileSourceUnknownKeyIsError(t *testing.T) {
	path := writeSettings(t, "button_layot: \"close:\"\n")

	if _, err := NewFileSource(path).ReadAll(nil); err == nil {
		t.Fatalf("ReadAll accepted an unknown key")
	}
}
