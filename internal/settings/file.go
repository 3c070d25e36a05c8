package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSettings is the YAML schema of the file source. Decoding is strict;
// unknown keys are errors so typos do not silently fall back to defaults.
type fileSettings struct {
	ButtonLayout string `yaml:"button_layout,omitempty"`
	ColorScheme  string `yaml:"color_scheme,omitempty"` // "light" or "dark"
	TitlebarFont string `yaml:"titlebar_font,omitempty"`
}

// FileSource reads decoration settings from a YAML file. It carries no
// change notification; Subscribe is a no-op.
type FileSource struct {
	path string
}

// NewFileSource returns a source reading from path on every ReadAll.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// ReadAll decodes the file and maps its keys into the portal namespace so
// both sources feed the decoration the same shape. A missing or empty file
// yields an empty snapshot, which leaves the built-in defaults in place.
func (s *FileSource) ReadAll(groups []string) (Snapshot, error) {
	_ = groups

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings: read %s: %w", s.path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f fileSettings
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Snapshot{}, nil
		}
		return nil, fmt.Errorf("settings: parse %s: %w", s.path, err)
	}

	snap := Snapshot{
		GroupWMPreferences: map[string]interface{}{},
		GroupAppearance:    map[string]interface{}{},
	}
	if f.ButtonLayout != "" {
		snap[GroupWMPreferences][KeyButtonLayout] = f.ButtonLayout
	}
	if f.TitlebarFont != "" {
		snap[GroupWMPreferences][KeyTitlebarFont] = f.TitlebarFont
	}
	if f.ColorScheme != "" {
		var scheme uint32
		if f.ColorScheme == "dark" {
			scheme = 1
		}
		snap[GroupAppearance][KeyColorScheme] = scheme
	}
	return snap, nil
}

// Subscribe is a no-op; file settings are read once.
func (s *FileSource) Subscribe(fn func(group, key string, value interface{})) error {
	_ = fn
	return nil
}

// Close is a no-op.
func (s *FileSource) Close() error { return nil }
