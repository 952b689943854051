// Package config loads startup reading preferences from a TOML file.
//
// The file is read once at startup and never written: adjustments made in
// the workbench last for the session only. Every key is optional; missing
// keys keep their defaults and numeric values are clamped into range.
//
//	theme = "warm"
//	font = "serif"
//	font_size = 20
//	line_height = 1.6
//	paragraph_spacing = 1.2
//	column_width = 60
//	letter_spacing = 0.02
//	reading_guide = true
//	soft_edges = false
//
// Lookup order: an explicit path, then $XDG_CONFIG_HOME/readable/config.toml,
// then ~/.config/readable/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/readable/pkg/errors"
	"github.com/matzehuels/readable/pkg/settings"
)

const (
	appName  = "readable"
	fileName = "config.toml"
)

// File mirrors the TOML document. Pointer fields distinguish "absent"
// from zero values.
type File struct {
	Theme            *string  `toml:"theme"`
	Font             *string  `toml:"font"`
	FontSize         *float64 `toml:"font_size"`
	LineHeight       *float64 `toml:"line_height"`
	ParagraphSpacing *float64 `toml:"paragraph_spacing"`
	ColumnWidth      *float64 `toml:"column_width"`
	LetterSpacing    *float64 `toml:"letter_spacing"`
	ReadingGuide     *bool    `toml:"reading_guide"`
	SoftEdges        *bool    `toml:"soft_edges"`
}

// Result is a loaded configuration.
type Result struct {
	Path     string            // File that was read; empty when none was found
	Settings settings.Settings // Defaults overlaid with the file, normalized
	Unknown  []string          // Keys present in the file but not understood
}

// DefaultPath returns the config file location used when no path is given.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config at path. With an empty path the default location
// is tried and a missing file yields the defaults. An explicit path that
// does not exist is an error.
func Load(path string) (Result, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Result{Settings: settings.Defaults()}, nil
		}
		path = p
	}
	if err := errors.ValidateConfigPath(path); err != nil {
		return Result{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Result{Settings: settings.Defaults()}, nil
		}
		if os.IsNotExist(err) {
			return Result{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Result{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	res, err := Parse(data)
	if err != nil {
		// The cause's code is kept.
		return Result{}, errors.Wrap(errors.GetCode(err), err, "config %s: %s", path, errors.UserMessage(err))
	}
	res.Path = path
	return res, nil
}

// Parse decodes a TOML document over the defaults.
func Parse(data []byte) (Result, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode: %v", err)
	}

	s, err := f.Apply(settings.Defaults())
	if err != nil {
		return Result{}, err
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return Result{Settings: s, Unknown: unknown}, nil
}

// Apply overlays the values present in f on base and normalizes the result.
func (f File) Apply(base settings.Settings) (settings.Settings, error) {
	s := base
	if f.Theme != nil {
		id, err := settings.ParseThemeID(*f.Theme)
		if err != nil {
			return base, err
		}
		s.Theme = id
	}
	if f.Font != nil {
		id, err := settings.ParseFontID(*f.Font)
		if err != nil {
			return base, err
		}
		s.Font = id
	}
	numbers := map[settings.Field]*float64{
		settings.FontSize:         f.FontSize,
		settings.LineHeight:       f.LineHeight,
		settings.ParagraphSpacing: f.ParagraphSpacing,
		settings.ColumnWidth:      f.ColumnWidth,
		settings.LetterSpacing:    f.LetterSpacing,
	}
	for field, v := range numbers {
		if v != nil {
			s = s.WithNumber(field, *v)
		}
	}
	if f.ReadingGuide != nil {
		s.ReadingGuide = *f.ReadingGuide
	}
	if f.SoftEdges != nil {
		s.SoftEdges = *f.SoftEdges
	}
	return s.Normalize(), nil
}

// String summarizes the source of a result for log lines.
func (r Result) String() string {
	if r.Path == "" {
		return "defaults"
	}
	return fmt.Sprintf("config %s", r.Path)
}
