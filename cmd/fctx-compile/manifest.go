// seehuhn.de/go/fctx - fixed-point vector rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fctx"
)

// Manifest lists the resources to compile.  Relative file names are
// resolved against the directory of the manifest.
type Manifest struct {
	Output string     `yaml:"output"`
	SVG    []string   `yaml:"svg"`
	Fonts  []FontSpec `yaml:"fonts"`
	Paths  []PathSpec `yaml:"paths"`
}

// FontSpec describes a TrueType or OpenType font to compile.  Exactly one
// of File and Builtin must be set.
type FontSpec struct {
	Name    string   `yaml:"name"`
	File    string   `yaml:"file"`
	Builtin string   `yaml:"builtin"` // "goregular" or "gomono"
	Em      int      `yaml:"em"`
	Ranges  []string `yaml:"ranges"` // e.g. "U+0020-007E"
}

// PathSpec is a path given as SVG path data.
type PathSpec struct {
	Name  string  `yaml:"name"`
	D     string  `yaml:"d"`
	Scale float64 `yaml:"scale"`
}

var builtinFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
}

func loadManifest(name string) (*Manifest, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := m.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

func (m *Manifest) check() error {
	seen := make(map[string]bool)
	for _, f := range m.Fonts {
		if f.Name == "" {
			return fmt.Errorf("font without a name")
		}
		if (f.File == "") == (f.Builtin == "") {
			return fmt.Errorf("font %q: need either file or builtin", f.Name)
		}
		if f.Builtin != "" && builtinFonts[f.Builtin] == nil {
			return fmt.Errorf("font %q: unknown builtin font %q", f.Name, f.Builtin)
		}
		if seen[f.Name+".ffont"] {
			return fmt.Errorf("font %q: duplicate name", f.Name)
		}
		seen[f.Name+".ffont"] = true
	}
	for _, p := range m.Paths {
		if p.Name == "" {
			return fmt.Errorf("path without a name")
		}
		if seen[p.Name+".fpath"] {
			return fmt.Errorf("path %q: duplicate name", p.Name)
		}
		seen[p.Name+".fpath"] = true
	}
	return nil
}

// resolve returns name relative to the manifest directory.
func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// parseRange parses a code point range like "U+0020-007E" or "U+0041".
// The end of the returned range is exclusive.
func parseRange(s string) (fctx.Range, error) {
	rest, ok := strings.CutPrefix(strings.ToUpper(strings.TrimSpace(s)), "U+")
	if !ok {
		return fctx.Range{}, fmt.Errorf("invalid range %q", s)
	}
	first, last, isRange := strings.Cut(rest, "-")
	if !isRange {
		last = first
	}
	begin, err := strconv.ParseUint(first, 16, 16)
	if err != nil {
		return fctx.Range{}, fmt.Errorf("invalid range %q", s)
	}
	end, err := strconv.ParseUint(last, 16, 16)
	if err != nil || end < begin || end == 0xFFFF {
		return fctx.Range{}, fmt.Errorf("invalid range %q", s)
	}
	return fctx.Range{Begin: rune(begin), End: rune(end + 1)}, nil
}
