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


// Command fctx-compile converts SVG paths, SVG fonts and TrueType fonts
// into the path and font records of seehuhn.de/go/fctx.
//
// Usage:
//
//	fctx-compile -m manifest.yaml [-o outdir]
//	fctx-compile file.svg...
package main

import (
	"encoding"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"seehuhn.de/go/fctx"
	"seehuhn.de/go/fctx/compile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var (
		manifestPath string
		outDir       string
		verbose      bool
		showHelp     bool
	)

	flags := pflag.NewFlagSet("fctx-compile", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest listing the resources to compile")
	flags.StringVarP(&outDir, "output", "o", "", "Output directory (default: from the manifest, or the current directory)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every glyph range")
	flags.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if showHelp {
		fmt.Fprintln(stderr, "Usage: fctx-compile [-m manifest.yaml] [-o outdir] [file.svg...]")
		flags.PrintDefaults()
		return 0
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	fctx.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer fctx.SetLogger(nil)

	m := &Manifest{}
	baseDir := "."
	if manifestPath != "" {
		var err error
		m, err = loadManifest(manifestPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		baseDir = filepath.Dir(manifestPath)
	}
	// extra arguments are SVG files relative to the current directory
	for _, name := range flags.Args() {
		abs, err := filepath.Abs(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		m.SVG = append(m.SVG, abs)
	}
	if len(m.SVG)+len(m.Fonts)+len(m.Paths) == 0 {
		fmt.Fprintln(stderr, "Error: nothing to compile")
		return 1
	}

	if outDir == "" {
		outDir = "."
		if m.Output != "" {
			outDir = resolve(baseDir, m.Output)
		}
	}
	if err := compileAll(m, baseDir, outDir); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// compileAll compiles every resource of m and writes the records to
// outDir.
func compileAll(m *Manifest, baseDir, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, name := range m.SVG {
		fd, err := os.Open(resolve(baseDir, name))
		if err != nil {
			return err
		}
		doc, err := compile.FromSVG(fd)
		fd.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		for _, p := range doc.Paths {
			if err := writeRecord(outDir, p.ID+".fpath", p.Path); err != nil {
				return err
			}
		}
		for _, f := range doc.Fonts {
			if err := writeRecord(outDir, f.ID+".ffont", f.Font); err != nil {
				return err
			}
		}
	}

	for _, spec := range m.Fonts {
		data := builtinFonts[spec.Builtin]
		if spec.File != "" {
			var err error
			data, err = os.ReadFile(resolve(baseDir, spec.File))
			if err != nil {
				return err
			}
		}
		opts := &compile.SFNTOptions{Em: spec.Em}
		for _, s := range spec.Ranges {
			r, err := parseRange(s)
			if err != nil {
				return fmt.Errorf("font %q: %w", spec.Name, err)
			}
			opts.Ranges = append(opts.Ranges, r)
		}
		font, err := compile.FromSFNT(data, opts)
		if err != nil {
			return fmt.Errorf("font %q: %w", spec.Name, err)
		}
		if err := writeRecord(outDir, spec.Name+".ffont", font); err != nil {
			return err
		}
	}

	for _, spec := range m.Paths {
		scale := spec.Scale
		if scale == 0 {
			scale = 1
		}
		data, err := compile.ParsePathData(spec.D, scale)
		if err != nil {
			return fmt.Errorf("path %q: %w", spec.Name, err)
		}
		if err := writeRecord(outDir, spec.Name+".fpath", fctx.NewPath(data)); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(dir, name string, rec encoding.BinaryMarshaler) error {
	data, err := rec.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	out := filepath.Join(dir, name)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fctx.Logger().Info("wrote record", "file", out, "bytes", len(data))
	return nil
}
