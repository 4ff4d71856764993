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


// Command fctx-render draws a string, or a compiled path, into a PNG
// image.
//
// Usage:
//
//	fctx-render [flags] text...
//	fctx-render [flags] --path shape.fpath
package main

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/fctx"
	"seehuhn.de/go/fctx/compile"
)

type options struct {
	fontPath string
	pathFile string
	output   string
	mode     string
	size     int
	width    int
	height   int
	align    string
	anchor   string
	rotate   float64
	fg, bg   string
	bias     int
	debug    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var opt options
	var showHelp bool

	flags := pflag.NewFlagSet("fctx-render", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opt.fontPath, "font", "f", "", "Font record (.ffont); default is Go Regular")
	flags.StringVarP(&opt.pathFile, "path", "p", "", "Draw a path record (.fpath) instead of text")
	flags.StringVarP(&opt.output, "output", "o", "out.png", "Output PNG file")
	flags.StringVarP(&opt.mode, "mode", "m", "antialiased", "Rendering mode: binary or antialiased")
	flags.IntVarP(&opt.size, "size", "s", 24, "Text size in pixels per em")
	flags.IntVarP(&opt.width, "width", "W", 200, "Image width")
	flags.IntVarP(&opt.height, "height", "H", 60, "Image height")
	flags.StringVarP(&opt.align, "align", "a", "center", "Horizontal alignment: left, center or right")
	flags.StringVar(&opt.anchor, "anchor", "middle", "Vertical anchor: baseline, middle, top or bottom")
	flags.Float64VarP(&opt.rotate, "rotate", "r", 0, "Rotation in degrees, clockwise")
	flags.StringVar(&opt.fg, "fg", "white", "Fill color: a name or four digits 0-3 for ARGB")
	flags.StringVar(&opt.bg, "bg", "black", "Background color")
	flags.IntVar(&opt.bias, "bias", 0, "Coverage bias for antialiased mode, -8 to 8")
	flags.BoolVar(&opt.debug, "debug", false, "Log debug messages to stderr")
	flags.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if showHelp {
		fmt.Fprintln(stderr, "Usage: fctx-render [flags] text...")
		flags.PrintDefaults()
		return 0
	}
	if opt.debug {
		fctx.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer fctx.SetLogger(nil)
	}

	text := strings.Join(flags.Args(), " ")
	if text == "" && opt.pathFile == "" {
		fmt.Fprintln(stderr, "Error: no text provided")
		return 1
	}
	if err := render(&opt, text); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func render(opt *options, text string) error {
	mode, err := parseMode(opt.mode)
	if err != nil {
		return err
	}
	align, err := parseAlign(opt.align)
	if err != nil {
		return err
	}
	anchor, err := parseAnchor(opt.anchor)
	if err != nil {
		return err
	}
	fg, err := parseColor(opt.fg)
	if err != nil {
		return err
	}
	bg, err := parseColor(opt.bg)
	if err != nil {
		return err
	}

	format := fctx.Color8
	if mode == fctx.ModeBinary && fg == fctx.White && bg == fctx.Black {
		// black and white images fit into a one bit surface
		format = fctx.Mono1
	}
	bm := fctx.NewBitmap(opt.width, opt.height, format)
	bm.Clear(bg)

	ctx, err := fctx.NewContext(bm, fctx.WithMode(mode))
	if err != nil {
		return err
	}
	defer ctx.Close()

	ctx.SetFillColor(fg)
	ctx.SetColorBias(opt.bias)
	ctx.SetOffset(fctx.PtI(opt.width/2, opt.height/2))
	ctx.SetRotation(fctx.Angle(math.Round(opt.rotate * float64(fctx.TrigMaxAngle) / 360)))

	ctx.BeginFill()
	if opt.pathFile != "" {
		fd, err := os.Open(opt.pathFile)
		if err != nil {
			return err
		}
		p, err := fctx.ReadPath(fd)
		fd.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", opt.pathFile, err)
		}
		if err := ctx.DrawPathRecord(fctx.Point{}, p); err != nil {
			return err
		}
	} else {
		font, err := loadFont(opt.fontPath)
		if err != nil {
			return err
		}
		ctx.SetTextSize(font, opt.size)
		if err := ctx.DrawString(text, font, align, anchor); err != nil {
			return err
		}
	}
	ctx.EndFill()

	out, err := os.Create(opt.output)
	if err != nil {
		return err
	}
	if err := png.Encode(out, bm); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func loadFont(name string) (*fctx.Font, error) {
	if name == "" {
		return compile.FromSFNT(goregular.TTF, nil)
	}
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	f, err := fctx.ReadFont(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

func parseMode(s string) (fctx.Mode, error) {
	switch strings.ToLower(s) {
	case "binary", "bw":
		return fctx.ModeBinary, nil
	case "antialiased", "aa":
		return fctx.ModeAntialiased, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

func parseAlign(s string) (fctx.TextAlign, error) {
	for _, a := range []fctx.TextAlign{fctx.AlignLeft, fctx.AlignCenter, fctx.AlignRight} {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

func parseAnchor(s string) (fctx.TextAnchor, error) {
	for _, a := range []fctx.TextAnchor{fctx.AnchorBaseline, fctx.AnchorMiddle, fctx.AnchorTop, fctx.AnchorBottom} {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown anchor %q", s)
}

var colorNames = map[string]fctx.Color{
	"black": fctx.Black,
	"white": fctx.White,
	"red":   fctx.Red,
	"green": fctx.Green,
	"blue":  fctx.Blue,
	"clear": 0,
}

// parseColor accepts a color name or four base-4 digits for alpha, red,
// green and blue, for example "3210".
func parseColor(s string) (fctx.Color, error) {
	if c, ok := colorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	v, err := strconv.ParseUint(s, 4, 8)
	if err != nil || len(s) != 4 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	return fctx.Color(v), nil
}
