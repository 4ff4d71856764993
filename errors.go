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

package fctx

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fctx package.
var (
	// ErrNoSurface is returned by NewContext when no surface is given.
	ErrNoSurface = errors.New("fctx: no surface")

	// ErrEmptySurface is returned when a surface or flag buffer would
	// have no pixels.
	ErrEmptySurface = errors.New("fctx: empty surface")

	// ErrUnsupportedFormat is returned when a rendering mode cannot be
	// used with the pixel format of a surface.
	ErrUnsupportedFormat = errors.New("fctx: unsupported pixel format")

	// ErrUnknownMode is returned for an invalid Mode value.
	ErrUnknownMode = errors.New("fctx: unknown rendering mode")

	// ErrSizeMismatch is returned when a rasterizer does not match the
	// size of the surface.
	ErrSizeMismatch = errors.New("fctx: rasterizer size does not match surface")

	// ErrClosed is returned by operations on a closed or nil Context.
	ErrClosed = errors.New("fctx: context is closed")

	// ErrBadCommand is wrapped by CommandError for unknown command codes.
	ErrBadCommand = errors.New("fctx: unknown path command")

	// ErrTruncated is returned when binary data ends in the middle of a
	// record.
	ErrTruncated = errors.New("fctx: truncated data")

	// ErrCorrupt is returned when the tables of a font or path record
	// are inconsistent.
	ErrCorrupt = errors.New("fctx: corrupt record")

	// ErrTooLarge is returned when data does not fit into the 16-bit
	// fields of the binary formats.
	ErrTooLarge = errors.New("fctx: data too large for record")
)

// CommandError reports a command stream which cannot be decoded.
// Err is either ErrBadCommand or ErrTruncated.
type CommandError struct {
	Offset int    // byte offset of the command code
	Code   uint16 // the command code, if it could be read
	Err    error
}

func (e *CommandError) Error() string {
	if errors.Is(e.Err, ErrBadCommand) {
		return fmt.Sprintf("fctx: unknown path command %#04x at offset %d", e.Code, e.Offset)
	}
	return fmt.Sprintf("fctx: command at offset %d: %v", e.Offset, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
