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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"
)

// Path is a stored command stream.  The record format is a 16-bit
// little-endian byte count followed by the stream.
type Path struct {
	data []byte
}

// NewPath wraps a command stream.  The stream is copied.
func NewPath(commands []byte) *Path {
	return &Path{data: slices.Clone(commands)}
}

// LoadPath parses a path record.  Bytes after the end of the record are
// ignored.
func LoadPath(data []byte) (*Path, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("path header: %w", ErrTruncated)
	}
	n := int(binary.LittleEndian.Uint16(data))
	if len(data)-2 < n {
		return nil, fmt.Errorf("path data: %w", ErrTruncated)
	}
	Logger().Debug("fctx: path loaded", "bytes", n)
	return &Path{data: slices.Clone(data[2 : 2+n])}, nil
}

// ReadPath reads a path record from r.
func ReadPath(r io.Reader) (*Path, error) {
	var hdr [2]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("path header: %w", truncated(err))
	}
	n := int(binary.LittleEndian.Uint16(hdr[:]))
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("path data: %w", truncated(err))
	}
	return &Path{data: data}, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// Commands returns the command stream.  The returned slice must not be
// modified.
func (p *Path) Commands() []byte {
	return p.data
}

// Validate checks that the command stream can be decoded completely.
func (p *Path) Validate() error {
	return DecodeCommands(p.data, func(Segment) bool { return true })
}

// MarshalBinary encodes p in the path record format.
func (p *Path) MarshalBinary() ([]byte, error) {
	if len(p.data) > maxRecordLength {
		return nil, fmt.Errorf("%w: path of %d bytes", ErrTooLarge, len(p.data))
	}
	buf := make([]byte, 0, 2+len(p.data))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(p.data)))
	return append(buf, p.data...), nil
}

// DrawPathRecord draws the command stream of p, shifted by advance.
func (c *Context) DrawPathRecord(advance Point, p *Path) error {
	if p == nil {
		return nil
	}
	return c.DrawCommands(advance, p.data)
}
