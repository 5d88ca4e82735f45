// seehuhn.de/go/pdfmerge - merge a directory of PDF files into one
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

// Package xrefmerge implements a PDF merging backend based on pdfcpu.
//
// Every input file is read and validated into a pdfcpu context.  The first
// context becomes the output document, the cross-reference tables of all
// later inputs are merged into it.
package xrefmerge

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"seehuhn.de/go/pdfmerge/codec"
)

// Name is the name under which this backend is registered.
const Name = "xrefmerge"

var disableConfigDir sync.Once

// Codec creates accumulators which merge pdfcpu cross-reference tables.
type Codec struct {
	conf *model.Configuration
}

// New returns a Codec using relaxed validation.  Outlines of the inputs are
// not merged.
//
// pdfcpu normally keeps a configuration directory in the user's home
// directory.  This is switched off the first time New is called.
func New() *Codec {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	// MergeXRefTables needs an outline root in the destination otherwise.
	conf.CreateBookmarks = false
	return &Codec{conf: conf}
}

// Name implements the [codec.Codec] interface.
func (c *Codec) Name() string {
	return Name
}

// NumPages implements the [codec.Codec] interface.
func (c *Codec) NumPages(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return api.PageCount(bytes.NewReader(data), c.conf)
}

// NewAccumulator implements the [codec.Codec] interface.
func (c *Codec) NewAccumulator() (codec.Accumulator, error) {
	return &accumulator{codec: c}, nil
}

// readContext reads and validates a complete PDF file.  The file is read
// into memory, so that no file handle stays open after the call.
func (c *Codec) readContext(path string) (*model.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ctx, err := api.ReadContext(bytes.NewReader(data), c.conf)
	if err != nil {
		return nil, err
	}
	err = api.ValidateContext(ctx)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}

type accumulator struct {
	codec *Codec
	dest  *model.Context

	// out holds the serialized document once WriteTo has been called.
	out    []byte
	outErr error

	finished bool
	closed   bool
}

func (a *accumulator) Append(path string) (int, error) {
	if a.closed {
		return 0, codec.ErrClosed
	}
	if a.finished {
		return 0, codec.ErrFinished
	}

	ctx, err := a.codec.readContext(path)
	if err != nil {
		return 0, err
	}
	numPages := ctx.PageCount

	if a.dest == nil {
		a.dest = ctx
		return numPages, nil
	}

	err = pdfcpu.MergeXRefTables(filepath.Base(path), ctx, a.dest, false, false)
	if err != nil {
		return 0, err
	}
	return numPages, nil
}

func (a *accumulator) WriteTo(w io.Writer) (int64, error) {
	if a.closed {
		return 0, codec.ErrClosed
	}
	if a.dest == nil {
		return 0, codec.ErrEmpty
	}

	if !a.finished {
		a.finished = true
		a.out, a.outErr = serialize(a.dest)
	}
	if a.outErr != nil {
		return 0, a.outErr
	}
	return bytes.NewReader(a.out).WriteTo(w)
}

func serialize(ctx *model.Context) ([]byte, error) {
	err := api.OptimizeContext(ctx)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	err = api.WriteContext(ctx, buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *accumulator) Close() error {
	a.closed = true
	a.dest = nil
	a.out = nil
	return nil
}
