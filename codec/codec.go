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

// Package codec defines the PDF reading and writing capability needed to
// merge PDF files.
//
// A [Codec] creates [Accumulator] values.  An Accumulator collects the pages
// of several input files, in the order the files are appended, and
// serializes the combined document once all inputs have been added.
// Concrete implementations live in the sub-packages of this package.
package codec

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
)

// Codec gives access to one PDF implementation.
type Codec interface {
	// Name returns the short name used to select the codec,
	// for example on the command line.
	Name() string

	// NewAccumulator returns a new, empty output document.
	NewAccumulator() (Accumulator, error)

	// NumPages opens the named file and returns its number of pages.
	NumPages(path string) (int, error)
}

// Accumulator is an output document under construction.
//
// An Accumulator is owned by a single merge operation and must not be used
// concurrently.  Close must be called once the Accumulator is no longer
// needed, whether or not WriteTo was called.
type Accumulator interface {
	// Append opens the named file, appends all of its pages to the
	// document and returns the number of pages appended.  The input file is
	// closed before Append returns.
	Append(path string) (int, error)

	// WriteTo serializes the document to w.  After WriteTo has been called,
	// no more files can be appended.
	WriteTo(w io.Writer) (int64, error)

	// Close releases all resources held by the Accumulator.
	// Calling Close more than once has no effect.
	Close() error
}

var (
	// ErrClosed is returned when an Accumulator is used after Close.
	ErrClosed = errors.New("accumulator is closed")

	// ErrFinished is returned by Append after WriteTo has been called.
	ErrFinished = errors.New("document already written")

	// ErrEmpty is returned by WriteTo if no pages have been appended.
	ErrEmpty = errors.New("no pages in document")
)

// Registry maps codec names to codecs.
type Registry struct {
	mu     sync.Mutex
	codecs map[string]Codec
}

// Register adds c to the registry, replacing any codec with the same name.
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.codecs == nil {
		r.codecs = make(map[string]Codec)
	}
	r.codecs[c.Name()] = c
}

// Lookup returns the codec registered under the given name.
func (r *Registry) Lookup(name string) (Codec, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.codecs[name]
	if !ok {
		return nil, &UnknownCodecError{Name: name, Known: r.namesLocked()}
	}
	return c, nil
}

// Names returns the names of all registered codecs, in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// UnknownCodecError is returned by [Registry.Lookup] for names which have not
// been registered.
type UnknownCodecError struct {
	Name  string
	Known []string
}

func (err *UnknownCodecError) Error() string {
	return fmt.Sprintf("unknown PDF backend %q (available: %v)", err.Name, err.Known)
}
