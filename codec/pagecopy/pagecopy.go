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

// Package pagecopy implements a PDF merging backend which copies page
// objects from the input files into a newly written output file.
//
// Only the pages and the objects they reference are copied.  Page
// annotations, including links and form widgets, are removed.  Document
// level structures of the inputs (outlines, named destinations, forms,
// metadata) are not carried over.
package pagecopy

import (
	"bytes"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/pdfmerge/codec"
)

// Name is the name under which this backend is registered.
const Name = "pagecopy"

// Codec creates accumulators which copy pages using seehuhn.de/go/pdf.
type Codec struct {
	version pdf.Version
}

// New returns a Codec which writes files using the given PDF version.
// If v is zero, PDF 1.7 is used.
func New(v pdf.Version) *Codec {
	if v == 0 {
		v = pdf.V1_7
	}
	return &Codec{version: v}
}

// Name implements the [codec.Codec] interface.
func (c *Codec) Name() string {
	return Name
}

// Version returns the PDF version used for output files.
func (c *Codec) Version() pdf.Version {
	return c.version
}

// NumPages implements the [codec.Codec] interface.
func (c *Codec) NumPages(path string) (int, error) {
	doc, err := pdf.Open(path, nil)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	return pagetree.NumPages(doc)
}

// NewAccumulator implements the [codec.Codec] interface.
//
// The output document is kept in memory until WriteTo is called.
func (c *Codec) NewAccumulator() (codec.Accumulator, error) {
	buf := &bytes.Buffer{}
	out, err := pdf.NewWriter(buf, c.version, nil)
	if err != nil {
		return nil, err
	}
	rm := pdf.NewResourceManager(out)

	a := &accumulator{
		buf:  buf,
		out:  out,
		rm:   rm,
		tree: pagetree.NewWriter(out, rm),
	}
	return a, nil
}

type accumulator struct {
	buf  *bytes.Buffer
	out  *pdf.Writer
	rm   *pdf.ResourceManager
	tree *pagetree.Writer

	numPages  int
	finished  bool
	finishErr error
	closed    bool
}

func (a *accumulator) Append(path string) (int, error) {
	if a.closed {
		return 0, codec.ErrClosed
	}
	if a.finished {
		return 0, codec.ErrFinished
	}

	doc, err := pdf.Open(path, nil)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	numPages, err := pagetree.NumPages(doc)
	if err != nil {
		return 0, err
	}

	copier := pdf.NewCopier(a.out, doc)
	for pageNo := range numPages {
		refIn, pageIn, err := pagetree.GetPage(doc, pageNo)
		if err != nil {
			return 0, err
		}

		// The page tree writer sets a new parent.  Annotations refer back
		// into the page tree of the input file and are dropped.
		delete(pageIn, "Parent")
		delete(pageIn, "Annots")

		pageOut, err := copier.CopyDict(pageIn)
		if err != nil {
			return 0, err
		}

		refOut := a.out.Alloc()
		if refIn != 0 {
			copier.Redirect(refIn, refOut)
		}

		err = a.tree.AppendPageDict(refOut, pageOut)
		if err != nil {
			return 0, err
		}
	}

	a.numPages += numPages
	return numPages, nil
}

func (a *accumulator) WriteTo(w io.Writer) (int64, error) {
	if a.closed {
		return 0, codec.ErrClosed
	}
	if !a.finished {
		if a.numPages == 0 {
			return 0, codec.ErrEmpty
		}
		a.finished = true
		a.finishErr = a.finish()
	}
	if a.finishErr != nil {
		return 0, a.finishErr
	}
	return bytes.NewReader(a.buf.Bytes()).WriteTo(w)
}

// finish writes the page tree and the file trailer into the buffer.
func (a *accumulator) finish() error {
	treeRef, err := a.tree.Close()
	if err != nil {
		return err
	}

	err = a.rm.Close()
	if err != nil {
		return err
	}

	a.out.GetMeta().Catalog.Pages = treeRef
	return a.out.Close()
}

func (a *accumulator) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	a.buf = nil
	a.out = nil
	a.rm = nil
	a.tree = nil
	return nil
}
