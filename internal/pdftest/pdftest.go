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

// Package pdftest writes small PDF files for use in tests.
//
// Every generated page has height [Height] and a caller-chosen width, so
// that the order of pages in a merged file can be recovered by looking at
// the page widths.
package pdftest

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// Height is the height of all generated pages, in PDF units.
const Height = 792

// Bytes returns a complete PDF file with one page for every entry in widths.
func Bytes(widths ...int) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("%PDF-1.4\n%\x80\x80\x80\x80\n")

	// objects are numbered from 1 and written in order
	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	kids := make([]string, len(widths))
	for i := range widths {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(widths)))
	for _, w := range widths {
		writeObj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << >> >>",
			w, Height))
	}

	xrefPos := buf.Len()
	size := len(offsets) + 1
	fmt.Fprintf(buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for _, pos := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", pos)
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		size, xrefPos)

	return buf.Bytes()
}

// WriteFile writes a PDF file with one page per entry of widths to
// dir/name and returns the full path.
func WriteFile(t testing.TB, dir, name string, widths ...int) string {
	t.Helper()
	return write(t, dir, name, Bytes(widths...))
}

// WriteCorrupt writes a file which starts like a PDF file but cannot be
// parsed, and returns the full path.
func WriteCorrupt(t testing.TB, dir, name string) string {
	t.Helper()
	return write(t, dir, name, []byte("%PDF-1.4\nthis is not a PDF file\n"))
}

func write(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

// PageWidths opens the PDF file at path and returns the widths of its pages,
// in page order.
func PageWidths(t testing.TB, path string) []int {
	t.Helper()

	doc, err := pdf.Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	numPages, err := pagetree.NumPages(doc)
	if err != nil {
		t.Fatal(err)
	}

	widths := make([]int, numPages)
	for pageNo := range numPages {
		_, pageDict, err := pagetree.GetPage(doc, pageNo)
		if err != nil {
			t.Fatalf("page %d: %v", pageNo+1, err)
		}
		box, err := pdf.GetRectangle(doc, pageDict["MediaBox"])
		if err != nil {
			t.Fatalf("page %d: %v", pageNo+1, err)
		}
		if box == nil {
			t.Fatalf("page %d: missing MediaBox", pageNo+1)
		}
		widths[pageNo] = int(math.Round(box.URx - box.LLx))
	}
	return widths
}

// Files returns the names of all regular files in dir, sorted by name.
func Files(t testing.TB, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names
}
