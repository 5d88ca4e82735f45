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

package pagecopy

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdfmerge/codec"
	"seehuhn.de/go/pdfmerge/internal/pdftest"
)

func TestAppendAndWrite(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		pdftest.WriteFile(t, dir, "a.pdf", 101),
		pdftest.WriteFile(t, dir, "b.pdf", 202, 203),
		pdftest.WriteFile(t, dir, "c.pdf", 304),
	}

	c := New(0)
	acc, err := c.NewAccumulator()
	if err != nil {
		t.Fatal(err)
	}
	defer acc.Close()

	var pageCounts []int
	for _, path := range inputs {
		n, err := acc.Append(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		pageCounts = append(pageCounts, n)
	}
	if diff := cmp.Diff([]int{1, 2, 1}, pageCounts); diff != "" {
		t.Errorf("wrong page counts (-want +got):\n%s", diff)
	}

	buf := &bytes.Buffer{}
	n, err := acc.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}

	outPath := filepath.Join(dir, "out.pdf")
	err = os.WriteFile(outPath, buf.Bytes(), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	numPages, err := c.NumPages(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if numPages != 4 {
		t.Errorf("output has %d pages, want 4", numPages)
	}

	got := pdftest.PageWidths(t, outPath)
	if diff := cmp.Diff([]int{101, 202, 203, 304}, got); diff != "" {
		t.Errorf("wrong page order (-want +got):\n%s", diff)
	}

	// a second call produces the same bytes
	buf2 := &bytes.Buffer{}
	_, err = acc.WriteTo(buf2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), buf2.Bytes()) {
		t.Error("repeated WriteTo produced different output")
	}

	_, err = acc.Append(inputs[0])
	if !errors.Is(err, codec.ErrFinished) {
		t.Errorf("Append after WriteTo: got %v, want %v", err, codec.ErrFinished)
	}
}

func TestAppendCorrupt(t *testing.T) {
	dir := t.TempDir()
	bad := pdftest.WriteCorrupt(t, dir, "bad.pdf")

	acc, err := New(pdf.V1_7).NewAccumulator()
	if err != nil {
		t.Fatal(err)
	}
	defer acc.Close()

	_, err = acc.Append(bad)
	if err == nil {
		t.Error("corrupt file was accepted")
	}

	_, err = acc.Append(filepath.Join(dir, "missing.pdf"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestEmpty(t *testing.T) {
	acc, err := New(0).NewAccumulator()
	if err != nil {
		t.Fatal(err)
	}
	defer acc.Close()

	_, err = acc.WriteTo(&bytes.Buffer{})
	if !errors.Is(err, codec.ErrEmpty) {
		t.Errorf("got %v, want %v", err, codec.ErrEmpty)
	}
}

func TestClose(t *testing.T) {
	dir := t.TempDir()
	path := pdftest.WriteFile(t, dir, "a.pdf", 100)

	acc, err := New(0).NewAccumulator()
	if err != nil {
		t.Fatal(err)
	}
	err = acc.Close()
	if err != nil {
		t.Fatal(err)
	}
	err = acc.Close()
	if err != nil {
		t.Errorf("second Close: %v", err)
	}

	_, err = acc.Append(path)
	if !errors.Is(err, codec.ErrClosed) {
		t.Errorf("Append: got %v, want %v", err, codec.ErrClosed)
	}
	_, err = acc.WriteTo(&bytes.Buffer{})
	if !errors.Is(err, codec.ErrClosed) {
		t.Errorf("WriteTo: got %v, want %v", err, codec.ErrClosed)
	}
}

func TestVersion(t *testing.T) {
	if v := New(0).Version(); v != pdf.V1_7 {
		t.Errorf("default version %s", v)
	}
	if v := New(pdf.V2_0).Version(); v != pdf.V2_0 {
		t.Errorf("got version %s", v)
	}
}
