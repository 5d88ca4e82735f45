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

package pdfmerge

import (
	"testing"
	"time"
)

func TestOutputName(t *testing.T) {
	now := time.Date(2024, 11, 23, 15, 30, 45, 0, time.UTC)

	cases := []struct {
		in, want string
	}{
		{"", "merged_pdf_20241123_153045.pdf"},
		{"report", "report.pdf"},
		{"report.pdf", "report.pdf"},
		{"report.PDF", "report.PDF"},
		{"report.Pdf", "report.Pdf"},
		{"report.txt", "report.txt.pdf"},
		{"report.pdf.bak", "report.pdf.bak.pdf"},
		{".pdf", ".pdf"},
	}
	for _, c := range cases {
		if got := OutputName(c.in, now); got != c.want {
			t.Errorf("OutputName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestOutputNameIdempotent(t *testing.T) {
	now := time.Now()
	for _, name := range []string{"", "a", "b.pdf", "C.PDF"} {
		once := OutputName(name, now)
		twice := OutputName(once, now)
		if once != twice {
			t.Errorf("%q: %q != %q", name, once, twice)
		}
	}
}
