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
	"strings"
	"time"
)

const (
	// DefaultPrefix is the start of generated output file names.
	DefaultPrefix = "merged_pdf_"

	// TimestampLayout is the time layout used in generated output file names.
	TimestampLayout = "20060102_150405"

	pdfExt = ".pdf"
)

// OutputName returns the file name of the merged PDF file.
//
// If name is empty, a name of the form merged_pdf_YYYYMMDD_HHMMSS.pdf is
// generated from now.  If name does not end in ".pdf" (in any case), the
// extension is appended.
func OutputName(name string, now time.Time) string {
	if name == "" {
		return DefaultPrefix + now.Format(TimestampLayout) + pdfExt
	}
	if !strings.HasSuffix(strings.ToLower(name), pdfExt) {
		name += pdfExt
	}
	return name
}
