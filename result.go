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

import "fmt"

// Result describes a completed merge.
type Result struct {
	// OutputPath is the path of the merged PDF file.
	OutputPath string

	// FilesMerged is the number of input files.
	FilesMerged int

	// TotalPages is the number of pages in the merged file.
	TotalPages int
}

func (r *Result) String() string {
	return fmt.Sprintf("merged %d files (%d pages) into %s",
		r.FilesMerged, r.TotalPages, r.OutputPath)
}
