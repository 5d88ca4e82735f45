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

// Package pdfmerge combines all PDF files in a directory into one PDF file.
//
// The input files are the files directly inside the directory whose names
// end in ".pdf".  They are merged in alphabetical order, ignoring case, and
// the result is written into the same directory:
//
//	res, err := pdfmerge.Merge(ctx, "scans", &pdfmerge.Options{
//	    Output: "all-scans",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res) // merged 3 files (12 pages) into scans/all-scans.pdf
//
// All errors returned by [Merge] and [ListPDFFiles] are of type [*Error].
// The Kind field tells the three possible failure classes apart:
//
//	switch pdfmerge.KindOf(err) {
//	case pdfmerge.KindNoInputs:
//	    ... the directory contains no PDF files ...
//	case pdfmerge.KindMergeStep:
//	    ... one of the input files is damaged or unreadable ...
//	default:
//	    ... bad directory, output not writable, or other failure ...
//	}
//
// PDF files are read and written by a backend from the [codec] package
// tree.  By default, pages are copied using seehuhn.de/go/pdf.
package pdfmerge
