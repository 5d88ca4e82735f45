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

// Pdfmerge merges all PDF files in a directory into a single PDF file.
//
// The input files are merged in alphabetical order, ignoring case.  The
// output file is written into the input directory.
//
// Usage:
//
//	pdfmerge [options] <input_dir>
//
// Run "pdfmerge -help" for the list of options.
package main

import (
	"context"
	"errors"
	"os"
)

func main() {
	ctx := context.Background()
	err := run(ctx, os.Args, os.Getenv, os.Stdout, os.Stderr)
	os.Exit(exitCode(err))
}

// exitCode maps the result of run to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var uErr *usageError
	if errors.As(err, &uErr) {
		return 2
	}
	return 1
}
