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
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Pattern is the file name pattern used to find PDF files.
const Pattern = "*.pdf"

// ListPDFFiles returns the PDF files directly inside dir.
//
// A file is included if its name matches [Pattern].  On Windows and macOS,
// where file systems ignore case, the match ignores case as well.
// Sub-directories are neither included nor searched.
//
// The returned paths are sorted by file name, ignoring case.
// If no PDF files are found, an [*Error] of kind KindNoInputs is returned.
func ListPDFFiles(dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return nil, errorf(err, "not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errorf(err, "error accessing directory %s: %v", dir, err)
	}

	type candidate struct {
		name string
		key  string
	}
	fold := cases.Fold()
	var found []candidate
	for _, e := range entries {
		name := e.Name()
		if !matchPDF(name) {
			continue
		}
		path := filepath.Join(dir, name)
		if isDir(e, path) {
			continue
		}
		found = append(found, candidate{
			name: name,
			key:  fold.String(norm.NFC.String(name)),
		})
	}
	if len(found) == 0 {
		return nil, noInputs(dir)
	}

	slices.SortFunc(found, func(a, b candidate) int {
		if c := strings.Compare(a.key, b.key); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})

	res := make([]string, len(found))
	for i, c := range found {
		res[i] = filepath.Join(dir, c.name)
	}
	return res, nil
}

func matchPDF(name string) bool {
	if caseInsensitiveFS {
		name = strings.ToLower(name)
	}
	ok, _ := filepath.Match(Pattern, name)
	return ok
}

var caseInsensitiveFS = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

// isDir reports whether a directory entry is a directory,
// following symbolic links.
func isDir(e os.DirEntry, path string) bool {
	if e.Type()&os.ModeSymlink == 0 {
		return e.IsDir()
	}
	fi, err := os.Stat(path)
	if err != nil {
		// dangling links are reported as merge errors later
		return false
	}
	return fi.IsDir()
}
