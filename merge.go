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
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"seehuhn.de/go/pdfmerge/codec"
)

// Options controls the behaviour of [Merge].
// The zero value is ready to use.
type Options struct {
	// Output is the file name of the merged file, relative to the input
	// directory.  See [OutputName] for how the name is completed.
	Output string

	// Verbose enables a log record for every input file and a summary
	// record at the end.
	Verbose bool

	// Logger receives the log records.  If this is nil, no records are
	// written.
	Logger *slog.Logger

	// Codec is the PDF backend.  If this is nil, the backend named by
	// [DefaultCodec] is used.
	Codec codec.Codec

	// NoClobber makes Merge fail if the output file already exists.
	NoClobber bool

	// Now returns the current time, for generated output names.
	// If this is nil, time.Now is used.
	Now func() time.Time
}

// Merge combines all PDF files in dir, as listed by [ListPDFFiles], into a
// single PDF file inside dir.
//
// The files are processed one at a time.  If any input file cannot be
// read, Merge stops and returns an [*Error] of kind KindMergeStep naming
// the file; in this case no output file is created.  All errors returned
// by Merge are of type [*Error].
//
// Cancelling ctx stops the merge before the next input file is read.
func Merge(ctx context.Context, dir string, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{}
	}
	res, err := opt.merge(ctx, dir)
	if err != nil {
		return nil, asError(err)
	}
	return res, nil
}

func (opt *Options) merge(ctx context.Context, dir string) (res *Result, err error) {
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	now := time.Now
	if opt.Now != nil {
		now = opt.Now
	}
	outputPath := filepath.Join(dir, OutputName(opt.Output, now()))

	files, err := ListPDFFiles(dir)
	if err != nil {
		return nil, err
	}
	files = withoutFile(files, outputPath)
	if len(files) == 0 {
		return nil, noInputs(dir)
	}

	if opt.NoClobber {
		if _, err := os.Lstat(outputPath); err == nil {
			return nil, errorf(fs.ErrExist, "output file %s already exists", outputPath)
		}
	}

	c := opt.Codec
	if c == nil {
		c, err = CodecByName(DefaultCodec)
		if err != nil {
			return nil, err
		}
	}

	acc, err := c.NewAccumulator()
	if err != nil {
		return nil, errorf(err, "cannot start %s document: %v", c.Name(), err)
	}
	defer func() {
		closeErr := acc.Close()
		if err == nil && closeErr != nil {
			res = nil
			err = errorf(closeErr, "error releasing %s document: %v", c.Name(), closeErr)
		}
	}()

	totalPages := 0
	for i, file := range files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errorf(ctxErr, "merge interrupted: %v", ctxErr)
		}

		if opt.Verbose {
			logger.Debug("processing file",
				"file", filepath.Base(file),
				"index", i+1,
				"count", len(files))
		}

		numPages, err := appendFile(acc, file)
		if err != nil {
			return nil, mergeStep(file, err)
		}
		totalPages += numPages
	}

	err = writeOutput(acc, dir, outputPath, opt.NoClobber)
	if err != nil {
		return nil, errorf(err, "error writing %s: %v", outputPath, err)
	}

	res = &Result{
		OutputPath:  outputPath,
		FilesMerged: len(files),
		TotalPages:  totalPages,
	}
	if opt.Verbose {
		logger.Info("merge complete",
			"files", res.FilesMerged,
			"pages", res.TotalPages,
			"output", filepath.Base(outputPath))
	}
	return res, nil
}

// appendFile adds one input file to the accumulator.  Panics inside the
// PDF backend are turned into errors.
func appendFile(acc codec.Accumulator, file string) (numPages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			numPages = 0
			err = fmt.Errorf("panic while reading PDF: %v", r)
		}
	}()
	return acc.Append(file)
}

// writeOutput serializes the accumulator into a temporary file next to the
// output file, and then renames the temporary file into place.
func writeOutput(acc codec.Accumulator, dir, outputPath string, noClobber bool) (err error) {
	tmp, err := os.CreateTemp(dir, ".pdfmerge-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	_, err = serialize(acc, tmp)
	if err != nil {
		return err
	}
	err = tmp.Sync()
	if err != nil {
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	err = os.Chmod(tmpName, 0o644)
	if err != nil {
		return err
	}

	if noClobber {
		// The output file may have appeared while the inputs were read.
		if _, statErr := os.Lstat(outputPath); statErr == nil {
			return fs.ErrExist
		}
	}
	return os.Rename(tmpName, outputPath)
}

func serialize(acc codec.Accumulator, f *os.File) (n int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			n = 0
			err = fmt.Errorf("panic while writing PDF: %v", r)
		}
	}()
	return acc.WriteTo(f)
}

// withoutFile removes the given path from files.
func withoutFile(files []string, path string) []string {
	res := files[:0:0]
	for _, file := range files {
		if sameFile(file, path) {
			continue
		}
		res = append(res, file)
	}
	return res
}

func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}
