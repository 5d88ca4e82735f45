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
	"errors"
	"fmt"
)

// Kind classifies the errors returned by this package.
type Kind int

// These are the possible error kinds.
const (
	// KindGeneric covers inaccessible input directories, failures writing
	// the output file and all unclassified failures.
	KindGeneric Kind = iota

	// KindNoInputs indicates that the input directory contains no PDF files.
	// Error.Dir names the directory.
	KindNoInputs

	// KindMergeStep indicates that one of the input files could not be
	// read or appended.  Error.File names the file, Error.Err holds the cause.
	KindMergeStep
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindNoInputs:
		return "no inputs"
	case KindMergeStep:
		return "merge step"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the error type returned by [Merge] and [ListPDFFiles].
// Use [KindOf] or errors.As to inspect it.
type Error struct {
	Kind Kind
	Msg  string

	// Dir is the input directory, for KindNoInputs.
	Dir string

	// File is the offending input file, for KindMergeStep.
	File string

	// Err is the underlying error, if any.
	Err error
}

func (err *Error) Error() string {
	if err.Msg != "" {
		return err.Msg
	}
	switch err.Kind {
	case KindNoInputs:
		return "no PDF files found in directory: " + err.Dir
	case KindMergeStep:
		return fmt.Sprintf("error merging file %s: %v", err.File, err.Err)
	}
	if err.Err != nil {
		return err.Err.Error()
	}
	return "pdfmerge: unknown error"
}

func (err *Error) Unwrap() error {
	return err.Err
}

// KindOf returns the kind of err.  Errors which do not wrap an [*Error]
// are reported as KindGeneric.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneric
}

func errorf(cause error, format string, args ...any) *Error {
	return &Error{
		Kind: KindGeneric,
		Msg:  fmt.Sprintf(format, args...),
		Err:  cause,
	}
}

func noInputs(dir string) *Error {
	return &Error{Kind: KindNoInputs, Dir: dir}
}

func mergeStep(file string, cause error) *Error {
	return &Error{Kind: KindMergeStep, File: file, Err: cause}
}

// asError makes sure that err is an [*Error].  Errors of other types are
// wrapped as KindGeneric.
func asError(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return errorf(err, "unexpected error: %v", err)
}
