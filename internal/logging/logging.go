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

// Package logging sets up the slog handlers used by the command line tool.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// TimeFormat is the format of time stamps in text output.
const TimeFormat = "2006-01-02 15:04:05"

// Format selects the output format of a handler.
type Format string

// These are the supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures [NewHandler].
type Options struct {
	Level  slog.Leveler
	Format Format

	// NoColor disables colored output even if the output is a terminal.
	NoColor bool
}

// NewHandler returns a handler writing to w.
//
// Text output uses colors if w is a terminal.  A nil opt is equivalent to
// text output at level Info.
func NewHandler(w io.Writer, opt *Options) slog.Handler {
	if opt == nil {
		opt = &Options{}
	}
	level := opt.Level
	if level == nil {
		level = slog.LevelInfo
	}

	if opt.Format == FormatJSON {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: TimeFormat,
		NoColor:    opt.NoColor || !IsTerminal(w),
	})
}

// New returns a logger writing to w.  Verbose loggers include debug
// records.
func New(w io.Writer, format Format, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(NewHandler(w, &Options{Level: level, Format: format}))
}

// IsTerminal reports whether w is a terminal.  This includes the pseudo
// terminals used by Cygwin and MSYS2 on Windows.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

// ParseFormat converts a format name into a [Format].
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatText, "":
		return FormatText, true
	case FormatJSON:
		return FormatJSON, true
	}
	return "", false
}
