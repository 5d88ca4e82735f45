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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"seehuhn.de/go/pdfmerge"
	"seehuhn.de/go/pdfmerge/codec"
	"seehuhn.de/go/pdfmerge/codec/pagecopy"
	"seehuhn.de/go/pdfmerge/internal/buildinfo"
	"seehuhn.de/go/pdfmerge/internal/config"
	"seehuhn.de/go/pdfmerge/internal/logging"
	"seehuhn.de/go/pdfmerge/internal/profile"
)

const toolName = "pdfmerge"

// usageError reports invalid command line arguments or settings.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// run is the body of main.  Operating system resources are passed in, so
// that the tool can be tested without starting a new process.
func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) error {
	cfg := config.DefaultConfig()
	if err := cfg.FromEnv(getenv); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", toolName, err)
		return &usageError{err}
	}

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.Output, "o", cfg.Output, "output file `name` (default merged_pdf_<timestamp>.pdf)")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "same as -o")
	flags.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "print detailed progress information")
	flags.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "same as -v")
	flags.StringVar(&cfg.Backend, "backend", cfg.Backend,
		"PDF backend `name` ("+strings.Join(pdfmerge.CodecNames(), ", ")+")")
	flags.StringVar(&cfg.PDFVersion, "pdf-version", cfg.PDFVersion, "PDF `version` of the output file (pagecopy backend)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log `format` (text or json)")
	flags.BoolVar(&cfg.NoClobber, "no-clobber", cfg.NoClobber, "fail if the output file already exists")
	showVersion := flags.Bool("version", false, "print version information and exit")
	cpuprofile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flags.String("memprofile", "", "write memory profile to `file`")

	flags.Usage = func() {
		w := flags.Output()
		fmt.Fprintf(w, "%s: merge all PDF files in a directory\n", toolName)
		fmt.Fprintf(w, "%s\n\n", buildinfo.Short(toolName))
		fmt.Fprintf(w, "Usage:\n")
		fmt.Fprintf(w, "  %s [options] <input_dir>\n\n", toolName)
		fmt.Fprintf(w, "Arguments:\n")
		fmt.Fprintf(w, "  input_dir   directory containing the PDF files to merge\n\n")
		fmt.Fprintf(w, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(w, "\nEnvironment:\n")
		for _, name := range []string{
			config.EnvBackend, config.EnvPDFVersion, config.EnvLogFormat,
			config.EnvVerbose, config.EnvNoClobber,
		} {
			fmt.Fprintf(w, "  %s\n", name)
		}
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  %s scans\n", toolName)
		fmt.Fprintf(w, "  %s -o combined -v scans\n", toolName)
	}

	err := flags.Parse(args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return &usageError{err}
	}

	if *showVersion {
		fmt.Fprintln(stdout, buildinfo.Short(toolName))
		return nil
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return &usageError{errors.New("expected exactly one input directory")}
	}
	cfg.Dir = flags.Arg(0)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", toolName, err)
		return &usageError{err}
	}

	format, _ := logging.ParseFormat(cfg.LogFormat)
	logger := logging.New(stderr, format, cfg.Verbose)

	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		logger.Error("cannot start profiling", "err", err)
		return err
	}
	defer func() {
		if err := stop(); err != nil {
			logger.Warn("profiling failed", "err", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c, err := selectCodec(cfg)
	if err != nil {
		logger.Error("cannot select backend", "err", err)
		return err
	}

	if cfg.Verbose {
		logger.Debug("starting merge",
			"dir", cfg.Dir,
			"backend", c.Name(),
			"no_clobber", cfg.NoClobber)
	}

	res, err := pdfmerge.Merge(ctx, cfg.Dir, &pdfmerge.Options{
		Output:    cfg.Output,
		Verbose:   cfg.Verbose,
		Logger:    logger,
		Codec:     c,
		NoClobber: cfg.NoClobber,
	})
	if err != nil {
		reportError(ctx, logger, err)
		return err
	}

	fmt.Fprintln(stdout, res)
	return nil
}

// selectCodec returns the backend chosen in cfg.  The pagecopy backend is
// configured with the requested PDF version.
func selectCodec(cfg *config.Config) (codec.Codec, error) {
	if cfg.Backend == pagecopy.Name {
		v, err := cfg.Version()
		if err != nil {
			return nil, err
		}
		return pagecopy.New(v), nil
	}
	return pdfmerge.CodecByName(cfg.Backend)
}

// reportError writes a message for a failed merge to the log.
func reportError(ctx context.Context, logger *slog.Logger, err error) {
	if ctx.Err() != nil {
		logger.Error("operation cancelled by user")
		return
	}

	var e *pdfmerge.Error
	if !errors.As(err, &e) {
		logger.Error("unexpected error", "err", err)
		return
	}
	switch e.Kind {
	case pdfmerge.KindNoInputs:
		logger.Error(e.Error())
	case pdfmerge.KindMergeStep:
		logger.Error("error merging file", "file", e.File, "err", e.Err)
	default:
		logger.Error("merge failed", "err", e)
	}
}
