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

// Package config holds the settings of the pdfmerge command line tool.
//
// Settings are taken from built-in defaults, then from environment
// variables, and finally from command line flags.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdfmerge"
	"seehuhn.de/go/pdfmerge/internal/logging"
)

// Environment variables read by [Config.FromEnv].
const (
	EnvBackend    = "PDFMERGE_BACKEND"
	EnvPDFVersion = "PDFMERGE_PDF_VERSION"
	EnvLogFormat  = "PDFMERGE_LOG_FORMAT"
	EnvVerbose    = "PDFMERGE_VERBOSE"
	EnvNoClobber  = "PDFMERGE_NO_CLOBBER"
)

// Config holds the settings for one run of the tool.
type Config struct {
	// Dir is the directory containing the input files.
	Dir string

	// Output is the output file name, empty for a generated name.
	Output string

	// Backend is the name of the PDF backend.
	Backend string

	// PDFVersion is the PDF version written by the pagecopy backend.
	PDFVersion string

	// LogFormat is "text" or "json".
	LogFormat string

	Verbose   bool
	NoClobber bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Backend:    pdfmerge.DefaultCodec,
		PDFVersion: "1.7",
		LogFormat:  string(logging.FormatText),
	}
}

// FromEnv overrides settings with the values of the environment variables
// listed above.  Unset or empty variables are ignored.
func (c *Config) FromEnv(getenv func(string) string) error {
	if v := getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := getenv(EnvPDFVersion); v != "" {
		c.PDFVersion = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}

	var errs []error
	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{EnvVerbose, &c.Verbose},
		{EnvNoClobber, &c.NoClobber},
	} {
		v := getenv(b.name)
		if v == "" {
			continue
		}
		val, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid boolean %q", b.name, v))
			continue
		}
		*b.dst = val
	}
	return errors.Join(errs...)
}

// Validate checks that all settings have valid values.
func (c *Config) Validate() error {
	var errs []error
	if c.Dir == "" {
		errs = append(errs, errors.New("missing input directory"))
	}
	if !slices.Contains(pdfmerge.CodecNames(), c.Backend) {
		errs = append(errs, fmt.Errorf("unknown backend %q (available: %v)",
			c.Backend, pdfmerge.CodecNames()))
	}
	if _, err := c.Version(); err != nil {
		errs = append(errs, err)
	}
	if _, ok := logging.ParseFormat(c.LogFormat); !ok {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// Version returns the PDF version for output files.
func (c *Config) Version() (pdf.Version, error) {
	v, err := pdf.ParseVersion(c.PDFVersion)
	if err != nil {
		return 0, fmt.Errorf("invalid PDF version %q: %w", c.PDFVersion, err)
	}
	return v, nil
}
