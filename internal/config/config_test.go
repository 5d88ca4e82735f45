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

package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdf"
)

func env(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	c.Dir = "."
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}

	v, err := c.Version()
	if err != nil {
		t.Fatal(err)
	}
	if v != pdf.V1_7 {
		t.Errorf("default version %s", v)
	}
}

func TestFromEnv(t *testing.T) {
	c := DefaultConfig()
	err := c.FromEnv(env(map[string]string{
		EnvBackend:    "xrefmerge",
		EnvPDFVersion: "2.0",
		EnvLogFormat:  "json",
		EnvVerbose:    "true",
		EnvNoClobber:  "1",
	}))
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		Backend:    "xrefmerge",
		PDFVersion: "2.0",
		LogFormat:  "json",
		Verbose:    true,
		NoClobber:  true,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("wrong config (-want +got):\n%s", diff)
	}
}

func TestFromEnvEmpty(t *testing.T) {
	c := DefaultConfig()
	if err := c.FromEnv(env(nil)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), c); diff != "" {
		t.Errorf("config changed (-want +got):\n%s", diff)
	}
}

func TestFromEnvBadBool(t *testing.T) {
	c := DefaultConfig()
	err := c.FromEnv(env(map[string]string{EnvVerbose: "sometimes"}))
	if err == nil || !strings.Contains(err.Error(), EnvVerbose) {
		t.Errorf("got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		modify func(*Config)
		want   string
	}{
		{func(c *Config) { c.Dir = "" }, "missing input directory"},
		{func(c *Config) { c.Backend = "ghostscript" }, `unknown backend "ghostscript"`},
		{func(c *Config) { c.PDFVersion = "9.9" }, `invalid PDF version "9.9"`},
		{func(c *Config) { c.LogFormat = "xml" }, `unknown log format "xml"`},
	}
	for _, tc := range cases {
		c := DefaultConfig()
		c.Dir = "."
		tc.modify(c)
		err := c.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("expected error containing %q, got %v", tc.want, err)
		}
	}
}
