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

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestTextHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, FormatText, false)

	logger.Debug("hidden")
	logger.Info("merge complete", "files", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record in non-verbose output: %q", out)
	}
	if !strings.Contains(out, "merge complete") || !strings.Contains(out, "files=3") {
		t.Errorf("unexpected output %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colors used for a non-terminal: %q", out)
	}
}

func TestVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, FormatText, true)
	logger.Debug("processing file", "file", "a.pdf")

	if !strings.Contains(buf.String(), "file=a.pdf") {
		t.Errorf("debug record missing: %q", buf.String())
	}
}

func TestJSONHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	h := NewHandler(buf, &Options{Format: FormatJSON, Level: slog.LevelWarn})
	logger := slog.New(h)

	logger.Info("dropped")
	logger.Error("no PDF files found", "dir", "/tmp/x")

	var rec map[string]any
	err := json.Unmarshal(buf.Bytes(), &rec)
	if err != nil {
		t.Fatalf("%v: %q", err, buf.String())
	}
	if rec["msg"] != "no PDF files found" || rec["dir"] != "/tmp/x" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"", FormatText, true},
		{"text", FormatText, true},
		{"json", FormatJSON, true},
		{"xml", "", false},
	}
	for _, c := range cases {
		got, ok := ParseFormat(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseFormat(%q) = %q, %t", c.in, got, ok)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("buffer reported as terminal")
	}
}
