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

// Package buildinfo reports the version of the running binary.
package buildinfo

import (
	"runtime/debug"
)

// Info describes the build of the running binary.
type Info struct {
	Module   string // main module path
	Version  string // module version, empty for development builds
	Revision string // VCS revision, shortened to 8 characters
	Dirty    bool   // the working tree had local modifications
}

// Read returns the build information of the running binary.
// If no build information is available, the zero Info is returned.
func Read() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}
	}
	return fromBuildInfo(bi)
}

func fromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{Module: bi.Main.Path}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	if len(info.Revision) > 8 {
		info.Revision = info.Revision[:8]
	}
	return info
}

// Short returns a one-line version string for a command line tool, e.g.
// "pdfmerge (seehuhn.de/go/pdfmerge v0.1.0)".
func Short(toolName string) string {
	return Read().short(toolName)
}

func (info Info) short(toolName string) string {
	if info.Version != "" {
		return toolName + " (" + info.Module + " " + info.Version + ")"
	}
	if info.Revision == "" {
		return toolName
	}
	rev := info.Revision
	if info.Dirty {
		rev += "+dirty"
	}
	return toolName + " (" + info.Module + " " + rev + ")"
}
