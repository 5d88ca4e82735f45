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
	"seehuhn.de/go/pdfmerge/codec"
	"seehuhn.de/go/pdfmerge/codec/pagecopy"
	"seehuhn.de/go/pdfmerge/codec/xrefmerge"
)

// DefaultCodec is the name of the backend used when Options.Codec is nil.
const DefaultCodec = pagecopy.Name

var codecs codec.Registry

func init() {
	codecs.Register(pagecopy.New(0))
	codecs.Register(xrefmerge.New())
}

// CodecByName returns the registered PDF backend with the given name.
func CodecByName(name string) (codec.Codec, error) {
	return codecs.Lookup(name)
}

// CodecNames returns the names of all registered PDF backends.
func CodecNames() []string {
	return codecs.Names()
}
