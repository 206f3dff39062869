/*
 * constructors.go, part of gochemio.
 *
 *
 * Copyright 2026 The gochemio authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package registry

import (
	"io"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/files/cml"
	"github.com/rmera/gochemio/files/crystclust"
	"github.com/rmera/gochemio/files/ctx"
	"github.com/rmera/gochemio/files/gaussian"
	"github.com/rmera/gochemio/files/ghemical"
	"github.com/rmera/gochemio/files/hin"
	"github.com/rmera/gochemio/files/inchi"
	"github.com/rmera/gochemio/files/mdl"
	"github.com/rmera/gochemio/files/mol2"
	"github.com/rmera/gochemio/files/pdb"
	"github.com/rmera/gochemio/files/rss"
	"github.com/rmera/gochemio/files/shelx"
	"github.com/rmera/gochemio/files/xyz"
	"github.com/rmera/gochemio/files/zmatrix"
	"github.com/rmera/gochemio/settings"
)

//WriterConstructor builds a writer to w.
type WriterConstructor func(w io.Writer, opts ...settings.Option) chem.Writer

//ReaderConstructor builds a reader from r.
type ReaderConstructor func(r io.Reader, opts ...settings.Option) chem.Reader

//builtinWriters maps the WriterName of the formats to their constructors.
var builtinWriters = map[string]WriterConstructor{
	"mdl.RXNV2000Writer": func(w io.Writer, o ...settings.Option) chem.Writer { return mdl.NewRXNV2000Writer(w, o...) },
	"mdl.MolfileWriter":  func(w io.Writer, o ...settings.Option) chem.Writer { return mdl.NewMolfileWriter(w, o...) },
	"mdl.SDFWriter":      func(w io.Writer, o ...settings.Option) chem.Writer { return mdl.NewSDFWriter(w, o...) },
	"cml.Writer":         func(w io.Writer, o ...settings.Option) chem.Writer { return cml.NewWriter(w, o...) },
	"rss.Writer":         func(w io.Writer, o ...settings.Option) chem.Writer { return rss.NewWriter(w, o...) },
	"pdb.Writer":         func(w io.Writer, o ...settings.Option) chem.Writer { return pdb.NewWriter(w, o...) },
	"hin.Writer":         func(w io.Writer, o ...settings.Option) chem.Writer { return hin.NewWriter(w, o...) },
	"mol2.Writer":        func(w io.Writer, o ...settings.Option) chem.Writer { return mol2.NewWriter(w, o...) },
	"gaussian.Writer":    func(w io.Writer, o ...settings.Option) chem.Writer { return gaussian.NewWriter(w, o...) },
	"shelx.Writer":       func(w io.Writer, o ...settings.Option) chem.Writer { return shelx.NewWriter(w, o...) },
	"crystclust.Writer":  func(w io.Writer, o ...settings.Option) chem.Writer { return crystclust.NewWriter(w, o...) },
	"xyz.Writer":         func(w io.Writer, o ...settings.Option) chem.Writer { return xyz.NewWriter(w, o...) },
}

//builtinReaders maps the ReaderName of the formats to their constructors.
var builtinReaders = map[string]ReaderConstructor{
	"mdl.RXNV2000Reader":     func(r io.Reader, o ...settings.Option) chem.Reader { return mdl.NewRXNV2000Reader(r, o...) },
	"mdl.RXNV3000Reader":     func(r io.Reader, o ...settings.Option) chem.Reader { return mdl.NewRXNV3000Reader(r, o...) },
	"mdl.MolfileReader":      func(r io.Reader, o ...settings.Option) chem.Reader { return mdl.NewMolfileReader(r, o...) },
	"mdl.MolfileV3000Reader": func(r io.Reader, o ...settings.Option) chem.Reader { return mdl.NewMolfileV3000Reader(r, o...) },
	"hin.Reader":             func(r io.Reader, o ...settings.Option) chem.Reader { return hin.NewReader(r, o...) },
	"inchi.Reader":           func(r io.Reader, o ...settings.Option) chem.Reader { return inchi.NewReader(r, o...) },
	"inchi.XMLReader":        func(r io.Reader, o ...settings.Option) chem.Reader { return inchi.NewXMLReader(r, o...) },
	"zmatrix.Reader":         func(r io.Reader, o ...settings.Option) chem.Reader { return zmatrix.NewReader(r, o...) },
	"crystclust.Reader":      func(r io.Reader, o ...settings.Option) chem.Reader { return crystclust.NewReader(r, o...) },
	"ctx.Reader":             func(r io.Reader, o ...settings.Option) chem.Reader { return ctx.NewReader(r, o...) },
	"ghemical.Reader":        func(r io.Reader, o ...settings.Option) chem.Reader { return ghemical.NewReader(r, o...) },
	"xyz.Reader":             func(r io.Reader, o ...settings.Option) chem.Reader { return xyz.NewReader(r, o...) },
}
