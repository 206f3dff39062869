/*
 * writer.go, part of gochemio.
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

package hin

import (
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

//Writer writes molecules as HIN files.
type Writer struct {
	out *chem.Sink
	opt settings.IO
	n   int
}

//NewWriter returns a writer to w.
func NewWriter(w io.Writer, opts ...settings.Option) *Writer {
	return &Writer{out: chem.NewSink(w, hinFormat), opt: settings.Apply(opts...)}
}


//Accepts returns true for molecules, molecule sets and files.
func (W *Writer) Accepts(obj chem.Object) bool {
	return len(chem.ContainersOf(obj)) > 0
}

func bondKind(b *chem.Bond) string {
	if b.Aromatic {
		return "a"
	}
	switch b.Order {
	case chem.Double:
		return "d"
	case chem.Triple:
		return "t"
	}
	return "s"
}

//Write writes each molecule in obj as a mol ... endmol block.
func (W *Writer) Write(obj chem.Object) error {
	mols := chem.ContainersOf(obj)
	if len(mols) == 0 {
		return chem.Errorf(hinFormat, "nothing to write in %T", obj)
	}
	if W.n == 0 {
		W.out.Line("forcefield mm+")
	}
	for _, mol := range mols {
		W.n++
		W.out.Printf("mol %d \"%s\"\n", W.n, mol.Title())
		for i, at := range mol.Atoms {
			var p [3]float64
			if at.Point3D != nil {
				p = [3]float64{at.Point3D.X, at.Point3D.Y, at.Point3D.Z}
			} else if at.Point2D != nil {
				p = [3]float64{at.Point2D.X, at.Point2D.Y, 0}
			}
			typ := at.AtomTypeName
			if typ == "" {
				typ = "**"
			}
			var bonds strings.Builder
			cb := mol.ConnectedBonds(at)
			for _, b := range cb {
				fmt.Fprintf(&bonds, " %d %s", mol.IndexOf(b.Other(at))+1, bondKind(b))
			}
			W.out.Printf("atom %d - %s %s - %.5f %.5f %.5f %.5f %d%s\n",
				i+1, at.Symbol, typ, at.PartialCharge(), p[0], p[1], p[2], len(cb), bonds.String())
		}
		W.out.Printf("endmol %d\n", W.n)
	}
	return W.out.Flush()
}

//Close flushes and closes the underlying stream.
func (W *Writer) Close() error {
	return W.out.Close()
}
