/*
 * mol2.go, part of gochemio.
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

//Package mol2 writes Tripos Mol2 files.
package mol2

import (
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const mol2Format = "Mol2"

//Writer writes each molecule as a MOLECULE, ATOM and BOND record set.
type Writer struct {
	out *chem.Sink
	opt settings.IO
	log *zap.Logger
}

//NewWriter returns a writer to w.
func NewWriter(w io.Writer, opts ...settings.Option) *Writer {
	return &Writer{out: chem.NewSink(w, mol2Format), opt: settings.Apply(opts...), log: chem.Log().Named("mol2")}
}

//Accepts returns true for anything holding molecules.
func (W *Writer) Accepts(obj chem.Object) bool {
	return len(chem.ContainersOf(obj)) > 0
}

//Write writes all the molecules in obj.
func (W *Writer) Write(obj chem.Object) error {
	mols := chem.ContainersOf(obj)
	if len(mols) == 0 {
		return chem.Errorf(mol2Format, "nothing to write in %T", obj)
	}
	for _, mol := range mols {
		if err := W.molecule(mol); err != nil {
			return err
		}
	}
	return W.out.Flush()
}

func (W *Writer) molecule(mol *chem.AtomContainer) error {
	title := strings.TrimSpace(strings.ReplaceAll(mol.Title(), "\n", " "))
	if title == "" {
		title = "*****"
	}
	charges := "NO_CHARGES"
	for _, at := range mol.Atoms {
		if at.Charge != nil {
			charges = "USER_CHARGES"
			break
		}
	}
	W.out.Line("@<TRIPOS>MOLECULE")
	W.out.Line(title)
	W.out.Printf("%5d %5d %5d %5d %5d\n", mol.AtomCount(), mol.BondCount(), 1, 0, 0)
	W.out.Line("SMALL")
	W.out.Line(charges)
	W.out.Line("")
	W.out.Line("@<TRIPOS>ATOM")
	for i, at := range mol.Atoms {
		var c r3.Vec
		switch {
		case at.Point3D != nil:
			c = *at.Point3D
		case at.Point2D != nil:
			c = r3.Vec{X: at.Point2D.X, Y: at.Point2D.Y}
		}
		W.out.Printf("%7d %-8s %10.4f %10.4f %10.4f %-6s %4d %-8s %9.4f\n",
			i+1, atomName(at, i), c.X, c.Y, c.Z, atomType(at), 1, "MOL", at.PartialCharge())
	}
	W.out.Line("@<TRIPOS>BOND")
	for i, b := range mol.Bonds {
		if len(b.Atoms) != 2 {
			W.log.Warn("skipping bond with more than 2 atoms", zap.Int("bond", i+1))
			continue
		}
		W.out.Printf("%6d %5d %5d %-4s\n", i+1, mol.IndexOf(b.Begin())+1, mol.IndexOf(b.End())+1, bondType(b))
	}
	return W.out.Err()
}

func atomName(at *chem.Atom, i int) string {
	if at.ID != "" && !strings.ContainsAny(at.ID, " \t") {
		return at.ID
	}
	return at.Symbol + strconv.Itoa(i+1)
}

//atomType returns the Sybyl type if the atom has one that looks like it,
//the element symbol otherwise.
func atomType(at *chem.Atom) string {
	if t := at.AtomTypeName; t != "" && strings.HasPrefix(t, at.Symbol) {
		return t
	}
	if at.Aromatic && (at.Symbol == "C" || at.Symbol == "N") {
		return at.Symbol + ".ar"
	}
	return at.Symbol
}

func bondType(b *chem.Bond) string {
	if b.Aromatic {
		return "ar"
	}
	switch b.Order {
	case chem.Single:
		return "1"
	case chem.Double:
		return "2"
	case chem.Triple:
		return "3"
	}
	return "un"
}

//Close flushes and closes the underlying stream.
func (W *Writer) Close() error {
	return W.out.Close()
}
