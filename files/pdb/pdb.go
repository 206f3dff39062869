/*
 * pdb.go, part of gochemio.
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

//Package pdb writes molecules and crystals as PDB files.
package pdb

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const pdbFormat = "PDB"

//Writer writes PDB files. Atoms are written as HETATM records of a residue
//named MOL, bonds as CONECT records. Crystals get a CRYST1 record.
type Writer struct {
	out *chem.Sink
	opt settings.IO
	log *zap.Logger
}

//NewWriter returns a writer to w.
func NewWriter(w io.Writer, opts ...settings.Option) *Writer {
	return &Writer{out: chem.NewSink(w, pdbFormat), opt: settings.Apply(opts...), log: chem.Log().Named("pdb")}
}

//Accepts returns true for molecules, molecule sets, crystals, models and files.
func (W *Writer) Accepts(obj chem.Object) bool {
	return len(chem.ContainersOf(obj)) > 0
}

//Write writes obj. More than one molecule are written as MODEL/ENDMDL blocks.
func (W *Writer) Write(obj chem.Object) error {
	mols := chem.ContainersOf(obj)
	if len(mols) == 0 {
		return chem.Errorf(pdbFormat, "nothing to write in %T", obj)
	}
	W.out.Line("REMARK   1 WRITTEN WITH " + strings.ToUpper(W.opt.Settings.Program))
	cryst := chem.CrystalOf(obj)
	if cryst != nil {
		la, lb, lc, alpha, beta, gamma := chem.CellParameters(cryst.A, cryst.B, cryst.C)
		sg := cryst.SpaceGroup
		if sg == "" {
			sg = "P 1"
		}
		z := cryst.Z
		if z == 0 {
			z = 1
		}
		W.out.Printf("CRYST1%9.3f%9.3f%9.3f%7.2f%7.2f%7.2f %-11s%4d\n", la, lb, lc, alpha, beta, gamma, sg, z)
	}
	for j, mol := range mols {
		if t := mol.Title(); t != "" {
			W.out.Printf("COMPND    %s\n", truncate(t, 70))
		}
		if len(mols) > 1 {
			W.out.Printf("MODEL     %4d\n", j+1)
		}
		if err := W.atoms(mol, cryst); err != nil {
			return err
		}
		W.conect(mol)
		if len(mols) > 1 {
			W.out.Line("ENDMDL")
		}
	}
	W.out.Line("END")
	return W.out.Flush()
}

func (W *Writer) atoms(mol *chem.AtomContainer, cryst *chem.Crystal) error {
	for i, at := range mol.Atoms {
		c, ok := W.position(at, cryst)
		if !ok {
			W.log.Warn("atom without coordinates written at the origin", zap.Int("serial", i+1))
		}
		name := at.ID
		if name == "" || len(name) > 4 {
			name = at.Symbol
		}
		//4-character names start at column 13, shorter ones at 14.
		if len(name) < 4 {
			name = " " + name
		}
		W.out.Printf("%-6s%5d %-4s %3s %1c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%s\n",
			"HETATM", i+1, name, "MOL", ' ', 1, c.X, c.Y, c.Z, 1.0, 0.0, strings.ToUpper(at.Symbol), charge(at.FormalCharge))
	}
	return W.out.Err()
}

func (W *Writer) position(at *chem.Atom, cryst *chem.Crystal) (r3.Vec, bool) {
	if cryst != nil {
		return cryst.CartesianPoint(at)
	}
	switch {
	case at.Point3D != nil:
		return *at.Point3D, true
	case at.Point2D != nil:
		return r3.Vec{X: at.Point2D.X, Y: at.Point2D.Y}, true
	}
	return r3.Vec{}, false
}

//conect writes one CONECT record per bonded atom, with at most 4 partners
//per record. Multiple bonds are not repeated.
func (W *Writer) conect(mol *chem.AtomContainer) {
	for i, at := range mol.Atoms {
		var partners []int
		for _, b := range mol.ConnectedBonds(at) {
			if len(b.Atoms) != 2 {
				continue
			}
			partners = append(partners, mol.IndexOf(b.Other(at))+1)
		}
		for len(partners) > 0 {
			n := len(partners)
			if n > 4 {
				n = 4
			}
			W.out.Printf("CONECT%5d", i+1)
			for _, p := range partners[:n] {
				W.out.Printf("%5d", p)
			}
			W.out.Line("")
			partners = partners[n:]
		}
	}
}

//charge returns the PDB charge columns ("2+", "1-") or "".
func charge(q int) string {
	switch {
	case q > 0:
		return string(rune('0'+q%10)) + "+"
	case q < 0:
		return string(rune('0'-q%10)) + "-"
	}
	return ""
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > n {
		return s[:n]
	}
	return s
}

//Close flushes and closes the underlying stream.
func (W *Writer) Close() error {
	return W.out.Close()
}
