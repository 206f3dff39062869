/*
 * reader.go, part of gochemio.
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

//Package hin reads and writes HyperChem HIN files.
package hin

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const hinFormat = "HIN"

//Reader reads every molecule in a HIN file.
type Reader struct {
	in  *chem.LineReader
	opt settings.IO
	log *zap.Logger
}

//NewReader returns a reader for the HIN file in r.
func NewReader(r io.Reader, opts ...settings.Option) *Reader {
	return &Reader{in: chem.NewLineReader(r, hinFormat), opt: settings.Apply(opts...), log: chem.Log().Named("hin")}
}

//Close closes the underlying stream.
func (R *Reader) Close() error {
	return R.in.Close()
}

//a bond seen from one of its atoms, resolved at endmol.
type pendingBond struct {
	from, to int //1-based, within the molecule
	kind     string
}

//ReadChemFile reads all the molecules in the file into one molecule set.
//Any read error is returned, there are no partial results.
func (R *Reader) ReadChemFile() (*chem.ChemFile, error) {
	mols, err := R.read()
	if err != nil {
		return nil, chem.Decorate(err, hinFormat, "ReadChemFile")
	}
	return chem.WrapContainers(R.opt.Builder, mols...), nil
}

func (R *Reader) read() ([]*chem.AtomContainer, error) {
	var mols []*chem.AtomContainer
	var aromatic [][]string
	var mol *chem.AtomContainer
	var pending []pendingBond
	for {
		line, err := R.in.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		f := chem.Tokenize(line)
		switch f[0] {
		case "mol":
			if mol != nil {
				return nil, R.in.Errorf("mol inside another molecule")
			}
			mol = R.opt.Builder.NewAtomContainer()
			pending = pending[:0]
			if len(f) > 2 {
				mol.SetTitle(strings.Trim(strings.Join(f[2:], " "), `"`))
			}
		case "atom":
			if mol == nil {
				return nil, R.in.Errorf("atom outside a molecule")
			}
			bonds, err := R.atom(f, mol)
			if err != nil {
				return nil, err
			}
			pending = append(pending, bonds...)
		case "endmol":
			if mol == nil {
				return nil, R.in.Errorf("endmol without mol")
			}
			if err := R.resolve(mol, pending); err != nil {
				return nil, err
			}
			mols = append(mols, mol)
			mol = nil
		case "aromaticring":
			aromatic = append(aromatic, f)
		default:
			if R.opt.Mode == chem.Strict && mol != nil {
				return nil, R.in.Errorf("unknown record %q inside a molecule", f[0])
			}
			R.log.Debug("skipping HIN record", zap.String("record", f[0]))
		}
	}
	if mol != nil {
		return nil, chem.Errorf(hinFormat, "end of file before endmol")
	}
	if len(mols) == 0 {
		return nil, chem.Errorf(hinFormat, "no molecule found")
	}
	for _, ring := range aromatic {
		if err := applyAromaticRing(ring, mols); err != nil {
			return nil, R.in.Errorf("%s", err.Error())
		}
	}
	return mols, nil
}

//atom reads "atom n name symbol type flags charge x y z nbonds [partner kind]...".
func (R *Reader) atom(f []string, mol *chem.AtomContainer) ([]pendingBond, error) {
	if len(f) < 11 {
		return nil, R.in.Errorf("atom record with %d fields, at least 11 needed", len(f))
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n != mol.AtomCount()+1 {
		return nil, R.in.Errorf("atom number %q out of sequence", f[1])
	}
	at := R.opt.Builder.NewAtom(f[3])
	if f[4] != "**" && f[4] != "-" {
		at.AtomTypeName = f[4]
	}
	var v [4]float64
	for i := range v {
		if v[i], err = strconv.ParseFloat(f[6+i], 64); err != nil {
			return nil, R.in.Errorf("bad number %q in atom record", f[6+i])
		}
	}
	at.SetCharge(v[0])
	at.Point3D = &r3.Vec{X: v[1], Y: v[2], Z: v[3]}
	nb, err := strconv.Atoi(f[10])
	if err != nil || len(f) < 11+2*nb {
		return nil, R.in.Errorf("bad bond list in atom record %d", n)
	}
	var ret []pendingBond
	for i := 0; i < nb; i++ {
		to, err := strconv.Atoi(f[11+2*i])
		if err != nil {
			return nil, R.in.Errorf("bad bond partner %q", f[11+2*i])
		}
		ret = append(ret, pendingBond{n, to, f[12+2*i]})
	}
	mol.AddAtom(at)
	return ret, nil
}

//resolve creates the bonds of a molecule, each listed from both atoms.
func (R *Reader) resolve(mol *chem.AtomContainer, pending []pendingBond) error {
	for _, p := range pending {
		if p.to < 1 || p.to > mol.AtomCount() {
			return R.in.Errorf("bond from atom %d to missing atom %d", p.from, p.to)
		}
		a1, a2 := mol.Atom(p.from-1), mol.Atom(p.to-1)
		if mol.Bond(a1, a2) != nil {
			continue
		}
		b := R.opt.Builder.NewBond(a1, a2, chem.OrderUnset)
		switch p.kind {
		case "s":
			b.Order = chem.Single
		case "d":
			b.Order = chem.Double
		case "t":
			b.Order = chem.Triple
		case "a":
			b.Aromatic = true
		default:
			return R.in.Errorf("unknown bond type %q", p.kind)
		}
		if err := mol.AddBond(b); err != nil {
			return err
		}
	}
	return nil
}

//applyAromaticRing handles "aromaticring n mol1 atom1 ... moln atomn": the
//atoms and the bonds around the ring are aromatic.
func applyAromaticRing(f []string, mols []*chem.AtomContainer) error {
	if len(f) < 2 {
		return errors.New("empty aromaticring record")
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n < 0 || len(f) < 2+2*n {
		return errors.New("malformed aromaticring record")
	}
	ring := make([]*chem.Atom, n)
	var mol *chem.AtomContainer
	for i := 0; i < n; i++ {
		m, err1 := strconv.Atoi(f[2+2*i])
		a, err2 := strconv.Atoi(f[3+2*i])
		if err1 != nil || err2 != nil || m < 1 || m > len(mols) || a < 1 || a > mols[m-1].AtomCount() {
			return errors.New("aromaticring references a missing atom")
		}
		mol = mols[m-1]
		ring[i] = mol.Atom(a - 1)
		ring[i].Aromatic = true
	}
	for i := range ring {
		if b := mol.Bond(ring[i], ring[(i+1)%n]); b != nil {
			b.Aromatic = true
		}
	}
	return nil
}
