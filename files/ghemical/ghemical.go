/*
 * ghemical.go, part of gochemio.
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

//Package ghemical reads the molecular mechanics files (.gpr) of Ghemical.
package ghemical

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

const ghemicalFormat = "Ghemical MM"

//Reader reads one molecule from a Ghemical MM file. The atoms, bonds,
//coordinates and charges blocks are staged, and the molecule is built when
//the !End line is found.
type Reader struct {
	in  *chem.LineReader
	opt settings.IO
	log *zap.Logger

	numbers []int
	coords  []r3.Vec
	charges []float64
	hasQ    bool
	bonds   []stagedBond
}

type stagedBond struct {
	a1, a2 int
	order  string
}

//NewReader returns a reader for the Ghemical MM file in r.
func NewReader(r io.Reader, opts ...settings.Option) *Reader {
	return &Reader{in: chem.NewLineReader(r, ghemicalFormat), opt: settings.Apply(opts...), log: chem.Log().Named("ghemical")}
}

//Close closes the underlying stream.
func (R *Reader) Close() error {
	return R.in.Close()
}

//count returns the number after the keyword of a block line, i.e. "!Atoms 3".
func count(line string) (int, error) {
	f := chem.Tokenize(line)
	if len(f) < 2 {
		return 0, errors.New("missing count")
	}
	n, err := strconv.Atoi(f[1])
	if err == nil && n < 0 {
		err = errors.New("negative count")
	}
	return n, err
}

//ReadMolecule reads the molecule in the file.
func (R *Reader) ReadMolecule() (*chem.AtomContainer, error) {
	mol, err := R.read()
	if err != nil {
		return nil, chem.Decorate(err, ghemicalFormat, "ReadMolecule")
	}
	return mol, nil
}

func (R *Reader) read() (*chem.AtomContainer, error) {
	header := false
	for {
		line, err := R.in.Next()
		if errors.Is(err, io.EOF) {
			return nil, chem.Errorf(ghemicalFormat, "end of file before !End")
		}
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(line, "!") {
			continue
		}
		f := chem.Tokenize(line)
		keyword := f[0]
		if !header && keyword != "!Header" {
			return nil, R.in.Errorf("expected !Header, got %q", line)
		}
		switch keyword {
		case "!Header":
			header = true
		case "!Info":
			//nothing we use
		case "!Atoms":
			err = R.atoms(line)
		case "!Bonds":
			err = R.bondBlock(line)
		case "!Coord":
			err = R.coordinates()
		case "!Charges":
			err = R.chargeBlock()
		case "!End":
			return R.assemble()
		default:
			if R.opt.Mode == chem.Strict {
				return nil, R.in.Errorf("unknown block %q", keyword)
			}
			R.log.Warn("skipping unknown Ghemical block", zap.String("block", keyword))
		}
		if err != nil {
			return nil, err
		}
	}
}

//atoms reads "index atomic_number" lines.
func (R *Reader) atoms(line string) error {
	n, err := count(line)
	if err != nil {
		return R.in.Errorf("bad !Atoms line %q", line)
	}
	R.numbers = make([]int, n)
	R.coords = make([]r3.Vec, n)
	R.charges = make([]float64, n)
	for i := 0; i < n; i++ {
		l, err := R.in.Require("!Atoms block")
		if err != nil {
			return err
		}
		idx, z, err := R.indexed(l, 2)
		if err != nil {
			return err
		}
		R.numbers[idx], err = strconv.Atoi(z[0])
		if err != nil {
			return R.in.Errorf("bad atomic number in %q", l)
		}
	}
	return nil
}

//indexed parses a line starting with a 0-based atom index, and returns the
//index and the next n-1 fields.
func (R *Reader) indexed(line string, n int) (int, []string, error) {
	f := chem.Tokenize(line)
	if len(f) < n {
		return 0, nil, R.in.Errorf("expected %d fields in %q", n, line)
	}
	idx, err := strconv.Atoi(f[0])
	if err != nil || idx < 0 || idx >= len(R.numbers) {
		return 0, nil, R.in.Errorf("bad atom index in %q", line)
	}
	return idx, f[1:n], nil
}

//bondBlock reads "atom1 atom2 order" lines, where the order is one of S, D, T or C.
func (R *Reader) bondBlock(line string) error {
	n, err := count(line)
	if err != nil {
		return R.in.Errorf("bad !Bonds line %q", line)
	}
	R.bonds = make([]stagedBond, 0, n)
	for i := 0; i < n; i++ {
		l, err := R.in.Require("!Bonds block")
		if err != nil {
			return err
		}
		a1, rest, err := R.indexed(l, 3)
		if err != nil {
			return err
		}
		a2, err := strconv.Atoi(rest[0])
		if err != nil || a2 < 0 || a2 >= len(R.numbers) {
			return R.in.Errorf("bad atom index in %q", l)
		}
		R.bonds = append(R.bonds, stagedBond{a1, a2, rest[1]})
	}
	return nil
}

//coordinates reads one "index x y z" line per atom.
func (R *Reader) coordinates() error {
	for i := 0; i < len(R.numbers); i++ {
		l, err := R.in.Require("!Coord block")
		if err != nil {
			return err
		}
		idx, f, err := R.indexed(l, 4)
		if err != nil {
			return err
		}
		var v [3]float64
		for j := range v {
			if v[j], err = strconv.ParseFloat(f[j], 64); err != nil {
				return R.in.Errorf("bad coordinates in %q", l)
			}
		}
		R.coords[idx] = r3.Scale(chem.Nm2A, r3.Vec{X: v[0], Y: v[1], Z: v[2]}) //Ghemical stores nm
	}
	return nil
}

//chargeBlock reads one "index charge" line per atom.
func (R *Reader) chargeBlock() error {
	for i := 0; i < len(R.numbers); i++ {
		l, err := R.in.Require("!Charges block")
		if err != nil {
			return err
		}
		idx, f, err := R.indexed(l, 2)
		if err != nil {
			return err
		}
		if R.charges[idx], err = strconv.ParseFloat(f[0], 64); err != nil {
			return R.in.Errorf("bad charge in %q", l)
		}
	}
	R.hasQ = true
	return nil
}

func (R *Reader) assemble() (*chem.AtomContainer, error) {
	mol := R.opt.Builder.NewAtomContainer()
	for i, z := range R.numbers {
		sym := chem.Symbol(z)
		if sym == "" {
			return nil, chem.Errorf(ghemicalFormat, "atom %d has unknown atomic number %d", i, z)
		}
		at := R.opt.Builder.NewAtom(sym)
		p := R.coords[i]
		at.Point3D = &p
		if R.hasQ {
			at.SetCharge(R.charges[i])
		}
		mol.AddAtom(at)
	}
	for _, b := range R.bonds {
		bond := R.opt.Builder.NewBond(mol.Atom(b.a1), mol.Atom(b.a2), chem.OrderUnset)
		switch b.order {
		case "S":
			bond.Order = chem.Single
		case "D":
			bond.Order = chem.Double
		case "T":
			bond.Order = chem.Triple
		case "C":
			//conjugated
			bond.Aromatic = true
		default:
			return nil, chem.Errorf(ghemicalFormat, "unknown bond type %q", b.order)
		}
		if err := mol.AddBond(bond); err != nil {
			return nil, err
		}
	}
	return mol, nil
}

//ReadChemFile reads the molecule and wraps it in a ChemFile.
func (R *Reader) ReadChemFile() (*chem.ChemFile, error) {
	mol, err := R.ReadMolecule()
	if err != nil {
		return nil, err
	}
	return chem.WrapContainers(R.opt.Builder, mol), nil
}
