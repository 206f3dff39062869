/*
 * zmatrix.go, part of gochemio.
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

//Package zmatrix reads molecules given as Z-matrices. The internal
//coordinates are kept as they are, no Cartesian coordinates are computed.
package zmatrix

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const zmatFormat = "ZMatrix"

//PropEntry is the atom property holding the Entry of the atom.
const PropEntry = "zmatrix:entry"

//Entry is one row of a Z-matrix. References are 1-based indexes of earlier
//atoms, 0 when the row doesn't have that coordinate. Angles are in degrees.
type Entry struct {
	Symbol      string
	DistanceRef int
	Distance    float64
	AngleRef    int
	Angle       float64
	DihedralRef int
	Dihedral    float64
}

//Entries returns the Z-matrix rows of the atoms in mol. Atoms without one
//get a zero Entry with only the symbol set.
func Entries(mol *chem.AtomContainer) []Entry {
	ret := make([]Entry, mol.AtomCount())
	for i, at := range mol.Atoms {
		v, ok := at.Property(PropEntry)
		if e, isEntry := v.(Entry); ok && isEntry {
			ret[i] = e
			continue
		}
		ret[i] = Entry{Symbol: at.Symbol}
	}
	return ret
}

//Reader reads the frames of a Z-matrix file.
type Reader struct {
	in  *chem.LineReader
	opt settings.IO
	log *zap.Logger
}

//NewReader returns a reader for the Z-matrix file in r.
func NewReader(r io.Reader, opts ...settings.Option) *Reader {
	return &Reader{in: chem.NewLineReader(r, zmatFormat), opt: settings.Apply(opts...), log: chem.Log().Named("zmatrix")}
}

//Close closes the underlying stream.
func (R *Reader) Close() error {
	return R.in.Close()
}

//nextContent returns the next line that is neither blank nor a # comment.
func (R *Reader) nextContent() (string, error) {
	for {
		line, err := R.in.Next()
		if err != nil {
			return "", err
		}
		t := strings.TrimSpace(line)
		if t != "" && !strings.HasPrefix(t, "#") {
			return line, nil
		}
	}
}

//ReadMolecule reads the next frame. It returns io.EOF when there are no more.
func (R *Reader) ReadMolecule() (*chem.AtomContainer, error) {
	line, err := R.nextContent()
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return nil, R.in.Errorf("expected the number of atoms, found %q", line)
	}
	title, err := R.in.Require("title line")
	if err != nil {
		return nil, err
	}
	mol := R.opt.Builder.NewAtomContainer()
	mol.SetTitle(strings.TrimSpace(title))
	for i := 0; i < n; i++ {
		line, err := R.in.Require("Z-matrix row")
		if err != nil {
			return nil, err
		}
		e, err := R.row(line, i)
		if err != nil {
			return nil, err
		}
		at := R.opt.Builder.NewAtom(e.Symbol)
		at.SetProperty(PropEntry, e)
		mol.AddAtom(at)
	}
	return mol, nil
}

//row parses "symbol [ref dist [ref angle [ref dihedral]]]" for atom i (0-based).
//Row i must have min(i,3) coordinates, each referencing an earlier atom.
func (R *Reader) row(line string, i int) (Entry, error) {
	f := chem.Tokenize(line)
	want := i
	if want > 3 {
		want = 3
	}
	if len(f) < 1+2*want {
		return Entry{}, R.in.Errorf("row %d needs %d internal coordinates", i+1, want)
	}
	if len(f) > 1+2*want {
		if R.opt.Mode == chem.Strict {
			return Entry{}, R.in.Errorf("extra fields in row %d", i+1)
		}
		R.log.Warn("ignoring extra fields", zap.Int("row", i+1), zap.Strings("fields", f[1+2*want:]))
	}
	e := Entry{Symbol: chem.NormalizeSymbol(f[0])}
	refs := []*int{&e.DistanceRef, &e.AngleRef, &e.DihedralRef}
	vals := []*float64{&e.Distance, &e.Angle, &e.Dihedral}
	for k := 0; k < want; k++ {
		ref, err := strconv.Atoi(f[1+2*k])
		if err != nil || ref < 1 || ref > i {
			return Entry{}, R.in.Errorf("row %d references atom %q, which is not an earlier atom", i+1, f[1+2*k])
		}
		v, err := strconv.ParseFloat(f[2+2*k], 64)
		if err != nil {
			return Entry{}, R.in.Errorf("bad value %q in row %d", f[2+2*k], i+1)
		}
		*refs[k], *vals[k] = ref, v
	}
	return e, nil
}

//ReadChemFile reads every frame, each into its own model of a single sequence.
func (R *Reader) ReadChemFile() (*chem.ChemFile, error) {
	var models []*chem.ChemModel
	for {
		mol, err := R.ReadMolecule()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, chem.Decorate(err, zmatFormat, "ReadChemFile")
		}
		set := R.opt.Builder.NewAtomContainerSet()
		set.Add(mol)
		m := R.opt.Builder.NewChemModel()
		m.SetMoleculeSet(set)
		models = append(models, m)
	}
	if len(models) == 0 {
		return nil, chem.Errorf(zmatFormat, "no Z-matrix found")
	}
	return chem.WrapModels(R.opt.Builder, models...), nil
}
