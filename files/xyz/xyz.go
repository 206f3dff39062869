/*
 * xyz.go, part of gochemio.
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

//Package xyz reads and writes (multi-frame) XYZ files.
package xyz

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

const xyzFormat = "XYZ"

//Reader reads the frames of an XYZ file. A count line of the form "n BOHR"
//means the coordinates of that frame are in Bohr, they are converted to A.
type Reader struct {
	in  *chem.LineReader
	opt settings.IO
	log *zap.Logger
}

//NewReader returns a reader for the XYZ file in r.
func NewReader(r io.Reader, opts ...settings.Option) *Reader {
	return &Reader{in: chem.NewLineReader(r, xyzFormat), opt: settings.Apply(opts...), log: chem.Log().Named("xyz")}
}

//Close closes the underlying stream.
func (R *Reader) Close() error {
	return R.in.Close()
}

//ReadMolecule reads the next frame. It returns io.EOF when there are no more.
func (R *Reader) ReadMolecule() (*chem.AtomContainer, error) {
	var line string
	var err error
	for line == "" {
		if line, err = R.in.Next(); err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
	}
	f := chem.Tokenize(line)
	natoms, err := strconv.Atoi(f[0])
	if err != nil || natoms < 0 || len(f) > 2 {
		return nil, R.in.Errorf("ill formatted XYZ count line %q", line)
	}
	scale := 1.0
	if len(f) == 2 {
		if !strings.EqualFold(f[1], "BOHR") {
			return nil, R.in.Errorf("unknown unit %q in count line", f[1])
		}
		scale = chem.Bohr2A
	}
	title, err := R.in.Require("title line")
	if err != nil {
		return nil, err
	}
	mol := R.opt.Builder.NewAtomContainer()
	mol.SetTitle(strings.TrimSpace(title))
	for i := 0; i < natoms; i++ {
		line, err := R.in.Require("atom line")
		if err != nil {
			return nil, err
		}
		at, err := R.atom(line, scale)
		if err != nil {
			return nil, err
		}
		mol.AddAtom(at)
	}
	return mol, nil
}

//atom reads "symbol x y z [charge]". The symbol can also be an atomic number.
func (R *Reader) atom(line string, scale float64) (*chem.Atom, error) {
	fields := chem.Tokenize(line)
	if len(fields) < 4 {
		return nil, R.in.Errorf("atom line %q ill formed", line)
	}
	sym := chem.NormalizeSymbol(fields[0])
	if n, err := strconv.Atoi(fields[0]); err == nil {
		sym = chem.Symbol(n)
	}
	if !chem.IsElement(sym) {
		if R.opt.Mode == chem.Strict {
			return nil, R.in.Errorf("unknown element %q", fields[0])
		}
		R.log.Warn("unknown element", zap.String("symbol", fields[0]), zap.Int("line", R.in.LineNumber()))
		sym = fields[0]
	}
	var c [3]float64
	var err error
	for j := range c {
		if c[j], err = strconv.ParseFloat(fields[j+1], 64); err != nil {
			return nil, R.in.Errorf("bad coordinate %q", fields[j+1])
		}
	}
	at := R.opt.Builder.NewAtom(sym)
	at.Point3D = &r3.Vec{X: c[0] * scale, Y: c[1] * scale, Z: c[2] * scale}
	if len(fields) > 4 {
		if q, err := strconv.ParseFloat(fields[4], 64); err == nil {
			at.SetCharge(q)
		}
	}
	return at, nil
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
			return nil, chem.Decorate(err, xyzFormat, "ReadChemFile")
		}
		set := R.opt.Builder.NewAtomContainerSet()
		set.Add(mol)
		m := R.opt.Builder.NewChemModel()
		m.SetMoleculeSet(set)
		models = append(models, m)
	}
	if len(models) == 0 {
		return nil, chem.Errorf(xyzFormat, "empty XYZ file")
	}
	return chem.WrapModels(R.opt.Builder, models...), nil
}

//Writer writes each molecule it gets as one XYZ frame.
type Writer struct {
	out *chem.Sink
	opt settings.IO
	log *zap.Logger
}

//NewWriter returns a writer to w.
func NewWriter(w io.Writer, opts ...settings.Option) *Writer {
	return &Writer{out: chem.NewSink(w, xyzFormat), opt: settings.Apply(opts...), log: chem.Log().Named("xyz")}
}

//Accepts returns true for anything holding molecules.
func (W *Writer) Accepts(obj chem.Object) bool {
	return len(chem.ContainersOf(obj)) > 0
}

//Write writes the molecules in obj, one frame each. Atoms without 3D
//coordinates are written at their 2D position, or at the origin.
func (W *Writer) Write(obj chem.Object) error {
	mols := chem.ContainersOf(obj)
	if len(mols) == 0 {
		return chem.Errorf(xyzFormat, "nothing to write in %T", obj)
	}
	for _, mol := range mols {
		W.out.Printf("%d\n", mol.AtomCount())
		W.out.Line(strings.ReplaceAll(mol.Title(), "\n", " "))
		for _, at := range mol.Atoms {
			var c r3.Vec
			switch {
			case at.Point3D != nil:
				c = *at.Point3D
			case at.Point2D != nil:
				c = r3.Vec{X: at.Point2D.X, Y: at.Point2D.Y}
			default:
				W.log.Warn("atom without coordinates written at the origin", zap.String("symbol", at.Symbol))
			}
			W.out.Printf("%-2s %12.6f %12.6f %12.6f", at.Symbol, c.X, c.Y, c.Z)
			if at.Charge != nil {
				W.out.Printf(" %9.5f", *at.Charge)
			}
			W.out.Line("")
		}
	}
	return W.out.Flush()
}

//Close flushes and closes the underlying stream.
func (W *Writer) Close() error {
	return W.out.Close()
}
