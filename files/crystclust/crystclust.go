/*
 * crystclust.go, part of gochemio.
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

//Package crystclust reads and writes CrystClust files: a sequence of frames,
//each holding one crystal.
//
//A frame is laid out one value per line:
//
//	frame: n
//	space group
//	a.x a.y a.z b.x b.y b.z c.x c.y c.z   (9 lines)
//	number of atoms
//	Z
//	symbol:charge x y z                   (4 lines per atom, Cartesian)
package crystclust

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const ccFormat = "CrystClust"

//Reader reads the frames of a CrystClust file.
type Reader struct {
	in  *chem.LineReader
	opt settings.IO
	log *zap.Logger
}

//NewReader returns a reader for the CrystClust file in r.
func NewReader(r io.Reader, opts ...settings.Option) *Reader {
	return &Reader{in: chem.NewLineReader(r, ccFormat), opt: settings.Apply(opts...), log: chem.Log().Named("crystclust")}
}

//Close closes the underlying stream.
func (R *Reader) Close() error {
	return R.in.Close()
}

func (R *Reader) number(what string) (float64, error) {
	line, err := R.in.Require(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, R.in.Errorf("expected %s, found %q", what, line)
	}
	return v, nil
}

func (R *Reader) integer(what string) (int, error) {
	line, err := R.in.Require(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, R.in.Errorf("expected %s, found %q", what, line)
	}
	return v, nil
}

func (R *Reader) vec(what string) (r3.Vec, error) {
	var v [3]float64
	var err error
	for i := range v {
		if v[i], err = R.number(what); err != nil {
			return r3.Vec{}, err
		}
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

//ReadCrystal reads the next frame. It returns io.EOF when there are no more.
func (R *Reader) ReadCrystal() (*chem.Crystal, error) {
	var line string
	var err error
	for strings.TrimSpace(line) == "" {
		if line, err = R.in.Next(); err != nil {
			return nil, err
		}
	}
	if !strings.HasPrefix(strings.TrimSpace(line), "frame:") {
		return nil, R.in.Errorf("expected a frame: line, found %q", line)
	}
	cr := R.opt.Builder.NewCrystal()
	cr.SetProperty(chem.PropComment, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "frame:")))
	sg, err := R.in.Require("space group")
	if err != nil {
		return nil, err
	}
	cr.SpaceGroup = strings.TrimSpace(sg)
	axes := []*r3.Vec{&cr.A, &cr.B, &cr.C}
	for i, ax := range axes {
		if *ax, err = R.vec(fmt.Sprintf("axis %c", 'a'+i)); err != nil {
			return nil, err
		}
	}
	n, err := R.integer("number of atoms")
	if err != nil {
		return nil, err
	}
	if cr.Z, err = R.integer("Z"); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		label, err := R.in.Require("atom label")
		if err != nil {
			return nil, err
		}
		sym, q, hasQ := strings.Cut(strings.TrimSpace(label), ":")
		at := R.opt.Builder.NewAtom(sym)
		if hasQ {
			c, err := strconv.ParseFloat(q, 64)
			if err != nil {
				return nil, R.in.Errorf("bad charge in %q", label)
			}
			at.SetCharge(c)
		}
		p, err := R.vec("atom coordinate")
		if err != nil {
			return nil, err
		}
		at.Point3D = &p
		cr.AddAtom(at)
	}
	return cr, nil
}

//ReadChemFile reads every frame, each crystal into its own model.
func (R *Reader) ReadChemFile() (*chem.ChemFile, error) {
	var models []*chem.ChemModel
	for {
		cr, err := R.ReadCrystal()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, chem.Decorate(err, ccFormat, "ReadChemFile")
		}
		m := R.opt.Builder.NewChemModel()
		m.SetCrystal(cr)
		models = append(models, m)
	}
	if len(models) == 0 {
		return nil, chem.Errorf(ccFormat, "no frame found")
	}
	return chem.WrapModels(R.opt.Builder, models...), nil
}

//Writer writes crystals as CrystClust frames, numbered from 1.
type Writer struct {
	out   *chem.Sink
	opt   settings.IO
	log   *zap.Logger
	frame int
}

//NewWriter returns a writer to w.
func NewWriter(w io.Writer, opts ...settings.Option) *Writer {
	return &Writer{out: chem.NewSink(w, ccFormat), opt: settings.Apply(opts...), log: chem.Log().Named("crystclust")}
}

func crystals(obj chem.Object) []*chem.Crystal {
	switch o := obj.(type) {
	case *chem.Crystal:
		return []*chem.Crystal{o}
	case *chem.ChemModel:
		if c := o.Crystal(); c != nil {
			return []*chem.Crystal{c}
		}
	case *chem.ChemFile:
		var ret []*chem.Crystal
		for _, m := range o.Models() {
			if c := m.Crystal(); c != nil {
				ret = append(ret, c)
			}
		}
		return ret
	}
	return nil
}

//Accepts returns true for crystals, and models or files holding them.
func (W *Writer) Accepts(obj chem.Object) bool {
	return len(crystals(obj)) > 0
}

//Write writes every crystal in obj as a frame.
func (W *Writer) Write(obj chem.Object) error {
	crs := crystals(obj)
	if len(crs) == 0 {
		return chem.Errorf(ccFormat, "only crystals can be written, got %T", obj)
	}
	for _, cr := range crs {
		W.frame++
		W.out.Printf("frame: %d\n", W.frame)
		sg := cr.SpaceGroup
		if sg == "" {
			sg = "P 1"
		}
		W.out.Line(sg)
		for _, ax := range []r3.Vec{cr.A, cr.B, cr.C} {
			W.out.Printf("%.6f\n%.6f\n%.6f\n", ax.X, ax.Y, ax.Z)
		}
		W.out.Printf("%d\n%d\n", cr.AtomCount(), cr.Z)
		for _, at := range cr.Atoms {
			p, ok := cr.CartesianPoint(at)
			if !ok {
				W.log.Warn("atom without coordinates written at the origin", zap.String("symbol", at.Symbol))
			}
			W.out.Printf("%s:%.6f\n%.6f\n%.6f\n%.6f\n", at.Symbol, at.PartialCharge(), p.X, p.Y, p.Z)
		}
	}
	return W.out.Flush()
}

//Close flushes and closes the underlying stream.
func (W *Writer) Close() error {
	return W.out.Close()
}
