/*
 * shelx.go, part of gochemio.
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

//Package shelx writes crystals as ShelX (.res/.ins) files.
package shelx

import (
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const shelxFormat = "ShelX"

//The ShelX writer doesn't know the experiment, so it writes Cu K-alpha and
//a fixed uncertainty for every cell parameter.
const (
	wavelength = 1.54184
	cellError  = 0.01
	uiso       = 0.05
)

//Writer writes a crystal: TITL, CELL, ZERR, LATT, SFAC and UNIT records,
//then one line per atom with fractional coordinates, then END.
type Writer struct {
	out *chem.Sink
	opt settings.IO
	log *zap.Logger
}

//NewWriter returns a writer to w.
func NewWriter(w io.Writer, opts ...settings.Option) *Writer {
	return &Writer{out: chem.NewSink(w, shelxFormat), opt: settings.Apply(opts...), log: chem.Log().Named("shelx")}
}

//Accepts returns true for crystals, and for models or files holding one.
func (W *Writer) Accepts(obj chem.Object) bool {
	return chem.CrystalOf(obj) != nil
}

//Write writes the crystal in obj.
func (W *Writer) Write(obj chem.Object) error {
	cr := chem.CrystalOf(obj)
	if cr == nil {
		return chem.Errorf(shelxFormat, "only crystals can be written, got %T", obj)
	}
	title := strings.ReplaceAll(cr.Title(), "\n", " ")
	if title == "" {
		title = chem.FormulaString(&cr.AtomContainer)
	}
	la, lb, lc, alpha, beta, gamma := chem.CellParameters(cr.A, cr.B, cr.C)
	z := cr.Z
	if z == 0 {
		z = 1
	}
	W.out.Printf("TITL %s\n", title)
	W.out.Printf("CELL %7.5f %9.5f %9.5f %9.5f %8.4f %8.4f %8.4f\n", wavelength, la, lb, lc, alpha, beta, gamma)
	W.out.Printf("ZERR %d %9.5f %9.5f %9.5f %8.4f %8.4f %8.4f\n", z, cellError, cellError, cellError, cellError, cellError, cellError)
	W.out.Line("LATT -1")
	formula := chem.MolecularFormula(&cr.AtomContainer)
	sfac := make(map[string]int, len(formula))
	var syms, units []string
	for i, e := range formula {
		sfac[e.Symbol] = i + 1
		syms = append(syms, e.Symbol)
		units = append(units, strconv.Itoa(e.Count*z))
	}
	W.out.Printf("SFAC %s\n", strings.Join(syms, " "))
	W.out.Printf("UNIT %s\n", strings.Join(units, " "))
	perElement := make(map[string]int)
	for _, at := range cr.Atoms {
		f, ok, err := cr.FractionalPoint(at)
		if err != nil {
			return chem.NewError(shelxFormat, "can't get fractional coordinates", err)
		}
		if !ok {
			W.log.Warn("atom without coordinates written at the origin", zap.String("symbol", at.Symbol))
		}
		perElement[at.Symbol]++
		label := at.ID
		if label == "" || len(label) > 4 {
			label = at.Symbol + strconv.Itoa(perElement[at.Symbol])
		}
		W.out.Printf("%-4s %3d %10.5f %10.5f %10.5f %9.5f %8.5f\n", label, sfac[at.Symbol], f.X, f.Y, f.Z, 11.0, uiso)
	}
	W.out.Line("END")
	return W.out.Flush()
}

//Close flushes and closes the underlying stream.
func (W *Writer) Close() error {
	return W.out.Close()
}
