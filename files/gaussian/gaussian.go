/*
 * gaussian.go, part of gochemio.
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

//Package gaussian writes Gaussian input files for a molecule, with the
//calculation taken from the Gaussian section of the settings.
package gaussian

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const gaussianFormat = "Gaussian Input"

//PropMultiplicity is the molecule property that sets the spin multiplicity.
//Without it, closed shell (1) or doublet (2) is used, depending on the
//number of electrons.
const PropMultiplicity = "gaussian:Multiplicity"

//Writer writes Gaussian input. Only molecules with 3D (or 2D) coordinates
//can be written.
type Writer struct {
	out *chem.Sink
	opt settings.IO
	log *zap.Logger
}

//NewWriter returns a writer to w.
func NewWriter(w io.Writer, opts ...settings.Option) *Writer {
	return &Writer{out: chem.NewSink(w, gaussianFormat), opt: settings.Apply(opts...), log: chem.Log().Named("gaussian")}
}

//Accepts returns true for single molecules, or anything holding exactly one.
func (W *Writer) Accepts(obj chem.Object) bool {
	return len(chem.ContainersOf(obj)) == 1
}

//Multiplicity returns the multiplicity of mol: the PropMultiplicity property
//if set, otherwise 1 for an even number of electrons and 2 for an odd one.
func Multiplicity(mol *chem.AtomContainer) int {
	if m, ok := mol.IntProperty(PropMultiplicity); ok && m > 0 {
		return m
	}
	electrons := -mol.TotalFormalCharge()
	for _, at := range mol.Atoms {
		electrons += at.AtomicNumber
	}
	if electrons%2 != 0 {
		return 2
	}
	return 1
}

//Route returns the route line for the given settings, i.e. "# b3lyp/6-31g opt".
func Route(g settings.Gaussian) string {
	route := "#"
	switch {
	case g.Method != "" && g.Basis != "":
		route += " " + g.Method + "/" + g.Basis
	case g.Method != "":
		route += " " + g.Method
	}
	if g.Command != "" {
		route += " " + g.Command
	}
	return route
}

//Write writes the molecule in obj.
func (W *Writer) Write(obj chem.Object) error {
	mols := chem.ContainersOf(obj)
	if len(mols) != 1 {
		return chem.Errorf(gaussianFormat, "exactly one molecule can be written, got %d", len(mols))
	}
	mol := mols[0]
	if !mol.Has3D() && !mol.Has2D() {
		return chem.Errorf(gaussianFormat, "molecule has no coordinates")
	}
	g := W.opt.Settings.Gaussian
	if g.Method == "" {
		return chem.Errorf(gaussianFormat, "no method given")
	}
	if g.Memory != "" {
		W.out.Printf("%%mem=%s\n", g.Memory)
	}
	if g.ProcShared > 0 {
		W.out.Printf("%%nprocshared=%d\n", g.ProcShared)
	}
	W.out.Line(Route(g))
	W.out.Line("")
	title := g.Comment
	if title == "" {
		title = strings.TrimSpace(strings.ReplaceAll(mol.Title(), "\n", " "))
	}
	if title == "" {
		title = fmt.Sprintf("%s written by %s", chem.FormulaString(mol), W.opt.Settings.Program)
	}
	W.out.Line(title)
	W.out.Line("")
	W.out.Printf("%d %d\n", mol.TotalFormalCharge(), Multiplicity(mol))
	use3D := mol.Has3D()
	for _, at := range mol.Atoms {
		var x, y, z float64
		switch {
		case use3D && at.Point3D != nil:
			x, y, z = at.Point3D.X, at.Point3D.Y, at.Point3D.Z
		case !use3D && at.Point2D != nil:
			x, y = at.Point2D.X, at.Point2D.Y
		default:
			W.log.Warn("atom without coordinates written at the origin", zap.String("symbol", at.Symbol))
		}
		W.out.Printf("%-2s %14.8f %14.8f %14.8f\n", at.Symbol, x, y, z)
	}
	W.out.Line("")
	return W.out.Flush()
}

//Close flushes and closes the underlying stream.
func (W *Writer) Close() error {
	return W.out.Close()
}
