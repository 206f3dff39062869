/*
 * crystal.go, part of gochemio.
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

package chem

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//FractionalToCartesian returns the Cartesian position of the fractional
//coordinates frac, in the cell with axes a, b and c.
func FractionalToCartesian(a, b, c, frac r3.Vec) r3.Vec {
	ret := r3.Scale(frac.X, a)
	ret = r3.Add(ret, r3.Scale(frac.Y, b))
	return r3.Add(ret, r3.Scale(frac.Z, c))
}

//CartesianToFractional returns the fractional coordinates of the point cart
//in the cell with axes a, b and c. It fails if the axes are coplanar.
func CartesianToFractional(a, b, c, cart r3.Vec) (r3.Vec, error) {
	//the axes are the columns of the cell matrix.
	cell := mat.NewDense(3, 3, []float64{
		a.X, b.X, c.X,
		a.Y, b.Y, c.Y,
		a.Z, b.Z, c.Z,
	})
	var frac mat.VecDense
	err := frac.SolveVec(cell, mat.NewVecDense(3, []float64{cart.X, cart.Y, cart.Z}))
	if err != nil {
		return r3.Vec{}, fmt.Errorf("CartesianToFractional: singular cell: %w", err)
	}
	return r3.Vec{X: frac.AtVec(0), Y: frac.AtVec(1), Z: frac.AtVec(2)}, nil
}

//CellParameters returns the lengths of the axes a, b, c and the angles alpha
//(between b and c), beta (a, c) and gamma (a, b), in degrees.
func CellParameters(a, b, c r3.Vec) (la, lb, lc, alpha, beta, gamma float64) {
	angle := func(p, q r3.Vec) float64 {
		np, nq := r3.Norm(p), r3.Norm(q)
		if np == 0 || nq == 0 {
			return 0
		}
		cos := r3.Dot(p, q) / (np * nq)
		cos = math.Max(-1, math.Min(1, cos))
		return math.Acos(cos) * 180 / math.Pi
	}
	return r3.Norm(a), r3.Norm(b), r3.Norm(c), angle(b, c), angle(a, c), angle(a, b)
}

//CellAxes is the inverse of CellParameters. It returns the axes of the cell
//with the given lengths and angles (in degrees), with a along x and b in the
//xy plane. It fails if the angles don't describe a cell.
func CellAxes(la, lb, lc, alpha, beta, gamma float64) (a, b, c r3.Vec, err error) {
	rad := math.Pi / 180
	ca, cb, cg := math.Cos(alpha*rad), math.Cos(beta*rad), math.Cos(gamma*rad)
	sg := math.Sin(gamma * rad)
	if sg == 0 {
		return a, b, c, fmt.Errorf("CellAxes: gamma can't be %v", gamma)
	}
	cy := (ca - cb*cg) / sg
	cz2 := 1 - cb*cb - cy*cy
	if cz2 <= 0 {
		return a, b, c, fmt.Errorf("CellAxes: angles %v, %v, %v don't define a cell", alpha, beta, gamma)
	}
	a = r3.Vec{X: la}
	b = r3.Vec{X: lb * cg, Y: lb * sg}
	c = r3.Vec{X: lc * cb, Y: lc * cy, Z: lc * math.Sqrt(cz2)}
	return a, b, c, nil
}

//FractionalPoint returns the fractional coordinates of at in the crystal,
//converting from Cartesian if needed. ok is false if at has no coordinates.
func (C *Crystal) FractionalPoint(at *Atom) (r3.Vec, bool, error) {
	if at.FractionalPoint3D != nil {
		return *at.FractionalPoint3D, true, nil
	}
	if at.Point3D == nil {
		return r3.Vec{}, false, nil
	}
	f, err := CartesianToFractional(C.A, C.B, C.C, *at.Point3D)
	return f, err == nil, err
}

//CartesianPoint returns the Cartesian coordinates of at in the crystal,
//converting from fractional if needed. ok is false if at has no coordinates.
func (C *Crystal) CartesianPoint(at *Atom) (r3.Vec, bool) {
	if at.Point3D != nil {
		return *at.Point3D, true
	}
	if at.FractionalPoint3D == nil {
		return r3.Vec{}, false
	}
	return FractionalToCartesian(C.A, C.B, C.C, *at.FractionalPoint3D), true
}

//ElementCount is one entry of a molecular formula.
type ElementCount struct {
	Symbol string
	Count  int
}

//MolecularFormula returns the element counts of the atoms in c, in Hill order:
//C first, H second, then the rest alphabetically. Without carbon, all elements
//are sorted alphabetically.
func MolecularFormula(c *AtomContainer) []ElementCount {
	counts := make(map[string]int)
	for _, at := range c.Atoms {
		counts[at.Symbol]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	_, hasC := counts["C"]
	rank := func(s string) int {
		if !hasC {
			return 2
		}
		switch s {
		case "C":
			return 0
		case "H":
			return 1
		}
		return 2
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	ret := make([]ElementCount, len(keys))
	for i, k := range keys {
		ret[i] = ElementCount{k, counts[k]}
	}
	return ret
}

//FormulaString returns the Hill formula of c as a string, i.e. "C6H6".
func FormulaString(c *AtomContainer) string {
	var b strings.Builder
	for _, e := range MolecularFormula(c) {
		b.WriteString(e.Symbol)
		if e.Count > 1 {
			b.WriteString(strconv.Itoa(e.Count))
		}
	}
	return b.String()
}
