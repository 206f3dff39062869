package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCellRoundTrip(Te *testing.T) {
	a, b, c, err := CellAxes(5, 6, 7, 80, 95, 110)
	require.NoError(Te, err)
	la, lb, lc, alpha, beta, gamma := CellParameters(a, b, c)
	for _, v := range [][2]float64{{5, la}, {6, lb}, {7, lc}, {80, alpha}, {95, beta}, {110, gamma}} {
		assert.InDelta(Te, v[0], v[1], 1e-9)
	}
	assert.Equal(Te, 0.0, a.Y)
	assert.Equal(Te, 0.0, b.Z)
	_, _, _, err = CellAxes(1, 1, 1, 10, 10, 170)
	assert.Error(Te, err)
}

func TestFractional(Te *testing.T) {
	a, b, c, err := CellAxes(4, 5, 6, 90, 100, 90)
	require.NoError(Te, err)
	frac := r3.Vec{X: 0.25, Y: 0.5, Z: 0.75}
	cart := FractionalToCartesian(a, b, c, frac)
	back, err := CartesianToFractional(a, b, c, cart)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.25, back.X, 1e-9)
	assert.InDelta(Te, 0.5, back.Y, 1e-9)
	assert.InDelta(Te, 0.75, back.Z, 1e-9)
	_, err = CartesianToFractional(a, a, c, cart)
	assert.Error(Te, err)

	cr := NewBuilder().NewCrystal()
	cr.A, cr.B, cr.C = a, b, c
	at := &Atom{FractionalPoint3D: &frac}
	p, ok := cr.CartesianPoint(at)
	assert.True(Te, ok)
	assert.Equal(Te, cart, p)
	_, ok = cr.CartesianPoint(&Atom{})
	assert.False(Te, ok)
	f, ok, err := cr.FractionalPoint(&Atom{Point3D: &cart})
	require.NoError(Te, err)
	assert.True(Te, ok)
	assert.InDelta(Te, 0.5, f.Y, 1e-9)
}

func TestMolecularFormula(Te *testing.T) {
	b := NewBuilder()
	mol := b.NewAtomContainer()
	for _, s := range []string{"O", "H", "C", "H", "Br", "C", "H", "H", "H"} {
		mol.AddAtom(b.NewAtom(s))
	}
	assert.Equal(Te, "C2H5BrO", FormulaString(mol))
	salt := b.NewAtomContainer()
	salt.AddAtom(b.NewAtom("Na"))
	salt.AddAtom(b.NewAtom("Cl"))
	salt.AddAtom(b.NewAtom("H"))
	assert.Equal(Te, []ElementCount{{"Cl", 1}, {"H", 1}, {"Na", 1}}, MolecularFormula(salt))
}
