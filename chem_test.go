package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(Te *testing.T) {
	assert.Equal(Te, []string{"a", "b", "c"}, Tokenize("  a\tb   c \r\n"))
	assert.Equal(Te, []string{"1", "2 3", "x"}, Tokenize("1,2 3;;x", ',', ';'))
	empty := Tokenize("")
	assert.NotNil(Te, empty)
	assert.Empty(Te, empty)
	assert.Equal(Te, []string{`"a`, `b"`}, Tokenize(`"a b"`))
}

func TestProperties(Te *testing.T) {
	var p Properties
	_, ok := p.Property("x")
	assert.False(Te, ok)
	assert.Empty(Te, p.PropertyKeys())
	p.SetProperty("b", 2)
	p.SetProperty("a", "one")
	assert.Equal(Te, []string{"a", "b"}, p.PropertyKeys())
	assert.Equal(Te, "one", p.StringProperty("a"))
	assert.Equal(Te, "", p.StringProperty("b"))
	n, ok := p.IntProperty("b")
	assert.True(Te, ok)
	assert.Equal(Te, 2, n)
	p.SetProperty("a", nil)
	assert.Equal(Te, []string{"b"}, p.PropertyKeys())
}

func TestElements(Te *testing.T) {
	assert.Equal(Te, 6, AtomicNumber("C"))
	assert.Equal(Te, 0, AtomicNumber("c"))
	assert.Equal(Te, "Cl", Symbol(17))
	assert.Equal(Te, "", Symbol(0))
	assert.Equal(Te, "", Symbol(500))
	assert.True(Te, IsElement("D"))
	assert.False(Te, IsElement("R"))
	assert.Equal(Te, "Cl", NormalizeSymbol("CL"))
	assert.Equal(Te, "N", NormalizeSymbol("n"))
}

func TestContainer(Te *testing.T) {
	b := NewBuilder()
	mol := b.NewAtomContainer()
	c, o, stray := b.NewAtom("C"), b.NewAtom("O"), b.NewAtom("N")
	assert.Equal(Te, 8, o.AtomicNumber)
	mol.AddAtom(c)
	mol.AddAtom(o)
	bond := b.NewBond(c, o, Double)
	require.NoError(Te, mol.AddBond(bond))
	assert.Error(Te, mol.AddBond(b.NewBond(c, stray, Single)))
	assert.Equal(Te, 1, mol.BondCount())
	assert.Same(Te, bond, mol.Bond(o, c))
	assert.Nil(Te, mol.Bond(c, stray))
	assert.Equal(Te, -1, mol.IndexOf(stray))
	assert.Same(Te, o, bond.Other(c))
	assert.Panics(Te, func() { bond.Other(stray) })
	assert.Len(Te, mol.ConnectedBonds(c), 1)
	mol.SetTitle("CO")
	assert.Equal(Te, "CO", mol.Title())
	o.FormalCharge = -1
	assert.Equal(Te, -1, mol.TotalFormalCharge())
	assert.Equal(Te, OrderUnset, OrderFromInt(7))
	assert.Equal(Te, "double", Double.String())
}

func TestModel(Te *testing.T) {
	b := NewBuilder()
	m := b.NewChemModel()
	assert.True(Te, m.IsEmpty())
	set := b.NewAtomContainerSet()
	set.Add(b.NewAtomContainer())
	m.SetMoleculeSet(set)
	assert.False(Te, m.IsEmpty())
	cr := b.NewCrystal()
	m.SetCrystal(cr)
	assert.Nil(Te, m.MoleculeSet())
	assert.Same(Te, cr, m.Crystal())
	rs := b.NewReactionSet()
	rs.Add(b.NewReaction())
	m.SetReactionSet(rs)
	assert.Nil(Te, m.Crystal())

	file := WrapContainers(b, b.NewAtomContainer(), b.NewAtomContainer())
	assert.Len(Te, file.Containers(), 2)
	assert.Len(Te, ContainersOf(file), 2)
	file = WrapModels(b, m)
	assert.Len(Te, file.Reactions(), 1)
	assert.Empty(Te, file.Containers())
	assert.Nil(Te, CrystalOf(file))
	assert.Nil(Te, ContainersOf(rs))
}
