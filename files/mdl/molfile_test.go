package mdl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

//methoxide, with atom-atom mapping numbers 1 and 2.
const methoxide = `methoxide
  gochemio0101251200

  2  1  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  1  0  0
    1.5000    0.0000    0.0000 O   0  5  0  0  0  0  0  0  0  2  0  0
  1  2  1  0  0  0  0
M  END
`

const formaldehyde = `formaldehyde
  gochemio0101251200

  2  1  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  1  0  0
    1.2000    0.0000    0.0000 O   0  0  0  0  0  0  0  0  0  2  0  0
  1  2  2  0  0  0  0
M  END
`

func TestReadMolfileV2000(Te *testing.T) {
	mol, err := NewMolfileReader(strings.NewReader(methoxide)).ReadMolecule()
	require.NoError(Te, err)
	assert.Equal(Te, "methoxide", mol.Title())
	require.Equal(Te, 2, mol.AtomCount())
	require.Equal(Te, 1, mol.BondCount())
	assert.Equal(Te, "C", mol.Atom(0).Symbol)
	assert.Equal(Te, 8, mol.Atom(1).AtomicNumber)
	assert.Equal(Te, -1, mol.Atom(1).FormalCharge)
	assert.True(Te, mol.Has2D())
	assert.False(Te, mol.Has3D())
	assert.InDelta(Te, 1.5, mol.Atom(1).Point2D.X, 1e-6)
	n, ok := mol.Atom(1).AtomAtomMapping()
	assert.True(Te, ok)
	assert.Equal(Te, 2, n)
	assert.Equal(Te, chem.Single, mol.Bonds[0].Order)
}

func TestChargeBlockSupersedes(Te *testing.T) {
	text := strings.Replace(methoxide, "M  END", "M  CHG  1   1   1\nM  ISO  1   1  13\nM  END", 1)
	mol, err := NewMolfileReader(strings.NewReader(text)).ReadMolecule()
	require.NoError(Te, err)
	assert.Equal(Te, 1, mol.Atom(0).FormalCharge)
	assert.Equal(Te, 0, mol.Atom(1).FormalCharge)
	assert.Equal(Te, 13, mol.Atom(0).MassNumber)
}

func TestQueryBondModes(Te *testing.T) {
	text := strings.Replace(methoxide, "  1  2  1  0", "  1  2  6  0", 1)
	_, err := NewMolfileReader(strings.NewReader(text), settings.WithMode(chem.Strict)).ReadMolecule()
	assert.Error(Te, err)
	mol, err := NewMolfileReader(strings.NewReader(text)).ReadMolecule()
	require.NoError(Te, err)
	assert.Equal(Te, chem.OrderUnset, mol.Bonds[0].Order)
}

func TestBadBondIndex(Te *testing.T) {
	text := strings.Replace(methoxide, "  1  2  1  0", "  1  7  1  0", 1)
	_, err := NewMolfileReader(strings.NewReader(text)).ReadMolecule()
	assert.Error(Te, err)
}

func TestSDFRoundTrip(Te *testing.T) {
	sdf := methoxide + "> <cas>\n1-2-3\n\n> <name>\nmethoxide\nanion\n\n$$$$\n" + formaldehyde + "$$$$\n\n"
	file, err := NewMolfileReader(strings.NewReader(sdf)).ReadChemFile()
	require.NoError(Te, err)
	mols := file.Containers()
	require.Len(Te, mols, 2)
	assert.Equal(Te, "1-2-3", mols[0].StringProperty("cas"))
	assert.Equal(Te, "methoxide\nanion", mols[0].StringProperty("name"))
	assert.Equal(Te, chem.Double, mols[1].Bonds[0].Order)

	var buf bytes.Buffer
	w := NewSDFWriter(&buf)
	require.True(Te, w.Accepts(file))
	require.NoError(Te, w.Write(file))
	require.NoError(Te, w.Close())
	assert.Equal(Te, 2, strings.Count(buf.String(), "$$$$"))

	again, err := NewMolfileReader(&buf).ReadChemFile()
	require.NoError(Te, err)
	mols2 := again.Containers()
	require.Len(Te, mols2, 2)
	assert.Equal(Te, "1-2-3", mols2[0].StringProperty("cas"))
	assert.Equal(Te, -1, mols2[0].Atom(1).FormalCharge)
	assert.Equal(Te, "formaldehyde", mols2[1].Title())
}

func TestMolfileWriterAromatic(Te *testing.T) {
	b := chem.NewBuilder()
	mol := b.NewAtomContainer()
	c1, c2 := chem.NewAtom3D(b, "C", 0, 0, 0), chem.NewAtom3D(b, "C", 1.4, 0, 0.1)
	mol.AddAtom(c1)
	mol.AddAtom(c2)
	bond := b.NewBond(c1, c2, chem.Single)
	bond.Aromatic = true
	require.NoError(Te, mol.AddBond(bond))

	s := settings.Default()
	s.WriteAromaticBondTypes = true
	var buf bytes.Buffer
	w := NewMolfileWriter(&buf, settings.WithSettings(s))
	require.NoError(Te, w.Write(mol))
	require.NoError(Te, w.Close())
	assert.Contains(Te, buf.String(), "  1  2  4  0")
	assert.Contains(Te, buf.String(), "3D")

	back, err := NewMolfileReader(&buf).ReadMolecule()
	require.NoError(Te, err)
	assert.True(Te, back.Bonds[0].Aromatic)
	assert.True(Te, back.Has3D())
}

func TestNegativeCounts(Te *testing.T) {
	text := strings.Replace(methoxide, "  2  1  0  0", " -1  1  0  0", 1)
	mol, err := NewMolfileReader(strings.NewReader(text)).ReadMolecule()
	assert.Error(Te, err)
	assert.Nil(Te, mol)
	text = strings.Replace(methoxide, "  2  1  0  0", "  2 -1  0  0", 1)
	_, err = NewMolfileReader(strings.NewReader(text)).ReadMolecule()
	assert.Error(Te, err)

	//the same table inside a reaction.
	text = strings.Replace(methoxide, "  2  1  0  0", " -1  1  0  0", 1)
	_, err = NewRXNV2000Reader(strings.NewReader(rxnText("  1  1", text, formaldehyde))).ReadReaction()
	var e chem.Error
	assert.ErrorAs(Te, err, &e)
}

func TestMassDifference(Te *testing.T) {
	text := strings.Replace(methoxide, "C   0  0", "C   1  0", 1)
	mol, err := NewMolfileReader(strings.NewReader(text)).ReadMolecule()
	require.NoError(Te, err)
	assert.Equal(Te, 13, mol.Atom(0).MassNumber)
	assert.Equal(Te, 0, mol.Atom(1).MassNumber)

	//M  ISO supersedes every mass difference of the atom block.
	text = strings.Replace(text, "O   0  5", "O   1  5", 1)
	text = strings.Replace(text, "M  END", "M  ISO  1   1  14\nM  END", 1)
	mol, err = NewMolfileReader(strings.NewReader(text)).ReadMolecule()
	require.NoError(Te, err)
	assert.Equal(Te, 14, mol.Atom(0).MassNumber)
	assert.Equal(Te, 0, mol.Atom(1).MassNumber)

	_, err = NewMolfileReader(strings.NewReader(strings.Replace(methoxide, "C   0  0", "C   x  0", 1))).ReadMolecule()
	assert.Error(Te, err)
}

func TestWriteMassDifference(Te *testing.T) {
	b := chem.NewBuilder()
	mol := b.NewAtomContainer()
	c, o := chem.NewAtom2D(b, "C", 0, 0), chem.NewAtom2D(b, "O", 1.4, 0)
	c.MassNumber = 13
	o.MassNumber = 30 //too far from 16 for the atom block
	mol.AddAtom(c)
	mol.AddAtom(o)
	var buf bytes.Buffer
	w := NewMolfileWriter(&buf)
	require.NoError(Te, w.Write(mol))
	require.NoError(Te, w.Close())
	assert.Contains(Te, buf.String(), " C   1  0")
	assert.Contains(Te, buf.String(), " O   0  0")

	back, err := NewMolfileReader(&buf).ReadMolecule()
	require.NoError(Te, err)
	assert.Equal(Te, 13, back.Atom(0).MassNumber)
	assert.Equal(Te, 30, back.Atom(1).MassNumber)
}
