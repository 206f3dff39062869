package mol2

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gochemio"
)

func TestWriteMol2(Te *testing.T) {
	b := chem.NewBuilder()
	mol := b.NewAtomContainer()
	mol.SetTitle("formaldehyde")
	c := chem.NewAtom3D(b, "C", 0, 0, 0)
	o := chem.NewAtom3D(b, "O", 1.2, 0, 0)
	o.SetCharge(-0.4)
	c.AtomTypeName = "C.2"
	mol.AddAtom(c)
	mol.AddAtom(o)
	require.NoError(Te, mol.AddBond(b.NewBond(c, o, chem.Double)))
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(Te, w.Write(mol))
	require.NoError(Te, w.Close())
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(Te, "@<TRIPOS>MOLECULE", lines[0])
	assert.Equal(Te, "formaldehyde", lines[1])
	assert.Equal(Te, []string{"2", "1", "1", "0", "0"}, strings.Fields(lines[2]))
	assert.Equal(Te, "USER_CHARGES", lines[4])
	assert.Equal(Te, "@<TRIPOS>ATOM", lines[6])
	assert.Equal(Te, []string{"1", "C1", "0.0000", "0.0000", "0.0000", "C.2", "1", "MOL", "0.0000"}, strings.Fields(lines[7]))
	assert.Equal(Te, []string{"2", "O2", "1.2000", "0.0000", "0.0000", "O", "1", "MOL", "-0.4000"}, strings.Fields(lines[8]))
	assert.Equal(Te, "@<TRIPOS>BOND", lines[9])
	assert.Equal(Te, []string{"1", "1", "2", "2"}, strings.Fields(lines[10]))
}

func TestMol2BondTypes(Te *testing.T) {
	assert.Equal(Te, "ar", bondType(&chem.Bond{Order: chem.Single, Aromatic: true}))
	assert.Equal(Te, "3", bondType(&chem.Bond{Order: chem.Triple}))
	assert.Equal(Te, "un", bondType(&chem.Bond{}))
	assert.Equal(Te, "N.ar", atomType(&chem.Atom{Symbol: "N", Aromatic: true}))
}
