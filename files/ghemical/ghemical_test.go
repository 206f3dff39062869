package ghemical

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const formaldehyde = `!Header mm1gp 100
!Info 1
!Atoms 4
0 6
1 8
2 1
3 1
!Bonds 3
1 0 D
2 0 S
3 0 S
!Coord
0 0.0 0.0 0.0
1 0.12 0.0 0.0
2 -0.05 0.09 0.0
3 -0.05 -0.09 0.0
!Charges
0 0.1
1 -0.3
2 0.1
3 0.1
!End
`

func TestReadGhemical(Te *testing.T) {
	mol, err := NewReader(strings.NewReader(formaldehyde)).ReadMolecule()
	require.NoError(Te, err)
	require.Equal(Te, 4, mol.AtomCount())
	assert.Equal(Te, "O", mol.Atom(1).Symbol)
	assert.InDelta(Te, 1.2, mol.Atom(1).Point3D.X, 1e-9)
	assert.InDelta(Te, -0.3, mol.Atom(1).PartialCharge(), 1e-9)
	require.Equal(Te, 3, mol.BondCount())
	assert.Equal(Te, chem.Double, mol.Bonds[0].Order)
}

func TestMissingEnd(Te *testing.T) {
	text := strings.TrimSuffix(formaldehyde, "!End\n")
	_, err := NewReader(strings.NewReader(text)).ReadMolecule()
	assert.Error(Te, err)
}

func TestUnknownBlock(Te *testing.T) {
	text := strings.Replace(formaldehyde, "!End", "!Velocities\n!End", 1)
	_, err := NewReader(strings.NewReader(text)).ReadMolecule()
	assert.NoError(Te, err)
	_, err = NewReader(strings.NewReader(text), settings.WithMode(chem.Strict)).ReadMolecule()
	assert.Error(Te, err)
}

func TestBadIndex(Te *testing.T) {
	text := strings.Replace(formaldehyde, "3 0 S", "7 0 S", 1)
	_, err := NewReader(strings.NewReader(text)).ReadChemFile()
	assert.Error(Te, err)
}

func TestNegativeCounts(Te *testing.T) {
	for _, repl := range [][2]string{{"!Atoms 4", "!Atoms -1"}, {"!Bonds 3", "!Bonds -3"}} {
		text := strings.Replace(formaldehyde, repl[0], repl[1], 1)
		file, err := NewReader(strings.NewReader(text)).ReadChemFile()
		assert.Error(Te, err, repl[1])
		assert.Nil(Te, file)
		var e chem.Error
		assert.ErrorAs(Te, err, &e)
	}
}
