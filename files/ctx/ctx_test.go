package ctx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const water = ` /IDENT             1
  WATER01
 /NAME              1
  water
 /ATOMS             3
    1    8
    2    1
    3    1
 /BONDS             4
            1     2    1
            1     3    1
            2     1    1
            3     1    1
 /CHARGE            2
  junk
  junk
`

func TestReadCTX(Te *testing.T) {
	mol, err := NewReader(strings.NewReader(water)).ReadMolecule()
	require.NoError(Te, err)
	assert.Equal(Te, "water", mol.Title())
	assert.Equal(Te, "WATER01", mol.StringProperty(chem.PropIdentifier))
	require.Equal(Te, 3, mol.AtomCount())
	assert.Equal(Te, "O", mol.Atom(0).Symbol)
	assert.Equal(Te, "H", mol.Atom(2).Symbol)
	//each bond is listed twice, it is read once.
	assert.Equal(Te, 2, mol.BondCount())
	assert.Equal(Te, chem.Single, mol.Bonds[0].Order)
}

func TestUnknownBlockStrict(Te *testing.T) {
	_, err := NewReader(strings.NewReader(water), settings.WithMode(chem.Strict)).ReadMolecule()
	assert.Error(Te, err)
}

func TestTruncatedBlock(Te *testing.T) {
	text := water[:strings.Index(water, "    3    1")]
	_, err := NewReader(strings.NewReader(text)).ReadMolecule()
	assert.Error(Te, err)
}

func TestNoCommands(Te *testing.T) {
	_, err := NewReader(strings.NewReader("hello\n")).ReadChemFile()
	assert.Error(Te, err)
}
