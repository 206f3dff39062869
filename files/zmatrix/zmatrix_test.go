package zmatrix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const twoFrames = `#ZMATRIX
# hydrogen peroxide
4
H2O2
O
O 1 1.45
H 1 0.97 2 100.0
H 2 0.97 1 100.0 3 120.0
2
hydrogen
H
H 1 0.74
`

func TestReadZMatrix(Te *testing.T) {
	file, err := NewReader(strings.NewReader(twoFrames)).ReadChemFile()
	require.NoError(Te, err)
	require.Len(Te, file.Models(), 2)
	mols := file.Containers()
	assert.Equal(Te, "H2O2", mols[0].Title())
	e := Entries(mols[0])
	require.Len(Te, e, 4)
	assert.Equal(Te, Entry{Symbol: "O"}, e[0])
	assert.Equal(Te, Entry{Symbol: "H", DistanceRef: 2, Distance: 0.97, AngleRef: 1, Angle: 100, DihedralRef: 3, Dihedral: 120}, e[3])
	assert.Equal(Te, 8, mols[0].Atom(1).AtomicNumber)
	assert.Nil(Te, mols[0].Atom(1).Point3D)
	assert.Equal(Te, 0.74, Entries(mols[1])[1].Distance)
}

func TestZMatrixErrors(Te *testing.T) {
	for _, text := range []string{
		"2\nt\nO\nH 2 0.9\n", //forward reference
		"2\nt\nO\nH\n",       //missing distance
		"3\nt\nO\nH 1 0.9\n", //truncated
		"x\n",
		"# only comments\n",
	} {
		_, err := NewReader(strings.NewReader(text)).ReadChemFile()
		assert.Error(Te, err, text)
	}
}

func TestZMatrixExtraFields(Te *testing.T) {
	text := "2\nt\nO 7\nH 1 0.9\n"
	_, err := NewReader(strings.NewReader(text)).ReadChemFile()
	assert.NoError(Te, err)
	_, err = NewReader(strings.NewReader(text), settings.WithMode(chem.Strict)).ReadChemFile()
	assert.Error(Te, err)
}
