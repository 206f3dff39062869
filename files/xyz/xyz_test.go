package xyz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const frames = `3
water
O 0.000 0.000 0.117
H 0.000 0.757 -0.470
H 0.000 -0.757 -0.470
2 bohr
hydrogen in bohr
1 0.0 0.0 0.0
1 0.0 0.0 1.4
`

func TestReadXYZ(Te *testing.T) {
	file, err := NewReader(strings.NewReader(frames)).ReadChemFile()
	require.NoError(Te, err)
	mols := file.Containers()
	require.Len(Te, mols, 2)
	assert.Equal(Te, "water", mols[0].Title())
	assert.Equal(Te, "O", mols[0].Atom(0).Symbol)
	assert.InDelta(Te, 0.757, mols[0].Atom(1).Point3D.Y, 1e-9)
	assert.Equal(Te, "H", mols[1].Atom(1).Symbol)
	assert.InDelta(Te, 1.4*chem.Bohr2A, mols[1].Atom(1).Point3D.Z, 1e-9)
}

func TestXYZErrors(Te *testing.T) {
	for _, text := range []string{"", "abc\n", "2\ntitle\nH 0 0 0\n", "1 parsec\nt\nH 0 0 0\n", "1\nt\nH 0 x 0\n"} {
		_, err := NewReader(strings.NewReader(text)).ReadChemFile()
		assert.Error(Te, err, text)
	}
	_, err := NewReader(strings.NewReader("1\nt\nXx 0 0 0\n"), settings.WithMode(chem.Strict)).ReadChemFile()
	assert.Error(Te, err)
	_, err = NewReader(strings.NewReader("1\nt\nXx 0 0 0\n")).ReadChemFile()
	assert.NoError(Te, err)
}

func TestXYZRoundTrip(Te *testing.T) {
	file, err := NewReader(strings.NewReader(frames)).ReadChemFile()
	require.NoError(Te, err)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(Te, w.Write(file))
	require.NoError(Te, w.Close())
	assert.True(Te, strings.HasPrefix(buf.String(), "3\nwater\nO "))
	back, err := NewReader(&buf).ReadChemFile()
	require.NoError(Te, err)
	mols := back.Containers()
	require.Len(Te, mols, 2)
	assert.InDelta(Te, 1.4*chem.Bohr2A, mols[1].Atom(1).Point3D.Z, 1e-6)
	assert.False(Te, w.Accepts(&chem.ReactionSet{}))
}
