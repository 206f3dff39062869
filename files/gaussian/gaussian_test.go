package gaussian

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

func water() *chem.AtomContainer {
	b := chem.NewBuilder()
	mol := b.NewAtomContainer()
	mol.SetTitle("water")
	mol.AddAtom(chem.NewAtom3D(b, "O", 0, 0, 0.117))
	mol.AddAtom(chem.NewAtom3D(b, "H", 0, 0.757, -0.47))
	mol.AddAtom(chem.NewAtom3D(b, "H", 0, -0.757, -0.47))
	return mol
}

func TestWriteGaussian(Te *testing.T) {
	s := settings.Default()
	s.Gaussian.Memory = "2GB"
	s.Gaussian.ProcShared = 4
	s.Gaussian.Basis = "def2svp"
	var buf bytes.Buffer
	w := NewWriter(&buf, settings.WithSettings(s))
	require.True(Te, w.Accepts(water()))
	require.NoError(Te, w.Write(water()))
	require.NoError(Te, w.Close())
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(Te, "%mem=2GB", lines[0])
	assert.Equal(Te, "%nprocshared=4", lines[1])
	assert.Equal(Te, "# b3lyp/def2svp opt", lines[2])
	assert.Equal(Te, "", lines[3])
	assert.Equal(Te, "water", lines[4])
	assert.Equal(Te, "0 1", lines[6])
	assert.Equal(Te, []string{"H", "0.00000000", "0.75700000", "-0.47000000"}, strings.Fields(lines[8]))
	assert.Equal(Te, "", lines[10])
}

func TestMultiplicity(Te *testing.T) {
	mol := water()
	assert.Equal(Te, 1, Multiplicity(mol))
	mol.Atom(0).FormalCharge = 1
	assert.Equal(Te, 2, Multiplicity(mol))
	mol.SetProperty(PropMultiplicity, 4)
	assert.Equal(Te, 4, Multiplicity(mol))
}

func TestGaussianRejects(Te *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	set := &chem.AtomContainerSet{}
	set.Add(water())
	set.Add(water())
	assert.False(Te, w.Accepts(set))
	assert.Error(Te, w.Write(set))
	b := chem.NewBuilder()
	bare := b.NewAtomContainer()
	bare.AddAtom(b.NewAtom("C"))
	assert.Error(Te, w.Write(bare))
	assert.Equal(Te, "# hf sp", Route(settings.Gaussian{Method: "hf", Command: "sp"}))
}
