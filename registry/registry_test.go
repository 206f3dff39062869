package registry

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/files/zmatrix"
	"github.com/rmera/gochemio/format"
	"github.com/rmera/gochemio/settings"
)

func TestManifest(Te *testing.T) {
	R := Default()
	assert.Len(Te, R.Formats(), len(format.All()))
	assert.Same(Te, R, Default())

	core, logs := observer.New(zap.WarnLevel)
	chem.SetLogger(zap.New(core))
	defer chem.SetLogger(nil)
	R = New("# comment\n\nXYZ\nNoSuchFormat\nSDF\n")
	assert.Equal(Te, []*format.Format{format.XYZ, format.SDF}, R.Formats())
	require.Equal(Te, 1, logs.Len())
	assert.Equal(Te, "NoSuchFormat", logs.All()[0].ContextMap()["name"])
}

func TestFindFormats(Te *testing.T) {
	found := Default().FindFormats(format.Reactions | format.AtomAtomMapping)
	assert.Contains(Te, found, format.MDLRXNV2000)
	assert.Contains(Te, found, format.MDLRXNV3000)
	assert.NotContains(Te, found, format.XYZ)
	for _, f := range found {
		assert.True(Te, f.Features.Has(format.Reactions|format.AtomAtomMapping))
	}
	assert.Len(Te, Default().FindFormats(format.None), len(format.All()))
}

func TestCreateWriter(Te *testing.T) {
	R := Default()
	for _, f := range R.Formats() {
		w := R.CreateWriter(f, &bytes.Buffer{})
		if f.WriterName == "" {
			assert.Nil(Te, w, f.Name)
			continue
		}
		assert.NotNil(Te, w, f.Name)
	}
	assert.Nil(Te, R.CreateWriter(nil, &bytes.Buffer{}))
	for _, f := range R.Formats() {
		r := R.CreateReader(f, &bytes.Buffer{})
		assert.Equal(Te, f.ReaderName != "", r != nil, f.Name)
	}
}

func TestRegister(Te *testing.T) {
	R := New(manifest)
	called := false
	R.Register("SMILES", func(w io.Writer, opts ...settings.Option) chem.Writer {
		called = true
		return nil
	})
	_, ok := R.WriterType(format.SMILES)
	assert.True(Te, ok)
	R.CreateWriter(format.SMILES, &bytes.Buffer{})
	assert.True(Te, called)
	_, ok = Default().WriterType(format.SMILES)
	assert.False(Te, ok)

	f := &format.Format{Name: "Broken", WriterName: "nowhere.Writer"}
	_, ok = R.WriterType(f)
	assert.False(Te, ok)
}

func TestReadWriteFile(Te *testing.T) {
	dir := Te.TempDir()
	b := chem.NewBuilder()
	mol := b.NewAtomContainer()
	mol.SetTitle("hydrogen")
	mol.AddAtom(chem.NewAtom3D(b, "H", 0, 0, 0))
	mol.AddAtom(chem.NewAtom3D(b, "H", 0, 0, 0.74))
	R := Default()
	for _, name := range []string{"h2.xyz", "h2.xyz.gz", "h2.xyz.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, R.WriteFile(path, format.XYZ, mol))
		file, f, err := R.ReadFile(path)
		require.NoError(Te, err, name)
		assert.Equal(Te, format.XYZ, f)
		got := file.Containers()
		require.Len(Te, got, 1)
		assert.Equal(Te, "hydrogen", got[0].Title())
		assert.InDelta(Te, 0.74, got[0].Atom(1).Point3D.Z, 1e-6)
	}
	assert.Error(Te, R.WriteFile(filepath.Join(dir, "h2.smi"), format.SMILES, mol))
	assert.Error(Te, R.WriteFile(filepath.Join(dir, "h2.res"), format.ShelX, mol))
}

func TestReadFileExtensionFallback(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "h2.zmat")
	require.NoError(Te, os.WriteFile(path, []byte("# hydrogen\n2\nH2\nH\nH 1 0.74\n"), 0o644))
	file, f, err := Default().ReadFile(path)
	require.NoError(Te, err)
	assert.Equal(Te, format.ZMatrix, f)
	assert.Equal(Te, 0.74, zmatrix.Entries(file.Containers()[0])[1].Distance)

	path = filepath.Join(Te.TempDir(), "mystery.dat")
	require.NoError(Te, os.WriteFile(path, []byte("nothing to see\n"), 0o644))
	_, _, err = Default().ReadFile(path)
	assert.Error(Te, err)
	_, _, err = Default().ReadFile(filepath.Join(Te.TempDir(), "missing.xyz"))
	assert.Error(Te, err)
}
