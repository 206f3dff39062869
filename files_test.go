package chem

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression(Te *testing.T) {
	assert.Equal(Te, "gz", Compression("a.SDF.GZ"))
	assert.Equal(Te, "zst", Compression("a.xyz.zst"))
	assert.Equal(Te, "", Compression("a.xyz"))
	assert.Equal(Te, "a.rxn", TrimCompression("a.rxn.bz2"))
	assert.Equal(Te, "a.rxn", TrimCompression("a.rxn"))
}

func TestCompressedFiles(Te *testing.T) {
	dir := Te.TempDir()
	const text = "3\nwater\nO 0 0 0\nH 0 1 0\nH 1 0 0\n"
	for _, name := range []string{"w.xyz", "w.xyz.gz", "w.xyz.zst"} {
		path := filepath.Join(dir, name)
		out, err := CreateFile(path)
		require.NoError(Te, err)
		_, err = io.WriteString(out, text)
		require.NoError(Te, err)
		require.NoError(Te, out.Close())
		in, err := OpenFile(path)
		require.NoError(Te, err)
		got, err := io.ReadAll(in)
		require.NoError(Te, err)
		require.NoError(Te, in.Close())
		assert.Equal(Te, text, string(got), name)
	}
	_, err := CreateFile(filepath.Join(dir, "w.xyz.bz2"))
	assert.Error(Te, err)
	_, err = OpenFile(filepath.Join(dir, "missing.xyz"))
	assert.Error(Te, err)
}
