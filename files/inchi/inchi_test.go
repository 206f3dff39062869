package inchi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	chem "github.com/rmera/gochemio"
)

func withAtoms(n int) *chem.AtomContainer {
	b := chem.NewBuilder()
	mol := b.NewAtomContainer()
	for i := 0; i < n; i++ {
		mol.AddAtom(b.NewAtom("C"))
	}
	return mol
}

func bondPairs(mol *chem.AtomContainer) [][2]int {
	var ret [][2]int
	for _, b := range mol.Bonds {
		ret = append(ret, [2]int{mol.IndexOf(b.Begin()) + 1, mol.IndexOf(b.End()) + 1})
	}
	return ret
}

func observe(Te *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.WarnLevel)
	chem.SetLogger(zap.New(core))
	Te.Cleanup(func() { chem.SetLogger(nil) })
	return logs
}

func TestFormula(Te *testing.T) {
	P := NewProcessor(nil)
	mol := P.ProcessFormula(chem.NewBuilder().NewAtomContainer(), "C6H6")
	require.Equal(Te, 6, mol.AtomCount())
	for _, at := range mol.Atoms {
		assert.Equal(Te, "C", at.Symbol)
	}
	mol = P.ProcessFormula(chem.NewBuilder().NewAtomContainer(), "C2H3ClO")
	var syms []string
	for _, at := range mol.Atoms {
		syms = append(syms, at.Symbol)
	}
	assert.Equal(Te, []string{"C", "C", "Cl", "O"}, syms)
}

func TestFormulaStopsAtGarbage(Te *testing.T) {
	logs := observe(Te)
	P := NewProcessor(nil)
	mol := P.ProcessFormula(chem.NewBuilder().NewAtomContainer(), "C2.H2O")
	assert.Equal(Te, 2, mol.AtomCount())
	assert.Equal(Te, 1, logs.Len())
}

func TestConnectionsBranch(Te *testing.T) {
	mol := withAtoms(5)
	require.NoError(Te, NewProcessor(nil).ProcessConnections("1-2(3-4)5", mol, NoSource))
	assert.Equal(Te, [][2]int{{1, 2}, {2, 3}, {3, 4}, {2, 5}}, bondPairs(mol))
}

func TestConnectionsNested(Te *testing.T) {
	mol := withAtoms(7)
	require.NoError(Te, NewProcessor(nil).ProcessConnections("1-2(3(4)5)6,7", mol, NoSource))
	//the comma outside a branch goes back to the start, which has no source.
	assert.Equal(Te, [][2]int{{1, 2}, {2, 3}, {3, 4}, {3, 5}, {2, 6}}, bondPairs(mol))

	mol = withAtoms(4)
	require.NoError(Te, NewProcessor(nil).ProcessConnections("1-2(3,4)", mol, NoSource))
	assert.Equal(Te, [][2]int{{1, 2}, {2, 3}, {2, 4}}, bondPairs(mol))
}

func TestConnectionsWithSource(Te *testing.T) {
	mol := withAtoms(3)
	require.NoError(Te, NewProcessor(nil).ProcessConnections("2-3", mol, 0))
	assert.Equal(Te, [][2]int{{1, 2}, {2, 3}}, bondPairs(mol))
}

func TestConnectionsMalformed(Te *testing.T) {
	logs := observe(Te)
	mol := withAtoms(4)
	require.NoError(Te, NewProcessor(nil).ProcessConnections("1-2x3-4", mol, NoSource))
	assert.Equal(Te, [][2]int{{1, 2}}, bondPairs(mol))
	assert.Equal(Te, 1, logs.FilterMessage("can't parse connections").Len())

	//an unclosed branch adds no bonds.
	mol = withAtoms(4)
	require.NoError(Te, NewProcessor(nil).ProcessConnections("1-2(3-4", mol, NoSource))
	assert.Equal(Te, [][2]int{{1, 2}}, bondPairs(mol))
	assert.Equal(Te, 2, logs.FilterMessage("can't parse connections").Len())

	mol = withAtoms(5)
	require.NoError(Te, NewProcessor(nil).ProcessConnections("1-2(3(4)-5", mol, NoSource))
	assert.Equal(Te, [][2]int{{1, 2}}, bondPairs(mol))
}

func TestConnectionsOutOfRange(Te *testing.T) {
	mol := withAtoms(2)
	assert.Error(Te, NewProcessor(nil).ProcessConnections("1-3", mol, NoSource))
}

func TestPlainReader(Te *testing.T) {
	text := "some header\nInChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3\n\nINChI=1/CH4/h1H4\nInChI=1S/C6H6/c1-2-4-6-5-3-1/h1-6H\n"
	file, err := NewReader(strings.NewReader(text)).ReadChemFile()
	require.NoError(Te, err)
	mols := file.Containers()
	require.Len(Te, mols, 3)
	assert.Equal(Te, 3, mols[0].AtomCount())
	assert.Equal(Te, 2, mols[0].BondCount())
	assert.Equal(Te, "O", mols[0].Atom(2).Symbol)
	assert.Equal(Te, 1, mols[1].AtomCount())
	//the h layer is not a connections layer.
	assert.Equal(Te, 0, mols[1].BondCount())
	assert.Equal(Te, 6, mols[2].BondCount())
	assert.Equal(Te, "INChI=1/CH4/h1H4", mols[1].StringProperty(chem.PropIdentifier))
}

func TestPlainReaderEmpty(Te *testing.T) {
	_, err := NewReader(strings.NewReader("nothing\n")).ReadChemFile()
	assert.Error(Te, err)
}

const xmlSample = `<?xml version="1.0" encoding="UTF-8"?>
<INChI version="1.12Beta">
 <structure number="1" id.name="ID" id.value="ethanol">
  <identifier version="1.12Beta" status="normal">
   <formula>C2H6O</formula>
   <connections>c1-2-3</connections>
  </identifier>
 </structure>
 <structure number="2">
  <identifier>
   <formula>C3H8</formula>
   <connections>c1-3-2</connections>
  </identifier>
 </structure>
</INChI>
`

func TestXMLReader(Te *testing.T) {
	file, err := NewXMLReader(strings.NewReader(xmlSample)).ReadChemFile()
	require.NoError(Te, err)
	mols := file.Containers()
	require.Len(Te, mols, 2)
	assert.Equal(Te, "1", mols[0].ID)
	assert.Equal(Te, [][2]int{{1, 2}, {2, 3}}, bondPairs(mols[0]))
	assert.Equal(Te, [][2]int{{1, 3}, {3, 2}}, bondPairs(mols[1]))
}

func TestXMLReaderErrors(Te *testing.T) {
	_, err := NewXMLReader(strings.NewReader("<foo/>")).ReadChemFile()
	assert.Error(Te, err)
	_, err = NewXMLReader(strings.NewReader("<INChI><structure>")).ReadChemFile()
	assert.Error(Te, err)
}
