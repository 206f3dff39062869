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

func rxnText(counts string, mols ...string) string {
	var b strings.Builder
	b.WriteString("$RXN\noxidation\n  gochemio\nmethoxide to formaldehyde\n")
	b.WriteString(counts + "\n")
	for _, m := range mols {
		b.WriteString("$MOL\n")
		b.WriteString(m)
	}
	return b.String()
}

func TestReadRXNV2000(Te *testing.T) {
	r, err := NewRXNV2000Reader(strings.NewReader(rxnText("  1  1", methoxide, formaldehyde))).ReadReaction()
	require.NoError(Te, err)
	assert.Equal(Te, "oxidation", r.StringProperty(chem.PropTitle))
	assert.Equal(Te, "methoxide to formaldehyde", r.StringProperty(chem.PropRemark))
	require.Equal(Te, 1, r.Reactants.Count())
	require.Equal(Te, 1, r.Products.Count())
	assert.Equal(Te, 0, r.Agents.Count())
	require.Len(Te, r.Mappings, 2)
	for _, m := range r.Mappings {
		assert.Equal(Te, m.Reactant.Symbol, m.Product.Symbol)
		assert.True(Te, r.Reactants.Containers[0].IndexOf(m.Reactant) >= 0)
		assert.True(Te, r.Products.Containers[0].IndexOf(m.Product) >= 0)
	}
}

func TestRXNMissingMOL(Te *testing.T) {
	text := "$RXN\n\n\n\n  1  1\nmethoxide\n"
	_, err := NewRXNV2000Reader(strings.NewReader(text)).ReadReaction()
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "methoxide")
}

func TestRXNTooFewMolecules(Te *testing.T) {
	_, err := NewRXNV2000Reader(strings.NewReader(rxnText("  2  1", methoxide, formaldehyde))).ReadReaction()
	assert.Error(Te, err)
}

func TestRXNAgentsByMode(Te *testing.T) {
	text := rxnText("  1  1  1", methoxide, formaldehyde, methoxide)
	_, err := NewRXNV2000Reader(strings.NewReader(text), settings.WithMode(chem.Strict)).ReadReaction()
	assert.Error(Te, err)

	r, err := NewRXNV2000Reader(strings.NewReader(text)).ReadReaction()
	require.NoError(Te, err)
	assert.Equal(Te, 1, r.Agents.Count())
	assert.Equal(Te, "methoxide", r.Agents.Containers[0].Title())
}

func TestMappingFirstMatch(Te *testing.T) {
	//both product atoms carry number 1, only the first is mapped.
	prod := strings.Replace(formaldehyde, "0  0  2  0  0", "0  0  1  0  0", 1)
	react := strings.Replace(methoxide, "0  0  2  0  0", "0  0  0  0  0", 1)
	r, err := NewRXNV2000Reader(strings.NewReader(rxnText("  1  1", react, prod))).ReadReaction()
	require.NoError(Te, err)
	require.Len(Te, r.Mappings, 1)
	assert.Same(Te, r.Products.Containers[0].Atom(0), r.Mappings[0].Product)
}

func buildReaction(b chem.Builder, title string) *chem.Reaction {
	r := b.NewReaction()
	r.SetProperty(chem.PropTitle, title)
	react, prod := b.NewAtomContainer(), b.NewAtomContainer()
	var ra, pa []*chem.Atom
	for i, s := range []string{"C", "O", "Cl"} {
		a := chem.NewAtom2D(b, s, float64(i), 0)
		react.AddAtom(a)
		ra = append(ra, a)
		p := chem.NewAtom2D(b, s, float64(i), 1)
		prod.AddAtom(p)
		pa = append(pa, p)
	}
	react.AddBond(b.NewBond(ra[0], ra[1], chem.Single))
	prod.AddBond(b.NewBond(pa[0], pa[1], chem.Double))
	r.Reactants.Add(react)
	r.Products.Add(prod)
	//Cl is not mapped.
	r.AddMapping(b.NewMapping(ra[0], pa[0]))
	r.AddMapping(b.NewMapping(ra[1], pa[1]))
	return r
}

func TestRXNRoundTrip(Te *testing.T) {
	b := chem.NewBuilder()
	set := b.NewReactionSet()
	set.Add(buildReaction(b, "first"))
	second := buildReaction(b, "second")
	second.SetProperty("yield", "95%")
	set.Add(second)

	var buf bytes.Buffer
	w := NewRXNV2000Writer(&buf)
	require.True(Te, w.Accepts(set))
	require.NoError(Te, w.Write(set))
	require.NoError(Te, w.Close())
	text := buf.String()
	assert.True(Te, strings.HasPrefix(text, "$RXN\n"))
	//the separator goes between reactions, not after the last one.
	assert.Equal(Te, 1, strings.Count(text, "$$$$"))
	assert.False(Te, strings.HasSuffix(strings.TrimSpace(text), "$$$$"))

	got, err := NewRXNV2000Reader(strings.NewReader(text)).ReadReactionSet()
	require.NoError(Te, err)
	require.Equal(Te, 2, got.Count())
	for i, r := range got.Reactions {
		assert.Equal(Te, 1, r.Reactants.Count())
		assert.Equal(Te, 1, r.Products.Count())
		require.Len(Te, r.Mappings, 2, "reaction %d", i)
		for _, m := range r.Mappings {
			n1, _ := m.Reactant.AtomAtomMapping()
			n2, _ := m.Product.AtomAtomMapping()
			assert.Equal(Te, n1, n2)
			assert.Equal(Te, m.Reactant.Symbol, m.Product.Symbol)
		}
	}
	assert.Equal(Te, "second", got.Reactions[1].StringProperty(chem.PropTitle))
	assert.Equal(Te, "95%", got.Reactions[1].StringProperty("yield"))
	assert.Equal(Te, chem.Double, got.Reactions[0].Products.Containers[0].Bonds[0].Order)
}

func TestRXNWriterRejectsEmpty(Te *testing.T) {
	b := chem.NewBuilder()
	r := b.NewReaction()
	r.Reactants.Add(b.NewAtomContainer())
	var buf bytes.Buffer
	assert.Error(Te, NewRXNV2000Writer(&buf).Write(r))
}

func TestRXNWriterRDFields(Te *testing.T) {
	b := chem.NewBuilder()
	var buf bytes.Buffer
	w := NewRXNV2000Writer(&buf)
	w.SetRDFields(map[string]string{"solvent": "water", "catalyst": "Pt"})
	require.NoError(Te, w.Write(buildReaction(b, "x")))
	require.NoError(Te, w.Close())
	text := buf.String()
	assert.Less(Te, strings.Index(text, "> <catalyst>"), strings.Index(text, "> <solvent>"))
	r, err := NewRXNV2000Reader(&buf).ReadReaction()
	require.NoError(Te, err)
	assert.Equal(Te, "water", r.StringProperty("solvent"))
}

func TestRXNCounts(Te *testing.T) {
	for line, want := range map[string][3]int{
		"  1  1":    {1, 1, 0},
		"  2100  1": {2, 100, 1},
		"  1  1  1": {1, 1, 1},
		"1 1":       {1, 1, 0},
		"2 1 1":     {2, 1, 1},
	} {
		nr, np, na, err := rxnCounts(line)
		require.NoError(Te, err, line)
		assert.Equal(Te, want, [3]int{nr, np, na}, line)
	}
	for _, line := range []string{" -1  1", "  1 -1", "  1  1 -1", "-1 1", "1", "  a  b"} {
		_, _, _, err := rxnCounts(line)
		assert.Error(Te, err, line)
	}
}

func TestRXNNegativeCounts(Te *testing.T) {
	r, err := NewRXNV2000Reader(strings.NewReader(rxnText(" -1  1", methoxide, formaldehyde))).ReadReaction()
	assert.Error(Te, err)
	assert.Nil(Te, r)
}
