package cml

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/gochemio"
)

func methanol(b chem.Builder) *chem.AtomContainer {
	mol := b.NewAtomContainer()
	mol.SetTitle("methanol")
	c := chem.NewAtom2D(b, "C", 0, 0)
	o := chem.NewAtom2D(b, "O", 1.4, 0)
	mol.AddAtom(c)
	mol.AddAtom(o)
	_ = mol.AddBond(b.NewBond(c, o, chem.Single))
	mol.SetProperty("cas", "67-56-1")
	return mol
}

func TestWriteMolecule(Te *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(Te, w.Write(methanol(chem.NewBuilder())))
	require.NoError(Te, w.Close())
	out := buf.String()
	assert.True(Te, strings.HasPrefix(out, xml.Header))
	assert.Contains(Te, out, `<cml xmlns="http://www.xml-cml.org/schema">`)
	assert.Contains(Te, out, `<atom id="m1_a2" elementType="O" x2="1.4" y2="0"></atom>`)
	assert.Contains(Te, out, `<bond id="m1_b1" atomRefs2="m1_a1 m1_a2" order="S"></bond>`)
	var doc Document
	require.NoError(Te, xml.Unmarshal(buf.Bytes(), &doc))
	require.Len(Te, doc.Molecules, 1)
	assert.Equal(Te, "methanol", doc.Molecules[0].Title)
	require.Len(Te, doc.Molecules[0].Properties, 1)
	assert.Equal(Te, "67-56-1", doc.Molecules[0].Properties[0].Scalar.Value)
	assert.Empty(Te, doc.Reactions)
}

func TestWriteReaction(Te *testing.T) {
	b := chem.NewBuilder()
	r := b.NewReaction()
	r.SetProperty(chem.PropTitle, "nothing happens")
	re, pr := methanol(b), methanol(b)
	r.Reactants.Add(re)
	r.Products.Add(pr)
	r.AddMapping(b.NewMapping(re.Atom(1), pr.Atom(1)))
	doc, err := NewDocument(r)
	require.NoError(Te, err)
	require.Len(Te, doc.Reactions, 1)
	rx := doc.Reactions[0]
	assert.Equal(Te, "r1_r1", rx.Reactants[0].ID)
	assert.Equal(Te, "r1_p1_a1", rx.Products[0].Atoms[0].ID)
	require.NotNil(Te, rx.Map)
	assert.Equal(Te, []Link{{From: "r1_r1_a2", To: "r1_p1_a2"}}, rx.Map.Links)
	out, err := xml.Marshal(doc)
	require.NoError(Te, err)
	assert.Contains(Te, string(out), "<reactionList><reaction id=\"r1\" title=\"nothing happens\"><reactantList><reactant><molecule id=\"r1_r1\"")
	assert.NotContains(Te, string(out), "spectatorList")
}

func TestWriteCrystal(Te *testing.T) {
	b := chem.NewBuilder()
	cr := b.NewCrystal()
	cr.A, cr.B, cr.C = r3.Vec{X: 4}, r3.Vec{Y: 4}, r3.Vec{Z: 4}
	cr.SpaceGroup = "Fm-3m"
	cr.AddAtom(chem.NewAtom3D(b, "Cu", 2, 2, 0))
	doc, err := NewDocument(cr)
	require.NoError(Te, err)
	m := doc.Molecules[0]
	require.NotNil(Te, m.Crystal)
	assert.Equal(Te, "Fm-3m", m.Crystal.Symmetry.SpaceGroup)
	assert.Equal(Te, "4.00000", m.Crystal.Scalars[0].Value)
	assert.Equal(Te, "cml:gamma", m.Crystal.Scalars[5].DictRef)
	assert.InDelta(Te, 0.5, *m.Atoms[0].XFract, 1e-9)
	assert.InDelta(Te, 0.0, *m.Atoms[0].ZFract, 1e-9)
}

func TestCMLRejects(Te *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	assert.False(Te, w.Accepts(&chem.AtomContainerSet{}))
	assert.Error(Te, w.Write(&chem.ReactionSet{}))
}

func TestWriteReactionAgents(Te *testing.T) {
	b := chem.NewBuilder()
	r := b.NewReaction()
	r.Reactants.Add(methanol(b))
	r.Products.Add(methanol(b))
	r.Agents.Add(methanol(b))
	doc, err := NewDocument(r)
	require.NoError(Te, err)
	rx := doc.Reactions[0]
	require.NotNil(Te, rx.Spectators)
	require.Len(Te, rx.Spectators.Molecules, 1)
	assert.Equal(Te, "r1_s1", rx.Spectators.Molecules[0].ID)
	out, err := xml.Marshal(doc)
	require.NoError(Te, err)
	assert.Contains(Te, string(out), "<spectatorList><spectator><molecule id=\"r1_s1\"")
}
