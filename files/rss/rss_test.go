package rss

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

func TestWriteFeed(Te *testing.T) {
	b := chem.NewBuilder()
	mol := b.NewAtomContainer()
	mol.SetTitle("argon")
	mol.AddAtom(chem.NewAtom3D(b, "Ar", 0, 0, 0))
	mol.SetProperty(PropDate, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	r := b.NewReaction()
	r.Reactants.Add(mol)
	r.Products.Add(mol)
	file := chem.WrapContainers(b, mol)

	s := settings.Default()
	s.RSS.Link = "http://example.org/feed/"
	s.RSS.Creator = "lab"
	var buf bytes.Buffer
	w := NewWriter(&buf, settings.WithSettings(s))
	require.True(Te, w.Accepts(file))
	require.NoError(Te, w.Write(file))
	require.NoError(Te, w.Close())
	out := buf.String()
	assert.Contains(Te, out, `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/" xmlns:dc="http://purl.org/dc/elements/1.1/">`)
	assert.Contains(Te, out, `<channel rdf:about="http://example.org/feed/">`)
	assert.Contains(Te, out, "<title>gochemio feed</title>")
	assert.Contains(Te, out, "<dc:creator>lab</dc:creator>")
	assert.Contains(Te, out, `<rdf:li rdf:resource="http://example.org/feed#item1"></rdf:li>`)
	assert.Contains(Te, out, "<dc:date>2024-05-01T12:00:00Z</dc:date>")
	assert.Contains(Te, out, `<cml xmlns="http://www.xml-cml.org/schema">`)
	assert.Equal(Te, 1, strings.Count(out, "<item "))

	buf.Reset()
	set := b.NewReactionSet()
	set.Add(r)
	w = NewWriter(&buf)
	require.NoError(Te, w.Write(set))
	assert.Contains(Te, buf.String(), "<title>reaction 1</title>")
	assert.Contains(Te, buf.String(), "<description>1 reactants, 1 products</description>")
}

func TestFeedRejects(Te *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	assert.False(Te, w.Accepts(&chem.ReactionSet{}))
	assert.Error(Te, w.Write(&chem.AtomContainerSet{}))
}
