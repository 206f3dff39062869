/*
 * rss.go, part of gochemio.
 *
 *
 * Copyright 2026 The gochemio authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package rss writes CMLRSS: an RSS 1.0 (RDF) channel where every item
//carries one molecule or reaction as embedded CML.
package rss

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/files/cml"
	"github.com/rmera/gochemio/settings"
)

const rssFormat = "CML enriched RSS"

//Namespaces used in the feed.
const (
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RSSNamespace = "http://purl.org/rss/1.0/"
	DCNamespace  = "http://purl.org/dc/elements/1.1/"
)

//PropDate is the property of molecules and reactions that holds the
//publication date (a time.Time) of their item.
const PropDate = "rss:Date"

//PropLink is the property that holds the link of an item. Items without it
//link to the channel link plus a fragment.
const PropLink = "rss:Link"

type resource struct {
	Resource string `xml:"rdf:resource,attr"`
}

type channel struct {
	About       string     `xml:"rdf:about,attr"`
	Title       string     `xml:"title"`
	Link        string     `xml:"link"`
	Description string     `xml:"description"`
	Creator     string     `xml:"dc:creator,omitempty"`
	Publisher   string     `xml:"dc:publisher,omitempty"`
	Items       []resource `xml:"items>rdf:Seq>rdf:li"`
}

type item struct {
	About       string        `xml:"rdf:about,attr"`
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	Description string        `xml:"description,omitempty"`
	Date        string        `xml:"dc:date,omitempty"`
	CML         *cml.Document `xml:"cml"`
}

type feed struct {
	XMLName  xml.Name `xml:"rdf:RDF"`
	XmlnsRDF string   `xml:"xmlns:rdf,attr"`
	Xmlns    string   `xml:"xmlns,attr"`
	XmlnsDC  string   `xml:"xmlns:dc,attr"`
	Channel  channel  `xml:"channel"`
	Items    []item   `xml:"item"`
}

//Writer writes one feed per call to Write. The channel comes from the RSS
//section of the settings.
type Writer struct {
	out *chem.Sink
	opt settings.IO
	log *zap.Logger
}

//NewWriter returns a writer to w.
func NewWriter(w io.Writer, opts ...settings.Option) *Writer {
	return &Writer{out: chem.NewSink(w, rssFormat), opt: settings.Apply(opts...), log: chem.Log().Named("rss")}
}

//entries returns the molecules and reactions in obj, each will be an item.
func entries(obj chem.Object) []chem.Object {
	var ret []chem.Object
	switch o := obj.(type) {
	case *chem.Reaction:
		return []chem.Object{o}
	case *chem.ReactionSet:
		for _, r := range o.Reactions {
			ret = append(ret, r)
		}
		return ret
	case *chem.ChemFile:
		for _, r := range o.Reactions() {
			ret = append(ret, r)
		}
	}
	for _, mol := range chem.ContainersOf(obj) {
		ret = append(ret, mol)
	}
	return ret
}

//Accepts returns true if obj holds at least one molecule or reaction.
func (W *Writer) Accepts(obj chem.Object) bool {
	return len(entries(obj)) > 0
}

func (W *Writer) item(obj chem.Object, n int, base string) (item, error) {
	it := item{}
	doc, err := cml.NewDocument(obj)
	if err != nil {
		return it, err
	}
	it.CML = doc
	switch o := obj.(type) {
	case *chem.Reaction:
		it.Title = o.StringProperty(chem.PropTitle)
		if it.Title == "" {
			it.Title = "reaction " + strconv.Itoa(n)
		}
		it.Description = strconv.Itoa(o.Reactants.Count()) + " reactants, " + strconv.Itoa(o.Products.Count()) + " products"
	case *chem.AtomContainer:
		it.Title = o.Title()
		it.Description = chem.FormulaString(o)
		if it.Title == "" {
			it.Title = it.Description
		}
	}
	it.Link, _ = stringProperty(obj, PropLink)
	if it.Link == "" {
		it.Link = base + "#item" + strconv.Itoa(n)
	}
	it.About = it.Link
	if v, ok := obj.Property(PropDate); ok {
		if t, ok := v.(time.Time); ok {
			it.Date = t.UTC().Format(time.RFC3339)
		} else {
			W.log.Warn("ignoring date that is not a time.Time", zap.Int("item", n))
		}
	}
	return it, nil
}

func stringProperty(obj chem.Object, key string) (string, bool) {
	v, ok := obj.Property(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

//Write writes obj as a feed.
func (W *Writer) Write(obj chem.Object) error {
	ents := entries(obj)
	if len(ents) == 0 {
		return chem.Errorf(rssFormat, "nothing to write in %T", obj)
	}
	cfg := W.opt.Settings.RSS
	f := feed{XmlnsRDF: RDFNamespace, Xmlns: RSSNamespace, XmlnsDC: DCNamespace}
	f.Channel = channel{
		About:       cfg.Link,
		Title:       cfg.Title,
		Link:        cfg.Link,
		Description: cfg.Description,
		Creator:     cfg.Creator,
		Publisher:   cfg.Publisher,
	}
	base := strings.TrimSuffix(cfg.Link, "/")
	for i, e := range ents {
		it, err := W.item(e, i+1, base)
		if err != nil {
			return err
		}
		f.Items = append(f.Items, it)
		f.Channel.Items = append(f.Channel.Items, resource{it.About})
	}
	W.out.Printf("%s", xml.Header)
	enc := xml.NewEncoder(W.out)
	enc.Indent("", "  ")
	if err := enc.Encode(f); err != nil {
		return chem.NewError(rssFormat, "can't encode feed", err)
	}
	W.out.Line("")
	return W.out.Flush()
}

//Close flushes and closes the underlying stream.
func (W *Writer) Close() error {
	return W.out.Close()
}
