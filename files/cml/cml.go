/*
 * cml.go, part of gochemio.
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

//Package cml writes molecules, reactions and crystals as CML 2 documents.
//The elements are plain encoding/xml structs, so other writers (i.e. the
//CMLRSS one) can embed them.
package cml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const cmlFormat = "CML"

//Namespace is the CML namespace.
const Namespace = "http://www.xml-cml.org/schema"

//Document is a <cml> root element.
type Document struct {
	XMLName   xml.Name    `xml:"cml"`
	Xmlns     string      `xml:"xmlns,attr"`
	Molecules []*Molecule `xml:"molecule"`
	Reactions []*Reaction `xml:"reactionList>reaction,omitempty"`
}

//Molecule is a <molecule> element.
type Molecule struct {
	ID         string     `xml:"id,attr,omitempty"`
	Title      string     `xml:"title,attr,omitempty"`
	Crystal    *Crystal   `xml:"crystal,omitempty"`
	Atoms      []Atom     `xml:"atomArray>atom"`
	Bonds      []Bond     `xml:"bondArray>bond,omitempty"`
	Properties []Property `xml:"propertyList>property,omitempty"`
}

//Atom is an <atom> element. Missing coordinates are left out.
type Atom struct {
	ID           string   `xml:"id,attr"`
	ElementType  string   `xml:"elementType,attr"`
	FormalCharge int      `xml:"formalCharge,attr,omitempty"`
	Isotope      int      `xml:"isotopeNumber,attr,omitempty"`
	X2           *float64 `xml:"x2,attr,omitempty"`
	Y2           *float64 `xml:"y2,attr,omitempty"`
	X3           *float64 `xml:"x3,attr,omitempty"`
	Y3           *float64 `xml:"y3,attr,omitempty"`
	Z3           *float64 `xml:"z3,attr,omitempty"`
	XFract       *float64 `xml:"xFract,attr,omitempty"`
	YFract       *float64 `xml:"yFract,attr,omitempty"`
	ZFract       *float64 `xml:"zFract,attr,omitempty"`
	Charge       *float64 `xml:"partialCharge,attr,omitempty"`
}

//Bond is a <bond> element.
type Bond struct {
	ID       string  `xml:"id,attr"`
	AtomRefs string  `xml:"atomRefs2,attr"`
	Order    string  `xml:"order,attr"`
	Stereo   *Stereo `xml:"bondStereo,omitempty"`
}

//Stereo is a <bondStereo> element: W (wedge) or H (hatch).
type Stereo struct {
	Value string `xml:",chardata"`
}

//Property is a <property> holding one <scalar>.
type Property struct {
	Title  string `xml:"title,attr"`
	Scalar Scalar `xml:"scalar"`
}

//Scalar is a <scalar> element.
type Scalar struct {
	DictRef string `xml:"dictRef,attr,omitempty"`
	Units   string `xml:"units,attr,omitempty"`
	Value   string `xml:",chardata"`
}

//Crystal is a <crystal> element: the six cell parameters and the space group.
type Crystal struct {
	Z        int      `xml:"z,attr,omitempty"`
	Scalars  []Scalar `xml:"scalar"`
	Symmetry Symmetry `xml:"symmetry"`
}

//Symmetry is a <symmetry> element.
type Symmetry struct {
	SpaceGroup string `xml:"spaceGroup,attr"`
}

//Reaction is a <reaction> element.
type Reaction struct {
	ID         string         `xml:"id,attr,omitempty"`
	Title      string         `xml:"title,attr,omitempty"`
	Reactants  []*Molecule    `xml:"reactantList>reactant>molecule"`
	Products   []*Molecule    `xml:"productList>product>molecule"`
	Spectators *SpectatorList `xml:"spectatorList,omitempty"`
	Map        *Map           `xml:"map,omitempty"`
}

//SpectatorList holds the agents of a reaction. It is nil when there are none.
type SpectatorList struct {
	Molecules []*Molecule `xml:"spectator>molecule"`
}

//Map holds the atom-atom mappings of a reaction.
type Map struct {
	Links []Link `xml:"link"`
}

//Link maps a reactant atom (From) to a product atom (To).
type Link struct {
	From string `xml:"from,attr"`
	To   string `xml:"to,attr"`
}

func float(v float64) *float64 {
	return &v
}

func bondOrder(b *chem.Bond) string {
	if b.Aromatic {
		return "A"
	}
	switch b.Order {
	case chem.Single:
		return "S"
	case chem.Double:
		return "D"
	case chem.Triple:
		return "T"
	case chem.Quadruple:
		return "4"
	}
	return "S"
}

//NewMolecule returns the element for mol, with id as its id. Atom ids are
//the molecule id followed by "_a" and the 1-based atom index.
func NewMolecule(mol *chem.AtomContainer, id string) *Molecule {
	ret := &Molecule{ID: id, Title: mol.Title()}
	aid := func(at *chem.Atom) string {
		return id + "_a" + strconv.Itoa(mol.IndexOf(at)+1)
	}
	for _, at := range mol.Atoms {
		a := Atom{ID: aid(at), ElementType: at.Symbol, FormalCharge: at.FormalCharge, Isotope: at.MassNumber, Charge: at.Charge}
		if p := at.Point2D; p != nil {
			a.X2, a.Y2 = float(p.X), float(p.Y)
		}
		if p := at.Point3D; p != nil {
			a.X3, a.Y3, a.Z3 = float(p.X), float(p.Y), float(p.Z)
		}
		if p := at.FractionalPoint3D; p != nil {
			a.XFract, a.YFract, a.ZFract = float(p.X), float(p.Y), float(p.Z)
		}
		ret.Atoms = append(ret.Atoms, a)
	}
	for i, b := range mol.Bonds {
		if len(b.Atoms) != 2 {
			continue
		}
		bond := Bond{ID: id + "_b" + strconv.Itoa(i+1), AtomRefs: aid(b.Begin()) + " " + aid(b.End()), Order: bondOrder(b)}
		switch b.Stereo {
		case chem.StereoUp:
			bond.Stereo = &Stereo{"W"}
		case chem.StereoDown:
			bond.Stereo = &Stereo{"H"}
		}
		ret.Bonds = append(ret.Bonds, bond)
	}
	for _, k := range mol.PropertyKeys() {
		if k == chem.PropTitle {
			continue
		}
		v, _ := mol.Property(k)
		ret.Properties = append(ret.Properties, Property{Title: k, Scalar: Scalar{Value: fmt.Sprint(v)}})
	}
	return ret
}

//NewCrystal returns the element for cr: a molecule with a crystal child.
func NewCrystal(cr *chem.Crystal, id string) *Molecule {
	ret := NewMolecule(&cr.AtomContainer, id)
	la, lb, lc, alpha, beta, gamma := chem.CellParameters(cr.A, cr.B, cr.C)
	c := &Crystal{Z: cr.Z, Symmetry: Symmetry{SpaceGroup: cr.SpaceGroup}}
	for i, v := range []float64{la, lb, lc, alpha, beta, gamma} {
		units := "units:angstrom"
		if i > 2 {
			units = "units:degree"
		}
		c.Scalars = append(c.Scalars, Scalar{DictRef: "cml:" + [...]string{"a", "b", "c", "alpha", "beta", "gamma"}[i], Units: units, Value: strconv.FormatFloat(v, 'f', 5, 64)})
	}
	ret.Crystal = c
	//CML wants fractional coordinates in crystals.
	for i, at := range cr.Atoms {
		if ret.Atoms[i].XFract != nil {
			continue
		}
		if f, ok, err := cr.FractionalPoint(at); ok && err == nil {
			ret.Atoms[i].XFract, ret.Atoms[i].YFract, ret.Atoms[i].ZFract = float(f.X), float(f.Y), float(f.Z)
		}
	}
	return ret
}

//NewReaction returns the element for r. Component ids are id followed by
//"_r", "_p" or "_s" and the 1-based index, so atom ids are unique within
//the reaction.
func NewReaction(r *chem.Reaction, id string) *Reaction {
	ret := &Reaction{ID: id, Title: r.StringProperty(chem.PropTitle)}
	ids := make(map[*chem.Atom]string)
	add := func(set *chem.AtomContainerSet, tag string) []*Molecule {
		if set == nil {
			return nil
		}
		var mols []*Molecule
		for i, mol := range set.Containers {
			m := NewMolecule(mol, id+"_"+tag+strconv.Itoa(i+1))
			for j, at := range mol.Atoms {
				ids[at] = m.Atoms[j].ID
			}
			mols = append(mols, m)
		}
		return mols
	}
	ret.Reactants = add(r.Reactants, "r")
	ret.Products = add(r.Products, "p")
	if agents := add(r.Agents, "s"); len(agents) > 0 {
		ret.Spectators = &SpectatorList{Molecules: agents}
	}
	for _, m := range r.Mappings {
		from, ok1 := ids[m.Reactant]
		to, ok2 := ids[m.Product]
		if !ok1 || !ok2 {
			continue
		}
		if ret.Map == nil {
			ret.Map = &Map{}
		}
		ret.Map.Links = append(ret.Map.Links, Link{From: from, To: to})
	}
	return ret
}

//NewDocument returns a <cml> document with everything in obj: molecules,
//crystals and reactions. It fails if obj holds none of them.
func NewDocument(obj chem.Object) (*Document, error) {
	doc := &Document{Xmlns: Namespace}
	switch o := obj.(type) {
	case *chem.Reaction:
		doc.Reactions = append(doc.Reactions, NewReaction(o, "r1"))
	case *chem.ReactionSet:
		for i, r := range o.Reactions {
			doc.Reactions = append(doc.Reactions, NewReaction(r, "r"+strconv.Itoa(i+1)))
		}
	case *chem.Crystal:
		doc.Molecules = append(doc.Molecules, NewCrystal(o, "m1"))
	case *chem.ChemFile, *chem.ChemModel:
		var models []*chem.ChemModel
		if f, ok := o.(*chem.ChemFile); ok {
			models = f.Models()
		} else {
			models = []*chem.ChemModel{o.(*chem.ChemModel)}
		}
		for _, m := range models {
			if ms := m.MoleculeSet(); ms != nil {
				for _, mol := range ms.Containers {
					doc.Molecules = append(doc.Molecules, NewMolecule(mol, "m"+strconv.Itoa(len(doc.Molecules)+1)))
				}
			}
			if cr := m.Crystal(); cr != nil {
				doc.Molecules = append(doc.Molecules, NewCrystal(cr, "m"+strconv.Itoa(len(doc.Molecules)+1)))
			}
			if rs := m.ReactionSet(); rs != nil {
				for _, r := range rs.Reactions {
					doc.Reactions = append(doc.Reactions, NewReaction(r, "r"+strconv.Itoa(len(doc.Reactions)+1)))
				}
			}
		}
	default:
		for i, mol := range chem.ContainersOf(obj) {
			doc.Molecules = append(doc.Molecules, NewMolecule(mol, "m"+strconv.Itoa(i+1)))
		}
	}
	if len(doc.Molecules) == 0 && len(doc.Reactions) == 0 {
		return nil, chem.Errorf(cmlFormat, "nothing to write in %T", obj)
	}
	return doc, nil
}

//Writer writes one CML document per call to Write.
type Writer struct {
	out *chem.Sink
	opt settings.IO
	log *zap.Logger
}

//NewWriter returns a writer to w.
func NewWriter(w io.Writer, opts ...settings.Option) *Writer {
	return &Writer{out: chem.NewSink(w, cmlFormat), opt: settings.Apply(opts...), log: chem.Log().Named("cml")}
}

//Accepts returns true for molecules, crystals, reactions and their containers.
func (W *Writer) Accepts(obj chem.Object) bool {
	_, err := NewDocument(obj)
	return err == nil
}

//Write writes obj as a CML document.
func (W *Writer) Write(obj chem.Object) error {
	doc, err := NewDocument(obj)
	if err != nil {
		return err
	}
	W.log.Debug("writing CML", zap.Int("molecules", len(doc.Molecules)), zap.Int("reactions", len(doc.Reactions)))
	W.out.Printf("%s", xml.Header)
	enc := xml.NewEncoder(W.out)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return chem.NewError(cmlFormat, "can't encode CML", err)
	}
	W.out.Line("")
	return W.out.Flush()
}

//Close flushes and closes the underlying stream.
func (W *Writer) Close() error {
	return W.out.Close()
}
