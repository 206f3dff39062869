/*
 * rxnwriter.go, part of gochemio.
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

package mdl

import (
	"io"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

//RXNV2000Writer writes reactions as MDL RXN V2000 files. When more than one
//reaction is written, each one after the first is preceded by a $$$$ line.
type RXNV2000Writer struct {
	out      *chem.Sink
	opt      settings.IO
	log      *zap.Logger
	written  int
	rdFields map[string]string
}

//NewRXNV2000Writer returns a writer to w.
func NewRXNV2000Writer(w io.Writer, opts ...settings.Option) *RXNV2000Writer {
	return &RXNV2000Writer{out: chem.NewSink(w, rxnFormat), opt: settings.Apply(opts...), log: chem.Log().Named("mdl")}
}

//SetRDFields sets data items written after every reaction, in addition to
//the properties of the reaction itself.
func (R *RXNV2000Writer) SetRDFields(fields map[string]string) {
	R.rdFields = fields
}

//Accepts returns true for reactions, reaction sets, and models and files
//holding reactions.
func (R *RXNV2000Writer) Accepts(obj chem.Object) bool {
	return len(reactions(obj)) > 0
}

func reactions(obj chem.Object) []*chem.Reaction {
	switch o := obj.(type) {
	case *chem.Reaction:
		return []*chem.Reaction{o}
	case *chem.ReactionSet:
		return o.Reactions
	case *chem.ChemModel:
		if rs := o.ReactionSet(); rs != nil {
			return rs.Reactions
		}
	case *chem.ChemFile:
		return o.Reactions()
	}
	return nil
}

//Write writes every reaction in obj.
func (R *RXNV2000Writer) Write(obj chem.Object) error {
	rs := reactions(obj)
	if len(rs) == 0 {
		return chem.Errorf(rxnFormat, "nothing to write in %T", obj)
	}
	for _, r := range rs {
		if err := R.writeReaction(r); err != nil {
			return chem.Decorate(err, rxnFormat, "Write")
		}
	}
	return R.out.Flush()
}

//writeReaction replaces the atom-atom mapping numbers of the atoms in r with
//1..n, from its Mappings, so the atoms are modified.
func (R *RXNV2000Writer) writeReaction(r *chem.Reaction) error {
	if r.Reactants.Count() == 0 || r.Products.Count() == 0 {
		return chem.Errorf(rxnFormat, "a reaction needs at least one reactant and one product (got %d and %d)",
			r.Reactants.Count(), r.Products.Count())
	}
	if r.Agents.Count() > 0 {
		R.log.Warn("agents are not written to RXN V2000", zap.Int("agents", r.Agents.Count()))
	}
	if R.written > 0 {
		R.out.Line("$$$$")
	}
	out := R.out
	out.Line("$RXN")
	out.Line(truncate(r.StringProperty(chem.PropTitle), 80))
	out.Line("")
	out.Line(truncate(r.StringProperty(chem.PropRemark), 80))
	out.Printf("%3d%3d\n", r.Reactants.Count(), r.Products.Count())
	for _, set := range []*chem.AtomContainerSet{r.Reactants, r.Products} {
		for _, mol := range set.Containers {
			for _, at := range mol.Atoms {
				at.RemoveProperty(chem.PropAtomAtomMapping)
			}
		}
	}
	for i, m := range r.Mappings {
		if m.Reactant != nil {
			m.Reactant.SetProperty(chem.PropAtomAtomMapping, i+1)
		}
		if m.Product != nil {
			m.Product.SetProperty(chem.PropAtomAtomMapping, i+1)
		}
	}
	for _, set := range []*chem.AtomContainerSet{r.Reactants, r.Products} {
		for _, mol := range set.Containers {
			out.Line("$MOL")
			writeMolfile(out, mol, R.opt, R.log)
		}
	}
	for _, k := range sdFields(&r.Properties, R.opt.Settings.SDFields) {
		v, _ := r.Property(k)
		writeField(out, k, v)
	}
	for _, k := range sortedKeys(R.rdFields) {
		if _, dup := r.Property(k); dup {
			continue
		}
		writeField(out, k, R.rdFields[k])
	}
	R.written++
	return out.Err()
}

//Close flushes and closes the underlying stream.
func (R *RXNV2000Writer) Close() error {
	return R.out.Close()
}
