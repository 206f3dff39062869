/*
 * model.go, part of gochemio.
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

package chem

import "gonum.org/v1/gonum/spatial/r3"

//Crystal is a container whose atoms live in a unit cell defined by the
//axes A, B and C.
type Crystal struct {
	AtomContainer
	A, B, C    r3.Vec
	SpaceGroup string
	Z          int
}

//ChemModel holds at most one of a molecule set, a reaction set or a crystal.
//Setting one of them discards whichever was there before.
type ChemModel struct {
	Properties
	moleculeSet *AtomContainerSet
	reactionSet *ReactionSet
	crystal     *Crystal
}

//MoleculeSet returns the molecule set of the model, or nil.
func (M *ChemModel) MoleculeSet() *AtomContainerSet { return M.moleculeSet }

//ReactionSet returns the reaction set of the model, or nil.
func (M *ChemModel) ReactionSet() *ReactionSet { return M.reactionSet }

//Crystal returns the crystal of the model, or nil.
func (M *ChemModel) Crystal() *Crystal { return M.crystal }

//SetMoleculeSet makes s the content of the model.
func (M *ChemModel) SetMoleculeSet(s *AtomContainerSet) {
	M.moleculeSet, M.reactionSet, M.crystal = s, nil, nil
}

//SetReactionSet makes s the content of the model.
func (M *ChemModel) SetReactionSet(s *ReactionSet) {
	M.moleculeSet, M.reactionSet, M.crystal = nil, s, nil
}

//SetCrystal makes c the content of the model.
func (M *ChemModel) SetCrystal(c *Crystal) {
	M.moleculeSet, M.reactionSet, M.crystal = nil, nil, c
}

//IsEmpty returns true if the model holds nothing.
func (M *ChemModel) IsEmpty() bool {
	return M.moleculeSet == nil && M.reactionSet == nil && M.crystal == nil
}

//ChemSequence is an ordered list of models, for instance the frames of a
//multi-structure file.
type ChemSequence struct {
	Properties
	Models []*ChemModel
}

//Add appends m to the sequence.
func (S *ChemSequence) Add(m *ChemModel) {
	S.Models = append(S.Models, m)
}

//ChemFile is the top of the hierarchy: an ordered list of sequences.
type ChemFile struct {
	Properties
	Sequences []*ChemSequence
}

//Add appends s to the file.
func (F *ChemFile) Add(s *ChemSequence) {
	F.Sequences = append(F.Sequences, s)
}

//Models returns all the models in the file, in order.
func (F *ChemFile) Models() []*ChemModel {
	var ret []*ChemModel
	for _, s := range F.Sequences {
		ret = append(ret, s.Models...)
	}
	return ret
}

//Containers returns every molecule held by the models of the file, in order,
//including the atoms of crystals.
func (F *ChemFile) Containers() []*AtomContainer {
	var ret []*AtomContainer
	for _, m := range F.Models() {
		if ms := m.MoleculeSet(); ms != nil {
			ret = append(ret, ms.Containers...)
		}
		if c := m.Crystal(); c != nil {
			ret = append(ret, &c.AtomContainer)
		}
	}
	return ret
}

//Reactions returns every reaction held by the models of the file, in order.
func (F *ChemFile) Reactions() []*Reaction {
	var ret []*Reaction
	for _, m := range F.Models() {
		if rs := m.ReactionSet(); rs != nil {
			ret = append(ret, rs.Reactions...)
		}
	}
	return ret
}

//WrapContainers puts the given containers in a new one-model, one-sequence
//file built with b.
func WrapContainers(b Builder, cs ...*AtomContainer) *ChemFile {
	set := b.NewAtomContainerSet()
	for _, c := range cs {
		set.Add(c)
	}
	model := b.NewChemModel()
	model.SetMoleculeSet(set)
	return WrapModels(b, model)
}

//WrapModels puts the given models in a new one-sequence file built with b.
func WrapModels(b Builder, ms ...*ChemModel) *ChemFile {
	seq := b.NewChemSequence()
	for _, m := range ms {
		seq.Add(m)
	}
	file := b.NewChemFile()
	file.Add(seq)
	return file
}

//ContainersOf returns the molecules held by obj, which can be a molecule,
//a crystal, a molecule set, a model or a file. It returns nil for anything else.
func ContainersOf(obj Object) []*AtomContainer {
	switch o := obj.(type) {
	case *AtomContainer:
		return []*AtomContainer{o}
	case *Crystal:
		return []*AtomContainer{&o.AtomContainer}
	case *AtomContainerSet:
		return o.Containers
	case *ChemModel:
		f := &ChemFile{}
		f.Add(&ChemSequence{Models: []*ChemModel{o}})
		return f.Containers()
	case *ChemFile:
		return o.Containers()
	}
	return nil
}

//CrystalOf returns the crystal held by obj (a crystal, a model or a file), or nil.
func CrystalOf(obj Object) *Crystal {
	switch o := obj.(type) {
	case *Crystal:
		return o
	case *ChemModel:
		return o.Crystal()
	case *ChemFile:
		for _, m := range o.Models() {
			if c := m.Crystal(); c != nil {
				return c
			}
		}
	}
	return nil
}
