/*
 * container.go, part of gochemio.
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

import "fmt"

//AtomContainer is an ordered list of atoms plus the bonds among them.
type AtomContainer struct {
	Properties
	Atoms []*Atom
	Bonds []*Bond
	ID    string
}

//AddAtom appends at to the container.
func (C *AtomContainer) AddAtom(at *Atom) {
	C.Atoms = append(C.Atoms, at)
}

//AddBond appends b to the container. All the atoms in b must already be in C.
func (C *AtomContainer) AddBond(b *Bond) error {
	for _, at := range b.Atoms {
		if C.IndexOf(at) < 0 {
			return fmt.Errorf("AddBond: bond references an atom (%s) that is not in the container", at.Symbol)
		}
	}
	C.Bonds = append(C.Bonds, b)
	return nil
}

//Atom returns the atom with index i. Panics if out of range.
func (C *AtomContainer) Atom(i int) *Atom {
	if i < 0 || i >= len(C.Atoms) {
		panic("AtomContainer: Requested Atom out of bounds")
	}
	return C.Atoms[i]
}

//AtomCount returns the number of atoms.
func (C *AtomContainer) AtomCount() int {
	return len(C.Atoms)
}

//BondCount returns the number of bonds.
func (C *AtomContainer) BondCount() int {
	return len(C.Bonds)
}

//IndexOf returns the index of at in the container, or -1.
func (C *AtomContainer) IndexOf(at *Atom) int {
	for i, v := range C.Atoms {
		if v == at {
			return i
		}
	}
	return -1
}

//Bond returns the bond joining a and b, or nil.
func (C *AtomContainer) Bond(a, b *Atom) *Bond {
	for _, v := range C.Bonds {
		if v.Joins(a, b) {
			return v
		}
	}
	return nil
}

//ConnectedBonds returns the bonds that contain at, in container order.
func (C *AtomContainer) ConnectedBonds(at *Atom) []*Bond {
	var ret []*Bond
	for _, v := range C.Bonds {
		if v.Contains(at) {
			ret = append(ret, v)
		}
	}
	return ret
}

//Title returns the PropTitle property, or "".
func (C *AtomContainer) Title() string {
	return C.StringProperty(PropTitle)
}

//SetTitle sets the PropTitle property.
func (C *AtomContainer) SetTitle(t string) {
	C.SetProperty(PropTitle, t)
}

//Has3D returns true if every atom has 3D coordinates.
func (C *AtomContainer) Has3D() bool {
	if len(C.Atoms) == 0 {
		return false
	}
	for _, v := range C.Atoms {
		if v.Point3D == nil {
			return false
		}
	}
	return true
}

//Has2D returns true if every atom has 2D coordinates.
func (C *AtomContainer) Has2D() bool {
	if len(C.Atoms) == 0 {
		return false
	}
	for _, v := range C.Atoms {
		if v.Point2D == nil {
			return false
		}
	}
	return true
}

//TotalFormalCharge sums the formal charges of all atoms.
func (C *AtomContainer) TotalFormalCharge() int {
	q := 0
	for _, v := range C.Atoms {
		q += v.FormalCharge
	}
	return q
}

//AtomContainerSet is an ordered collection of containers.
type AtomContainerSet struct {
	Properties
	Containers []*AtomContainer
}

//Add appends c to the set.
func (S *AtomContainerSet) Add(c *AtomContainer) {
	S.Containers = append(S.Containers, c)
}

//Count returns the number of containers in the set.
func (S *AtomContainerSet) Count() int {
	if S == nil {
		return 0
	}
	return len(S.Containers)
}

//Mapping pairs one reactant atom with the product atom it becomes.
type Mapping struct {
	Properties
	Reactant *Atom
	Product  *Atom
}

//Reaction holds the reactants, products and agents of a reaction, and the
//atom-atom mappings between reactants and products.
type Reaction struct {
	Properties
	Reactants *AtomContainerSet
	Products  *AtomContainerSet
	Agents    *AtomContainerSet
	Mappings  []*Mapping
	ID        string
}

//AddMapping appends m to the mappings of the reaction.
func (R *Reaction) AddMapping(m *Mapping) {
	R.Mappings = append(R.Mappings, m)
}

//ReactionSet is an ordered collection of reactions.
type ReactionSet struct {
	Properties
	Reactions []*Reaction
}

//Add appends r to the set.
func (S *ReactionSet) Add(r *Reaction) {
	S.Reactions = append(S.Reactions, r)
}

//Count returns the number of reactions.
func (S *ReactionSet) Count() int {
	if S == nil {
		return 0
	}
	return len(S.Reactions)
}
