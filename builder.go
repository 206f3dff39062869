/*
 * builder.go, part of gochemio.
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

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

//Builder creates every entity a reader produces. Readers never build atoms,
//bonds or containers directly, so a different Builder can change what
//is created (defaults, interning, annotations) without touching the readers.
type Builder interface {
	NewAtom(symbol string) *Atom
	NewBond(a, b *Atom, order BondOrder) *Bond
	NewAtomContainer() *AtomContainer
	NewAtomContainerSet() *AtomContainerSet
	NewReaction() *Reaction
	NewReactionSet() *ReactionSet
	NewMapping(reactant, product *Atom) *Mapping
	NewCrystal() *Crystal
	NewChemModel() *ChemModel
	NewChemSequence() *ChemSequence
	NewChemFile() *ChemFile
}

//DefaultBuilder is the Builder used when a reader is not given one.
//New atoms get their atomic number from the element table.
type DefaultBuilder struct{}

//NewBuilder returns a DefaultBuilder.
func NewBuilder() Builder {
	return DefaultBuilder{}
}

func (DefaultBuilder) NewAtom(symbol string) *Atom {
	return &Atom{Symbol: symbol, AtomicNumber: AtomicNumber(symbol)}
}

func (DefaultBuilder) NewBond(a, b *Atom, order BondOrder) *Bond {
	return &Bond{Atoms: []*Atom{a, b}, Order: order}
}

func (DefaultBuilder) NewAtomContainer() *AtomContainer {
	return &AtomContainer{}
}

func (DefaultBuilder) NewAtomContainerSet() *AtomContainerSet {
	return &AtomContainerSet{}
}

func (B DefaultBuilder) NewReaction() *Reaction {
	return &Reaction{
		Reactants: B.NewAtomContainerSet(),
		Products:  B.NewAtomContainerSet(),
		Agents:    B.NewAtomContainerSet(),
	}
}

func (DefaultBuilder) NewReactionSet() *ReactionSet {
	return &ReactionSet{}
}

func (DefaultBuilder) NewMapping(reactant, product *Atom) *Mapping {
	return &Mapping{Reactant: reactant, Product: product}
}

func (DefaultBuilder) NewCrystal() *Crystal {
	return &Crystal{Z: 1}
}

func (DefaultBuilder) NewChemModel() *ChemModel {
	return &ChemModel{}
}

func (DefaultBuilder) NewChemSequence() *ChemSequence {
	return &ChemSequence{}
}

func (DefaultBuilder) NewChemFile() *ChemFile {
	return &ChemFile{}
}

//NewAtom2D builds an atom with b and gives it 2D coordinates.
func NewAtom2D(b Builder, symbol string, x, y float64) *Atom {
	at := b.NewAtom(symbol)
	at.Point2D = &r2.Vec{X: x, Y: y}
	return at
}

//NewAtom3D builds an atom with b and gives it 3D coordinates.
func NewAtom3D(b Builder, symbol string, x, y, z float64) *Atom {
	at := b.NewAtom(symbol)
	at.Point3D = &r3.Vec{X: x, Y: y, Z: z}
	return at
}
