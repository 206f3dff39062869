/*
 * chem.go, part of gochemio.
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
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

//Keys for the properties that readers and writers exchange. The set is small
//and fixed on purpose, formats that need to carry something else use their own key.
const (
	PropTitle           = "chem:Title"
	PropRemark          = "chem:Remark"
	PropComment         = "chem:Comment"
	PropAtomAtomMapping = "chem:AtomAtomMapping"
	PropIdentifier      = "chem:Identifier"
	PropName            = "chem:Name"
)

//Properties is a string-keyed bag of annotations. The zero value is ready to use.
type Properties struct {
	m map[string]interface{}
}

//Property returns the value stored under key, and whether it was present.
func (P *Properties) Property(key string) (interface{}, bool) {
	if P.m == nil {
		return nil, false
	}
	v, ok := P.m[key]
	return v, ok
}

//SetProperty stores v under key. A nil v removes the key.
func (P *Properties) SetProperty(key string, v interface{}) {
	if v == nil {
		P.RemoveProperty(key)
		return
	}
	if P.m == nil {
		P.m = make(map[string]interface{})
	}
	P.m[key] = v
}

//RemoveProperty deletes key from the bag.
func (P *Properties) RemoveProperty(key string) {
	delete(P.m, key)
}

//PropertyKeys returns the keys present, sorted.
func (P *Properties) PropertyKeys() []string {
	keys := make([]string, 0, len(P.m))
	for k := range P.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

//StringProperty returns the property under key if it is a string, or "".
func (P *Properties) StringProperty(key string) string {
	v, ok := P.Property(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

//IntProperty returns the property under key if it is an int.
func (P *Properties) IntProperty(key string) (int, bool) {
	v, ok := P.Property(key)
	if !ok {
		return 0, false
	}
	i, ok := v.(int)
	return i, ok
}

//Object is anything that carries properties: atoms, bonds, containers, reactions
//and the model containers. Writers take Objects.
type Object interface {
	Property(key string) (interface{}, bool)
	SetProperty(key string, v interface{})
}

//Atom contains the per-atom information read from a file. Coordinates
//are optional, a nil point means the file did not have them.
type Atom struct {
	Properties
	Symbol            string
	AtomicNumber      int
	Point2D           *r2.Vec
	Point3D           *r3.Vec
	FractionalPoint3D *r3.Vec
	FormalCharge      int
	Charge            *float64 //partial charge
	MassNumber        int      //0 means the major isotope
	Aromatic          bool
	AtomTypeName      string
	ID                string
}

//SetCharge sets the partial charge of the atom.
func (A *Atom) SetCharge(q float64) {
	A.Charge = &q
}

//PartialCharge returns the partial charge of the atom, or 0 if not set.
func (A *Atom) PartialCharge() float64 {
	if A.Charge == nil {
		return 0
	}
	return *A.Charge
}

//AtomAtomMapping returns the atom-atom mapping number of A, if any.
func (A *Atom) AtomAtomMapping() (int, bool) {
	n, ok := A.IntProperty(PropAtomAtomMapping)
	if !ok || n == 0 {
		return 0, false
	}
	return n, true
}

//BondOrder is the multiplicity of a bond.
type BondOrder int

const (
	OrderUnset BondOrder = iota
	Single
	Double
	Triple
	Quadruple
)

//Numeric returns the order as an integer (0 for unset).
func (O BondOrder) Numeric() int {
	return int(O)
}

//OrderFromInt returns the BondOrder for n, or OrderUnset if n is not between 1 and 4.
func OrderFromInt(n int) BondOrder {
	if n < 1 || n > 4 {
		return OrderUnset
	}
	return BondOrder(n)
}

func (O BondOrder) String() string {
	switch O {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Quadruple:
		return "quadruple"
	}
	return "unset"
}

//BondStereo is the wedge/hash annotation of a bond, as seen from its first atom.
type BondStereo int

const (
	StereoNone BondStereo = iota
	StereoUp
	StereoDown
	StereoUpOrDown
	StereoEZUnknown
)

//Bond joins two atoms (or more, for query bonds).
type Bond struct {
	Properties
	Atoms    []*Atom
	Order    BondOrder
	Aromatic bool
	Stereo   BondStereo
	ID       string
}

//Begin returns the first atom of the bond.
func (B *Bond) Begin() *Atom {
	return B.Atoms[0]
}

//End returns the second atom of the bond.
func (B *Bond) End() *Atom {
	return B.Atoms[1]
}

//Contains returns true if at is one of the atoms in the bond.
func (B *Bond) Contains(at *Atom) bool {
	for _, v := range B.Atoms {
		if v == at {
			return true
		}
	}
	return false
}

//Other returns the atom at the other side of a 2-atom bond. It panics
//if origin is not in the bond, as that can only be a programming error.
func (B *Bond) Other(origin *Atom) *Atom {
	if B.Atoms[0] == origin {
		return B.Atoms[1]
	}
	if B.Atoms[1] == origin {
		return B.Atoms[0]
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!")
}

//Joins returns true if the bond connects a and b.
func (B *Bond) Joins(a, b *Atom) bool {
	return len(B.Atoms) == 2 && ((B.Atoms[0] == a && B.Atoms[1] == b) || (B.Atoms[0] == b && B.Atoms[1] == a))
}
