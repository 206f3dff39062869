/*
 * atomicdata.go, part of gochemio.
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

import "strings"

//Element symbols ordered by atomic number. The 0th entry is the
//pseudo-element used for unknown atoms and R groups.
var symbols = [...]string{
	"R",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

//Mass numbers of the most abundant (or most stable) isotope, by atomic number.
var majorIsotopes = [...]int{
	0,
	1, 4,
	7, 9, 11, 12, 14, 16, 19, 20,
	23, 24, 27, 28, 31, 32, 35, 40,
	39, 40, 45, 48, 51, 52, 55, 56, 59, 58, 63, 64, 69, 74, 75, 80, 79, 84,
	85, 88, 89, 90, 93, 98, 98, 102, 103, 106, 107, 114, 115, 120, 121, 130, 127, 132,
	133, 138, 139, 140, 141, 142, 145, 152, 153, 158, 159, 164, 165, 166, 169, 174, 175,
	180, 181, 184, 187, 192, 193, 195, 197, 202, 205, 208, 209, 209, 210, 222,
	223, 226, 227, 232, 231, 238, 237, 244, 243, 247, 247, 251, 252, 257, 258, 259, 262,
}

//MajorIsotope returns the mass number of the most abundant isotope of the
//element s, or 0 if unknown.
func MajorIsotope(s string) int {
	n := AtomicNumber(s)
	if n < 1 || n >= len(majorIsotopes) {
		return 0
	}
	return majorIsotopes[n]
}

var symbolNumber map[string]int

func init() {
	symbolNumber = make(map[string]int, len(symbols))
	for i, s := range symbols {
		symbolNumber[s] = i
	}
	symbolNumber["D"] = 1 //deuterium and tritium, as MDL writes them
	symbolNumber["T"] = 1
}

//AtomicNumber returns the atomic number for the element symbol s, or 0 if
//s is not an element symbol. Symbols are case sensitive.
func AtomicNumber(s string) int {
	return symbolNumber[s]
}

//Symbol returns the element symbol for the atomic number n, or "" if out of range.
func Symbol(n int) string {
	if n < 1 || n >= len(symbols) {
		return ""
	}
	return symbols[n]
}

//IsElement returns true if s is an element symbol.
func IsElement(s string) bool {
	return symbolNumber[s] > 0
}

//NormalizeSymbol fixes the capitalization of element symbols written in
//upper case by some programs (i.e. "CL" becomes "Cl").
func NormalizeSymbol(s string) string {
	if len(s) < 2 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
