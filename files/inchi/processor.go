/*
 * processor.go, part of gochemio.
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

//Package inchi builds molecules from the formula and connections layers of
//InChI identifiers, in their plain text and XML forms.
package inchi

import (
	"strconv"
	"unicode"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
)

//NoSource is the source index meaning that the first atom of a connection
//string starts the chain and is not bonded to anything before it.
const NoSource = -1

//Processor turns the formula and connection layers of an InChI into atoms
//and bonds.
type Processor struct {
	b   chem.Builder
	log *zap.Logger
}

//NewProcessor returns a Processor that creates entities with b. A nil b
//means chem.NewBuilder().
func NewProcessor(b chem.Builder) *Processor {
	if b == nil {
		b = chem.NewBuilder()
	}
	return &Processor{b: b, log: chem.Log().Named("inchi")}
}

//ProcessFormula adds to mol the atoms of formula, i.e. "C6H6", in the order
//they appear. Hydrogens are implicit in InChI and are not added. Processing
//stops, with a logged error, at the first part that is not an element
//followed by an optional count. The atoms added so far are kept.
func (P *Processor) ProcessFormula(mol *chem.AtomContainer, formula string) *chem.AtomContainer {
	pos := 0
	for pos < len(formula) {
		start := pos
		if !isUpper(formula[pos]) {
			P.log.Error("can't parse formula", zap.String("formula", formula), zap.String("rest", formula[start:]))
			return mol
		}
		pos++
		if pos < len(formula) && isLower(formula[pos]) {
			pos++
		}
		sym := formula[start:pos]
		digits := pos
		for pos < len(formula) && isDigit(formula[pos]) {
			pos++
		}
		count := 1
		if pos > digits {
			count, _ = strconv.Atoi(formula[digits:pos])
		}
		if sym == "H" {
			continue
		}
		for i := 0; i < count; i++ {
			mol.AddAtom(P.b.NewAtom(sym))
		}
	}
	return mol
}

//ProcessConnections adds to mol the single bonds described by conn, the
//connections layer without its leading "c". Atom numbers in conn are
//1-based, source is the 0-based index of the atom the first number is
//bonded to, or NoSource. A branch in parentheses starts from the atom
//before it, and so does each comma-separated part of the branch. A
//malformed part stops processing with a logged error, keeping the bonds
//already made. An atom number outside mol is an error.
func (P *Processor) ProcessConnections(conn string, mol *chem.AtomContainer, source int) error {
	c := &connParser{s: conn, mol: mol, proc: P}
	_, err := c.chain(source, false)
	return err
}

type connParser struct {
	s    string
	pos  int
	mol  *chem.AtomContainer
	proc *Processor
	stop bool
}

func (c *connParser) malformed(why string) {
	c.proc.log.Error("can't parse connections", zap.String("connections", c.s), zap.Int("position", c.pos), zap.String("problem", why))
	c.stop = true
}

//chain reads atoms numbers and branches until the end of the string or,
//inside a branch, the closing parenthesis. anchor is the atom the chain
//starts from. It returns the last atom of the chain.
func (c *connParser) chain(anchor int, branch bool) (int, error) {
	source := anchor
	for c.pos < len(c.s) && !c.stop {
		ch := c.s[c.pos]
		switch {
		case ch == '(':
			//an unclosed branch is empty, and what follows is malformed.
			if c.closing(c.pos) < 0 {
				c.malformed("unbalanced parenthesis")
				return source, nil
			}
			c.pos++
			if _, err := c.chain(source, true); err != nil {
				return source, err
			}
			if c.stop {
				return source, nil
			}
			if c.pos >= len(c.s) || c.s[c.pos] != ')' {
				c.malformed("unbalanced parenthesis")
				return source, nil
			}
			c.pos++
		case ch == ')':
			if !branch {
				c.malformed("unexpected closing parenthesis")
			}
			return source, nil
		case ch == ',':
			c.pos++
			source = anchor
		case isDigit(ch):
			start := c.pos
			for c.pos < len(c.s) && isDigit(c.s[c.pos]) {
				c.pos++
			}
			target, _ := strconv.Atoi(c.s[start:c.pos])
			if target < 1 || target > c.mol.AtomCount() {
				return source, chem.Errorf("InChI", "connections %q reference atom %d, the molecule has %d", c.s, target, c.mol.AtomCount())
			}
			if source != NoSource {
				if source < 0 || source >= c.mol.AtomCount() {
					return source, chem.Errorf("InChI", "source atom %d out of range", source)
				}
				b := c.proc.b.NewBond(c.mol.Atom(source), c.mol.Atom(target-1), chem.Single)
				if err := c.mol.AddBond(b); err != nil {
					return source, chem.NewError("InChI", "can't add bond", err)
				}
			}
			source = target - 1
			if c.pos < len(c.s) && c.s[c.pos] == '-' {
				c.pos++
			}
		default:
			c.malformed("unexpected character " + strconv.QuoteRune(rune(ch)))
		}
	}
	if branch && !c.stop {
		c.malformed("unbalanced parenthesis")
	}
	return source, nil
}

//closing returns the index of the parenthesis closing the one at open, or -1.
func (c *connParser) closing(open int) int {
	depth := 0
	for i := open; i < len(c.s); i++ {
		switch c.s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isUpper(b byte) bool { return b < unicode.MaxASCII && unicode.IsUpper(rune(b)) }
func isLower(b byte) bool { return b < unicode.MaxASCII && unicode.IsLower(rune(b)) }
