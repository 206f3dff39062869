/*
 * ctx.go, part of gochemio.
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

//Package ctx reads CTX files, the connection table format of the
//CLIFF/Chemical Concepts programs.
//
//A CTX file is a sequence of blocks. Each starts with a command line " /NAME   n",
//where the command is in columns 3-10 and the number of lines in the block
//is in columns 19-21.
package ctx

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const ctxFormat = "CTX"

//Reader reads one molecule from a CTX file.
type Reader struct {
	in  *chem.LineReader
	opt settings.IO
	log *zap.Logger
}

//NewReader returns a reader for the CTX file in r.
func NewReader(r io.Reader, opts ...settings.Option) *Reader {
	return &Reader{in: chem.NewLineReader(r, ctxFormat), opt: settings.Apply(opts...), log: chem.Log().Named("ctx")}
}

//Close closes the underlying stream.
func (R *Reader) Close() error {
	return R.in.Close()
}

//command splits a command line in its name and line count.
func command(line string) (string, int, error) {
	name := field(line, 2, 10)
	count := field(line, 18, 21)
	if name == "" {
		return "", 0, errors.New("no command name")
	}
	if count == "" {
		//short lines: the count is the last field.
		f := chem.Tokenize(line)
		if len(f) < 2 {
			return name, 0, nil
		}
		count = f[len(f)-1]
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return "", 0, errors.New("bad line count " + strconv.Quote(count))
	}
	return name, n, nil
}

func field(line string, a, b int) string {
	if a >= len(line) {
		return ""
	}
	if b > len(line) {
		b = len(line)
	}
	return strings.TrimSpace(line[a:b])
}

//ReadMolecule reads the molecule in the file.
func (R *Reader) ReadMolecule() (*chem.AtomContainer, error) {
	mol := R.opt.Builder.NewAtomContainer()
	seen := false
	for {
		line, err := R.in.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(line, " /") {
			continue
		}
		name, n, err := command(line)
		if err != nil {
			return nil, R.in.Errorf("malformed command line %q: %s", line, err.Error())
		}
		seen = true
		switch name {
		case "IDENT":
			err = R.text(n, func(s string) { mol.SetProperty(chem.PropIdentifier, s) })
		case "NAME":
			err = R.text(n, func(s string) { mol.SetTitle(s) })
		case "ATOMS":
			err = R.atoms(n, mol)
		case "BONDS":
			err = R.bonds(n, mol)
		default:
			if R.opt.Mode == chem.Strict {
				return nil, R.in.Errorf("unknown command %q", name)
			}
			R.log.Warn("skipping unknown CTX block", zap.String("command", name), zap.Int("lines", n))
			err = R.in.Skip(n, name+" block")
		}
		if err != nil {
			return nil, chem.Decorate(err, ctxFormat, "ReadMolecule")
		}
	}
	if !seen {
		return nil, chem.Errorf(ctxFormat, "no CTX command found")
	}
	return mol, nil
}

//text reads n lines and hands them, joined, to set.
func (R *Reader) text(n int, set func(string)) error {
	var parts []string
	for i := 0; i < n; i++ {
		line, err := R.in.Require("text block")
		if err != nil {
			return err
		}
		parts = append(parts, strings.TrimSpace(line))
	}
	set(strings.Join(parts, " "))
	return nil
}

//atoms reads n atom lines. The atomic number is in columns 8-10.
func (R *Reader) atoms(n int, mol *chem.AtomContainer) error {
	for i := 0; i < n; i++ {
		line, err := R.in.Require("ATOMS block")
		if err != nil {
			return err
		}
		z, err := strconv.Atoi(field(line, 7, 10))
		if err != nil {
			return R.in.Errorf("bad atomic number in %q", line)
		}
		sym := chem.Symbol(z)
		if sym == "" {
			return R.in.Errorf("unknown atomic number %d", z)
		}
		mol.AddAtom(R.opt.Builder.NewAtom(sym))
	}
	return nil
}

//bonds reads n bond lines: atoms in columns 11-13 and 17-19, the order from
//column 24 on. Every bond is listed from both atoms, the second time is dropped.
func (R *Reader) bonds(n int, mol *chem.AtomContainer) error {
	for i := 0; i < n; i++ {
		line, err := R.in.Require("BONDS block")
		if err != nil {
			return err
		}
		a1, err1 := strconv.Atoi(field(line, 10, 13))
		a2, err2 := strconv.Atoi(field(line, 16, 19))
		order, err3 := strconv.Atoi(field(line, 23, len(line)))
		if err1 != nil || err2 != nil || err3 != nil {
			return R.in.Errorf("malformed bond line %q", line)
		}
		if a1 < 1 || a2 < 1 || a1 > mol.AtomCount() || a2 > mol.AtomCount() {
			return R.in.Errorf("bond line %q references atoms outside 1-%d", line, mol.AtomCount())
		}
		at1, at2 := mol.Atom(a1-1), mol.Atom(a2-1)
		if mol.Bond(at1, at2) != nil {
			R.log.Debug("dropping repeated bond", zap.Int("atom1", a1), zap.Int("atom2", a2))
			continue
		}
		if err := mol.AddBond(R.opt.Builder.NewBond(at1, at2, chem.OrderFromInt(order))); err != nil {
			return err
		}
	}
	return nil
}

//ReadChemFile reads the molecule and wraps it in a ChemFile.
func (R *Reader) ReadChemFile() (*chem.ChemFile, error) {
	mol, err := R.ReadMolecule()
	if err != nil {
		return nil, err
	}
	return chem.WrapContainers(R.opt.Builder, mol), nil
}
