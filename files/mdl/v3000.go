/*
 * v3000.go, part of gochemio.
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
	"errors"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const v30Prefix = "M  V30 "

//ReadCommand reads one V3000 command: the text after the "M  V30 " prefix.
//A command ending in "-" continues in the next line, and the pieces are
//joined without separator. A line without the prefix is an error.
func ReadCommand(in *chem.LineReader) (string, error) {
	line, err := in.Require("V3000 command")
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(line, v30Prefix) {
		return "", in.Errorf("expected a line starting with %q, got %q", v30Prefix, line)
	}
	body := strings.TrimRight(line[len(v30Prefix):], " \t")
	if strings.HasSuffix(body, "-") {
		rest, err := ReadCommand(in)
		if err != nil {
			return "", err
		}
		return body[:len(body)-1] + rest, nil
	}
	return body, nil
}

//splitCommand splits a command in fields. Parenthesized lists and
//double-quoted strings are one field each.
func splitCommand(cmd string) []string {
	var ret []string
	var cur strings.Builder
	depth := 0
	quoted := false
	for _, r := range cmd {
		switch {
		case r == '"':
			quoted = !quoted
		case r == '(' && !quoted:
			depth++
		case r == ')' && !quoted && depth > 0:
			depth--
		case (r == ' ' || r == '\t') && depth == 0 && !quoted:
			if cur.Len() > 0 {
				ret = append(ret, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		ret = append(ret, cur.String())
	}
	return ret
}

//keyValues returns the KEY=VALUE fields of a command.
func keyValues(fields []string) map[string]string {
	ret := make(map[string]string)
	for _, v := range fields {
		if k, val, ok := strings.Cut(v, "="); ok {
			ret[strings.ToUpper(k)] = val
		}
	}
	return ret
}

//MolfileV3000Reader reads V3000 molfiles. The header block is optional,
//so it can also read the connection tables embedded in V3000 RXN files.
type MolfileV3000Reader struct {
	in  *chem.LineReader
	opt settings.IO
	log *zap.Logger
}

//NewMolfileV3000Reader returns a reader for the V3000 molfile in r.
func NewMolfileV3000Reader(r io.Reader, opts ...settings.Option) *MolfileV3000Reader {
	return &MolfileV3000Reader{
		in:  chem.NewLineReader(r, "MDL molfile V3000"),
		opt: settings.Apply(opts...),
		log: chem.Log().Named("mdl"),
	}
}

//Close closes the underlying stream.
func (M *MolfileV3000Reader) Close() error {
	return M.in.Close()
}

//ReadMolecule reads one molecule.
func (M *MolfileV3000Reader) ReadMolecule() (*chem.AtomContainer, error) {
	first, err := M.in.Require("V3000 molfile")
	if err != nil {
		return nil, err
	}
	mol := M.opt.Builder.NewAtomContainer()
	if strings.HasPrefix(first, v30Prefix) {
		M.in.Unread(first)
		err = readCTABV3000(M.in, mol, M.opt, M.log)
	} else {
		err = readMolfile(M.in, first, mol, M.opt, M.log)
	}
	if err != nil {
		return nil, chem.Decorate(err, "MDL molfile V3000", "ReadMolecule")
	}
	return mol, nil
}

//ReadChemFile reads the molecule and wraps it in a ChemFile.
func (M *MolfileV3000Reader) ReadChemFile() (*chem.ChemFile, error) {
	mol, err := M.ReadMolecule()
	if err != nil {
		return nil, err
	}
	return chem.WrapContainers(M.opt.Builder, mol), nil
}

//ctabV3000 holds the state of a connection table being read.
type ctabV3000 struct {
	in     *chem.LineReader
	mol    *chem.AtomContainer
	opt    settings.IO
	log    *zap.Logger
	byIdx  map[int]*chem.Atom
	natoms int
	nbonds int
	dim3   bool
}

//readCTABV3000 reads from BEGIN CTAB to END CTAB, and then up to M  END,
//which may be missing.
func readCTABV3000(in *chem.LineReader, mol *chem.AtomContainer, opt settings.IO, log *zap.Logger) error {
	C := &ctabV3000{in: in, mol: mol, opt: opt, log: log, byIdx: make(map[int]*chem.Atom), natoms: -1, nbonds: -1}
	inside := false
	for {
		cmd, err := ReadCommand(in)
		if err != nil {
			return err
		}
		f := splitCommand(cmd)
		if len(f) == 0 {
			continue
		}
		switch {
		case cmd == "BEGIN CTAB":
			inside = true
		case !inside:
			return in.Errorf("expected BEGIN CTAB, got %q", cmd)
		case f[0] == "COUNTS":
			if len(f) < 3 {
				return in.Errorf("malformed COUNTS command %q", cmd)
			}
			C.natoms, err = strconv.Atoi(f[1])
			if err == nil {
				C.nbonds, err = strconv.Atoi(f[2])
			}
			if err != nil || C.natoms < 0 || C.nbonds < 0 {
				return in.Errorf("malformed COUNTS command %q", cmd)
			}
		case cmd == "BEGIN ATOM":
			if err := C.atoms(); err != nil {
				return err
			}
		case cmd == "BEGIN BOND":
			if err := C.bonds(); err != nil {
				return err
			}
		case cmd == "END CTAB":
			if err := C.check(); err != nil {
				return err
			}
			C.setCoords()
			return skipToEnd(in)
		case f[0] == "BEGIN" && len(f) > 1:
			log.Debug("skipping V3000 block", zap.String("block", f[1]))
			if err := skipBlock(in, "END "+f[1]); err != nil {
				return err
			}
		default:
			log.Debug("skipping V3000 command", zap.String("command", cmd))
		}
	}
}

//skipBlock consumes commands up to and including end.
func skipBlock(in *chem.LineReader, end string) error {
	for {
		cmd, err := ReadCommand(in)
		if err != nil {
			return err
		}
		if strings.HasPrefix(cmd, end) {
			return nil
		}
	}
}

//skipToEnd consumes lines up to M  END. The end of the stream or an SD
//record separator also end the molecule.
func skipToEnd(in *chem.LineReader) error {
	for {
		line, err := in.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.HasPrefix(line, "M  END") {
			return nil
		}
		if line == "$$$$" {
			in.Unread(line)
			return nil
		}
	}
}

//atoms reads "index type x y z aamap [KEY=VALUE...]" lines up to END ATOM.
func (C *ctabV3000) atoms() error {
	for {
		cmd, err := ReadCommand(C.in)
		if err != nil {
			return err
		}
		if cmd == "END ATOM" {
			return nil
		}
		f := splitCommand(cmd)
		if len(f) < 6 {
			return C.in.Errorf("malformed atom command %q", cmd)
		}
		idx, err := strconv.Atoi(f[0])
		if err != nil {
			return C.in.Errorf("bad atom index in %q", cmd)
		}
		var xyz [3]float64
		for i := range xyz {
			if xyz[i], err = strconv.ParseFloat(f[2+i], 64); err != nil {
				return C.in.Errorf("bad coordinates in %q", cmd)
			}
		}
		at := C.opt.Builder.NewAtom(f[1])
		if xyz[2] != 0 {
			C.dim3 = true
		}
		at.Point3D = &r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		if aam, err := strconv.Atoi(f[5]); err == nil && aam > 0 {
			at.SetProperty(chem.PropAtomAtomMapping, aam)
		}
		kv := keyValues(f[6:])
		if q, ok := kv["CHG"]; ok {
			if at.FormalCharge, err = strconv.Atoi(q); err != nil {
				return C.in.Errorf("bad CHG value in %q", cmd)
			}
		}
		if m, ok := kv["MASS"]; ok {
			if at.MassNumber, err = strconv.Atoi(m); err != nil {
				return C.in.Errorf("bad MASS value in %q", cmd)
			}
		}
		if _, dup := C.byIdx[idx]; dup {
			return C.in.Errorf("atom index %d used twice", idx)
		}
		C.byIdx[idx] = at
		C.mol.AddAtom(at)
	}
}

//bonds reads "index type atom1 atom2 [KEY=VALUE...]" lines up to END BOND.
func (C *ctabV3000) bonds() error {
	for {
		cmd, err := ReadCommand(C.in)
		if err != nil {
			return err
		}
		if cmd == "END BOND" {
			return nil
		}
		f := splitCommand(cmd)
		if len(f) < 4 {
			return C.in.Errorf("malformed bond command %q", cmd)
		}
		typ, err1 := strconv.Atoi(f[1])
		i1, err2 := strconv.Atoi(f[2])
		i2, err3 := strconv.Atoi(f[3])
		if err1 != nil || err2 != nil || err3 != nil {
			return C.in.Errorf("malformed bond command %q", cmd)
		}
		a1, ok1 := C.byIdx[i1]
		a2, ok2 := C.byIdx[i2]
		if !ok1 || !ok2 {
			return C.in.Errorf("bond %q references an undefined atom", cmd)
		}
		b := C.opt.Builder.NewBond(a1, a2, chem.OrderUnset)
		if err := setBondType(b, typ, C.opt.Mode, C.log); err != nil {
			return C.in.Errorf("%s", err.Error())
		}
		switch keyValues(f[4:])["CFG"] {
		case "1":
			b.Stereo = chem.StereoUp
		case "2":
			if b.Order == chem.Double {
				b.Stereo = chem.StereoEZUnknown
			} else {
				b.Stereo = chem.StereoUpOrDown
			}
		case "3":
			b.Stereo = chem.StereoDown
		}
		if err := C.mol.AddBond(b); err != nil {
			return C.in.Errorf("%s", err.Error())
		}
	}
}

//check compares what was read with the COUNTS command.
func (C *ctabV3000) check() error {
	if C.natoms < 0 {
		if C.opt.Mode == chem.Strict {
			return C.in.Errorf("connection table without COUNTS")
		}
		return nil
	}
	if C.natoms == C.mol.AtomCount() && C.nbonds == C.mol.BondCount() {
		return nil
	}
	if C.opt.Mode == chem.Strict {
		return C.in.Errorf("COUNTS declares %d atoms and %d bonds, read %d and %d", C.natoms, C.nbonds, C.mol.AtomCount(), C.mol.BondCount())
	}
	C.log.Warn("V3000 counts don't match the connection table",
		zap.Int("declaredAtoms", C.natoms), zap.Int("atoms", C.mol.AtomCount()),
		zap.Int("declaredBonds", C.nbonds), zap.Int("bonds", C.mol.BondCount()))
	return nil
}

//flat tables get 2D coordinates.
func (C *ctabV3000) setCoords() {
	if C.dim3 {
		return
	}
	for _, at := range C.mol.Atoms {
		at.Point2D = &r2.Vec{X: at.Point3D.X, Y: at.Point3D.Y}
		at.Point3D = nil
	}
}
