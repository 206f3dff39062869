/*
 * molfile.go, part of gochemio.
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

const molfileFormat = "MDL molfile"

//MolfileReader reads molfiles and SD files. V2000 and V3000 connection tables
//are both understood, the version is taken from the counts line.
type MolfileReader struct {
	in  *chem.LineReader
	opt settings.IO
	log *zap.Logger
}

//NewMolfileReader returns a reader for the molfile or SD file in r.
func NewMolfileReader(r io.Reader, opts ...settings.Option) *MolfileReader {
	return &MolfileReader{
		in:  chem.NewLineReader(r, molfileFormat),
		opt: settings.Apply(opts...),
		log: chem.Log().Named("mdl"),
	}
}

//Close closes the underlying stream.
func (M *MolfileReader) Close() error {
	return M.in.Close()
}

//ReadMolecule reads the next record. SD fields following the connection
//table become properties of the molecule. It returns io.EOF when there are
//no more records.
func (M *MolfileReader) ReadMolecule() (*chem.AtomContainer, error) {
	title, err := nextRecord(M.in)
	if err != nil {
		return nil, err
	}
	mol := M.opt.Builder.NewAtomContainer()
	if err := readMolfile(M.in, title, mol, M.opt, M.log); err != nil {
		return nil, chem.Decorate(err, molfileFormat, "ReadMolecule")
	}
	if err := readSDFields(M.in, &mol.Properties, "$$$$"); err != nil {
		return nil, chem.Decorate(err, molfileFormat, "ReadMolecule")
	}
	return mol, nil
}

//ReadChemFile reads every record of the stream into one molecule set.
func (M *MolfileReader) ReadChemFile() (*chem.ChemFile, error) {
	var mols []*chem.AtomContainer
	for {
		mol, err := M.ReadMolecule()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		mols = append(mols, mol)
	}
	if len(mols) == 0 {
		return nil, chem.Errorf(molfileFormat, "no molecule found")
	}
	return chem.WrapContainers(M.opt.Builder, mols...), nil
}

//nextRecord returns the first line of the next record, or io.EOF if only
//blank lines are left.
func nextRecord(in *chem.LineReader) (string, error) {
	first, err := in.Next()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(first) != "" {
		return first, nil
	}
	//a blank title is legal, blank lines at the end of the file are not a record.
	var blanks []string
	blanks = append(blanks, first)
	for {
		line, err := in.Next()
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			in.Unread(line)
			for i := len(blanks) - 1; i > 0; i-- {
				in.Unread(blanks[i])
			}
			return first, nil
		}
		blanks = append(blanks, line)
	}
}

//readMolfile reads the molfile whose title line has already been read.
func readMolfile(in *chem.LineReader, title string, mol *chem.AtomContainer, opt settings.IO, log *zap.Logger) error {
	if t := strings.TrimSpace(title); t != "" {
		mol.SetTitle(t)
	}
	prog, err := in.Require("molfile header")
	if err != nil {
		return err
	}
	comment, err := in.Require("molfile header")
	if err != nil {
		return err
	}
	if c := strings.TrimSpace(comment); c != "" {
		mol.SetProperty(chem.PropComment, c)
	}
	counts, err := in.Require("counts line")
	if err != nil {
		return err
	}
	if strings.HasSuffix(strings.TrimSpace(counts), "V3000") {
		return readCTABV3000(in, mol, opt, log)
	}
	return readCTABV2000(in, counts, column(prog, 20, 22) == "3D", mol, opt, log)
}

func readCTABV2000(in *chem.LineReader, counts string, dim3 bool, mol *chem.AtomContainer, opt settings.IO, log *zap.Logger) error {
	natoms, err := intColumn(counts, 0, 3)
	if err != nil {
		return in.Errorf("can't read the atom count in %q", counts)
	}
	nbonds, err := intColumn(counts, 3, 6)
	if err != nil {
		return in.Errorf("can't read the bond count in %q", counts)
	}
	if natoms < 0 || nbonds < 0 {
		return in.Errorf("negative atom or bond count in %q", counts)
	}
	coords := make([]r3.Vec, natoms)
	for i := 0; i < natoms; i++ {
		line, err := in.Require("atom block")
		if err != nil {
			return err
		}
		at, err := readAtomV2000(in, line, &coords[i], opt)
		if err != nil {
			return err
		}
		if coords[i].Z != 0 {
			dim3 = true
		}
		mol.AddAtom(at)
	}
	for i, at := range mol.Atoms {
		if dim3 {
			p := coords[i]
			at.Point3D = &p
		} else {
			at.Point2D = &r2.Vec{X: coords[i].X, Y: coords[i].Y}
		}
	}
	for i := 0; i < nbonds; i++ {
		line, err := in.Require("bond block")
		if err != nil {
			return err
		}
		if err := readBondV2000(in, line, mol, opt, log); err != nil {
			return err
		}
	}
	return readPropertiesV2000(in, mol, opt, log)
}

func readAtomV2000(in *chem.LineReader, line string, coord *r3.Vec, opt settings.IO) (*chem.Atom, error) {
	var err [3]error
	coord.X, err[0] = floatColumn(line, 0, 10)
	coord.Y, err[1] = floatColumn(line, 10, 20)
	coord.Z, err[2] = floatColumn(line, 20, 30)
	for _, e := range err {
		if e != nil {
			return nil, in.Errorf("bad coordinates in atom line %q", line)
		}
	}
	sym := column(line, 31, 34)
	if sym == "" {
		return nil, in.Errorf("no element symbol in atom line %q", line)
	}
	at := opt.Builder.NewAtom(sym)
	code, cerr := intColumn(line, 36, 39)
	if cerr != nil {
		return nil, in.Errorf("bad charge code in atom line %q", line)
	}
	at.FormalCharge = chargeFromCode(code)
	//mass difference from the major isotope. M  ISO, if present, overrides it.
	dd, derr := intColumn(line, 34, 36)
	if derr != nil {
		return nil, in.Errorf("bad mass difference in atom line %q", line)
	}
	if major := chem.MajorIsotope(at.Symbol); dd != 0 && major > 0 {
		at.MassNumber = major + dd
	}
	if aam, err := intColumn(line, 60, 63); err == nil && aam > 0 {
		at.SetProperty(chem.PropAtomAtomMapping, aam)
	}
	return at, nil
}

func readBondV2000(in *chem.LineReader, line string, mol *chem.AtomContainer, opt settings.IO, log *zap.Logger) error {
	a1, err1 := intColumn(line, 0, 3)
	a2, err2 := intColumn(line, 3, 6)
	typ, err3 := intColumn(line, 6, 9)
	stereo, _ := intColumn(line, 9, 12)
	if err1 != nil || err2 != nil || err3 != nil {
		return in.Errorf("can't parse bond line %q", line)
	}
	n := mol.AtomCount()
	if a1 < 1 || a1 > n || a2 < 1 || a2 > n {
		return in.Errorf("bond line %q references atoms outside 1-%d", line, n)
	}
	b := opt.Builder.NewBond(mol.Atom(a1-1), mol.Atom(a2-1), chem.OrderUnset)
	if err := setBondType(b, typ, opt.Mode, log); err != nil {
		return in.Errorf("%s", err.Error())
	}
	switch {
	case b.Order == chem.Double && stereo == 3:
		b.Stereo = chem.StereoEZUnknown
	case stereo == 1:
		b.Stereo = chem.StereoUp
	case stereo == 4:
		b.Stereo = chem.StereoUpOrDown
	case stereo == 6:
		b.Stereo = chem.StereoDown
	}
	return mol.AddBond(b)
}

//setBondType applies an MDL bond type, which has the same meaning in V2000
//and V3000. Query types are an error in strict mode.
func setBondType(b *chem.Bond, typ int, mode chem.Mode, log *zap.Logger) error {
	switch {
	case typ >= 1 && typ <= 3:
		b.Order = chem.OrderFromInt(typ)
	case typ == 4:
		b.Aromatic = true
		for _, at := range b.Atoms {
			at.Aromatic = true
		}
	case typ >= 5 && typ <= 10:
		if mode == chem.Strict {
			return errors.New("query bond type " + strconv.Itoa(typ) + " is not allowed in strict mode")
		}
		log.Warn("query bond read with unset order", zap.Int("type", typ))
	default:
		return errors.New("unknown bond type " + strconv.Itoa(typ))
	}
	return nil
}

//readPropertiesV2000 reads the properties block up to M  END.
func readPropertiesV2000(in *chem.LineReader, mol *chem.AtomContainer, opt settings.IO, log *zap.Logger) error {
	chargesReset, isotopesReset := false, false
	for {
		line, err := in.Next()
		if errors.Is(err, io.EOF) {
			if opt.Mode == chem.Strict {
				return in.Errorf("end of file before M  END")
			}
			return nil
		}
		if err != nil {
			return err
		}
		switch {
		case strings.HasPrefix(line, "M  END"):
			return nil
		case line == "$$$$":
			in.Unread(line)
			if opt.Mode == chem.Strict {
				return in.Errorf("record ended before M  END")
			}
			return nil
		case strings.HasPrefix(line, "M  CHG"):
			//M  CHG supersedes the charges of the atom block.
			if !chargesReset {
				for _, at := range mol.Atoms {
					at.FormalCharge = 0
				}
				chargesReset = true
			}
			if err := propertyPairs(in, line, mol, func(at *chem.Atom, v int) { at.FormalCharge = v }); err != nil {
				return err
			}
		case strings.HasPrefix(line, "M  ISO"):
			//and M  ISO the mass differences.
			if !isotopesReset {
				for _, at := range mol.Atoms {
					at.MassNumber = 0
				}
				isotopesReset = true
			}
			if err := propertyPairs(in, line, mol, func(at *chem.Atom, v int) { at.MassNumber = v }); err != nil {
				return err
			}
		case strings.HasPrefix(line, "A  "), strings.HasPrefix(line, "G  "):
			//atom alias and group abbreviation take a second line.
			if err := in.Skip(1, line[:3]+"record"); err != nil {
				return err
			}
		default:
			log.Debug("skipping molfile property line", zap.String("line", line))
		}
	}
}

//propertyPairs reads lines like "M  CHG  2   1  -1   3   1": an entry count
//followed by (atom, value) pairs.
func propertyPairs(in *chem.LineReader, line string, mol *chem.AtomContainer, set func(*chem.Atom, int)) error {
	f := chem.Tokenize(line[6:])
	if len(f) == 0 {
		return in.Errorf("empty property line %q", line)
	}
	n, err := strconv.Atoi(f[0])
	if err != nil || n < 0 || len(f) < 1+2*n {
		return in.Errorf("malformed property line %q", line)
	}
	for i := 0; i < n; i++ {
		idx, err1 := strconv.Atoi(f[1+2*i])
		v, err2 := strconv.Atoi(f[2+2*i])
		if err1 != nil || err2 != nil || idx < 1 || idx > mol.AtomCount() {
			return in.Errorf("bad entry in property line %q", line)
		}
		set(mol.Atom(idx-1), v)
	}
	return nil
}

//readSDFields reads "> <key>" data items until the line end, or the end of
//the stream, and stores them in props. Lines outside data items are ignored.
func readSDFields(in *chem.LineReader, props *chem.Properties, end string) error {
	for {
		line, err := in.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == end {
			return nil
		}
		if !strings.HasPrefix(line, ">") {
			continue
		}
		key := sdKey(line)
		var value []string
		for {
			v, err := in.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return err
			}
			if v == end {
				in.Unread(v)
				break
			}
			if strings.TrimSpace(v) == "" {
				break
			}
			value = append(value, v)
		}
		if key != "" {
			props.SetProperty(key, strings.Join(value, "\n"))
		}
	}
}

//sdKey returns the name of a data header like ">  <name> (1)".
func sdKey(line string) string {
	a := strings.Index(line, "<")
	if a < 0 {
		return strings.TrimSpace(line[1:])
	}
	b := strings.Index(line[a:], ">")
	if b < 0 {
		return strings.TrimSpace(line[a+1:])
	}
	return line[a+1 : a+b]
}
