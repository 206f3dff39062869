/*
 * writer.go, part of gochemio.
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
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

//writeMolfile writes mol as a V2000 molfile, up to and including M  END.
func writeMolfile(out *chem.Sink, mol *chem.AtomContainer, opt settings.IO, log *zap.Logger) {
	dim := "3D"
	flat := opt.Settings.ForceWrite2D || !mol.Has3D()
	if flat {
		dim = "2D"
	}
	prog := fmt.Sprintf("%-8s", truncate(opt.Settings.Program, 8))
	out.Line(truncate(mol.Title(), 80))
	out.Printf("  %s%s%s\n", prog, time.Now().Format("0102061504"), dim)
	out.Line(truncate(mol.StringProperty(chem.PropComment), 80))
	out.Printf("%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", mol.AtomCount(), mol.BondCount())
	var charged, isotopes []int
	for i, at := range mol.Atoms {
		var x, y, z float64
		switch {
		case !flat && at.Point3D != nil:
			x, y, z = at.Point3D.X, at.Point3D.Y, at.Point3D.Z
		case at.Point2D != nil:
			x, y = at.Point2D.X, at.Point2D.Y
		case at.Point3D != nil:
			x, y = at.Point3D.X, at.Point3D.Y
		}
		aam, _ := at.AtomAtomMapping()
		out.Printf("%10.4f%10.4f%10.4f %-3s%2d%3d  0  0  0  0  0  0  0%3d  0  0\n",
			x, y, z, truncate(at.Symbol, 3), massDifference(at), codeFromCharge(at.FormalCharge), aam)
		if at.FormalCharge != 0 {
			charged = append(charged, i)
		}
		if at.MassNumber != 0 {
			isotopes = append(isotopes, i)
		}
	}
	for _, b := range mol.Bonds {
		if len(b.Atoms) != 2 {
			log.Warn("skipping bond with more than 2 atoms")
			continue
		}
		typ := b.Order.Numeric()
		switch {
		case b.Aromatic && (opt.Settings.WriteAromaticBondTypes || b.Order == chem.OrderUnset):
			typ = 4
		case typ < 1 || typ > 3:
			log.Warn("bond order can't be written, writing a single bond", zap.Stringer("order", b.Order))
			typ = 1
		}
		stereo := 0
		switch b.Stereo {
		case chem.StereoUp:
			stereo = 1
		case chem.StereoDown:
			stereo = 6
		case chem.StereoUpOrDown:
			stereo = 4
		case chem.StereoEZUnknown:
			stereo = 3
		}
		out.Printf("%3d%3d%3d%3d  0  0  0\n", mol.IndexOf(b.Atoms[0])+1, mol.IndexOf(b.Atoms[1])+1, typ, stereo)
	}
	propertyLines(out, "CHG", charged, func(i int) int { return mol.Atom(i).FormalCharge })
	propertyLines(out, "ISO", isotopes, func(i int) int { return mol.Atom(i).MassNumber })
	out.Line("M  END")
}

//propertyLines writes atoms in lines of up to 8 entries.
func propertyLines(out *chem.Sink, key string, atoms []int, value func(int) int) {
	for len(atoms) > 0 {
		n := len(atoms)
		if n > 8 {
			n = 8
		}
		var b strings.Builder
		fmt.Fprintf(&b, "M  %s%3d", key, n)
		for _, i := range atoms[:n] {
			fmt.Fprintf(&b, " %3d %3d", i+1, value(i))
		}
		out.Line(b.String())
		atoms = atoms[n:]
	}
}

//sdFields returns the properties of obj written as data items: every
//property outside the chem: namespace, or only those in only, if not empty.
func sdFields(props *chem.Properties, only []string) []string {
	var keys []string
	for _, k := range props.PropertyKeys() {
		if strings.HasPrefix(k, "chem:") {
			continue
		}
		if len(only) > 0 && !contains(only, k) {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func writeField(out *chem.Sink, key string, v interface{}) {
	out.Printf("> <%s>\n", key)
	out.Line(fmt.Sprint(v))
	out.Line("")
}

//MolfileWriter writes single molecules as V2000 molfiles.
type MolfileWriter struct {
	out *chem.Sink
	opt settings.IO
	log *zap.Logger
}

//NewMolfileWriter returns a writer to w.
func NewMolfileWriter(w io.Writer, opts ...settings.Option) *MolfileWriter {
	return &MolfileWriter{out: chem.NewSink(w, molfileFormat), opt: settings.Apply(opts...), log: chem.Log().Named("mdl")}
}

//Accepts returns true for containers, crystals and anything holding exactly one molecule.
func (M *MolfileWriter) Accepts(obj chem.Object) bool {
	return len(chem.ContainersOf(obj)) == 1
}

//Write writes obj, which must hold exactly one molecule.
func (M *MolfileWriter) Write(obj chem.Object) error {
	mols := chem.ContainersOf(obj)
	if len(mols) != 1 {
		return chem.Errorf(molfileFormat, "a molfile holds one molecule, got %d", len(mols))
	}
	writeMolfile(M.out, mols[0], M.opt, M.log)
	return M.out.Flush()
}

//Close flushes and closes the underlying stream.
func (M *MolfileWriter) Close() error {
	return M.out.Close()
}

//SDFWriter writes molecules as SD records: a molfile followed by data items
//and the $$$$ separator.
type SDFWriter struct {
	out *chem.Sink
	opt settings.IO
	log *zap.Logger
}

//NewSDFWriter returns a writer to w.
func NewSDFWriter(w io.Writer, opts ...settings.Option) *SDFWriter {
	return &SDFWriter{out: chem.NewSink(w, "SDF"), opt: settings.Apply(opts...), log: chem.Log().Named("mdl")}
}

//Accepts returns true for anything holding molecules.
func (S *SDFWriter) Accepts(obj chem.Object) bool {
	return len(chem.ContainersOf(obj)) > 0
}

//Write writes every molecule in obj as a record.
func (S *SDFWriter) Write(obj chem.Object) error {
	mols := chem.ContainersOf(obj)
	if len(mols) == 0 {
		return chem.Errorf("SDF", "nothing to write in %T", obj)
	}
	for _, m := range mols {
		writeMolfile(S.out, m, S.opt, S.log)
		for _, k := range sdFields(&m.Properties, S.opt.Settings.SDFields) {
			v, _ := m.Property(k)
			writeField(S.out, k, v)
		}
		S.out.Line("$$$$")
	}
	return S.out.Flush()
}

//Close flushes and closes the underlying stream.
func (S *SDFWriter) Close() error {
	return S.out.Close()
}

//sortedKeys returns the keys of m, sorted.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
