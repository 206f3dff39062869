/*
 * reader.go, part of gochemio.
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

package inchi

import (
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const textFormat = "InChI"

//Reader reads files with one InChI per line. Lines that are not InChIs
//are ignored.
type Reader struct {
	in   *chem.LineReader
	opt  settings.IO
	proc *Processor
	log  *zap.Logger
}

//NewReader returns a reader for the InChIs in r.
func NewReader(r io.Reader, opts ...settings.Option) *Reader {
	o := settings.Apply(opts...)
	return &Reader{
		in:   chem.NewLineReader(r, textFormat),
		opt:  o,
		proc: NewProcessor(o.Builder),
		log:  chem.Log().Named("inchi"),
	}
}

//Close closes the underlying stream.
func (R *Reader) Close() error {
	return R.in.Close()
}

//Parse builds the molecule of one InChI string. The formula is the second
//"/" separated field, and the third is used as the connections when it is
//the "c" layer.
func (P *Processor) Parse(mol *chem.AtomContainer, id string) error {
	id = strings.TrimSpace(id)
	if !strings.HasPrefix(id, "InChI=") && !strings.HasPrefix(id, "INChI=") {
		return chem.Errorf(textFormat, "%q is not an InChI", id)
	}
	mol.SetProperty(chem.PropIdentifier, id)
	f := strings.Split(id, "/")
	if len(f) < 2 {
		return nil
	}
	P.ProcessFormula(mol, f[1])
	if len(f) > 2 && strings.HasPrefix(f[2], "c") {
		return P.ProcessConnections(f[2][1:], mol, NoSource)
	}
	return nil
}

//ReadMolecule returns the molecule of the next InChI, or io.EOF.
func (R *Reader) ReadMolecule() (*chem.AtomContainer, error) {
	for {
		line, err := R.in.Next()
		if err != nil {
			return nil, err
		}
		t := strings.TrimSpace(line)
		if !strings.HasPrefix(t, "InChI=") && !strings.HasPrefix(t, "INChI=") {
			if t != "" {
				R.log.Debug("skipping line", zap.Int("line", R.in.LineNumber()))
			}
			continue
		}
		mol := R.opt.Builder.NewAtomContainer()
		if err := R.proc.Parse(mol, t); err != nil {
			return nil, chem.Decorate(err, textFormat, "ReadMolecule")
		}
		return mol, nil
	}
}

//ReadChemFile reads every InChI in the stream into one molecule set.
func (R *Reader) ReadChemFile() (*chem.ChemFile, error) {
	var mols []*chem.AtomContainer
	for {
		mol, err := R.ReadMolecule()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		mols = append(mols, mol)
	}
	if len(mols) == 0 {
		return nil, chem.Errorf(textFormat, "no InChI found")
	}
	return chem.WrapContainers(R.opt.Builder, mols...), nil
}
