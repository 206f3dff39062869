/*
 * xml.go, part of gochemio.
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
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const xmlFormat = "InChI XML"

//XMLReader reads the XML output of the InChI program: an INChI root with
//one structure element per molecule, each with formula and connections.
type XMLReader struct {
	dec    *xml.Decoder
	closer io.Closer
	closed bool
	opt    settings.IO
	proc   *Processor
	log    *zap.Logger
}

//NewXMLReader returns a reader for the InChI XML document in r.
func NewXMLReader(r io.Reader, opts ...settings.Option) *XMLReader {
	o := settings.Apply(opts...)
	X := &XMLReader{dec: xml.NewDecoder(r), opt: o, proc: NewProcessor(o.Builder), log: chem.Log().Named("inchi")}
	if c, ok := r.(io.Closer); ok {
		X.closer = c
	}
	return X
}

//Close closes the underlying stream, once.
func (X *XMLReader) Close() error {
	if X.closed || X.closer == nil {
		X.closed = true
		return nil
	}
	X.closed = true
	if err := X.closer.Close(); err != nil {
		return chem.IOError(xmlFormat, err)
	}
	return nil
}

//ReadChemFile reads every structure in the document.
func (X *XMLReader) ReadChemFile() (*chem.ChemFile, error) {
	var mols []*chem.AtomContainer
	var mol *chem.AtomContainer
	var text strings.Builder
	root := false
	for {
		tok, err := X.dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, chem.NewError(xmlFormat, "malformed XML", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text.Reset()
			switch t.Name.Local {
			case "INChI":
				root = true
			case "structure":
				mol = X.opt.Builder.NewAtomContainer()
				for _, a := range t.Attr {
					if a.Name.Local == "number" {
						mol.ID = a.Value
					}
				}
			}
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			content := strings.TrimSpace(text.String())
			text.Reset()
			switch t.Name.Local {
			case "formula":
				if mol == nil {
					return nil, chem.Errorf(xmlFormat, "formula outside a structure")
				}
				X.proc.ProcessFormula(mol, content)
			case "connections":
				if mol == nil {
					return nil, chem.Errorf(xmlFormat, "connections outside a structure")
				}
				if err := X.proc.ProcessConnections(strings.TrimPrefix(content, "c"), mol, NoSource); err != nil {
					return nil, chem.Decorate(err, xmlFormat, "ReadChemFile")
				}
			case "identifier":
				if mol != nil && content != "" {
					mol.SetProperty(chem.PropIdentifier, content)
				}
			case "structure":
				if mol != nil {
					mols = append(mols, mol)
				}
				mol = nil
			default:
				X.log.Debug("ignoring element", zap.String("element", t.Name.Local))
			}
		}
	}
	if !root {
		return nil, chem.Errorf(xmlFormat, "no INChI element found")
	}
	if len(mols) == 0 {
		return nil, chem.Errorf(xmlFormat, "no structure found")
	}
	return chem.WrapContainers(X.opt.Builder, mols...), nil
}
