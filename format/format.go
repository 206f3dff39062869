/*
 * format.go, part of gochemio.
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

//Package format describes the chemical file formats the library knows about,
//and guesses the format of a stream from its first lines.
package format

import (
	"path/filepath"
	"strings"

	chem "github.com/rmera/gochemio"
)

//Feature is a bitset of the kinds of information a format can hold.
type Feature uint32

const (
	Coords2D Feature = 1 << iota
	Coords3D
	FractionalCoords
	Bonds
	FormalCharges
	PartialCharges
	AtomAtomMapping
	Reactions
	CrystalCell
	MultipleMolecules
	Properties
	InternalCoords
)

//None requests no feature at all, so every format supports it.
const None Feature = 0

//Has returns true if F contains every feature in req.
func (F Feature) Has(req Feature) bool {
	return F&req == req
}

//Format describes one file format. ReaderName and WriterName are the names
//under which the registry package looks up constructors. An empty name
//means the library can't read (or write) the format.
type Format struct {
	Name       string //short, unique, used in the manifest and in ByName
	Title      string
	MIMEType   string
	Extensions []string //first one is the preferred extension
	ReaderName string
	WriterName string
	Features   Feature
	XML        bool
}

func (F *Format) String() string {
	return F.Name
}

//Supports returns true if the format can carry all the features in req.
func (F *Format) Supports(req Feature) bool {
	return F.Features.Has(req)
}

//PreferredExtension returns the first extension of the format, or "".
func (F *Format) PreferredExtension() string {
	if len(F.Extensions) == 0 {
		return ""
	}
	return F.Extensions[0]
}

//HasExtension returns true if the file name (without any compression
//suffix) ends in one of the extensions of F, with any case.
func (F *Format) HasExtension(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(chem.TrimCompression(name))), ".")
	if ext == "" {
		return false
	}
	for _, v := range F.Extensions {
		if v == ext {
			return true
		}
	}
	return false
}

//The formats known to the library.
var (
	MDLRXNV2000 = &Format{
		Name:       "MDLRXNV2000",
		Title:      "MDL RXN V2000",
		MIMEType:   "chemical/x-mdl-rxnfile",
		Extensions: []string{"rxn"},
		ReaderName: "mdl.RXNV2000Reader",
		WriterName: "mdl.RXNV2000Writer",
		Features:   Coords2D | Coords3D | Bonds | FormalCharges | AtomAtomMapping | Reactions | Properties,
	}
	MDLRXNV3000 = &Format{
		Name:       "MDLRXNV3000",
		Title:      "MDL RXN V3000",
		MIMEType:   "chemical/x-mdl-rxnfile",
		Extensions: []string{"rxn"},
		ReaderName: "mdl.RXNV3000Reader",
		Features:   Coords2D | Coords3D | Bonds | FormalCharges | AtomAtomMapping | Reactions,
	}
	MDLV2000 = &Format{
		Name:       "MDLV2000",
		Title:      "MDL Molfile V2000",
		MIMEType:   "chemical/x-mdl-molfile",
		Extensions: []string{"mol"},
		ReaderName: "mdl.MolfileReader",
		WriterName: "mdl.MolfileWriter",
		Features:   Coords2D | Coords3D | Bonds | FormalCharges | AtomAtomMapping,
	}
	MDLV3000 = &Format{
		Name:       "MDLV3000",
		Title:      "MDL Molfile V3000",
		MIMEType:   "chemical/x-mdl-molfile",
		Extensions: []string{"mol"},
		ReaderName: "mdl.MolfileV3000Reader",
		Features:   Coords2D | Coords3D | Bonds | FormalCharges | AtomAtomMapping,
	}
	SDF = &Format{
		Name:       "SDF",
		Title:      "MDL Structure-data file",
		MIMEType:   "chemical/x-mdl-sdfile",
		Extensions: []string{"sdf", "sd"},
		ReaderName: "mdl.MolfileReader",
		WriterName: "mdl.SDFWriter",
		Features:   Coords2D | Coords3D | Bonds | FormalCharges | AtomAtomMapping | MultipleMolecules | Properties,
	}
	CML = &Format{
		Name:       "CML",
		Title:      "Chemical Markup Language",
		MIMEType:   "chemical/x-cml",
		Extensions: []string{"cml", "xml"},
		WriterName: "cml.Writer",
		Features:   Coords2D | Coords3D | FractionalCoords | Bonds | FormalCharges | PartialCharges | Reactions | CrystalCell | MultipleMolecules,
		XML:        true,
	}
	CMLRSS = &Format{
		Name:       "CMLRSS",
		Title:      "CML enriched RSS",
		MIMEType:   "application/rss+xml",
		Extensions: []string{"rss"},
		WriterName: "rss.Writer",
		Features:   Coords2D | Coords3D | Bonds | FormalCharges | MultipleMolecules,
		XML:        true,
	}
	PDB = &Format{
		Name:       "PDB",
		Title:      "Protein Data Bank",
		MIMEType:   "chemical/x-pdb",
		Extensions: []string{"pdb", "ent"},
		WriterName: "pdb.Writer",
		Features:   Coords3D | Bonds | CrystalCell | MultipleMolecules,
	}
	HIN = &Format{
		Name:       "HIN",
		Title:      "HyperChem HIN",
		MIMEType:   "chemical/x-hin",
		Extensions: []string{"hin"},
		ReaderName: "hin.Reader",
		WriterName: "hin.Writer",
		Features:   Coords3D | Bonds | PartialCharges | MultipleMolecules,
	}
	Mol2 = &Format{
		Name:       "Mol2",
		Title:      "Mol2 (Sybyl)",
		MIMEType:   "chemical/x-mol2",
		Extensions: []string{"mol2"},
		WriterName: "mol2.Writer",
		Features:   Coords3D | Bonds | PartialCharges,
	}
	InChI = &Format{
		Name:       "InChI",
		Title:      "IUPAC-NIST Chemical Identifier (plain text)",
		MIMEType:   "chemical/x-inchi",
		Extensions: []string{"inchi", "txt"},
		ReaderName: "inchi.Reader",
		Features:   Bonds,
	}
	InChIXML = &Format{
		Name:       "InChIXML",
		Title:      "IUPAC-NIST Chemical Identifier (XML)",
		MIMEType:   "chemical/x-inchi-xml",
		Extensions: []string{"xml"},
		ReaderName: "inchi.XMLReader",
		Features:   Bonds | MultipleMolecules,
		XML:        true,
	}
	ZMatrix = &Format{
		Name:       "ZMatrix",
		Title:      "Z-Matrix",
		MIMEType:   "chemical/x-zmatrix",
		Extensions: []string{"zmat"},
		ReaderName: "zmatrix.Reader",
		Features:   InternalCoords | MultipleMolecules,
	}
	GaussianInput = &Format{
		Name:       "GaussianInput",
		Title:      "Gaussian Input",
		MIMEType:   "chemical/x-gaussian-input",
		Extensions: []string{"gjf", "com", "gau"},
		WriterName: "gaussian.Writer",
		Features:   Coords3D,
	}
	ShelX = &Format{
		Name:       "ShelX",
		Title:      "ShelXL",
		MIMEType:   "chemical/x-shelx",
		Extensions: []string{"res", "ins"},
		WriterName: "shelx.Writer",
		Features:   FractionalCoords | CrystalCell,
	}
	CrystClust = &Format{
		Name:       "CrystClust",
		Title:      "CrystClust",
		MIMEType:   "chemical/x-crystclust",
		Extensions: []string{"crystclust"},
		ReaderName: "crystclust.Reader",
		WriterName: "crystclust.Writer",
		Features:   Coords3D | PartialCharges | CrystalCell | MultipleMolecules,
	}
	CTX = &Format{
		Name:       "CTX",
		Title:      "CTX",
		MIMEType:   "chemical/x-ctx",
		Extensions: []string{"ctx"},
		ReaderName: "ctx.Reader",
		Features:   Bonds,
	}
	GhemicalMM = &Format{
		Name:       "GhemicalMM",
		Title:      "Ghemical MM",
		MIMEType:   "chemical/x-ghemical",
		Extensions: []string{"gpr", "mm1gp"},
		ReaderName: "ghemical.Reader",
		Features:   Coords3D | Bonds | PartialCharges,
	}
	PubChemXML = &Format{
		Name:       "PubChemXML",
		Title:      "PubChem Compound XML",
		MIMEType:   "chemical/x-pubchem-compound+xml",
		Extensions: []string{"xml"},
		Features:   Coords2D | Coords3D | Bonds | FormalCharges,
		XML:        true,
	}
	MoSS = &Format{
		Name:       "MoSS",
		Title:      "MoSS output",
		MIMEType:   "text/x-moss",
		Extensions: []string{"mossoutput"},
		Features:   Bonds | MultipleMolecules,
	}
	SMILES = &Format{
		Name:       "SMILES",
		Title:      "SMILES",
		MIMEType:   "chemical/x-daylight-smiles",
		Extensions: []string{"smi"},
		Features:   Bonds | FormalCharges | MultipleMolecules,
	}
	XYZ = &Format{
		Name:       "XYZ",
		Title:      "XYZ",
		MIMEType:   "chemical/x-xyz",
		Extensions: []string{"xyz"},
		ReaderName: "xyz.Reader",
		WriterName: "xyz.Writer",
		Features:   Coords3D | MultipleMolecules,
	}
)

var all = []*Format{
	MDLRXNV2000, MDLRXNV3000, MDLV2000, MDLV3000, SDF, CML, CMLRSS, PDB, HIN, Mol2,
	InChI, InChIXML, ZMatrix, GaussianInput, ShelX, CrystClust, CTX, GhemicalMM,
	PubChemXML, MoSS, SMILES, XYZ,
}

//All returns every format the library knows, in a fixed order.
func All() []*Format {
	ret := make([]*Format, len(all))
	copy(ret, all)
	return ret
}

//ByName returns the format named name (any case), or nil.
func ByName(name string) *Format {
	for _, v := range all {
		if strings.EqualFold(v.Name, name) {
			return v
		}
	}
	return nil
}

//ByExtension returns the formats with the extension of the file name, in
//the order of All. Several formats share extensions ("mol", "xml").
func ByExtension(name string) []*Format {
	var ret []*Format
	for _, v := range all {
		if v.HasExtension(name) {
			ret = append(ret, v)
		}
	}
	return ret
}
