/*
 * rxn.go, part of gochemio.
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

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

const rxnFormat = "MDL RXN V2000"

//RXNV2000Reader reads MDL RXN files. Several reactions separated by $$$$
//lines can be read from the same stream.
type RXNV2000Reader struct {
	in  *chem.LineReader
	opt settings.IO
	log *zap.Logger
}

//NewRXNV2000Reader returns a reader for the RXN file in r.
func NewRXNV2000Reader(r io.Reader, opts ...settings.Option) *RXNV2000Reader {
	return &RXNV2000Reader{
		in:  chem.NewLineReader(r, rxnFormat),
		opt: settings.Apply(opts...),
		log: chem.Log().Named("mdl"),
	}
}

//Close closes the underlying stream.
func (R *RXNV2000Reader) Close() error {
	return R.in.Close()
}

//rxnCounts parses the counts line: reactants, products and the optional
//agent count, in 3-column fields. Lines shorter than 6 characters, or whose
//columns don't parse, are split on spaces instead.
func rxnCounts(line string) (nr, np, na int, err error) {
	nr, np, na, err = rxnColumns(line)
	if err != nil {
		nr, np, na, err = rxnFields(line)
	}
	if err == nil && (nr < 0 || np < 0 || na < 0) {
		err = errors.New("negative count")
	}
	return nr, np, na, err
}

func rxnColumns(line string) (nr, np, na int, err error) {
	if len(line) < 6 {
		return 0, 0, 0, errors.New("counts line too short")
	}
	if nr, err = intColumn(line, 0, 3); err != nil {
		return
	}
	if np, err = intColumn(line, 3, 6); err != nil {
		return
	}
	na, err = intColumn(line, 6, 9)
	return
}

func rxnFields(line string) (nr, np, na int, err error) {
	f := chem.Tokenize(line)
	if len(f) < 2 {
		return 0, 0, 0, errors.New("counts line too short")
	}
	if nr, err = strconv.Atoi(f[0]); err != nil {
		return
	}
	if np, err = strconv.Atoi(f[1]); err != nil {
		return
	}
	if len(f) > 2 {
		na, err = strconv.Atoi(f[2])
	}
	return
}

//ReadReaction reads the next reaction. It returns io.EOF when the stream
//has no more reactions.
func (R *RXNV2000Reader) ReadReaction() (*chem.Reaction, error) {
	r, err := R.readReaction()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, chem.Decorate(err, rxnFormat, "ReadReaction")
	}
	return r, err
}

func (R *RXNV2000Reader) readReaction() (*chem.Reaction, error) {
	in := R.in
	banner, err := nextRecord(in)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(banner, "$RXN") {
		if R.opt.Mode == chem.Strict {
			return nil, in.Errorf("expected $RXN, got %q", banner)
		}
		R.log.Warn("RXN file without $RXN banner", zap.String("line", banner))
	}
	title, err := in.Require("RXN header")
	if err != nil {
		return nil, err
	}
	if err := in.Skip(1, "RXN header"); err != nil {
		return nil, err
	}
	remark, err := in.Require("RXN header")
	if err != nil {
		return nil, err
	}
	countLine, err := in.Require("RXN counts line")
	if err != nil {
		return nil, err
	}
	nr, np, na, err := rxnCounts(countLine)
	if err != nil {
		return nil, chem.NewError(rxnFormat, "can't read counts line "+strconv.Quote(countLine), err)
	}
	if na != 0 && R.opt.Mode == chem.Strict {
		return nil, in.Errorf("agent count (%d) in counts line is not allowed in strict mode", na)
	}
	line, err := in.Require("$MOL")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(line, "$MOL") {
		return nil, in.Errorf("expected $MOL, got %q", line)
	}

	reaction := R.opt.Builder.NewReaction()
	if t := strings.TrimSpace(title); t != "" {
		reaction.SetProperty(chem.PropTitle, t)
	}
	if t := strings.TrimSpace(remark); t != "" {
		reaction.SetProperty(chem.PropRemark, t)
	}
	bufs, err := R.components(&reaction.Properties)
	if err != nil {
		return nil, err
	}
	mols := make([]*chem.AtomContainer, 0, len(bufs))
	for i, b := range bufs {
		mol, err := NewMolfileReader(strings.NewReader(b), R.opt.Options()...).ReadMolecule()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = chem.Errorf(rxnFormat, "empty molecule block")
			}
			return nil, chem.NewError(rxnFormat, "error in molecule "+strconv.Itoa(i+1), err)
		}
		mols = append(mols, mol)
	}
	want := nr + np + na
	switch {
	case len(mols) < want:
		return nil, chem.Errorf(rxnFormat, "counts line declares %d molecules, found %d", want, len(mols))
	case len(mols) > want && R.opt.Mode == chem.Strict:
		return nil, chem.Errorf(rxnFormat, "counts line declares %d molecules, found %d", want, len(mols))
	case len(mols) > want:
		R.log.Warn("extra molecules read as agents", zap.Int("declared", want), zap.Int("found", len(mols)))
	}
	assign(reaction, mols, nr, np)
	buildMappings(R.opt.Builder, reaction)
	return reaction, nil
}

//components reads the molecule blocks that follow the first $MOL line. A
//block ends at the next $MOL or at its M  END. Data items found after the
//last M  END go to props, and $$$$ (or the end of the stream) ends the reaction.
func (R *RXNV2000Reader) components(props *chem.Properties) ([]string, error) {
	var bufs []string
	var cur strings.Builder
	open := true //inside a molecule block
	flush := func() {
		if cur.Len() > 0 {
			bufs = append(bufs, cur.String())
			cur.Reset()
		}
	}
	for {
		line, err := R.in.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch {
		case strings.HasPrefix(line, "$MOL"):
			flush()
			open = true
			continue
		case line == "$$$$":
			flush()
			return bufs, nil
		case !open && strings.HasPrefix(line, ">"):
			R.in.Unread(line)
			if err := readSDFields(R.in, props, "$$$$"); err != nil {
				return nil, err
			}
			return bufs, nil
		case !open:
			continue
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
		if strings.HasPrefix(line, "M  END") {
			flush()
			open = false
		}
	}
	flush()
	return bufs, nil
}

//ReadReactionSet reads every reaction in the stream.
func (R *RXNV2000Reader) ReadReactionSet() (*chem.ReactionSet, error) {
	set := R.opt.Builder.NewReactionSet()
	for {
		r, err := R.ReadReaction()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		set.Add(r)
	}
	if set.Count() == 0 {
		return nil, chem.Errorf(rxnFormat, "no reaction found")
	}
	return set, nil
}

//ReadChemFile reads every reaction in the stream into a one-model ChemFile.
func (R *RXNV2000Reader) ReadChemFile() (*chem.ChemFile, error) {
	set, err := R.ReadReactionSet()
	if err != nil {
		return nil, err
	}
	model := R.opt.Builder.NewChemModel()
	model.SetReactionSet(set)
	return chem.WrapModels(R.opt.Builder, model), nil
}
