/*
 * rxnv3000.go, part of gochemio.
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

const rxnV3000Format = "MDL RXN V3000"

//RXNV3000Reader reads MDL RXN V3000 files.
type RXNV3000Reader struct {
	in  *chem.LineReader
	opt settings.IO
	log *zap.Logger
}

//NewRXNV3000Reader returns a reader for the V3000 RXN file in r.
func NewRXNV3000Reader(r io.Reader, opts ...settings.Option) *RXNV3000Reader {
	return &RXNV3000Reader{
		in:  chem.NewLineReader(r, rxnV3000Format),
		opt: settings.Apply(opts...),
		log: chem.Log().Named("mdl"),
	}
}

//Close closes the underlying stream.
func (R *RXNV3000Reader) Close() error {
	return R.in.Close()
}

//ReadReaction reads one reaction.
func (R *RXNV3000Reader) ReadReaction() (*chem.Reaction, error) {
	r, err := R.readReaction()
	if err != nil {
		return nil, chem.Decorate(err, rxnV3000Format, "ReadReaction")
	}
	return r, nil
}

func (R *RXNV3000Reader) readReaction() (*chem.Reaction, error) {
	in := R.in
	banner, err := in.Require("RXN header")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(banner, "$RXN") {
		return nil, in.Errorf("expected $RXN V3000, got %q", banner)
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
	reaction := R.opt.Builder.NewReaction()
	if t := strings.TrimSpace(title); t != "" {
		reaction.SetProperty(chem.PropTitle, t)
	}
	if t := strings.TrimSpace(remark); t != "" {
		reaction.SetProperty(chem.PropRemark, t)
	}
	nr, np, na, err := R.counts()
	if err != nil {
		return nil, err
	}
	blocks := []struct {
		name string
		n    int
		set  *chem.AtomContainerSet
	}{
		{"REACTANT", nr, reaction.Reactants},
		{"PRODUCT", np, reaction.Products},
		{"AGENT", na, reaction.Agents},
	}
	for _, b := range blocks {
		if b.n == 0 {
			continue
		}
		mols, err := R.readBlocks(b.name, b.n)
		if err != nil {
			return nil, chem.NewError(rxnV3000Format, "Error while reading "+strings.ToLower(b.name), err)
		}
		for _, m := range mols {
			b.set.Add(m)
		}
	}
	if err := skipToEnd(in); err != nil {
		return nil, err
	}
	buildMappings(R.opt.Builder, reaction)
	return reaction, nil
}

//counts scans for the COUNTS command, skipping any other. Reaching the end
//of the stream first is an error.
func (R *RXNV3000Reader) counts() (nr, np, na int, err error) {
	for {
		cmd, err := ReadCommand(R.in)
		if err != nil {
			return 0, 0, 0, chem.NewError(rxnV3000Format, "no COUNTS command found", err)
		}
		f := chem.Tokenize(cmd)
		if len(f) == 0 || f[0] != "COUNTS" {
			R.log.Warn("ignoring command before COUNTS", zap.String("command", cmd))
			continue
		}
		if len(f) < 3 {
			return 0, 0, 0, R.in.Errorf("malformed COUNTS command %q", cmd)
		}
		if nr, err = strconv.Atoi(f[1]); err == nil {
			np, err = strconv.Atoi(f[2])
		}
		if err == nil && len(f) > 3 {
			na, err = strconv.Atoi(f[3])
		}
		if err != nil || nr < 0 || np < 0 || na < 0 {
			return 0, 0, 0, R.in.Errorf("malformed COUNTS command %q", cmd)
		}
		return nr, np, na, nil
	}
}

//readBlocks reads BEGIN name ... END name blocks until n molecules have been
//read. A block can hold one or more connection tables.
func (R *RXNV3000Reader) readBlocks(name string, n int) ([]*chem.AtomContainer, error) {
	var mols []*chem.AtomContainer
	for len(mols) < n {
		cmd, err := ReadCommand(R.in)
		if err != nil {
			return nil, err
		}
		if cmd != "BEGIN "+name {
			return nil, R.in.Errorf("expected BEGIN %s, got %q", name, cmd)
		}
		ctabs, err := R.blockText("END " + name)
		if err != nil {
			return nil, err
		}
		if len(ctabs) == 0 {
			return nil, R.in.Errorf("empty %s block", name)
		}
		for _, text := range ctabs {
			m, err := NewMolfileV3000Reader(strings.NewReader(text), R.opt.Options()...).ReadMolecule()
			if err != nil {
				return nil, err
			}
			mols = append(mols, m)
		}
	}
	if len(mols) != n {
		return nil, chem.Errorf(rxnV3000Format, "COUNTS declares %d %s molecules, found %d", n, strings.ToLower(name), len(mols))
	}
	return mols, nil
}

//blockText collects the raw lines up to the one ending in end, split in
//one text per connection table.
func (R *RXNV3000Reader) blockText(end string) ([]string, error) {
	var ret []string
	var cur strings.Builder
	for {
		line, err := R.in.Next()
		if errors.Is(err, io.EOF) {
			return nil, R.in.Errorf("end of file before %s", end)
		}
		if err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, end) {
			if strings.TrimSpace(cur.String()) != "" {
				ret = append(ret, cur.String())
			}
			return ret, nil
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
		if strings.HasSuffix(trimmed, "END CTAB") {
			ret = append(ret, cur.String())
			cur.Reset()
		}
	}
}

//ReadChemFile reads the reaction into a one-model ChemFile.
func (R *RXNV3000Reader) ReadChemFile() (*chem.ChemFile, error) {
	r, err := R.ReadReaction()
	if err != nil {
		return nil, err
	}
	set := R.opt.Builder.NewReactionSet()
	set.Add(r)
	model := R.opt.Builder.NewChemModel()
	model.SetReactionSet(set)
	return chem.WrapModels(R.opt.Builder, model), nil
}
