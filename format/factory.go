/*
 * factory.go, part of gochemio.
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

package format

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/settings"
)

var (
	discoverOnce sync.Once
	discovered   []Matcher
)

//the matcher list is built once per process and never changed after that.
func discover() []Matcher {
	discoverOnce.Do(func() {
		discovered = DefaultMatchers()
		chem.Log().Named("format").Debug("matchers loaded", zap.Int("count", len(discovered)))
	})
	return discovered
}

//Factory guesses the format of a stream by running a set of matchers over
//its first lines.
type Factory struct {
	matchers []Matcher
	budget   int
}

//Option configures a Factory.
type Option func(*Factory)

//WithHeaderBudget sets the number of characters read before matching.
//Non-positive values are ignored.
func WithHeaderBudget(n int) Option {
	return func(F *Factory) {
		if n > 0 {
			F.budget = n
		}
	}
}

//WithSettings takes the header budget from s.
func WithSettings(s settings.Settings) Option {
	return WithHeaderBudget(s.HeaderBudget)
}

//NewFactory returns a Factory with the default matchers.
func NewFactory(opts ...Option) *Factory {
	d := discover()
	F := &Factory{matchers: make([]Matcher, len(d)), budget: settings.DefaultHeaderBudget}
	copy(F.matchers, d)
	for _, o := range opts {
		o(F)
	}
	return F
}

//Register appends m to the matchers of the factory. Matchers are not
//deduplicated, and on a tie the one registered first wins.
func (F *Factory) Register(m Matcher) {
	F.matchers = append(F.matchers, m)
}

//Matchers returns the matchers of F in registration order.
func (F *Factory) Matchers() []Matcher {
	ret := make([]Matcher, len(F.matchers))
	copy(ret, F.matchers)
	return ret
}

//Formats returns the formats the factory can recognize.
func (F *Factory) Formats() []*Format {
	ret := make([]*Format, 0, len(F.matchers))
	for _, v := range F.matchers {
		ret = append(ret, v.Format())
	}
	return ret
}

//HeaderBudget returns the number of characters the factory reads before matching.
func (F *Factory) HeaderBudget() int {
	return F.budget
}

//readHeader reads at most budget characters (runes) from r, and splits them in lines.
func (F *Factory) readHeader(r io.Reader) ([]string, error) {
	in := bufio.NewReader(r)
	var lines []string
	var line strings.Builder
	for n := 0; n < F.budget; n++ {
		c, _, err := in.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, chem.IOError("", err)
		}
		if c == '\n' {
			lines = append(lines, strings.TrimRight(line.String(), "\r"))
			line.Reset()
			continue
		}
		line.WriteRune(c)
	}
	if line.Len() > 0 {
		lines = append(lines, strings.TrimRight(line.String(), "\r"))
	}
	return lines, nil
}

//Guess returns the best format for the given header lines, or nil.
func (F *Factory) Guess(lines []string) *Format {
	results := make([]MatchResult, len(F.matchers))
	for i, m := range F.matchers {
		results[i] = m.Matches(lines)
	}
	//Stable so that ties go to the first registered.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Better(results[j])
	})
	if len(results) > 0 && results[0].Matched && results[0].Format != nil {
		return results[0].Format
	}
	return fallback(lines)
}

//fallback recognizes XYZ files, whose first line is the atom count,
//optionally followed by the BOHR unit.
func fallback(lines []string) *Format {
	if len(lines) == 0 {
		return nil
	}
	f := chem.Tokenize(lines[0])
	switch {
	case len(f) == 1 && isInt(f[0]):
		return XYZ
	case len(f) == 2 && isInt(f[0]) && strings.EqualFold(f[1], "BOHR"):
		return XYZ
	}
	return nil
}

//GuessFormat reads the beginning of r and returns its format, or nil if
//no format is recognized, which is not an error. It consumes from r.
func (F *Factory) GuessFormat(r io.Reader) (*Format, error) {
	lines, err := F.readHeader(r)
	if err != nil {
		return nil, chem.Decorate(err, "", "GuessFormat")
	}
	return F.Guess(lines), nil
}

//GuessFormatSeeker is like GuessFormat but leaves rs at the offset it had
//when called, for a match and for a no-match. If rs can't report its
//offset, the error wraps chem.ErrNotSeekable and nothing is read.
func (F *Factory) GuessFormatSeeker(rs io.ReadSeeker) (f *Format, err error) {
	if rs == nil {
		return nil, chem.NewError("", "GuessFormatSeeker: nil stream", chem.ErrNotSeekable)
	}
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, chem.NewError("", "GuessFormatSeeker", fmt.Errorf("%w: %v", chem.ErrNotSeekable, err))
	}
	defer func() {
		if _, serr := rs.Seek(pos, io.SeekStart); serr != nil && err == nil {
			f, err = nil, chem.IOError("", serr)
		}
	}()
	return F.GuessFormat(rs)
}

//Sniff guesses the format of a stream that can't seek. The returned reader
//yields the whole stream, including the part read for the guess.
func (F *Factory) Sniff(r io.Reader) (*Format, io.Reader, error) {
	var buf bytes.Buffer
	lines, err := F.readHeader(io.TeeReader(r, &buf))
	replay := io.MultiReader(&buf, r)
	if err != nil {
		return nil, replay, chem.Decorate(err, "", "Sniff")
	}
	return F.Guess(lines), replay, nil
}
