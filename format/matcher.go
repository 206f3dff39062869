/*
 * matcher.go, part of gochemio.
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
	"strconv"
	"strings"
)

//MatchResult is what a Matcher reports for a header sample. Position is the
//index of the line that decided the match: the earlier, the more
//confident the matcher is.
type MatchResult struct {
	Matched  bool
	Format   *Format
	Position int
}

//NoMatch is the result of a matcher that does not recognize the sample.
var NoMatch = MatchResult{Position: int(^uint(0) >> 1)}

//Found returns a positive result for f at line pos.
func Found(f *Format, pos int) MatchResult {
	return MatchResult{Matched: true, Format: f, Position: pos}
}

//Better returns true if M should win over o: matched results win over
//unmatched ones, then the earlier position wins.
func (M MatchResult) Better(o MatchResult) bool {
	if M.Matched != o.Matched {
		return M.Matched
	}
	return M.Position < o.Position
}

//Matcher is implemented by every format heuristic. Matches gets the
//first lines of a stream (without line terminators).
type Matcher interface {
	Format() *Format
	Matches(lines []string) MatchResult
}

//LineMatcher matches the first line for which Test returns true.
type LineMatcher struct {
	F    *Format
	Test func(line string) bool
}

func (L LineMatcher) Format() *Format { return L.F }

func (L LineMatcher) Matches(lines []string) MatchResult {
	for i, v := range lines {
		if L.Test(v) {
			return Found(L.F, i)
		}
	}
	return NoMatch
}

//FuncMatcher wraps a function as a Matcher, for heuristics that look at
//more than one line at the time.
type FuncMatcher struct {
	F     *Format
	Match func(lines []string) (int, bool)
}

func (M FuncMatcher) Format() *Format { return M.F }

func (M FuncMatcher) Matches(lines []string) MatchResult {
	if pos, ok := M.Match(lines); ok {
		return Found(M.F, pos)
	}
	return NoMatch
}

func prefix(p string) func(string) bool {
	return func(line string) bool { return strings.HasPrefix(line, p) }
}

func contains(s ...string) func(string) bool {
	return func(line string) bool {
		for _, v := range s {
			if strings.Contains(line, v) {
				return true
			}
		}
		return false
	}
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

//the counts line of a V2000 molfile is the 4th line of a record.
func mdlCounts(version string) func([]string) (int, bool) {
	return func(lines []string) (int, bool) {
		if len(lines) > 0 && strings.HasPrefix(lines[0], "$RXN") {
			return 0, false
		}
		if version == "V2000" {
			for _, v := range lines {
				if v == "$$$$" {
					return 0, false //that's an SD file
				}
			}
		}
		for i, v := range lines {
			if i >= 3 && strings.HasSuffix(strings.TrimSpace(v), version) && len(v) >= 39 {
				return i, true
			}
		}
		return 0, false
	}
}

func rxnV2000(line string) bool {
	return strings.HasPrefix(line, "$RXN") && !strings.Contains(line, "V3000")
}

func hinMol(line string) bool {
	if strings.HasPrefix(line, "forcefield ") {
		return true
	}
	f := strings.Fields(line)
	return len(f) >= 2 && f[0] == "mol" && isInt(f[1])
}

func pdbRecord(line string) bool {
	for _, v := range []string{"HEADER", "COMPND", "ATOM  ", "HETATM"} {
		if strings.HasPrefix(line, v) {
			return true
		}
	}
	return false
}

//link-0 commands (%chk, %mem...) are followed by the route line (#...).
func gaussianRoute(lines []string) (int, bool) {
	for i, v := range lines {
		t := strings.TrimSpace(v)
		if strings.HasPrefix(t, "%") {
			continue
		}
		if strings.HasPrefix(t, "#") && !strings.HasPrefix(strings.ToUpper(t), "#ZMATRIX") {
			return i, true
		}
		return 0, false
	}
	return 0, false
}

//both a ZERR and a CELL record are needed.
func shelx(lines []string) (int, bool) {
	zerr, cell := -1, -1
	for i, v := range lines {
		switch {
		case zerr < 0 && strings.HasPrefix(v, "ZERR"):
			zerr = i
		case cell < 0 && strings.HasPrefix(v, "CELL"):
			cell = i
		}
	}
	if zerr < 0 || cell < 0 {
		return 0, false
	}
	if cell > zerr {
		return cell, true
	}
	return zerr, true
}

func rss(lines []string) (int, bool) {
	pos := -1
	cml := false
	for i, v := range lines {
		if pos < 0 && (strings.Contains(v, "<rss") || strings.Contains(v, "<rdf:RDF")) {
			pos = i
		}
		if strings.Contains(v, "xml-cml.org") || strings.Contains(v, "<cml") {
			cml = true
		}
	}
	return pos, pos >= 0 && cml
}

//DefaultMatchers returns a new slice with the matchers of every recognizable
//format, in registration order. XYZ and SMILES have no reliable signature,
//XYZ is handled by the factory's fallback.
func DefaultMatchers() []Matcher {
	return []Matcher{
		LineMatcher{MDLRXNV2000, rxnV2000},
		LineMatcher{MDLRXNV3000, func(l string) bool { return strings.HasPrefix(l, "$RXN V3000") }},
		FuncMatcher{MDLV2000, mdlCounts("V2000")},
		FuncMatcher{MDLV3000, mdlCounts("V3000")},
		LineMatcher{SDF, func(l string) bool { return l == "$$$$" }},
		FuncMatcher{CMLRSS, rss},
		LineMatcher{CML, contains("<cml", "http://www.xml-cml.org/schema")},
		LineMatcher{PDB, pdbRecord},
		LineMatcher{HIN, hinMol},
		LineMatcher{Mol2, prefix("@<TRIPOS>")},
		LineMatcher{InChI, func(l string) bool { return strings.HasPrefix(l, "InChI=") || strings.HasPrefix(l, "INChI=") }},
		LineMatcher{InChIXML, contains("<INChI")},
		LineMatcher{ZMatrix, prefix("#ZMATRIX")},
		FuncMatcher{GaussianInput, gaussianRoute},
		FuncMatcher{ShelX, shelx},
		LineMatcher{CrystClust, prefix("frame:")},
		LineMatcher{CTX, prefix(" /IDENT")},
		LineMatcher{GhemicalMM, prefix("!Header mm1gp")},
		LineMatcher{PubChemXML, contains("<PC-Compound")},
		LineMatcher{MoSS, prefix("id,description,nodes,edges")},
	}
}
