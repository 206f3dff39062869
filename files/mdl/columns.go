/*
 * columns.go, part of gochemio.
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
	"strconv"
	"strings"

	chem "github.com/rmera/gochemio"
)

//column returns the trimmed text between the 0-based columns a and b of
//line. Columns past the end of the line are empty.
func column(line string, a, b int) string {
	if a >= len(line) {
		return ""
	}
	if b > len(line) {
		b = len(line)
	}
	return strings.TrimSpace(line[a:b])
}

//intColumn parses the integer between columns a and b. An empty column is 0.
func intColumn(line string, a, b int) (int, error) {
	c := column(line, a, b)
	if c == "" {
		return 0, nil
	}
	return strconv.Atoi(c)
}

func floatColumn(line string, a, b int) (float64, error) {
	c := column(line, a, b)
	if c == "" {
		return 0, nil
	}
	return strconv.ParseFloat(c, 64)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

//the charge codes of the V2000 atom block.
func chargeFromCode(code int) int {
	if code >= 1 && code <= 7 && code != 4 {
		return 4 - code
	}
	return 0
}

//massDifference returns the V2000 mass difference of at, or 0 when it has
//no mass number or the difference doesn't fit in -3..4.
func massDifference(at *chem.Atom) int {
	major := chem.MajorIsotope(at.Symbol)
	if at.MassNumber == 0 || major == 0 {
		return 0
	}
	if dd := at.MassNumber - major; dd >= -3 && dd <= 4 {
		return dd
	}
	return 0
}

//codeFromCharge returns 0 for charges that don't fit in the atom block.
func codeFromCharge(q int) int {
	if q == 0 || q < -3 || q > 3 {
		return 0
	}
	return 4 - q
}
