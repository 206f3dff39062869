/*
 * tokenize.go, part of gochemio.
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

package chem

import (
	"strings"
	"unicode"
)

//Tokenize splits line into its non-empty fields. Without delims, fields are
//separated by whitespace. Otherwise any of the delims separates fields.
//There is no quoting. An empty line gives an empty slice.
func Tokenize(line string, delims ...rune) []string {
	var sep func(rune) bool
	if len(delims) == 0 {
		sep = unicode.IsSpace
	} else {
		sep = func(r rune) bool {
			for _, d := range delims {
				if r == d {
					return true
				}
			}
			return false
		}
	}
	ret := strings.FieldsFunc(line, sep)
	if ret == nil {
		ret = []string{}
	}
	return ret
}
