/*
 * interfaces.go, part of gochemio.
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

import "strings"

//Mode controls how readers treat input that is unusual but can be interpreted.
type Mode int

const (
	//Relaxed accepts vendor extensions and skips what it does not understand.
	Relaxed Mode = iota
	//Strict turns those cases into errors.
	Strict
)

func (M Mode) String() string {
	if M == Strict {
		return "strict"
	}
	return "relaxed"
}

//ParseMode returns Strict for "strict" (any case), Relaxed otherwise.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "strict") {
		return Strict
	}
	return Relaxed
}

//Reader is implemented by every file reader. ReadChemFile reads the
//whole stream. Close releases the underlying stream, and can be called
//more than once.
type Reader interface {
	ReadChemFile() (*ChemFile, error)
	Close() error
}

//Writer is implemented by every file writer. Accepts tells whether Write
//can serialize obj. Close flushes and releases the underlying stream,
//and can be called more than once.
type Writer interface {
	Accepts(obj Object) bool
	Write(obj Object) error
	Close() error
}

//Errors

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of the calling function (and possibly extra info) to the error. An empty string
	//just returns the current decoration.
	Decorate(string) []string
	//Critical is false for errors that a caller can ignore and keep reading.
	Critical() bool
	//Format is the name of the file format being read or written when the error happened.
	Format() string
}
