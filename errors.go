/*
 * errors.go, part of gochemio.
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
	"errors"
	"fmt"
	"strings"
)

//ErrNotSeekable is returned when an operation that must restore the
//stream position gets a stream that can't seek.
var ErrNotSeekable = errors.New("stream is not seekable")

//FormatError is the error type of the library. It fullfills Error, and
//wraps the underlying cause (if any) so errors.Is and errors.As work.
type FormatError struct {
	message  string
	format   string
	deco     []string
	cause    error
	critical bool
}

//NewError returns a critical error for the format fmtname, with message msg and cause
//(which can be nil).
func NewError(fmtname, msg string, cause error) *FormatError {
	return &FormatError{message: msg, format: fmtname, cause: cause, critical: true}
}

//Errorf returns a critical error for fmtname with a formatted message and no cause.
func Errorf(fmtname, msg string, args ...interface{}) *FormatError {
	return NewError(fmtname, fmt.Sprintf(msg, args...), nil)
}

//IOError wraps an error coming from the underlying stream.
func IOError(fmtname string, cause error) *FormatError {
	return NewError(fmtname, "I/O error", cause)
}

func (err *FormatError) Error() string {
	var b strings.Builder
	if err.format != "" {
		b.WriteString(err.format)
		b.WriteString(": ")
	}
	b.WriteString(err.message)
	if err.cause != nil {
		b.WriteString(": ")
		b.WriteString(err.cause.Error())
	}
	if len(err.deco) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(err.deco, " < "))
		b.WriteString(")")
	}
	return b.String()
}

//Decorate adds dec to the decoration of the error, and returns the resulting slice.
func (err *FormatError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err *FormatError) Critical() bool { return err.critical }

//Format returns the name of the format associated to the error.
func (err *FormatError) Format() string { return err.format }

//Message returns the error message without format, cause or decoration.
func (err *FormatError) Message() string { return err.message }

//Unwrap returns the cause of the error.
func (err *FormatError) Unwrap() error { return err.cause }

//NonCritical marks the error as one the caller can ignore, and returns it.
func (err *FormatError) NonCritical() *FormatError {
	err.critical = false
	return err
}

//Decorate adds caller to err if err is an Error, wraps it in a FormatError
//for fmtname otherwise. A nil err gives nil.
func Decorate(err error, fmtname, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	ret := NewError(fmtname, "error", err)
	ret.Decorate(caller)
	return ret
}
