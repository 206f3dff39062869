/*
 * stream.go, part of gochemio.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

//LineReader is the line source shared by all the text readers. It counts lines
//for error messages, allows pushing back one line, and owns the
//underlying stream: Close closes it once, later calls do nothing.
type LineReader struct {
	r      *bufio.Reader
	closer io.Closer
	closed bool
	pushed []string
	line   int
	format string
}

//NewLineReader returns a LineReader reading from r. If r is an io.Closer
//it will be closed by Close. fmtname is used in errors.
func NewLineReader(r io.Reader, fmtname string) *LineReader {
	L := &LineReader{format: fmtname}
	if br, ok := r.(*bufio.Reader); ok {
		L.r = br
	} else {
		L.r = bufio.NewReader(r)
	}
	if c, ok := r.(io.Closer); ok {
		L.closer = c
	}
	return L
}

//Next returns the next line without the line terminator. At the end of the
//stream it returns io.EOF (unwrapped). Other errors are wrapped in a FormatError.
func (L *LineReader) Next() (string, error) {
	if n := len(L.pushed); n > 0 {
		line := L.pushed[n-1]
		L.pushed = L.pushed[:n-1]
		L.line++
		return line, nil
	}
	if L.closed {
		return "", NewError(L.format, "read on a closed reader", nil)
	}
	line, err := L.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", IOError(L.format, err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	L.line++
	return strings.TrimRight(line, "\r\n"), nil
}

//Require is like Next, but the end of the stream is an error mentioning what was expected.
func (L *LineReader) Require(what string) (string, error) {
	line, err := L.Next()
	if errors.Is(err, io.EOF) {
		return "", Errorf(L.format, "unexpected end of file at line %d while reading %s", L.line+1, what)
	}
	return line, err
}

//Skip discards n lines. Reaching the end of the stream is an error.
func (L *LineReader) Skip(n int, what string) error {
	for i := 0; i < n; i++ {
		if _, err := L.Require(what); err != nil {
			return err
		}
	}
	return nil
}

//Unread pushes line back, so the next call to Next returns it.
func (L *LineReader) Unread(line string) {
	L.pushed = append(L.pushed, line)
	L.line--
}

//LineNumber returns the number of the last line returned (1-based).
func (L *LineReader) LineNumber() int {
	return L.line
}

//Errorf returns an error for the reader's format, mentioning the current line.
func (L *LineReader) Errorf(msg string, args ...interface{}) *FormatError {
	return Errorf(L.format, "line %d: %s", L.line, fmt.Sprintf(msg, args...))
}

//Close closes the underlying stream if it can be closed. Only the first call has an effect.
func (L *LineReader) Close() error {
	if L.closed {
		return nil
	}
	L.closed = true
	if L.closer != nil {
		if err := L.closer.Close(); err != nil {
			return IOError(L.format, err)
		}
	}
	return nil
}

//Sink is the buffered text destination shared by all writers. Errors
//are sticky: after the first failure every write is a no-op and Err returns
//that failure.
type Sink struct {
	w      *bufio.Writer
	closer io.Closer
	closed bool
	err    error
	format string
}

//NewSink returns a Sink writing to w. If w is an io.Closer it will be closed by Close.
func NewSink(w io.Writer, fmtname string) *Sink {
	S := &Sink{w: bufio.NewWriter(w), format: fmtname}
	if c, ok := w.(io.Closer); ok {
		S.closer = c
	}
	return S
}

//Printf writes a formatted string.
func (S *Sink) Printf(format string, args ...interface{}) {
	if S.err != nil {
		return
	}
	if S.closed {
		S.err = NewError(S.format, "write on a closed writer", nil)
		return
	}
	_, S.err = fmt.Fprintf(S.w, format, args...)
}

//Line writes s followed by a newline.
func (S *Sink) Line(s string) {
	S.Printf("%s\n", s)
}

//Write implements io.Writer, so a Sink can be handed to encoders.
func (S *Sink) Write(p []byte) (int, error) {
	if S.err != nil {
		return 0, S.err
	}
	if S.closed {
		S.err = NewError(S.format, "write on a closed writer", nil)
		return 0, S.err
	}
	n, err := S.w.Write(p)
	S.err = err
	return n, err
}

//Err returns the first error found, wrapped in a FormatError, or nil.
func (S *Sink) Err() error {
	if S.err == nil {
		return nil
	}
	var e Error
	if errors.As(S.err, &e) {
		return S.err
	}
	return IOError(S.format, S.err)
}

//Flush writes any buffered data to the underlying stream.
func (S *Sink) Flush() error {
	if S.err == nil && !S.closed {
		S.err = S.w.Flush()
	}
	return S.Err()
}

//Close flushes, and closes the underlying stream if it can be closed.
//Only the first call has an effect.
func (S *Sink) Close() error {
	if S.closed {
		return nil
	}
	err := S.Flush()
	S.closed = true
	if S.closer != nil {
		if cerr := S.closer.Close(); cerr != nil && err == nil {
			err = IOError(S.format, cerr)
		}
	}
	return err
}
