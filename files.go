/*
 * files.go, part of gochemio.
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
	"compress/bzip2"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//zstd.Decoder has Close() without an error, so it is not an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

//closes the decompressor and then the file.
type stackedReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (s stackedReadCloser) Close() error {
	var err error
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type stackedWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (s stackedWriteCloser) Close() error {
	var err error
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

//Compression returns the compression suffix of name ("gz", "zst", "bz2") or "".
func Compression(name string) string {
	l := strings.ToLower(name)
	switch {
	case strings.HasSuffix(l, ".gz"):
		return "gz"
	case strings.HasSuffix(l, ".zst"):
		return "zst"
	case strings.HasSuffix(l, ".bz2"):
		return "bz2"
	}
	return ""
}

//TrimCompression returns name without its compression suffix, if any.
func TrimCompression(name string) string {
	if c := Compression(name); c != "" {
		return name[:len(name)-len(c)-1]
	}
	return name
}

//OpenFile opens the file name for reading. Files ending in .gz, .zst or
//.bz2 are decompressed on the fly. The returned stream is not seekable
//if the file is compressed.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, NewError("", "unable to open file "+name, err)
	}
	var r io.ReadCloser
	switch Compression(name) {
	case "gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, NewError("", "can't read gzip header of "+name, err)
		}
		r = stackedReadCloser{gz, []io.Closer{gz, f}}
	case "zst":
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, NewError("", "can't read zstd stream of "+name, err)
		}
		r = zstdReadCloser{z, f}
	case "bz2":
		r = stackedReadCloser{bzip2.NewReader(f), []io.Closer{f}}
	default:
		r = f
	}
	return r, nil
}

//CreateFile creates (or truncates) the file name for writing. Files ending in
//.gz or .zst are compressed. bzip2 compression is not available for writing.
func CreateFile(name string) (io.WriteCloser, error) {
	comp := Compression(name)
	if comp == "bz2" {
		return nil, Errorf("", "can't write bzip2 compressed file %s", name)
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, NewError("", "unable to create file "+name, err)
	}
	switch comp {
	case "gz":
		gz := gzip.NewWriter(f)
		return stackedWriteCloser{gz, []io.Closer{gz, f}}, nil
	case "zst":
		z, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, NewError("", "can't create zstd stream for "+name, err)
		}
		return stackedWriteCloser{z, []io.Closer{z, f}}, nil
	}
	return f, nil
}
