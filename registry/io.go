/*
 * io.go, part of gochemio.
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

package registry

import (
	"io"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/format"
	"github.com/rmera/gochemio/settings"
)

//CreateWriter returns a writer of format f to w, or nil if there is none.
func (R *Registry) CreateWriter(f *format.Format, w io.Writer, opts ...settings.Option) chem.Writer {
	ctor, ok := R.WriterType(f)
	if !ok {
		return nil
	}
	return ctor(w, opts...)
}

//CreateReader returns a reader of format f from r, or nil if there is none.
func (R *Registry) CreateReader(f *format.Format, r io.Reader, opts ...settings.Option) chem.Reader {
	ctor, ok := R.ReaderType(f)
	if !ok {
		return nil
	}
	return ctor(r, opts...)
}

//ReadFile reads the file at path, which can be compressed (gz, zst or bz2).
//The format is guessed from the contents, and from the extension if that
//fails. It returns the contents and the format used to read them.
func (R *Registry) ReadFile(path string, opts ...settings.Option) (*chem.ChemFile, *format.Format, error) {
	opt := settings.Apply(opts...)
	in, err := chem.OpenFile(path)
	if err != nil {
		return nil, nil, chem.Decorate(err, "", "ReadFile")
	}
	factory := format.NewFactory(format.WithSettings(opt.Settings))
	f, replay, err := factory.Sniff(in)
	if err != nil {
		in.Close()
		return nil, nil, chem.Decorate(err, "", "ReadFile")
	}
	if f == nil || f.ReaderName == "" {
		for _, g := range format.ByExtension(chem.TrimCompression(path)) {
			if g.ReaderName != "" {
				R.log.Debug("format guessed from the extension", zap.String("file", path), zap.String("format", g.Name))
				f = g
				break
			}
		}
	}
	if f == nil {
		in.Close()
		return nil, nil, chem.Errorf("", "can't tell the format of %s", path)
	}
	rd := R.CreateReader(f, readCloser{replay, in}, opt.Options()...)
	if rd == nil {
		in.Close()
		return nil, f, chem.Errorf(f.Name, "no reader for format %s", f.Name)
	}
	defer rd.Close()
	file, err := rd.ReadChemFile()
	if err != nil {
		return nil, f, chem.Decorate(err, f.Name, "ReadFile")
	}
	return file, f, nil
}

//WriteFile writes obj to the file at path in format f, compressing it if
//the name ends in .gz or .zst.
func (R *Registry) WriteFile(path string, f *format.Format, obj chem.Object, opts ...settings.Option) error {
	if f == nil {
		return chem.Errorf("", "no format given to write %s", path)
	}
	out, err := chem.CreateFile(path)
	if err != nil {
		return chem.Decorate(err, "", "WriteFile")
	}
	w := R.CreateWriter(f, out, opts...)
	if w == nil {
		out.Close()
		return chem.Errorf(f.Name, "no writer for format %s", f.Name)
	}
	if !w.Accepts(obj) {
		w.Close()
		return chem.Errorf(f.Name, "format %s can't hold a %T", f.Name, obj)
	}
	if err := w.Write(obj); err != nil {
		w.Close()
		return chem.Decorate(err, f.Name, "WriteFile")
	}
	return w.Close()
}

//readCloser reads from the replaying reader and closes the file.
type readCloser struct {
	io.Reader
	io.Closer
}
