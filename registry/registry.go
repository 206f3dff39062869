/*
 * registry.go, part of gochemio.
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

//Package registry binds formats to the readers and writers that implement
//them, and reads files of any known format.
package registry

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"

	"go.uber.org/zap"

	chem "github.com/rmera/gochemio"
	"github.com/rmera/gochemio/format"
)

//go:embed formats.list
var manifest string

//Registry holds the known formats and the explicitly registered writers and
//readers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	formats []*format.Format
	writers map[string]WriterConstructor
	readers map[string]ReaderConstructor
	log     *zap.Logger
}

//New returns a registry with the formats named in list, one per line.
//Blank lines and lines starting with # are ignored, unknown names are logged
//and skipped.
func New(list string) *Registry {
	R := &Registry{
		writers: make(map[string]WriterConstructor),
		readers: make(map[string]ReaderConstructor),
		log:     chem.Log().Named("registry"),
	}
	sc := bufio.NewScanner(strings.NewReader(list))
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		f := format.ByName(name)
		if f == nil {
			R.log.Warn("unknown format in manifest", zap.String("name", name))
			continue
		}
		R.formats = append(R.formats, f)
	}
	return R
}

var (
	defOnce sync.Once
	def     *Registry
)

//Default returns the process-wide registry, built from the embedded
//manifest on first use.
func Default() *Registry {
	defOnce.Do(func() {
		def = New(manifest)
	})
	return def
}

//Formats returns the known formats.
func (R *Registry) Formats() []*format.Format {
	R.mu.RLock()
	defer R.mu.RUnlock()
	return append([]*format.Format(nil), R.formats...)
}

//FindFormats returns the formats supporting every feature in required.
func (R *Registry) FindFormats(required format.Feature) []*format.Format {
	var ret []*format.Format
	for _, f := range R.Formats() {
		if f.Features.Has(required) {
			ret = append(ret, f)
		}
	}
	return ret
}

//Register makes ctor the writer for the formats with the given name or
//writer name. It takes precedence over the built-in writers.
func (R *Registry) Register(name string, ctor WriterConstructor) {
	R.mu.Lock()
	defer R.mu.Unlock()
	R.writers[name] = ctor
}

//RegisterReader is like Register, for readers.
func (R *Registry) RegisterReader(name string, ctor ReaderConstructor) {
	R.mu.Lock()
	defer R.mu.Unlock()
	R.readers[name] = ctor
}

//WriterType returns the writer constructor for f: an explicitly registered
//one first, the built-in one for f.WriterName otherwise.
func (R *Registry) WriterType(f *format.Format) (WriterConstructor, bool) {
	if f == nil {
		return nil, false
	}
	R.mu.RLock()
	ctor, ok := R.writers[f.Name]
	if !ok && f.WriterName != "" {
		ctor, ok = R.writers[f.WriterName]
	}
	R.mu.RUnlock()
	if ok {
		return ctor, true
	}
	if f.WriterName == "" {
		R.log.Info("format has no writer", zap.String("format", f.Name))
		return nil, false
	}
	ctor, ok = builtinWriters[f.WriterName]
	if !ok {
		R.log.Error("could not find writer", zap.String("format", f.Name), zap.String("writer", f.WriterName))
	}
	return ctor, ok
}

//ReaderType returns the reader constructor for f, in the same way as WriterType.
func (R *Registry) ReaderType(f *format.Format) (ReaderConstructor, bool) {
	if f == nil {
		return nil, false
	}
	R.mu.RLock()
	ctor, ok := R.readers[f.Name]
	if !ok && f.ReaderName != "" {
		ctor, ok = R.readers[f.ReaderName]
	}
	R.mu.RUnlock()
	if ok {
		return ctor, true
	}
	if f.ReaderName == "" {
		R.log.Info("format has no reader", zap.String("format", f.Name))
		return nil, false
	}
	ctor, ok = builtinReaders[f.ReaderName]
	if !ok {
		R.log.Error("could not find reader", zap.String("format", f.Name), zap.String("reader", f.ReaderName))
	}
	return ctor, ok
}
