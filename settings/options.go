/*
 * options.go, part of gochemio.
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

package settings

import chem "github.com/rmera/gochemio"

//IO is what every reader and writer is configured with.
type IO struct {
	Mode     chem.Mode
	Builder  chem.Builder
	Settings Settings
}

//Option modifies an IO.
type Option func(*IO)

//WithMode sets the reading mode.
func WithMode(m chem.Mode) Option {
	return func(o *IO) { o.Mode = m }
}

//WithBuilder sets the Builder used to create atoms, bonds and containers.
//A nil b is ignored.
func WithBuilder(b chem.Builder) Option {
	return func(o *IO) {
		if b != nil {
			o.Builder = b
		}
	}
}

//WithSettings replaces the settings, and takes the mode from them.
func WithSettings(s Settings) Option {
	return func(o *IO) {
		o.Settings = s
		o.Mode = s.ReaderMode()
	}
}

//Apply returns the IO resulting from the default settings, the default
//Builder and the given options, applied in order.
func Apply(opts ...Option) IO {
	s := Default()
	o := IO{Mode: s.ReaderMode(), Builder: chem.NewBuilder(), Settings: s}
	for _, f := range opts {
		if f != nil {
			f(&o)
		}
	}
	return o
}

//Options returns opts as a slice that reproduces o, so a reader can
//hand its own configuration to the sub-readers it creates.
func (o IO) Options() []Option {
	return []Option{WithSettings(o.Settings), WithMode(o.Mode), WithBuilder(o.Builder)}
}
