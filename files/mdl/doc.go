/*
 * doc.go, part of gochemio.
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

//Package mdl reads and writes the MDL family of formats: molfiles (V2000 and
//V3000), SD files and RXN files (V2000 and V3000).
//
//The RXN readers delegate each embedded molecule to a molfile reader
//configured like themselves, and rebuild the atom-atom mappings of the
//reaction from the mapping numbers of the atoms.
package mdl
