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

/*
Package chem is the root package of gochemio, a library for reading and writing
chemical structure files. It provides the in-memory data model the readers build
(atoms, bonds, containers, reactions, crystals and the model/sequence/file
hierarchy), the Builder through which every entity is created, the Error type
shared by all formats and the plumbing the readers and writers have in common
(line sources, buffered sinks, tokenizing, transparent decompression).

		**gochemio Capabilities**

	    Detects the format of a file from its first lines (package format).

	    Finds and builds the reader or writer for a format (package registry).

	    Reads and writes MDL molfiles (V2000, V3000 read), SD files, and
		RXN files (V2000 read/write, V3000 read), keeping atom-atom mappings.

	    Reads InChI identifiers (plain text and XML) into connection tables.

	    Reads CTX, Ghemical MM, HIN, XYZ, Z-matrix and CrystClust files.

	    Writes XYZ, HIN, Mol2, PDB, ShelX, CrystClust, CML, CMLRSS and Gaussian input.

	    Reads files compressed with gzip, zstd or bzip2 transparently.

The format packages live under files/, one per format family.
*/
package chem
