/*
 * mapping.go, part of gochemio.
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

package mdl

import chem "github.com/rmera/gochemio"

//buildMappings adds a mapping to r for every reactant atom whose mapping
//number is also carried by a product atom. Only the first product atom
//with the number is used.
func buildMappings(b chem.Builder, r *chem.Reaction) {
	var products []*chem.Atom
	for _, p := range r.Products.Containers {
		products = append(products, p.Atoms...)
	}
	for _, react := range r.Reactants.Containers {
		for _, ra := range react.Atoms {
			n, ok := ra.AtomAtomMapping()
			if !ok {
				continue
			}
			for _, pa := range products {
				if m, ok := pa.AtomAtomMapping(); ok && m == n {
					r.AddMapping(b.NewMapping(ra, pa))
					break
				}
			}
		}
	}
}

//assign distributes the molecules read for a reaction among its reactants,
//products and agents, in that order.
func assign(r *chem.Reaction, mols []*chem.AtomContainer, nreact, nprod int) {
	for i, m := range mols {
		switch {
		case i < nreact:
			r.Reactants.Add(m)
		case i < nreact+nprod:
			r.Products.Add(m)
		default:
			r.Agents.Add(m)
		}
	}
}
