// seehuhn.de/go/coord - dimensioned values for laying out plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package coord implements a simple two-dimensional coordinate system for
// laying out plots.
//
// Lengths are represented by [Dim] values, which combine a number with its
// units.  The supported units are listed by [Units]; all of them are
// linear multiples of the base unit, the PostScript point.  A [Dim] with
// [Unspecified] units takes on the units of the first concrete value it is
// added to:
//
//	d, err := coord.NewDim(5, coord.Unspecified).Add(coord.Inches(1))
//	// d is 1+5/72 inches
//
// Note that the units of a sum depend on the order of the operands.
// Comparisons always convert the right-hand operand to the units of the
// left-hand operand.
//
// The types [Box], [Pad], [Margin] and [Pt] collect several dimensions.
// All types in this package are plain values and are never modified in
// place.
package coord
