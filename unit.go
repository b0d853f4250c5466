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

package coord

import (
	"maps"
	"slices"
)

// Unit identifies the unit of a [Dim].
type Unit string

// These are the units understood by the package.
const (
	Unspecified Unit = ""   // take the units of the other operand
	Pixel       Unit = "px" // same as Point
	Point       Unit = "pt"
	Pica        Unit = "pc"
	Inch        Unit = "in"
	Centimeter  Unit = "cm"
	Millimeter  Unit = "mm"
)

// BaseUnit is the unit all other units are scaled against.
const BaseUnit = Point

// unitScale maps every known unit to its size in base units.
var unitScale = map[Unit]float64{
	Unspecified: 1.0,
	Pixel:       1.0,
	Point:       1.0,
	Pica:        12.0,
	Inch:        72.0,
	Centimeter:  72.0 / 2.54,
	Millimeter:  72.0 / 25.4,
}

// Units returns all units understood by the package, including
// [Unspecified].  The order of the returned slice carries no meaning.
func Units() []Unit {
	return slices.Sorted(maps.Keys(unitScale))
}

// IsValid reports whether u is one of the known units.
func (u Unit) IsValid() bool {
	_, ok := unitScale[u]
	return ok
}

// Scale returns the size of one u in base units.
func (u Unit) Scale() (float64, error) {
	s, ok := unitScale[u]
	if !ok {
		return 0, &UnitConversionError{Unit: u}
	}
	return s, nil
}

// Convert converts the value v from units `from` to units `to`.
//
// If from and to are equal, v is returned unchanged.
func Convert(v float64, from, to Unit) (float64, error) {
	if from == to {
		return v, nil
	}
	fromScale, ok := unitScale[from]
	if !ok {
		return 0, &UnitConversionError{Unit: from}
	}
	toScale, ok := unitScale[to]
	if !ok {
		return 0, &UnitConversionError{Unit: to}
	}
	return v * fromScale / toScale, nil
}
