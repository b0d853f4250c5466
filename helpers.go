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

import "golang.org/x/exp/constraints"

// Number is the set of types accepted by the constructors below.
type Number interface {
	constraints.Integer | constraints.Float
}

// Inches returns a dimension of v inches.
func Inches[T Number](v T) Dim {
	return Dim{Value: float64(v), Units: Inch}
}

// BaseUnits returns a dimension of the given length, in base units.
func BaseUnits[T Number](length T) Dim {
	return Dim{Value: float64(length), Units: BaseUnit}
}

// ZeroDim returns a zero length, in base units.
func ZeroDim() Dim {
	return BaseUnits(0.0)
}

// ZeroBox returns a box of zero width and depth, in base units.
func ZeroBox() Box {
	return Box{Width: ZeroDim(), Depth: ZeroDim()}
}

// ZeroPad returns padding where all four sides are zero, in base units.
func ZeroPad() Pad {
	return Pad{Prev: ZeroDim(), Next: ZeroDim(), Parent: ZeroDim(), Child: ZeroDim()}
}

// ZeroMargin returns a margin where all four sides are zero, in base units.
func ZeroMargin() Margin {
	return Margin{Left: ZeroDim(), Right: ZeroDim(), Top: ZeroDim(), Bottom: ZeroDim()}
}

// ZeroPt returns the origin, in base units.
func ZeroPt() Pt {
	return Pt{X: ZeroDim(), Y: ZeroDim()}
}

// TranslatePt returns p moved by dx and dy.
// A nil dx or dy leaves the corresponding coordinate unchanged.
// The sums are computed using [Dim.Add], so the new coordinates keep the
// units of p unless these are [Unspecified].
func TranslatePt(p Pt, dx, dy *Dim) (Pt, error) {
	x := p.X
	if dx != nil {
		var err error
		x, err = x.Add(*dx)
		if err != nil {
			return Pt{}, err
		}
	}
	y := p.Y
	if dy != nil {
		var err error
		y, err = y.Add(*dy)
		if err != nil {
			return Pt{}, err
		}
	}
	return Pt{X: x, Y: y}, nil
}

// ConvertPt returns a new point with the coordinates of p given in units u.
// The result is the same as for [Pt.Convert].
func ConvertPt(p Pt, u Unit) (Pt, error) {
	x, err := Convert(p.X.Value, p.X.Units, u)
	if err != nil {
		return Pt{}, err
	}
	y, err := Convert(p.Y.Value, p.Y.Units, u)
	if err != nil {
		return Pt{}, err
	}
	return Pt{
		X: Dim{Value: x, Units: u},
		Y: Dim{Value: y, Units: u},
	}, nil
}
