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
	"cmp"
	"math"

	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/coord/internal/float"
)

// Dim is a dimension, i.e. a number together with its units.
//
// Dim values are never modified in place; all methods return a new value.
type Dim struct {
	Value float64
	Units Unit
}

// NewDim returns the dimension v, measured in units u.
func NewDim(v float64, u Unit) Dim {
	return Dim{Value: v, Units: u}
}

// Scale returns d multiplied by factor.  The units are unchanged.
func (d Dim) Scale(factor float64) Dim {
	return Dim{Value: d.Value * factor, Units: d.Units}
}

// Divide returns d divided by factor.  The units are unchanged.
// Division by zero gives an infinite or NaN value.
func (d Dim) Divide(factor float64) Dim {
	return Dim{Value: d.Value / factor, Units: d.Units}
}

// Convert returns d expressed in units u.
func (d Dim) Convert(u Unit) (Dim, error) {
	v, err := Convert(d.Value, d.Units, u)
	if err != nil {
		return Dim{}, err
	}
	return Dim{Value: v, Units: u}, nil
}

// Add returns the sum of d and other.
//
// The result uses the units of d, unless d has [Unspecified] units and
// other does not.  In this case the units of other are used.
func (d Dim) Add(other Dim) (Dim, error) {
	if d.Units == Unspecified && other.Units != Unspecified {
		v, err := Convert(d.Value, d.Units, other.Units)
		if err != nil {
			return Dim{}, err
		}
		return Dim{Value: other.Value + v, Units: other.Units}, nil
	}

	v, err := Convert(other.Value, other.Units, d.Units)
	if err != nil {
		return Dim{}, err
	}
	return Dim{Value: d.Value + v, Units: d.Units}, nil
}

// Sub returns the difference d - other.
// The units of the result are chosen as for [Dim.Add].
func (d Dim) Sub(other Dim) (Dim, error) {
	if d.Units == Unspecified && other.Units != Unspecified {
		v, err := Convert(d.Value, d.Units, other.Units)
		if err != nil {
			return Dim{}, err
		}
		return Dim{Value: v - other.Value, Units: other.Units}, nil
	}

	v, err := Convert(other.Value, other.Units, d.Units)
	if err != nil {
		return Dim{}, err
	}
	return Dim{Value: d.Value - v, Units: d.Units}, nil
}

// otherValue returns the value of other, converted to the units of d.
func (d Dim) otherValue(other Dim) (float64, error) {
	return Convert(other.Value, other.Units, d.Units)
}

// Less reports whether d < other.  The comparison is done in the units of d.
func (d Dim) Less(other Dim) (bool, error) {
	v, err := d.otherValue(other)
	if err != nil {
		return false, err
	}
	return d.Value < v, nil
}

// LessEqual reports whether d <= other.
func (d Dim) LessEqual(other Dim) (bool, error) {
	v, err := d.otherValue(other)
	if err != nil {
		return false, err
	}
	return d.Value <= v, nil
}

// Equal reports whether d and other describe the same length, after
// converting other to the units of d.
func (d Dim) Equal(other Dim) (bool, error) {
	v, err := d.otherValue(other)
	if err != nil {
		return false, err
	}
	return d.Value == v, nil
}

// NotEqual reports whether d != other.
func (d Dim) NotEqual(other Dim) (bool, error) {
	v, err := d.otherValue(other)
	if err != nil {
		return false, err
	}
	return d.Value != v, nil
}

// Greater reports whether d > other.
func (d Dim) Greater(other Dim) (bool, error) {
	v, err := d.otherValue(other)
	if err != nil {
		return false, err
	}
	return d.Value > v, nil
}

// GreaterEqual reports whether d >= other.
func (d Dim) GreaterEqual(other Dim) (bool, error) {
	v, err := d.otherValue(other)
	if err != nil {
		return false, err
	}
	return d.Value >= v, nil
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than,
// equal to, or longer than other.  NaN values sort first, as for
// [cmp.Compare].
func (d Dim) Compare(other Dim) (int, error) {
	v, err := d.otherValue(other)
	if err != nil {
		return 0, err
	}
	return cmp.Compare(d.Value, v), nil
}

// Round returns d with the value rounded to the given number of decimal
// digits.  Negative digits round to tens, hundreds, and so on.
func (d Dim) Round(digits int) Dim {
	return Dim{Value: float.Round(d.Value, digits), Units: d.Units}
}

// Fixed returns d in base units, as a 26.6 fixed point number.
// If the value is not finite or does not fit into a [fixed.Int26_6],
// [ErrFixedRange] is returned.
func (d Dim) Fixed() (fixed.Int26_6, error) {
	v, err := Convert(d.Value, d.Units, BaseUnit)
	if err != nil {
		return 0, err
	}
	x := math.Round(v * 64)
	if !(x >= math.MinInt32 && x <= math.MaxInt32) {
		return 0, ErrFixedRange
	}
	return fixed.Int26_6(x), nil
}

// Format returns a label for d, using the number conventions of the given
// language and prec digits after the decimal point.
func (d Dim) Format(tag language.Tag, prec int) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%.*f", prec, d.Value) + string(d.Units)
}

func (d Dim) String() string {
	return "Dim(" + float.Repr(d.Value) + string(d.Units) + ")"
}
