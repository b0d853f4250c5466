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
	"errors"
	"strconv"
)

var (
	// ErrUnsupportedUnit is matched by every [UnitConversionError].
	ErrUnsupportedUnit = errors.New("unsupported units")

	// ErrFixedRange indicates that a dimension cannot be represented
	// as a 26.6 fixed point number.
	ErrFixedRange = errors.New("value out of range for 26.6 fixed point")
)

// UnitConversionError is returned when a conversion involves a unit
// which is not listed by [Units].
type UnitConversionError struct {
	Unit Unit
}

func (err *UnitConversionError) Error() string {
	return "unsupported units " + strconv.Quote(string(err.Unit))
}

// Is allows to use errors.Is(err, ErrUnsupportedUnit).
func (err *UnitConversionError) Is(target error) bool {
	return target == ErrUnsupportedUnit
}
