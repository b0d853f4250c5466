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

// Package float formats and rounds the numbers stored in dimensions.
package float

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Format formats x with the given number of decimal digits and strips
// trailing zeros.  Integral values are printed without a decimal point.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

// Round rounds x to the given number of decimal digits.
// For negative digits, x is rounded to a multiple of 10^-digits.
func Round(x float64, digits int) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	if digits < 0 {
		p := math.Pow10(-digits)
		return math.Round(x/p) * p
	}
	s := Format(x, digits)
	y, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	return y
}

// Repr returns the shortest representation of x which reads back as the
// same float64.  Finite integral values keep a trailing ".0", so that
// 360 prints as "360.0".
func Repr(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	var out string
	if a := math.Abs(x); a != 0 && (a < 1e-4 || a >= 1e16) {
		out = strconv.FormatFloat(x, 'g', -1, 64)
	} else {
		out = strconv.FormatFloat(x, 'f', -1, 64)
	}
	if !strings.ContainsAny(out, ".e") {
		out += ".0"
	}
	return out
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
