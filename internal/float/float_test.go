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

package float

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		prec int
		out  string
	}{
		{0, 2, "0"},
		{1, 3, "1"},
		{1.5, 3, "1.5"},
		{0.25, 1, "0.2"},
		{-0.001, 2, "0"},
		{360, 0, "360"},
		{25.4, 4, "25.4"},
		{-12.125, 2, "-12.12"},
	}
	for _, c := range cases {
		got := Format(c.in, c.prec)
		if got != c.out {
			t.Errorf("Format(%g, %d) = %q, want %q", c.in, c.prec, got, c.out)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(25.400000000000002, 6); got != 25.4 {
		t.Errorf("Round = %g, want 25.4", got)
	}
	if got := Round(math.Inf(1), 3); !math.IsInf(got, 1) {
		t.Errorf("Round(+Inf) = %g", got)
	}
	if got := Round(math.NaN(), 3); !math.IsNaN(got) {
		t.Errorf("Round(NaN) = %g", got)
	}

	negative := []struct {
		in     float64
		digits int
		out    float64
	}{
		{1234.5, -2, 1200},
		{1250, -2, 1300},
		{-1234.5, -1, -1230},
		{49, -2, 0},
		{1234.5, 0, 1234},
	}
	for _, c := range negative {
		if got := Round(c.in, c.digits); got != c.out {
			t.Errorf("Round(%g, %d) = %g, want %g", c.in, c.digits, got, c.out)
		}
	}
}

func TestRepr(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0.0"},
		{360, "360.0"},
		{25.4, "25.4"},
		{-1.5, "-1.5"},
		{0.1, "0.1"},
		{1e20, "1e+20"},
		{1e-5, "1e-05"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}
	for _, c := range cases {
		got := Repr(c.in)
		if got != c.out {
			t.Errorf("Repr(%g) = %q, want %q", c.in, got, c.out)
		}
	}
}
