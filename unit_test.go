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
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnits(t *testing.T) {
	got := Units()
	want := []Unit{Unspecified, Centimeter, Inch, Millimeter, Pica, Point, Pixel}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Units() mismatch (-want +got):\n%s", d)
	}
	for _, u := range got {
		if !u.IsValid() {
			t.Errorf("%q is not valid", u)
		}
	}
	if Unit("bogus").IsValid() {
		t.Error("bogus is valid")
	}
}

func TestUnitScale(t *testing.T) {
	s, err := Pica.Scale()
	if err != nil || s != 12 {
		t.Errorf("Pica.Scale() = %g, %v", s, err)
	}
	_, err = Unit("furlong").Scale()
	var convErr *UnitConversionError
	if !errors.As(err, &convErr) || convErr.Unit != "furlong" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestConvertLiterals(t *testing.T) {
	cases := []struct {
		v        float64
		from, to Unit
		want     float64
	}{
		{1, Inch, Point, 72},
		{1, Centimeter, Point, 72.0 / 2.54},
		{1, Pica, Point, 12},
		{1, Pixel, Point, 1},
		{5, Unspecified, Point, 5},
		{144, Point, Inch, 2},
		{24, Point, Pica, 2},
	}
	for _, c := range cases {
		got, err := Convert(c.v, c.from, c.to)
		if err != nil {
			t.Errorf("Convert(%g, %q, %q): %v", c.v, c.from, c.to, err)
			continue
		}
		if got != c.want {
			t.Errorf("Convert(%g, %q, %q) = %g, want %g", c.v, c.from, c.to, got, c.want)
		}
	}

	got, err := Convert(25.4, Millimeter, Inch)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("25.4mm = %gin, want 1in", got)
	}
}

func TestConvertIdentity(t *testing.T) {
	values := []float64{0, 1, -3.25, 0.1, 1e300, math.Inf(-1)}
	for _, u := range Units() {
		for _, v := range values {
			got, err := Convert(v, u, u)
			if err != nil {
				t.Fatal(err)
			}
			if got != v {
				t.Errorf("Convert(%g, %q, %q) = %g", v, u, u, got)
			}
		}
	}

	// the identity shortcut does not look at the table
	got, err := Convert(7, "bogus", "bogus")
	if err != nil || got != 7 {
		t.Errorf("Convert(7, bogus, bogus) = %g, %v", got, err)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 72, 25.4, 1234.5678}
	for _, u1 := range Units() {
		for _, u2 := range Units() {
			for _, v := range values {
				w, err := Convert(v, u1, u2)
				if err != nil {
					t.Fatal(err)
				}
				back, err := Convert(w, u2, u1)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(back-v) > 1e-12*math.Max(1, math.Abs(v)) {
					t.Errorf("%g%s -> %g%s -> %g%s", v, u1, w, u2, back, u1)
				}
			}
		}
	}
}

func TestConvertErrors(t *testing.T) {
	cases := []struct {
		from, to Unit
		bad      Unit
	}{
		{"bogus", Point, "bogus"},
		{Point, "bogus", "bogus"},
		{"from", "to", "from"},
		{Unspecified, "ft", "ft"},
	}
	for _, c := range cases {
		_, err := Convert(1, c.from, c.to)
		var convErr *UnitConversionError
		if !errors.As(err, &convErr) {
			t.Errorf("Convert(1, %q, %q): unexpected error %v", c.from, c.to, err)
			continue
		}
		if convErr.Unit != c.bad {
			t.Errorf("Convert(1, %q, %q): error names %q, want %q",
				c.from, c.to, convErr.Unit, c.bad)
		}
		if !strings.Contains(err.Error(), string(c.bad)) {
			t.Errorf("error message %q does not mention %q", err, c.bad)
		}
		if !errors.Is(err, ErrUnsupportedUnit) {
			t.Errorf("%v is not ErrUnsupportedUnit", err)
		}
	}
}

func FuzzConvertRoundTrip(f *testing.F) {
	f.Add(1.0, uint8(0), uint8(3))
	f.Add(25.4, uint8(5), uint8(2))
	f.Add(-72.0, uint8(1), uint8(6))

	units := Units()
	f.Fuzz(func(t *testing.T, v float64, i, j uint8) {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 1e300 || math.Abs(v) < 1e-300 {
			return
		}
		u1 := units[int(i)%len(units)]
		u2 := units[int(j)%len(units)]

		w, err := Convert(v, u1, u2)
		if err != nil {
			t.Fatal(err)
		}
		back, err := Convert(w, u2, u1)
		if err != nil {
			t.Fatal(err)
		}
		if u1 == u2 && back != v {
			t.Fatalf("identity changed %g to %g", v, back)
		}
		if math.Abs(back-v) > 1e-12*math.Abs(v) {
			t.Errorf("%g%s -> %g%s -> %g%s", v, u1, w, u2, back, u1)
		}
	})
}
