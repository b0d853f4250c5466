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
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Box describes the size of a rectangular area.
type Box struct {
	Width Dim
	Depth Dim
}

// NewBox returns a box of the given width and depth.
func NewBox(width, depth Dim) Box {
	return Box{Width: width, Depth: depth}
}

// WithWidth returns a copy of b with the width replaced.
func (b Box) WithWidth(width Dim) Box {
	b.Width = width
	return b
}

// WithDepth returns a copy of b with the depth replaced.
func (b Box) WithDepth(depth Dim) Box {
	b.Depth = depth
	return b
}

// Rect returns the area covered by b, when the lower left corner of b is
// placed at origin.  All coordinates are given in units u.
func (b Box) Rect(origin Pt, u Unit) (rect.Rect, error) {
	ll, err := origin.Vec2(u)
	if err != nil {
		return rect.Rect{}, err
	}
	w, err := b.Width.Convert(u)
	if err != nil {
		return rect.Rect{}, err
	}
	d, err := b.Depth.Convert(u)
	if err != nil {
		return rect.Rect{}, err
	}
	return rect.Rect{
		LLx: ll.X,
		LLy: ll.Y,
		URx: ll.X + w.Value,
		URy: ll.Y + d.Value,
	}, nil
}

func (b Box) String() string {
	return "Box(width=" + b.Width.String() + ", depth=" + b.Depth.String() + ")"
}

// Pad describes the padding which forms the bounding box around an object.
// Prev and Next give the space towards the preceding and following
// siblings, Parent and Child the space towards the enclosing object and
// the object's content.
type Pad struct {
	Prev   Dim
	Next   Dim
	Parent Dim
	Child  Dim
}

// NewPad returns a new Pad.
func NewPad(prev, next, parent, child Dim) Pad {
	return Pad{Prev: prev, Next: next, Parent: parent, Child: child}
}

// WithPrev returns a copy of p with Prev replaced.
func (p Pad) WithPrev(d Dim) Pad {
	p.Prev = d
	return p
}

// WithNext returns a copy of p with Next replaced.
func (p Pad) WithNext(d Dim) Pad {
	p.Next = d
	return p
}

// WithParent returns a copy of p with Parent replaced.
func (p Pad) WithParent(d Dim) Pad {
	p.Parent = d
	return p
}

// WithChild returns a copy of p with Child replaced.
func (p Pad) WithChild(d Dim) Pad {
	p.Child = d
	return p
}

func (p Pad) String() string {
	return "Pad(prev=" + p.Prev.String() +
		", next=" + p.Next.String() +
		", parent=" + p.Parent.String() +
		", child=" + p.Child.String() + ")"
}

// Margin describes the space around an object.
type Margin struct {
	Left   Dim
	Right  Dim
	Top    Dim
	Bottom Dim
}

// NewMargin returns a new Margin.
func NewMargin(left, right, top, bottom Dim) Margin {
	return Margin{Left: left, Right: right, Top: top, Bottom: bottom}
}

// WithLeft returns a copy of m with Left replaced.
func (m Margin) WithLeft(d Dim) Margin {
	m.Left = d
	return m
}

// WithRight returns a copy of m with Right replaced.
func (m Margin) WithRight(d Dim) Margin {
	m.Right = d
	return m
}

// WithTop returns a copy of m with Top replaced.
func (m Margin) WithTop(d Dim) Margin {
	m.Top = d
	return m
}

// WithBottom returns a copy of m with Bottom replaced.
func (m Margin) WithBottom(d Dim) Margin {
	m.Bottom = d
	return m
}

func (m Margin) String() string {
	return "Margin(left=" + m.Left.String() +
		", right=" + m.Right.String() +
		", top=" + m.Top.String() +
		", bottom=" + m.Bottom.String() + ")"
}

// Pt is an absolute position on the plot area.
type Pt struct {
	X Dim
	Y Dim
}

// NewPt returns the point (x, y).
func NewPt(x, y Dim) Pt {
	return Pt{X: x, Y: y}
}

// WithX returns a copy of p with the x coordinate replaced.
func (p Pt) WithX(x Dim) Pt {
	p.X = x
	return p
}

// WithY returns a copy of p with the y coordinate replaced.
func (p Pt) WithY(y Dim) Pt {
	p.Y = y
	return p
}

// Convert returns p with both coordinates expressed in units u.
// The x coordinate is converted first; if this fails, y is not considered.
func (p Pt) Convert(u Unit) (Pt, error) {
	x, err := p.X.Convert(u)
	if err != nil {
		return Pt{}, err
	}
	y, err := p.Y.Convert(u)
	if err != nil {
		return Pt{}, err
	}
	return Pt{X: x, Y: y}, nil
}

// Scale returns p with both coordinates multiplied by factor.
// The units are unchanged.
func (p Pt) Scale(factor float64) Pt {
	return Pt{X: p.X.Scale(factor), Y: p.Y.Scale(factor)}
}

// Equal reports whether both coordinates of p and other agree,
// using [Dim.Equal].
func (p Pt) Equal(other Pt) (bool, error) {
	eq, err := p.X.Equal(other.X)
	if err != nil || !eq {
		return false, err
	}
	return p.Y.Equal(other.Y)
}

// Vec2 returns the coordinates of p in units u.
func (p Pt) Vec2(u Unit) (vec.Vec2, error) {
	q, err := p.Convert(u)
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: q.X.Value, Y: q.Y.Value}, nil
}

// Fixed returns p in base units, as 26.6 fixed point numbers.
func (p Pt) Fixed() (fixed.Point26_6, error) {
	x, err := p.X.Fixed()
	if err != nil {
		return fixed.Point26_6{}, err
	}
	y, err := p.Y.Fixed()
	if err != nil {
		return fixed.Point26_6{}, err
	}
	return fixed.Point26_6{X: x, Y: y}, nil
}

func (p Pt) String() string {
	return "Pt(x=" + p.X.String() + ", y=" + p.Y.String() + ")"
}
