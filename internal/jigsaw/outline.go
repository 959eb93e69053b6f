package jigsaw

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/calma/internal/core"
)

// CellSize is the side of one piece body in outline units.
const CellSize = 100

// Op is a path command.
type Op int

const (
	MoveTo Op = iota
	LineTo
	CubicTo
	Close
)

// Segment is one path command. LineTo and MoveTo use P[0]; CubicTo uses
// P[0] and P[1] as control points and P[2] as the end point.
type Segment struct {
	Op Op
	P  [3]core.Vec
}

// Path is a closed piece outline.
type Path []Segment

// ViewBox returns the side of the square view box that holds a piece body
// plus its bump margin on every side.
func ViewBox(depth float64) float64 {
	return CellSize + 2*depth
}

// Outline builds the piece's closed outline. The body spans
// [depth, CellSize+depth] on both axes; each non-flat edge gets a bump of
// the given depth, outward for Tab and inward for Slot, between 33% and 67%
// of the edge.
func Outline(p Piece, depth float64) Path {
	d := depth
	lo, hi := d, CellSize+d
	c1, c2, mid, c3, c4 := d+33, d+40, d+50, d+60, d+67

	var path Path
	move := func(x, y float64) { path = append(path, Segment{Op: MoveTo, P: [3]core.Vec{{X: x, Y: y}}}) }
	line := func(x, y float64) { path = append(path, Segment{Op: LineTo, P: [3]core.Vec{{X: x, Y: y}}}) }
	cubic := func(x1, y1, x2, y2, x, y float64) {
		path = append(path, Segment{Op: CubicTo, P: [3]core.Vec{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x, Y: y}}})
	}

	move(lo, lo)

	// Top, left to right. Outward is -y.
	if p.Top == Flat {
		line(hi, lo)
	} else {
		s := p.Top.sign() * -d
		line(c1, lo)
		cubic(c1, lo+s, c2, lo+s*1.6, mid, lo+s*1.6)
		cubic(c3, lo+s*1.6, c4, lo+s, c4, lo)
		line(hi, lo)
	}

	// Right, top to bottom. Outward is +x.
	if p.Right == Flat {
		line(hi, hi)
	} else {
		s := p.Right.sign() * d
		line(hi, c1)
		cubic(hi+s, c1, hi+s*1.6, c2, hi+s*1.6, mid)
		cubic(hi+s*1.6, c3, hi+s, c4, hi, c4)
		line(hi, hi)
	}

	// Bottom, right to left. Outward is +y.
	if p.Bottom == Flat {
		line(lo, hi)
	} else {
		s := p.Bottom.sign() * d
		line(c4, hi)
		cubic(c4, hi+s, c3, hi+s*1.6, mid, hi+s*1.6)
		cubic(c2, hi+s*1.6, c1, hi+s, c1, hi)
		line(lo, hi)
	}

	// Left, bottom to top. Outward is -x.
	if p.Left != Flat {
		s := p.Left.sign() * -d
		line(lo, c4)
		cubic(lo+s, c4, lo+s*1.6, c3, lo+s*1.6, mid)
		cubic(lo+s*1.6, c2, lo+s, c1, lo, c1)
	}
	path = append(path, Segment{Op: Close})
	return path
}

// sign is +1 for an outward bump and -1 for an inward one, relative to the
// edge's outward normal.
func (s Shape) sign() float64 {
	if s == Tab {
		return 1
	}
	return -1
}

// SVG renders the path as SVG path data.
func (p Path) SVG() string {
	var sb strings.Builder
	for i, seg := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch seg.Op {
		case MoveTo:
			sb.WriteString("M ")
			writePoint(&sb, seg.P[0])
		case LineTo:
			sb.WriteString("L ")
			writePoint(&sb, seg.P[0])
		case CubicTo:
			sb.WriteString("C ")
			writePoint(&sb, seg.P[0])
			sb.WriteByte(' ')
			writePoint(&sb, seg.P[1])
			sb.WriteByte(' ')
			writePoint(&sb, seg.P[2])
		case Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func writePoint(sb *strings.Builder, v core.Vec) {
	sb.WriteString(strconv.FormatFloat(v.X, 'f', -1, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(v.Y, 'f', -1, 64))
}

// Transform maps every point through fn.
func (p Path) Transform(fn func(core.Vec) core.Vec) Path {
	out := make(Path, len(p))
	for i, seg := range p {
		out[i].Op = seg.Op
		for j := range seg.P {
			out[i].P[j] = fn(seg.P[j])
		}
	}
	return out
}

// Fit maps the outline so the piece body fills b. Bumps extend past b by
// the same proportion they extend past the body.
func (p Path) Fit(b core.Box, depth float64) Path {
	kx, ky := b.W/CellSize, b.H/CellSize
	return p.Transform(func(v core.Vec) core.Vec {
		return core.Vec{X: b.X + (v.X-depth)*kx, Y: b.Y + (v.Y-depth)*ky}
	})
}

// Polygon is a closed polyline.
type Polygon []core.Vec

// Flatten approximates curves with steps line segments each.
func (p Path) Flatten(steps int) Polygon {
	if steps < 1 {
		steps = 1
	}
	var poly Polygon
	var cur core.Vec
	for _, seg := range p {
		switch seg.Op {
		case MoveTo, LineTo:
			cur = seg.P[0]
			poly = append(poly, cur)
		case CubicTo:
			p0 := cur
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				poly = append(poly, cubicAt(p0, seg.P[0], seg.P[1], seg.P[2], t))
			}
			cur = seg.P[2]
		}
	}
	return poly
}

func cubicAt(p0, p1, p2, p3 core.Vec, t float64) core.Vec {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return core.Vec{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Contains reports whether v is inside the polygon (even-odd rule).
func (poly Polygon) Contains(v core.Vec) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > v.Y) != (b.Y > v.Y) {
			x := a.X + (v.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if v.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Bounds returns the polygon's bounding box.
func (poly Polygon) Bounds() core.Box {
	if len(poly) == 0 {
		return core.Box{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range poly {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	return core.Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Area returns the polygon's area (shoelace formula).
func (poly Polygon) Area() float64 {
	var sum float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}
