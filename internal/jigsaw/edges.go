// Package jigsaw generates interlocking puzzle pieces: a coupled edge grid,
// the per-piece edge shapes derived from it, and vector outlines.
package jigsaw

import (
	"fmt"
	"math/rand"
)

// Shape is the form of one piece edge.
type Shape int

const (
	Flat Shape = iota
	Tab        // bulges outward
	Slot       // cut inward
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Tab:
		return "TAB"
	case Slot:
		return "SLOT"
	default:
		return "FLAT"
	}
}

// Complement returns the shape that interlocks with s.
func (s Shape) Complement() Shape {
	switch s {
	case Tab:
		return Slot
	case Slot:
		return Tab
	default:
		return Flat
	}
}

// Orient is the direction of a shared edge's bump, relative to the grid:
// Out points toward increasing row (horizontal edges) or column (vertical
// edges).
type Orient bool

const (
	In  Orient = false
	Out Orient = true
)

// EdgeGrid holds every edge of an N×N puzzle. H has N+1 rows of N
// horizontal edges (row r is the top of cell row r); V has N rows of N+1
// vertical edges (column c is the left of cell column c). Border entries are
// drawn like the rest but never read.
type EdgeGrid struct {
	N int
	H [][]Orient
	V [][]Orient
}

// NewEdgeGrid draws every edge orientation once with rng.
func NewEdgeGrid(n int, rng *rand.Rand) EdgeGrid {
	if n < 1 {
		n = 1
	}
	g := EdgeGrid{N: n}
	g.H = make([][]Orient, n+1)
	for r := range g.H {
		g.H[r] = make([]Orient, n)
		for c := range g.H[r] {
			g.H[r][c] = Orient(rng.Intn(2) == 1)
		}
	}
	g.V = make([][]Orient, n)
	for r := range g.V {
		g.V[r] = make([]Orient, n+1)
		for c := range g.V[r] {
			g.V[r][c] = Orient(rng.Intn(2) == 1)
		}
	}
	return g
}

// Piece is one cell of the puzzle with its four edge shapes.
type Piece struct {
	Row, Col                 int
	Top, Right, Bottom, Left Shape
}

// ID returns the piece id for a puzzle of the given item.
func (p Piece) ID(itemID string) string {
	return fmt.Sprintf("piece-%s-%d-%d", itemID, p.Row, p.Col)
}

// Piece derives the cell at (r, c). A shared edge whose orientation is Out
// is a slot on the cell before it and a tab on the cell after it, so
// neighbours always interlock.
func (g EdgeGrid) Piece(r, c int) Piece {
	p := Piece{Row: r, Col: c}

	if r > 0 {
		p.Top = pick(g.H[r][c] == Out, Slot, Tab)
	}
	if r < g.N-1 {
		p.Bottom = pick(g.H[r+1][c] == Out, Tab, Slot)
	}
	if c > 0 {
		p.Left = pick(g.V[r][c] == Out, Slot, Tab)
	}
	if c < g.N-1 {
		p.Right = pick(g.V[r][c+1] == Out, Tab, Slot)
	}
	return p
}

// Pieces returns every piece in row-major order.
func (g EdgeGrid) Pieces() []Piece {
	out := make([]Piece, 0, g.N*g.N)
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			out = append(out, g.Piece(r, c))
		}
	}
	return out
}

func pick(cond bool, a, b Shape) Shape {
	if cond {
		return a
	}
	return b
}
