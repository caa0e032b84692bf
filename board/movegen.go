package board

import (
	"fmt"

	"github.com/daystram/whale/position"
)

// PseudoLegalMoves returns every destination reachable from pos by the
// movement pattern of its occupant, whatever occupies the destination. Rays
// are not stopped by blockers. It panics if pos is empty.
func (b Board) PseudoLegalMoves(pos position.Pos) []position.Pos {
	cell := b.cells[pos]
	if cell.IsEmpty() {
		panic(fmt.Sprintf("board: no piece on %s", pos))
	}
	p, c := cell.Decode()

	var mvs []position.Pos
	ds := Moveset(p, c)
	for _, d := range ds.Deltas {
		if ds.Sliding {
			mvs = append(mvs, position.OffsetRay(pos, d.X, d.Y, position.MaxRayLength)...)
			continue
		}
		if to := position.Offset(pos, d.X, d.Y); to != position.NoPos {
			mvs = append(mvs, to)
		}
	}
	return mvs
}

// LegalMoves filters PseudoLegalMoves down to destinations not held by a
// piece of the mover's color.
// TODO: drop moves that leave the mover's King in check once moves can be applied.
func (b Board) LegalMoves(pos position.Pos) []position.Pos {
	candidates := b.PseudoLegalMoves(pos)
	c := b.cells[pos].Color()
	var mvs []position.Pos
	for _, to := range candidates {
		if target := b.cells[to]; !target.IsEmpty() && target.Color() == c {
			continue
		}
		mvs = append(mvs, to)
	}
	return mvs
}

// Moves returns LegalMoves for every square held by the given color.
func (b Board) Moves(c Color) map[position.Pos][]position.Pos {
	mvs := make(map[position.Pos][]position.Pos)
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := b.cells[pos]
		if cell.IsEmpty() || cell.Color() != c {
			continue
		}
		mvs[pos] = b.LegalMoves(pos)
	}
	return mvs
}

// IsCapture reports whether moving from one square to another lands on a
// piece of the opposite color.
func (b Board) IsCapture(from, to position.Pos) bool {
	target := b.cells[to]
	return !target.IsEmpty() && target.Color() != b.cells[from].Color()
}
