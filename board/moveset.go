package board

import (
	"fmt"

	"github.com/daystram/whale/position"
)

// Delta is a single step in files (X) and rows (Y). Rows grow towards the
// White side of the board.
type Delta struct {
	X, Y position.Pos
}

// DirectionSet describes how a piece moves: sliding pieces repeat each delta
// along a ray, the rest apply each delta once.
type DirectionSet struct {
	Deltas  []Delta
	Sliding bool
}

var (
	deltasLateral  = []Delta{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	deltasDiagonal = []Delta{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	deltasKnight   = []Delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

	movesets [6 + 1][2]DirectionSet
)

func init() {
	initMovesets()
}

func initMovesets() {
	// Pawn sets do not tell pushes from captures, and the double push is
	// not restricted to the starting rank.
	movesets[PiecePawn][ColorWhite] = DirectionSet{Deltas: []Delta{{0, -1}, {0, -2}, {1, -1}, {-1, -1}}}
	movesets[PiecePawn][ColorBlack] = DirectionSet{Deltas: []Delta{{0, 1}, {0, 2}, {1, 1}, {-1, 1}}}

	queen := append(append([]Delta{}, deltasLateral...), deltasDiagonal...)
	for _, c := range []Color{ColorWhite, ColorBlack} {
		movesets[PieceKnight][c] = DirectionSet{Deltas: deltasKnight}
		movesets[PieceBishop][c] = DirectionSet{Deltas: deltasDiagonal, Sliding: true}
		movesets[PieceRook][c] = DirectionSet{Deltas: deltasLateral, Sliding: true}
		movesets[PieceQueen][c] = DirectionSet{Deltas: queen, Sliding: true}
		movesets[PieceKing][c] = DirectionSet{Deltas: queen}
	}
}

// Moveset returns a copy of the direction set for the given piece and color.
func Moveset(p Piece, c Color) DirectionSet {
	if !p.Valid() {
		panic(fmt.Sprintf("board: no moveset for piece %d", p))
	}
	ds := movesets[p][c&1]
	return DirectionSet{
		Deltas:  append([]Delta(nil), ds.Deltas...),
		Sliding: ds.Sliding,
	}
}
