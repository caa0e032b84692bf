package board

import "fmt"

// Cell packs a piece and its color into one byte: bit 0 holds the color and
// the remaining bits hold the piece ordinal. The zero Cell is empty.
type Cell uint8

const CellEmpty Cell = 0

func NewCell(p Piece, c Color) Cell {
	return Cell(p)<<1 | Cell(c&1)
}

func (c Cell) IsEmpty() bool {
	return c == CellEmpty
}

// Decode unpacks a non-empty Cell. It panics on an empty Cell or an unknown
// piece ordinal.
func (c Cell) Decode() (Piece, Color) {
	p := Piece(c >> 1)
	if !p.Valid() {
		panic(fmt.Sprintf("board: cannot decode cell %#08b", uint8(c)))
	}
	return p, Color(c & 1)
}

func (c Cell) Piece() Piece {
	p, _ := c.Decode()
	return p
}

func (c Cell) Color() Color {
	_, col := c.Decode()
	return col
}

func (c Cell) String() string {
	if c.IsEmpty() {
		return "."
	}
	p, col := c.Decode()
	return p.SymbolFEN(col)
}
