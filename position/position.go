package position

import (
	"errors"

	"golang.org/x/exp/constraints"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of squares on the board.
	TotalCells = MaxComponentScalar * MaxComponentScalar

	// NoPos is returned wherever a square cannot be produced.
	NoPos Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos addresses a square rank-major, with row 0 being the top row of a FEN
// placement (rank 8) and column 0 being file a.
type Pos int8

// NewPos builds a Pos from its file and row components, returning NoPos when
// either component is off the board.
func NewPos(x, y Pos) Pos {
	if !within(x, 0, MaxComponentScalar-1) || !within(y, 0, MaxComponentScalar-1) {
		return NoPos
	}
	return y*MaxComponentScalar + x
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return NoPos, err
	}
	return NewPos(x, y), nil
}

func (p Pos) String() string {
	if !p.Valid() {
		return "-"
	}
	return p.Notation()
}

func (p Pos) Valid() bool {
	return within(p, 0, TotalCells-1)
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return p.X().NotationComponentX() + p.Y().NotationComponentY()
}

func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if x < 'a' || x > 'h' {
		return 0, ErrInvalidNotation
	}
	return Pos(x - 'a'), nil
}

// notationToY converts a rank digit into a row counted from the top.
func notationToY(y byte) (Pos, error) {
	if y < '1' || y > '8' {
		return 0, ErrInvalidNotation
	}
	return MaxComponentScalar - 1 - Pos(y-'1'), nil
}

func (p Pos) NotationComponentX() string {
	if !within(p, 0, MaxComponentScalar-1) {
		return ""
	}
	return string(rune('a' + p))
}

// NotationComponentY returns the rank digit of a row counted from the top.
func (p Pos) NotationComponentY() string {
	if !within(p, 0, MaxComponentScalar-1) {
		return ""
	}
	return string(rune('8' - p))
}

func within[T constraints.Integer](v, lo, hi T) bool {
	return lo <= v && v <= hi
}
