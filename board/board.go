package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/whale/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	drawLight     = color.New(color.FgBlack, color.BgHiWhite)
	drawDark      = color.New(color.FgBlack, color.BgGreen)
	drawHighlight = color.New(color.FgBlack, color.BgYellow)
	drawLabel     = color.New(color.Bold)
)

// Board is a plain value: copying it copies every cell and all metadata.
// Cells are stored top row first, matching FEN placement order.
type Board struct {
	// grid data
	cells [TotalCells]Cell

	// meta
	turn          Color
	castleRights  CastleRights
	enPassantPos  position.Pos
	halfMoveClock uint8
	fullMoveClock uint64
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	return UnmarshalFEN(cfg.fen)
}

// Default returns the standard starting position.
func Default() Board {
	b, err := NewBoard()
	if err != nil {
		panic(fmt.Sprintf("board: default position: %v", err))
	}
	return b
}

func (b Board) Cell(pos position.Pos) Cell {
	return b.cells[pos]
}

// Cells returns a copy of the grid, top row first.
func (b Board) Cells() [TotalCells]Cell {
	return b.cells
}

func (b Board) Turn() Color {
	return b.turn
}

func (b Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassant returns the en passant target, or position.NoPos.
func (b Board) EnPassant() position.Pos {
	return b.enPassantPos
}

func (b Board) HalfMoveClock() uint8 {
	return b.halfMoveClock
}

func (b Board) FullMoveClock() uint64 {
	return b.fullMoveClock
}

// Count returns how many pieces of the given kind and color are on the board.
func (b Board) Count(p Piece, c Color) int {
	want := NewCell(p, c)
	var n int
	for _, cell := range b.cells {
		if cell == want {
			n++
		}
	}
	return n
}

func (b Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if cell := b.cells[position.NewPos(x, y)]; !cell.IsEmpty() {
				sym = cell.String()
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the board with terminal colors, marking the highlighted squares.
func (b Board) Draw(highlight ...position.Pos) string {
	marked := make(map[position.Pos]bool, len(highlight))
	for _, pos := range highlight {
		marked[pos] = true
	}

	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			pos := position.NewPos(x, y)
			sym := " "
			if cell := b.cells[pos]; !cell.IsEmpty() {
				p, c := cell.Decode()
				sym = p.SymbolUnicode(c)
			}
			paint := drawDark
			switch {
			case marked[pos]:
				paint = drawHighlight
			case x%2^y%2 == 0:
				paint = drawLight
			}
			_, _ = builder.WriteString(paint.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b Board) DebugString() string {
	return fmt.Sprintf("turn: %s\ncast: %s\nenps: %s\nhalf: %4d\nfull: %4d",
		b.turn, b.castleRights, b.enPassantPos, b.halfMoveClock, b.fullMoveClock)
}
