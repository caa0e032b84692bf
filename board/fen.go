package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/whale/position"
)

const fenSegments = 6

var (
	ErrInvalidFEN = errors.New("invalid fen")

	ErrFENFieldCount    = fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	ErrFENRankCount     = fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	ErrFENRankWidth     = fmt.Errorf("%w: rank does not span %d files", ErrInvalidFEN, Width)
	ErrFENPieceSymbol   = fmt.Errorf("%w: unknown symbol", ErrInvalidFEN)
	ErrFENTurn          = fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	ErrFENCastling      = fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	ErrFENEnPassant     = fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
	ErrFENHalfMoveClock = fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	ErrFENFullMoveClock = fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
)

// UnmarshalFEN builds a Board from a Forsyth-Edwards Notation string.
func UnmarshalFEN(fen string) (Board, error) {
	segments := strings.Fields(fen)
	if len(segments) != fenSegments {
		return Board{}, fmt.Errorf("%w: got %d want %d", ErrFENFieldCount, len(segments), fenSegments)
	}

	b := Board{enPassantPos: position.NoPos}
	if err := unmarshalPlacement(segments[0], &b.cells); err != nil {
		return Board{}, err
	}

	switch segments[1] {
	case "w":
		b.turn = ColorWhite
	case "b":
		b.turn = ColorBlack
	default:
		return Board{}, fmt.Errorf("%w: '%s'", ErrFENTurn, segments[1])
	}

	if len(segments[2]) > len(CastleDirections) {
		return Board{}, fmt.Errorf("%w: '%s'", ErrFENCastling, segments[2])
	}
	if segments[2] != "-" {
		for _, e := range segments[2] {
			d, ok := castleDirectionFromSymbol(e)
			if !ok {
				return Board{}, fmt.Errorf("%w: unknown symbol '%c'", ErrFENCastling, e)
			}
			if b.castleRights.IsAllowed(d) {
				return Board{}, fmt.Errorf("%w: repeated symbol '%c'", ErrFENCastling, e)
			}
			b.castleRights.Set(d, true)
		}
	}

	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return Board{}, fmt.Errorf("%w: '%s': %v", ErrFENEnPassant, segments[3], err)
		}
		b.enPassantPos = pos
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 8)
	if err != nil {
		return Board{}, fmt.Errorf("%w: '%s'", ErrFENHalfMoveClock, segments[4])
	}
	b.halfMoveClock = uint8(halfMoveClock)

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 64)
	if err != nil || fullMoveClock == 0 {
		return Board{}, fmt.Errorf("%w: '%s'", ErrFENFullMoveClock, segments[5])
	}
	b.fullMoveClock = fullMoveClock

	return b, nil
}

func unmarshalPlacement(placement string, cells *[TotalCells]Cell) error {
	rows := strings.Split(placement, "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: got %d want %d", ErrFENRankCount, len(rows), Height)
	}
	for y, row := range rows {
		x := position.Pos(0)
		for _, sym := range row {
			if sym >= '1' && sym <= '8' {
				x += position.Pos(sym - '0')
				if x > Width {
					return fmt.Errorf("%w: rank %d '%s' overflows", ErrFENRankWidth, Height-position.Pos(y), row)
				}
				continue
			}
			p, c, ok := PieceFromSymbol(sym)
			if !ok {
				return fmt.Errorf("%w: '%c' in rank %d", ErrFENPieceSymbol, sym, Height-position.Pos(y))
			}
			if x >= Width {
				return fmt.Errorf("%w: rank %d '%s' overflows", ErrFENRankWidth, Height-position.Pos(y), row)
			}
			cells[position.NewPos(x, position.Pos(y))] = NewCell(p, c)
			x++
		}
		if x != Width {
			return fmt.Errorf("%w: rank %d '%s' spans %d", ErrFENRankWidth, Height-position.Pos(y), row, x)
		}
	}
	return nil
}

// MarshalFEN is the inverse of UnmarshalFEN.
func MarshalFEN(b Board) string {
	return b.FEN()
}

func (b Board) FEN() string {
	builder := strings.Builder{}
	var skip uint8
	for y := position.Pos(0); y < Height; y++ {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && b.cells[position.NewPos(x, y)].IsEmpty(); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				_, _ = builder.WriteString(b.cells[position.NewPos(x, y)].String())
			}
		}
		if y < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == ColorWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(b.castleRights.String())
	_, _ = builder.WriteRune(' ')

	if b.enPassantPos == position.NoPos {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(b.enPassantPos.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String()
}
