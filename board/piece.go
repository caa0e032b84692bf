package board

// Piece ordinals are part of the Cell encoding and must stay in [1, 6].
type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceBishop
	PieceRook
	PieceKnight
	PieceQueen
	PieceKing
)

// Pieces lists every known piece in ordinal order.
var Pieces = []Piece{PiecePawn, PieceBishop, PieceRook, PieceKnight, PieceQueen, PieceKing}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Valid() bool {
	return PiecePawn <= p && p <= PieceKing
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceRook:
		return "Rook"
	case PieceKnight:
		return "Knight"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) SymbolFEN(c Color) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if c == ColorBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(c Color) string {
	switch c {
	case ColorWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case ColorBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// PieceFromSymbol parses a FEN piece letter.
func PieceFromSymbol(sym rune) (Piece, Color, bool) {
	c := ColorWhite
	if sym >= 'a' && sym <= 'z' {
		c, sym = ColorBlack, sym&^0x20
	}
	switch sym {
	case 'P':
		return PiecePawn, c, true
	case 'B':
		return PieceBishop, c, true
	case 'N':
		return PieceKnight, c, true
	case 'R':
		return PieceRook, c, true
	case 'Q':
		return PieceQueen, c, true
	case 'K':
		return PieceKing, c, true
	default:
		return PieceUnknown, ColorWhite, false
	}
}
