package board

import (
	"errors"
	"testing"

	"github.com/daystram/whale/position"
)

func TestFEN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen     string
		wantErr error
	}{
		{fen: DefaultStartingPositionFEN, wantErr: nil},
		{fen: "r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10", wantErr: nil},
		{fen: "r4rk1/1bpp1ppp/p2q4/2bPp3/8/1BPP1Q2/1P3PPP/R1B2RK1 b - - 2 15", wantErr: nil},
		{fen: "8/5kBp/3p3P/5pb1/8/5P2/4R2K/3r4 b - - 8 52", wantErr: nil},
		{fen: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", wantErr: nil},
		{fen: "r4rk1/5ppp/p2p4/1bb1p3/BP6/2PP4/5PPP/R1B1R1K1 b - b3 0 20", wantErr: nil},
		{fen: "8/7R/5B2/5P1k/p6p/P6P/6P1/7K b - - 2 58", wantErr: nil},
		{fen: "r7/p4k2/4p2p/2B4N/4Pn2/2P2P2/PP2r1qP/R5K1 w - - 6 39", wantErr: nil},
		{fen: "5k2/R7/4NN1p/p7/5P2/8/P1P3PP/3B2K1 b - - 7 30", wantErr: nil},
		{fen: "3r1b1r/5pp1/7p/3P3k/3B2Q1/7N/P3BPK1/1R6 b - - 0 34", wantErr: nil},
		{fen: "8/5k2/4N3/8/8/3K4/8/8 w - - 0 71", wantErr: nil},
		{fen: "1r3b1r/6pp/8/1p1pN3/3P1PQk/2P5/P7/qN3RK1 b - - 5 26", wantErr: nil},
		{fen: "R4k1r/1pNQ3p/4ppp1/8/3Pb1q1/5N2/5PPP/4KB1R b K - 5 22", wantErr: nil},
		{fen: "3k2Q1/7R/6K1/5P2/1pP5/1P6/8/8 b - - 36 77", wantErr: nil},
		{fen: "1n2k2r/4pp1p/6p1/8/3b3P/8/5q2/r1K5 w k - 2 31", wantErr: nil},
		{fen: "1rb1B2Q/pp3k2/3Q4/3p3p/1P6/8/P1P2PPP/R1B1K2R b KQ - 1 22", wantErr: nil},
		{fen: "8/8/R7/Qk6/3K4/5p2/5p2/8 b - - 10 81", wantErr: nil},
		{fen: "8/8/8/8/8/8/8/8 w - - 255 1", wantErr: nil},
		{fen: "", wantErr: ErrFENFieldCount},
		{fen: "invalid fen", wantErr: ErrFENFieldCount},
		{fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", wantErr: ErrFENFieldCount},
		{fen: "7k/8/8/8/8/8/8/7K w - - 1 1 extrasegment", wantErr: ErrFENFieldCount},
		{fen: "7k/8/8/8/8/8/7K w - - 1 1", wantErr: ErrFENRankCount},
		{fen: "7k/8/8/8/8/8/8/8/7K w - - 1 1", wantErr: ErrFENRankCount},
		{fen: "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", wantErr: ErrFENRankWidth},
		{fen: "rnbqkbnr1/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", wantErr: ErrFENRankWidth},
		{fen: "7k/8/8/8/8/1/8/7K w - - 1 1", wantErr: ErrFENRankWidth},
		{fen: "7k/8/8/8/8//8/7K w - - 1 1", wantErr: ErrFENRankWidth},
		{fen: "7k/8/8/8/9/8/8/7K w - - 1 1", wantErr: ErrFENPieceSymbol},
		{fen: "8/3Rn3/badboard/p5kp/2B1P3/2P3bP/PP3R2/7K b - - 1 38", wantErr: ErrFENPieceSymbol},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K badside - - 1 38", wantErr: ErrFENTurn},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b badcastlingrights - 1 38", wantErr: ErrFENCastling},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b KX - 1 38", wantErr: ErrFENCastling},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b -K - 1 38", wantErr: ErrFENCastling},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b KK - 1 38", wantErr: ErrFENCastling},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b KqKq - 1 38", wantErr: ErrFENCastling},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b -- - 1 38", wantErr: ErrFENCastling},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b - e9 1 38", wantErr: ErrFENEnPassant},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b - - -1 38", wantErr: ErrFENHalfMoveClock},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b - - 256 38", wantErr: ErrFENHalfMoveClock},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b - - 1 x", wantErr: ErrFENFullMoveClock},
		{fen: "8/8/8/8/8/8/8/8 w - - 1 0", wantErr: ErrFENFullMoveClock},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.fen, func(t *testing.T) {
			t.Parallel()

			b, err := NewBoard(WithFEN(tt.fen))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrInvalidFEN) {
					t.Errorf("error does not wrap ErrInvalidFEN: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			if gotFEN := MarshalFEN(b); gotFEN != tt.fen {
				t.Errorf("unexpected FEN: got=%s want=%s", gotFEN, tt.fen)
			}
		})
	}
}

func TestFENErrorsAreDistinct(t *testing.T) {
	t.Parallel()
	_, errFields := UnmarshalFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0")
	_, errWidth := UnmarshalFEN("rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if !errors.Is(errFields, ErrFENFieldCount) || errors.Is(errFields, ErrFENRankWidth) {
		t.Errorf("unexpected error for 5 fields: got=%v", errFields)
	}
	if !errors.Is(errWidth, ErrFENRankWidth) || errors.Is(errWidth, ErrFENFieldCount) {
		t.Errorf("unexpected error for short rank: got=%v", errWidth)
	}
}

func TestFENCompressesSkips(t *testing.T) {
	t.Parallel()
	for _, fen := range []string{
		"7k/8/8/8/44/8/8/7K w - - 1 1",
		"7k/8/8/8/62/8/8/7K w - - 1 1",
		"7k/8/8/8/11111111/8/8/7K w - - 1 1",
	} {
		b, err := UnmarshalFEN(fen)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if got, want := b.FEN(), "7k/8/8/8/8/8/8/7K w - - 1 1"; got != want {
			t.Errorf("unexpected FEN: got=%s want=%s", got, want)
		}
	}
}

func TestFENWhitespace(t *testing.T) {
	t.Parallel()
	b, err := UnmarshalFEN("  rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR\tw KQkq  -  0 1\n")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := b.FEN(); got != DefaultStartingPositionFEN {
		t.Errorf("unexpected FEN: got=%s want=%s", got, DefaultStartingPositionFEN)
	}
}

func TestFENFields(t *testing.T) {
	t.Parallel()
	b, err := UnmarshalFEN("r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq e3 2 10")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if b.Turn() != ColorBlack {
		t.Errorf("unexpected turn: got=%s want=%s", b.Turn(), ColorBlack)
	}
	for _, tt := range []struct {
		d    CastleDirection
		want bool
	}{
		{d: CastleDirectionWhiteRight, want: false},
		{d: CastleDirectionWhiteLeft, want: false},
		{d: CastleDirectionBlackRight, want: true},
		{d: CastleDirectionBlackLeft, want: true},
	} {
		if got := b.CastleRights().IsAllowed(tt.d); got != tt.want {
			t.Errorf("unexpected castle right %s: got=%v want=%v", tt.d, got, tt.want)
		}
	}
	if b.EnPassant() != position.E3 {
		t.Errorf("unexpected en passant: got=%s want=%s", b.EnPassant(), position.E3)
	}
	if b.HalfMoveClock() != 2 {
		t.Errorf("unexpected half move clock: got=%d want=%d", b.HalfMoveClock(), 2)
	}
	if b.FullMoveClock() != 10 {
		t.Errorf("unexpected full move clock: got=%d want=%d", b.FullMoveClock(), 10)
	}
	if got, want := b.Cell(position.A8), NewCell(PieceRook, ColorBlack); got != want {
		t.Errorf("unexpected cell a8: got=%s want=%s", got, want)
	}
	if got, want := b.Cell(position.G1), NewCell(PieceKing, ColorWhite); got != want {
		t.Errorf("unexpected cell g1: got=%s want=%s", got, want)
	}
}
