package main

import (
	"fmt"
	"log"

	"github.com/daystram/whale/board"
	"github.com/daystram/whale/position"
)

func movegen(fen string, draw, pseudo bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.DebugString())
	dumpMoves(b, draw, pseudo)
	return nil
}

func dumpMoves(b board.Board, draw, pseudo bool) {
	gen := b.LegalMoves
	if pseudo {
		gen = b.PseudoLegalMoves
	}

	i := 0
	for from := position.Pos(0); from < board.TotalCells; from++ {
		cell := b.Cell(from)
		if cell.IsEmpty() || cell.Color() != b.Turn() {
			continue
		}
		p, c := cell.Decode()
		for _, to := range gen(from) {
			i++
			fmt.Printf("option %3d: [%s%s] %s %s %s => %s (cap=%v)\n",
				i, from, to, c, p, from, to, b.IsCapture(from, to))
		}
		if draw {
			fmt.Println(b.Draw(gen(from)...))
		}
	}
}
