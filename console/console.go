package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daystram/whale/bench"
	"github.com/daystram/whale/board"
	"github.com/daystram/whale/position"
)

var (
	Name   = "Whale"
	Author = "Whale authors"

	defaultOptions = options{
		highlight:      true,
		parallelCensus: true,
	}
)

type options struct {
	highlight      bool
	parallelCensus bool
}

// Interface reads line commands and answers on the output writer.
type Interface struct {
	board   board.Board
	options options

	in  io.Reader
	out io.Writer
}

func NewInterface(in io.Reader, out io.Writer) *Interface {
	return &Interface{
		options: defaultOptions,
		in:      in,
		out:     out,
	}
}

func (i *Interface) Run() error {
	ctx := context.Background()
	i.reset(ctx)

	reader := bufio.NewReader(i.in)
	for {
		cmd, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		switch args := strings.Fields(cmd); {
		case len(args) == 0:
		case args[0] == "quit":
			return nil
		default:
			i.command(ctx, args)
		}

		if err != nil {
			return nil
		}
	}
}

func (i *Interface) command(ctx context.Context, args []string) {
	switch args[0] {
	case "id":
		i.commandID(ctx)
	case "new":
		i.reset(ctx)
	case "isready":
		i.println("readyok")
	case "setoption":
		i.commandSetOption(ctx, args[1:])
	case "position":
		i.commandPosition(ctx, args[1:])
	case "d":
		i.commandDraw(ctx)
	case "fen":
		i.println(i.board.FEN())
	case "moves":
		i.commandMoves(ctx, args[1:], board.Board.LegalMoves)
	case "pseudo":
		i.commandMoves(ctx, args[1:], board.Board.PseudoLegalMoves)
	case "all":
		i.commandAll(ctx)
	case "census":
		i.commandCensus(ctx)
	default:
		i.println(fmt.Sprintf("error: unknown command '%s'", args[0]))
	}
}

func (i *Interface) commandID(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", Name))
	i.println(fmt.Sprintf("id author %s", Author))
	i.println(fmt.Sprintf("option Highlight type check default %v", defaultOptions.highlight))
	i.println(fmt.Sprintf("option ParallelCensus type check default %v", defaultOptions.parallelCensus))
	i.println("idok")
}

func (i *Interface) commandSetOption(_ context.Context, args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		i.println("error: usage: setoption name <name> value <value>")
		return
	}
	value, err := strconv.ParseBool(args[3])
	if err != nil {
		i.println(fmt.Sprintf("error: invalid value '%s'", args[3]))
		return
	}
	switch name := strings.ToLower(args[1]); name {
	case "highlight":
		i.options.highlight = value
	case "parallelcensus":
		i.options.parallelCensus = value
	default:
		i.println(fmt.Sprintf("error: unknown option '%s'", args[1]))
	}
}

func (i *Interface) commandPosition(_ context.Context, args []string) {
	if len(args) == 0 {
		i.println("error: usage: position startpos|fen <fen>")
		return
	}

	var fen string
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		i.println(fmt.Sprintf("error: unknown position '%s'", args[0]))
		return
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		i.println(fmt.Sprintf("error: %v", err))
		return
	}
	i.board = b
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.board.Draw())
	i.println(i.board.FEN())
}

func (i *Interface) commandMoves(_ context.Context, args []string, gen func(board.Board, position.Pos) []position.Pos) {
	if len(args) != 1 {
		i.println("error: usage: moves|pseudo <square>")
		return
	}
	pos, err := position.NewPosFromNotation(args[0])
	if err != nil {
		i.println(fmt.Sprintf("error: '%s': %v", args[0], err))
		return
	}
	if i.board.Cell(pos).IsEmpty() {
		i.println(fmt.Sprintf("error: no piece on %s", pos))
		return
	}

	mvs := gen(i.board, pos)
	i.println(formatMoves(pos, mvs))
	if i.options.highlight {
		i.println(i.board.Draw(mvs...))
	}
}

func (i *Interface) commandAll(_ context.Context) {
	all := i.board.Moves(i.board.Turn())
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		if mvs, ok := all[pos]; ok {
			i.println(formatMoves(pos, mvs))
		}
	}
}

func (i *Interface) commandCensus(_ context.Context) {
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	_, err := bench.Census(i.board.FEN(), out, bench.WithParallel(i.options.parallelCensus), bench.WithVerbose(true))
	close(out)
	<-done
	if err != nil {
		i.println(fmt.Sprintf("error: %v", err))
	}
}

func (i *Interface) reset(ctx context.Context) {
	i.commandPosition(ctx, []string{"startpos"})
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}

func formatMoves(from position.Pos, mvs []position.Pos) string {
	dests := make([]string, 0, len(mvs))
	for _, to := range mvs {
		dests = append(dests, to.Notation())
	}
	return fmt.Sprintf("%s: %s", from, strings.Join(dests, " "))
}
