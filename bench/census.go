package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/whale/board"
	"github.com/daystram/whale/position"
)

// Result totals the destinations generated for every occupied square.
type Result struct {
	Pieces      uint64
	PseudoLegal uint64
	Legal       uint64
	Captures    uint64
}

type censusConfig struct {
	parallel bool
	verbose  bool
}

type CensusOption func(*censusConfig)

func WithParallel(parallel bool) CensusOption {
	return func(cfg *censusConfig) {
		cfg.parallel = parallel
	}
}

func WithVerbose(verbose bool) CensusOption {
	return func(cfg *censusConfig) {
		cfg.verbose = verbose
	}
}

// Census generates moves for every piece of both colors on the position and
// reports the totals on out, which may be nil.
func Census(fen string, out chan<- string, opts ...CensusOption) (Result, error) {
	cfg := &censusConfig{}
	for _, f := range opts {
		f(cfg)
	}
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return Result{}, err
	}

	var run censusFunc
	if cfg.parallel {
		run = runCensusParallel
	} else {
		run = runCensus
	}

	var res Result
	start := time.Now()
	run(b, cfg.verbose, out, &res)
	elapsed := time.Since(start)

	send(out, message.NewPrinter(language.English).
		Sprintf("pieces=%d pseudo=%d legal=%d cap=%d rate=%dsq/s (%.3fs elapsed)",
			res.Pieces, res.PseudoLegal, res.Legal, res.Captures,
			rate(res.Pieces, elapsed), elapsed.Seconds()))

	return res, nil
}

type censusFunc func(b board.Board, verbose bool, out chan<- string, res *Result)

func runCensus(b board.Board, verbose bool, out chan<- string, res *Result) {
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		if b.Cell(pos).IsEmpty() {
			continue
		}
		pseudo, legal, capture := countSquare(b, pos)
		res.Pieces++
		res.PseudoLegal += pseudo
		res.Legal += legal
		res.Captures += capture
		if verbose {
			send(out, squareLine(b, pos, pseudo, legal, capture))
		}
	}
}

func runCensusParallel(b board.Board, verbose bool, out chan<- string, res *Result) {
	var wg sync.WaitGroup
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		if b.Cell(pos).IsEmpty() {
			continue
		}
		pos := pos
		bb := b
		wg.Add(1)
		go func() {
			defer wg.Done()
			pseudo, legal, capture := countSquare(bb, pos)
			atomic.AddUint64(&res.Pieces, 1)
			atomic.AddUint64(&res.PseudoLegal, pseudo)
			atomic.AddUint64(&res.Legal, legal)
			atomic.AddUint64(&res.Captures, capture)
			if verbose {
				send(out, squareLine(bb, pos, pseudo, legal, capture))
			}
		}()
	}
	wg.Wait()
}

func countSquare(b board.Board, pos position.Pos) (uint64, uint64, uint64) {
	legal := b.LegalMoves(pos)
	var capture uint64
	for _, to := range legal {
		if b.IsCapture(pos, to) {
			capture++
		}
	}
	return uint64(len(b.PseudoLegalMoves(pos))), uint64(len(legal)), capture
}

func squareLine(b board.Board, pos position.Pos, pseudo, legal, capture uint64) string {
	p, c := b.Cell(pos).Decode()
	return fmt.Sprintf("%s %s %s: pseudo=%d legal=%d cap=%d", pos, c, p, pseudo, legal, capture)
}

// rate is zero when no measurable time has passed.
func rate(count uint64, elapsed time.Duration) uint64 {
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(count) / elapsed.Seconds())
}

func send(out chan<- string, s string) {
	if out != nil {
		out <- s
	}
}
