package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/whale/board"
	"github.com/daystram/whale/console"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun    = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw   = flag.Bool("movegen.draw", false, "draw destinations of every piece in movegen mode")
	movegenPseudo = flag.Bool("movegen.pseudo", false, "list pseudolegal instead of legal moves in movegen mode")

	benchRun      = flag.Bool("bench", false, "run move census mode")
	benchParallel = flag.Bool("bench.parallel", true, "generate squares concurrently in census mode")
	benchVerbose  = flag.Bool("bench.verbose", false, "print per square counts in census mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen, *movegenDraw, *movegenPseudo)
	}
	if *benchRun {
		return census(fen, *benchParallel, *benchVerbose)
	}

	return console.NewInterface(os.Stdin, os.Stdout).Run()
}
