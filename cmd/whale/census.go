package main

import (
	"log"

	"github.com/daystram/whale/bench"
)

func census(fen string, parallel, verbose bool) error {
	log.Println("============ census")
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()

	_, err := bench.Census(fen, out, bench.WithParallel(parallel), bench.WithVerbose(verbose))
	close(out)
	<-done
	return err
}
