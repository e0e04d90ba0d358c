package main

import (
	"flag"
	"log"
	"strconv"
	"time"

	"firesim/internal/core"
	_ "firesim/internal/sims/forest"
)

func main() {
	sim := flag.String("sim", "forest", "simulation to benchmark")
	width := flag.Int("w", 256, "grid width in cells")
	height := flag.Int("h", 256, "grid height in cells")
	seed := flag.Int64("seed", 1337, "world seed")
	ticks := flag.Int("ticks", 1000, "ticks to run")
	flag.Parse()

	factory, ok := core.Sims()[*sim]
	if !ok {
		log.Fatalf("unknown sim %q", *sim)
	}
	s, err := factory(map[string]string{
		"w":    strconv.Itoa(*width),
		"h":    strconv.Itoa(*height),
		"seed": strconv.FormatInt(*seed, 10),
	})
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	for i := 0; i < *ticks; i++ {
		s.Step()
	}
	elapsed := time.Since(start)

	size := s.Size()
	log.Printf("%s %dx%d: %d ticks in %s (%s/tick, %.1f Mcells/s)",
		s.Name(), size.W, size.H, *ticks, elapsed,
		elapsed/time.Duration(*ticks),
		float64(size.W*size.H)*float64(*ticks)/elapsed.Seconds()/1e6)
}
