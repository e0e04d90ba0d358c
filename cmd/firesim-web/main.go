package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"firesim/internal/sims/forest"
	"firesim/internal/web"
)

func main() {
	addr := flag.String("addr", ":8731", "listen address")
	width := flag.Int("w", 256, "grid width in cells")
	height := flag.Int("h", 256, "grid height in cells")
	seed := flag.Int64("seed", 1337, "world seed")
	tps := flag.Int("tps", 60, "ticks per second")
	frameMs := flag.Int("frame-ms", 100, "frame broadcast period in milliseconds")
	flag.Parse()

	cfg := forest.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	cfg.Params.TickRate = *tps

	world, err := forest.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	sched := forest.NewScheduler(world)
	if err := sched.Start(); err != nil {
		log.Fatal(err)
	}

	srv := web.NewServer(sched, time.Duration(*frameMs)*time.Millisecond)
	log.Printf("firesim web on %s (%dx%d grid, %d tps)", *addr, *width, *height, *tps)
	if err := http.ListenAndServe(*addr, srv.Routes()); err != nil {
		log.Fatal(err)
	}
}
