package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"

	"life-sim/internal/sim"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	generations := flag.Int("generations", 1000, "generations to compute")
	load := flag.String("load", "", "pattern to start from (.gol, .rle or image); random when empty")
	save := flag.String("save", "", "write the final grid here (.rle or .gol)")
	quiet := flag.Bool("quiet", false, "hide the progress bar")
	var overrides kvList
	flag.Var(&overrides, "set", "controller setting in key=value form, e.g. cols=200 (repeatable)")
	flag.Parse()

	settings := make(map[string]string, len(overrides))
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("bad -set %q: want key=value", kv)
		}
		settings[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	cfg := sim.FromMap(settings)
	cfg.Paused = true

	ctrl := sim.New(cfg)
	defer ctrl.Close()

	if *load != "" {
		if err := ctrl.LoadFile(*load); err != nil {
			log.Fatalf("load %s: %v", *load, err)
		}
	} else {
		ctrl.Chaos()
	}

	start := ctrl.Counters()
	size := ctrl.Size()
	fmt.Printf("grid %dx%d, %d alive\n", size.W, size.H, start.Alive)

	var bar *pb.ProgressBar
	if !*quiet {
		bar = pb.StartNew(*generations)
	}
	began := time.Now()
	for i := 0; i < *generations; i++ {
		ctrl.Tick()
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	elapsed := time.Since(began)

	end := ctrl.Counters()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(*generations) / elapsed.Seconds()
	}
	fmt.Printf("generation %d, %d alive, %.0f generations/s\n", end.Generation, end.Alive, rate)

	if *save != "" {
		if err := ctrl.SaveFile(*save); err != nil {
			log.Fatalf("save %s: %v", *save, err)
		}
		fmt.Println("saved", *save)
	}
}
