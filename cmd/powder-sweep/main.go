package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"

	"powder-ca/internal/sims/powder"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

type scenario struct {
	name  string
	setup func(w *powder.World)
}

type job struct {
	scenario scenario
	seed     int64
}

type runRecord struct {
	Scenario string `csv:"scenario"`
	Seed     int64  `csv:"seed"`
	Steps    int    `csv:"steps"`
	NonEmpty int    `csv:"non_empty"`
	Powders  int    `csv:"powders"`
	Liquids  int    `csv:"liquids"`
	Gases    int    `csv:"gases"`
	Actors   int    `csv:"actors"`
	Fire     int    `csv:"fire"`
	Ash      int    `csv:"ash"`
	Stone    int    `csv:"stone"`
	GridHash uint64 `csv:"grid_hash"`
}

func scenarios() []scenario {
	return []scenario{
		{name: "rainfall", setup: func(w *powder.World) {
			floorY := w.Height() - 4
			for x := 0; x < w.Width(); x++ {
				w.PlaceBrush(x, floorY, 0, powder.Sand)
			}
			for x := 8; x < w.Width()-8; x += 6 {
				w.PlaceBrush(x, 4, 2, powder.Water)
			}
		}},
		{name: "wildfire", setup: func(w *powder.World) {
			baseY := w.Height() - 2
			for x := 10; x < w.Width()-10; x++ {
				w.PlaceBrush(x, baseY, 0, powder.Wood)
				w.PlaceBrush(x, baseY-1, 0, powder.Plant)
			}
			w.PlaceBrush(w.Width()/2, baseY-2, 1, powder.Fire)
		}},
		{name: "volcano", setup: func(w *powder.World) {
			baseY := w.Height() - 3
			for x := 0; x < w.Width(); x++ {
				w.PlaceBrush(x, baseY, 0, powder.Stone)
			}
			w.PlaceBrush(w.Width()/3, 6, 4, powder.Lava)
			w.PlaceBrush(2*w.Width()/3, 6, 4, powder.Water)
		}},
		{name: "acid-bath", setup: func(w *powder.World) {
			midY := w.Height() / 2
			for x := 20; x < w.Width()-20; x++ {
				w.PlaceBrush(x, midY, 0, powder.Wood)
			}
			for x := 24; x < w.Width()-24; x += 8 {
				w.PlaceBrush(x, midY-10, 2, powder.Acid)
			}
		}},
		{name: "outbreak", setup: func(w *powder.World) {
			floorY := w.Height() - 2
			for x := 0; x < w.Width(); x++ {
				w.PlaceBrush(x, floorY, 0, powder.Wall)
			}
			for x := 10; x < w.Width()-10; x += 12 {
				w.PlaceBrush(x, floorY-1, 0, powder.Human)
			}
			w.PlaceBrush(w.Width()/2, floorY-1, 0, powder.Zombie)
		}},
		{name: "thunderstorm", setup: func(w *powder.World) {
			poolY := w.Height() - 5
			for x := 0; x < w.Width(); x++ {
				w.PlaceBrush(x, poolY, 1, powder.Water)
			}
			w.PlaceBrush(w.Width()/4, poolY-1, 0, powder.Metal)
			for x := 16; x < w.Width()-16; x += 20 {
				w.PlaceBrush(x, 0, 0, powder.Lightning)
			}
		}},
	}
}

func runJob(j job, width, height, steps int) runRecord {
	cfg := powder.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = j.seed

	world := powder.NewWithConfig(cfg)
	world.Reset(j.seed)
	j.scenario.setup(world)
	for i := 0; i < steps; i++ {
		world.Step()
	}

	c := world.Census()
	return runRecord{
		Scenario: j.scenario.name,
		Seed:     j.seed,
		Steps:    steps,
		NonEmpty: c.NonEmpty(),
		Powders:  c.Powders(),
		Liquids:  c.Liquids(),
		Gases:    c.Gases(),
		Actors:   c.Actors(),
		Fire:     c.Count(powder.Fire),
		Ash:      c.Count(powder.Ash),
		Stone:    c.Count(powder.Stone),
		GridHash: gridHash(world),
	}
}

func gridHash(w *powder.World) uint64 {
	cells := make([]powder.Cell, w.Width()*w.Height())
	w.Export(cells)
	h := fnv.New64a()
	buf := make([]byte, 5)
	for _, c := range cells {
		buf[0] = byte(c.Mat)
		buf[1] = byte(c.Life)
		buf[2] = byte(c.Life >> 8)
		buf[3] = byte(c.Life >> 16)
		buf[4] = byte(c.Life >> 24)
		h.Write(buf)
	}
	return h.Sum64()
}

func main() {
	steps := flag.Int("steps", 500, "ticks to simulate per run")
	width := flag.Int("width", 128, "grid width in cells")
	height := flag.Int("height", 96, "grid height in cells")
	seeds := flag.Int("seeds", 8, "number of seeds per scenario")
	baseSeed := flag.Int64("base-seed", 1337, "first seed of the sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	only := flag.String("scenario", "", "run only the named scenario")
	out := flag.String("out", "sweep.csv", "CSV output path, empty to skip")
	flag.Parse()

	var sets []scenario
	for _, s := range scenarios() {
		if *only == "" || s.name == *only {
			sets = append(sets, s)
		}
	}
	if len(sets) == 0 {
		log.Fatalf("unknown scenario %q", *only)
	}

	var jobs []job
	for _, s := range sets {
		for i := 0; i < *seeds; i++ {
			jobs = append(jobs, job{scenario: s, seed: *baseSeed + int64(i)})
		}
	}

	fmt.Printf("Sweeping %d runs (%d scenarios, %d seeds, %d workers, %d steps)\n",
		len(jobs), len(sets), *seeds, *workers, *steps)

	jobChan := make(chan job)
	resultChan := make(chan runRecord)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				resultChan <- runJob(j, *width, *height, *steps)
			}
		}()
	}
	go func() {
		for _, j := range jobs {
			jobChan <- j
		}
		close(jobChan)
		wg.Wait()
		close(resultChan)
	}()

	var results []runRecord
	for r := range resultChan {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Scenario != results[j].Scenario {
			return results[i].Scenario < results[j].Scenario
		}
		return results[i].Seed < results[j].Seed
	})

	if *out != "" {
		if err := writeCSV(*out, results); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		fmt.Printf("Wrote %d records to %s\n", len(results), *out)
	}

	printSummary(results)
}

func writeCSV(path string, results []runRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := gocsv.Marshal(results, f); err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	return nil
}

func printSummary(results []runRecord) {
	grouped := map[string][]runRecord{}
	var names []string
	for _, r := range results {
		if _, ok := grouped[r.Scenario]; !ok {
			names = append(names, r.Scenario)
		}
		grouped[r.Scenario] = append(grouped[r.Scenario], r)
	}
	sort.Strings(names)

	fmt.Println()
	fmt.Printf("%-14s %10s %10s %10s %10s\n", "scenario", "cells mean", "cells sd", "gases mean", "actors mean")
	for _, name := range names {
		runs := grouped[name]
		cells := make([]float64, len(runs))
		gases := make([]float64, len(runs))
		actors := make([]float64, len(runs))
		for i, r := range runs {
			cells[i] = float64(r.NonEmpty)
			gases[i] = float64(r.Gases)
			actors[i] = float64(r.Actors)
		}
		fmt.Printf("%-14s %10.1f %10.1f %10.1f %10.1f\n",
			name, stat.Mean(cells, nil), stat.StdDev(cells, nil), stat.Mean(gases, nil), stat.Mean(actors, nil))
	}
}
