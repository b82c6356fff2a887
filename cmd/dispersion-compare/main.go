// Command dispersion-compare drives N independent engine instances to
// completion concurrently and prints a comparative summary, grounded
// on the teacher's fastview.client.Sync (errgroup.WithContext
// supervising a small fixed set of goroutines) and the tabular
// example's worker-fan-in idiom (channerics.Merge over one channel per
// goroutine).
package main

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/google/uuid"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"

	"dispersion3d/engine"
)

// Snapshot is one completed (or watchdog-truncated) instance's result.
type Snapshot struct {
	ID      uuid.UUID
	Metrics engine.Metrics
	Ticks   int
}

func runInstance(ctx context.Context, mapIndex, maxTicks int) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)

		eng := engine.NewEngine(1, 1, 1)
		eng.SetCatalog(engine.DefaultCatalog)
		eng.LoadMap(mapIndex)

		ticks := 0
		for !eng.IsComplete() {
			select {
			case <-ctx.Done():
				out <- Snapshot{ID: uuid.New(), Metrics: eng.MetricsSnapshot(), Ticks: ticks}
				return
			default:
			}
			if maxTicks > 0 && ticks >= maxTicks {
				break
			}
			eng.Tick()
			ticks++
		}

		out <- Snapshot{ID: uuid.New(), Metrics: eng.MetricsSnapshot(), Ticks: ticks}
	}()
	return out
}

func compare(ctx context.Context, n, mapIndex, maxTicks int) ([]Snapshot, error) {
	if n <= 0 {
		return nil, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	workers := make([]<-chan Snapshot, 0, n)
	for i := 0; i < n; i++ {
		workers = append(workers, runInstance(groupCtx, mapIndex, maxTicks))
	}

	merged := channerics.Merge(groupCtx.Done(), workers...)

	var results []Snapshot
	group.Go(func() error {
		for snap := range merged {
			results = append(results, snap)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func printTable(results []Snapshot) {
	if len(results) == 0 {
		fmt.Println("no instances run")
		return
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Metrics.Makespan < results[j].Metrics.Makespan
	})

	sumTotal, sumMakespan := 0, 0
	fmt.Printf("%-36s  %8s  %8s  %8s  %8s\n", "instance", "makespan", "t_total", "t_max", "ticks")
	for _, r := range results {
		fmt.Printf("%-36s  %8d  %8d  %8d  %8d\n", r.ID, r.Metrics.Makespan, r.Metrics.TTotal, r.Metrics.TMax, r.Ticks)
		sumTotal += r.Metrics.TTotal
		sumMakespan += r.Metrics.Makespan
	}

	fmt.Println("---")
	fmt.Printf("best makespan:  %d (%s)\n", results[0].Metrics.Makespan, results[0].ID)
	fmt.Printf("worst makespan: %d (%s)\n", results[len(results)-1].Metrics.Makespan, results[len(results)-1].ID)
	fmt.Printf("mean makespan:  %.2f\n", float64(sumMakespan)/float64(len(results)))
	fmt.Printf("mean t_total:   %.2f\n", float64(sumTotal)/float64(len(results)))
}

func main() {
	n := flag.Int("n", 15, "number of independent engine instances to run concurrently")
	mapIndex := flag.Int("map", 0, "catalog index to load into every instance")
	maxTicks := flag.Int("max-ticks", 2000, "per-instance tick watchdog (0 = unbounded)")
	flag.Parse()

	results, err := compare(context.Background(), *n, *mapIndex, *maxTicks)
	if err != nil {
		fmt.Println("Error:", err)
	}
	printTable(results)
}
