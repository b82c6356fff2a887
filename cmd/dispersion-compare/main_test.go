package main

import (
	"context"
	"testing"
)

// TestCompare_ZeroInstancesIsEmpty covers expansion E2: N=0 returns no
// results and no error.
func TestCompare_ZeroInstancesIsEmpty(t *testing.T) {
	results, err := compare(context.Background(), 0, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("len(results) = %d, want 0", len(results))
	}
}

// TestCompare_RunsEveryInstanceToCompletion checks that every requested
// instance reports a terminal snapshot on the smallest map, where
// completion is reached in a handful of ticks.
func TestCompare_RunsEveryInstanceToCompletion(t *testing.T) {
	const n = 5
	results, err := compare(context.Background(), n, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != n {
		t.Fatalf("len(results) = %d, want %d", len(results), n)
	}
	for _, r := range results {
		if r.Ticks == 0 {
			t.Errorf("instance %s reported 0 ticks", r.ID)
		}
		if !r.Metrics.Complete {
			t.Errorf("instance %s did not complete within %d ticks", r.ID, r.Ticks)
		}
	}
}
