// Package genetic_test — benchmarks for the engine's hot paths.
//
// Policy:
//   - Deterministic fixtures and fixed seeds; instances built outside the
//     timer so only the algorithmic core is measured.
//   - Sizes tuned to finish quickly on CI while still being representative:
//     operator micro-benchmarks at n=100, full runs at n=30.
package genetic_test

import (
	"testing"

	"github.com/Bromponie/evotour/genetic"
	"github.com/Bromponie/evotour/instance"
)

// benchInstance builds a deterministic n-point instance in a 100×100 square.
func benchInstance(b *testing.B, n int) genetic.Metric {
	b.Helper()
	m, err := instance.Random(n, 100, genetic.ExportedRNGFromSeed(seedAlt))
	if err != nil {
		b.Fatalf("benchInstance: %v", err)
	}

	return m
}

// BenchmarkTourLength measures cyclic length evaluation at n=100.
func BenchmarkTourLength_n100(b *testing.B) {
	const n = 100
	m := benchInstance(b, n)
	tour, err := genetic.RandomTour(n, genetic.ExportedRNGFromSeed(seedAlt))
	if err != nil {
		b.Fatalf("RandomTour: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = genetic.TourLength(m, tour); err != nil {
			b.Fatalf("TourLength: %v", err)
		}
	}
}

// BenchmarkOrderCrossover measures one OX recombination at n=100.
func BenchmarkOrderCrossover_n100(b *testing.B) {
	const n = 100
	rng := genetic.ExportedRNGFromSeed(seedAlt)
	p1, err := genetic.RandomTour(n, rng)
	if err != nil {
		b.Fatalf("RandomTour: %v", err)
	}
	p2, err := genetic.RandomTour(n, rng)
	if err != nil {
		b.Fatalf("RandomTour: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = genetic.OrderCrossover(p1, p2, 25, 75); err != nil {
			b.Fatalf("OrderCrossover: %v", err)
		}
	}
}

// BenchmarkNewPopulation measures initial population construction.
func BenchmarkNewPopulation_n100_P50(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := genetic.NewPopulation(100, 50, genetic.ExportedRNGFromSeed(seedAlt)); err != nil {
			b.Fatalf("NewPopulation: %v", err)
		}
	}
}

// BenchmarkEvolve measures a complete short run on a 30-point instance.
func BenchmarkEvolve_n30_G50(b *testing.B) {
	m := benchInstance(b, 30)
	opts := genetic.DefaultOptions()
	opts.Generations = 50

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := genetic.Evolve(m, opts); err != nil {
			b.Fatalf("Evolve: %v", err)
		}
	}
}
