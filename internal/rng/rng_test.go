package rng

import "testing"

func TestDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		av := a.Float64()
		bv := b.Float64()
		if av != bv {
			t.Fatalf("draw %d diverged: %v vs %v", i, av, bv)
		}
	}
}

func TestUniformIntInclusive(t *testing.T) {
	r := New(1)
	seenMin, seenMax := false, false
	for i := 0; i < 10000; i++ {
		v := r.UniformInt(1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("UniformInt(1,3) produced out-of-range %d", v)
		}
		if v == 1 {
			seenMin = true
		}
		if v == 3 {
			seenMax = true
		}
	}
	if !seenMin || !seenMax {
		t.Fatalf("UniformInt(1,3) never hit both bounds over 10000 draws")
	}
}

func TestWeightedChoiceZeroWeightsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on all-zero weights")
		}
	}()
	r := New(1)
	r.WeightedChoice([]WeightedPair{{Label: "a", Weight: 0}})
}

func TestWeightedChoiceRespectsOrderOnTies(t *testing.T) {
	r := New(7)
	pairs := []WeightedPair{{Label: "a", Weight: 1}, {Label: "b", Weight: 0}, {Label: "c", Weight: 0}}
	for i := 0; i < 50; i++ {
		if got := r.WeightedChoice(pairs); got != "a" {
			t.Fatalf("expected only label a reachable, got %q", got)
		}
	}
}

func TestSampleDistinctAndBounded(t *testing.T) {
	r := New(3)
	population := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := r.Sample(population, 4)
	if len(got) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(got))
	}
	seen := make(map[int]bool)
	for _, v := range got {
		if seen[v] {
			t.Fatalf("Sample returned duplicate %d", v)
		}
		seen[v] = true
	}
}

func TestGaussStaysFinite(t *testing.T) {
	r := New(9)
	for i := 0; i < 1000; i++ {
		v := r.Gauss(0, 1.5)
		if v != v { // NaN check
			t.Fatal("Gauss produced NaN")
		}
	}
}

func TestGammaPositive(t *testing.T) {
	r := New(11)
	for i := 0; i < 1000; i++ {
		if v := r.Gamma(2, 2); v <= 0 {
			t.Fatalf("Gamma(2,2) produced non-positive value %v", v)
		}
	}
}
