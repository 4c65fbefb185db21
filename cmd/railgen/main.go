package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/VV01T3K/railgen/internal/config"
	"github.com/VV01T3K/railgen/internal/dimensions"
	"github.com/VV01T3K/railgen/internal/manifest"
	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
	"github.com/VV01T3K/railgen/internal/snapshot"
)

var factFiles = []string{"Station.csv", "Crossing.csv", "Train.csv", "Driver.csv", "Event.csv", "Ride.csv", "Ride_Section.csv", "Event_On_Route.csv", "weather.csv"}

func main() {
	log.Println("Starting railgen...")

	cfg := config.Load()
	log.Printf("Config loaded: seed=%d t1_rides=%d t2_rides=%d output=%s", cfg.Seed, cfg.T1Rides, cfg.T2Rides, cfg.OutputDir)

	r := rng.New(cfg.Seed)
	counters := snapshot.NewCounters()

	// ═══════════════════════════════════════════════════════
	// PHASE 1: Build T1 dimensions
	// ═══════════════════════════════════════════════════════
	universe, err := dimensions.Build(r)
	if err != nil {
		log.Fatalf("Failed to build T1 dimensions: %v", err)
	}
	log.Printf("T1 dimensions built: %d stations, %d crossings, %d trains, %d drivers, %d routes",
		len(universe.Stations), len(universe.Crossings), len(universe.Trains), len(universe.Drivers), len(universe.Routes))

	t1Dir := filepath.Join(cfg.OutputDir, "T1")
	t2Dir := filepath.Join(cfg.OutputDir, "T2")

	if err := snapshot.WriteDimensionCSVs(t1Dir, universe); err != nil {
		log.Fatalf("Failed to write T1 dimension CSVs: %v", err)
	}

	// ═══════════════════════════════════════════════════════
	// PHASE 2: Generate T1 facts
	// ═══════════════════════════════════════════════════════
	t1Config := model.SnapshotConfig{
		Name: "T1", Start: model.T1Start, End: model.T1End,
		RideCount: cfg.T1Rides, BaseEventRate: model.T1BaseEventRate,
	}
	if err := snapshot.GenerateFacts(r, universe, t1Config, t1Dir, false, counters); err != nil {
		log.Fatalf("Failed to generate T1 facts: %v", err)
	}
	log.Printf("T1 facts generated: %d rides", cfg.T1Rides)

	// ═══════════════════════════════════════════════════════
	// PHASE 3: Evolve dimensions for T2
	// ═══════════════════════════════════════════════════════
	dimensions.Evolve(universe, r)
	log.Printf("T2 dimensions evolved: %d crossings, %d trains, %d drivers",
		len(universe.Crossings), len(universe.Trains), len(universe.Drivers))

	if err := snapshot.WriteDimensionCSVs(t2Dir, universe); err != nil {
		log.Fatalf("Failed to write T2 dimension CSVs: %v", err)
	}

	// ═══════════════════════════════════════════════════════
	// PHASE 4: Copy T1 facts forward, generate T2 facts
	// ═══════════════════════════════════════════════════════
	if err := snapshot.CopyForward(t1Dir, t2Dir); err != nil {
		log.Fatalf("Failed to copy T1 facts forward to T2: %v", err)
	}

	t2Config := model.SnapshotConfig{
		Name: "T2", Start: model.T2Start, End: model.T2End,
		RideCount: cfg.T2Rides, BaseEventRate: model.T2BaseEventRate,
	}
	if err := snapshot.GenerateFacts(r, universe, t2Config, t2Dir, true, counters); err != nil {
		log.Fatalf("Failed to generate T2 facts: %v", err)
	}
	log.Printf("T2 facts generated: %d new rides", cfg.T2Rides)

	// ═══════════════════════════════════════════════════════
	// PHASE 5: Write and validate manifests
	// ═══════════════════════════════════════════════════════
	now := time.Now().UTC().Format(model.DateTimeLayout)
	if _, err := manifest.Write(t1Dir, "T1", now, factFiles); err != nil {
		log.Fatalf("Failed to write T1 manifest: %v", err)
	}
	if _, err := manifest.Write(t2Dir, "T2", now, factFiles); err != nil {
		log.Fatalf("Failed to write T2 manifest: %v", err)
	}
	if err := manifest.Validate(t1Dir); err != nil {
		log.Fatalf("T1 manifest validation failed: %v", err)
	}
	if err := manifest.Validate(t2Dir); err != nil {
		log.Fatalf("T2 manifest validation failed: %v", err)
	}

	log.Printf("Done. Output written to %s", cfg.OutputDir)
}
