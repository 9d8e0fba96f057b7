// Command blokus-engine is a minimal host for the engine package: it
// wires up a 4-AI game and drives it to completion, printing the final
// snapshot. Grounded on the teacher's backend/main.go flat func main()
// and log.Fatal shutdown style (its HTTP/static-file-serving half is
// dropped, since network play is explicitly out of scope here).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/korjavin/blokus-engine/config"
	"github.com/korjavin/blokus-engine/engine"
	"github.com/korjavin/blokus-engine/namegen"
	"github.com/korjavin/blokus-engine/store"
)

func main() {
	spectate := flag.Bool("spectate", false, "run a full 4-AI game to completion and print the final snapshot")
	seedFlag := flag.Int64("seed", 0, "random seed; defaults to BLOKUS_SEED or the current time")
	snapshotDB := flag.String("snapshot-db", "", "optional path to a SQLite file for diagnostic snapshot capture")
	flag.Parse()

	if !*spectate {
		log.Fatal("blokus-engine: pass --spectate to run a game")
	}

	cfg := config.LoadConfig()
	seed := cfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}

	names := namegen.New(seed)
	seats := []engine.SeatConfig{
		{Name: names.Next(), Color: "red", IsAI: true, Strategy: "easy"},
		{Name: names.Next(), Color: "blue", IsAI: true, Strategy: "medium"},
		{Name: names.Next(), Color: "yellow", IsAI: true, Strategy: "hard"},
		{Name: names.Next(), Color: "green", IsAI: true, Strategy: "hard"},
	}

	game, err := engine.NewGame(engine.Config{Seats: seats, Seed: seed})
	if err != nil {
		log.Fatalf("blokus-engine: new game: %v", err)
	}
	defer game.Close()

	runID := uuid.New()
	var snaps *store.SnapshotStore
	if *snapshotDB != "" {
		snaps, err = store.Open(*snapshotDB)
		if err != nil {
			log.Fatalf("blokus-engine: open snapshot store: %v", err)
		}
		defer snaps.Close()
	}

	if _, err := game.Start(); err != nil {
		log.Fatalf("blokus-engine: start: %v", err)
	}

	var seq int64
	for {
		snap := game.Snapshot()
		if snap.Phase == "ended" {
			break
		}
		deadline := time.Now().Add(8 * time.Second)
		_, snap, err = game.RequestAIMove(deadline)
		if err != nil {
			log.Fatalf("blokus-engine: request ai move: %v", err)
		}
		seq++
		if snaps != nil {
			if err := snaps.Save(runID, seq, snap); err != nil {
				log.Printf("blokus-engine: snapshot save failed: %v", err)
			}
		}
	}

	final := game.Snapshot()
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(final); err != nil {
		log.Fatalf("blokus-engine: encode snapshot: %v", err)
	}

	fmt.Fprintf(os.Stderr, "blokus-engine: game %s ended, winners=%v\n", runID, final.WinnerIDs)
}
