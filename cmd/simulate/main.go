// Command simulate replays a scripted command list against a world
// file and prints the resulting location-id log. With -expect it
// asserts the exact id sequence and exits non-zero on mismatch, which
// is how automated walkthrough checks run.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jwebster45206/quest-engine/internal/config"
	"github.com/jwebster45206/quest-engine/internal/logger"
	"github.com/jwebster45206/quest-engine/pkg/engine"
	"github.com/jwebster45206/quest-engine/pkg/sim"
)

// script is the on-disk shape of a simulation script.
type script struct {
	Commands []string `json:"commands"`
	Expect   []int    `json:"expect,omitempty"`
}

func main() {
	scriptPath := flag.String("script", "", "path to a JSON simulation script (required)")
	verbose := flag.Bool("v", false, "print each event description during the replay")
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg)

	data, err := os.ReadFile(*scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading script: %v\n", err)
		os.Exit(1)
	}
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing script: %v\n", err)
		os.Exit(1)
	}

	rules := engine.Config{
		MaxTurns:      cfg.MaxTurns,
		MinScore:      cfg.MinScore,
		RequiredItems: cfg.RequiredItems,
	}

	ctx := context.Background()
	s, err := sim.NewFromFile(ctx, cfg.WorldFile, cfg.StartLocation, sc.Commands, rules, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		s.Run(os.Stdout)
		fmt.Println()
	}

	idLog := s.IDLog()
	out, _ := json.Marshal(idLog)
	fmt.Printf("id log: %s\n", out)
	fmt.Printf("status: %s, score: %d, turns: %d\n",
		s.Game().Status(), s.Game().Player().Score, s.Game().Player().Turn)

	if sc.Expect != nil && !equal(idLog, sc.Expect) {
		expected, _ := json.Marshal(sc.Expect)
		fmt.Fprintf(os.Stderr, "MISMATCH: expected %s\n", expected)
		os.Exit(1)
	}
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
