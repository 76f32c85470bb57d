// Package sim replays scripted command lists through the engine and
// exposes the resulting location-id log for verification. Identical
// world data, starting location, and commands always produce an
// identical id log.
package sim

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jwebster45206/quest-engine/pkg/engine"
)

// Simulation is one scripted playthrough.
type Simulation struct {
	game *engine.Game
}

// New builds a game session and feeds every command through it, in
// order. Commands that the engine rejects outright (invalid shapes)
// are reported as an error, since a scripted run is expected to be
// replayable.
func New(ctx context.Context, load engine.LoadFunc, initialLocation int, commands []string, cfg engine.Config, logger *slog.Logger) (*Simulation, error) {
	game, err := engine.NewGame(load, initialLocation, cfg, logger)
	if err != nil {
		return nil, err
	}

	return replay(ctx, game, commands)
}

// NewFromFile builds a simulation over a world data file.
func NewFromFile(ctx context.Context, path string, initialLocation int, commands []string, cfg engine.Config, logger *slog.Logger) (*Simulation, error) {
	game, err := engine.NewGameFromFile(path, initialLocation, cfg, logger)
	if err != nil {
		return nil, err
	}
	return replay(ctx, game, commands)
}

func replay(ctx context.Context, game *engine.Game, commands []string) (*Simulation, error) {
	s := &Simulation{game: game}
	for i, cmd := range commands {
		if game.Status().Ended() {
			return nil, fmt.Errorf("command %d (%q): session already ended", i, cmd)
		}
		out := game.Resolve(ctx, cmd)
		if !out.OK {
			return nil, fmt.Errorf("command %d (%q): %s", i, cmd, out.Message)
		}
	}
	return s, nil
}

// IDLog returns the ordered location ids visited during the run,
// including repeats.
func (s *Simulation) IDLog() []int {
	return s.game.EventLog().IDLog()
}

// Game returns the underlying session, for inspecting final state.
func (s *Simulation) Game() *engine.Game {
	return s.game
}

// Run writes each event's description and the command chosen from it,
// replaying the recorded chain in order.
func (s *Simulation) Run(w io.Writer) {
	log := s.game.EventLog()
	for e := log.First(); e != nil; e = e.Next() {
		fmt.Fprintln(w, e.Description)
		if e != log.Last() {
			fmt.Fprintln(w, "You choose:", e.NextCommand)
		}
	}
}
