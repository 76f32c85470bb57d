package sim

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/quest-engine/pkg/engine"
	"github.com/jwebster45206/quest-engine/pkg/world"
)

const worldFile = "../../data/world.json"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func newSim(t *testing.T, commands []string) *Simulation {
	t.Helper()
	s, err := NewFromFile(context.Background(), worldFile, 1, commands, engine.DefaultConfig(), testLogger())
	require.NoError(t, err)
	return s
}

func TestSimulation_SingleMove(t *testing.T) {
	const sample = `{
		"locations": [
			{
				"id": 1,
				"name": "west end",
				"brief_description": "The west end.",
				"long_description": "The west end of a short corridor.",
				"available_commands": {"go east": 2}
			},
			{
				"id": 2,
				"name": "east end",
				"brief_description": "The east end.",
				"long_description": "The east end of a short corridor.",
				"available_commands": {"go west": 1}
			}
		],
		"items": []
	}`
	load := func() (*world.Catalog, error) { return world.Parse([]byte(sample)) }

	s, err := New(context.Background(), load, 1, []string{"go east"}, engine.DefaultConfig(), testLogger())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.IDLog())
}

func TestSimulation_WinWalkthrough(t *testing.T) {
	walkthrough := []string{
		"go west", "go west", "go west", "go west", "take lucky mug",
		"go east", "go east", "go east", "go east",
		"go south", "go east", "go east", "go east", "take usb drive",
		"go west", "go north", "go north",
		"go east", "go east", "go south", "go east", "go south", "take laptop charger",
		"go north", "go west", "go north", "go west", "go west",
		"go south", "go south", "go west", "go west", "go north",
		"drop lucky mug", "drop usb drive", "drop laptop charger",
	}
	expected := []int{
		1, 2, 3, 4, 5, 5,
		4, 3, 2, 1,
		9, 10, 11, 12, 12,
		11, 13, 14,
		16, 17, 18, 19, 20, 20,
		19, 18, 17, 16, 14,
		13, 11, 10, 9, 1, 1, 1, 1,
	}

	s := newSim(t, walkthrough)
	assert.Equal(t, expected, s.IDLog())

	// All three items returned for 65 points, well inside the turn
	// budget. The session only concludes once the run is submitted.
	g := s.Game()
	assert.Equal(t, engine.StatusOngoing, g.Status())
	assert.Equal(t, 65, g.Player().Score)

	out := g.Resolve(context.Background(), "submit early")
	assert.True(t, out.Ended)
	assert.Equal(t, engine.StatusWon, g.Status())
}

func TestSimulation_TurnExhaustionLoss(t *testing.T) {
	// 67 movements: shuttling between the dorm room and the hallway
	// burns the whole turn budget with nothing returned.
	var commands []string
	for i := 0; i < 33; i++ {
		commands = append(commands, "go west", "go east")
	}
	commands = append(commands, "go west")

	expected := []int{1}
	for i := 1; i <= 66; i++ {
		if i%2 == 1 {
			expected = append(expected, 2)
		} else {
			expected = append(expected, 1)
		}
	}
	expected = append(expected, 2)

	s := newSim(t, commands)
	assert.Equal(t, expected, s.IDLog())
	assert.Equal(t, engine.StatusLost, s.Game().Status())
	assert.Equal(t, 0, s.Game().TurnsLeft())
}

func TestSimulation_InventoryDemo(t *testing.T) {
	s := newSim(t, []string{"go west", "inventory", "go east"})
	assert.Equal(t, []int{1, 2, 2, 1}, s.IDLog())
}

func TestSimulation_ScoreDemo(t *testing.T) {
	s := newSim(t, []string{
		"go west", "go west", "go west", "go west",
		"go east", "go east", "go east", "go east",
		"score",
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 4, 3, 2, 1, 1}, s.IDLog())
}

func TestSimulation_QueryCommandsDemo(t *testing.T) {
	s := newSim(t, []string{"look", "go south", "go east", "log", "go west", "go north"})
	assert.Equal(t, []int{1, 1, 9, 10, 10, 9, 1}, s.IDLog())
}

func TestSimulation_RejectsInvalidCommand(t *testing.T) {
	_, err := NewFromFile(context.Background(), worldFile, 1,
		[]string{"go west", "dance"}, engine.DefaultConfig(), testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `command 1 ("dance")`)
}

func TestSimulation_RejectsCommandsAfterEnd(t *testing.T) {
	_, err := NewFromFile(context.Background(), worldFile, 1,
		[]string{"quit", "go west"}, engine.DefaultConfig(), testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session already ended")
}

func TestSimulation_Run(t *testing.T) {
	s := newSim(t, []string{"go west", "go east"})

	var b strings.Builder
	s.Run(&b)
	out := b.String()

	assert.Equal(t, 2, strings.Count(out, "You choose:"))
	assert.Contains(t, out, "You choose: go west")
	// The final event has no outgoing command.
	assert.False(t, strings.HasSuffix(strings.TrimSpace(out), "go east\nYou choose:"))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5) // three descriptions, two choices
}

func TestSimulation_Deterministic(t *testing.T) {
	commands := []string{"go west", "go west", "inventory", "go east", "go east", "go south"}
	a := newSim(t, commands)
	b := newSim(t, commands)
	assert.Equal(t, a.IDLog(), b.IDLog())
	assert.Equal(t, a.Game().Player().Score, b.Game().Player().Score)
}
