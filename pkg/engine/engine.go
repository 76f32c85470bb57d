// Package engine is the single authority for mutating player state and
// world item placement in response to player commands, and for
// declaring the win/lose/ongoing status of a session.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/jwebster45206/quest-engine/pkg/eventlog"
	"github.com/jwebster45206/quest-engine/pkg/state"
	"github.com/jwebster45206/quest-engine/pkg/world"
)

// Status is the lifecycle state of a session. Terminal states have no
// outgoing transitions within the same session.
type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
	StatusAborted Status = "aborted"
)

// Ended reports whether the status is terminal.
func (s Status) Ended() bool {
	return s != StatusOngoing
}

// Config holds the session rules. All values are caller-supplied at
// construction; nothing here is hard-coded in the data model.
type Config struct {
	MaxTurns      int      // Movement commands allowed before forced end
	MinScore      int      // Minimum score required to win
	RequiredItems []string // Item names that must all be returned to win
}

// DefaultConfig returns the rule set of the original campus game.
func DefaultConfig() Config {
	return Config{
		MaxTurns:      67,
		MinScore:      60,
		RequiredItems: []string{"lucky mug", "usb drive", "laptop charger"},
	}
}

// LoadFunc produces a fresh world catalog. It is called once at
// construction and again on every reset.
type LoadFunc func() (*world.Catalog, error)

// AuditSink receives a copy of every appended event. Implementations
// must tolerate being called once per resolved command; failures are
// logged and never interrupt the session.
type AuditSink interface {
	Append(ctx context.Context, sessionID uuid.UUID, e *eventlog.Event) error
}

// Game is one session of the adventure. It assumes single-threaded
// access: exactly one command is resolved at a time, fully applied
// before the next is accepted.
type Game struct {
	ID uuid.UUID

	load    LoadFunc
	catalog *world.Catalog
	cfg     Config
	start   int

	player  *state.Player
	log     *eventlog.List
	current int
	status  Status

	logger *slog.Logger
	audit  AuditSink
}

// NewGame builds a session from a catalog loader and a starting
// location id. The first event (the starting location, with no
// preceding command) is recorded immediately.
func NewGame(load LoadFunc, startLocation int, cfg Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	catalog, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load world catalog: %w", err)
	}
	loc, ok := catalog.Location(startLocation)
	if !ok {
		return nil, fmt.Errorf("starting location %d not in world catalog", startLocation)
	}

	g := &Game{
		ID:      uuid.New(),
		load:    load,
		catalog: catalog,
		cfg:     cfg,
		start:   startLocation,
		player:  state.NewPlayer(),
		log:     eventlog.New(),
		current: startLocation,
		status:  StatusOngoing,
		logger:  logger,
	}
	g.log.AddEvent(eventlog.NewEvent(loc.ID, loc.BriefDescription), "")
	return g, nil
}

// NewGameFromFile builds a session that loads (and reloads on reset)
// its catalog from a world data file.
func NewGameFromFile(path string, startLocation int, cfg Config, logger *slog.Logger) (*Game, error) {
	return NewGame(func() (*world.Catalog, error) {
		return world.Load(path)
	}, startLocation, cfg, logger)
}

// SetAuditSink attaches an optional audit trail. Events already in the
// log (the initial location, in the usual case) are replayed into the
// sink so the trail is complete.
func (g *Game) SetAuditSink(ctx context.Context, sink AuditSink) {
	g.audit = sink
	if sink == nil {
		return
	}
	for e := g.log.First(); e != nil; e = e.Next() {
		if err := sink.Append(ctx, g.ID, e); err != nil {
			g.logger.Warn("event audit failed", "session_id", g.ID, "error", err)
		}
	}
}

// Resolve validates and applies one command. Validation failures are
// reported through the Outcome, never as errors; the session continues
// unless the command itself ends it.
func (g *Game) Resolve(ctx context.Context, input string) Outcome {
	if g.status.Ended() {
		return Outcome{Message: "The session has ended.", Ended: true}
	}

	cmd := normalize(input)
	loc := g.location()

	// Movement commands take precedence, matching per-location exits.
	if dest, ok := loc.AvailableCommands[cmd]; ok {
		return g.move(ctx, loc, cmd, dest)
	}

	kind, itemName := parseCommand(cmd)
	switch kind {
	case CmdLook:
		out := Outcome{OK: true, Message: g.describeLook(loc)}
		g.appendEvent(ctx, loc, cmd)
		return out
	case CmdInventory:
		out := Outcome{OK: true, Message: g.DescribeInventory()}
		g.appendEvent(ctx, loc, cmd)
		return out
	case CmdScore:
		out := Outcome{OK: true, Message: fmt.Sprintf("%d", g.player.Score)}
		g.appendEvent(ctx, loc, cmd)
		return out
	case CmdLog:
		out := Outcome{OK: true, Message: g.log.String()}
		g.appendEvent(ctx, loc, cmd)
		return out
	case CmdQuit:
		g.status = StatusAborted
		g.appendEvent(ctx, loc, cmd)
		g.logger.Info("session aborted", "session_id", g.ID, "turn", g.player.Turn)
		return Outcome{OK: true, Message: "You walk away from it all.", Ended: true}
	case CmdSubmitEarly:
		g.finish()
		g.appendEvent(ctx, loc, cmd)
		return Outcome{OK: true, Message: g.finishMessage(), Ended: true}
	case CmdTake:
		out := g.take(itemName)
		g.appendEvent(ctx, loc, cmd)
		return out
	case CmdDrop:
		out := g.drop(loc, itemName)
		g.appendEvent(ctx, loc, cmd)
		if g.status.Ended() {
			out.Ended = true
		}
		return out
	case CmdInspect:
		out := g.inspect(itemName)
		g.appendEvent(ctx, loc, cmd)
		return out
	default:
		return Outcome{Message: "That was an invalid option; try again."}
	}
}

// move applies a movement command: restriction check, relocation, turn
// accounting, one-shot reward, and turn-exhaustion handling.
func (g *Game) move(ctx context.Context, from *world.Location, cmd string, dest int) Outcome {
	if required, ok := from.Restrictions[cmd]; ok && !g.player.HoldingName(required) {
		return Outcome{Message: fmt.Sprintf("You can't go that way without the %s.", required)}
	}

	g.current = dest
	g.player.Turn++

	if bonus, ok := from.Rewards[cmd]; ok {
		g.player.Score += bonus
		delete(from.Rewards, cmd)
	}

	loc := g.location()
	g.appendEvent(ctx, loc, cmd)

	out := Outcome{OK: true, Moved: true, Message: g.describeArrival(loc)}
	if g.player.Turn >= g.cfg.MaxTurns {
		g.finish()
		out.Ended = true
		out.Message += "\n\nYou are out of turns.\n" + g.finishMessage()
	}
	return out
}

// finish transitions the session out of ongoing and evaluates the win
// condition. Run only on turn exhaustion or submit-early, never on
// quit.
func (g *Game) finish() {
	if g.didPlayerWin() {
		g.status = StatusWon
	} else {
		g.status = StatusLost
	}
	g.logger.Info("session finished",
		"session_id", g.ID,
		"status", g.status,
		"score", g.player.Score,
		"turns", g.player.Turn)
}

func (g *Game) didPlayerWin() bool {
	if g.player.Score < g.cfg.MinScore {
		return false
	}
	for _, name := range g.cfg.RequiredItems {
		if !g.player.HasReturned(name) {
			return false
		}
	}
	return true
}

func (g *Game) finishMessage() string {
	if g.status == StatusWon {
		return "YOU WIN!!!!\nYou submitted your assignment on time!"
	}
	return "YOU LOSE!!!!\nYou submitted your assignment late!"
}

// Reset restores a fresh session: the catalog is reloaded from the
// same source, and player state and event log are newly allocated.
func (g *Game) Reset(ctx context.Context) error {
	catalog, err := g.load()
	if err != nil {
		return fmt.Errorf("failed to reload world catalog: %w", err)
	}
	loc, ok := catalog.Location(g.start)
	if !ok {
		return fmt.Errorf("starting location %d not in world catalog", g.start)
	}

	g.ID = uuid.New()
	g.catalog = catalog
	g.player = state.NewPlayer()
	g.log = eventlog.New()
	g.current = g.start
	g.status = StatusOngoing
	g.appendEvent(ctx, loc, "")
	return nil
}

// appendEvent records the location the player is at after resolving a
// command, with the command that led there. Audit failures are logged
// and otherwise ignored.
func (g *Game) appendEvent(ctx context.Context, loc *world.Location, cmd string) {
	e := eventlog.NewEvent(loc.ID, loc.BriefDescription)
	g.log.AddEvent(e, cmd)
	if g.audit != nil {
		if err := g.audit.Append(ctx, g.ID, e); err != nil {
			g.logger.Warn("event audit failed", "session_id", g.ID, "error", err)
		}
	}
}

func (g *Game) location() *world.Location {
	// The current id is only ever set from validated catalog entries,
	// so the lookup cannot miss.
	loc, _ := g.catalog.Location(g.current)
	return loc
}

// Status returns the session status.
func (g *Game) Status() Status {
	return g.status
}

// CurrentLocation returns the player's current location.
func (g *Game) CurrentLocation() *world.Location {
	return g.location()
}

// Player returns the mutable player state.
func (g *Game) Player() *state.Player {
	return g.player
}

// EventLog returns the session's event log.
func (g *Game) EventLog() *eventlog.List {
	return g.log
}

// Catalog returns the world catalog backing this session.
func (g *Game) Catalog() *world.Catalog {
	return g.catalog
}

// Config returns the session rules.
func (g *Game) Config() Config {
	return g.cfg
}

// TurnsLeft returns the number of movement commands remaining.
func (g *Game) TurnsLeft() int {
	return g.cfg.MaxTurns - g.player.Turn
}

// AvailableActions returns the movement commands at the current
// location, sorted for stable display.
func (g *Game) AvailableActions() []string {
	loc := g.location()
	actions := make([]string, 0, len(loc.AvailableCommands))
	for cmd := range loc.AvailableCommands {
		actions = append(actions, cmd)
	}
	sort.Strings(actions)
	return actions
}
