package engine

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/quest-engine/pkg/world"
)

// take moves an item from the current location into the inventory.
func (g *Game) take(itemName string) Outcome {
	item := g.catalog.Item(itemName)
	if item == nil {
		return Outcome{Message: fmt.Sprintf("No such item %s here.", itemName)}
	}

	loc := g.location()
	idx := indexOf(loc.Items, itemName)
	if idx < 0 {
		return Outcome{Message: fmt.Sprintf("No such item %s here.", itemName)}
	}

	loc.Items = append(loc.Items[:idx], loc.Items[idx+1:]...)
	g.player.AddItem(item)
	return Outcome{OK: true, Message: "You picked up " + itemName}
}

// drop moves an item from the inventory into the current location,
// then immediately evaluates quest completion for it.
func (g *Game) drop(loc *world.Location, itemName string) Outcome {
	item := g.catalog.Item(itemName)
	if item == nil || !g.player.Holding(item) {
		return Outcome{Message: fmt.Sprintf("No such item %s in inventory.", itemName)}
	}

	g.player.RemoveItem(item)
	loc.Items = append(loc.Items, itemName)

	msg := "You dropped " + itemName
	if quest := g.checkQuest(loc, item); quest != "" {
		msg += "\n" + quest
	}
	return Outcome{OK: true, Message: msg}
}

// checkQuest credits a just-dropped item when it has reached its
// target location. The credit fires exactly once per physical drop:
// the item name is removed from the location list again as final
// disposal, so a later check cannot re-trigger. Returns the completion
// text, or "" when the drop was not a return.
func (g *Game) checkQuest(loc *world.Location, item *world.Item) string {
	if item.TargetPosition != loc.ID {
		return ""
	}
	idx := indexOf(loc.Items, item.Name)
	if idx < 0 {
		return ""
	}

	g.player.Returned[item.Name] = true
	g.player.Score += item.TargetPoints
	loc.Items = append(loc.Items[:idx], loc.Items[idx+1:]...)

	g.logger.Info("item returned",
		"session_id", g.ID,
		"item", item.Name,
		"points", item.TargetPoints,
		"score", g.player.Score)
	return fmt.Sprintf("%s\nYour score is now %d", item.CompletionText, g.player.Score)
}

// inspect reports an item's hint and where it needs to go. Read-only,
// and only for items currently in the inventory.
func (g *Game) inspect(itemName string) Outcome {
	item := g.catalog.Item(itemName)
	if item == nil || !g.player.Holding(item) {
		return Outcome{Message: fmt.Sprintf("No such item %s in inventory.", itemName)}
	}

	target, _ := g.catalog.Location(item.TargetPosition)
	return Outcome{
		OK:      true,
		Message: fmt.Sprintf("%s\n..... It needs to go to %s", item.Hint, target.Name),
	}
}

// describeArrival renders a location on arrival: the long description
// on first visit, the brief one afterwards.
func (g *Game) describeArrival(loc *world.Location) string {
	if loc.Visited {
		return loc.BriefDescription
	}
	loc.Visited = true
	return loc.LongDescription
}

// ArrivalDescription renders the current location the way an arrival
// would, marking it visited. Front ends call this once at session
// start for the opening description.
func (g *Game) ArrivalDescription() string {
	return g.describeArrival(g.location())
}

// describeLook renders the full look output: long description plus the
// items present.
func (g *Game) describeLook(loc *world.Location) string {
	var b strings.Builder
	b.WriteString(loc.LongDescription)
	b.WriteString("\n")
	if len(loc.Items) == 0 {
		b.WriteString("No Items In " + loc.Name)
		return b.String()
	}
	b.WriteString("Items In " + loc.Name)
	for _, name := range loc.Items {
		if item := g.catalog.Item(name); item != nil {
			b.WriteString("\n" + item.Name + ": " + item.Description)
		} else {
			b.WriteString("\n" + name)
		}
	}
	return b.String()
}

// DescribeInventory renders the player's inventory.
func (g *Game) DescribeInventory() string {
	if len(g.player.Inventory) == 0 {
		return "No Items In Your Inventory"
	}
	lines := make([]string, 0, len(g.player.Inventory))
	for _, item := range g.player.Inventory {
		lines = append(lines, item.Name+": "+item.Description)
	}
	return strings.Join(lines, "\n")
}

func indexOf(items []string, name string) int {
	for i, n := range items {
		if n == name {
			return i
		}
	}
	return -1
}
