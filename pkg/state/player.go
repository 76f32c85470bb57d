// Package state holds the mutable player progress for one session.
package state

import "github.com/jwebster45206/quest-engine/pkg/world"

// Player is the mutable per-session progress: inventory, score, turn
// counter, and the set of item names already returned for credit.
// Score and Turn never decrease within a session; Returned only grows.
type Player struct {
	Inventory []*world.Item
	Score     int
	Turn      int
	Returned  map[string]bool
}

// NewPlayer returns a freshly initialized player state. Every session
// and every reset must get its own instance; the collections are never
// shared.
func NewPlayer() *Player {
	return &Player{
		Inventory: make([]*world.Item, 0),
		Returned:  make(map[string]bool),
	}
}

// Holding reports whether the item is currently in the inventory.
func (p *Player) Holding(item *world.Item) bool {
	for _, it := range p.Inventory {
		if it == item {
			return true
		}
	}
	return false
}

// HoldingName reports whether an item with the given name is in the
// inventory.
func (p *Player) HoldingName(name string) bool {
	for _, it := range p.Inventory {
		if it.Name == name {
			return true
		}
	}
	return false
}

// AddItem appends the item to the inventory.
func (p *Player) AddItem(item *world.Item) {
	p.Inventory = append(p.Inventory, item)
}

// RemoveItem removes the item from the inventory. It reports whether
// the item was present.
func (p *Player) RemoveItem(item *world.Item) bool {
	for i, it := range p.Inventory {
		if it == item {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// HasReturned reports whether the named item has been credited.
func (p *Player) HasReturned(name string) bool {
	return p.Returned[name]
}
