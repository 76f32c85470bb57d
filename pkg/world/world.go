package world

// Location represents a place in the game world with exits and items.
type Location struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	BriefDescription  string            `json:"brief_description"`  // Shown on revisit
	LongDescription   string            `json:"long_description"`   // Shown on first visit
	AvailableCommands map[string]int    `json:"available_commands"`     // Movement command to destination id
	Items             []string          `json:"items,omitempty"`        // Items currently present here
	Restrictions      map[string]string `json:"restrictions,omitempty"` // Movement command to item required to use it
	Rewards           map[string]int    `json:"rewards,omitempty"`      // Movement command to one-shot score bonus
	Visited           bool              `json:"-"`
}

// Item is a quest item that can be carried and returned for points.
type Item struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Hint           string `json:"hint"`
	CompletionText string `json:"completion_text"`
	StartPosition  int    `json:"start_position"`
	TargetPosition int    `json:"target_position"`
	TargetPoints   int    `json:"target_points"`
}

// Catalog holds the loaded world definition. Location item lists and
// visited flags mutate during play; everything else is read-only.
type Catalog struct {
	locations map[int]*Location
	items     []*Item
	byName    map[string]*Item
}

// Location returns the location with the given id.
func (c *Catalog) Location(id int) (*Location, bool) {
	loc, ok := c.locations[id]
	return loc, ok
}

// Item returns the item with the given name, or nil if not in the catalog.
func (c *Catalog) Item(name string) *Item {
	return c.byName[name]
}

// HasItem reports whether name is a recognized catalog item name.
func (c *Catalog) HasItem(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Items returns all items in the catalog.
func (c *Catalog) Items() []*Item {
	return c.items
}

// LocationIDs returns the ids of all locations in the catalog.
func (c *Catalog) LocationIDs() []int {
	ids := make([]int, 0, len(c.locations))
	for id := range c.locations {
		ids = append(ids, id)
	}
	return ids
}
