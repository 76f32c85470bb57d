package world

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// document is the on-disk shape of a world data file.
type document struct {
	Locations []*Location `json:"locations"`
	Items     []*Item     `json:"items"`
}

// Load reads and validates a world data file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid world file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a world data document and validates referential
// integrity. Any violation is fatal: the catalog is unusable if a
// command or item references a location that does not exist.
func Parse(data []byte) (*Catalog, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode world data: %w", err)
	}

	c := &Catalog{
		locations: make(map[int]*Location, len(doc.Locations)),
		items:     doc.Items,
		byName:    make(map[string]*Item, len(doc.Items)),
	}

	var errs []string
	for _, loc := range doc.Locations {
		if loc.Name == "" {
			errs = append(errs, fmt.Sprintf("location %d: missing name", loc.ID))
		}
		if _, dup := c.locations[loc.ID]; dup {
			errs = append(errs, fmt.Sprintf("location %d: duplicate id", loc.ID))
		}
		c.locations[loc.ID] = loc
	}

	for _, loc := range doc.Locations {
		for cmd, dest := range loc.AvailableCommands {
			if _, ok := c.locations[dest]; !ok {
				errs = append(errs, fmt.Sprintf("location %d: command %q leads to unknown location %d", loc.ID, cmd, dest))
			}
		}
		for cmd := range loc.Restrictions {
			if _, ok := loc.AvailableCommands[cmd]; !ok {
				errs = append(errs, fmt.Sprintf("location %d: restriction on unknown command %q", loc.ID, cmd))
			}
		}
		for cmd := range loc.Rewards {
			if _, ok := loc.AvailableCommands[cmd]; !ok {
				errs = append(errs, fmt.Sprintf("location %d: reward on unknown command %q", loc.ID, cmd))
			}
		}
	}

	for _, item := range doc.Items {
		if item.Name == "" {
			errs = append(errs, "item with missing name")
			continue
		}
		if _, dup := c.byName[item.Name]; dup {
			errs = append(errs, fmt.Sprintf("item %q: duplicate name", item.Name))
		}
		c.byName[item.Name] = item

		if _, ok := c.locations[item.StartPosition]; !ok {
			errs = append(errs, fmt.Sprintf("item %q: unknown start position %d", item.Name, item.StartPosition))
		}
		if _, ok := c.locations[item.TargetPosition]; !ok {
			errs = append(errs, fmt.Sprintf("item %q: unknown target position %d", item.Name, item.TargetPosition))
		}
	}

	// Restrictions must name catalog items, and every item placed in a
	// location list must be a catalog item sitting at its start position.
	for _, loc := range doc.Locations {
		for cmd, required := range loc.Restrictions {
			if _, ok := c.byName[required]; !ok {
				errs = append(errs, fmt.Sprintf("location %d: restriction on %q requires unknown item %q", loc.ID, cmd, required))
			}
		}
		for _, name := range loc.Items {
			item, ok := c.byName[name]
			if !ok {
				errs = append(errs, fmt.Sprintf("location %d: unknown item %q", loc.ID, name))
				continue
			}
			if item.StartPosition != loc.ID {
				errs = append(errs, fmt.Sprintf("item %q: placed at location %d but starts at %d", name, loc.ID, item.StartPosition))
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("world data validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return c, nil
}
