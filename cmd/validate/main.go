// Command validate checks a world data file for structural and
// referential integrity problems before it is shipped with the game.
package main

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/quest-engine/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	fmt.Printf("Validating %s...\n", filename)

	catalog, err := world.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("World file is valid!")
	printSummary(catalog)
}

func printSummary(c *world.Catalog) {
	ids := c.LocationIDs()
	sort.Ints(ids)
	titleCaser := cases.Title(language.English)

	fmt.Printf("\n%d locations:\n", len(ids))
	for _, id := range ids {
		loc, _ := c.Location(id)
		fmt.Printf("  %2d  %s (%d exits)\n", id, titleCaser.String(loc.Name), len(loc.AvailableCommands))
	}

	fmt.Printf("\n%d items:\n", len(c.Items()))
	for _, item := range c.Items() {
		start, _ := c.Location(item.StartPosition)
		target, _ := c.Location(item.TargetPosition)
		fmt.Printf("  %s: %s → %s (%d points)\n",
			titleCaser.String(item.Name), start.Name, target.Name, item.TargetPoints)
	}
}
