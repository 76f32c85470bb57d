package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validWorld = `{
	"locations": [
		{
			"id": 1,
			"name": "hall",
			"brief_description": "The hall.",
			"long_description": "A long hall with peeling wallpaper.",
			"available_commands": {"go east": 2}
		},
		{
			"id": 2,
			"name": "study",
			"brief_description": "The study.",
			"long_description": "A dusty study.",
			"available_commands": {"go west": 1},
			"items": ["brass key"],
			"restrictions": {"go west": "brass key"},
			"rewards": {"go west": 5}
		}
	],
	"items": [
		{
			"name": "brass key",
			"description": "A small brass key.",
			"hint": "It looks like it opens something in the hall.",
			"completion_text": "The key turns with a click.",
			"start_position": 2,
			"target_position": 1,
			"target_points": 10
		}
	]
}`

func TestParse_Valid(t *testing.T) {
	c, err := Parse([]byte(validWorld))
	require.NoError(t, err)

	hall, ok := c.Location(1)
	require.True(t, ok)
	assert.Equal(t, "hall", hall.Name)
	assert.Equal(t, 2, hall.AvailableCommands["go east"])
	assert.False(t, hall.Visited)

	study, ok := c.Location(2)
	require.True(t, ok)
	assert.Equal(t, []string{"brass key"}, study.Items)
	assert.Equal(t, "brass key", study.Restrictions["go west"])
	assert.Equal(t, 5, study.Rewards["go west"])

	key := c.Item("brass key")
	require.NotNil(t, key)
	assert.Equal(t, 10, key.TargetPoints)
	assert.True(t, c.HasItem("brass key"))
	assert.False(t, c.HasItem("rusty key"))
	assert.Nil(t, c.Item("rusty key"))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "malformed json",
			data:    `{"locations": [`,
			wantErr: "failed to decode",
		},
		{
			name:    "unknown field",
			data:    `{"locations": [], "items": [], "monsters": []}`,
			wantErr: "failed to decode",
		},
		{
			name: "command to unknown location",
			data: `{"locations": [
				{"id": 1, "name": "hall", "brief_description": "b", "long_description": "l",
				 "available_commands": {"go east": 99}}
			], "items": []}`,
			wantErr: "unknown location 99",
		},
		{
			name: "duplicate location id",
			data: `{"locations": [
				{"id": 1, "name": "hall", "brief_description": "b", "long_description": "l", "available_commands": {}},
				{"id": 1, "name": "hall again", "brief_description": "b", "long_description": "l", "available_commands": {}}
			], "items": []}`,
			wantErr: "duplicate id",
		},
		{
			name: "item with unknown start position",
			data: `{"locations": [
				{"id": 1, "name": "hall", "brief_description": "b", "long_description": "l", "available_commands": {}}
			], "items": [
				{"name": "key", "description": "d", "hint": "h", "completion_text": "c",
				 "start_position": 7, "target_position": 1, "target_points": 5}
			]}`,
			wantErr: "unknown start position 7",
		},
		{
			name: "item with unknown target position",
			data: `{"locations": [
				{"id": 1, "name": "hall", "brief_description": "b", "long_description": "l", "available_commands": {}}
			], "items": [
				{"name": "key", "description": "d", "hint": "h", "completion_text": "c",
				 "start_position": 1, "target_position": 7, "target_points": 5}
			]}`,
			wantErr: "unknown target position 7",
		},
		{
			name: "duplicate item name",
			data: `{"locations": [
				{"id": 1, "name": "hall", "brief_description": "b", "long_description": "l", "available_commands": {}}
			], "items": [
				{"name": "key", "description": "d", "hint": "h", "completion_text": "c",
				 "start_position": 1, "target_position": 1, "target_points": 5},
				{"name": "key", "description": "d2", "hint": "h2", "completion_text": "c2",
				 "start_position": 1, "target_position": 1, "target_points": 5}
			]}`,
			wantErr: "duplicate name",
		},
		{
			name: "location lists unknown item",
			data: `{"locations": [
				{"id": 1, "name": "hall", "brief_description": "b", "long_description": "l",
				 "available_commands": {}, "items": ["ghost"]}
			], "items": []}`,
			wantErr: `unknown item "ghost"`,
		},
		{
			name: "item placed away from its start position",
			data: `{"locations": [
				{"id": 1, "name": "hall", "brief_description": "b", "long_description": "l",
				 "available_commands": {}, "items": ["key"]},
				{"id": 2, "name": "study", "brief_description": "b", "long_description": "l", "available_commands": {}}
			], "items": [
				{"name": "key", "description": "d", "hint": "h", "completion_text": "c",
				 "start_position": 2, "target_position": 1, "target_points": 5}
			]}`,
			wantErr: "placed at location 1 but starts at 2",
		},
		{
			name: "restriction on unknown command",
			data: `{"locations": [
				{"id": 1, "name": "hall", "brief_description": "b", "long_description": "l",
				 "available_commands": {}, "restrictions": {"go east": "key"}}
			], "items": []}`,
			wantErr: `restriction on unknown command "go east"`,
		},
		{
			name: "restriction requires unknown item",
			data: `{"locations": [
				{"id": 1, "name": "hall", "brief_description": "b", "long_description": "l",
				 "available_commands": {"go east": 1}, "restrictions": {"go east": "ghost"}}
			], "items": []}`,
			wantErr: `requires unknown item "ghost"`,
		},
		{
			name: "reward on unknown command",
			data: `{"locations": [
				{"id": 1, "name": "hall", "brief_description": "b", "long_description": "l",
				 "available_commands": {}, "rewards": {"go east": 5}}
			], "items": []}`,
			wantErr: `reward on unknown command "go east"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read world file")
}

func TestLoad_WorldData(t *testing.T) {
	c, err := Load("../../data/world.json")
	require.NoError(t, err)
	assert.Len(t, c.LocationIDs(), 20)
	assert.Len(t, c.Items(), 3)

	for _, name := range []string{"lucky mug", "usb drive", "laptop charger"} {
		require.True(t, c.HasItem(name), "missing item %q", name)
		assert.Equal(t, 1, c.Item(name).TargetPosition)
	}
}
