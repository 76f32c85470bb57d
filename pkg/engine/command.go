package engine

import "strings"

type CommandType string

const (
	CmdLook        CommandType = "look"
	CmdInventory   CommandType = "inventory"
	CmdScore       CommandType = "score"
	CmdLog         CommandType = "log"
	CmdSubmitEarly CommandType = "submit early"
	CmdQuit        CommandType = "quit"
	CmdTake        CommandType = "take"
	CmdDrop        CommandType = "drop"
	CmdInspect     CommandType = "inspect"
	CmdNone        CommandType = "" // No command, used for fallback
)

var menuCommands = map[string]CommandType{
	"look":         CmdLook,
	"inventory":    CmdInventory,
	"score":        CmdScore,
	"log":          CmdLog,
	"submit early": CmdSubmitEarly,
	"quit":         CmdQuit,
}

var itemVerbs = map[string]CommandType{
	"take":    CmdTake,
	"drop":    CmdDrop,
	"inspect": CmdInspect,
}

// normalize lowercases and trims a raw command string. All engine
// commands are matched in this form.
func normalize(input string) string {
	return strings.TrimSpace(strings.ToLower(input))
}

// parseCommand classifies a normalized input string as a menu command
// or a "<verb> <item name>" command. Movement commands are not parsed
// here; they are looked up against the current location's available
// commands before this runs. Unrecognized input returns CmdNone.
func parseCommand(input string) (CommandType, string) {
	if input == "" {
		return CmdNone, ""
	}
	if cmd, ok := menuCommands[input]; ok {
		return cmd, ""
	}

	verb, rest, found := strings.Cut(input, " ")
	if !found {
		return CmdNone, ""
	}
	cmd, ok := itemVerbs[verb]
	if !ok {
		return CmdNone, ""
	}
	itemName := strings.TrimSpace(rest)
	if itemName == "" {
		return CmdNone, ""
	}
	return cmd, itemName
}

// Outcome is the structured result of resolving one command.
type Outcome struct {
	OK      bool   // False when the command was rejected or its precondition failed
	Message string // Human-readable result text
	Moved   bool   // True when the player changed location
	Ended   bool   // True when the session left the ongoing state
}
