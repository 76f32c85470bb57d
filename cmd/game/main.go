// Command game runs the campus adventure in an interactive terminal
// UI. All game rules live in pkg/engine; this front end only turns
// keystrokes into commands and renders the results.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/quest-engine/internal/config"
	"github.com/jwebster45206/quest-engine/internal/logger"
	"github.com/jwebster45206/quest-engine/internal/storage"
	"github.com/jwebster45206/quest-engine/pkg/engine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg)

	rules := engine.Config{
		MaxTurns:      cfg.MaxTurns,
		MinScore:      cfg.MinScore,
		RequiredItems: cfg.RequiredItems,
	}

	game, err := engine.NewGameFromFile(cfg.WorldFile, cfg.StartLocation, rules, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	if cfg.AuditRedisURL != "" {
		audit, err := storage.NewRedisAuditLog(cfg.AuditRedisURL, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating audit log: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			_ = audit.Close() // Ignore error in defer
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := audit.Ping(ctx); err != nil {
			cancel()
			log.Warn("Audit Redis unavailable, continuing without audit trail", "error", err)
		} else {
			game.SetAuditSink(ctx, audit)
			cancel()
		}
	}

	p := tea.NewProgram(NewGameUI(game, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
