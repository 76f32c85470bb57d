package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/quest-engine/pkg/engine"
)

const (
	GameTitle       = "CAMPUS QUEST"
	PlaceHolderText = "Type a command: look, inventory, go west..."
)

var titleCaser = cases.Title(language.English)

var (
	gamePanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // gold
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

// transcriptEntry is one resolved command and its rendered result.
type transcriptEntry struct {
	input   string
	message string
	failed  bool
}

// GameUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type GameUI struct {
	game   *engine.Game
	logger *slog.Logger

	gameViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int

	opening    string
	transcript []transcriptEntry
	statusLine string

	// Quit confirmation state
	showQuitModal bool

	// Session end state (win/lose/abort): offer replay
	showEndModal bool
}

func NewGameUI(game *engine.Game, logger *slog.Logger) GameUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	gameVp := viewport.New(50, 20)
	gameVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return GameUI{
		game:         game,
		logger:       logger,
		textarea:     ta,
		gameViewport: gameVp,
		metaViewport: metaVp,
		opening:      game.ArrivalDescription(),
	}
}

func (m GameUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}
	if m.showEndModal {
		return m.updateEndModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.writeGameContent()
		m.writeMetadata()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			if err := clipboard.WriteAll(m.game.EventLog().String()); err != nil {
				m.statusLine = "Could not copy the log to the clipboard."
			} else {
				m.statusLine = "Event log copied to clipboard."
			}
			m.writeMetadata()
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}
			return m.resolve(input), nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.gameViewport, vpCmd = m.gameViewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

// resolve feeds one command to the engine and records the outcome.
func (m GameUI) resolve(input string) GameUI {
	out := m.game.Resolve(context.Background(), input)
	m.transcript = append(m.transcript, transcriptEntry{
		input:   input,
		message: out.Message,
		failed:  !out.OK,
	})
	m.statusLine = ""
	if out.Ended {
		m.showEndModal = true
	}
	m.writeGameContent()
	m.writeMetadata()
	return m
}

func (m *GameUI) layout() {
	gameWidth := int(float64(m.width)*0.72) - 4
	metaWidth := m.width - gameWidth - 6

	m.gameViewport.Width = gameWidth - 2
	m.gameViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth
	m.metaViewport.Height = m.height - 7
	m.textarea.SetWidth(gameWidth - 2)
}

// writeGameContent rebuilds the transcript for the current width.
func (m *GameUI) writeGameContent() {
	width := m.gameViewport.Width - 6
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(GameTitle) + "\n\n")
	content.WriteString(wordwrap.String(m.opening, width) + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")

	for _, entry := range m.transcript {
		content.WriteString(userStyle.Render("> "+entry.input) + "\n")
		style := narratorStyle
		if entry.failed {
			style = errorStyle
		}
		content.WriteString(style.Render(wordwrap.String(entry.message, width)) + "\n\n")
	}

	m.gameViewport.SetContent(content.String())
	m.gameViewport.GotoBottom()
}

func (m *GameUI) writeMetadata() {
	var content strings.Builder
	content.WriteString(titleStyle.Render("SESSION") + "\n\n")

	loc := m.game.CurrentLocation()
	player := m.game.Player()

	content.WriteString("Location:\n")
	content.WriteString(titleCaser.String(loc.Name) + "\n\n")

	content.WriteString(fmt.Sprintf("Score: %d\n", player.Score))
	content.WriteString(fmt.Sprintf("Turns left: %d\n\n", m.game.TurnsLeft()))

	content.WriteString("You can:\n")
	for _, action := range m.game.AvailableActions() {
		content.WriteString("• " + action + "\n")
	}
	content.WriteString("\n")

	content.WriteString("Carrying:\n")
	if len(player.Inventory) == 0 {
		content.WriteString("Nothing\n")
	}
	for _, item := range player.Inventory {
		content.WriteString("• " + titleCaser.String(item.Name) + "\n")
	}
	content.WriteString("\n")

	if len(player.Returned) > 0 {
		content.WriteString("Returned:\n")
		for name := range player.Returned {
			content.WriteString("• " + titleCaser.String(name) + "\n")
		}
		content.WriteString("\n")
	}

	content.WriteString("Keys:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Ctrl+Y: Copy log\n")
	content.WriteString("• Enter: Send\n")

	if m.statusLine != "" {
		content.WriteString("\n" + m.statusLine + "\n")
	}

	m.metaViewport.SetContent(content.String())
}

func (m GameUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(key.String()) {
		case "y", "enter":
			m.game.Resolve(context.Background(), "quit")
			return m, tea.Quit
		case "n", "esc":
			m.showQuitModal = false
			return m, nil
		}
	}
	return m, nil
}

func (m GameUI) updateEndModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(key.String()) {
		case "y":
			if err := m.game.Reset(context.Background()); err != nil {
				m.logger.Error("Failed to reset game", "error", err)
				return m, tea.Quit
			}
			m.opening = m.game.ArrivalDescription()
			m.transcript = nil
			m.statusLine = ""
			m.showEndModal = false
			m.writeGameContent()
			m.writeMetadata()
			return m, nil
		case "n", "q", "esc", "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m GameUI) View() string {
	if !m.ready {
		return "Loading..."
	}

	gamePanel := gamePanelStyle.Render(m.gameViewport.View() + "\n\n" + m.textarea.View())
	metaPanel := metaPanelStyle.Render(m.metaViewport.View())
	view := lipgloss.JoinHorizontal(lipgloss.Top, gamePanel, metaPanel)

	if m.showQuitModal {
		return m.overlayModal(view, m.renderQuitModal())
	}
	if m.showEndModal {
		return m.overlayModal(view, m.renderEndModal())
	}
	return view
}

func (m GameUI) renderQuitModal() string {
	body := modalTitleStyle.Render("Quit the game?") + "\n\n" +
		"Your progress will not be saved.\n\n" +
		"y: quit    n: keep playing"
	return modalStyle.Render(body)
}

func (m GameUI) renderEndModal() string {
	var headline string
	switch m.game.Status() {
	case engine.StatusWon:
		headline = winStyle.Render("YOU WIN!!!!") + "\nYou submitted your assignment on time!"
	case engine.StatusLost:
		headline = errorStyle.Render("YOU LOSE!!!!") + "\nYou submitted your assignment late!"
	default:
		headline = "You walked away from it all."
	}

	body := modalTitleStyle.Render("Game over") + "\n\n" +
		headline + "\n\n" +
		fmt.Sprintf("Final score: %d\n\n", m.game.Player().Score) +
		"Play again? y/n"
	return modalStyle.Render(body)
}

func (m GameUI) overlayModal(background, modal string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
