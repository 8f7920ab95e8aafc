// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui displays info cards in the terminal. Each card is mounted when
// the view first appears and redrawn when its lookup resolves.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/dbpedia-info/internal/card"
)

type resolvedMsg struct {
	index int
}

var (
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	termStyle   = lipgloss.NewStyle().Bold(true)
	imageStyle  = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is the Bubble Tea model for a list of cards.
type Model struct {
	ctx     context.Context
	cards   []*card.Card
	spinner spinner.Model
	width   int
}

// New returns a model displaying cards. Lookups run under ctx.
func New(ctx context.Context, cards []*card.Card) *Model {
	return &Model{
		ctx:     ctx,
		cards:   cards,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   80,
	}
}

// Init mounts every card and waits for their lookups.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	for i, c := range m.cards {
		c.Mount(m.ctx)
		cmds = append(cmds, waitFor(m.ctx, i, c))
	}
	return tea.Batch(cmds...)
}

func waitFor(ctx context.Context, i int, c *card.Card) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-c.Done():
		case <-ctx.Done():
		}
		return resolvedMsg{index: i}
	}
}

// Update handles key presses, resizes, spinner ticks and resolved lookups.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Close()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case spinner.TickMsg:
		if !m.pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case resolvedMsg:
		// State is read from the card on the next View.
	}
	return m, nil
}

// View renders every card that is loading or loaded. Failed cards render nothing.
func (m *Model) View() string {
	var b strings.Builder
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}
	for _, c := range m.cards {
		st := c.State()
		switch st.Status {
		case card.StatusPending:
			b.WriteString(borderStyle.Width(inner).Render(m.spinner.View() + " " + termStyle.Render(st.Term)))
			b.WriteString("\n")
		case card.StatusLoaded:
			lines := []string{termStyle.Render(st.Term)}
			if d, ok := st.Description.Get(); ok {
				lines = append(lines, d)
			}
			if img, ok := st.Image.Get(); ok {
				lines = append(lines, imageStyle.Render(img))
			}
			b.WriteString(borderStyle.Width(inner).Render(strings.Join(lines, "\n")))
			b.WriteString("\n")
		}
	}
	b.WriteString(helpStyle.Render("q: quit"))
	b.WriteString("\n")
	return b.String()
}

// Close tears down every card, cancelling lookups still in flight.
func (m *Model) Close() {
	for _, c := range m.cards {
		c.Close()
	}
}

func (m *Model) pending() bool {
	for _, c := range m.cards {
		if c.State().Status == card.StatusPending {
			return true
		}
	}
	return false
}
