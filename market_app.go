package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	inventoryList list.Model
	detailView    viewport.Model

	game          *Game
	config        *Config
	dayLog        []string
	focusOnDetail bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	StatusGood    lipgloss.Style
	StatusBad     lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		StatusGood: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
		StatusBad: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

// lotItem adapts an inventory lot to the bubbles list item interface.
type lotItem struct {
	lot   Lot
	price float64
}

func (i lotItem) Title() string { return i.lot.Name }
func (i lotItem) Description() string {
	return fmt.Sprintf("%.1f L at %.2f per litre", i.lot.Litres, i.price)
}
func (i lotItem) FilterValue() string { return i.lot.Name }

// InitialModel builds the market browser over the given game.
func InitialModel(game *Game, config *Config) Model {
	delegate := list.NewDefaultDelegate()
	inventoryList := list.New(inventoryItems(game), delegate, 0, 0)
	inventoryList.Title = "PotionCorp Inventory (by vendor price)"
	inventoryList.SetShowStatusBar(false)

	detailView := viewport.New(0, 0)
	detailView.SetContent("Select a lot and press enter to view its ledger card...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return Model{
		inventoryList:   inventoryList,
		detailView:      detailView,
		game:            game,
		config:          config,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
}

// inventoryItems reads the game inventory in ascending price order.
func inventoryItems(game *Game) []list.Item {
	items := []list.Item{}
	for _, lot := range game.InventoryLots() {
		price := 0.0
		if p, ok := game.Catalog().Get(lot.Name); ok {
			price = p.BuyPrice
		}
		items = append(items, lotItem{lot: lot, price: price})
	}
	return items
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "tab":
			m.focusOnDetail = !m.focusOnDetail
			return m, nil
		case "enter":
			if !m.focusOnDetail {
				if item, ok := m.inventoryList.SelectedItem().(lotItem); ok {
					m.detailView.SetContent(m.renderLedgerCard(item))
					m.detailView.GotoTop()
				}
				return m, nil
			}
		case "d":
			m.runMarketDay()
			return m, nil
		}

		if m.focusOnDetail {
			m.detailView, cmd = m.detailView.Update(msg)
		} else {
			m.inventoryList, cmd = m.inventoryList.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// runMarketDay picks the configured number of vendors and refreshes the
// inventory listing with the day's outcome.
func (m *Model) runMarketDay() {
	picks, err := m.game.ChoosePotionsForVendors(m.config.Market.Vendors)
	if err != nil {
		m.dayLog = []string{m.styles.StatusBad.Render(fmt.Sprintf("Market day failed: %v", err))}
		return
	}

	lines := []string{m.styles.StatusGood.Render(fmt.Sprintf("Vendors stocked (%d):", len(picks)))}
	for i, lot := range picks {
		lines = append(lines, fmt.Sprintf("  %d. %s (%.1f L)", i+1, lot.Name, lot.Litres))
	}
	m.dayLog = lines
	m.inventoryList.SetItems(inventoryItems(m.game))
}

// renderLedgerCard renders the markdown card for one lot via glamour.
func (m *Model) renderLedgerCard(item lotItem) string {
	card := fmt.Sprintf("# %s\n\n| | |\n|---|---|\n| Vendor price | %.2f / L |\n| Stock | %.1f L |\n| Lot value | %.2f |\n",
		item.lot.Name, item.price, item.lot.Litres, item.price*item.lot.Litres)
	if p, ok := m.game.Catalog().Get(item.lot.Name); ok {
		card += fmt.Sprintf("\nCategory: **%s**\n", p.Category)
	}

	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(card); err == nil {
			return rendered
		}
	}
	return card
}

func (m *Model) updateLayout() {
	listWidth := m.width / 2
	detailWidth := m.width - listWidth - 6
	bodyHeight := m.height - len(m.dayLog) - 6
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	m.inventoryList.SetSize(listWidth, bodyHeight)
	m.detailView.Width = detailWidth
	m.detailView.Height = bodyHeight
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Opening the market..."
	}

	listBorder := m.styles.BorderBlurred
	detailBorder := m.styles.BorderBlurred
	if m.focusOnDetail {
		detailBorder = m.styles.BorderFocused
	} else {
		listBorder = m.styles.BorderFocused
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listBorder.Render(m.inventoryList.View()),
		detailBorder.Render(m.detailView.View()),
	)

	help := strings.Join([]string{
		m.styles.HelpKey.Render("enter") + m.styles.HelpDesc.Render(" ledger card"),
		m.styles.HelpKey.Render("d") + m.styles.HelpDesc.Render(" run market day"),
		m.styles.HelpKey.Render("tab") + m.styles.HelpDesc.Render(" switch pane"),
		m.styles.HelpKey.Render("q") + m.styles.HelpDesc.Render(" quit"),
	}, "  ")

	sections := []string{m.styles.Title.Render("Brewtrade Market"), body}
	sections = append(sections, m.dayLog...)
	sections = append(sections, help)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// runMarketApp starts the Bubble Tea application
func runMarketApp(game *Game, config *Config) error {
	model := InitialModel(game, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
