package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"smartreview/internal/report"
)

// model holds the TUI state: the ranked attention queue and the selection.
type model struct {
	queue       []report.PriorityReview
	selectedIdx int
	width       int
	height      int
	quitting    bool
}

var (
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // score >= 80
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true) // score >= 60
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	urgentBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("URGENT")
)

// InitialModel returns the initial state of the TUI over a priority queue.
func InitialModel(queue []report.PriorityReview) model {
	return model{queue: queue}
}

// Init is the first command to run; nothing to do up front.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.selectedIdx > 0 {
				m.selectedIdx--
			}
		case "down", "j":
			if m.selectedIdx < len(m.queue)-1 {
				m.selectedIdx++
			}
		}
	}
	return m, nil
}

// View renders the queue on the left and the selected review on the right.
func (m model) View() string {
	if m.quitting {
		return "Quitting...\n"
	}

	docStyle := lipgloss.NewStyle().Margin(1, 2)
	paneWidth := m.width/2 - 5
	if paneWidth < 20 {
		paneWidth = 20
	}
	listStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(paneWidth)
	detailStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(paneWidth)

	listContent := "Attention Queue\n\n"
	if len(m.queue) == 0 {
		listContent += "No reviews to triage."
	} else {
		for i, pr := range m.queue {
			cursor := " "
			if i == m.selectedIdx {
				cursor = ">"
			}
			line := fmt.Sprintf("%s %s  %s", cursor, scoreLabel(pr.Score), truncate(pr.Text, paneWidth-14))
			listContent += line + "\n"
		}
	}

	detailContent := "Review Detail\n\n"
	if len(m.queue) == 0 || m.selectedIdx >= len(m.queue) {
		detailContent += "Nothing selected."
	} else {
		pr := m.queue[m.selectedIdx]
		detailContent += fmt.Sprintf("Priority:   %s\n", scoreLabel(pr.Score))
		if pr.Urgent {
			detailContent += fmt.Sprintf("Status:     %s\n", urgentBadge)
		}
		detailContent += fmt.Sprintf("Sentiment:  %s (%.2f)\n", pr.Sentiment, pr.Confidence)
		detailContent += fmt.Sprintf("Issues:     %s\n", pr.Issues)
		if customer := pr.Fields["customer_id"]; customer != "" {
			detailContent += fmt.Sprintf("Customer:   %s\n", customer)
		}
		if product := pr.Fields["product"]; product != "" {
			detailContent += fmt.Sprintf("Product:    %s\n", product)
		}
		detailContent += fmt.Sprintf("\n%s", pr.Text)
	}

	leftPane := listStyle.Render(listContent)
	rightPane := detailStyle.Render(detailContent)
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	help := "\n\n[↑/k] Up | [↓/j] Down | [q] Quit"
	return docStyle.Render(mainContent + help)
}

// scoreLabel color-codes a priority score the way the report does: red at 80
// and above, yellow at 60, green below.
func scoreLabel(score int) string {
	label := fmt.Sprintf("%3d/100", score)
	switch {
	case score >= 80:
		return criticalStyle.Render(label)
	case score >= 60:
		return warningStyle.Render(label)
	default:
		return okStyle.Render(label)
	}
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// StartTUI runs the triage dashboard over the given queue.
func StartTUI(queue []report.PriorityReview) {
	p := tea.NewProgram(InitialModel(queue), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
