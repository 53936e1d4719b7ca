package overlays

import (
	"fmt"
	"strings"

	"coolbeans/pkg/common"
	"coolbeans/pkg/gui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// dialogTextWidth is the wrap width of the modal body
const dialogTextWidth = 40

// ConfirmModal asks the user to confirm a bean order
type ConfirmModal struct {
	width  int
	height int
	beans  int
	keyMap *common.GlobalKeyMap
}

// OrderConfirmedMsg is sent when the order is confirmed
type OrderConfirmedMsg struct {
	Beans int
}

// OrderCancelledMsg is sent when the order is cancelled
type OrderCancelledMsg struct{}

// NewConfirmModal creates a confirmation dialog for an order of beans
func NewConfirmModal(beans int, keyMap *common.GlobalKeyMap) *ConfirmModal {
	return &ConfirmModal{
		beans:  beans,
		keyMap: keyMap,
	}
}

// Beans returns the bean count being confirmed
func (d *ConfirmModal) Beans() int {
	return d.beans
}

// SetSize sets the dialog dimensions
func (d *ConfirmModal) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Init initializes the dialog
func (d *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update handles tea.Msg updates
func (d *ConfirmModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, d.keyMap.Confirm):
			beans := d.beans
			return d, func() tea.Msg {
				return OrderConfirmedMsg{Beans: beans}
			}
		case key.Matches(msg, d.keyMap.Cancel):
			return d, func() tea.Msg {
				return OrderCancelledMsg{}
			}
		}
	}
	return d, nil
}

// View renders the confirmation dialog centered in its area
func (d *ConfirmModal) View() string {
	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BeanColor)).
		Padding(1).
		Background(lipgloss.Color(theme.DialogBg)).
		Foreground(lipgloss.Color(theme.TextDescription))

	headingStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.BeanColor)).
		Bold(true)

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.TextMuted))

	buttonStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.ButtonBg)).
		Foreground(lipgloss.Color(theme.TextPrimary)).
		Padding(0, 2).
		Margin(0, 1)

	var content strings.Builder

	content.WriteString(headingStyle.Render("Confirm Order"))
	content.WriteString("\n\n")

	body := fmt.Sprintf("Ship %d cool beans? They will arrive chilled and slightly judgmental.", d.beans)
	content.WriteString(wordwrap.String(body, dialogTextWidth))
	content.WriteString("\n")
	content.WriteString(infoStyle.Render("No refunds on cool beans."))
	content.WriteString("\n\n")

	confirmButton := buttonStyle.Background(lipgloss.Color(theme.SuccessStatus)).
		Foreground(lipgloss.Color(theme.DialogBg)).
		Render("[Y] Order")
	cancelButton := buttonStyle.Render("[N] Cancel")
	content.WriteString(confirmButton + cancelButton)

	dialog := dialogStyle.Render(content.String())
	if d.width == 0 || d.height == 0 {
		return dialog
	}

	return lipgloss.Place(
		d.width,
		d.height,
		lipgloss.Center,
		lipgloss.Center,
		dialog,
	)
}
