package common

import (
	"strings"

	"coolbeans/pkg/gui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
)

// Footer manages the bottom footer bar with keyboard shortcuts
type Footer struct {
	width      int
	height     int
	dialogOpen bool
	keyMap     *GlobalKeyMap
}

// Styling for footer elements
var (
	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription)).
			Bold(true)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription))

	footerSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.SeparatorColor))

	footerStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// NewFooter creates a new footer component
func NewFooter(keyMap *GlobalKeyMap) *Footer {
	return &Footer{
		height: 1,
		keyMap: keyMap,
	}
}

// SetSize updates the footer dimensions
func (f *Footer) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetDialogOpen switches between store and dialog shortcuts
func (f *Footer) SetDialogOpen(open bool) {
	f.dialogOpen = open
}

// Bindings returns the shortcuts for the current context
func (f *Footer) Bindings() []key.Binding {
	if f.keyMap == nil {
		return nil
	}
	if f.dialogOpen {
		return f.keyMap.DialogBindings()
	}
	return f.keyMap.StoreBindings()
}

// View renders the footer
func (f *Footer) View() string {
	if f.width == 0 {
		return ""
	}

	bindings := f.Bindings()
	if len(bindings) == 0 {
		return ""
	}

	separator := footerSeparatorStyle.Render(" • ")
	var parts []string
	for _, b := range bindings {
		help := b.Help()
		part := footerKeyStyle.Render(help.Key) + " " + footerDescStyle.Render(help.Desc)

		// Drop trailing shortcuts rather than wrapping onto a second line.
		candidate := strings.Join(append(parts, part), separator)
		if ansi.PrintableRuneWidth(candidate)+footerStyle.GetHorizontalPadding() > f.width {
			break
		}
		parts = append(parts, part)
	}

	return lipgloss.Place(
		f.width,
		f.height,
		lipgloss.Center,
		lipgloss.Center,
		footerStyle.Render(strings.Join(parts, separator)),
	)
}
