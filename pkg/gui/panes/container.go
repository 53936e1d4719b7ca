package panes

import (
	"fmt"
	"strings"

	"coolbeans/pkg/config"
	"coolbeans/pkg/gui/icons"
	"coolbeans/pkg/gui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ContainerPane is the main storefront area: it mirrors the animated title,
// holds the bean count and tallies confirmed orders.
type ContainerPane struct {
	*BasePane
	title   string // latest rendered window title
	beans   int
	orders  int
	ordered int // beans across all confirmed orders
	running bool
}

// NewContainerPane creates the container with an initial bean count
func NewContainerPane(beans int) *ContainerPane {
	return &ContainerPane{
		BasePane: NewBasePane("Cool Beans"),
		beans:    config.ClampBeans(beans),
	}
}

// SetTitlePreview records the title most recently written to the terminal
func (c *ContainerPane) SetTitlePreview(title string) {
	c.title = title
}

// TitlePreview returns the title most recently written to the terminal
func (c *ContainerPane) TitlePreview() string {
	return c.title
}

// SetRunning records whether the title animation is active
func (c *ContainerPane) SetRunning(running bool) {
	c.running = running
}

// Beans returns the current bean count
func (c *ContainerPane) Beans() int {
	return c.beans
}

// AdjustBeans changes the bean count by delta within the allowed range and
// reports whether it changed.
func (c *ContainerPane) AdjustBeans(delta int) bool {
	next := config.ClampBeans(c.beans + delta)
	if next == c.beans {
		return false
	}
	c.beans = next
	return true
}

// RecordOrder tallies a confirmed order
func (c *ContainerPane) RecordOrder(beans int) {
	c.orders++
	c.ordered += beans
}

// Orders returns the number of confirmed orders and the beans they cover
func (c *ContainerPane) Orders() (orders, beans int) {
	return c.orders, c.ordered
}

var (
	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.BorderMuted)).
			Padding(1, 2)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextPrimary)).
			Bold(true)

	previewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.IceColor)).
			Bold(true)

	beanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.BeanColor)).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextMuted))
)

// contentWidth is the width left inside the border and padding
func (c *ContainerPane) contentWidth() int {
	w := c.GetWidth() - containerStyle.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

// View renders the container
func (c *ContainerPane) View() string {
	width := c.contentWidth()

	preview := c.title
	if preview == "" {
		preview = "waiting for first tick"
	}
	// The title may hold wide glyphs; truncate by cell width, not bytes.
	preview = runewidth.Truncate(preview, width, "…")

	status := mutedStyle.Render(icons.Paused.Get() + " blink paused")
	if c.running {
		status = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.SuccessStatus)).
			Render(icons.Running.Get() + " blinking")
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(c.GetTitle()))
	b.WriteString("\n\n")
	b.WriteString(previewStyle.Render(preview))
	b.WriteString("\n")
	b.WriteString(status)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s", icons.Bean.Get(), beanStyle.Render(fmt.Sprintf("%d beans", c.beans))))
	b.WriteString("\n")
	if c.orders > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d order(s), %d beans shipped", c.orders, c.ordered)))
	} else {
		b.WriteString(mutedStyle.Render("no orders yet"))
	}

	style := containerStyle
	if c.GetWidth() > 0 {
		style = style.Width(c.GetWidth() - containerStyle.GetHorizontalBorderSize())
	}
	return style.Render(b.String())
}
