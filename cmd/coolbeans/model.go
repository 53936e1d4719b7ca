package main

import (
	"coolbeans/internal/debug"
	"coolbeans/pkg/blink"
	"coolbeans/pkg/common"
	"coolbeans/pkg/gui/components"
	"coolbeans/pkg/gui/overlays"
	"coolbeans/pkg/gui/panes"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Rows reserved below the container
const footerHeight = 1

type model struct {
	blinker     *blink.Blinker
	keys        *common.GlobalKeyMap
	container   *panes.ContainerPane
	footer      *common.Footer
	confirm     *overlays.ConfirmModal // nil unless showConfirm
	showConfirm bool
	lastTitle   uint64 // sequence of the newest TitleMsg applied
	width       int
	height      int
	ready       bool
}

// blinkStateMsg reports the animation state after a start or stop
type blinkStateMsg struct {
	running bool
}

func newModel(b *blink.Blinker, beans int) model {
	keys := common.GlobalKeys
	return model{
		blinker:   b,
		keys:      keys,
		container: panes.NewContainerPane(beans),
		footer:    common.NewFooter(keys),
	}
}

func (m model) Init() tea.Cmd {
	b := m.blinker
	return func() tea.Msg {
		b.Start()
		debug.DebugLog("title animation started, interval %s", b.Interval())
		return blinkStateMsg{running: true}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.container.SetSize(containerWidth(msg.Width), 0)
		m.footer.SetSize(msg.Width, footerHeight)
		if m.confirm != nil {
			m.confirm.SetSize(msg.Width, msg.Height-footerHeight)
		}
		return m, nil

	case components.TitleMsg:
		// Sends race each other; an older title must not overwrite a newer one.
		if msg.Seq <= m.lastTitle {
			return m, nil
		}
		m.lastTitle = msg.Seq
		if !m.blinker.Running() {
			return m, nil
		}
		m.container.SetTitlePreview(msg.Title)
		return m, components.SetWindowTitle(msg.Title)

	case blinkStateMsg:
		m.container.SetRunning(msg.running)
		return m, nil

	case overlays.OrderConfirmedMsg:
		m.container.RecordOrder(msg.Beans)
		debug.DebugLog("order confirmed: %d beans", msg.Beans)
		m.closeConfirm()
		return m, nil

	case overlays.OrderCancelledMsg:
		debug.DebugLog("order cancelled")
		m.closeConfirm()
		return m, nil

	case tea.KeyMsg:
		if m.showConfirm {
			_, cmd := m.confirm.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.blinker.Stop()
		return m, tea.Sequence(components.SetWindowTitle(m.blinker.Title()), tea.Quit)

	case key.Matches(msg, m.keys.ToggleBlink):
		if m.blinker.Running() {
			m.blinker.Stop()
			m.container.SetRunning(false)
			m.container.SetTitlePreview(m.blinker.Title())
			debug.DebugLog("title animation stopped at cursor %d", m.blinker.Cursor())
			return m, components.SetWindowTitle(m.blinker.Title())
		}
		m.blinker.Start()
		m.container.SetRunning(true)
		debug.DebugLog("title animation resumed at cursor %d", m.blinker.Cursor())
		return m, nil

	case key.Matches(msg, m.keys.MoreBeans):
		m.container.AdjustBeans(1)
		return m, nil

	case key.Matches(msg, m.keys.FewerBeans):
		m.container.AdjustBeans(-1)
		return m, nil

	case key.Matches(msg, m.keys.Order):
		m.confirm = overlays.NewConfirmModal(m.container.Beans(), m.keys)
		m.confirm.SetSize(m.width, m.height-footerHeight)
		m.showConfirm = true
		m.footer.SetDialogOpen(true)
		return m, nil
	}

	return m, nil
}

func (m *model) closeConfirm() {
	m.showConfirm = false
	m.confirm = nil
	m.footer.SetDialogOpen(false)
}

// containerWidth keeps the container readable on wide terminals
func containerWidth(termWidth int) int {
	const maxWidth = 60
	w := termWidth - 4
	if w > maxWidth {
		return maxWidth
	}
	if w < 10 {
		return 10
	}
	return w
}

func (m model) View() string {
	if !m.ready {
		return ""
	}

	bodyHeight := m.height - footerHeight
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	var body string
	if m.showConfirm && m.confirm != nil {
		body = m.confirm.View()
	} else {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.container.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.footer.View())
}
