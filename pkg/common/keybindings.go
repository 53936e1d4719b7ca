package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// GlobalKeyMap defines the keybindings of the storefront.
//
// Dialog keys are only consulted while the confirm modal is open; all other
// keys are ignored while it is.
type GlobalKeyMap struct {
	Quit        key.Binding // q, Ctrl+C - quit application
	ToggleBlink key.Binding // space - start/stop the title animation

	MoreBeans  key.Binding // +, = - one more bean
	FewerBeans key.Binding // -, _ - one fewer bean
	Order      key.Binding // Enter - open the confirm modal

	Confirm key.Binding // y, Enter - confirm dialog action
	Cancel  key.Binding // n, Esc - cancel dialog
}

// NewGlobalKeyMap creates a new GlobalKeyMap with default keybindings
func NewGlobalKeyMap() *GlobalKeyMap {
	return &GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleBlink: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "blink on/off"),
		),
		MoreBeans: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more beans"),
		),
		FewerBeans: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer beans"),
		),
		Order: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "order"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel"),
		),
	}
}

// GlobalKeys is the shared key map.
var GlobalKeys = NewGlobalKeyMap()

// StoreBindings are the bindings shown in the footer while no dialog is open.
func (k *GlobalKeyMap) StoreBindings() []key.Binding {
	return []key.Binding{k.Order, k.MoreBeans, k.FewerBeans, k.ToggleBlink, k.Quit}
}

// DialogBindings are the bindings shown in the footer while the modal is open.
func (k *GlobalKeyMap) DialogBindings() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}
