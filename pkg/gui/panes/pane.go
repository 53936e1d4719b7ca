// Package panes holds the content areas of the storefront.
package panes

// BasePane provides the size and title bookkeeping shared by panes
type BasePane struct {
	width  int
	height int
	title  string
}

// NewBasePane creates a new BasePane with the given title
func NewBasePane(title string) *BasePane {
	return &BasePane{title: title}
}

// SetSize updates the pane dimensions
func (p *BasePane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// GetWidth returns the current width
func (p *BasePane) GetWidth() int {
	return p.width
}

// GetHeight returns the current height
func (p *BasePane) GetHeight() int {
	return p.height
}

// GetTitle returns the pane's title
func (p *BasePane) GetTitle() string {
	return p.title
}
