package ui

import (
	"math"

	"github.com/atomicstack/tmux-pie-menu/internal/pie"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// minSpriteWidth keeps far-away slices legible at terminal resolution.
const minSpriteWidth = 4

// sprite presents one ring entry as a single row of text. The pie layout
// only ever positions, shows, and hides it; the view reads it back.
type sprite struct {
	label   string
	submenu bool
	center  pie.Point
	size    float64
	visible bool
}

func newSprite(label string, submenu bool) *sprite {
	return &sprite{label: label, submenu: submenu}
}

// SetBounds implements pie.Presenter.
func (s *sprite) SetBounds(center pie.Point, size float64) {
	s.center = center
	s.size = size
}

// Show implements pie.Presenter.
func (s *sprite) Show() { s.visible = true }

// Hide implements pie.Presenter.
func (s *sprite) Hide() { s.visible = false }

// width is the side of the sprite's square rounded to an even cell count so
// it centers on the slot.
func (s *sprite) width() int {
	w := 2 * int(math.Round(s.size/2))
	if w < minSpriteWidth {
		w = minSpriteWidth
	}
	return w
}

// text returns the label fitted to the sprite width.
func (s *sprite) text() string {
	w := s.width()
	label := s.label
	if xansi.StringWidth(label) > w {
		label = xansi.Truncate(label, w, "…")
	}
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, label)
}

// cell returns the canvas column and row the sprite text starts at.
func (s *sprite) cell() (int, int) {
	col := int(math.Round(s.center.X)) - s.width()/2
	row := int(math.Round(s.center.Y / 2))
	return col, row
}

func (s *sprite) style(hot bool) *lipgloss.Style {
	switch {
	case hot:
		return styles.HotItem
	case s.submenu:
		return styles.Submenu
	}
	return styles.Item
}
