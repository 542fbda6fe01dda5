package pie

import "math"

// None marks the absence of a selected item.
const None = -1

// Point is a position in pointer space.
type Point struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the distance from p to q.
func (p Point) Dist(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d.X, d.Y)
}

// Polar returns the point at radius r and angle a around p.
func (p Point) Polar(r, a float64) Point {
	return Point{X: p.X + r*math.Cos(a), Y: p.Y + r*math.Sin(a)}
}

// Presenter draws a single item. The layout engine only ever positions,
// shows, and hides it.
type Presenter interface {
	SetBounds(center Point, size float64)
	Show()
	Hide()
}

// Action runs when an item is committed. Returning true reports that the
// action handled the event and the menu should stay open.
type Action func(*Menu) bool

// Item is one slice of the ring. Weight, Cell, Size, and Position are
// recomputed on every tick; Label, Action, and Presenter are fixed.
type Item struct {
	Label     string
	Action    Action
	Presenter Presenter

	Weight   float64
	Cell     float64 // angular share in radians
	Size     float64 // rendered side length, capped
	Position Point
}

// NewItem constructs an item with the given label, action, and presenter.
func NewItem(label string, action Action, presenter Presenter) *Item {
	return &Item{Label: label, Action: action, Presenter: presenter}
}

// execute runs the action and reports whether it handled the commit.
func (i *Item) execute(m *Menu) bool {
	if i == nil || i.Action == nil {
		return false
	}
	return i.Action(m)
}

func (i *Item) draw() {
	if i.Presenter == nil {
		return
	}
	i.Presenter.SetBounds(i.Position, i.Size)
	i.Presenter.Show()
}

func (i *Item) hide() {
	if i.Presenter == nil {
		return
	}
	i.Presenter.Hide()
}
