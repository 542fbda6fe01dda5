package pie

import "math"

// Frame captures the intermediate results of one weighting pass. Arrange
// consumes it to size and position the items.
type Frame struct {
	CursorAngle   float64
	CursorRadius  float64
	CellSize      float64 // nominal angular width per item
	InfieldRadius float64
	NearCenter    bool
	Falloff       float64 // cursor radius over infield radius, only meaningful near center
	MaxIconSize   float64
	Exponent      float64
	MaxWeight     float64
	TotalWeight   float64
	Closest       int
	ClosestAngle  float64
	Selected      int
}

// Weigh assigns every item a proximity weight for a cursor at (dx, dy)
// relative to the menu center and picks the selected item. Items are laid
// out at slot angles twist + i*cellSize.
func Weigh(items []*Item, dx, dy, radius, twist float64) Frame {
	f := Frame{Closest: None, Selected: None}
	n := len(items)
	if n == 0 || radius <= 0 {
		return f
	}

	circumference := math.Pi * (radius * 2)
	radiansPerPixel := FullCircle / circumference

	f.CursorAngle = math.Atan2(dy, dx)
	f.CursorRadius = math.Sqrt(dx*dx + dy*dy)
	f.CellSize = FullCircle / float64(n)
	f.InfieldRadius = radius / 2
	f.MaxIconSize = .8 * radius

	if f.CursorRadius < f.InfieldRadius {
		f.NearCenter = true
		f.Falloff = f.CursorRadius / f.InfieldRadius
		if b := (circumference / float64(n)) * .75; b < f.MaxIconSize {
			f.MaxIconSize = b + (f.MaxIconSize-b)*f.Falloff
		}
	}

	f.Exponent = (f.MaxIconSize * radiansPerPixel) / f.CellSize
	f.MaxWeight = HalfPi + math.Pow(math.Pi, f.Exponent)

	closestDistance := FullCircle
	a := NormalizeAngle(twist)
	for i, item := range items {
		d := math.Abs(AngularDifference(a, f.CursorAngle))
		if d < closestDistance {
			closestDistance = d
			f.Closest = i
			f.ClosestAngle = a
		}
		if f.NearCenter {
			d *= f.Falloff
		}
		item.Weight = HalfPi + math.Pow(math.Pi-d, f.Exponent)
		f.TotalWeight += item.Weight

		if a += f.CellSize; a > math.Pi {
			a -= FullCircle
		}
	}

	if !f.NearCenter {
		f.Selected = f.Closest
	}
	return f
}
