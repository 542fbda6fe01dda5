package pie

import "math"

// Arrange turns the weights computed by Weigh into cell sizes, rendered
// sizes, and positions on a ring of the given radius around center.
//
// The closest item is placed first, pulled towards the cursor angle in
// proportion to its own angular share. The remaining items are then placed
// by walking left and right from it at the same time, each step advancing by
// half of the previous cell plus half of the next one, so neighbours abut.
func Arrange(items []*Item, f Frame, center Point, radius float64) {
	n := len(items)
	if n == 0 {
		return
	}
	if radius <= 0 || f.TotalWeight <= 0 || f.Closest < 0 || f.Closest >= n {
		for _, item := range items {
			item.Cell = FullCircle / float64(n)
			item.Size = 0
			item.Position = center
		}
		return
	}

	circumference := math.Pi * (radius * 2)
	radiansPerPixel := FullCircle / circumference
	sizeUnit := circumference / f.TotalWeight

	for _, item := range items {
		item.Size = sizeUnit * item.Weight
		item.Cell = item.Size * radiansPerPixel
	}

	// scale icons within their cells
	if maxSize := sizeUnit * f.MaxWeight; maxSize > f.MaxIconSize {
		scale := f.MaxIconSize / maxSize
		for _, item := range items {
			item.Size *= scale
		}
	}

	closest := items[f.Closest]
	difference := AngularDifference(f.CursorAngle, f.ClosestAngle)
	angle := NormalizeAngle(f.CursorAngle - closest.Cell/f.CellSize*difference)
	closest.Position = center.Polar(radius, angle)

	leftAngle, rightAngle := angle, angle
	left, right := f.Closest, f.Closest
	previousLeft, previousRight := f.Closest, f.Closest
	for {
		if left--; left < 0 {
			left = n - 1
		}
		// odd number of items
		if right == left {
			break
		}
		if right++; right >= n {
			right = 0
		}

		leftAngle = NormalizeAngle(leftAngle - (.5*items[previousLeft].Cell + .5*items[left].Cell))
		items[left].Position = center.Polar(radius, leftAngle)

		// even number of items
		if left == right {
			break
		}

		rightAngle = NormalizeAngle(rightAngle + (.5*items[previousRight].Cell + .5*items[right].Cell))
		items[right].Position = center.Polar(radius, rightAngle)

		previousLeft, previousRight = left, right
	}
}
