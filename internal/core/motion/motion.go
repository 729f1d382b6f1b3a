// Package motion derives scroll-linked displacement for parallax regions.
//
// A [Signal] carries the current scroll position of the scrolling surface. A
// [Region] subscribes to it while mounted and keeps the displacement for its
// speed coefficient. Nothing here is persisted; every value is recomputed from
// the latest position.
package motion

import (
	"math"
)

// Position is a sample of the scrolling surface. Offset is the scroll position
// in lines; Width and Height are the visible dimensions at sampling time.
type Position struct {
	Offset int
	Width  int
	Height int
}

// Displacement returns scroll*speed. At scroll position zero the result is
// exactly zero for every speed, including non-finite ones.
func Displacement(scroll, speed float64) float64 {
	if scroll == 0 || math.IsNaN(speed) || math.IsNaN(scroll) {
		return 0
	}
	d := scroll * speed
	if math.IsInf(d, 0) {
		return 0
	}
	return d
}

// Clamp rounds a displacement to whole cells and bounds it to [-limit, limit].
// A non-positive limit disables motion.
func Clamp(d float64, limit int) int {
	if limit <= 0 {
		return 0
	}
	n := int(math.Round(d))
	return max(-limit, min(n, limit))
}
