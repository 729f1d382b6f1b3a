package motion

// Region applies scroll-linked displacement to one block of content. Positive
// speeds move with the scroll direction, negative speeds against it.
type Region struct {
	Speed float64

	offset  float64
	release func()
}

// NewRegion creates an unmounted region.
func NewRegion(speed float64) *Region {
	return &Region{Speed: speed}
}

// Mount subscribes the region to s. Mounting an already mounted region
// releases the previous subscription first.
func (r *Region) Mount(s *Signal) {
	r.Unmount()
	r.release = s.Subscribe(r.apply)
}

// Unmount releases the subscription and resets the displacement.
func (r *Region) Unmount() {
	if r.release != nil {
		r.release()
		r.release = nil
	}
	r.offset = 0
}

// Mounted reports whether the region is subscribed to a signal.
func (r *Region) Mounted() bool {
	return r.release != nil
}

// Offset returns the current displacement. Unmounted regions report zero.
func (r *Region) Offset() float64 {
	if r == nil || r.release == nil {
		return 0
	}
	return r.offset
}

// Shift returns the displacement as whole cells bounded by limit.
func (r *Region) Shift(limit int) int {
	return Clamp(r.Offset(), limit)
}

func (r *Region) apply(p Position) {
	r.offset = Displacement(float64(p.Offset), r.Speed)
}
