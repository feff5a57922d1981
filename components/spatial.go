package components

// Position is the world position of an effect entity.
type Position struct {
	X, Y float64
}

// Velocity is the velocity of an effect entity in units per second.
type Velocity struct {
	X, Y float64
}

// Life tracks the remaining lifetime of an effect entity.
type Life struct {
	Remaining float64 // seconds
	Total     float64 // seconds at spawn
}

// Ratio returns the fraction of life left in [0, 1].
func (l *Life) Ratio() float64 {
	if l.Total <= 0 {
		return 0
	}
	r := l.Remaining / l.Total
	if r < 0 {
		return 0
	}
	return r
}
