package utils

// Wire protocol direction strings accepted from clients.
const (
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionNone  = "none"
	DirectionStart = "start"
)

// DirectionFromString normalizes a client direction string, mapping the
// browser arrow-key names to the wire directions. Unknown strings map to "".
func DirectionFromString(direction string) string {
	switch direction {
	case DirectionUp, "ArrowUp":
		return DirectionUp
	case DirectionDown, "ArrowDown":
		return DirectionDown
	case DirectionNone:
		return DirectionNone
	case DirectionStart:
		return DirectionStart
	}
	return ""
}

// Clamp forces v into the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
