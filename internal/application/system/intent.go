package system

// Intent is the merged input for one tick. Every raw source (keyboard,
// touch, replay) is reduced to these three booleans before it reaches the
// simulation.
type Intent struct {
	Left     bool `json:"l,omitempty"`
	Right    bool `json:"r,omitempty"`
	JumpHeld bool `json:"j,omitempty"`
}

// Merge ORs two intents together
func (i Intent) Merge(o Intent) Intent {
	return Intent{
		Left:     i.Left || o.Left,
		Right:    i.Right || o.Right,
		JumpHeld: i.JumpHeld || o.JumpHeld,
	}
}

// Direction returns -1, 0 or +1. Left wins when both are held.
func (i Intent) Direction() float64 {
	switch {
	case i.Left:
		return -1
	case i.Right:
		return 1
	default:
		return 0
	}
}
