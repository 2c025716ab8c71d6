package state

// RunState represents the phase of a run
type RunState int

const (
	StateTitle RunState = iota
	StateStageSelect
	StatePlaying
	StateGameOver
	StateWin
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StateStageSelect:
		return "StageSelect"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Simulating reports whether ticks advance the world in this state
func (s RunState) Simulating() bool {
	return s == StatePlaying
}
