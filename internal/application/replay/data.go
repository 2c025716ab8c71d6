package replay

import "github.com/younwookim/unfair/internal/application/system"

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump held
	RT bool `json:"rt,omitempty"` // Retry pressed on the game-over screen before this tick
}

// Intent converts the frame back into simulation input
func (f FrameInput) Intent() system.Intent {
	return system.Intent{Left: f.L, Right: f.R, JumpHeld: f.J}
}

// ReplayData contains all data needed to replay a play session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     int          `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
