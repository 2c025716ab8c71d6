package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/younwookim/unfair/internal/application/system"
)

// Version is written into every recording. Only the major part is checked
// on load.
const Version = "2.0"

// ErrVersion is returned for recordings from an incompatible format
var ErrVersion = errors.New("unsupported replay version")

// ReadReplay decodes and validates a recording
func ReadReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if major(data.Version) != major(Version) {
		return nil, fmt.Errorf("%w: %q", ErrVersion, data.Version)
	}
	if data.Stage < 1 {
		return nil, errors.New("replay has no stage")
	}
	return &data, nil
}

// LoadReplay reads a recording from disk
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadReplay(file)
}

func major(v string) string {
	m, _, _ := strings.Cut(v, ".")
	return m
}

// Replayer walks the frames of one recording in order
type Replayer struct {
	frames []FrameInput
	next   int
}

// NewReplayer starts at the first frame
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{frames: data.Frames}
}

// Next returns the next frame, or false once the recording is exhausted
func (r *Replayer) Next() (FrameInput, bool) {
	if r.next >= len(r.frames) {
		return FrameInput{}, false
	}
	fi := r.frames[r.next]
	r.next++
	return fi, true
}

// Remaining is the number of frames not yet returned
func (r *Replayer) Remaining() int { return len(r.frames) - r.next }

// Lives counts the attempts in the recording: the first one plus one per
// retry marker
func (r *Replayer) Lives() int {
	if len(r.frames) == 0 {
		return 0
	}
	n := 1
	for _, fi := range r.frames {
		if fi.RT {
			n++
		}
	}
	return n
}

// Rewind goes back to the first frame
func (r *Replayer) Rewind() { r.next = 0 }

// Uniform builds a recording where every frame carries the same intent.
// Used to script headless runs.
func Uniform(frames, stage int, in system.Intent) ReplayData {
	data := ReplayData{
		Version: Version,
		Seed:    12345,
		Stage:   stage,
		Frames:  make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i, L: in.Left, R: in.Right, J: in.JumpHeld}
	}
	return data
}
