package playing

import "github.com/younwookim/unfair/internal/domain/geom"

// Menu geometry in screen pixels
const (
	fakeStartW = 200
	fakeStartH = 60
	realStartW = 20

	stageButtonW   = 180
	stageButtonH   = 80
	stageButtonGap = 40
	stagesPerRow   = 3
	stageRowTop    = 240
)

// titleLayout places the decoy button in the middle of the screen and the
// real one in the bottom right corner
type titleLayout struct {
	fake  geom.Box
	start geom.Box
}

func newTitleLayout(screenW, screenH float64) titleLayout {
	return titleLayout{
		fake:  geom.NewBox(screenW/2-fakeStartW/2, screenH/2+50, fakeStartW, fakeStartH),
		start: geom.NewBox(screenW-realStartW, screenH-realStartW, realStartW, realStartW),
	}
}

// stageButtons lays out n stage buttons in centred rows
func stageButtons(n int, screenW float64) []geom.Box {
	boxes := make([]geom.Box, n)
	for i := range boxes {
		row, col := i/stagesPerRow, i%stagesPerRow
		inRow := stagesPerRow
		if rest := n - row*stagesPerRow; rest < inRow {
			inRow = rest
		}
		rowW := float64(inRow*stageButtonW + (inRow-1)*stageButtonGap)
		x := screenW/2 - rowW/2 + float64(col*(stageButtonW+stageButtonGap))
		y := float64(stageRowTop + row*(stageButtonH+stageButtonGap))
		boxes[i] = geom.NewBox(x, y, stageButtonW, stageButtonH)
	}
	return boxes
}

// buttonAt returns the index of the box containing p, or -1
func buttonAt(boxes []geom.Box, p geom.Vec) int {
	for i, b := range boxes {
		if b.ContainsPoint(p) {
			return i
		}
	}
	return -1
}
