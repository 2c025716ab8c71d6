package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	block := NewBox(0, 500, 200, 100)

	tests := []struct {
		name  string
		actor Box
		want  Side
	}{
		{"falling onto top face", NewBox(50, 480.6, 20, 20), SideBottom},
		{"resting flush on top", NewBox(50, 480, 20, 20), SideBottom},
		{"hitting underside", NewBox(50, 599.5, 20, 20), SideTop},
		{"pushing into left wall", NewBox(-19, 540, 20, 20), SideRight},
		{"pushing into right wall", NewBox(199, 540, 20, 20), SideLeft},
		{"far above", NewBox(50, 400, 20, 20), SideNone},
		{"far right", NewBox(300, 540, 20, 20), SideNone},
		{"touching corner counts", NewBox(200, 480, 20, 20), SideBottom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.actor, block))
		})
	}
}

func TestClassify_EqualPenetrationPrefersVertical(t *testing.T) {
	// 2px deep on both axes into the top-left corner
	block := NewBox(100, 100, 20, 20)
	actor := NewBox(82, 82, 20, 20)

	assert.Equal(t, SideBottom, Classify(actor, block))

	actor = NewBox(118, 118, 20, 20)
	assert.Equal(t, SideTop, Classify(actor, block))
}

func TestSnap(t *testing.T) {
	block := NewBox(0, 500, 200, 100)
	actor := NewBox(50, 485, 20, 20)

	assert.Equal(t, Vec{X: 50, Y: 480}, Snap(actor, block, SideBottom))
	assert.Equal(t, Vec{X: 50, Y: 600}, Snap(actor, block, SideTop))
	assert.Equal(t, Vec{X: -20, Y: 485}, Snap(actor, block, SideRight))
	assert.Equal(t, Vec{X: 200, Y: 485}, Snap(actor, block, SideLeft))
}

func TestSnapResolvesPenetration(t *testing.T) {
	block := NewBox(300, 300, 60, 40)
	actors := []Box{
		NewBox(290, 290, 20, 20),
		NewBox(345, 331, 20, 20),
		NewBox(285, 315, 20, 20),
		NewBox(355, 312, 20, 20),
	}

	for _, a := range actors {
		side := Classify(a, block)
		if !assert.NotEqual(t, SideNone, side) {
			continue
		}
		p := Snap(a, block, side)
		snapped := NewBox(p.X, p.Y, a.W, a.H)
		assert.False(t, snapped.Overlaps(block), "side %s left the boxes overlapping", side)
	}
}

func TestLandingAndHeadSide(t *testing.T) {
	assert.Equal(t, SideBottom, LandingSide(1))
	assert.Equal(t, SideTop, HeadSide(1))
	assert.Equal(t, SideTop, LandingSide(-1))
	assert.Equal(t, SideBottom, HeadSide(-1))
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "left", SideLeft.String())
	assert.Equal(t, "bottom", SideBottom.String())
	assert.Equal(t, "none", Side(42).String())
}
