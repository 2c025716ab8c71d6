package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/unfair/internal/domain/geom"
	"github.com/younwookim/unfair/internal/infrastructure/config"
)

func TestTouchIntent(t *testing.T) {
	zones := config.DefaultPhysics().Input

	tests := []struct {
		name    string
		touches []geom.Vec
		want    Intent
	}{
		{"no touches", nil, Intent{}},
		{"far left moves left", []geom.Vec{{X: 10, Y: 500}}, Intent{Left: true}},
		{"just left of the split", []geom.Vec{{X: 179, Y: 500}}, Intent{Left: true}},
		{"the split moves right", []geom.Vec{{X: 180, Y: 500}}, Intent{Right: true}},
		{"right half jumps", []geom.Vec{{X: 700, Y: 100}}, Intent{JumpHeld: true}},
		{"move zone edge jumps", []geom.Vec{{X: 360, Y: 100}}, Intent{JumpHeld: true}},
		{"move and jump together", []geom.Vec{{X: 300, Y: 500}, {X: 600, Y: 500}}, Intent{Right: true, JumpHeld: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TouchIntent(tt.touches, 800, zones))
		})
	}
}
