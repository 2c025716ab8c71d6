package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/domain/geom"
)

func broadPhaseFixture() []entity.Entity {
	return []entity.Entity{
		entity.NewStaticBlock("floor", geom.NewBox(0, 500, 400, 100), false),
		entity.NewStaticBlock("far", geom.NewBox(900, 100, 40, 40), false),
		entity.NewTrap("near", geom.NewBox(120, 470, 20, 30)),
	}
}

func TestBroadPhase_Candidates(t *testing.T) {
	entities := broadPhaseFixture()
	b := NewBroadPhase(geom.NewBox(0, 0, 1000, 600), entities)

	tests := []struct {
		name  string
		actor geom.Box
		want  []int
	}{
		{"standing next to the trap", geom.NewBox(100, 480, 20, 20), []int{0, 2}},
		{"next to the far block", geom.NewBox(880, 110, 20, 20), []int{1}},
		{"mid air", geom.NewBox(600, 250, 20, 20), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Candidates(tt.actor, entities)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBroadPhase_FallsBackOutsideGrid(t *testing.T) {
	entities := broadPhaseFixture()
	b := NewBroadPhase(geom.NewBox(0, 0, 1000, 600), entities)

	got := b.Candidates(geom.NewBox(100, 5000, 20, 20), entities)
	assert.Equal(t, []int{0, 1, 2}, got)

	got = b.Candidates(geom.NewBox(100, 480, 20, 20), entities[:2])
	assert.Equal(t, []int{0, 1}, got, "a list of a different length is scanned in full")
}

func TestBroadPhase_SyncFollowsMovingEntities(t *testing.T) {
	h := entity.NewFallingHazard("h", geom.NewBox(500, 0, 40, 40), "", 5, 800)
	entities := []entity.Entity{h}
	b := NewBroadPhase(geom.NewBox(0, 0, 1000, 600), entities)
	actor := geom.NewBox(510, 300, 20, 20)

	assert.Empty(t, b.Candidates(actor, entities))

	h.Activate()
	for i := 0; i < 10; i++ {
		h.OnTick(entity.TickContext{})
	}
	b.Sync(entities)

	assert.Equal(t, []int{0}, b.Candidates(actor, entities))
}
