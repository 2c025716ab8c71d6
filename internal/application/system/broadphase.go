package system

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/domain/geom"
)

const (
	tagEntity = "entity"
	tagActor  = "actor"

	broadCellSize = 32
	// broadPadding extends the grid past the stage so that falling hazards,
	// missiles and an actor that left the stage still land in cells
	broadPadding = 400
	// probeMargin inflates the actor box so flush contacts are not culled
	probeMargin = 2
)

// BroadPhase culls the entities the resolver has to test each tick using a
// resolv cell grid. Candidates are always returned in list order so the
// resolution order stays the stage definition order.
type BroadPhase struct {
	space   *resolv.Space
	origin  geom.Vec
	area    geom.Box
	objects []*resolv.Object
	probe   *resolv.Object
}

// NewBroadPhase builds a grid covering bounds and every entity, and
// registers one object per entity
func NewBroadPhase(bounds geom.Box, entities []entity.Entity) *BroadPhase {
	area := bounds
	for _, e := range entities {
		area = union(area, e.Box())
	}
	area = area.Inflate(broadPadding)

	b := &BroadPhase{
		space: resolv.NewSpace(
			int(math.Ceil(area.W)), int(math.Ceil(area.H)),
			broadCellSize, broadCellSize,
		),
		origin:  area.Pos(),
		area:    area,
		objects: make([]*resolv.Object, len(entities)),
	}

	for i, e := range entities {
		box := e.Box()
		obj := resolv.NewObject(box.X-b.origin.X, box.Y-b.origin.Y, box.W, box.H, tagEntity)
		obj.Data = i
		b.space.Add(obj)
		b.objects[i] = obj
	}

	b.probe = resolv.NewObject(0, 0, 1, 1, tagActor)
	b.space.Add(b.probe)
	return b
}

// Sync moves every registered object to its entity's current box. Call it
// once per tick before resolving.
func (b *BroadPhase) Sync(entities []entity.Entity) {
	for i, e := range entities {
		if i >= len(b.objects) {
			break
		}
		box := e.Box()
		obj := b.objects[i]
		x, y := box.X-b.origin.X, box.Y-b.origin.Y
		if obj.X == x && obj.Y == y && obj.W == box.W && obj.H == box.H {
			continue
		}
		obj.X, obj.Y, obj.W, obj.H = x, y, box.W, box.H
		obj.Update()
	}
}

// Candidates returns the indices of entities that may touch the actor box,
// in ascending order. Outside the grid it falls back to every entity.
func (b *BroadPhase) Candidates(actor geom.Box, entities []entity.Entity) []int {
	probe := actor.Inflate(probeMargin)
	if len(b.objects) != len(entities) || !b.area.Contains(probe) {
		return allIndices(len(entities))
	}

	b.probe.X, b.probe.Y = probe.X-b.origin.X, probe.Y-b.origin.Y
	b.probe.W, b.probe.H = probe.W, probe.H
	b.probe.Update()

	check := b.probe.Check(0, 0, tagEntity)
	if check == nil {
		return nil
	}

	seen := make(map[int]struct{}, len(check.Objects))
	out := make([]int, 0, len(check.Objects))
	for _, obj := range check.Objects {
		i, ok := obj.Data.(int)
		if !ok {
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func union(a, b geom.Box) geom.Box {
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	r := math.Max(a.Right(), b.Right())
	btm := math.Max(a.Bottom(), b.Bottom())
	return geom.NewBox(x, y, r-x, btm-y)
}
