package system

import (
	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/domain/geom"
)

// Context is the world as the resolver sees it. Terminal reports whether a
// death or a win has already been requested this tick; after that only
// positional correction continues.
type Context interface {
	entity.Context
	Terminal() bool
}

// Resolver pushes the actor out of solid entities and dispatches contact
// reactions. It never changes run state itself; reactions go through the
// Context.
type Resolver struct {
	broad *BroadPhase
}

// NewResolver creates a resolver. broad may be nil, in which case every
// entity is tested each tick.
func NewResolver(broad *BroadPhase) *Resolver {
	return &Resolver{broad: broad}
}

// Resolve runs one collision pass over entities in list order
func (r *Resolver) Resolve(ctx Context, entities []entity.Entity) {
	a := ctx.Actor()
	a.ClearContacts()

	if r.broad == nil {
		for _, e := range entities {
			r.resolveOne(ctx, a, e)
		}
	} else {
		pending := r.broad.Candidates(a.Box(), entities)
		for k := 0; k < len(pending); k++ {
			before := a.Box()
			r.resolveOne(ctx, a, entities[pending[k]])
			if a.Box() == before {
				continue
			}
			// Snap and carry can move the actor into cells the first query
			// never looked at
			r.broad.Sync(entities)
			pending = mergeAfter(pending, k, r.broad.Candidates(a.Box(), entities))
		}
	}

	if a.Grounded {
		a.WallSliding = false
		a.WallDir = 0
	}
}

func (r *Resolver) resolveOne(ctx Context, a *entity.Actor, e entity.Entity) {
	switch e.Solidity(a) {
	case entity.Solid:
		r.resolveSolid(ctx, a, e)
	case entity.LandingOnly:
		r.resolveLanding(ctx, a, e)
	default:
		if ctx.Terminal() || !a.Box().Overlaps(e.Box()) {
			return
		}
		e.OnContact(ctx, geom.SideNone)
	}
}

func (r *Resolver) resolveSolid(ctx Context, a *entity.Actor, e entity.Entity) {
	box := e.Box()
	side := geom.Classify(a.Box(), box)
	if side == geom.SideNone {
		return
	}

	dir := ctx.GravityDir()
	a.SetPos(geom.Snap(a.Box(), box, side))

	switch {
	case side == geom.LandingSide(dir):
		a.VY = 0
		a.Grounded = true
		if c, ok := e.(entity.Carrier); ok {
			a.SetPos(a.Pos().Add(c.Carry()))
		}
	case side == geom.HeadSide(dir):
		a.VY = 0
		if c, ok := e.(entity.Crusher); ok && c.Crushing() && !ctx.Terminal() {
			ctx.Kill(entity.ReasonCrushed, true)
		}
	default:
		a.VX = 0
		a.WallSliding = true
		if side == geom.SideRight {
			a.WallDir = 1
		} else {
			a.WallDir = -1
		}
	}

	if !ctx.Terminal() {
		e.OnContact(ctx, side)
	}
}

func (r *Resolver) resolveLanding(ctx Context, a *entity.Actor, e entity.Entity) {
	box := e.Box()
	side := geom.Classify(a.Box(), box)
	if side == geom.SideNone || side != geom.LandingSide(ctx.GravityDir()) {
		return
	}

	a.SetPos(geom.Snap(a.Box(), box, side))
	a.VY = 0
	a.Grounded = true

	if !ctx.Terminal() {
		e.OnContact(ctx, side)
	}
}

// mergeAfter keeps pending[:k+1] and merges the indices of found that come
// after pending[k] into the rest, ascending and without duplicates
func mergeAfter(pending []int, k int, found []int) []int {
	cur := pending[k]
	rest := pending[k+1:]
	out := make([]int, 0, len(pending)+len(found))
	out = append(out, pending[:k+1]...)

	i, j := 0, 0
	for i < len(rest) || j < len(found) {
		if j < len(found) && found[j] <= cur {
			j++
			continue
		}
		var next int
		switch {
		case j >= len(found) || (i < len(rest) && rest[i] < found[j]):
			next = rest[i]
			i++
		case i >= len(rest) || found[j] < rest[i]:
			next = found[j]
			j++
		default:
			next = rest[i]
			i++
			j++
		}
		out = append(out, next)
	}
	return out
}
