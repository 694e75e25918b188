// Package systems contains ECS systems for the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/orrery/components"
	"github.com/pthm-cable/orrery/orbit"
)

// OrbitSystem advances orbit angles and refreshes the cached world positions.
type OrbitSystem struct {
	filter *ecs.Filter2[components.Orbit, components.Transform]
}

// NewOrbitSystem creates a new orbit system.
func NewOrbitSystem(w *ecs.World) *OrbitSystem {
	return &OrbitSystem{
		filter: ecs.NewFilter2[components.Orbit, components.Transform](w),
	}
}

// Update advances every body by its speed unless paused, then recomputes
// positions from the angles. Positions are always recomputed so the cache
// cannot diverge from the angle.
func (s *OrbitSystem) Update(paused bool) {
	query := s.filter.Query()
	for query.Next() {
		orb, tr := query.Get()
		orb.Angle = orbit.Advance(orb.Angle, orb.Speed, paused)
		tr.Position = orbit.Position(orb.Angle, orb.Distance, orb.Inclination)
	}
}

// Refresh recomputes positions without advancing angles.
func (s *OrbitSystem) Refresh() {
	s.Update(true)
}
