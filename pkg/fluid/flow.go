package fluid

// Flow returns a snapshot of the realized flow computed by the most recent
// tick's phase 3. Adapted from the teacher's smoke-field accessor
// (pkg/fluid/smoke.go in the source repo): same "expose the per-cell
// buffer as a read-only field" shape, applied to the four-directional flow
// buffer instead of a single scalar smoke density.
func (s *Simulator[P, V, VF]) Flow() VectorField[VF] {
	values := make([][][4]VF, s.N)
	for x := range values {
		row := make([][4]VF, s.M)
		copy(row, s.velocityFlow.values[x])
		values[x] = row
	}
	return VectorField[VF]{NumX: s.N, NumY: s.M, values: values}
}
