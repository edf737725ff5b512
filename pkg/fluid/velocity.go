package fluid

// Velocity returns a snapshot of the current directional velocity field.
func (s *Simulator[P, V, VF]) Velocity() VectorField[V] {
	values := make([][][4]V, s.N)
	for x := range values {
		row := make([][4]V, s.M)
		copy(row, s.velocity.values[x])
		values[x] = row
	}
	return VectorField[V]{NumX: s.N, NumY: s.M, values: values}
}
