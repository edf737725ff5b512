package fluid

// Pressure returns a read-only view of the live pressure field. It shares
// storage with the simulator, so later ticks change what it reports.
func (s *Simulator[P, V, VF]) Pressure() ScalarField[P] {
	return ScalarField[P]{NumX: s.N, NumY: s.M, values: s.p}
}
