package fluid

// propagateStop marks (x,y), and any neighbor that cannot still receive
// velocity from it, as stopped for this pass. Grounded on
// original_source/Simulator.hpp's PropagateStop.
func (s *Simulator[P, V, VF]) propagateStop(x, y int, force bool) {
	if !force {
		stop := true
		for _, d := range deltas {
			nx, ny := x+d[0], y+d[1]
			if s.field[nx][ny] != '#' && s.lastUse[nx][ny] < s.ut-1 && s.vSlot.zero.Less(s.velocity.Get(x, y, d[0], d[1])) {
				stop = false
				break
			}
		}
		if !stop {
			return
		}
	}
	s.lastUse[x][y] = s.ut
	for _, d := range deltas {
		nx, ny := x+d[0], y+d[1]
		if s.field[nx][ny] == '#' || s.lastUse[nx][ny] == s.ut || s.vSlot.zero.Less(s.velocity.Get(x, y, d[0], d[1])) {
			continue
		}
		s.propagateStop(nx, ny, false)
	}
}

// moveProb sums the outgoing non-negative velocities to fresh, non-wall
// neighbors. Not normalized — the caller compares a [0,1) draw directly
// against this sum, so a dense cell with sum > 1 always moves.
func (s *Simulator[P, V, VF]) moveProb(x, y int) P {
	sum := s.pSlot.zero
	for _, d := range deltas {
		nx, ny := x+d[0], y+d[1]
		if s.field[nx][ny] == '#' || s.lastUse[nx][ny] == s.ut {
			continue
		}
		v := s.velocity.Get(x, y, d[0], d[1])
		if v.Less(s.vSlot.zero) {
			continue
		}
		sum = sum.Add(s.pSlot.from(v))
	}
	return sum
}

// propagateMove performs a randomized depth-first relocation starting at
// (x,y), reporting whether movement succeeded.
func (s *Simulator[P, V, VF]) propagateMove(x, y int, isFirst bool) bool {
	if isFirst {
		s.lastUse[x][y] = s.ut - 1
	} else {
		s.lastUse[x][y] = s.ut
	}

	ret := false
	nx, ny := -1, -1
	for {
		var tres [4]P
		sum := s.pSlot.zero
		for i, d := range deltas {
			nx1, ny1 := x+d[0], y+d[1]
			if s.field[nx1][ny1] == '#' || s.lastUse[nx1][ny1] == s.ut {
				tres[i] = sum
				continue
			}
			v := s.velocity.Get(x, y, d[0], d[1])
			if v.Less(s.vSlot.zero) {
				tres[i] = sum
				continue
			}
			sum = sum.Add(s.pSlot.from(v))
			tres[i] = sum
		}

		if sum.Equal(s.pSlot.zero) {
			break
		}

		draw := s.pSlot.rand01(s.rng).Mul(sum)
		d := upperBound(tres[:], draw)
		dx, dy := deltas[d][0], deltas[d][1]
		nx, ny = x+dx, y+dy

		if !(s.vSlot.zero.Less(s.velocity.Get(x, y, dx, dy)) && s.field[nx][ny] != '#' && s.lastUse[nx][ny] < s.ut) {
			panic("propagateMove: chose a direction that is not a valid, non-wall, fresh cell with positive velocity")
		}

		if s.lastUse[nx][ny] == s.ut-1 {
			ret = true
		} else {
			ret = s.propagateMove(nx, ny, false)
		}
		if ret {
			break
		}
	}

	s.lastUse[x][y] = s.ut
	for _, d := range deltas {
		nx1, ny1 := x+d[0], y+d[1]
		if s.field[nx1][ny1] != '#' && s.lastUse[nx1][ny1] < s.ut-1 && s.velocity.Get(x, y, d[0], d[1]).Less(s.vSlot.zero) {
			s.propagateStop(nx1, ny1, false)
		}
	}

	if ret && !isFirst {
		s.exchangeCellState(x, y, nx, ny)
	}
	return ret
}

// exchangeCellState swaps field character, pressure, and the full
// directional velocity row between (x,y) and (nx,ny). The original
// rotates through a temporary ParticleParams three times
// (SwapWith(x,y); SwapWith(nx,ny); SwapWith(x,y)); composing those three
// swaps algebraically collapses to one direct swap between the two cells,
// which is what this does.
func (s *Simulator[P, V, VF]) exchangeCellState(x, y, nx, ny int) {
	s.field[x][y], s.field[nx][ny] = s.field[nx][ny], s.field[x][y]
	s.p[x][y], s.p[nx][ny] = s.p[nx][ny], s.p[x][y]
	s.velocity.values[x][y], s.velocity.values[nx][ny] = s.velocity.values[nx][ny], s.velocity.values[x][y]
}

// propagateFlow discovers an augmenting flow path from (x,y) bounded by
// lim, returning the flow actually realized, whether it should keep
// propagating to the caller, and the cell where a cycle closed (if any).
func (s *Simulator[P, V, VF]) propagateFlow(x, y int, lim P) (P, bool, [2]int) {
	s.lastUse[x][y] = s.ut - 1
	ret := s.pSlot.zero
	for _, d := range deltas {
		nx, ny := x+d[0], y+d[1]
		if s.field[nx][ny] == '#' || s.lastUse[nx][ny] >= s.ut {
			continue
		}
		cap_ := s.velocity.Get(x, y, d[0], d[1])
		flow := s.velocityFlow.Get(x, y, d[0], d[1])
		if flow.Equal(s.vfSlot.from(cap_)) {
			continue
		}
		res := cap_.Sub(s.vSlot.from(flow))
		vp := minValue(lim, s.pSlot.from(res))

		if s.lastUse[nx][ny] == s.ut-1 {
			s.velocityFlow.Add(x, y, d[0], d[1], s.vfSlot.from(vp))
			s.lastUse[x][y] = s.ut
			return vp, true, [2]int{nx, ny}
		}

		t, prop, end := s.propagateFlow(nx, ny, vp)
		ret = ret.Add(t)
		if prop {
			s.velocityFlow.Add(x, y, d[0], d[1], s.vfSlot.from(t))
			s.lastUse[x][y] = s.ut
			return t, end != [2]int{x, y}, end
		}
	}
	s.lastUse[x][y] = s.ut
	return ret, false, [2]int{0, 0}
}
