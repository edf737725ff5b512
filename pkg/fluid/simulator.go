package fluid

// computeDirs counts, once, the number of non-wall neighbors of every
// non-wall cell. Called once at the start of Run, matching the original's
// single pass before the tick loop.
func (s *Simulator[P, V, VF]) computeDirs() {
	for x := 0; x < s.N; x++ {
		for y := 0; y < s.M; y++ {
			if s.field[x][y] == '#' {
				continue
			}
			count := 0
			for _, d := range deltas {
				if s.field[x+d[0]][y+d[1]] != '#' {
					count++
				}
			}
			s.dirs[x][y] = count
		}
	}
}

// applyGravity is phase 1: inject gravity into the downward velocity of
// every non-wall cell whose southern neighbor is also non-wall.
func (s *Simulator[P, V, VF]) applyGravity() {
	for x := 0; x < s.N; x++ {
		for y := 0; y < s.M; y++ {
			if s.field[x][y] == '#' {
				continue
			}
			if s.field[x+1][y] != '#' {
				s.velocity.Add(x, y, 1, 0, s.g)
			}
		}
	}
}

// correctVelocityFromPressure is phase 2: for every pair of neighboring
// cells with a pressure difference, push velocity from high to low
// pressure, first draining any existing reverse-direction velocity.
func (s *Simulator[P, V, VF]) correctVelocityFromPressure() {
	for x := range s.p {
		copy(s.oldP[x], s.p[x])
	}

	for x := 0; x < s.N; x++ {
		for y := 0; y < s.M; y++ {
			if s.field[x][y] == '#' {
				continue
			}
			for _, d := range deltas {
				nx, ny := x+d[0], y+d[1]
				if s.field[nx][ny] == '#' || !s.oldP[nx][ny].Less(s.oldP[x][y]) {
					continue
				}

				force := s.oldP[x][y].Sub(s.oldP[nx][ny])
				contr := s.velocity.Get(nx, ny, -d[0], -d[1])
				contrP := s.pSlot.from(contr)
				rhoN := s.rho(s.field[nx][ny])

				if !(rhoN.Mul(contrP).Less(force)) {
					// contr*rhoN >= force: fully absorbed by draining contr.
					drained := s.vSlot.from(force.Div(rhoN))
					s.velocity.Set(nx, ny, -d[0], -d[1], contr.Sub(drained))
					continue
				}

				force = force.Sub(rhoN.Mul(contrP))
				s.velocity.Set(nx, ny, -d[0], -d[1], s.vSlot.zero)

				rhoX := s.rho(s.field[x][y])
				s.velocity.Add(x, y, d[0], d[1], s.vSlot.from(force.Div(rhoX)))
				s.p[x][y] = s.p[x][y].Sub(force.Div(s.dirsP(x, y)))
			}
		}
	}
}

// propagateAllFlow is phase 3's first half: repeatedly run propagateFlow
// from every fresh non-wall cell until a full sweep moves nothing.
func (s *Simulator[P, V, VF]) propagateAllFlow() {
	s.velocityFlow = newVectorField[VF](s.N, s.M, s.vfSlot.zero)
	for {
		s.ut += 2
		prop := false
		for x := 0; x < s.N; x++ {
			for y := 0; y < s.M; y++ {
				if s.field[x][y] != '#' && s.lastUse[x][y] != s.ut {
					t, _, _ := s.propagateFlow(x, y, s.pSlot.one)
					if s.pSlot.zero.Less(t) {
						prop = true
					}
				}
			}
		}
		if !prop {
			break
		}
	}
}

// reconcileFlow is phase 3's second half: write the realized flow back
// into velocity, and the velocity this tick absorbed back into pressure.
func (s *Simulator[P, V, VF]) reconcileFlow() {
	for x := 0; x < s.N; x++ {
		for y := 0; y < s.M; y++ {
			if s.field[x][y] == '#' {
				continue
			}
			for _, d := range deltas {
				oldV := s.velocity.Get(x, y, d[0], d[1])
				newVF := s.velocityFlow.Get(x, y, d[0], d[1])
				if !s.vSlot.zero.Less(oldV) {
					continue
				}
				newV := s.vSlot.from(newVF)
				if oldV.Less(newV) {
					panic("reconcileFlow: realized flow exceeded prior velocity")
				}
				s.velocity.Set(x, y, d[0], d[1], newV)

				force := s.pSlot.from(oldV.Sub(newV)).Mul(s.rho(s.field[x][y]))
				if s.field[x][y] == '.' {
					force = force.Mul(s.pSlot.from(rawScalar(0.8)))
				}

				nx, ny := x+d[0], y+d[1]
				if s.field[nx][ny] == '#' {
					s.p[x][y] = s.p[x][y].Add(force.Div(s.dirsP(x, y)))
				} else {
					s.p[nx][ny] = s.p[nx][ny].Add(force.Div(s.dirsP(nx, ny)))
				}
			}
		}
	}
}

// moveParticles is phase 4: for every fresh non-wall cell, draw against
// moveProb and either relocate a particle or mark the cell stopped.
// Returns whether any cell moved this tick.
func (s *Simulator[P, V, VF]) moveParticles() bool {
	s.ut += 2
	moved := false
	for x := 0; x < s.N; x++ {
		for y := 0; y < s.M; y++ {
			if s.field[x][y] == '#' || s.lastUse[x][y] == s.ut {
				continue
			}
			draw := s.pSlot.rand01(s.rng)
			if draw.Less(s.moveProb(x, y)) {
				moved = true
				s.propagateMove(x, y, true)
			} else {
				s.propagateStop(x, y, true)
			}
		}
	}
	return moved
}

// Step runs the four phases of a single tick and returns whether phase 4
// moved a particle.
func (s *Simulator[P, V, VF]) Step() bool {
	s.applyGravity()
	s.correctVelocityFromPressure()
	s.propagateAllFlow()
	s.reconcileFlow()
	return s.moveParticles()
}

func cloneField(field [][]byte) [][]byte {
	out := make([][]byte, len(field))
	for i, row := range field {
		out[i] = append([]byte(nil), row...)
	}
	return out
}

// Run advances the simulation for TMax ticks (5000 by default), invoking
// OnMoved after any tick phase 4 moved a particle and OnSnapshot every
// SaveRate ticks.
func (s *Simulator[P, V, VF]) Run() error {
	s.computeDirs()
	for tick := 0; tick < s.TMax; tick++ {
		moved := s.Step()
		if moved && s.OnMoved != nil {
			s.OnMoved(tick, cloneField(s.field))
		}
		if tick%s.SaveRate == 0 {
			if s.DumpPath != "" {
				s.SaveDump(s.DumpPath)
			}
			if s.OnSnapshot != nil {
				s.OnSnapshot(tick, s)
			}
		}
	}
	return nil
}
