package fluid

import "fmt"

func (s *Simulator[P, V, VF]) checkBounds(x, y int) {
	if x < 0 || x >= s.N {
		panic(fmt.Sprintf("invalid x-index: %d", x))
	}
	if y < 0 || y >= s.M {
		panic(fmt.Sprintf("invalid y-index: %d", y))
	}
}

// SetSolid marks (x,y) as a wall and clears its surrounding directional
// velocities so the boundary takes effect immediately, rather than waiting
// for the next pressure pass to discover it. Adapted from the teacher's
// staggered-grid SetSolid; here the grid is a plain character field, so
// "solid" means writing '#' and zeroing the four directional components
// instead of zeroing a MAC-grid edge pair.
func (s *Simulator[P, V, VF]) SetSolid(x, y int) {
	s.checkBounds(x, y)
	s.field[x][y] = '#'
	for _, d := range deltas {
		s.velocity.Set(x, y, d[0], d[1], s.vSlot.zero)
		nx, ny := x+d[0], y+d[1]
		if nx >= 0 && nx < s.N && ny >= 0 && ny < s.M && s.field[nx][ny] != '#' {
			s.velocity.Set(nx, ny, -d[0], -d[1], s.vSlot.zero)
		}
	}
}

// SetFluid marks (x,y) as fluid ('.') or air (' ').
func (s *Simulator[P, V, VF]) SetFluid(x, y int, fluid bool) {
	s.checkBounds(x, y)
	if fluid {
		s.field[x][y] = '.'
	} else {
		s.field[x][y] = ' '
	}
}

// IsSolid reports whether (x,y) is a wall cell.
func (s *Simulator[P, V, VF]) IsSolid(x, y int) bool {
	s.checkBounds(x, y)
	return s.field[x][y] == '#'
}

// SetVelocity sets the directional velocity component toward (dx,dy).
func (s *Simulator[P, V, VF]) SetVelocity(x, y, dx, dy int, v V) {
	s.checkBounds(x, y)
	s.velocity.Set(x, y, dx, dy, v)
}

// Reset zeroes pressure, velocity, flow, and the generation counter,
// leaving the field (wall/fluid/air layout) untouched. Useful for tests
// that want to re-run the same layout from a clean physical state.
func (s *Simulator[P, V, VF]) Reset() {
	for x := 0; x < s.N; x++ {
		for y := 0; y < s.M; y++ {
			s.p[x][y] = s.pSlot.zero
			s.oldP[x][y] = s.pSlot.zero
			s.dirs[x][y] = 0
			s.lastUse[x][y] = 0
			s.velocity.values[x][y] = [4]V{s.vSlot.zero, s.vSlot.zero, s.vSlot.zero, s.vSlot.zero}
		}
	}
	s.velocityFlow = newVectorField[VF](s.N, s.M, s.vfSlot.zero)
	s.ut = 0
}
