package fluid

import (
	"fmt"
	"log"
)

// DefaultTMax and DefaultSaveRate match the constants the original
// Simulator.hpp hard-codes (`t = 5'000`, `save_rate = 100`).
const (
	DefaultTMax     = 5000
	DefaultSaveRate = 100
	defaultSeed     = 1337
)

// Simulator holds the full per-tick state of the grid: the character
// field, pressure, directional velocity and flow, the open-neighbor count,
// and the generation counter the propagation kernels use to avoid
// re-visiting a cell within one pass. P, V, VF are independently chosen
// scalar representations for pressure, velocity, and flow.
type Simulator[P Value[P], V Value[V], VF Value[VF]] struct {
	pSlot  Slot[P]
	vSlot  Slot[V]
	vfSlot Slot[VF]

	field [][]byte
	N, M  int

	p, oldP       [][]P
	dirs, lastUse [][]int
	ut            int

	g        V
	rhoAir   P
	rhoFluid P

	velocity     *VectorField[V]
	velocityFlow *VectorField[VF]

	rng *Rand

	// TMax and SaveRate default to DefaultTMax/DefaultSaveRate but may be
	// overridden before calling Run, e.g. by tests exercising small
	// scenarios in far fewer than 5000 ticks.
	TMax     int
	SaveRate int
	DumpPath string

	// OnSnapshot, if set, is invoked every SaveRate ticks instead of (or
	// as well as, if DumpPath is also set) writing dump.txt — reading the
	// input file, writing the periodic dump, and formatting console
	// output are all external collaborators per the spec, not core
	// solver concerns.
	OnSnapshot func(tick int, s *Simulator[P, V, VF])
	// OnMoved is invoked once per tick in which phase 4 moved a particle,
	// with a private copy of the field so the caller can hold onto it
	// across later ticks that mutate the live grid.
	OnMoved func(tick int, field [][]byte)
}

// rho returns the density associated with a field character. Only air and
// fluid cells have a density; anything else (in particular '#') is a bug
// in the caller, since propagation kernels must never dereference rho for
// a wall cell.
func (s *Simulator[P, V, VF]) rho(ch byte) P {
	switch ch {
	case ' ':
		return s.rhoAir
	case '.':
		return s.rhoFluid
	default:
		panic(fmt.Sprintf("rho: invalid cell character %q", ch))
	}
}

func (s *Simulator[P, V, VF]) dirsP(x, y int) P {
	return s.pSlot.from(rawScalar(s.dirs[x][y]))
}

func validateField(field [][]byte) error {
	n := len(field)
	if n == 0 {
		return fmt.Errorf("field has zero rows")
	}
	m := len(field[0])
	if m == 0 {
		return fmt.Errorf("field has zero columns")
	}
	for x, row := range field {
		if len(row) != m {
			return fmt.Errorf("row %d has %d columns, want %d", x, len(row), m)
		}
		for y, ch := range row {
			if ch != '#' && ch != '.' && ch != ' ' {
				return fmt.Errorf("row %d col %d: unknown character %q", x, y, ch)
			}
		}
	}
	for y := 0; y < m; y++ {
		if field[0][y] != '#' || field[n-1][y] != '#' {
			return fmt.Errorf("outer boundary must be walls: column %d", y)
		}
	}
	for x := 0; x < n; x++ {
		if field[x][0] != '#' || field[x][m-1] != '#' {
			return fmt.Errorf("outer boundary must be walls: row %d", x)
		}
	}
	return nil
}

// NewFromField builds a Simulator whose dimensions are derived from the
// loaded grid — the "dynamic" construction path the spec's §6/§9
// distinguish from a caller-known-size "static" path (see NewStatic).
func NewFromField[P Value[P], V Value[V], VF Value[VF]](
	field [][]byte, rhoAir float64, rhoFluid int, g float64,
	pSlot Slot[P], vSlot Slot[V], vfSlot Slot[VF],
) (*Simulator[P, V, VF], error) {
	if err := validateField(field); err != nil {
		return nil, fmt.Errorf("invalid field: %w", err)
	}
	n, m := len(field), len(field[0])
	log.Printf("dynamic simulator constructed with sizes: %d %d", n, m)
	return newSimulator(field, n, m, rhoAir, rhoFluid, g, pSlot, vSlot, vfSlot), nil
}

// NewStatic builds a Simulator for a caller-supplied rows x cols grid that
// is known up front and will not change size — the spec's "static"
// construction path. The field starts as an all-wall ring around air; the
// caller fills it in with SetSolid/SetFluid before calling Run.
func NewStatic[P Value[P], V Value[V], VF Value[VF]](
	rows, cols int, rhoAir float64, rhoFluid int, g float64,
	pSlot Slot[P], vSlot Slot[V], vfSlot Slot[VF],
) *Simulator[P, V, VF] {
	log.Printf("static simulator constructed with sizes: %d %d", rows, cols)
	field := make([][]byte, rows)
	for x := range field {
		row := make([]byte, cols)
		for y := range row {
			if x == 0 || x == rows-1 || y == 0 || y == cols-1 {
				row[y] = '#'
			} else {
				row[y] = ' '
			}
		}
		field[x] = row
	}
	return newSimulator(field, rows, cols, rhoAir, rhoFluid, g, pSlot, vSlot, vfSlot)
}

func newSimulator[P Value[P], V Value[V], VF Value[VF]](
	field [][]byte, n, m int, rhoAir float64, rhoFluid int, g float64,
	pSlot Slot[P], vSlot Slot[V], vfSlot Slot[VF],
) *Simulator[P, V, VF] {
	p := make([][]P, n)
	oldP := make([][]P, n)
	dirs := make([][]int, n)
	lastUse := make([][]int, n)
	for x := 0; x < n; x++ {
		p[x] = make([]P, m)
		oldP[x] = make([]P, m)
		dirs[x] = make([]int, m)
		lastUse[x] = make([]int, m)
		for y := 0; y < m; y++ {
			p[x][y] = pSlot.zero
			oldP[x][y] = pSlot.zero
		}
	}
	return &Simulator[P, V, VF]{
		pSlot: pSlot, vSlot: vSlot, vfSlot: vfSlot,
		field: field, N: n, M: m,
		p: p, oldP: oldP, dirs: dirs, lastUse: lastUse,
		g:            vSlot.from(rawScalar(g)),
		rhoAir:       pSlot.from(rawScalar(rhoAir)),
		rhoFluid:     pSlot.from(rawScalar(float64(rhoFluid))),
		velocity:     newVectorField[V](n, m, vSlot.zero),
		velocityFlow: newVectorField[VF](n, m, vfSlot.zero),
		rng:          NewRand(defaultSeed),
		TMax:         DefaultTMax,
		SaveRate:     DefaultSaveRate,
	}
}

// Field returns the current character grid. Callers must not mutate it.
func (s *Simulator[P, V, VF]) Field() [][]byte { return s.field }

// UT returns the current generation counter, exposed for tests pinning the
// "UT advances by 2 between passes, twice per tick" invariant.
func (s *Simulator[P, V, VF]) UT() int { return s.ut }

// LastUse returns the generation stamp recorded for (x,y).
func (s *Simulator[P, V, VF]) LastUse(x, y int) int { return s.lastUse[x][y] }

// Dirs returns the open-neighbor count recorded for (x,y).
func (s *Simulator[P, V, VF]) Dirs(x, y int) int { return s.dirs[x][y] }

// SeedRandom replaces the simulator's random source. newSimulator seeds it
// with defaultSeed (1337) for reproducibility; callers that want a
// different seed (e.g. a CLI --seed flag) call this before Run.
func (s *Simulator[P, V, VF]) SeedRandom(seed uint64) {
	s.rng = NewRand(seed)
}
