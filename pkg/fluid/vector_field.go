package fluid

import "fmt"

// deltas are the four unit moves a cell can exchange velocity/flow with, in
// the fixed order the spec assigns index 0..3.
var deltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func deltaIndex(dx, dy int) int {
	for i, d := range deltas {
		if d[0] == dx && d[1] == dy {
			return i
		}
	}
	panic(fmt.Sprintf("vector field: invalid delta (%d,%d)", dx, dy))
}

// VectorField stores, per cell, one T per delta in deltas — the directional
// velocity or flow at that cell. Generalizes the teacher's two-slice
// (valuesU, valuesV) VectorField to four directions and any scalar
// representation.
type VectorField[T Value[T]] struct {
	NumX, NumY int
	values     [][][4]T
}

func newVectorField[T Value[T]](n, m int, zero T) *VectorField[T] {
	values := make([][][4]T, n)
	for x := range values {
		row := make([][4]T, m)
		for y := range row {
			row[y] = [4]T{zero, zero, zero, zero}
		}
		values[x] = row
	}
	return &VectorField[T]{NumX: n, NumY: m, values: values}
}

// Get reads the component toward delta (dx,dy). Callers must guard on the
// cell not being a wall; this does no bounds checking beyond what the
// backing slices enforce, matching the teacher's unchecked VectorField.Get.
func (v *VectorField[T]) Get(x, y, dx, dy int) T {
	return v.values[x][y][deltaIndex(dx, dy)]
}

// Set overwrites the component toward delta (dx,dy).
func (v *VectorField[T]) Set(x, y, dx, dy int, val T) {
	v.values[x][y][deltaIndex(dx, dy)] = val
}

// Add accumulates dv into the component toward delta (dx,dy) and returns
// the new value.
func (v *VectorField[T]) Add(x, y, dx, dy int, dv T) T {
	i := deltaIndex(dx, dy)
	v.values[x][y][i] = v.values[x][y][i].Add(dv)
	return v.values[x][y][i]
}

// Value returns the four directional components at (x,y) in delta order,
// for read-only external consumers — the teacher's bounds-checked
// "Value(i,j) (u, v, error)" query, widened to four directions.
func (v *VectorField[T]) Value(x, y int) ([4]T, error) {
	var zero [4]T
	if x < 0 || x >= v.NumX {
		return zero, fmt.Errorf("x index out of range, must be between 0 and %d", v.NumX-1)
	}
	if y < 0 || y >= v.NumY {
		return zero, fmt.Errorf("y index out of range, must be between 0 and %d", v.NumY-1)
	}
	return v.values[x][y], nil
}
