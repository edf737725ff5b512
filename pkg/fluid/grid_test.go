package fluid

import "testing"

func makeBox(rows, cols int) [][]byte {
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
	return field
}

func newTestSim(t *testing.T, field [][]byte) *Simulator[Float64, Fixed[int32], Fixed[int32]] {
	t.Helper()
	sim, err := NewFromField(field, 0.01, 1000, 0.1,
		FloatSlot64(), FixedSlot[int32](16), FixedSlot[int32](15))
	if err != nil {
		t.Fatalf("NewFromField: %v", err)
	}
	return sim
}

func TestValidateFieldRejectsOpenBoundary(t *testing.T) {
	field := makeBox(5, 5)
	field[0][2] = ' '
	if err := validateField(field); err == nil {
		t.Error("expected error for open boundary")
	}
}

func TestValidateFieldRejectsRaggedRows(t *testing.T) {
	field := [][]byte{[]byte("###"), []byte("#")}
	if err := validateField(field); err == nil {
		t.Error("expected error for ragged rows")
	}
}

func TestValidateFieldRejectsUnknownChar(t *testing.T) {
	field := makeBox(4, 4)
	field[1][1] = 'x'
	if err := validateField(field); err == nil {
		t.Error("expected error for unknown character")
	}
}

func TestNewStaticBuildsWalledRing(t *testing.T) {
	sim := NewStatic[Float64, Fixed[int32], Fixed[int32]](5, 5, 0.01, 1000, 0.1,
		FloatSlot64(), FixedSlot[int32](16), FixedSlot[int32](15))
	for y := 0; y < 5; y++ {
		if !sim.IsSolid(0, y) || !sim.IsSolid(4, y) {
			t.Fatalf("row boundary not solid at column %d", y)
		}
	}
	if sim.IsSolid(2, 2) {
		t.Fatal("interior cell should not start solid")
	}
}

func TestSetSolidClearsSurroundingVelocity(t *testing.T) {
	field := makeBox(5, 5)
	sim := newTestSim(t, field)
	sim.SetVelocity(2, 1, 0, 1, NewFixedInt[int32](3, 16))
	sim.SetSolid(2, 2)
	if v := sim.velocity.Get(2, 1, 0, 1); v.Float64() != 0 {
		t.Errorf("velocity into new wall = %v, want 0", v.Float64())
	}
}

func TestResetClearsStateKeepsField(t *testing.T) {
	field := makeBox(4, 4)
	sim := newTestSim(t, field)
	sim.SetFluid(2, 2, true)
	sim.p[2][2] = Float64(1.5)
	sim.ut = 42
	sim.Reset()
	if sim.ut != 0 {
		t.Errorf("ut after Reset = %d, want 0", sim.ut)
	}
	if sim.field[2][2] != '.' {
		t.Error("Reset must not touch field layout")
	}
}

func TestRhoPanicsOnInvalidChar(t *testing.T) {
	field := makeBox(4, 4)
	sim := newTestSim(t, field)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid rho character")
		}
	}()
	sim.rho('x')
}
