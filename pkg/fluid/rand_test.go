package fluid

import "testing"

func TestRandDeterministic(t *testing.T) {
	a := NewRand(1337)
	b := NewRand(1337)
	for i := 0; i < 1000; i++ {
		x, y := a.Uint64(), b.Uint64()
		if x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestRandDifferentSeeds(t *testing.T) {
	a := NewRand(1337)
	b := NewRand(1338)
	if a.Uint64() == b.Uint64() {
		t.Fatal("different seeds produced the same first draw")
	}
}

func TestRandFloat64Range(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want in [0,1)", v)
		}
	}
}

func TestFixedSlotRand01Mask(t *testing.T) {
	slot := FixedSlot[int32](8)
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := slot.rand01(r)
		if v.Float64() < 0 || v.Float64() >= 1 {
			t.Fatalf("fixed rand01 = %v, want in [0,1)", v.Float64())
		}
	}
}
