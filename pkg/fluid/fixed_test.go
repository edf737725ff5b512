package fluid

import "testing"

func TestFixedRoundTrip(t *testing.T) {
	for _, raw := range []int32{0, 1, -1, 12345, -98765} {
		f := FixedFromRaw[int32](raw, 16)
		if f.Raw() != raw {
			t.Errorf("FixedFromRaw(%d).Raw() = %d, want %d", raw, f.Raw(), raw)
		}
	}
}

func TestFixedAddSubAlignment(t *testing.T) {
	a := NewFixedInt[int32](3, 16)
	b := NewFixedInt[int32](2, 8)

	sum := a.Add(b)
	if got, want := sum.Float64(), 5.0; got != want {
		t.Errorf("3+2 = %v, want %v", got, want)
	}

	diff := a.Sub(b)
	if got, want := diff.Float64(), 1.0; got != want {
		t.Errorf("3-2 = %v, want %v", got, want)
	}
}

func TestFixedMulDiv(t *testing.T) {
	a := NewFixedFloat[int32](1.5, 16)
	b := NewFixedFloat[int32](2.0, 16)

	prod := a.Mul(b)
	if got, want := prod.Float64(), 3.0; got != want {
		t.Errorf("1.5*2 = %v, want %v", got, want)
	}

	quot := b.Div(a)
	if got, want := quot.Float64(), 4.0/3.0; abs64(got-want) > 1e-4 {
		t.Errorf("2/1.5 = %v, want ~%v", got, want)
	}
}

func TestFixedLessEqual(t *testing.T) {
	a := NewFixedInt[int32](1, 16)
	b := NewFixedInt[int32](2, 16)

	if !a.Less(b) {
		t.Error("1 should be less than 2")
	}
	if b.Less(a) {
		t.Error("2 should not be less than 1")
	}
	if !a.Equal(NewFixedInt[int32](1, 8)) {
		t.Error("1 at K=16 should equal 1 at K=8")
	}
}

func TestConvertFixedCrossWidth(t *testing.T) {
	v := NewFixedFloat[int32](3.25, 16)
	w := ConvertFixed[int64](v, 32)

	if abs64(w.Float64()-v.Float64()) > 1e-6 {
		t.Errorf("cross-width convert changed value: %v vs %v", w.Float64(), v.Float64())
	}
}

func TestConvertFloatBridge(t *testing.T) {
	v := NewFixedFloat[int32](2.5, 16)
	f := ConvertFloat64(v)
	if f.Float64() != 2.5 {
		t.Errorf("ConvertFloat64(2.5 fixed) = %v, want 2.5", f.Float64())
	}
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
