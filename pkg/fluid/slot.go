package fluid

// Slot packages a concrete scalar representation together with the
// functions the simulator needs but that Go's type system cannot derive on
// its own: a zero and a one of the right fractional width, a converter
// from any other representation, and (for the pressure slot only) a draw
// from the shared random source. Without it, a Simulator generic over
// P/V/VF would have no way to build a fresh P from a V — Go does not let a
// type parameter construct arbitrary values of itself, let alone of a
// sibling type parameter with its own runtime-configured K.
type Slot[T Value[T]] struct {
	zero   T
	one    T
	from   func(Scalar) T
	rand01 func(*Rand) T
}

// FloatSlot32 is the Slot for Float32.
func FloatSlot32() Slot[Float32] {
	return Slot[Float32]{
		zero: 0,
		one:  1,
		from: func(s Scalar) Float32 { return ConvertFloat32(s) },
		rand01: func(r *Rand) Float32 {
			return Float32(r.Float64())
		},
	}
}

// FloatSlot64 is the Slot for Float64.
func FloatSlot64() Slot[Float64] {
	return Slot[Float64]{
		zero: 0,
		one:  1,
		from: func(s Scalar) Float64 { return ConvertFloat64(s) },
		rand01: func(r *Rand) Float64 {
			return Float64(r.Float64())
		},
	}
}

// FixedSlot is the Slot for Fixed[T] at fractional width k.
func FixedSlot[T rawInt](k uint8) Slot[Fixed[T]] {
	return Slot[Fixed[T]]{
		zero: NewFixedInt[T](0, k),
		one:  NewFixedInt[T](1, k),
		from: func(s Scalar) Fixed[T] { return ConvertFixed[T](s, k) },
		rand01: func(r *Rand) Fixed[T] {
			mask := (uint64(1) << k) - 1
			return FixedFromRaw[T](T(r.Uint64()&mask), k)
		},
	}
}
