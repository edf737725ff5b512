package fluid

import "math"

// Float32 and Float64 are the native IEEE-754 scalar representations.
// Both satisfy Value[T]; conversion between them and the fixed-point
// representations goes through Float64() / Slot.from, never an implicit
// Go numeric conversion.

type Float32 float32

func (a Float32) Add(b Float32) Float32 { return a + b }
func (a Float32) Sub(b Float32) Float32 { return a - b }
func (a Float32) Mul(b Float32) Float32 { return a * b }
func (a Float32) Div(b Float32) Float32 { return a / b }
func (a Float32) Neg() Float32          { return -a }
func (a Float32) Abs() Float32          { return Float32(math.Abs(float64(a))) }
func (a Float32) Less(b Float32) bool   { return a < b }
func (a Float32) Equal(b Float32) bool  { return a == b }
func (a Float32) Float64() float64      { return float64(a) }

type Float64 float64

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Mul(b Float64) Float64 { return a * b }
func (a Float64) Div(b Float64) Float64 { return a / b }
func (a Float64) Neg() Float64          { return -a }
func (a Float64) Abs() Float64          { return Float64(math.Abs(float64(a))) }
func (a Float64) Less(b Float64) bool   { return a < b }
func (a Float64) Equal(b Float64) bool  { return a == b }
func (a Float64) Float64() float64      { return float64(a) }
