package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/russiankolya/fluid-hw2/pkg/fluid"
)

var fixedPattern = regexp.MustCompile(`^fixed(8|16|32|64)\.(\d+)$`)

// lookupRunner resolves a (pressure, velocity, flow) type-name triple to a
// concrete run closure. Go generics can't select a type parameter from a
// runtime string, so only the combinations a production run plausibly
// needs are enumerated here, mirroring the single hard-coded instantiation
// the original program compiled against.
func lookupRunner(p, v, vf string) (func() error, bool) {
	switch {
	case p == "float32" && v == "float32" && vf == "float32":
		return func() error {
			return runWith(fluid.FloatSlot32(), fluid.FloatSlot32(), fluid.FloatSlot32())
		}, true

	case p == "float64" && v == "float64" && vf == "float64":
		return func() error {
			return runWith(fluid.FloatSlot64(), fluid.FloatSlot64(), fluid.FloatSlot64())
		}, true

	case p == "float64" && v == "fixed32.16" && vf == "fixed32.15":
		return func() error {
			return runWith(fluid.FloatSlot64(), fluid.FixedSlot[int32](16), fluid.FixedSlot[int32](15))
		}, true

	case p == "fixed64.32" && v == "fixed32.16" && vf == "fixed32.15":
		return func() error {
			return runWith(fluid.FixedSlot[int64](32), fluid.FixedSlot[int32](16), fluid.FixedSlot[int32](15))
		}, true

	case p == "fixed32.16" && v == "fixed32.16" && vf == "fixed32.15":
		return func() error {
			return runWith(fluid.FixedSlot[int32](16), fluid.FixedSlot[int32](16), fluid.FixedSlot[int32](15))
		}, true
	}
	return nil, false
}

// parseFixed is exercised by the test suite to confirm error reporting on
// a malformed fixedN.K flag value; lookupRunner itself only accepts the
// finite preset list above.
func parseFixed(spec string) (width, k int, err error) {
	m := fixedPattern.FindStringSubmatch(spec)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid fixed-point type spec %q, want fixedN.K", spec)
	}
	width, _ = strconv.Atoi(m[1])
	k, _ = strconv.Atoi(m[2])
	if k >= width {
		return 0, 0, fmt.Errorf("invalid fixed-point type spec %q: K must be less than N", spec)
	}
	return width, k, nil
}
