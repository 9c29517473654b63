package output

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Role selects which host axis an Axis reports to, and at which resolution.
type Role uint8

const (
	X Role = iota
	Y
	Z
	RX
	RY
	RZ
)

var roleNames = [...]string{X: "x", Y: "y", Z: "z", RX: "rx", RY: "ry", RZ: "rz"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// Bits returns the report resolution of the role: 16 for X, Y, RX and RY,
// 8 for Z and RZ.
func (r Role) Bits() int {
	switch r {
	case Z, RZ:
		return 8
	default:
		return 16
	}
}

// ParseRole parses an axis name as written in layout files ("x", "rz", ...).
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range roleNames {
		if n == s {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// Axis reports normalized values in [0.0, 1.0] to one host axis.
type Axis struct {
	host Host
	role Role
}

func NewAxis(host Host, role Role) Axis {
	return Axis{host: host, role: role}
}

func (a Axis) Role() Role { return a.role }

// Report clamps val to [0.0, 1.0] and sends it to the host at the role's
// resolution.
func (a Axis) Report(val float64) {
	v := clamp(val, 0, 1)
	switch a.role {
	case X:
		a.host.XAxis(Scale16(v))
	case Y:
		a.host.YAxis(Scale16(v))
	case Z:
		a.host.ZAxis(Scale8(v))
	case RX:
		a.host.RxAxis(Scale16(v))
	case RY:
		a.host.RyAxis(Scale16(v))
	case RZ:
		a.host.RzAxis(Scale8(v))
	}
}

// Scale16 maps [0.0, 1.0] onto the signed 16-bit range. 1.0 saturates at
// math.MaxInt16.
func Scale16(v float64) int16 {
	n := math.Round(clamp(v, 0, 1)*65536) - 32768
	return int16(clamp(n, math.MinInt16, math.MaxInt16))
}

// Scale8 maps [0.0, 1.0] onto the signed 8-bit range. 1.0 saturates at
// math.MaxInt8.
func Scale8(v float64) int8 {
	n := math.Round(clamp(v, 0, 1)*256) - 128
	return int8(clamp(n, math.MinInt8, math.MaxInt8))
}

func clamp[T constraints.Float](v, lo, hi T) T {
	// NaN compares false both ways and would slip through min/max.
	if v != v {
		return lo
	}
	return min(max(v, lo), hi)
}
