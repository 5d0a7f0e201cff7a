// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"strings"
	"time"
)

// Unit selects how a duration is reported as an integer count.
type Unit int

const (
	// Millisecond reports whole milliseconds (truncated).
	Millisecond Unit = iota
	// Microsecond reports whole microseconds (truncated).
	Microsecond
	// Nanosecond reports nanoseconds.
	Nanosecond
)

var unitNames = [...]string{
	Millisecond: "ms",
	Microsecond: "us",
	Nanosecond:  "ns",
}

func (u Unit) valid() bool { return u >= Millisecond && u <= Nanosecond }

// String returns the short unit name ("ms", "us", "ns").
func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}

	return unitNames[u]
}

// Count converts d to an integer count of u, truncating toward zero.
func (u Unit) Count(d time.Duration) int64 {
	switch u {
	case Microsecond:
		return d.Microseconds()
	case Nanosecond:
		return d.Nanoseconds()
	default:
		return d.Milliseconds()
	}
}

// ParseUnit maps a unit name to a Unit. Accepts "ms", "us", "µs" and "ns",
// case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ms":
		return Millisecond, nil
	case "us", "µs":
		return Microsecond, nil
	case "ns":
		return Nanosecond, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownUnit)
}
