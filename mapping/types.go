package mapping

import (
	"fmt"
	"strconv"
	"strings"
)

// Degrees is the size of the reference octave.
const Degrees = 12

// Mode selects a mapping strategy.
type Mode int

const (
	// NoMapping keeps every reduced entry.
	NoMapping Mode = iota
	// Spread places reference degrees proportionally across the entries.
	Spread
	// Repeat tiles the reference pattern across the entries.
	Repeat
	// NearestNeighbor snaps each reference degree to the closest entry in cents.
	NearestNeighbor
)

// ModeCount is the number of defined modes.
const ModeCount = 4

var modeNames = [ModeCount]string{"none", "spread", "repeat", "nearest"}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= ModeCount {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode resolves a name produced by String (case-insensitive).
func ParseMode(s string) (Mode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == s {
			return Mode(i), true
		}
	}

	return NoMapping, false
}

// MarshalText renders m as its name.
func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= ModeCount {
		m = NoMapping
	}

	return []byte(m.String()), nil
}

// UnmarshalText accepts a name or a decimal index; unknown values become NoMapping.
func (m *Mode) UnmarshalText(b []byte) error {
	if v, ok := ParseMode(string(b)); ok {
		*m = v

		return nil
	}
	*m = NoMapping
	if n, err := strconv.Atoi(strings.TrimSpace(string(b))); err == nil && n >= 0 && n < ModeCount {
		*m = Mode(n)
	}

	return nil
}

// Scale is one reference scale: which of the 12 degrees are active and how
// much each weighs.
type Scale struct {
	Name    string
	Active  [Degrees]bool
	Weights [Degrees]float64
}

// Len returns the number of active degrees.
func (s Scale) Len() int {
	n := 0
	for _, a := range s.Active {
		if a {
			n++
		}
	}

	return n
}

// Config holds the mapping knobs. It is comparable.
type Config struct {
	Mode         Mode `yaml:"mode" json:"mode"`
	Scale        int  `yaml:"scale" json:"scale"`
	UseWeighting bool `yaml:"use_weighting" json:"use_weighting"`
}

// Clamp moves every field into range.
func (c Config) Clamp() Config {
	if c.Mode < 0 || int(c.Mode) >= ModeCount {
		c.Mode = NoMapping
	}
	if c.Scale < 0 {
		c.Scale = 0
	}
	if c.Scale >= ScaleCount {
		c.Scale = ScaleCount - 1
	}

	return c
}
