package mapping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownScale indicates that no reference scale is close to a name.
var ErrUnknownScale = errors.New("mapping: unknown reference scale")

// maxNameDistance is the largest edit distance ScaleByName accepts.
const maxNameDistance = 3

// ScaleByName returns the index of the reference scale called name.
// Matching is case-insensitive; when there is no exact match the closest
// name by edit distance is used, as long as it is within maxNameDistance.
func ScaleByName(name string) (int, error) {
	want := normalizeName(name)
	best, bestDist := -1, maxNameDistance+1
	for i, s := range ReferenceScales {
		have := normalizeName(s.Name)
		if have == want {
			return i, nil
		}
		if d := levenshtein.ComputeDistance(want, have); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("ScaleByName(%q): %w", name, ErrUnknownScale)
	}

	return best, nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")

	return strings.Join(strings.Fields(s), " ")
}
