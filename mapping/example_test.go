package mapping_test

import (
	"fmt"

	"github.com/almostEric/FrozenWasteland-sub000/mapping"
	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

// ExampleMap lays the major scale over 19 equal divisions.
func ExampleMap() {
	entries := make([]pitch.Entry, 19)
	for i := range entries {
		entries[i].Cents = float64(i) * 1200 / 19
	}
	idx, _ := mapping.ScaleByName("major")
	cfg := mapping.Config{Mode: mapping.NearestNeighbor, Scale: idx, UseWeighting: true}

	out := mapping.Map(entries, cfg, 1)
	for _, i := range mapping.Active(out) {
		fmt.Printf("%d:%.0f¢ w=%.1f\n", i, out[i].Cents, out[i].Weighting)
	}
	// Output:
	// 0:0¢ w=1.0
	// 3:189¢ w=0.5
	// 6:379¢ w=0.8
	// 8:505¢ w=0.5
	// 11:695¢ w=0.9
	// 14:884¢ w=0.4
	// 17:1074¢ w=0.6
}
