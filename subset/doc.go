// Package subset picks K evenly distributed members out of N ordered slots.
//
// It is a pure function of (algorithm, N, K) and is shared by pitch
// reduction (choosing scale degrees out of a large pitch set) and rhythm
// generation (choosing hits out of a step grid).
//
// Algorithms:
//
//   - None:           every slot is selected.
//   - Euclidean:      Bresenham-style bucket; exactly K hits, maximally even
//     (Bjorklund property).
//   - GolombRuler:    the marks of the largest tabulated optimal ruler that
//     fits, spread by ⌊N/(length+1)⌋.
//   - PerfectBalance: the marks of a tabulated perfectly balanced cyclic
//     pattern whose period divides N, spread by N/period.
//
// Contract:
//
//   - K ≥ N selects all slots for every algorithm.
//   - Selection never produces more than K slots.
//   - Slot 0 is always selected when K ≥ 1.
//
// Usage:
//
//	mask := subset.Mask(subset.Euclidean, 12, 7) // []bool, len 12, 7 true
//	pos := subset.Positions(subset.GolombRuler, 17, 5) // [0 1 4 9 11]
package subset
