// Package mapping lays a conventional 12-degree reference scale over a
// reduced pitch set: it decides which reduced entries are playable (InUse)
// and how strongly each one is weighted.
//
// Modes:
//
//   - NoMapping:       every entry in use at the baseline weight.
//   - Spread:          active degree d marks entry ⌊d·size/12⌋.
//   - Repeat:          the 12-degree pattern tiles the entries in order.
//   - NearestNeighbor: active degree d marks the entry nearest
//     d·100·octaveScale cents.
//
// Entries left unmarked keep the baseline weight and are excluded from
// selection. If a mode marks nothing, the unison is marked so the selector
// always has a note to play.
package mapping
