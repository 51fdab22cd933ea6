// SPDX-License-Identifier: MIT

// Package scala exports a built scale in the Scala tuning-file format (.scl).
//
// The file lists one cents value per in-use note of the reduced and mapped
// scale, scaled by the octave size, preceded by comment lines describing the
// active factors, reduction and mapping, and terminated by the period line.
// Export is best-effort and never affects the engine.
package scala
