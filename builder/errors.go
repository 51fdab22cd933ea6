// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Configuration is clamp-on-write and never produces errors.
//   • The only failure class is programmer error when composing custom
//     generator pipelines through BuildWith.
//   • Callers branch with errors.Is; messages carry context via %w.

package builder

import "errors"

// ErrNilGenerator indicates that BuildWith received a nil Generator.
var ErrNilGenerator = errors.New("builder: nil generator")
