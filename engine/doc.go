// Package engine wires the scale pipeline and the per-channel selectors into
// a sample-driven note generator.
//
// Data flows strictly downstream:
//
//	builder.Build → subset.Mask → mapping.Map → selector (per channel)
//
// The scale half (everything up to mapping) is a memoized pure function of
// ScaleConfig: BuildScale rebuilds only the stages whose inputs changed, and
// the Engine publishes each finished ScaleState through an atomic pointer so
// a trigger never observes a half-built scale. Rebuilds happen in SetParams,
// never in Process.
//
// Process runs once per sample for up to MaxChannels polyphonic channels.
// Each channel owns a selector.State; all channels read the same published
// scale.
package engine
