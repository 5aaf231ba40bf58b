// Package encode renders documents back into the configuration
// grammar, optionally with ANSI colors, and serializes Go values via
// explicit schema descriptors.
//
// Rendered output is normalized: comments and blank lines from the
// source are not preserved, groups are emitted in insertion order.
package encode
