// Package format holds the display filters applied to ROM data in the views.
//
// Every filter is a pure function: no I/O, no shared state, safe to call from
// any goroutine. Filters come in two flavours. The generic helpers (HexOf,
// Bytes) take a statically typed number and cannot fail on type. The dynamic
// helpers (Hex, ConditionalHex, Bool, HumanizeBytes) take any value and resolve
// numeric versus opaque input with an explicit runtime check; they are what
// the template Registry exposes.
package format
