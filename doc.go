// Package ixml is an in-place XML 1.0 parser and arena-backed DOM.
//
// The parser scans a caller-owned, null-terminated byte buffer and emits
// structural events to a Handler. Decoding of entities and whitespace
// happens destructively, in place: every emitted slice aliases bytes the
// caller already owns, so parsing a well-formed document allocates nothing
// beyond the DOM nodes themselves. A Document built on top of Parse keeps
// that property — its string fields are views into the same buffer, not
// copies.
//
// The input buffer must outlive every slice and every DOM node built from
// it. Parse mutates the buffer in place and the DOM never copies out of
// it.
package ixml
