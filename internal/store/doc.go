// Package store implements atelier's persistent typed key/value document.
//
// A Store maps string keys to values of a closed set of types: string,
// bool, int, float, and list of strings. The document is backed by a
// pretty-printed JSON file and follows a strict failure discipline:
//
//   - Implicit reads (startup Load, Get) never fail. A missing or corrupt
//     file degrades to an empty document; a type-mismatched key degrades
//     to the caller's default.
//   - Explicit writes (Save, LoadFromJSON) propagate errors, because the
//     caller asked for a specific effect and silent failure would lose
//     data.
//
// Saves are atomic (write-to-temp-then-rename), so a concurrent reader
// never observes a half-written document. Set only mutates memory;
// callers persist with Save, typically at shutdown.
package store
