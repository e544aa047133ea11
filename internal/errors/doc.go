// Package errors defines sentinel errors for the atelier state layer.
//
// These are the expected, recoverable conditions (missing workspace,
// duplicate vault, invalid project path). Callers match them with
// errors.Is and degrade gracefully; anything not covered here is an
// unexpected failure and is wrapped with context instead.
package errors
