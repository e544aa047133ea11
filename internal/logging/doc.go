// Package logger provides leveled, colorized logging for CLI commands.
//
// Each command group owns a Logger configured from its --verbose and
// --debug flags. Info output is suppressed unless verbose; debug output
// is suppressed unless debug. Warnings and errors always print to stderr.
package logger
