// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content according to terminal capability: colorized
// when colors are available, text decorations (backticks, quotes) when
// NO_COLOR is set or the terminal cannot display color.
//
//	ui.Code.Sprint("atelier workspace create main")
//	ui.Path.Sprint("~/.config/atelier/vaults_config.json")
//	ui.Highlight.Sprint("default")
package ui
