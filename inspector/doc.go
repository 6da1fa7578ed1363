// Package inspector provides a Bubble Tea component that edits a
// utf8text.Text and renders its byte layout alongside its byte, character,
// rune and cell counts.
package inspector
