// Package ui implements the terminal interface with Bubble Tea.
//
// The model never mutates list state itself: every keypress that changes
// page, filter, or sort runs a controller operation as a tea.Cmd and then
// re-reads the snapshot store when the operation completes.
package ui
