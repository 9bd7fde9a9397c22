// Package state holds the snapshot of the most recently rendered page,
// shared between the controller's renderer side and the UI.
package state
