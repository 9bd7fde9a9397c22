// Package app wires configuration, the countries client, the list
// controller, and the UI into a runnable application.
package app
