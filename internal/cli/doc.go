// Package cli defines the gazetteer command tree.
package cli
