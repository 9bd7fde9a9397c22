// Package server implements a local demo collection endpoint over a
// built-in country dataset, matching the contract the gazetteer client
// expects from a remote deployment.
package server
