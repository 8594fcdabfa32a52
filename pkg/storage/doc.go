// Package storage provides a thin JSON-over-BadgerDB key-value store used
// for pantry inventories and dietary preferences.
package storage
