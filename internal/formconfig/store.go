// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package formconfig

// Store is a read-only view of persisted configuration values keyed by field name.
type Store interface {
	Lookup(name string) (string, bool)
}

// MapStore is an in-memory Store.
type MapStore map[string]string

// Lookup implements Store.
func (m MapStore) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// StoreFunc adapts a function to the Store interface. A nil StoreFunc holds no values.
type StoreFunc func(name string) (string, bool)

// Lookup implements Store.
func (fn StoreFunc) Lookup(name string) (string, bool) {
	if fn == nil {
		return "", false
	}
	return fn(name)
}
