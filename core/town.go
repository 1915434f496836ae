// SPDX-License-Identifier: MIT

// File: town.go
// Role: Town value semantics (identity, ordering, validation).
package core

import "strings"

// NewTown returns a Town named name. An empty name yields an unset Town that
// graph mutators reject with ErrEmptyTownName.
func NewTown(name string) *Town {
	return &Town{name: name}
}

// Name returns the town name, or "" for a nil Town.
func (t *Town) Name() string {
	if t == nil {
		return ""
	}

	return t.name
}

// IsNil reports whether the receiver is nil; safe for typed nils behind interfaces.
func (t *Town) IsNil() bool { return t == nil }

// Equal reports whether t and o name the same town.
// A nil Town is equal only to another nil Town.
func (t *Town) Equal(o *Town) bool {
	if t == nil || o == nil {
		return t == nil && o == nil
	}

	return t.name == o.name
}

// Compare orders towns lexicographically by name.
// It returns -1, 0 or +1 like strings.Compare.
func (t *Town) Compare(o *Town) int {
	return strings.Compare(t.Name(), o.Name())
}

// String returns the town name.
func (t *Town) String() string { return t.Name() }

// validateTown returns the sentinel describing why t cannot be stored, or nil.
func validateTown(t *Town) error {
	if t == nil {
		return ErrNilTown
	}
	if t.name == "" {
		return ErrEmptyTownName
	}

	return nil
}
