// SPDX-License-Identifier: MIT
// Package molecule: sentinel error set.
// Every message is prefixed with "molecule: ...". Context is added with
// fmt.Errorf("...: %w", ErrX); callers match with errors.Is.

package molecule

import "errors"

var (
	// ErrIndexOutOfRange indicates an atom or bond index outside [0, count).
	ErrIndexOutOfRange = errors.New("molecule: index out of range")

	// ErrInvalidHandle indicates a zero-value Atom or Bond with no owning molecule.
	ErrInvalidHandle = errors.New("molecule: invalid handle")

	// ErrForeignHandle indicates a handle owned by a different Molecule.
	ErrForeignHandle = errors.New("molecule: handle belongs to another molecule")

	// ErrStaleHandle indicates the handle's entity was removed or shifted to another index.
	ErrStaleHandle = errors.New("molecule: stale handle")

	// ErrBondNotFound indicates no bond matches the requested endpoint pair.
	ErrBondNotFound = errors.New("molecule: bond not found")

	// ErrInconsistent indicates topology and attribute tables disagree.
	ErrInconsistent = errors.New("molecule: inconsistent state")
)
