// SPDX-License-Identifier: MIT

package variant

import "errors"

var (
	// ErrTypeMismatch indicates a strict accessor was used on a Variant of another kind.
	ErrTypeMismatch = errors.New("variant: type mismatch")

	// ErrKeyNotFound indicates Map.Value was called with a name that is not stored.
	ErrKeyNotFound = errors.New("variant: key not found")

	// ErrUnsupportedType indicates New was given a Go value the union cannot hold.
	ErrUnsupportedType = errors.New("variant: unsupported type")
)
