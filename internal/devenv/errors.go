// SPDX-License-Identifier: MIT

package devenv

import "errors"

var (
	// ErrUnknownField classifies strict YAML parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownField) instead of string matching.
	ErrUnknownField = errors.New("unknown descriptor field")

	// ErrEmptyDescriptor is returned when the descriptor payload is empty.
	ErrEmptyDescriptor = errors.New("descriptor is empty")
)
