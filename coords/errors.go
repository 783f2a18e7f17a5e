// SPDX-License-Identifier: MIT

package coords

import "errors"

var (
	// ErrDuplicateDimension indicates two axes of one system share a name.
	ErrDuplicateDimension = errors.New("coords: duplicate dimension")

	// ErrMissingDimension indicates a dimension of the system has no label in
	// a Locate request.
	ErrMissingDimension = errors.New("coords: missing dimension")

	// ErrUnknownDimension indicates a name that is not a dimension of the system.
	ErrUnknownDimension = errors.New("coords: unknown dimension")
)
