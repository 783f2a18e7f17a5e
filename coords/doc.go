// SPDX-License-Identifier: MIT

// Package coords holds coordinate systems: ordered sets of named axes that
// describe the dimensions of a labeled array.
//
// Alignment is the reason the package exists. When arrays are combined, their
// coordinate systems are aligned dimension by dimension, joining on the
// dimension name:
//
//   - Broadcast (outer join): dimensions are the union in first-appearance
//     order and same-named axes are merged.
//   - Intersect (inner join): dimensions are the same union, same-named axes
//     are intersected.
//
// Both report whether the alignment was trivial, i.e. every input already
// equals the result, so callers can skip re-indexing. Axes are cloned
// before any merge; inputs are never modified. A default axis stays default
// while it equals every other same-named axis and is converted to an
// int-labeled axis only when the join actually changes it.
//
// Logging is off unless WithLogger is given; each aligned dimension is then
// reported at debug level.
package coords
