// SPDX-License-Identifier: MIT

// Package named pairs a dimension name with an axis variant.
//
// A named Axis is immutable: Axis() hands out a clone of the variant, and a
// dimension rebuilt by set algebra is a new value obtained with WithAxis.
// The name is the join key used to align dimensions across coordinate
// systems.
package named
