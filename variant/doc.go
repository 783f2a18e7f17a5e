// SPDX-License-Identifier: MIT

// Package variant provides the type-erased axis: one value type able to hold
// any concrete axis of the closed label-type set, so that dimensions labeled
// by integers, sizes, characters and strings can live side by side in one
// coordinate system.
//
// The closed set:
//
//	Kind         alternative                 LabelKind
//	KindInt      *axis.Axis[int]             IntLabel
//	KindSize     *axis.Axis[uint]            SizeLabel
//	KindChar     *axis.Axis[rune]            CharLabel
//	KindString   *axis.Axis[string]          StringLabel
//	KindDefault  *axis.DefaultAxis[int]      IntLabel
//
// Exactly one alternative is active; the zero Axis has none and reports
// ErrEmptyVariant. Labels cross the type-erased boundary as Label values, a
// tagged union over the same set; label lists cross it as LabelList, a
// borrowed view that does not copy the underlying storage.
//
// Set algebra is only defined between axes of the same label kind:
// Merge/Intersect check every argument (ErrLabelTypeMismatch) and reject a
// default receiver (ErrUnsupported) before anything is written. A default
// axis is still accepted as an argument of an int-labeled receiver.
//
// Dispatch goes through a sealed interface implemented once, generically, for
// the sorted-form alternatives and once for the default alternative. Callers
// needing the concrete axis use Get/GetDefault or the exhaustive Visitor.
package variant
