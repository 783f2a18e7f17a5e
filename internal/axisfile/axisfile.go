// SPDX-License-Identifier: MIT

// Package axisfile reads and writes coordinate systems as YAML.
//
// Format:
//
//	systems:
//	  - axes:
//	      - name: city
//	        type: string          # int | uint | rune | string | default
//	        labels: [ams, ber]
//	      - name: t
//	        type: default
//	        size: 3
//	        sorted: true          # optional; checked against the labels
//
// Labels are written as YAML strings or scalars and parsed according to the
// axis type; a rune label is a single character.
package axisfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvaxis/axis"
	"github.com/katalvlaran/lvaxis/coords"
	"github.com/katalvlaran/lvaxis/named"
	"github.com/katalvlaran/lvaxis/variant"
)

var (
	// ErrUnknownType indicates an axis type outside the supported set.
	ErrUnknownType = errors.New("axisfile: unknown axis type")

	// ErrSortedMismatch indicates a sorted flag contradicting the labels.
	ErrSortedMismatch = errors.New("axisfile: sorted flag does not match labels")

	// ErrInvalidAxis indicates an axis entry that cannot be built.
	ErrInvalidAxis = errors.New("axisfile: invalid axis")
)

// Axis types.
const (
	TypeInt     = "int"
	TypeUint    = "uint"
	TypeRune    = "rune"
	TypeString  = "string"
	TypeDefault = "default"
)

// File is the document root.
type File struct {
	Systems []System `yaml:"systems"`
}

// System describes one coordinate system.
type System struct {
	Axes []Axis `yaml:"axes"`
}

// Axis describes one named axis.
type Axis struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Labels []string `yaml:"labels,omitempty"`
	Size   int      `yaml:"size,omitempty"`
	Sorted *bool    `yaml:"sorted,omitempty"`
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read axis file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &f, nil
}

// Marshal encodes f as YAML.
func Marshal(f *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Build returns the coordinate systems described by f, in order.
func (f *File) Build() ([]*coords.System, error) {
	out := make([]*coords.System, len(f.Systems))
	for i, s := range f.Systems {
		cs, err := s.Build()
		if err != nil {
			return nil, fmt.Errorf("systems[%d]: %w", i, err)
		}
		out[i] = cs
	}

	return out, nil
}

// Build returns the coordinate system described by s.
func (s System) Build() (*coords.System, error) {
	axes := make([]named.Axis, len(s.Axes))
	for i, a := range s.Axes {
		n, err := a.Build()
		if err != nil {
			return nil, fmt.Errorf("axes[%d]: %w", i, err)
		}
		axes[i] = n
	}

	return coords.New(axes...)
}

// Build returns the named axis described by a.
func (a Axis) Build() (named.Axis, error) {
	v, err := a.toVariant()
	if err != nil {
		return named.Axis{}, fmt.Errorf("axis %q: %w", a.Name, err)
	}
	if a.Sorted != nil && *a.Sorted && !v.IsSorted() {
		return named.Axis{}, fmt.Errorf("axis %q: %w", a.Name, ErrSortedMismatch)
	}

	return named.New(a.Name, v)
}

func (a Axis) toVariant() (variant.Axis, error) {
	if a.Type != TypeDefault && a.Size != 0 {
		return variant.Axis{}, fmt.Errorf("%w: size is only valid for type %s", ErrInvalidAxis, TypeDefault)
	}

	// sorted: false is kept as written; an axis may carry it over ordered labels.
	var opts []axis.Option
	if a.Sorted != nil && !*a.Sorted {
		opts = append(opts, axis.WithSorted(false))
	}

	switch a.Type {
	case TypeInt:
		return build[int](variant.IntLabel, a.Labels, opts...)
	case TypeUint:
		return build[uint](variant.SizeLabel, a.Labels, opts...)
	case TypeRune:
		return build[rune](variant.CharLabel, a.Labels, opts...)
	case TypeString:
		return build[string](variant.StringLabel, a.Labels, opts...)
	case TypeDefault:
		if len(a.Labels) > 0 {
			return variant.Axis{}, fmt.Errorf("%w: a default axis has no labels", ErrInvalidAxis)
		}
		return variant.NewDefault(a.Size)
	}

	return variant.Axis{}, fmt.Errorf("%w: %q", ErrUnknownType, a.Type)
}

func build[L variant.LabelType](kind variant.LabelKind, raw []string, opts ...axis.Option) (variant.Axis, error) {
	labels := make([]L, len(raw))
	for i, s := range raw {
		l, err := variant.ParseLabel(kind, s)
		if err != nil {
			return variant.Axis{}, fmt.Errorf("labels[%d]: %w", i, err)
		}
		labels[i], _ = variant.Value[L](l)
	}

	return variant.Of(axis.Wrap(labels, opts...)), nil
}

// FromSystems describes coordinate systems as a File.
func FromSystems(systems ...*coords.System) (*File, error) {
	f := &File{Systems: make([]System, len(systems))}
	for i, cs := range systems {
		s := System{Axes: make([]Axis, cs.Len())}
		for d := range cs.Len() {
			n := cs.AxisAt(d)
			enc := encoder{out: Axis{Name: n.Name()}}
			if err := n.Axis().Visit(&enc); err != nil {
				return nil, err
			}
			s.Axes[d] = enc.out
		}
		f.Systems[i] = s
	}

	return f, nil
}

// encoder writes the active alternative of a variant into an Axis entry.
type encoder struct {
	out Axis
}

func (e *encoder) VisitInt(ax *axis.Axis[int]) error {
	encodeLabels(&e.out, TypeInt, ax, strconv.Itoa)

	return nil
}

func (e *encoder) VisitSize(ax *axis.Axis[uint]) error {
	encodeLabels(&e.out, TypeUint, ax, func(u uint) string { return strconv.FormatUint(uint64(u), 10) })

	return nil
}

func (e *encoder) VisitChar(ax *axis.Axis[rune]) error {
	encodeLabels(&e.out, TypeRune, ax, func(r rune) string { return string(r) })

	return nil
}

func (e *encoder) VisitString(ax *axis.Axis[string]) error {
	encodeLabels(&e.out, TypeString, ax, func(s string) string { return s })

	return nil
}

func (e *encoder) VisitDefault(ax *axis.DefaultAxis[int]) error {
	e.out.Type = TypeDefault
	e.out.Size = ax.Size()

	return nil
}

func encodeLabels[L variant.LabelType](out *Axis, typ string, ax *axis.Axis[L], format func(L) string) {
	sorted := ax.IsSorted()
	out.Type = typ
	out.Sorted = &sorted
	out.Labels = make([]string, ax.Size())
	for i, l := range ax.Labels() {
		out.Labels[i] = format(l)
	}
}
