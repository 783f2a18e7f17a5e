// SPDX-License-Identifier: MIT

package xarray

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvaxis/coords"
)

// Join selects how the labels of same-named dimensions are combined.
type Join uint8

const (
	// Outer keeps the union of labels; missing values become NaN.
	Outer Join = iota
	// Inner keeps only the labels present in both operands.
	Inner
)

// DefaultJoin is used when WithJoin is not given.
const DefaultJoin = Outer

const (
	panicJoinInvalid = "xarray: WithJoin: unknown join"
	panicLoggerNil   = "xarray: WithLogger: nil logger"
)

// String returns "outer" or "inner".
func (j Join) String() string {
	switch j {
	case Outer:
		return "outer"
	case Inner:
		return "inner"
	default:
		return fmt.Sprintf("Join(%d)", uint8(j))
	}
}

// Option configures a binary operation.
type Option func(*options)

type options struct {
	join   Join
	logger *slog.Logger
}

// WithJoin selects the join. Panics on an unknown value.
func WithJoin(j Join) Option {
	if j != Outer && j != Inner {
		panic(panicJoinInvalid)
	}

	return func(o *options) { o.join = j }
}

// WithLogger receives debug records about alignment.
// Panics on a nil logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts ...Option) options {
	o := options{join: DefaultJoin}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// coordsOptions forwards the logger to the alignment.
func (o options) coordsOptions() []coords.Option {
	if o.logger == nil {
		return nil
	}

	return []coords.Option{coords.WithLogger(o.logger)}
}
