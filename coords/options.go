// SPDX-License-Identifier: MIT

package coords

import (
	"io"
	"log/slog"
)

const panicLoggerNil = "coords: WithLogger: nil logger"

// Option configures an alignment.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// discard is the silent default logger.
var discard = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))

// WithLogger reports each aligned dimension to l at debug level.
// Panics on a nil logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts ...Option) options {
	o := options{logger: discard}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
