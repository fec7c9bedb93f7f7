// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package profile

import (
	"context"

	"github.com/z5labs/vfsopt"
	"github.com/z5labs/vfsopt/connect"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Apply writes the given options onto target, in order, stopping at
// the first failure. Apply does not synchronize access to target;
// callers sharing one target across goroutines must serialize calls
// themselves.
func Apply(ctx context.Context, target *connect.Options, opts ...vfsopt.Option) error {
	_, span := otel.Tracer("github.com/z5labs/vfsopt/profile").Start(
		ctx,
		"profile.Apply",
		trace.WithAttributes(attribute.Int("profile.options", len(opts))),
	)
	defer span.End()

	for _, o := range opts {
		err := o.Apply(target)
		if err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}
