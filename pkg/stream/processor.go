// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stream

import "context"

// Processor is a chainable building block for a pipeline.
//
// Implementations are expected to:
//
//   - Read zero or more values from the input channel.
//   - Produce zero or more processed values on the returned channel.
//   - Respect ctx.Done() and stop processing promptly when the context is
//     canceled.
//   - Close the returned channel when processing is complete or when the
//     context is canceled.
//   - Never close the input channel; the upstream stage owns it.
//
// The returned channel must be non-nil. Callers are expected to consume from
// the returned channel until it is closed.
type Processor[S Carrier[S]] interface {
	Apply(ctx context.Context, in <-chan S) <-chan S
}

// ProcessorFunc is a function adapter that implements Processor.
//
// It allows plain functions to be used as Processor values:
//
//	p := ProcessorFunc[C](func(ctx context.Context, in <-chan C) <-chan C {
//		return Async(ctx, in, func(ctx context.Context, c C) C {
//			// transform c
//			return c
//		})
//	})
type ProcessorFunc[S Carrier[S]] func(ctx context.Context, in <-chan S) <-chan S

// Apply calls f(ctx, in).
func (f ProcessorFunc[S]) Apply(ctx context.Context, in <-chan S) <-chan S {
	return f(ctx, in)
}

// Chain composes one or more processors after this processor.
//
// Given receiver f and processors p1, p2, the resulting processor behaves
// like:
//
//	out := p2.Apply(ctx, p1.Apply(ctx, f.Apply(ctx, in)))
//
// Nil processors are ignored.
func (f ProcessorFunc[S]) Chain(p ...Processor[S]) ProcessorFunc[S] {
	switch len(p) {
	case 0:
		return f
	case 1:
		if p[0] == nil {
			return f
		}
		next := p[0]
		return func(ctx context.Context, in <-chan S) <-chan S {
			return next.Apply(ctx, f.Apply(ctx, in))
		}
	default:
		chained := NewChain[S](append([]Processor[S]{f}, p...)...)
		return chained.Apply
	}
}
