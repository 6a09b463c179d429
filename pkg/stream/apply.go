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

// Apply runs a Processor on a single input value and returns the result.
//
// It feeds in through the processor as a one-element stream and drains the
// output. If the processor emits nothing, the input value is returned
// unchanged (pass-through in the degenerate case). If it emits several
// values, the first one is returned; stages built with Async are 1:1, so
// this only matters for custom fan-out processors, which Apply is not meant
// for.
//
// Context cancellation is respected during processing.
func Apply[S Carrier[S]](ctx context.Context, p Processor[S], in S) S {
	if ctx == nil {
		ctx = context.Background()
	}
	inCh := make(chan S, 1)
	inCh <- in
	close(inCh)

	results := make([]S, 0, 1)
	for res := range p.Apply(ctx, inCh) {
		results = append(results, res)
	}
	if len(results) == 0 {
		return in
	}
	return results[0]
}
