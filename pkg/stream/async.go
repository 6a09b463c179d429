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

// Async starts a single-worker streaming "map" stage.
//
// It consumes values from in, applies f to each value, and sends the results
// to the returned channel. Async is the low-ceremony building block used to
// implement Processor stages in this package's channel-based model.
//
// Streaming contract:
//
//   - Async never closes in; the upstream stage owns the input channel.
//   - Async closes the returned channel exactly once, when it is done.
//   - The worker exits when ctx is canceled or when in is closed.
//   - Async emits exactly one output per input (1:1 mapping).
//
// Every receive and every send is performed in a select that also watches
// ctx.Done(), so a canceled pipeline cannot leak the worker goroutine. If the
// final consumer wants to stop early it must cancel the context; breaking out
// of a for-range on the output channel alone can leave upstream stages
// blocked on sends.
func Async[S Carrier[S]](ctx context.Context, in <-chan S, f func(ctx context.Context, item S) S) <-chan S {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make(chan S)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-in:
				if !ok {
					return
				}
				mapped := f(ctx, item)
				select {
				case <-ctx.Done():
					return
				case out <- mapped:
				}
			}
		}
	}()
	return out
}
