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

package person

import (
	"context"
	"io"

	"github.com/benoit-pereira-da-silva/persona/pkg/stream"
)

// Ingest streams one Carrier per record line read from r.
//
// Lines are framed by stream.ScanRecords ('\n', '\r\n' or '\r', separator
// excluded) and converted through Carrier.FromUTF8String, so every emitted
// carrier holds a valid Person: the parsed one, or Default() with the
// ParseError attached as per-item data. The carrier index is the zero-based
// line number.
//
// Optional stages are chained after the conversion, in order. Invalid lines
// never stop the stream; cancel ctx to stop early.
//
//	for c := range person.Ingest(ctx, r) {
//		if err := c.GetError(); err != nil { … }
//	}
func Ingest(ctx context.Context, r io.Reader, stages ...stream.Processor[Carrier]) <-chan Carrier {
	rp := stream.NewReaderProcessor[Carrier](stream.NewChain(stages...), r)
	rp.SetContext(ctx)
	return rp.Start()
}

// Lenient returns a stage that collapses errored items to the bare default
// record, turning the stream into the best-effort policy: downstream
// consumers observe no per-item errors, only valid records.
//
// The ordering index is preserved.
func Lenient() stream.ProcessorFunc[Carrier] {
	return func(ctx context.Context, in <-chan Carrier) <-chan Carrier {
		return stream.Async(ctx, in, func(ctx context.Context, c Carrier) Carrier {
			if c.Error == nil {
				return c
			}
			return Carrier{
				Person: Default(),
				Index:  c.Index,
			}
		})
	}
}
