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

import (
	"bufio"
	"context"
	"io"
	"time"
)

// ReaderProcessor connects an io.Reader to a Processor by scanning the input
// stream into tokens.
//
// Tokenization is controlled by a bufio.SplitFunc (default: ScanRecords).
// Each token is converted into the carrier type S via:
//
//	prototype.FromUTF8String(token).WithIndex(i)
//
// where prototype is the zero value of S and i is the token sequence number.
//
// The scanner yields bytes as-is; ReaderProcessor assumes those bytes
// represent UTF-8 text.
//
// Usage pattern:
//
//	rp := NewReaderProcessor(myProcessor, reader)
//	rp.SetContext(ctx)     // optional, before Start / StartWithTimeout
//	rp.SetSplitFunc(...)   // optional, before Start / StartWithTimeout
//	out := rp.Start()
//	for item := range out { /* consume */ }
//
// Start spawns a goroutine that scans the input and feeds the processor's
// input channel. Stop cancels the context, which causes the processor and the
// scanner goroutine to exit promptly.
//
// Note: FromUTF8String is called on the zero value of S, so implementations
// must not depend on receiver state.
type ReaderProcessor[S Carrier[S], P Processor[S]] struct {
	reader    io.Reader
	splitFunc bufio.SplitFunc
	processor P

	// ctx and cancel control the lifetime of the scanning / processing loop.
	// When ctx is nil, Start will create a background context.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewReaderProcessor constructs a ReaderProcessor using the provided
// processor and reader. By default it tokenizes with ScanRecords and uses a
// background context created on the first Start.
func NewReaderProcessor[S Carrier[S], P Processor[S]](processor P, reader io.Reader) *ReaderProcessor[S, P] {
	return &ReaderProcessor[S, P]{
		splitFunc: ScanRecords,
		reader:    reader,
		processor: processor,
	}
}

// SetContext sets the base context used by Start / StartWithTimeout.
//
// It must be called before Start. The provided context is wrapped in a
// cancellable child so that Stop can terminate the processing loop even if
// the parent context is still alive.
func (p *ReaderProcessor[S, P]) SetContext(ctx context.Context) {
	if ctx == nil {
		// Avoid keeping a nil context internally; always fall back to Background.
		ctx = context.Background()
	}
	p.ctx, p.cancel = context.WithCancel(ctx)
}

// SetSplitFunc customizes the tokenization strategy.
//
// It must be called before Start. If left unset, ScanRecords is used, which
// yields one token per record line (without the trailing separator).
func (p *ReaderProcessor[S, P]) SetSplitFunc(splitFunc bufio.SplitFunc) {
	p.splitFunc = splitFunc
}

// ensureContext initializes ctx / cancel if needed.
//
// When a context has been injected via SetContext it is reused. If ctx is set
// but cancel is nil (after manual field initialization), a cancellable child
// context is derived so that Stop can be used safely.
func (p *ReaderProcessor[S, P]) ensureContext() {
	switch {
	case p.ctx == nil && p.cancel == nil:
		p.ctx, p.cancel = context.WithCancel(context.Background())
	case p.ctx != nil && p.cancel == nil:
		p.ctx, p.cancel = context.WithCancel(p.ctx)
	}
}

// Start reads from p.reader using a bufio.Scanner, splits according to the
// configured split func, converts each scanned token into an S, and sends it
// into the underlying processor.
//
// Scanning stops as soon as:
//   - scanner.Scan() returns false (EOF or error), or
//   - the context is canceled or its deadline is exceeded.
func (p *ReaderProcessor[S, P]) Start() <-chan S {
	p.ensureContext()

	scanner := bufio.NewScanner(p.reader)
	if p.splitFunc != nil {
		scanner.Split(p.splitFunc)
	}

	// Channel feeding the underlying processor.
	in := make(chan S)

	// Start the processor on the stream of S values.
	out := p.processor.Apply(p.ctx, in)

	// Goroutine responsible for scanning and feeding the input channel.
	go func() {
		prototype := *new(S)
		defer close(in)

		counter := 0
		for {
			// Check for cancellation before attempting to scan.
			select {
			case <-p.ctx.Done():
				return
			default:
			}

			if !scanner.Scan() {
				// EOF or read error.
				return
			}

			text := scanner.Text()
			item := prototype.FromUTF8String(text).WithIndex(counter)
			counter++

			// Send the value to the processor, remaining cancellable.
			select {
			case <-p.ctx.Done():
				return
			case in <- item:
			}
		}
	}()
	return out
}

// StartWithTimeout is like Start but automatically cancels the context when
// the provided timeout elapses.
//
// If timeout <= 0, it simply delegates to Start without adding a timeout.
func (p *ReaderProcessor[S, P]) StartWithTimeout(timeout time.Duration) <-chan S {
	if timeout <= 0 {
		return p.Start()
	}
	parent := p.ctx
	if parent == nil {
		parent = context.Background()
	}
	p.ctx, p.cancel = context.WithTimeout(parent, timeout)
	return p.Start()
}

// Stop cancels the current processing context, if any.
//
// It is safe to call Stop even if Start has not been invoked yet; in that
// case it is a no-op.
func (p *ReaderProcessor[S, P]) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
}
