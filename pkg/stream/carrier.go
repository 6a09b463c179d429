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

// Package stream provides a small channel-based pipeline for converting a
// stream of UTF-8 text records into typed carrier values.
//
// The stack (Processor, Chain, ReaderProcessor, …) is parameterized by a
// carrier type S implementing Carrier[S]. Per-item errors travel on the
// carrier as data, not as control flow: the stream never stops because an
// item failed to convert, and it is up to the final consumer (or a dedicated
// stage) to decide what to do with error-carrying items.
package stream

// UTF8String is a symbolic alias used throughout the package.
//
// Sources may arrive in other encodings, but once inside the pipeline every
// piece of text is represented as UTF-8.
//
// Note: this is an alias (not a distinct type) and exists mostly for code
// readability.
type UTF8String = string

// Carrier is the contract implemented by values flowing through the pipeline.
//
// Method expectations:
//
//   - UTF8String returns the current UTF-8 rendering of the carrier.
//
//   - FromUTF8String creates a new carrier from a UTF-8 token. The receiver
//     is treated as a prototype: most code calls it on the zero value of S,
//     so it must not rely on receiver state. It never fails; conversion
//     problems are attached to the returned carrier as a per-item error.
//
//   - WithIndex / GetIndex attach and retrieve an ordering hint.
//     ReaderProcessor uses it to record the token sequence number.
//
//   - WithError / GetError attach and retrieve a non-fatal, per-item error.
//     Errors carried by S are data: the stack does not stop when
//     GetError() != nil.
//
// Implementations should be cheap to copy (typically small structs), and
// methods must be safe to call on the zero value.
type Carrier[S any] interface {
	UTF8String() UTF8String
	FromUTF8String(s UTF8String) S
	WithIndex(index int) S
	GetIndex() int
	WithError(err error) S
	GetError() error
}
