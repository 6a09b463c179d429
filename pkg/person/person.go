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

// Package person converts "name,age" text records into validated Person
// values under two distinct failure policies:
//
//   - Parse reports a classified *ParseError for any invalid input
//     (strict policy).
//   - ParseOrDefault silently substitutes Default() for any invalid input
//     (best-effort policy).
//
// Both policies share the same validation pipeline and only differ in what
// happens when a step fails. For streaming ingestion, Carrier plugs the same
// conversion into the stream package.
package person

import "strconv"

// Person is a validated record.
//
// Invariant: Name is never empty and Age always fits in 8 bits. The parsing
// functions in this package are the only gate constructing a Person from
// untrusted text, and they enforce both properties before returning one.
type Person struct {
	Name string `json:"name"`
	Age  uint8  `json:"age"`
}

// Default returns the fallback record substituted for any invalid input by
// ParseOrDefault. It trivially satisfies the Person invariant.
func Default() Person {
	return Person{
		Name: "John",
		Age:  30,
	}
}

// String renders the record in its textual form "Name,Age", the same form
// Parse accepts.
func (p Person) String() string {
	return p.Name + "," + strconv.FormatUint(uint64(p.Age), 10)
}
