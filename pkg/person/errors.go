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
	"errors"
	"fmt"
)

// The closed set of failure kinds reported by Parse. Callers classify a
// returned error with errors.Is:
//
//	_, err := person.Parse(line)
//	if errors.Is(err, person.ErrInvalidAge) { … }
var (
	// ErrBadFieldCount reports that the input did not split into exactly two
	// comma-delimited fields.
	ErrBadFieldCount = errors.New("bad field count")

	// ErrEmptyName reports that the name field was empty.
	ErrEmptyName = errors.New("empty name")

	// ErrInvalidAge reports that the age field is not a base-10 integer in
	// [0, 255]. The underlying strconv failure is wrapped and reachable via
	// errors.As.
	ErrInvalidAge = errors.New("invalid age")
)

// ParseError describes why a line could not be converted into a Person.
//
// Kind is always one of the three sentinels above. For ErrInvalidAge, Cause
// carries the underlying *strconv.NumError; it is nil for the other kinds.
type ParseError struct {
	Kind  error
	Input string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse person %q: %v: %v", e.Input, e.Kind, e.Cause)
	}
	return fmt.Sprintf("parse person %q: %v", e.Input, e.Kind)
}

// Unwrap exposes the kind sentinel and, when present, the numeric cause, so
// that both errors.Is(err, ErrInvalidAge) and errors.As into a
// *strconv.NumError work on a returned ParseError.
func (e *ParseError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}
