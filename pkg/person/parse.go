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
	"strconv"
	"strings"
)

// Parse converts a single "name,age" line into a Person (strict policy).
//
// The line must split on every ',' into exactly two fields, the name must be
// non-empty, and the age must be a bare base-10 integer in [0, 255]: no sign
// character, no surrounding whitespace, no overflow. The checks run in that
// order and the first failing one is reported, so a line that is both
// nameless and ageless (",") classifies as ErrEmptyName.
//
// The returned error, when non-nil, is always a *ParseError.
func Parse(s string) (Person, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return Person{}, &ParseError{Kind: ErrBadFieldCount, Input: s}
	}

	name := fields[0]
	if name == "" {
		return Person{}, &ParseError{Kind: ErrEmptyName, Input: s}
	}

	// ParseUint with bitSize 8 rejects sign prefixes, non-digit characters
	// and anything above 255 in one pass.
	age, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return Person{}, &ParseError{Kind: ErrInvalidAge, Input: s, Cause: err}
	}

	return Person{Name: name, Age: uint8(age)}, nil
}

// ParseOrDefault is the best-effort variant of Parse: any failure silently
// yields Default(). It is total over all text inputs and never exposes why a
// line was rejected; use Parse when the reason matters.
func ParseOrDefault(s string) Person {
	p, err := Parse(s)
	if err != nil {
		return Default()
	}
	return p
}
