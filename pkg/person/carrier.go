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

	"github.com/benoit-pereira-da-silva/persona/pkg/stream"
)

// Carrier transports a parsed Person through a stream pipeline.
//
// FromUTF8String never fails: an invalid record line yields the Default()
// record with its *ParseError attached as a per-item error. Per-item errors
// are data, not control flow, so a single stream serves both failure
// policies:
//
//   - strict consumers inspect GetError() and classify it with errors.Is,
//   - lenient consumers ignore it and read the always-valid Person
//     (optionally after a Lenient stage, which clears the error as well).
//
// Index is an ordering hint; ReaderProcessor sets it to the input line
// number. Carrier implements stream.Carrier[Carrier].
type Carrier struct {
	Person Person `json:"person"`
	Index  int    `json:"index,omitempty"`
	Error  error  `json:"error,omitempty"`
}

// UTF8String renders the carried record back to its "Name,Age" form.
func (c Carrier) UTF8String() stream.UTF8String {
	return c.Person.String()
}

func (c Carrier) FromUTF8String(s stream.UTF8String) Carrier {
	p, err := Parse(s)
	if err != nil {
		return Carrier{
			Person: Default(),
			Error:  err,
		}
	}
	return Carrier{
		Person: p,
	}
}

func (c Carrier) WithIndex(idx int) Carrier {
	c.Index = idx
	return c
}

func (c Carrier) GetIndex() int {
	return c.Index
}

func (c Carrier) WithError(err error) Carrier {
	if err == nil {
		return c
	}
	if c.Error == nil {
		c.Error = err
	} else {
		c.Error = errors.Join(c.Error, err)
	}
	return c
}

func (c Carrier) GetError() error {
	return c.Error
}
