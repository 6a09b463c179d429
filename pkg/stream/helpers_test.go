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
	"context"
	"errors"
	"sort"
)

// token is the minimal Carrier implementation used by the package tests.
type token struct {
	Value string
	Index int
	Err   error
}

func (t token) UTF8String() UTF8String { return t.Value }

func (t token) FromUTF8String(s UTF8String) token {
	return token{Value: s}
}

func (t token) WithIndex(idx int) token {
	t.Index = idx
	return t
}

func (t token) GetIndex() int { return t.Index }

func (t token) WithError(err error) token {
	if err == nil {
		return t
	}
	if t.Err == nil {
		t.Err = err
	} else {
		t.Err = errors.Join(t.Err, err)
	}
	return t
}

func (t token) GetError() error { return t.Err }

// collectWithContext drains a channel until it is closed or ctx is done.
// It is used by tests to avoid hanging indefinitely if a stage forgets to
// close its output channel.
func collectWithContext[T any](ctx context.Context, ch <-chan T) ([]T, error) {
	items := make([]T, 0, 8)
	for {
		select {
		case <-ctx.Done():
			return items, ctx.Err()
		case v, ok := <-ch:
			if !ok {
				return items, nil
			}
			items = append(items, v)
		}
	}
}

// sortByIndex restores input order on collected carriers.
func sortByIndex[S Carrier[S]](items []S) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].GetIndex() < items[j].GetIndex()
	})
}
