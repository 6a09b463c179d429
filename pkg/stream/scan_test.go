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
	"strings"
	"testing"
)

func scanAll(t *testing.T, input string) []string {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Split(ScanRecords)

	records := make([]string, 0, 8)
	for scanner.Scan() {
		records = append(records, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	return records
}

func TestScanRecords_Framing(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single no separator", "a", []string{"a"}},
		{"lf", "a\nb", []string{"a", "b"}},
		{"trailing lf", "a\n", []string{"a"}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"bare cr", "a\rb", []string{"a", "b"}},
		{"mixed", "a\nb\r\nc\rd", []string{"a", "b", "c", "d"}},
		{"empty records preserved", "a\n\nb", []string{"a", "", "b"}},
		{"leading separator", "\na", []string{"", "a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scanAll(t, tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("unexpected record count: got %d (%q) want %d (%q)", len(got), got, len(tc.want), tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("unexpected record[%d]: got %q want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

// A CRLF pair split across two reads must not be misread as two separators.
func TestScanRecords_SplitCRLF(t *testing.T) {
	// Buffer boundary right between '\r' and '\n'.
	adv, tok, err := ScanRecords([]byte("a\r"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adv != 0 || tok != nil {
		t.Fatalf("expected a request for more data: got advance %d token %q", adv, tok)
	}

	adv, tok, err = ScanRecords([]byte("a\r\nb"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := adv, 3; got != want {
		t.Fatalf("unexpected advance: got %d want %d", got, want)
	}
	if got, want := string(tok), "a"; got != want {
		t.Fatalf("unexpected token: got %q want %q", got, want)
	}
}

func TestScanRecords_FinalCRAtEOF(t *testing.T) {
	adv, tok, err := ScanRecords([]byte("a\r"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := adv, 2; got != want {
		t.Fatalf("unexpected advance: got %d want %d", got, want)
	}
	if got, want := string(tok), "a"; got != want {
		t.Fatalf("unexpected token: got %q want %q", got, want)
	}
}
