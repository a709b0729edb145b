/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package registry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrOrphanContinuation reports a continuation line in a record where no
// field has been opened yet, a violation of the registry grammar.
var ErrOrphanContinuation = errors.New("continuation line before any field in the record")

const recordSeparator = "%%"

// Tokenizer reads a registry stream record by record, in a single
// forward pass. It follows the bufio.Scanner access pattern: Next
// advances to the next record, Record returns it, and Err reports what
// stopped the stream once Next has returned false.
//
// A separator line always yields the record built so far, even an empty
// one; the classifier reports empty records as unexpected. A record
// still open at end of stream is yielded only if it collected at least
// one field.
type Tokenizer struct {
	scanner   *bufio.Scanner
	cur       *RawRecord
	rec       *RawRecord
	lastField string
	line      int
	err       error
	done      bool
}

// NewTokenizer returns a Tokenizer reading records from r.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{
		scanner: bufio.NewScanner(r),
		cur:     &RawRecord{},
	}
}

// Next advances to the next record. It returns false at end of stream or
// on error; Err tells the two apart.
func (t *Tokenizer) Next() bool {
	if t.err != nil || t.done {
		return false
	}
	for t.scanner.Scan() {
		t.line++
		line := strings.TrimSpace(t.scanner.Text())
		if line == recordSeparator {
			t.rec = t.cur
			t.cur = &RawRecord{}
			t.lastField = ""
			return true
		}
		if err := t.processLine(line); err != nil {
			t.err = err
			return false
		}
	}
	t.done = true
	if err := t.scanner.Err(); err != nil {
		t.err = err
		return false
	}
	if !t.cur.Empty() {
		t.rec = t.cur
		t.cur = &RawRecord{}
		return true
	}
	return false
}

// Record returns the record read by the last successful call to Next.
func (t *Tokenizer) Record() *RawRecord { return t.rec }

// Err returns the first error encountered while tokenizing, nil at a
// clean end of stream.
func (t *Tokenizer) Err() error { return t.err }

// processLine files one non-separator line into the current record:
// field lines open a new value, everything else continues the last one.
func (t *Tokenizer) processLine(line string) error {
	if name, value, ok := splitField(line); ok {
		t.cur.add(name, value)
		t.lastField = name
		return nil
	}
	if t.lastField == "" {
		return fmt.Errorf("line %d: %w", t.line, ErrOrphanContinuation)
	}
	t.cur.extend(t.lastField, line)
	return nil
}

// splitField splits a field line into its name and value. A field line
// carries a non-empty alphanumeric-or-hyphen name, optional spaces, a
// colon, and the value with its leading spaces removed. Lines of any
// other shape, blank ones included, are continuations.
func splitField(line string) (name, value string, ok bool) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return "", "", false
	}
	name = strings.TrimRight(line[:colon], " ")
	if !isFieldName(name) {
		return "", "", false
	}
	value = strings.TrimLeft(line[colon+1:], " ")
	return name, value, true
}

// isFieldName checks if s is a non-empty run of ASCII letters, digits
// and hyphens.
func isFieldName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !(b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-') {
			return false
		}
	}
	return true
}
