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

// Package registry reads the IANA Language Subtag Registry record
// stream and classifies its records for table compilation.
//
// The registry is a record-jar text format, described in RFC 5646
// Section 3.1.1: records separated by "%%" lines, fields written as
// "Name: value" lines, long values folded across continuation lines.
// Tokenizer recovers the raw records; Classify turns each into one of
// the typed record kinds the compiler knows how to project.
package registry

import (
	"fmt"
	"slices"
	"strings"
)

// field indexes the closed set of record fields the compiler recognizes.
type field int

// The recognized registry fields, per RFC 5646 Section 3.1.2. Names are
// matched exactly: registry field names are case-sensitive.
const (
	fieldType field = iota
	fieldSubtag
	fieldTag
	fieldDescription
	fieldPreferredValue
	fieldSuppressScript
	fieldPrefix
	fieldFileDate
	numFields
)

// fieldNames maps field indexes to their registry spellings.
var fieldNames = [numFields]string{
	fieldType:           "Type",
	fieldSubtag:         "Subtag",
	fieldTag:            "Tag",
	fieldDescription:    "Description",
	fieldPreferredValue: "Preferred-Value",
	fieldSuppressScript: "Suppress-Script",
	fieldPrefix:         "Prefix",
	fieldFileDate:       "File-Date",
}

// fieldByName resolves a registry field name to its index.
func fieldByName(name string) (field, bool) {
	for i := range fieldNames {
		if fieldNames[i] == name {
			return field(i), true
		}
	}
	return 0, false
}

// MultipleValuesError reports a field that must hold exactly one value
// but holds several. The registry grammar guarantees single values for
// these fields, so a violation means the grammar assumption no longer
// holds and compilation must not continue.
type MultipleValuesError struct {
	Field  string
	Values []string
}

// Error implements the error interface.
func (e *MultipleValuesError) Error() string {
	return fmt.Sprintf("field %s holds multiple values %q", e.Field, e.Values)
}

// RawRecord is one registry record as read from the stream: the
// recognized fields in a fixed array of value lists, plus a bucket that
// preserves unrecognized field names without interpreting them.
type RawRecord struct {
	values [numFields][]string
	extra  map[string][]string
}

// add opens a new value for the named field, filing unrecognized names
// in the extras bucket.
func (r *RawRecord) add(name, value string) {
	if f, ok := fieldByName(name); ok {
		r.values[f] = append(r.values[f], value)
		return
	}
	if r.extra == nil {
		r.extra = make(map[string][]string)
	}
	r.extra[name] = append(r.extra[name], value)
}

// extend joins a continuation line onto the most recent value of the
// named field with a single space.
func (r *RawRecord) extend(name, text string) {
	if f, ok := fieldByName(name); ok {
		vals := r.values[f]
		vals[len(vals)-1] += " " + text
		return
	}
	vals := r.extra[name]
	vals[len(vals)-1] += " " + text
}

// has reports whether at least one value was collected for f.
func (r *RawRecord) has(f field) bool { return len(r.values[f]) > 0 }

// single returns the sole value of f, or "" when the field is absent.
func (r *RawRecord) single(f field) (string, error) {
	vals := r.values[f]
	switch len(vals) {
	case 0:
		return "", nil
	case 1:
		return vals[0], nil
	default:
		return "", &MultipleValuesError{Field: fieldNames[f], Values: vals}
	}
}

// Type returns the record's Type value.
func (r *RawRecord) Type() (string, error) { return r.single(fieldType) }

// Subtag returns the record's Subtag value.
func (r *RawRecord) Subtag() (string, error) { return r.single(fieldSubtag) }

// Tag returns the record's Tag value.
func (r *RawRecord) Tag() (string, error) { return r.single(fieldTag) }

// PreferredValue returns the record's Preferred-Value value.
func (r *RawRecord) PreferredValue() (string, error) { return r.single(fieldPreferredValue) }

// SuppressScript returns the record's Suppress-Script value.
func (r *RawRecord) SuppressScript() (string, error) { return r.single(fieldSuppressScript) }

// FileDate returns the record's File-Date value.
func (r *RawRecord) FileDate() (string, error) { return r.single(fieldFileDate) }

// Descriptions returns all Description values in registry order.
func (r *RawRecord) Descriptions() []string { return r.values[fieldDescription] }

// Prefixes returns all Prefix values in registry order.
func (r *RawRecord) Prefixes() []string { return r.values[fieldPrefix] }

// Empty reports whether no field line at all was collected.
func (r *RawRecord) Empty() bool {
	for i := range r.values {
		if len(r.values[i]) > 0 {
			return false
		}
	}
	return len(r.extra) == 0
}

// String renders the record for diagnostics: recognized fields in their
// declared order, then unrecognized ones sorted by name. It implements
// the fmt.Stringer interface.
func (r *RawRecord) String() string {
	var b strings.Builder
	writeField := func(name, value string) {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
	}
	for f := field(0); f < numFields; f++ {
		for _, v := range r.values[f] {
			writeField(fieldNames[f], v)
		}
	}
	names := make([]string, 0, len(r.extra))
	for name := range r.extra {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		for _, v := range r.extra[name] {
			writeField(name, v)
		}
	}
	if b.Len() == 0 {
		return "(empty record)"
	}
	return b.String()
}
