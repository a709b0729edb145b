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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package tables

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jplu/subtagreg/registry"
)

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("mock writer error")
}

// Test_WriteGo_emptySet tests that a registry with no projectable
// records still emits a complete artifact: the header, every type, and
// all fourteen tables, each empty.
func Test_WriteGo_emptySet(t *testing.T) {
	var buf bytes.Buffer
	s := &Set{}
	if err := s.WriteGo(&buf, "iana"); err != nil {
		t.Fatalf("WriteGo() error = %v", err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "// Code generated by subtagreg. DO NOT EDIT.\n") {
		t.Errorf("artifact does not open with the generated-code marker:\n%s", got[:80])
	}
	if !strings.Contains(got, "package iana\n") {
		t.Error("artifact lacks the package clause")
	}
	if !strings.Contains(got, `const FileDate = ""`) {
		t.Error("artifact lacks the empty FileDate constant")
	}
	names := []string{
		"Languages", "LanguagesPreferredValue", "LanguagesSuppressScript",
		"Extlangs", "ExtlangsPreferredValue",
		"Scripts", "ScriptsPreferredValue",
		"Regions", "RegionsPreferredValue",
		"Variants", "VariantsPreferredValue",
		"Grandfathereds", "GrandfatheredsPreferredValue",
		"RedundantsPreferredValue",
	}
	for _, name := range names {
		if !strings.Contains(got, "var "+name+" = [...]") {
			t.Errorf("artifact lacks table %s", name)
		}
	}
	if !strings.Contains(got, "var Languages = [...]Language{}") {
		t.Error("empty Languages table is not emitted as an empty array")
	}
}

// Test_WriteGo_tableOrder tests that the tables appear in their
// declared emission order regardless of how the set was filled.
func Test_WriteGo_tableOrder(t *testing.T) {
	var buf bytes.Buffer
	s := &Set{}
	if err := s.WriteGo(&buf, "iana"); err != nil {
		t.Fatalf("WriteGo() error = %v", err)
	}
	got := buf.String()
	order := []string{
		"var Languages ", "var LanguagesPreferredValue ", "var LanguagesSuppressScript ",
		"var Extlangs ", "var ExtlangsPreferredValue ",
		"var Scripts ", "var ScriptsPreferredValue ",
		"var Regions ", "var RegionsPreferredValue ",
		"var Variants ", "var VariantsPreferredValue ",
		"var Grandfathereds ", "var GrandfatheredsPreferredValue ",
		"var RedundantsPreferredValue ",
	}
	last := -1
	for _, name := range order {
		pos := strings.Index(got, name)
		if pos < 0 {
			t.Fatalf("artifact lacks %q", name)
		}
		if pos < last {
			t.Errorf("%q emitted out of order", name)
		}
		last = pos
	}
}

// Test_WriteGo_literals tests the entry rendering: byte-array
// constructors with visible padding for fixed-width subtags, quoted
// strings for tags.
func Test_WriteGo_literals(t *testing.T) {
	s := &Set{}
	records := []registry.Record{
		registry.LanguageRecord{Subtag: "in", PreferredValue: "id", SuppressScript: "Latn"},
		registry.VariantRecord{Subtag: "1994", Prefixes: []string{"sl", "sl-rozaj"}},
		registry.ExtlangRecord{Subtag: "yue", Prefix: "zh"},
		registry.GrandfatheredRecord{Tag: "i-klingon", PreferredValue: "tlh"},
	}
	for _, rec := range records {
		if err := s.Add(rec); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	var buf bytes.Buffer
	if err := s.WriteGo(&buf, "iana"); err != nil {
		t.Fatalf("WriteGo() error = %v", err)
	}
	got := buf.String()
	wantLiterals := []string{
		"\t{'i', 'n', ' '},\n",
		"\t{Language{'i', 'n', ' '}, Language{'i', 'd', ' '}},\n",
		"\t{Language{'i', 'n', ' '}, Script{'L', 'a', 't', 'n'}},\n",
		"\t{Language{'y', 'u', 'e'}, \"zh-\"},\n",
		"\t{\"1994\", \"sl- sl-rozaj-\"},\n",
		"\t\"i-klingon\",\n",
		"\t{\"i-klingon\", \"tlh\"},\n",
		"// Entries: 1.\n",
	}
	for _, want := range wantLiterals {
		if !strings.Contains(got, want) {
			t.Errorf("artifact lacks %q", want)
		}
	}
}

func Test_WriteGo_packageClause(t *testing.T) {
	tests := []struct {
		name string
		pkg  string
	}{
		{name: "default package", pkg: "iana"},
		{name: "main package", pkg: "main"},
		{name: "custom package", pkg: "registrydata"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := &Set{}
			if err := s.WriteGo(&buf, tt.pkg); err != nil {
				t.Fatalf("WriteGo() error = %v", err)
			}
			if !strings.Contains(buf.String(), "package "+tt.pkg+"\n") {
				t.Errorf("artifact lacks package clause for %q", tt.pkg)
			}
		})
	}
}

func Test_WriteGo_emptyPackage(t *testing.T) {
	var buf bytes.Buffer
	s := &Set{}
	if err := s.WriteGo(&buf, ""); !errors.Is(err, ErrEmptyPackage) {
		t.Errorf("WriteGo() error = %v, want %v", err, ErrEmptyPackage)
	}
	if buf.Len() != 0 {
		t.Error("WriteGo() wrote a partial artifact on error")
	}
}

func Test_WriteGo_writerError(t *testing.T) {
	s := &Set{}
	if err := s.WriteGo(errorWriter{}, "iana"); err == nil {
		t.Error("WriteGo() expected an error for a failing writer")
	}
}

// Test_WriteGo_invalidPackage tests that a package name the Go grammar
// rejects surfaces as a formatting error instead of a broken artifact.
func Test_WriteGo_invalidPackage(t *testing.T) {
	var buf bytes.Buffer
	s := &Set{}
	if err := s.WriteGo(&buf, "not a package"); err == nil {
		t.Error("WriteGo() expected an error for an invalid package name")
	}
	if buf.Len() != 0 {
		t.Error("WriteGo() wrote a partial artifact on error")
	}
}
