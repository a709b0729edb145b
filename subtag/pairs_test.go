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
package subtag

import "testing"

// Test_LanguagePair_Compare verifies that tuple entries order by their
// components in declaration order, first component first.
func Test_LanguagePair_Compare(t *testing.T) {
	in := Language{'i', 'n', ' '}
	id := Language{'i', 'd', ' '}
	iw := Language{'i', 'w', ' '}
	he := Language{'h', 'e', ' '}

	tests := []struct {
		name string
		a, b LanguagePair
		want int
	}{
		{
			name: "first component decides",
			a:    LanguagePair{From: in, To: id},
			b:    LanguagePair{From: iw, To: he},
			want: -1,
		},
		{
			name: "second component breaks ties",
			a:    LanguagePair{From: in, To: he},
			b:    LanguagePair{From: in, To: id},
			want: -1,
		},
		{
			name: "equal pairs",
			a:    LanguagePair{From: in, To: id},
			b:    LanguagePair{From: in, To: id},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Test_ExtlangPrefix_Compare covers the mixed fixed-width/string tuple.
func Test_ExtlangPrefix_Compare(t *testing.T) {
	yue := Language{'y', 'u', 'e'}
	aao := Language{'a', 'a', 'o'}

	tests := []struct {
		name string
		a, b ExtlangPrefix
		want int
	}{
		{
			name: "subtag decides",
			a:    ExtlangPrefix{Subtag: aao, Prefix: "ar-"},
			b:    ExtlangPrefix{Subtag: yue, Prefix: "zh-"},
			want: -1,
		},
		{
			name: "prefix breaks ties",
			a:    ExtlangPrefix{Subtag: yue, Prefix: "ar-"},
			b:    ExtlangPrefix{Subtag: yue, Prefix: "zh-"},
			want: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Test_TagPair_Compare covers the variable-length tag mapping tuple.
func Test_TagPair_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b TagPair
		want int
	}{
		{
			name: "lexicographic over From",
			a:    TagPair{From: "art-lojban", To: "jbo"},
			b:    TagPair{From: "i-klingon", To: "tlh"},
			want: -1,
		},
		{
			name: "prefix orders before its extension",
			a:    TagPair{From: "en-GB", To: "x"},
			b:    TagPair{From: "en-GB-oed", To: "x"},
			want: -1,
		},
		{
			name: "To breaks ties",
			a:    TagPair{From: "zh-cmn", To: "cmn"},
			b:    TagPair{From: "zh-cmn", To: "cmo"},
			want: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}
