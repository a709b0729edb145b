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

// Package subtag provides the fixed-width encodings of IANA registry
// subtags used by the compiled lookup tables.
//
// Language and region subtags vary between two and three characters and
// are stored right-padded with spaces in three bytes; script subtags are
// always four letters and fill their storage exactly. Encoding never
// truncates: a value that does not fit its form is rejected with an error.
package subtag

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Errors that can occur while encoding a subtag into its fixed-width form.
var (
	ErrTooShort = errors.New("the subtag is shorter than its encoded form allows")
	ErrTooLong  = errors.New("the subtag is longer than its encoded form allows")
	ErrBadChar  = errors.New("the subtag contains a char not allowed by its encoded form")
)

// Storage widths and minimum lengths of the encoded forms, per RFC 5646
// Section 2.1.
const (
	languageWidth  = 3 // A language subtag is 2 or 3 letters.
	scriptWidth    = 4 // A script subtag is always 4 letters.
	regionWidth    = 3 // A region subtag is 2 letters or 3 digits.
	minLanguageLen = 2
	minRegionLen   = 2
)

const padByte = ' '

// Language is a primary or extended language subtag of two or three
// ASCII letters, stored right-padded with spaces.
type Language [languageWidth]byte

// ParseLanguage encodes s as a Language. Values outside the two-to-three
// letter form are rejected rather than truncated or padded into shape.
func ParseLanguage(s string) (Language, error) {
	var l Language
	if err := encode(l[:], s, minLanguageLen, isAlpha, "language"); err != nil {
		return Language{}, err
	}
	return l, nil
}

// String returns the subtag with its padding trimmed. It implements the
// fmt.Stringer interface.
func (l Language) String() string {
	return strings.TrimRight(string(l[:]), " ")
}

// Compare orders two languages byte-wise over their padded storage, which
// is the order the compiled tables are emitted in.
func (l Language) Compare(o Language) int {
	return bytes.Compare(l[:], o[:])
}

// Script is a script subtag of exactly four ASCII letters. It fills its
// storage exactly and carries no padding.
type Script [scriptWidth]byte

// ParseScript encodes s as a Script. Values that are not exactly four
// ASCII letters are rejected.
func ParseScript(s string) (Script, error) {
	var sc Script
	if err := encode(sc[:], s, scriptWidth, isAlpha, "script"); err != nil {
		return Script{}, err
	}
	return sc, nil
}

// String returns the subtag as text. It implements the fmt.Stringer interface.
func (s Script) String() string {
	return string(s[:])
}

// Compare orders two scripts byte-wise.
func (s Script) Compare(o Script) int {
	return bytes.Compare(s[:], o[:])
}

// Region is a region subtag of two or three ASCII letters or digits,
// stored right-padded with spaces.
type Region [regionWidth]byte

// ParseRegion encodes s as a Region. Values outside the two-to-three
// alphanumeric form are rejected rather than truncated or padded into shape.
func ParseRegion(s string) (Region, error) {
	var r Region
	if err := encode(r[:], s, minRegionLen, isAlphanum, "region"); err != nil {
		return Region{}, err
	}
	return r, nil
}

// String returns the subtag with its padding trimmed. It implements the
// fmt.Stringer interface.
func (r Region) String() string {
	return strings.TrimRight(string(r[:]), " ")
}

// Compare orders two regions byte-wise over their padded storage.
func (r Region) Compare(o Region) int {
	return bytes.Compare(r[:], o[:])
}

// encode writes s into dst right-padded with spaces, after checking the
// length bounds and that every byte satisfies valid.
func encode(dst []byte, s string, minLen int, valid func(byte) bool, form string) error {
	if len(s) < minLen {
		return fmt.Errorf("%s subtag %q: %w", form, s, ErrTooShort)
	}
	if len(s) > len(dst) {
		return fmt.Errorf("%s subtag %q: %w", form, s, ErrTooLong)
	}
	for i := 0; i < len(s); i++ {
		if !valid(s[i]) {
			return fmt.Errorf("%s subtag %q: %w", form, s, ErrBadChar)
		}
	}
	n := copy(dst, s)
	for ; n < len(dst); n++ {
		dst[n] = padByte
	}
	return nil
}

// isAlpha checks if a byte is an ASCII letter.
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// isDigit checks if a byte is an ASCII digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isAlphanum checks if a byte is an ASCII letter or digit.
func isAlphanum(b byte) bool { return isAlpha(b) || isDigit(b) }
