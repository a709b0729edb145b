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

package subtag

import "strings"

// LanguagePair maps a deprecated language subtag to its preferred
// replacement.
type LanguagePair struct {
	From Language
	To   Language
}

// Compare orders pairs by From, then To.
func (p LanguagePair) Compare(o LanguagePair) int {
	if c := p.From.Compare(o.From); c != 0 {
		return c
	}
	return p.To.Compare(o.To)
}

// ScriptPair maps a deprecated script subtag to its preferred replacement.
type ScriptPair struct {
	From Script
	To   Script
}

// Compare orders pairs by From, then To.
func (p ScriptPair) Compare(o ScriptPair) int {
	if c := p.From.Compare(o.From); c != 0 {
		return c
	}
	return p.To.Compare(o.To)
}

// RegionPair maps a deprecated region subtag to its preferred replacement.
type RegionPair struct {
	From Region
	To   Region
}

// Compare orders pairs by From, then To.
func (p RegionPair) Compare(o RegionPair) int {
	if c := p.From.Compare(o.From); c != 0 {
		return c
	}
	return p.To.Compare(o.To)
}

// SuppressScript pairs a language with the script that should be omitted
// from tags because the language implies it.
type SuppressScript struct {
	Language Language
	Script   Script
}

// Compare orders entries by language, then script.
func (p SuppressScript) Compare(o SuppressScript) int {
	if c := p.Language.Compare(o.Language); c != 0 {
		return c
	}
	return p.Script.Compare(o.Script)
}

// ExtlangPrefix pairs an extended language subtag with its required
// prefix, stored with a trailing hyphen so consumers can match it
// directly against the head of a tag.
type ExtlangPrefix struct {
	Subtag Language
	Prefix string
}

// Compare orders entries by subtag, then prefix.
func (p ExtlangPrefix) Compare(o ExtlangPrefix) int {
	if c := p.Subtag.Compare(o.Subtag); c != 0 {
		return c
	}
	return strings.Compare(p.Prefix, o.Prefix)
}

// VariantPrefixes pairs a variant subtag with the descriptor of its
// acceptable prefixes: every prefix with a trailing hyphen, joined with
// single spaces. A variant valid after any tag has an empty descriptor.
type VariantPrefixes struct {
	Subtag   string
	Prefixes string
}

// Compare orders entries by subtag, then descriptor.
func (p VariantPrefixes) Compare(o VariantPrefixes) int {
	if c := strings.Compare(p.Subtag, o.Subtag); c != 0 {
		return c
	}
	return strings.Compare(p.Prefixes, o.Prefixes)
}

// TagPair maps a deprecated full tag to its preferred replacement. It is
// shared by the variant, grandfathered and redundant mapping tables,
// whose values are variable-length tags rather than fixed-width subtags.
type TagPair struct {
	From string
	To   string
}

// Compare orders pairs by From, then To.
func (p TagPair) Compare(o TagPair) int {
	if c := strings.Compare(p.From, o.From); c != 0 {
		return c
	}
	return strings.Compare(p.To, o.To)
}
