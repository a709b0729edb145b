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

// Package tables compiles classified registry records into the sorted,
// fixed-width lookup tables embedded in a language-tag library, and
// renders them as a standalone Go source file.
package tables

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jplu/subtagreg/registry"
	"github.com/jplu/subtagreg/subtag"
)

// Errors that can occur while accumulating and finalizing tables.
var (
	// ErrDuplicateKey means two records of the same type claimed the same
	// subtag or tag.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnknownRecord means a record kind this package does not project.
	ErrUnknownRecord = errors.New("unknown record kind")
)

// Set accumulates the output tables of one compiler run. The zero value
// is an empty set ready for use. Entries are appended in registry order
// by Add and brought into their final sorted order by Finish.
type Set struct {
	// FileDate is the snapshot date of the registry, taken from its
	// File-Date record. Empty if the registry carried none.
	FileDate string

	Languages                    []subtag.Language
	LanguagesPreferredValue      []subtag.LanguagePair
	LanguagesSuppressScript      []subtag.SuppressScript
	Extlangs                     []subtag.ExtlangPrefix
	ExtlangsPreferredValue       []subtag.LanguagePair
	Scripts                      []subtag.Script
	ScriptsPreferredValue        []subtag.ScriptPair
	Regions                      []subtag.Region
	RegionsPreferredValue        []subtag.RegionPair
	Variants                     []subtag.VariantPrefixes
	VariantsPreferredValue       []subtag.TagPair
	Grandfathereds               []string
	GrandfatheredsPreferredValue []subtag.TagPair
	RedundantsPreferredValue     []subtag.TagPair
}

// Add projects one classified record onto the tables it contributes to.
// A record never contributes a preferred-value row that maps a value to
// itself, and an empty Preferred-Value or Suppress-Script field
// contributes nothing.
func (s *Set) Add(rec registry.Record) error {
	switch r := rec.(type) {
	case registry.FileDateRecord:
		s.FileDate = r.Date
		return nil
	case registry.LanguageRecord:
		return s.addLanguage(r)
	case registry.ExtlangRecord:
		return s.addExtlang(r)
	case registry.ScriptRecord:
		return s.addScript(r)
	case registry.RegionRecord:
		return s.addRegion(r)
	case registry.VariantRecord:
		s.addVariant(r)
		return nil
	case registry.GrandfatheredRecord:
		s.addGrandfathered(r)
		return nil
	case registry.RedundantRecord:
		s.addRedundant(r)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownRecord, rec)
	}
}

func (s *Set) addLanguage(r registry.LanguageRecord) error {
	primary, err := subtag.ParseLanguage(r.Subtag)
	if err != nil {
		return fmt.Errorf("language record %q: %w", r.Subtag, err)
	}
	s.Languages = append(s.Languages, primary)
	if r.PreferredValue != "" && r.PreferredValue != r.Subtag {
		preferred, err := subtag.ParseLanguage(r.PreferredValue)
		if err != nil {
			return fmt.Errorf("language record %q preferred value: %w", r.Subtag, err)
		}
		s.LanguagesPreferredValue = append(s.LanguagesPreferredValue, subtag.LanguagePair{From: primary, To: preferred})
	}
	if r.SuppressScript != "" {
		script, err := subtag.ParseScript(r.SuppressScript)
		if err != nil {
			return fmt.Errorf("language record %q suppress script: %w", r.Subtag, err)
		}
		s.LanguagesSuppressScript = append(s.LanguagesSuppressScript, subtag.SuppressScript{Language: primary, Script: script})
	}
	return nil
}

func (s *Set) addExtlang(r registry.ExtlangRecord) error {
	primary, err := subtag.ParseLanguage(r.Subtag)
	if err != nil {
		return fmt.Errorf("extlang record %q: %w", r.Subtag, err)
	}
	s.Extlangs = append(s.Extlangs, subtag.ExtlangPrefix{Subtag: primary, Prefix: r.Prefix + "-"})
	if r.PreferredValue != "" && r.PreferredValue != r.Subtag {
		preferred, err := subtag.ParseLanguage(r.PreferredValue)
		if err != nil {
			return fmt.Errorf("extlang record %q preferred value: %w", r.Subtag, err)
		}
		s.ExtlangsPreferredValue = append(s.ExtlangsPreferredValue, subtag.LanguagePair{From: primary, To: preferred})
	}
	return nil
}

func (s *Set) addScript(r registry.ScriptRecord) error {
	primary, err := subtag.ParseScript(r.Subtag)
	if err != nil {
		return fmt.Errorf("script record %q: %w", r.Subtag, err)
	}
	s.Scripts = append(s.Scripts, primary)
	if r.PreferredValue != "" && r.PreferredValue != r.Subtag {
		preferred, err := subtag.ParseScript(r.PreferredValue)
		if err != nil {
			return fmt.Errorf("script record %q preferred value: %w", r.Subtag, err)
		}
		s.ScriptsPreferredValue = append(s.ScriptsPreferredValue, subtag.ScriptPair{From: primary, To: preferred})
	}
	return nil
}

func (s *Set) addRegion(r registry.RegionRecord) error {
	primary, err := subtag.ParseRegion(r.Subtag)
	if err != nil {
		return fmt.Errorf("region record %q: %w", r.Subtag, err)
	}
	s.Regions = append(s.Regions, primary)
	if r.PreferredValue != "" && r.PreferredValue != r.Subtag {
		preferred, err := subtag.ParseRegion(r.PreferredValue)
		if err != nil {
			return fmt.Errorf("region record %q preferred value: %w", r.Subtag, err)
		}
		s.RegionsPreferredValue = append(s.RegionsPreferredValue, subtag.RegionPair{From: primary, To: preferred})
	}
	return nil
}

// addVariant renders the variant's prefixes as one descriptor column:
// each prefix gains a trailing dash and all of them are joined with
// single spaces, empty prefixes dropped.
func (s *Set) addVariant(r registry.VariantRecord) {
	parts := make([]string, 0, len(r.Prefixes))
	for _, p := range r.Prefixes {
		if p == "" {
			continue
		}
		parts = append(parts, p+"-")
	}
	s.Variants = append(s.Variants, subtag.VariantPrefixes{Subtag: r.Subtag, Prefixes: strings.Join(parts, " ")})
	if r.PreferredValue != "" && r.PreferredValue != r.Subtag {
		s.VariantsPreferredValue = append(s.VariantsPreferredValue, subtag.TagPair{From: r.Subtag, To: r.PreferredValue})
	}
}

func (s *Set) addGrandfathered(r registry.GrandfatheredRecord) {
	s.Grandfathereds = append(s.Grandfathereds, r.Tag)
	if r.PreferredValue != "" && r.PreferredValue != r.Tag {
		s.GrandfatheredsPreferredValue = append(s.GrandfatheredsPreferredValue, subtag.TagPair{From: r.Tag, To: r.PreferredValue})
	}
}

// addRedundant keeps only the preferred-value mapping. Redundant tags
// are whole registered tags, not subtags, so they have no primary table.
func (s *Set) addRedundant(r registry.RedundantRecord) {
	if r.PreferredValue != "" && r.PreferredValue != r.Tag {
		s.RedundantsPreferredValue = append(s.RedundantsPreferredValue, subtag.TagPair{From: r.Tag, To: r.PreferredValue})
	}
}

// Finish sorts every table into ascending order and verifies that no
// two entries of a table share a key. A duplicate key means the registry
// violated its own uniqueness guarantee and the run must not produce an
// artifact from it.
func (s *Set) Finish() error {
	if err := sortUnique("Languages", s.Languages, subtag.Language.Compare, subtag.Language.String); err != nil {
		return err
	}
	if err := sortUnique("LanguagesPreferredValue", s.LanguagesPreferredValue, subtag.LanguagePair.Compare, languagePairKey); err != nil {
		return err
	}
	if err := sortUnique("LanguagesSuppressScript", s.LanguagesSuppressScript, subtag.SuppressScript.Compare, suppressScriptKey); err != nil {
		return err
	}
	if err := sortUnique("Extlangs", s.Extlangs, subtag.ExtlangPrefix.Compare, extlangPrefixKey); err != nil {
		return err
	}
	if err := sortUnique("ExtlangsPreferredValue", s.ExtlangsPreferredValue, subtag.LanguagePair.Compare, languagePairKey); err != nil {
		return err
	}
	if err := sortUnique("Scripts", s.Scripts, subtag.Script.Compare, subtag.Script.String); err != nil {
		return err
	}
	if err := sortUnique("ScriptsPreferredValue", s.ScriptsPreferredValue, subtag.ScriptPair.Compare, scriptPairKey); err != nil {
		return err
	}
	if err := sortUnique("Regions", s.Regions, subtag.Region.Compare, subtag.Region.String); err != nil {
		return err
	}
	if err := sortUnique("RegionsPreferredValue", s.RegionsPreferredValue, subtag.RegionPair.Compare, regionPairKey); err != nil {
		return err
	}
	if err := sortUnique("Variants", s.Variants, subtag.VariantPrefixes.Compare, variantKey); err != nil {
		return err
	}
	if err := sortUnique("VariantsPreferredValue", s.VariantsPreferredValue, subtag.TagPair.Compare, tagPairKey); err != nil {
		return err
	}
	if err := sortUnique("Grandfathereds", s.Grandfathereds, strings.Compare, stringKey); err != nil {
		return err
	}
	if err := sortUnique("GrandfatheredsPreferredValue", s.GrandfatheredsPreferredValue, subtag.TagPair.Compare, tagPairKey); err != nil {
		return err
	}
	return sortUnique("RedundantsPreferredValue", s.RedundantsPreferredValue, subtag.TagPair.Compare, tagPairKey)
}

// sortUnique sorts entries in place and rejects neighbors that share a
// key. The table name is the identifier the entries are emitted under.
func sortUnique[E any](table string, entries []E, cmp func(E, E) int, key func(E) string) error {
	slices.SortFunc(entries, cmp)
	for i := 1; i < len(entries); i++ {
		if k := key(entries[i]); key(entries[i-1]) == k {
			return fmt.Errorf("table %s: %w %q", table, ErrDuplicateKey, k)
		}
	}
	return nil
}

func languagePairKey(p subtag.LanguagePair) string { return p.From.String() }

func suppressScriptKey(p subtag.SuppressScript) string { return p.Language.String() }

func extlangPrefixKey(p subtag.ExtlangPrefix) string { return p.Subtag.String() }

func scriptPairKey(p subtag.ScriptPair) string { return p.From.String() }

func regionPairKey(p subtag.RegionPair) string { return p.From.String() }

func variantKey(p subtag.VariantPrefixes) string { return p.Subtag }

func tagPairKey(p subtag.TagPair) string { return p.From }

func stringKey(s string) string { return s }
