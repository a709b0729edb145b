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
	"errors"
	"fmt"
)

// Errors raised when a record's shape violates the registry grammar.
var (
	ErrMissingSubtag = errors.New("the record has no Subtag field")
	ErrMissingTag    = errors.New("the record has no Tag field")
	ErrExtlangPrefix = errors.New("an extlang record requires exactly one Prefix")
)

// Record type names as they appear in the registry, per RFC 5646
// Section 3.1.2. Matching is case-sensitive.
const (
	typeLanguage      = "language"
	typeExtlang       = "extlang"
	typeScript        = "script"
	typeRegion        = "region"
	typeVariant       = "variant"
	typeGrandfathered = "grandfathered"
	typeRedundant     = "redundant"
)

// The private-use sentinel ranges, excluded from compilation as whole
// records. The range notation is matched literally, never expanded:
// these ranges are reservations, not individually registered subtags.
const (
	privateUseLanguages = "qaa..qtz"
	privateUseScripts   = "Qaaa..Qabx"
	privateUseRegionsQ  = "QM..QZ"
	privateUseRegionsX  = "XA..XZ"
)

// SkipReason explains why Classify set a record aside instead of
// producing a Record.
type SkipReason int

const (
	// SkipNone means the record classified successfully.
	SkipNone SkipReason = iota
	// SkipPrivateUse marks a record reserving one of the private-use
	// ranges.
	SkipPrivateUse
	// SkipUnknownType marks a record whose Type this compiler does not
	// know, tolerated so registry extensions do not halt compilation.
	SkipUnknownType
	// SkipUntyped marks a record carrying neither Type nor File-Date.
	SkipUntyped
)

// Record is one classified registry record: a sealed sum over the seven
// registered record kinds plus the File-Date metadata record. Each
// variant carries only the fields legal for its kind, so impossible
// field combinations cannot be represented.
type Record interface {
	record()
}

// FileDateRecord carries the snapshot date of the registry stream.
type FileDateRecord struct {
	Date string
}

// LanguageRecord is a primary-language registration.
type LanguageRecord struct {
	Subtag         string
	PreferredValue string
	SuppressScript string
}

// ExtlangRecord is an extended-language registration. Extlangs always
// carry exactly one required prefix.
type ExtlangRecord struct {
	Subtag         string
	PreferredValue string
	Prefix         string
}

// ScriptRecord is a script registration.
type ScriptRecord struct {
	Subtag         string
	PreferredValue string
}

// RegionRecord is a region registration.
type RegionRecord struct {
	Subtag         string
	PreferredValue string
}

// VariantRecord is a variant registration with zero or more acceptable
// prefixes.
type VariantRecord struct {
	Subtag         string
	PreferredValue string
	Prefixes       []string
}

// GrandfatheredRecord is a whole-tag registration kept for backward
// compatibility, keyed by Tag rather than Subtag.
type GrandfatheredRecord struct {
	Tag            string
	PreferredValue string
}

// RedundantRecord is a whole tag that is also expressible by its parts;
// only its preferred-value mapping is ever retained downstream.
type RedundantRecord struct {
	Tag            string
	PreferredValue string
}

func (FileDateRecord) record()      {}
func (LanguageRecord) record()      {}
func (ExtlangRecord) record()       {}
func (ScriptRecord) record()        {}
func (RegionRecord) record()        {}
func (VariantRecord) record()       {}
func (GrandfatheredRecord) record() {}
func (RedundantRecord) record()     {}

// Classify determines a raw record's kind from its Type field. Records
// reserving a private-use range, records of unknown type and untyped
// records without a File-Date are set aside with a SkipReason rather
// than an error, so registry evolution does not halt compilation.
// Structural violations are fatal: a single-valued field holding several
// values, a typed record missing its primary Subtag or Tag, an extlang
// with a prefix count other than one.
func Classify(raw *RawRecord) (Record, SkipReason, error) {
	typ, err := raw.Type()
	if err != nil {
		return nil, SkipNone, err
	}
	if typ == "" {
		if !raw.has(fieldFileDate) {
			return nil, SkipUntyped, nil
		}
		date, err := raw.FileDate()
		if err != nil {
			return nil, SkipNone, err
		}
		return FileDateRecord{Date: date}, SkipNone, nil
	}

	switch typ {
	case typeLanguage:
		return classifyLanguage(raw)
	case typeExtlang:
		return classifyExtlang(raw)
	case typeScript:
		return classifyScript(raw)
	case typeRegion:
		return classifyRegion(raw)
	case typeVariant:
		return classifyVariant(raw)
	case typeGrandfathered:
		return classifyGrandfathered(raw)
	case typeRedundant:
		return classifyRedundant(raw)
	default:
		return nil, SkipUnknownType, nil
	}
}

// subtagOf reads the primary Subtag of a typed record, failing when it
// is absent or ambiguous.
func subtagOf(raw *RawRecord, typ string) (string, error) {
	sub, err := raw.Subtag()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", fmt.Errorf("%s record: %w", typ, ErrMissingSubtag)
	}
	return sub, nil
}

// tagOf reads the primary Tag of a grandfathered or redundant record,
// failing when it is absent or ambiguous.
func tagOf(raw *RawRecord, typ string) (string, error) {
	tag, err := raw.Tag()
	if err != nil {
		return "", err
	}
	if tag == "" {
		return "", fmt.Errorf("%s record: %w", typ, ErrMissingTag)
	}
	return tag, nil
}

func classifyLanguage(raw *RawRecord) (Record, SkipReason, error) {
	sub, err := subtagOf(raw, typeLanguage)
	if err != nil {
		return nil, SkipNone, err
	}
	if sub == privateUseLanguages {
		return nil, SkipPrivateUse, nil
	}
	preferred, err := raw.PreferredValue()
	if err != nil {
		return nil, SkipNone, err
	}
	suppress, err := raw.SuppressScript()
	if err != nil {
		return nil, SkipNone, err
	}
	return LanguageRecord{Subtag: sub, PreferredValue: preferred, SuppressScript: suppress}, SkipNone, nil
}

func classifyExtlang(raw *RawRecord) (Record, SkipReason, error) {
	sub, err := subtagOf(raw, typeExtlang)
	if err != nil {
		return nil, SkipNone, err
	}
	prefixes := raw.Prefixes()
	if len(prefixes) != 1 {
		return nil, SkipNone, fmt.Errorf("%s record %s has %d prefixes: %w", typeExtlang, sub, len(prefixes), ErrExtlangPrefix)
	}
	preferred, err := raw.PreferredValue()
	if err != nil {
		return nil, SkipNone, err
	}
	return ExtlangRecord{Subtag: sub, PreferredValue: preferred, Prefix: prefixes[0]}, SkipNone, nil
}

func classifyScript(raw *RawRecord) (Record, SkipReason, error) {
	sub, err := subtagOf(raw, typeScript)
	if err != nil {
		return nil, SkipNone, err
	}
	if sub == privateUseScripts {
		return nil, SkipPrivateUse, nil
	}
	preferred, err := raw.PreferredValue()
	if err != nil {
		return nil, SkipNone, err
	}
	return ScriptRecord{Subtag: sub, PreferredValue: preferred}, SkipNone, nil
}

func classifyRegion(raw *RawRecord) (Record, SkipReason, error) {
	sub, err := subtagOf(raw, typeRegion)
	if err != nil {
		return nil, SkipNone, err
	}
	if sub == privateUseRegionsQ || sub == privateUseRegionsX {
		return nil, SkipPrivateUse, nil
	}
	preferred, err := raw.PreferredValue()
	if err != nil {
		return nil, SkipNone, err
	}
	return RegionRecord{Subtag: sub, PreferredValue: preferred}, SkipNone, nil
}

func classifyVariant(raw *RawRecord) (Record, SkipReason, error) {
	sub, err := subtagOf(raw, typeVariant)
	if err != nil {
		return nil, SkipNone, err
	}
	preferred, err := raw.PreferredValue()
	if err != nil {
		return nil, SkipNone, err
	}
	return VariantRecord{Subtag: sub, PreferredValue: preferred, Prefixes: raw.Prefixes()}, SkipNone, nil
}

func classifyGrandfathered(raw *RawRecord) (Record, SkipReason, error) {
	tag, err := tagOf(raw, typeGrandfathered)
	if err != nil {
		return nil, SkipNone, err
	}
	preferred, err := raw.PreferredValue()
	if err != nil {
		return nil, SkipNone, err
	}
	return GrandfatheredRecord{Tag: tag, PreferredValue: preferred}, SkipNone, nil
}

func classifyRedundant(raw *RawRecord) (Record, SkipReason, error) {
	tag, err := tagOf(raw, typeRedundant)
	if err != nil {
		return nil, SkipNone, err
	}
	preferred, err := raw.PreferredValue()
	if err != nil {
		return nil, SkipNone, err
	}
	return RedundantRecord{Tag: tag, PreferredValue: preferred}, SkipNone, nil
}
