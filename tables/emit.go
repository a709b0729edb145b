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

package tables

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"

	"github.com/jplu/subtagreg/subtag"
)

// ErrEmptyPackage means WriteGo was asked to declare the artifact in an
// unnamed package.
var ErrEmptyPackage = errors.New("empty package name")

// WriteGo renders the finished set as a standalone Go source file
// declared in package pkg: the snapshot date, the fixed-width subtag
// types, and one sorted static array per table. The emission is
// buffered and gofmt-validated before anything reaches w, so a failure
// never leaves a partial artifact behind.
func (s *Set) WriteGo(w io.Writer, pkg string) error {
	if pkg == "" {
		return ErrEmptyPackage
	}
	var buf bytes.Buffer
	buf.WriteString("// Code generated by subtagreg. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("import \"bytes\"\n\n")
	fmt.Fprintf(&buf, "// FileDate is the File-Date of the registry snapshot these tables\n// were compiled from.\nconst FileDate = %s\n\n", strconv.Quote(s.FileDate))
	buf.WriteString(typeDefinitions)
	writeTable(&buf, "Languages holds every registered language subtag.",
		"Languages", "Language", s.Languages, languageLit)
	writeTable(&buf, "LanguagesPreferredValue maps deprecated language subtags to their replacements.",
		"LanguagesPreferredValue", "LanguagePair", s.LanguagesPreferredValue, languagePairLit)
	writeTable(&buf, "LanguagesSuppressScript pairs languages with the script their tags leave implicit.",
		"LanguagesSuppressScript", "SuppressScript", s.LanguagesSuppressScript, suppressScriptLit)
	writeTable(&buf, "Extlangs pairs every extended language subtag with its required prefix.",
		"Extlangs", "ExtlangPrefix", s.Extlangs, extlangPrefixLit)
	writeTable(&buf, "ExtlangsPreferredValue maps deprecated extended language subtags to their replacements.",
		"ExtlangsPreferredValue", "LanguagePair", s.ExtlangsPreferredValue, languagePairLit)
	writeTable(&buf, "Scripts holds every registered script subtag.",
		"Scripts", "Script", s.Scripts, scriptLit)
	writeTable(&buf, "ScriptsPreferredValue maps deprecated script subtags to their replacements.",
		"ScriptsPreferredValue", "ScriptPair", s.ScriptsPreferredValue, scriptPairLit)
	writeTable(&buf, "Regions holds every registered region subtag.",
		"Regions", "Region", s.Regions, regionLit)
	writeTable(&buf, "RegionsPreferredValue maps deprecated region subtags to their replacements.",
		"RegionsPreferredValue", "RegionPair", s.RegionsPreferredValue, regionPairLit)
	writeTable(&buf, "Variants pairs every registered variant subtag with its prefix descriptor.",
		"Variants", "VariantPrefixes", s.Variants, variantPrefixesLit)
	writeTable(&buf, "VariantsPreferredValue maps deprecated variant subtags to their replacements.",
		"VariantsPreferredValue", "TagPair", s.VariantsPreferredValue, tagPairLit)
	writeTable(&buf, "Grandfathereds holds the tags grandfathered from earlier registrations.",
		"Grandfathereds", "string", s.Grandfathereds, stringLit)
	writeTable(&buf, "GrandfatheredsPreferredValue maps grandfathered tags to their replacements.",
		"GrandfatheredsPreferredValue", "TagPair", s.GrandfatheredsPreferredValue, tagPairLit)
	writeTable(&buf, "RedundantsPreferredValue maps redundant tags to their replacements.",
		"RedundantsPreferredValue", "TagPair", s.RedundantsPreferredValue, tagPairLit)
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// writeTable emits one named static array with its doc comment and
// entry count.
func writeTable[E any](buf *bytes.Buffer, doc, name, typ string, entries []E, lit func(E) string) {
	fmt.Fprintf(buf, "// %s\n// Entries: %d.\n", doc, len(entries))
	if len(entries) == 0 {
		fmt.Fprintf(buf, "var %s = [...]%s{}\n\n", name, typ)
		return
	}
	fmt.Fprintf(buf, "var %s = [...]%s{\n", name, typ)
	for _, e := range entries {
		fmt.Fprintf(buf, "\t%s,\n", lit(e))
	}
	buf.WriteString("}\n\n")
}

func languageLit(l subtag.Language) string { return byteArrayLit(l[:]) }

func scriptLit(s subtag.Script) string { return byteArrayLit(s[:]) }

func regionLit(r subtag.Region) string { return byteArrayLit(r[:]) }

// byteArrayLit renders every storage byte as a quoted character so the
// padding stays visible in the artifact.
func byteArrayLit(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = strconv.QuoteRune(rune(c))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func languagePairLit(p subtag.LanguagePair) string {
	return "{Language" + languageLit(p.From) + ", Language" + languageLit(p.To) + "}"
}

func suppressScriptLit(p subtag.SuppressScript) string {
	return "{Language" + languageLit(p.Language) + ", Script" + scriptLit(p.Script) + "}"
}

func extlangPrefixLit(p subtag.ExtlangPrefix) string {
	return "{Language" + languageLit(p.Subtag) + ", " + strconv.Quote(p.Prefix) + "}"
}

func scriptPairLit(p subtag.ScriptPair) string {
	return "{Script" + scriptLit(p.From) + ", Script" + scriptLit(p.To) + "}"
}

func regionPairLit(p subtag.RegionPair) string {
	return "{Region" + regionLit(p.From) + ", Region" + regionLit(p.To) + "}"
}

func variantPrefixesLit(p subtag.VariantPrefixes) string {
	return "{" + strconv.Quote(p.Subtag) + ", " + strconv.Quote(p.Prefixes) + "}"
}

func tagPairLit(p subtag.TagPair) string {
	return "{" + strconv.Quote(p.From) + ", " + strconv.Quote(p.To) + "}"
}

func stringLit(s string) string { return strconv.Quote(s) }

// typeDefinitions is the fixed type block shared by every artifact,
// mirroring the compiler's own encodings.
const typeDefinitions = `// Language is a primary or extended language subtag of 2 to 3 letters,
// right-padded with spaces to a fixed width of 3 bytes.
type Language [3]byte

// ParseLanguage encodes s as a Language. It reports false when the
// length of s does not fit the subtag form.
func ParseLanguage(s string) (Language, bool) {
	if len(s) < 2 || len(s) > 3 {
		return Language{}, false
	}
	l := Language{' ', ' ', ' '}
	copy(l[:], s)
	return l, true
}

// String returns the subtag with its padding stripped.
func (l Language) String() string {
	end := len(l)
	for end > 0 && l[end-1] == ' ' {
		end--
	}
	return string(l[:end])
}

// Compare orders language subtags by their padded bytes.
func (l Language) Compare(o Language) int {
	return bytes.Compare(l[:], o[:])
}

// Script is a script subtag of exactly 4 letters, stored without
// padding.
type Script [4]byte

// ParseScript encodes s as a Script. It reports false when the length
// of s does not fit the subtag form.
func ParseScript(s string) (Script, bool) {
	if len(s) != 4 {
		return Script{}, false
	}
	var sc Script
	copy(sc[:], s)
	return sc, true
}

// String returns the subtag unchanged.
func (sc Script) String() string {
	return string(sc[:])
}

// Compare orders script subtags by their bytes.
func (sc Script) Compare(o Script) int {
	return bytes.Compare(sc[:], o[:])
}

// Region is a region subtag of 2 to 3 letters or digits, right-padded
// with spaces to a fixed width of 3 bytes.
type Region [3]byte

// ParseRegion encodes s as a Region. It reports false when the length
// of s does not fit the subtag form.
func ParseRegion(s string) (Region, bool) {
	if len(s) < 2 || len(s) > 3 {
		return Region{}, false
	}
	r := Region{' ', ' ', ' '}
	copy(r[:], s)
	return r, true
}

// String returns the subtag with its padding stripped.
func (r Region) String() string {
	end := len(r)
	for end > 0 && r[end-1] == ' ' {
		end--
	}
	return string(r[:end])
}

// Compare orders region subtags by their padded bytes.
func (r Region) Compare(o Region) int {
	return bytes.Compare(r[:], o[:])
}

// LanguagePair maps a deprecated language subtag to its replacement.
type LanguagePair struct {
	From Language
	To   Language
}

// SuppressScript pairs a language with the script its tags leave
// implicit.
type SuppressScript struct {
	Language Language
	Script   Script
}

// ExtlangPrefix pairs an extended language subtag with its required
// prefix, rendered with a trailing dash for prefix matching.
type ExtlangPrefix struct {
	Subtag Language
	Prefix string
}

// ScriptPair maps a deprecated script subtag to its replacement.
type ScriptPair struct {
	From Script
	To   Script
}

// RegionPair maps a deprecated region subtag to its replacement.
type RegionPair struct {
	From Region
	To   Region
}

// VariantPrefixes pairs a variant subtag with its prefix descriptor:
// every registered prefix with a trailing dash, joined with single
// spaces.
type VariantPrefixes struct {
	Subtag   string
	Prefixes string
}

// TagPair maps a deprecated or redundant tag to its replacement.
type TagPair struct {
	From string
	To   string
}

`
