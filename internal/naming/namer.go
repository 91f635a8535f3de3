// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package naming

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Style is a casing convention applied to legalized identifiers.
type Style int

const (
	UpperCamel Style = iota
	LowerCamel
)

// Marker selects how a namer escapes collisions.
type Marker int

const (
	// Underscore appends a growing run of underscores until the name is free.
	Underscore Marker = iota
	// Numeric appends an increasing numeric suffix instead.
	Numeric
)

// Namer turns a proposal into count legal identifiers, none of which may
// satisfy taken. Implementations must terminate; the guaranteed strategy
// is to strictly lengthen the candidate on every retry.
type Namer interface {
	Name(proposal string, count int, taken func(string) bool) []string
}

// Identifier is the default namer: legalize the proposal into identifier
// grammar, apply the casing style, then escape collisions with the
// configured marker. Multi-name requests always use numeric suffixes so
// the related names stay visually grouped.
type Identifier struct {
	Style    Style
	Marker   Marker
	Legalize func(string) string // overrides the default legalizer when set
}

func (id Identifier) Name(proposal string, count int, taken func(string) bool) []string {
	base := id.legalize(proposal)

	if count == 1 && id.Marker == Underscore {
		s := base
		for taken(s) {
			s += "_"
		}
		return []string{s}
	}

	// Numeric escape: try the bare base first for single names, then
	// base1, base2, ... until a free run of count names is found.
	if count == 1 {
		if !taken(base) {
			return []string{base}
		}
		for i := 1; ; i++ {
			s := base + strconv.Itoa(i)
			if !taken(s) {
				return []string{s}
			}
		}
	}

	for start := 1; ; start++ {
		names := make([]string, count)
		free := true
		for i := range names {
			names[i] = base + strconv.Itoa(start+i)
			if taken(names[i]) {
				free = false
				break
			}
		}
		if free {
			return names
		}
	}
}

func (id Identifier) legalize(proposal string) string {
	if id.Legalize != nil {
		return id.Legalize(proposal)
	}
	return Legalize(proposal, id.Style)
}

// Legalize strips a proposal down to identifier grammar and applies the
// casing style. Words are split on non-alphanumeric runes and on
// lower-to-upper camel boundaries; a leading digit gets an underscore
// prefix and an empty result becomes "Empty".
func Legalize(proposal string, style Style) string {
	words := SplitWords(proposal)
	if len(words) == 0 {
		words = []string{"empty"}
	}

	var sb strings.Builder
	for i, w := range words {
		if i == 0 && style == LowerCamel {
			sb.WriteString(strings.ToLower(w))
			continue
		}
		sb.WriteString(titleWord(w))
	}

	s := sb.String()
	if r := rune(s[0]); unicode.IsDigit(r) {
		s = "_" + s
	}
	return s
}

// titleWord uppercases the first rune and lowercases the rest. Decoding
// the rune keeps multi-byte starts intact.
func titleWord(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// SplitWords breaks a proposal into word parts: non-alphanumeric runes
// separate words, as does a lowercase-or-digit rune followed by uppercase.
func SplitWords(s string) []string {
	var words []string
	var current []rune
	var prev rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
		prev = r
	}
	flush()
	return words
}
