// Package textnorm turns raw review text into the canonical token stream
// the classifier counts: lowercase Cyrillic/Latin words separated by single
// spaces.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var dottedCapitalI = strings.NewReplacer("\u0130", "I")

// Normalize lowercases text, replaces every rune that is not a lowercase
// Cyrillic (а-я, ё) or Latin (a-z) letter with a space, collapses runs of
// whitespace and trims both ends.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Casers keep state, so each call gets its own. 'İ' is folded first so
	// lowercasing stays one rune per rune instead of emitting "i" + U+0307.
	lowered := cases.Lower(language.Russian).String(dottedCapitalI.Replace(text))

	var builder strings.Builder
	builder.Grow(len(lowered))
	needSpace := false

	for _, r := range lowered {
		if !IsWordRune(r) {
			// Anything else acts as a separator before the next letter.
			if builder.Len() > 0 {
				needSpace = true
			}
			continue
		}
		if needSpace {
			builder.WriteByte(' ')
			needSpace = false
		}
		builder.WriteRune(r)
	}

	return builder.String()
}

// Tokenize normalizes text and splits it into words. Empty tokens are dropped.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	parts := strings.Split(normalized, " ")
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// IsWordRune reports whether r survives normalization.
func IsWordRune(r rune) bool {
	switch {
	case r >= 'а' && r <= 'я':
		return true
	case r == 'ё':
		return true
	case r >= 'a' && r <= 'z':
		return true
	}
	return false
}
