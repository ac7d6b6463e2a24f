package router

import (
	"strings"
	"unicode"
)

// Classify determines the intent of a single utterance.
//
// The test is case-insensitive keyword membership against the ordered rule
// table: greeting, then thanks, then goodbye; no match means query. Pure and
// deterministic, so identical utterances always take the same path.
func (r *KeywordRouter) Classify(utterance string) Intent {
	lowered := strings.ToLower(utterance)
	words := tokenize(lowered)

	for _, rule := range rules {
		if matches(rule, lowered, words) {
			return rule.intent
		}
	}
	return IntentQuery
}

func matches(rl rule, lowered string, words map[string]struct{}) bool {
	for _, w := range rl.words {
		if _, ok := words[w]; ok {
			return true
		}
	}
	for _, p := range rl.phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// tokenize splits on anything that is not a letter or digit. Single keywords
// match whole words only, so "this" never triggers "hi".
func tokenize(lowered string) map[string]struct{} {
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	words := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		words[f] = struct{}{}
	}
	return words
}
