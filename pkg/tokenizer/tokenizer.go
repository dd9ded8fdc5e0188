// Package tokenizer provides word and character analyzers used to turn raw
// text into the feature units consumed by the vectorizer.
package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenize splits text into word tokens on Unicode non-letter boundaries.
// Apostrophes and hyphens inside a word are kept so that contractions and
// compounds survive as single tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		return r != '\'' && r != '-'
	})
}

// TokenizeLower tokenizes text after folding it to lower case.
func TokenizeLower(text string) []string {
	return Tokenize(strings.ToLower(text))
}

// WordNgrams builds n-grams of size n from a token stream, joining the
// member tokens with a single space. For n=1 it returns the tokens as-is.
func WordNgrams(tokens []string, n int) []string {
	if n <= 1 {
		return tokens
	}
	if len(tokens) < n {
		return nil
	}
	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], " "))
	}
	return grams
}

// CharNgrams builds character n-grams over the raw rune stream of text.
// Runs of whitespace are collapsed to a single space first so that layout
// does not leak into the features.
func CharNgrams(text string, n int) []string {
	if n < 1 {
		return nil
	}
	runes := []rune(collapseSpace(text))
	if len(runes) < n {
		return nil
	}
	grams := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+n]))
	}
	return grams
}

// CharNgramsWB builds character n-grams confined to word boundaries. Each
// token is padded with a leading and trailing space before extraction, the
// scheme used by char_wb analyzers.
func CharNgramsWB(tokens []string, n int) []string {
	if n < 1 {
		return nil
	}
	var grams []string
	for _, tok := range tokens {
		padded := []rune(" " + tok + " ")
		if len(padded) < n {
			grams = append(grams, string(padded))
			continue
		}
		for i := 0; i+n <= len(padded); i++ {
			grams = append(grams, string(padded[i:i+n]))
		}
	}
	return grams
}

func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
