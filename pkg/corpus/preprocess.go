package corpus

import (
	"strings"
	"unicode"
)

// PreprocessOptions controls the canonicalization applied to raw text before
// tokenization.
type PreprocessOptions struct {
	// Lowercase folds text to lower case.
	Lowercase bool
	// StripPunctuation removes punctuation and symbol runes.
	StripPunctuation bool
	// StripDigits removes numeric runes.
	StripDigits bool
}

// DefaultPreprocessOptions mirrors the preprocessing the original corpus
// pipeline applies: case folding with punctuation and digits removed.
func DefaultPreprocessOptions() PreprocessOptions {
	return PreprocessOptions{
		Lowercase:        true,
		StripPunctuation: true,
		StripDigits:      true,
	}
}

// Preprocess rewrites every document text according to opts and collapses
// whitespace runs to single spaces. Token streams from an earlier Tokenize
// call are invalidated and must be rebuilt.
func (c *Corpus) Preprocess(opts PreprocessOptions) error {
	if len(c.docs) == 0 {
		return ErrEmptyCorpus
	}
	for _, doc := range c.docs {
		doc.Text = preprocessText(doc.Text, opts)
		doc.Tokens = nil
	}
	c.logger.Debug("preprocessed corpus",
		"documents", len(c.docs),
		"lowercase", opts.Lowercase,
		"strip_punctuation", opts.StripPunctuation,
		"strip_digits", opts.StripDigits)
	return nil
}

func preprocessText(text string, opts PreprocessOptions) string {
	if opts.Lowercase {
		text = strings.ToLower(text)
	}
	if opts.StripPunctuation || opts.StripDigits {
		var b strings.Builder
		b.Grow(len(text))
		for _, r := range text {
			switch {
			case opts.StripPunctuation && (unicode.IsPunct(r) || unicode.IsSymbol(r)):
				b.WriteRune(' ')
			case opts.StripDigits && unicode.IsDigit(r):
				b.WriteRune(' ')
			default:
				b.WriteRune(r)
			}
		}
		text = b.String()
	}
	return strings.Join(strings.Fields(text), " ")
}
