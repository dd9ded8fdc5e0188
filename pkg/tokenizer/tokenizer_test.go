package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "simple sentence",
			text:     "The quick brown fox",
			expected: []string{"The", "quick", "brown", "fox"},
		},
		{
			name:     "punctuation stripped",
			text:     "Hello, world! How are you?",
			expected: []string{"Hello", "world", "How", "are", "you"},
		},
		{
			name:     "contractions kept whole",
			text:     "don't stop",
			expected: []string{"don't", "stop"},
		},
		{
			name:     "hyphenated compound",
			text:     "a well-known author",
			expected: []string{"a", "well-known", "author"},
		},
		{
			name:     "empty input",
			text:     "",
			expected: nil,
		},
		{
			name:     "only punctuation",
			text:     "...!!!",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestTokenizeLower(t *testing.T) {
	t.Parallel()
	got := TokenizeLower("The QUICK Fox")
	expected := []string{"the", "quick", "fox"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("TokenizeLower = %v, expected %v", got, expected)
	}
}

func TestWordNgrams(t *testing.T) {
	t.Parallel()
	tokens := []string{"the", "quick", "brown", "fox"}

	t.Run("unigrams pass through", func(t *testing.T) {
		got := WordNgrams(tokens, 1)
		if !reflect.DeepEqual(got, tokens) {
			t.Errorf("expected pass-through, got %v", got)
		}
	})

	t.Run("bigrams", func(t *testing.T) {
		got := WordNgrams(tokens, 2)
		expected := []string{"the quick", "quick brown", "brown fox"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("WordNgrams = %v, expected %v", got, expected)
		}
	})

	t.Run("n larger than stream", func(t *testing.T) {
		got := WordNgrams([]string{"lone"}, 3)
		if got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestCharNgrams(t *testing.T) {
	t.Parallel()
	t.Run("trigrams", func(t *testing.T) {
		got := CharNgrams("abcd", 3)
		expected := []string{"abc", "bcd"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("CharNgrams = %v, expected %v", got, expected)
		}
	})

	t.Run("whitespace collapsed", func(t *testing.T) {
		got := CharNgrams("a  b", 3)
		expected := []string{"a b"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("CharNgrams = %v, expected %v", got, expected)
		}
	})

	t.Run("text shorter than n", func(t *testing.T) {
		if got := CharNgrams("ab", 4); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestCharNgramsWB(t *testing.T) {
	t.Parallel()
	got := CharNgramsWB([]string{"ab"}, 3)
	// Padded word " ab " yields " ab" and "ab ".
	expected := []string{" ab", "ab "}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("CharNgramsWB = %v, expected %v", got, expected)
	}

	// A word shorter than n-2 is emitted padded but whole.
	got = CharNgramsWB([]string{"a"}, 4)
	expected = []string{" a "}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("CharNgramsWB short word = %v, expected %v", got, expected)
	}
}
