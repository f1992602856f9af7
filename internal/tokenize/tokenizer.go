// Package tokenize implements BERT-style WordPiece tokenization with
// entity-span realignment: spans given in whitespace-token coordinates are
// mapped onto the produced subword sequence.
package tokenize

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/crimson-sun/relprep/internal/model"
)

// Special tokens expected in the vocabulary.
const (
	PadToken = "[PAD]"
	UnkToken = "[UNK]"
	ClsToken = "[CLS]"
	SepToken = "[SEP]"
)

// ContinuationPrefix marks a subword that continues the previous one.
const ContinuationPrefix = "##"

// Tokenizer performs BERT-style WordPiece tokenization. Safe for concurrent
// use: all state is read-only after construction.
type Tokenizer struct {
	vocab *vocab
}

// New creates a Tokenizer from a vocab.txt file.
func New(vocabPath string) (*Tokenizer, error) {
	v, err := loadVocab(vocabPath)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{vocab: v}, nil
}

// NewFromTokens creates a Tokenizer from an in-memory ordered token list.
// The list must contain the [PAD], [UNK], [CLS] and [SEP] tokens.
func NewFromTokens(tokens []string) (*Tokenizer, error) {
	v, err := newVocab(tokens)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{vocab: v}, nil
}

// Tokenize converts text into WordPiece subword tokens. No special tokens
// are added and no truncation is applied.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, word := range strings.Fields(text) {
		tokens = append(tokens, t.wordTokens(word)...)
	}
	return tokens
}

// TokenizeWithSpans tokenizes text and maps spans from whitespace-token
// coordinates onto the produced subword sequence. Whitespace token i maps to
// the contiguous subword range its pieces occupy, so a span [s,e) over
// whitespace tokens becomes the subword range from the first piece of token
// s to the last piece of token e-1.
func (t *Tokenizer) TokenizeWithSpans(text string, spans [2]model.Span) ([]string, [2]model.Span, error) {
	words := strings.Fields(text)

	// offsets[i] is the subword index where whitespace token i begins;
	// offsets[len(words)] is the total subword count.
	offsets := make([]int, len(words)+1)
	var tokens []string
	for i, word := range words {
		offsets[i] = len(tokens)
		tokens = append(tokens, t.wordTokens(word)...)
	}
	offsets[len(words)] = len(tokens)

	var aligned [2]model.Span
	for k, sp := range spans {
		if !sp.Valid(len(words)) {
			return nil, aligned, fmt.Errorf("tokenize: entity span %s out of bounds for %d whitespace tokens", sp, len(words))
		}
		aligned[k] = model.Span{Start: offsets[sp.Start], End: offsets[sp.End]}
	}
	return tokens, aligned, nil
}

// TokensToIDs maps tokens to vocabulary IDs, using [UNK] for unknown tokens.
func (t *Tokenizer) TokensToIDs(tokens []string) []int64 {
	ids := make([]int64, len(tokens))
	for i, tok := range tokens {
		ids[i] = t.vocab.lookup(tok)
	}
	return ids
}

// PadID returns the vocabulary ID of the [PAD] token.
func (t *Tokenizer) PadID() int64 {
	return t.vocab.padID
}

// VocabSize returns the number of tokens in the vocabulary.
func (t *Tokenizer) VocabSize() int {
	return t.vocab.size()
}

// wordTokens runs one whitespace-delimited word through BERT's basic
// tokenization (clean, CJK spacing, lowercase, accent stripping, punctuation
// splitting) and WordPiece decomposition. Tokenizing word by word keeps the
// mapping from whitespace tokens to subword ranges exact.
func (t *Tokenizer) wordTokens(word string) []string {
	word = cleanText(word)
	word = tokenizeChineseChars(word)
	word = strings.ToLower(word)
	word = stripAccents(word)

	var basic []string
	for _, w := range strings.Fields(word) {
		basic = append(basic, splitOnPunctuation(w)...)
	}
	return t.wordpiece(basic)
}

// wordpiece applies the WordPiece algorithm to a list of basic tokens.
func (t *Tokenizer) wordpiece(tokens []string) []string {
	var result []string
	for _, token := range tokens {
		if len(token) == 0 {
			continue
		}
		result = append(result, t.wordpieceToken(token)...)
	}
	return result
}

// wordpieceToken decomposes a single basic token into WordPiece subwords
// using greedy longest-match-first. Tokens that cannot be decomposed become
// a single [UNK].
func (t *Tokenizer) wordpieceToken(token string) []string {
	runes := []rune(token)
	if len(runes) > 200 {
		return []string{UnkToken}
	}

	var subTokens []string
	start := 0
	for start < len(runes) {
		end := len(runes)
		found := false
		for end > start {
			sub := string(runes[start:end])
			if start > 0 {
				sub = ContinuationPrefix + sub
			}
			if t.vocab.contains(sub) {
				subTokens = append(subTokens, sub)
				found = true
				break
			}
			end--
		}
		if !found {
			return []string{UnkToken}
		}
		start = end
	}
	return subTokens
}

// cleanText removes control characters and replaces whitespace with spaces.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == 0 || r == 0xFFFD || isControl(r) {
			continue
		}
		if isWhitespace(r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripAccents removes combining diacritical marks after NFD normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// tokenizeChineseChars adds spaces around CJK Unified Ideographs so they
// become individual tokens.
func tokenizeChineseChars(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	for _, r := range text {
		if isChineseChar(r) {
			b.WriteRune(' ')
			b.WriteRune(r)
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitOnPunctuation splits a word at each punctuation character, keeping
// the punctuation as separate tokens.
func splitOnPunctuation(word string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range word {
		if isPunctuation(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			tokens = append(tokens, string(r))
		} else {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

// Character classification helpers — these match BERT's Python implementation.

func isWhitespace(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}

func isPunctuation(r rune) bool {
	// BERT treats anything in ASCII range 33-47, 58-64, 91-96, 123-126 as
	// punctuation, plus Unicode punctuation categories.
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}

func isChineseChar(r rune) bool {
	// CJK Unified Ideographs and extension ranges.
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x20000 && r <= 0x2A6DF) ||
		(r >= 0x2A700 && r <= 0x2B73F) ||
		(r >= 0x2B740 && r <= 0x2B81F) ||
		(r >= 0x2B820 && r <= 0x2CEAF) ||
		(r >= 0xF900 && r <= 0xFAFF) ||
		(r >= 0x2F800 && r <= 0x2FA1F)
}
