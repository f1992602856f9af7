package tokenize

import (
	"bufio"
	"fmt"
	"os"
)

// vocab holds a WordPiece vocabulary. Token IDs are determined by position
// (0-indexed line number in a vocab.txt file).
type vocab struct {
	tokenToID map[string]int64
	idToToken []string

	padID int64
	unkID int64
	clsID int64
	sepID int64
}

// loadVocab reads a vocab.txt file where each line is a token and the line
// number (0-indexed) is the token ID.
func loadVocab(path string) (*vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: %w", err)
	}
	defer f.Close()

	var tokens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vocab: read error: %w", err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("vocab: file is empty: %s", path)
	}
	return newVocab(tokens)
}

// newVocab builds a vocabulary from an ordered token list and resolves the
// special token IDs.
func newVocab(tokens []string) (*vocab, error) {
	tokenToID := make(map[string]int64, len(tokens))
	for i, tok := range tokens {
		tokenToID[tok] = int64(i)
	}

	v := &vocab{
		tokenToID: tokenToID,
		idToToken: tokens,
	}

	specials := []struct {
		name string
		dest *int64
	}{
		{PadToken, &v.padID},
		{UnkToken, &v.unkID},
		{ClsToken, &v.clsID},
		{SepToken, &v.sepID},
	}
	for _, s := range specials {
		id, ok := tokenToID[s.name]
		if !ok {
			return nil, fmt.Errorf("vocab: missing special token %s", s.name)
		}
		*s.dest = id
	}

	return v, nil
}

// lookup returns the token ID for the given token, or the [UNK] ID if not found.
func (v *vocab) lookup(token string) int64 {
	if id, ok := v.tokenToID[token]; ok {
		return id
	}
	return v.unkID
}

// contains reports whether the token is in the vocabulary.
func (v *vocab) contains(token string) bool {
	_, ok := v.tokenToID[token]
	return ok
}

// size returns the number of tokens in the vocabulary.
func (v *vocab) size() int {
	return len(v.idToToken)
}
