package feature

import (
	"fmt"
	"strings"

	"github.com/crimson-sun/relprep/internal/model"
	"github.com/crimson-sun/relprep/internal/tokenize"
)

// verifyAlignment checks the textual round trip for one entity: the
// lower-cased concatenation of the original whitespace tokens must equal the
// concatenation of the realigned subwords with continuation prefixes
// stripped. A mismatch means the span realignment (or the annotation) is
// wrong, which would corrupt every downstream channel.
func verifyAlignment(words, subTokens []string, orig, aligned model.Span) error {
	want := strings.ToLower(strings.Join(words[orig.Start:orig.End], ""))

	var b strings.Builder
	for _, tok := range subTokens[aligned.Start:aligned.End] {
		b.WriteString(strings.TrimPrefix(tok, tokenize.ContinuationPrefix))
	}
	got := b.String()

	if want != got {
		return fmt.Errorf("%w: whitespace span %s reads %q, subword span %s reads %q",
			ErrAlignment, orig, want, aligned, got)
	}
	return nil
}
