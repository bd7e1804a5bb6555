package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/gogpu/glyphatlas"
)

// Replacement is substituted for characters without an ASCII form.
const Replacement = '?'

// Fold maps arbitrary UTF-8 text into the atlas code space.
//
// Full-width and half-width forms are narrowed, compatibility characters
// are decomposed (so "ﬁ" becomes "fi") and combining marks are dropped
// (so "É" becomes "E"). Anything left outside the registrable code range,
// including invalid UTF-8, becomes Replacement.
func Fold(s string) string {
	s = strings.ToValidUTF8(s, string(Replacement))

	// Transformers keep state, so the chain is built per call.
	t := transform.Chain(
		width.Fold,
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(toCode),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.Map(toCode, s)
	}
	return out
}

func toCode(r rune) rune {
	if r >= 0 && r <= glyphatlas.MaxCode {
		return r
	}
	return Replacement
}
