package ubigkas

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldKey returns the lookup key for a word: lowercased, with stress
// accents and other combining marks removed (bukás → bukas).
// Note that ñ folds to n as well.
func FoldKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	// Transformers and casers keep state, so they are built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return cases.Lower(language.Und).String(folded)
}

// reDuplicateMarker matches a run of the same marker separated only by
// whitespace ("ng ng", "sa  SA sa"). The backreference is why this uses
// regexp2 rather than regexp.
var reDuplicateMarker = regexp2.MustCompile(`\b(ng|sa|ay)(?:\s+\1\b)+`, regexp2.IgnoreCase)

// spatialNouns head locative phrases ("sa ilalim ng mesa").
var spatialNouns = []string{
	"likod", "harap", "taas", "baba", "loob",
	"labas", "gilid", "gitna", "ibabaw", "ilalim",
}

// reLocative matches a spatial noun with any surrounding sa/ng markers,
// in any case, and the word that follows it. It runs on the same engine
// as reDuplicateMarker so both agree on \b and \s.
var reLocative = regexp2.MustCompile(
	`(?:\b(?i:sa|ng)\b\s*)*\b(` + strings.Join(spatialNouns, "|") + `)\b(?:\s+(?i:sa|ng)\b)*\s+([\p{L}\p{N}_]+)`,
	regexp2.None)

// Normalize cleans up a reconstructed sentence. It collapses repeated
// markers and rewrites locative phrases to "sa NOUN ng WORD". A phrase
// whose following word is itself a marker is left alone.
// Normalize is idempotent.
func Normalize(text string) string {
	text = collapseMarkers(text)
	out, err := reLocative.ReplaceFunc(text, func(m regexp2.Match) string {
		next := m.GroupByNumber(2).String()
		if IsMarker(next) {
			return m.String()
		}
		return "sa " + m.GroupByNumber(1).String() + " ng " + next
	}, -1, -1)
	if err != nil {
		return text
	}
	return out
}

func collapseMarkers(text string) string {
	out, err := reDuplicateMarker.Replace(text, "$1", -1, -1)
	if err != nil {
		// Only a match timeout can fail, and none is configured.
		return text
	}
	return out
}

// Finish applies sentence-level presentation: surrounding space trimmed,
// first letter capitalized, and a period added when the sentence has no
// terminal punctuation.
func Finish(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	r, size := utf8.DecodeRuneInString(text)
	text = string(unicode.ToUpper(r)) + text[size:]
	if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") && !strings.HasSuffix(text, "?") {
		text += "."
	}
	return text
}
