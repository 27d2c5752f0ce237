package ubigkas

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const vowels = "aeiou"

// reFirstSyllable matches a leading consonant cluster and its vowel.
var reFirstSyllable = regexp.MustCompile(`^[^aeiou]+[aeiou]`)

// reOnset splits a root into leading consonant cluster and remainder.
var reOnset = regexp.MustCompile(`^([^aeiou]+)(.*)$`)

func startsWithVowel(s string) bool {
	return s != "" && strings.IndexByte(vowels, s[0]) >= 0
}

func endsWithVowel(s string) bool {
	return s != "" && strings.IndexByte(vowels, s[len(s)-1]) >= 0
}

// reduplicate returns the fragment repeated to mark incompleted aspect:
// the initial vowel, or the first consonant cluster plus its vowel
// (kain → ka, luto → lu). A root with no vowel repeats its first letter.
func reduplicate(root string) string {
	if root == "" {
		return ""
	}
	if startsWithVowel(root) {
		return root[:1]
	}
	if m := reFirstSyllable.FindString(root); m != "" {
		return m
	}
	_, size := utf8.DecodeRuneInString(root)
	return root[:size]
}

// insertInfix places infix after the leading consonant cluster
// (kain + um → kumain), or in front of a vowel-initial root.
func insertInfix(root, infix string) string {
	if root == "" {
		return root
	}
	if startsWithVowel(root) {
		return infix + root
	}
	if m := reOnset.FindStringSubmatch(root); m != nil {
		return m[1] + infix + m[2]
	}
	return infix + root
}

// conjugate inflects the folded root. Irregular overrides are consulted
// before the class rules. TenseBase is inflected like TenseFuture.
// It returns "" when neither an override nor a class rule applies.
func (t *Tables) conjugate(root string, class VerbClass, tense Tense) string {
	if root == "" {
		return ""
	}
	if irr := t.irregular(root, class); irr != nil {
		return irr.form(tense)
	}

	redup := reduplicate(root)
	switch class {
	case ClassMAG:
		sep := ""
		if startsWithVowel(root) {
			sep = "-"
		}
		switch tense {
		case TensePast:
			return "nag" + sep + root
		case TensePresent:
			return "nag" + sep + redup + root
		default:
			return "mag" + sep + redup + root
		}
	case ClassUM:
		switch tense {
		case TensePast:
			return insertInfix(root, "um")
		case TensePresent:
			return insertInfix(redup+root, "um")
		default:
			return redup + root
		}
	case ClassIN:
		suffix := "in"
		if endsWithVowel(root) {
			suffix = "hin"
		}
		switch tense {
		case TensePast:
			return insertInfix(root, "in")
		case TensePresent:
			return insertInfix(redup+root, "in")
		default:
			return redup + root + suffix
		}
	case ClassAN:
		suffix := "an"
		if endsWithVowel(root) {
			suffix = "han"
		}
		switch tense {
		case TensePast:
			return insertInfix(root, "in") + suffix
		case TensePresent:
			return insertInfix(redup+root, "in") + suffix
		default:
			return redup + root + suffix
		}
	}
	return ""
}

// Conjugate inflects root for tense using the default tables.
func Conjugate(root string, class VerbClass, tense Tense) string {
	return DefaultTables().inflect(root, class, tense)
}

// Conjugate inflects root in class for tense. The root is folded before
// lookup. An empty root, or ClassNone without an override, is returned
// exactly as given.
func (e *Engine) Conjugate(root string, class VerbClass, tense Tense) string {
	return e.tables.inflect(root, class, tense)
}

func (t *Tables) inflect(root string, class VerbClass, tense Tense) string {
	if form := t.conjugate(FoldKey(root), class, tense); form != "" {
		return form
	}
	return root
}

// ConjugationTable returns every tense form of a known verb root.
// ok is false when root is not in the verb table.
func (e *Engine) ConjugationTable(root string) (table *ConjugationTable, ok bool) {
	key := FoldKey(root)
	class := e.tables.verbs[key]
	if class == ClassNone {
		return nil, false
	}
	return &ConjugationTable{
		Root:    key,
		Class:   class,
		Future:  e.tables.conjugate(key, class, TenseFuture),
		Present: e.tables.conjugate(key, class, TensePresent),
		Past:    e.tables.conjugate(key, class, TensePast),
	}, true
}
