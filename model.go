package ubigkas

import (
	"fmt"
	"strings"
)

// VerbClass is the focus/affix paradigm a verb root inflects with.
type VerbClass uint8

const (
	// ClassNone marks a word that is not a known verb root.
	ClassNone VerbClass = iota
	// ClassMAG is actor focus with mag-/nag-.
	ClassMAG
	// ClassUM is actor focus with the -um- infix.
	ClassUM
	// ClassIN is object focus with -in / -in- .
	ClassIN
	// ClassAN is locative focus with -an and the -in- infix.
	ClassAN
)

// String returns the table spelling of the class ("MAG", "UM", ...).
func (c VerbClass) String() string {
	switch c {
	case ClassMAG:
		return "MAG"
	case ClassUM:
		return "UM"
	case ClassIN:
		return "IN"
	case ClassAN:
		return "AN"
	default:
		return "NONE"
	}
}

// ParseVerbClass parses a class name as written in verbs.txt.
func ParseVerbClass(s string) (VerbClass, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MAG":
		return ClassMAG, nil
	case "UM":
		return ClassUM, nil
	case "IN":
		return ClassIN, nil
	case "AN":
		return ClassAN, nil
	}
	return ClassNone, fmt.Errorf("unknown verb class %q", s)
}

// Tense is the coarse aspect a sentence is rendered in.
// The zero value is TenseBase (no signal found).
type Tense uint8

const (
	TenseBase Tense = iota
	TensePast
	TensePresent
	TenseFuture
)

func (t Tense) String() string {
	switch t {
	case TensePast:
		return "past"
	case TensePresent:
		return "present"
	case TenseFuture:
		return "future"
	default:
		return "base"
	}
}

// ParseTense accepts "past", "present", "future" and "base" (or "").
func ParseTense(s string) (Tense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "base":
		return TenseBase, nil
	case "past":
		return TensePast, nil
	case "present":
		return TensePresent, nil
	case "future":
		return TenseFuture, nil
	}
	return TenseBase, fmt.Errorf("unknown tense %q", s)
}

// Tag is a token-classification label produced by the external tagger.
type Tag string

const (
	TagNone       Tag = "O"
	TagInversion  Tag = "B-AY"
	TagOblique    Tag = "B-SA"
	TagLinking    Tag = "B-NG"
	TagFutureAdv  Tag = "B-FUTURE_ADV"
	TagPresentAdv Tag = "B-PRESENT_ADV"
	TagPastAdv    Tag = "B-PAST_ADV"
)

// Marker words. These particles are never conjugated and are copied
// through verbatim when already present in the input.
const (
	MarkerTopic        = "ang"
	MarkerPlural       = "mga"
	MarkerLinking      = "ng"
	MarkerNameTopic    = "si"
	MarkerNameGenitive = "ni"
	MarkerOblique      = "sa"
	MarkerLocative     = "nasa"
	MarkerInversion    = "ay"
)

var markerWords = map[string]bool{
	MarkerTopic:        true,
	MarkerPlural:       true,
	MarkerLinking:      true,
	MarkerNameTopic:    true,
	MarkerNameGenitive: true,
	MarkerOblique:      true,
	MarkerLocative:     true,
	MarkerInversion:    true,
}

// IsMarker reports whether w (any case) is one of the marker particles.
func IsMarker(w string) bool {
	return markerWords[strings.ToLower(w)]
}

// Irregular holds hand-written forms that replace the class rules for a root.
type Irregular struct {
	Root string
	// Class restricts the override to one paradigm; ClassNone applies to all.
	Class   VerbClass
	Future  string
	Present string
	Past    string
}

// form returns the override for tense; base uses the future form.
func (irr *Irregular) form(t Tense) string {
	switch t {
	case TensePast:
		return irr.Past
	case TensePresent:
		return irr.Present
	default:
		return irr.Future
	}
}
