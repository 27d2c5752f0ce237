package ubigkas

// Tables is the lexical data an Engine consults: verb roots with their
// paradigm, irregular overrides and the tense keyword sets.
// A Tables value is never modified after loading and may be shared
// between goroutines.
type Tables struct {
	// verbs maps FoldKey(root) → class.
	verbs map[string]VerbClass

	// irregulars maps FoldKey(root) → overrides, class-specific first.
	irregulars map[string][]*Irregular

	past    map[string]bool
	present map[string]bool
	future  map[string]bool
}

func newTables() *Tables {
	return &Tables{
		verbs:      make(map[string]VerbClass),
		irregulars: make(map[string][]*Irregular),
		past:       make(map[string]bool),
		present:    make(map[string]bool),
		future:     make(map[string]bool),
	}
}

// Class returns the paradigm of root, or ClassNone if root is not a known verb.
func (t *Tables) Class(root string) VerbClass {
	return t.verbs[FoldKey(root)]
}

// Verbs returns the number of known verb roots.
func (t *Tables) Verbs() int {
	return len(t.verbs)
}

// Irregulars returns the number of irregular overrides.
func (t *Tables) Irregulars() int {
	n := 0
	for _, list := range t.irregulars {
		n += len(list)
	}
	return n
}

// IsTimeAdverb reports whether w is in any of the tense keyword sets.
func (t *Tables) IsTimeAdverb(w string) bool {
	k := FoldKey(w)
	return t.past[k] || t.present[k] || t.future[k]
}

// irregular returns the override for the folded root under class. An
// override bound to a specific class wins over one that applies to every class.
func (t *Tables) irregular(root string, class VerbClass) *Irregular {
	var fallback *Irregular
	for _, irr := range t.irregulars[root] {
		if irr.Class == class {
			return irr
		}
		if irr.Class == ClassNone && fallback == nil {
			fallback = irr
		}
	}
	return fallback
}

func (t *Tables) addIrregular(irr *Irregular) {
	key := FoldKey(irr.Root)
	t.irregulars[key] = append(t.irregulars[key], irr)
}
