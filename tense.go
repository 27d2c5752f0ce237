package ubigkas

// ResolveTense decides the tense of a sentence. Keyword cues win over
// tags: future keywords, then past, then present. Without a keyword the
// first adverb tag kind present decides, in the order future, present,
// past. With neither, the result is TenseBase.
func (e *Engine) ResolveTense(tokens []string, tags []Tag) Tense {
	return e.tables.resolveTense(tokens, tags)
}

func (t *Tables) resolveTense(tokens []string, tags []Tag) Tense {
	words := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		words[FoldKey(tok)] = true
	}
	cues := []struct {
		set   map[string]bool
		tense Tense
	}{
		{t.future, TenseFuture},
		{t.past, TensePast},
		{t.present, TensePresent},
	}
	for _, c := range cues {
		for w := range words {
			if c.set[w] {
				return c.tense
			}
		}
	}

	seen := make(map[Tag]bool, len(tags))
	for _, tag := range tags {
		seen[tag] = true
	}
	switch {
	case seen[TagFutureAdv]:
		return TenseFuture
	case seen[TagPresentAdv]:
		return TensePresent
	case seen[TagPastAdv]:
		return TensePast
	}
	return TenseBase
}
