package ubigkas

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// accumulator is the state threaded through the reconstruction fold:
// the words emitted so far and the last of them, folded.
type accumulator struct {
	words []string
	prev  string
}

func (a *accumulator) emit(words ...string) {
	for _, w := range words {
		a.words = append(a.words, w)
		a.prev = FoldKey(w)
	}
}

func checkAligned(tokens []string, tags []Tag, scores []float64) error {
	if len(tokens) != len(tags) || len(tokens) != len(scores) {
		return fmt.Errorf("%w: %d tokens, %d tags, %d scores",
			ErrLengthMismatch, len(tokens), len(tags), len(scores))
	}
	return nil
}

// gate replaces every tag whose score is below the threshold with TagNone.
func (e *Engine) gate(tags []Tag, scores []float64) []Tag {
	gated := make([]Tag, len(tags))
	for i, tag := range tags {
		if scores[i] < e.threshold {
			tag = TagNone
		}
		gated[i] = tag
	}
	return gated
}

// Reconstruct returns the marked-up word sequence for a tagged sentence,
// before post-normalization.
func (e *Engine) Reconstruct(tokens []string, tags []Tag, scores []float64) ([]string, error) {
	a, err := e.Explain(tokens, tags, scores)
	if err != nil {
		return nil, err
	}
	return a.Words, nil
}

// Explain runs the reconstruction and returns a per-token trace along
// with the normalized text.
func (e *Engine) Explain(tokens []string, tags []Tag, scores []float64) (*Analysis, error) {
	if err := checkAligned(tokens, tags, scores); err != nil {
		return nil, err
	}
	gated := e.gate(tags, scores)
	tense := e.tables.resolveTense(tokens, gated)

	acc := &accumulator{words: make([]string, 0, len(tokens))}
	steps := make([]Step, 0, len(tokens))
	for i, tok := range tokens {
		before := len(acc.words)
		st := e.step(acc, i, tok, gated[i], tense)
		st.Tag = tags[i]
		st.Score = scores[i]
		st.Output = acc.words[before:len(acc.words):len(acc.words)]
		steps = append(steps, st)

		if ce := e.logger.Check(zap.DebugLevel, "token"); ce != nil {
			ce.Write(
				zap.Int("index", i),
				zap.String("token", tok),
				zap.String("tag", string(gated[i])),
				zap.Strings("output", st.Output))
		}
	}

	return &Analysis{
		Tense: tense,
		Steps: steps,
		Words: acc.words,
		Text:  Normalize(strings.Join(acc.words, " ")),
	}, nil
}

// step processes token i and appends its output to acc.
func (e *Engine) step(acc *accumulator, i int, tok string, tag Tag, tense Tense) Step {
	st := Step{Index: i, Token: tok, Effective: tag}
	key := FoldKey(tok)
	prev := acc.prev

	// Markers already in the input are kept as written.
	if markerWords[key] {
		acc.emit(tok)
		return st
	}

	word := tok
	timeUsage := tense != TenseBase && e.tables.IsTimeAdverb(key)
	if class := e.tables.verbs[key]; class != ClassNone && !timeUsage {
		word = e.tables.conjugate(key, class, tense)
		st.Conjugated = true
	}

	insert := ""
	switch tag {
	case TagInversion:
		if prev != MarkerInversion && i > 0 {
			insert = MarkerInversion
		}
	case TagOblique:
		switch prev {
		case MarkerOblique, MarkerLocative, MarkerLinking, MarkerTopic:
		default:
			insert = MarkerOblique
		}
	case TagLinking:
		switch prev {
		case MarkerLinking, MarkerInversion, MarkerTopic:
		default:
			insert = MarkerLinking
		}
	}

	if insert != "" {
		st.Inserted = insert
		acc.emit(insert)
	}
	acc.emit(word)
	return st
}
