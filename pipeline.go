package ubigkas

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Tokenizer splits a sentence into tokens.
type Tokenizer interface {
	Tokenize(sentence string) []string
}

// Tagger assigns one tag and one confidence score to every token.
// Implementations wrap the token-classification model; the returned
// slices must be aligned with tokens.
type Tagger interface {
	Tag(ctx context.Context, tokens []string) ([]Tag, []float64, error)
}

// WhitespaceTokenizer splits on runs of white space.
type WhitespaceTokenizer struct{}

func (WhitespaceTokenizer) Tokenize(sentence string) []string {
	return strings.Fields(sentence)
}

// TaggerFunc adapts an ordinary function to the Tagger interface.
type TaggerFunc func(ctx context.Context, tokens []string) ([]Tag, []float64, error)

func (f TaggerFunc) Tag(ctx context.Context, tokens []string) ([]Tag, []float64, error) {
	return f(ctx, tokens)
}

// UniformTagger tags every token TagNone with full confidence. A pipeline
// using it only conjugates verbs and normalizes; it is the fallback when
// no model is available.
type UniformTagger struct{}

func (UniformTagger) Tag(_ context.Context, tokens []string) ([]Tag, []float64, error) {
	tags := make([]Tag, len(tokens))
	scores := make([]float64, len(tokens))
	for i := range tokens {
		tags[i] = TagNone
		scores[i] = 1
	}
	return tags, scores, nil
}

// Pipeline runs tokenization, tagging and reconstruction for whole
// sentences. Sentence splitting is left to the caller.
type Pipeline struct {
	engine    *Engine
	tokenizer Tokenizer
	tagger    Tagger
	workers   int
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithTokenizer replaces the WhitespaceTokenizer.
func WithTokenizer(t Tokenizer) PipelineOption {
	return func(p *Pipeline) { p.tokenizer = t }
}

// WithWorkers bounds the number of sentences CorrectBatch processes at
// once. n <= 0 means no limit.
func WithWorkers(n int) PipelineOption {
	return func(p *Pipeline) { p.workers = n }
}

// NewPipeline returns a pipeline over e. A nil tagger means UniformTagger.
func NewPipeline(e *Engine, tagger Tagger, opts ...PipelineOption) *Pipeline {
	if tagger == nil {
		tagger = UniformTagger{}
	}
	p := &Pipeline{
		engine:    e,
		tokenizer: WhitespaceTokenizer{},
		tagger:    tagger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Correct tokenizes, tags and reconstructs one sentence.
func (p *Pipeline) Correct(ctx context.Context, sentence string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	tokens := p.tokenizer.Tokenize(sentence)
	if len(tokens) == 0 {
		return "", nil
	}
	tags, scores, err := p.tagger.Tag(ctx, tokens)
	if err != nil {
		return "", fmt.Errorf("ubigkas: tag %q: %w", sentence, err)
	}
	out, err := p.engine.Correct(tokens, tags, scores)
	if err != nil {
		return "", fmt.Errorf("ubigkas: reconstruct %q: %w", sentence, err)
	}
	p.engine.logger.Debug("sentence corrected",
		zap.String("input", sentence),
		zap.String("output", out))
	return out, nil
}

// CorrectBatch corrects each sentence concurrently. Results keep the input
// order. The first failure cancels the remaining work and is returned
// with no results.
func (p *Pipeline) CorrectBatch(ctx context.Context, sentences []string) ([]string, error) {
	out := make([]string, len(sentences))
	g, gctx := errgroup.WithContext(ctx)
	if p.workers > 0 {
		g.SetLimit(p.workers)
	}
	for i, s := range sentences {
		g.Go(func() error {
			res, err := p.Correct(gctx, s)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
