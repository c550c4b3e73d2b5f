package nlp

import (
	"context"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"

	"github.com/unsaidhq/lingo/pkg/models"
)

var _ models.Pipeline = &BasicPipeline{}

// BasicPipeline is the degraded fallback used when the engine-backed model
// cannot be loaded: in-process tokenization and POS tagging over a fixed
// English profile, with dictionary lemmas. It produces no sentence-boundary
// annotation and no dependency heads, so callers see the contract's
// whole-text sentence fallback and headless edges.
type BasicPipeline struct {
	lemmatizer *golem.Lemmatizer
}

func NewBasicPipeline() (*BasicPipeline, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &BasicPipeline{lemmatizer: lemmatizer}, nil
}

func (p *BasicPipeline) Name() string {
	return "basic"
}

func (p *BasicPipeline) Parse(_ context.Context, text string) (*models.ParsedDoc, error) {
	if text == "" {
		return &models.ParsedDoc{}, nil
	}

	// Entity extraction is the NER stage; disabled here as on the engine.
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	tokens := doc.Tokens()
	parsed := &models.ParsedDoc{
		Tokens: make([]models.ParsedToken, len(tokens)),
	}
	for i, token := range tokens {
		parsed.Tokens[i] = models.ParsedToken{
			Text:  token.Text,
			Lemma: p.lemmatizer.Lemma(token.Text),
			POS:   token.Tag,
		}
	}
	return parsed, nil
}
