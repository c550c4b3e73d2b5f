package models

import "context"

// Pipeline is the capability interface over the NLP pipeline loaded at
// startup. Exactly one implementation is selected per process: the full
// engine-backed pipeline, or the degraded in-process fallback. The instance
// is read-only after initialization and shared by all in-flight requests.
type Pipeline interface {
	// Parse runs text through the pipeline and returns the parsed document.
	Parse(ctx context.Context, text string) (*ParsedDoc, error)
	// Name identifies the pipeline variant, for logging only.
	Name() string
}

// ParsedToken is a single token with its linguistic annotations. Fields the
// pipeline cannot supply are left zero-valued; the response layer applies
// the contract fallbacks.
type ParsedToken struct {
	Text  string
	Lemma string
	POS   string
	Dep   string
	// Head is the index of the governing token, nil when the token has no
	// governing head (or the pipeline carries no parse).
	Head *int
	// Start and End are rune offsets into the original text.
	Start int
	End   int
}

// ParsedDoc is the pipeline's view of one parsed text.
type ParsedDoc struct {
	Tokens []ParsedToken
	Sents  []SentenceSpan
	// HasSents reports whether the document carries sentence-boundary
	// annotation. The degraded pipeline does not.
	HasSents bool
}
