package models

// AnnotateRequest is the body of the annotate endpoint. The want flags are
// pointers so that a missing field defaults to true; use the accessor
// methods rather than reading the fields directly.
type AnnotateRequest struct {
	Text       string `json:"text"`
	WantTokens *bool  `json:"wantTokens"`
	WantSents  *bool  `json:"wantSents"`
	WantDeps   *bool  `json:"wantDeps"`
}

func (r *AnnotateRequest) TokensWanted() bool {
	return r.WantTokens == nil || *r.WantTokens
}

func (r *AnnotateRequest) SentsWanted() bool {
	return r.WantSents == nil || *r.WantSents
}

func (r *AnnotateRequest) DepsWanted() bool {
	return r.WantDeps == nil || *r.WantDeps
}

// TokenRecord is one token of the annotate response. Lemma is always
// lowercase and POS always uppercase; when the pipeline supplies neither,
// they fall back to the token text and the literal tag "X".
type TokenRecord struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`
	I     int    `json:"i"`
}

// SentenceSpan is a half-open range of rune offsets into the original text.
type SentenceSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// DependencyEdge records a token's syntactic head and relation label.
// Head is null when the token has no governing head.
type DependencyEdge struct {
	I    int    `json:"i"`
	Head *int   `json:"head"`
	Dep  string `json:"dep"`
}

// SarcasmSignal, ContextSignal, and PhraseEdgeSet are stable contract
// fields reserved for downstream scoring stages. They always carry the
// constant values below; nothing in this service computes them.
type SarcasmSignal struct {
	Present bool    `json:"present"`
	Score   float64 `json:"score"`
}

type ContextSignal struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type PhraseEdgeSet struct {
	Hits []string `json:"hits"`
}

// AnnotateResponse is the full annotate response. The three sequences are
// always present and empty (never null) when not requested.
type AnnotateResponse struct {
	Tokens      []TokenRecord    `json:"tokens"`
	Sents       []SentenceSpan   `json:"sents"`
	Deps        []DependencyEdge `json:"deps"`
	Sarcasm     SarcasmSignal    `json:"sarcasm"`
	Context     ContextSignal    `json:"context"`
	PhraseEdges PhraseEdgeSet    `json:"phraseEdges"`
}

// NewAnnotateResponse returns a response with empty sequences and the fixed
// placeholder values attached.
func NewAnnotateResponse() *AnnotateResponse {
	return &AnnotateResponse{
		Tokens:      []TokenRecord{},
		Sents:       []SentenceSpan{},
		Deps:        []DependencyEdge{},
		Sarcasm:     SarcasmSignal{Present: false, Score: 0.0},
		Context:     ContextSignal{Label: "general", Score: 0.1},
		PhraseEdges: PhraseEdgeSet{Hits: []string{}},
	}
}
