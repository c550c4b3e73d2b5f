package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/unsaidhq/lingo/config"
	"github.com/unsaidhq/lingo/pkg/models"
)

// Force compiler to validate that the pipeline implements the Pipeline interface.
var _ models.Pipeline = &EnginePipeline{}

const engineTimeout = 60 * time.Second

// disabledStages are pipeline stages the engine is asked to skip. NER output
// is never used downstream, so it is disabled for efficiency.
var disabledStages = []string{"ner"}

// EnginePipeline is the full pipeline: a client for the pretrained model
// server. The model is loaded on the engine side during NewEnginePipeline's
// warm-up call and never reloaded afterwards.
type EnginePipeline struct {
	client  *http.Client
	baseURL string
	model   string
}

// NewEnginePipeline creates the engine-backed pipeline and verifies that the
// engine is up and can serve the configured model. Any failure here means
// the model could not be loaded and the caller should degrade.
func NewEnginePipeline(cfg *config.Config) (*EnginePipeline, error) {
	p := &EnginePipeline{
		client:  &http.Client{Timeout: engineTimeout},
		baseURL: cfg.NLP.EngineURL,
		model:   cfg.NLP.Model,
	}

	if err := p.ping(); err != nil {
		return nil, err
	}
	// Warm-up parse forces the engine to load the model now rather than on
	// the first request.
	if _, err := p.Parse(context.Background(), ""); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *EnginePipeline) Name() string {
	return "engine"
}

// Parse posts the text to the engine and maps its records onto a ParsedDoc.
func (p *EnginePipeline) Parse(ctx context.Context, text string) (*models.ParsedDoc, error) {
	reqBody := engineParseRequest{
		Text:    text,
		Model:   p.model,
		Disable: disabledStages,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.baseURL+"/parse",
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("engine parse returned status %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parseResponse engineParseResponse
	if err := json.Unmarshal(bodyBytes, &parseResponse); err != nil {
		return nil, err
	}

	return parseResponse.toParsedDoc(), nil
}

// ping checks the engine's health endpoint.
func (p *EnginePipeline) ping() error {
	resp, err := p.client.Get(p.baseURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("engine health returned status %d", resp.StatusCode)
	}
	return nil
}

type engineParseRequest struct {
	Text    string   `json:"text"`
	Model   string   `json:"model"`
	Disable []string `json:"disable,omitempty"`
}

type engineToken struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`
	Dep   string `json:"dep"`
	Head  *int   `json:"head"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type engineSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type engineParseResponse struct {
	Tokens   []engineToken `json:"tokens"`
	Sents    []engineSpan  `json:"sents"`
	HasSents bool          `json:"has_sents"`
}

func (r *engineParseResponse) toParsedDoc() *models.ParsedDoc {
	doc := &models.ParsedDoc{
		Tokens:   make([]models.ParsedToken, len(r.Tokens)),
		Sents:    make([]models.SentenceSpan, len(r.Sents)),
		HasSents: r.HasSents,
	}
	for i, t := range r.Tokens {
		doc.Tokens[i] = models.ParsedToken{
			Text:  t.Text,
			Lemma: t.Lemma,
			POS:   t.POS,
			Dep:   t.Dep,
			Head:  t.Head,
			Start: t.Start,
			End:   t.End,
		}
	}
	for i, s := range r.Sents {
		doc.Sents[i] = models.SentenceSpan{Start: s.Start, End: s.End}
	}
	return doc
}
