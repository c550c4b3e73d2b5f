package server

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/unsaidhq/lingo/internal"
	"github.com/unsaidhq/lingo/pkg/models"
)

var log = internal.GetLogger()

// HealthResponse reports liveness and the configured model identifier.
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}

// GetHealthHandler godoc
//
//	@Summary		Liveness check
//	@Description	reports ok and the configured model identifier
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func GetHealthHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := HealthResponse{
			Status: "ok",
			Model:  appState.Config.NLP.Model,
		}
		if err := encodeJSON(w, health); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// PostAnnotateHandler godoc
//
//	@Summary		Annotates text with tokens, sentence spans, and dependency edges
//	@Description	runs text through the NLP pipeline and reshapes its output
//	@Tags			annotate
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.AnnotateRequest	true	"Text and section flags"
//	@Success		200		{object}	models.AnnotateResponse
//	@Failure		400		{object}	APIError	"Bad Request"
//	@Failure		401		{object}	APIError	"Unauthorized"
//	@Failure		500		{object}	APIError	"Internal Server Error"
//	@Router			/process [post]
func PostAnnotateHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.AnnotateRequest
		if err := decodeJSON(r, &request); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		doc, err := appState.Pipeline.Parse(r.Context(), request.Text)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := encodeJSON(w, newAnnotateResponse(&request, doc)); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// newAnnotateResponse reshapes one parsed document into the response
// contract. The document comes from exactly one Parse of the request text.
func newAnnotateResponse(
	request *models.AnnotateRequest,
	doc *models.ParsedDoc,
) *models.AnnotateResponse {
	response := models.NewAnnotateResponse()

	if request.TokensWanted() {
		for i, token := range doc.Tokens {
			response.Tokens = append(response.Tokens, models.TokenRecord{
				Text:  token.Text,
				Lemma: lemmaOrText(token),
				POS:   posOrX(token),
				I:     i,
			})
		}
	}

	if request.SentsWanted() {
		if doc.HasSents {
			response.Sents = append(response.Sents, doc.Sents...)
		} else {
			// No sentence annotation: a single span covering the whole
			// input keeps the contract satisfiable in degraded mode.
			response.Sents = append(response.Sents, models.SentenceSpan{
				Start: 0,
				End:   utf8.RuneCountInString(request.Text),
			})
		}
	}

	if request.DepsWanted() {
		for i, token := range doc.Tokens {
			response.Deps = append(response.Deps, models.DependencyEdge{
				I:    i,
				Head: token.Head,
				Dep:  token.Dep,
			})
		}
	}

	return response
}

func lemmaOrText(token models.ParsedToken) string {
	if token.Lemma != "" {
		return strings.ToLower(token.Lemma)
	}
	return strings.ToLower(token.Text)
}

func posOrX(token models.ParsedToken) string {
	if token.POS != "" {
		return strings.ToUpper(token.POS)
	}
	return "X"
}
