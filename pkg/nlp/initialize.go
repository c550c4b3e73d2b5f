package nlp

import (
	"github.com/unsaidhq/lingo/config"
	"github.com/unsaidhq/lingo/internal"
	"github.com/unsaidhq/lingo/pkg/models"
)

var log = internal.GetLogger()

// Initialize loads the configured pretrained pipeline. If the engine cannot
// serve the model, the service degrades to the basic pipeline instead of
// failing startup; the load is not retried later and the variant never
// changes at runtime. The returned error only concerns the fallback itself.
func Initialize(cfg *config.Config) (models.Pipeline, error) {
	pipeline, err := NewEnginePipeline(cfg)
	if err == nil {
		log.Infof("Loaded model %s via engine at %s", cfg.NLP.Model, cfg.NLP.EngineURL)
		return pipeline, nil
	}

	log.Warnf(
		"unable to load model %s: %v; continuing with the basic pipeline",
		cfg.NLP.Model,
		err,
	)
	return NewBasicPipeline()
}
