package cmd

import (
	"fmt"
	"os"

	"github.com/unsaidhq/lingo/config"
	"github.com/unsaidhq/lingo/pkg/models"
	"github.com/unsaidhq/lingo/pkg/nlp"
	"github.com/unsaidhq/lingo/pkg/server"
)

// run is the entrypoint for the lingo server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring lingo: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting lingo server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// loads the NLP pipeline. The pipeline lives for the process lifetime; it
// is torn down with the process, with no explicit cleanup step.
func NewAppState(cfg *config.Config) *models.AppState {
	pipeline, err := nlp.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize NLP pipeline: %s", err)
	}
	log.Info("Using pipeline: ", pipeline.Name())

	return &models.AppState{
		Pipeline: pipeline,
		Config:   cfg,
	}
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		fmt.Printf("%+v\n", cfg)
		os.Exit(0)
	}
}
