package models

import (
	"github.com/unsaidhq/lingo/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Pipeline Pipeline
	Config   *config.Config
}
