package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	NLP    NLPConfig    `mapstructure:"nlp"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Auth   AuthConfig   `mapstructure:"auth"`
}

// NLPConfig selects the pretrained pipeline loaded at startup.
type NLPConfig struct {
	// Model is the pretrained model identifier requested from the engine
	// and reported verbatim by the health endpoint.
	Model string `mapstructure:"model"     validate:"required"`
	// EngineURL is the base URL of the model server the full pipeline
	// delegates to.
	EngineURL string `mapstructure:"engine_url" validate:"required,url"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"gt=0,lte=65535"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// AuthConfig holds the shared secret for the annotate endpoint. An empty
// secret disables authorization entirely.
type AuthConfig struct {
	Secret string `mapstructure:"secret"`
}
