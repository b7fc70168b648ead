package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names for the remote inference endpoint.
const (
	EnvEndpoint   = "HF_INFERENCE_ENDPOINT"
	EnvToken      = "HF_TOKEN"
	EnvGeminiKeys = "GEMINI_API_KEYS"
)

// Endpoint holds the remote inference endpoint settings. It is built once
// at startup and passed by reference into the transcription client; nothing
// reads the environment at request time.
type Endpoint struct {
	URL   string
	Token string
}

// LoadEnv loads an optional .env file into the process environment.
// A missing file is fine; explicit environment variables always win.
func LoadEnv() {
	_ = godotenv.Load()
}

// NewEndpoint builds the endpoint settings from the environment.
func NewEndpoint() (*Endpoint, error) {
	url := strings.TrimSpace(os.Getenv(EnvEndpoint))
	if url == "" {
		return nil, fmt.Errorf("%s is not set", EnvEndpoint)
	}

	token := strings.TrimSpace(os.Getenv(EnvToken))
	if token == "" {
		return nil, fmt.Errorf("%s is not set", EnvToken)
	}

	return &Endpoint{URL: url, Token: token}, nil
}

// GeminiKeys returns the configured Gemini API keys, if any.
func GeminiKeys() []string {
	raw := os.Getenv(EnvGeminiKeys)
	if raw == "" {
		return nil
	}

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
