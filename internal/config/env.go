package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables resolved at startup.
const (
	EnvBaseURL = "OLLAMA_BASE_URL"
	EnvModel   = "OLLAMA_MODEL"
)

// Settings is the fully resolved startup configuration: where the server
// is and which model to talk to. Both fields are guaranteed non-empty.
type Settings struct {
	BaseURL string
	Model   string
}

// Resolve produces the startup settings from, in order of precedence,
// explicit flag values, the process environment (with a best-effort .env
// load), and the config file. A missing base URL or model after all
// three sources is a fatal configuration error, not something deferred
// to request time.
func Resolve(flagBaseURL, flagModel string, fileCfg Config) (Settings, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	settings := Settings{
		BaseURL: firstNonEmpty(flagBaseURL, os.Getenv(EnvBaseURL), fileCfg.DefaultBaseURL),
		Model:   firstNonEmpty(flagModel, os.Getenv(EnvModel), fileCfg.DefaultModel),
	}

	if settings.BaseURL == "" {
		return Settings{}, fmt.Errorf("no server address configured: set %s or pass --base-url", EnvBaseURL)
	}
	if settings.Model == "" {
		return Settings{}, fmt.Errorf("no model configured: set %s or pass --model", EnvModel)
	}

	return settings, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
