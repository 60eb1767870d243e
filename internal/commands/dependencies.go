package commands

import (
	"time"

	"github.com/diogo/ollamaterm/internal/api"
	"github.com/diogo/ollamaterm/internal/config"
)

// newClientFunc builds the API client for a command run.
// Tests swap this out for a MockClient.
var newClientFunc = func(settings config.Settings, timeoutSeconds int) (api.ClientInterface, error) {
	var opts []api.ClientOption
	if timeoutSeconds > 0 {
		opts = append(opts, api.WithTimeout(time.Duration(timeoutSeconds)*time.Second))
	}
	return api.NewClient(settings.BaseURL, settings.Model, opts...)
}

// resolveClient loads the file config, resolves the startup settings from
// flags, environment and file, and constructs a client. Configuration
// problems surface here, before any command logic runs.
func resolveClient() (api.ClientInterface, config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, cfg, err
	}

	settings, err := config.Resolve(baseURLFlag, modelFlag, cfg)
	if err != nil {
		return nil, cfg, err
	}

	client, err := newClientFunc(settings, cfg.TimeoutSeconds)
	if err != nil {
		return nil, cfg, err
	}
	return client, cfg, nil
}
