package cli

import (
	"fmt"
	"time"

	"github.com/custodia-labs/aroma-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/aroma-cli/internal/adapters/driven/fetcher/httpclient"
	"github.com/custodia-labs/aroma-cli/internal/adapters/driven/metrics/textfile"
	htmlparser "github.com/custodia-labs/aroma-cli/internal/adapters/driven/parser/html"
	"github.com/custodia-labs/aroma-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/aroma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aroma-cli/internal/core/services"
	"github.com/custodia-labs/aroma-cli/internal/logger"
)

// Configuration keys read by the CLI.
const (
	keyStrict            = "extract.strict"
	keyRequestsPerSecond = "fetch.requests_per_second"
	keyBurst             = "fetch.burst"
	keyMaxRetries        = "fetch.max_retries"
	keyTimeoutSeconds    = "fetch.timeout_seconds"
	keyUserAgent         = "fetch.user_agent"
	keyMetricsTextfile   = "metrics.textfile"
)

// buildServices wires the production adapters.
// Settings resolve as flag, then environment, then config file, then default.
func buildServices(opts Options) (*Services, error) {
	env, err := file.ParseEnv()
	if err != nil {
		return nil, err
	}

	cfgDir := firstNonEmpty(opts.ConfigDir, env.ConfigDir)
	configStore, err := file.NewConfigStore(cfgDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("config loaded", "path", configStore.Path())

	store, err := sqlite.NewStore(firstNonEmpty(opts.DataDir, env.DataDir))
	if err != nil {
		return nil, fmt.Errorf("opening profile store: %w", err)
	}
	logger.Debug("profile store opened", "path", store.Path())

	metrics := textfile.New(firstNonEmpty(env.MetricsTextfile, configStore.GetString(keyMetricsTextfile)))
	fetcher := httpclient.New(fetchConfig(configStore), metrics)
	names := services.NewNameService(configStore)

	profiles := services.NewProfileService(htmlparser.New(), fetcher, store, names, metrics)
	profiles.SetStrict(resolveStrict(opts.Strict, env.Strict, configStore))

	return &Services{
		Profile: profiles,
		Names:   names,
		Metrics: metrics,
		Close:   store.Close,
	}, nil
}

// fetchConfig overlays configured fetch settings on the defaults.
func fetchConfig(cfg driven.ConfigStore) httpclient.Config {
	c := httpclient.DefaultConfig()
	if _, ok := cfg.Get(keyRequestsPerSecond); ok {
		c.RequestsPerSecond = cfg.GetFloat(keyRequestsPerSecond)
	}
	if _, ok := cfg.Get(keyBurst); ok {
		c.Burst = cfg.GetInt(keyBurst)
	}
	if _, ok := cfg.Get(keyMaxRetries); ok {
		c.MaxRetries = cfg.GetInt(keyMaxRetries)
	}
	if secs := cfg.GetInt(keyTimeoutSeconds); secs > 0 {
		c.Timeout = time.Duration(secs) * time.Second
	}
	if ua := cfg.GetString(keyUserAgent); ua != "" {
		c.UserAgent = ua
	}
	return c
}

func resolveStrict(flag, env *bool, cfg driven.ConfigStore) bool {
	switch {
	case flag != nil:
		return *flag
	case env != nil:
		return *env
	default:
		return cfg.GetBool(keyStrict)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
