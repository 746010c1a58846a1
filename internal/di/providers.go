package di

import (
	"fmt"

	domsvc "TradeLite/internal/domain/service"
	"TradeLite/internal/handler/api"
	authsvc "TradeLite/internal/service/auth"
	"TradeLite/internal/service/llm"
	"TradeLite/internal/service/metrics"
	"TradeLite/internal/service/ratelimit"
	"TradeLite/internal/services/feedback"
	"TradeLite/internal/services/market"
	"TradeLite/pkg/cache"
	"TradeLite/pkg/config"
	xhttp "TradeLite/pkg/http"
	applogger "TradeLite/pkg/logger"
	"TradeLite/pkg/server"
)

const (
	defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"
	defaultDeepSeekModel   = "deepseek-chat"
	defaultOpenAIBaseURL   = "https://api.openai.com/v1"
	defaultOpenAIModel     = "gpt-4o"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideCache selects and builds the cache backend from config.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemoryCache(), nil
	case "redis":
		return newRedisCache(cfg)
	case "layered":
		rc, err := newRedisCache(cfg)
		if err != nil {
			return nil, err
		}
		return cache.NewLayeredCache(rc), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

func newRedisCache(cfg *config.Config) (*cache.RedisCache, error) {
	return cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	)
}

// ProvideIdentity creates the Supabase identity client.
func ProvideIdentity(cfg *config.Config) domsvc.Identity {
	return authsvc.NewSupabaseClient(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.Timeout)
}

// ProvideTextCompleters builds the ordered feedback provider chain. Providers
// with no API key configured are omitted rather than wired to fail.
func ProvideTextCompleters(cfg *config.Config) []domsvc.TextCompleter {
	var providers []domsvc.TextCompleter

	if cfg.AI.DeepSeek.APIKey != "" {
		baseURL := cfg.AI.DeepSeek.BaseURL
		if baseURL == "" {
			baseURL = defaultDeepSeekBaseURL
		}
		model := cfg.AI.DeepSeek.Model
		if model == "" {
			model = defaultDeepSeekModel
		}
		providers = append(providers, llm.NewChatClient("deepseek", baseURL, cfg.AI.DeepSeek.APIKey, model, cfg.AI.TierTimeout))
	}

	if cfg.AI.OpenAI.APIKey != "" {
		baseURL := cfg.AI.OpenAI.BaseURL
		if baseURL == "" {
			baseURL = defaultOpenAIBaseURL
		}
		model := cfg.AI.OpenAI.Model
		if model == "" {
			model = defaultOpenAIModel
		}
		providers = append(providers, llm.NewChatClient("openai", baseURL, cfg.AI.OpenAI.APIKey, model, cfg.AI.TierTimeout))
	}

	return providers
}

// ProvideFeedbackGenerator creates the tiered feedback generator.
func ProvideFeedbackGenerator(cfg *config.Config, log *applogger.Logger, providers []domsvc.TextCompleter) *feedback.Generator {
	return feedback.NewGenerator(log, cfg.AI.TierTimeout, providers...)
}

// ProvideMarketGenerator creates a time-seeded market path generator.
func ProvideMarketGenerator() *market.Generator {
	return market.NewGenerator(nil)
}

// ProvideRateLimiter creates the shared token bucket limiter.
func ProvideRateLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideHandlers assembles the HTTP handlers in registration order.
func ProvideHandlers(
	log *applogger.Logger,
	identity domsvc.Identity,
	generator *market.Generator,
	fb *feedback.Generator,
	cacheSvc cache.Service,
	limiter *ratelimit.Limiter,
) []xhttp.Handler {
	return []xhttp.Handler{
		api.NewAuthEchoHandler(log, identity),
		api.NewSimulationsEchoHandler(log, generator, cacheSvc, limiter),
		api.NewAIEchoHandler(log, cacheSvc, fb, limiter),
	}
}

// ProvideApp creates the application server and registers metrics.
func ProvideApp(cfg *config.Config, log *applogger.Logger, cacheSvc cache.Service, handlers []xhttp.Handler) *server.App {
	if cfg.Metrics.Enabled {
		metrics.Register()
	}
	return server.New(cfg, log, cacheSvc, handlers)
}
