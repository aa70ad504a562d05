package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/idcheck/pkg/clientip"
	"github.com/dmitrymomot/idcheck/pkg/config"
	"github.com/dmitrymomot/idcheck/pkg/httpapi"
	"github.com/dmitrymomot/idcheck/pkg/httpserver"
	"github.com/dmitrymomot/idcheck/pkg/i18n"
	"github.com/dmitrymomot/idcheck/pkg/logger"
	"github.com/dmitrymomot/idcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/idcheck/pkg/ruleset"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"idcheck"`
	LogLevel    string `env:"LOG_LEVEL"`
	// RulesetPath points to a YAML rule set; the embedded default set is used when empty.
	RulesetPath string `env:"RULESET_PATH"`
	MaxBodySize int64  `env:"HTTP_MAX_BODY_SIZE" envDefault:"1048576"`
	// TranslationsDir holds extra YAML catalogues layered over the built-in ones.
	TranslationsDir string `env:"I18N_DIR"`
	DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
	// TrustedProxyHeaders carry the client address; empty means the built-in list.
	TrustedProxyHeaders []string `env:"TRUSTED_PROXY_HEADERS" envSeparator:","`

	HTTP      httpserver.Config
	RateLimit rateLimitConfig
}

type rateLimitConfig struct {
	// Capacity is the burst per client address. Zero disables rate limiting.
	Capacity int           `env:"RATE_LIMIT_CAPACITY" envDefault:"0"`
	Refill   int           `env:"RATE_LIMIT_REFILL" envDefault:"1"`
	Interval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"1s"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(httpapi.RequestIDExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("idcheck stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	rules, err := loadRules(cfg.RulesetPath)
	if err != nil {
		return err
	}
	log.Info("rule set loaded",
		slog.String("path", cfg.RulesetPath),
		slog.Int("rules", len(rules.Names())),
	)

	trOpts := []i18n.Option{
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
	}
	if cfg.TranslationsDir != "" {
		trOpts = append(trOpts, i18n.WithFS(os.DirFS(cfg.TranslationsDir), "."))
	}
	translator, err := i18n.New(trOpts...)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	apiOpts := []httpapi.Option{
		httpapi.WithLogger(log.With(logger.Component("httpapi"))),
		httpapi.WithMaxBodySize(cfg.MaxBodySize),
		httpapi.WithTranslator(translator),
		httpapi.WithClientIPHeaders(cfg.TrustedProxyHeaders...),
	}
	srvOpts := []httpserver.Option{httpserver.WithLogger(log)}

	if cfg.RateLimit.Capacity > 0 {
		store := ratelimiter.NewMemoryStore()
		bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
			Capacity:       cfg.RateLimit.Capacity,
			RefillRate:     cfg.RateLimit.Refill,
			RefillInterval: cfg.RateLimit.Interval,
		})
		if err != nil {
			store.Close()
			return fmt.Errorf("rate limiter: %w", err)
		}
		apiOpts = append(apiOpts, httpapi.WithRateLimit(bucket))
		srvOpts = append(srvOpts, httpserver.WithStopHook(store.Close))
		log.Info("rate limiting enabled",
			slog.Int("capacity", cfg.RateLimit.Capacity),
			slog.Int("refill", cfg.RateLimit.Refill),
			slog.Duration("interval", cfg.RateLimit.Interval),
		)
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, srvOpts...)
	return srv.Run(ctx, httpapi.New(rules, apiOpts...))
}

func loadRules(path string) (*ruleset.Set, error) {
	if path == "" {
		return ruleset.Default(), nil
	}
	rules, err := ruleset.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rule set %s: %w", path, err)
	}
	return rules, nil
}
