package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/insurance-quotes/internal/domain/discovery"
	"github.com/yanqian/insurance-quotes/internal/domain/quote"
	"github.com/yanqian/insurance-quotes/internal/infra/config"
	"github.com/yanqian/insurance-quotes/internal/infra/ratelimit"
	"github.com/yanqian/insurance-quotes/internal/infra/ratingapi"
)

func provideQuoteConfig(cfg *config.Config) quote.Config {
	return quote.Config{
		MaxConcurrency:     cfg.Provider.MaxConcurrency,
		CancerCarrierName:  cfg.Cancer.CarrierName,
		UnavailableMessage: cfg.Quotes.UnavailableMessage,
	}
}

func provideDiscoveryConfig(cfg *config.Config) discovery.Config {
	return discovery.Config{
		HotLeadScore:  cfg.Discovery.HotLeadScore,
		WarmLeadScore: cfg.Discovery.WarmLeadScore,
	}
}

func provideRatingClient(cfg *config.Config) *ratingapi.Client {
	return ratingapi.NewClient(ratingapi.Config{
		BaseURL:    cfg.Provider.BaseURL,
		APIToken:   cfg.Provider.APIToken,
		AuthHeader: cfg.Provider.AuthHeader,
		Timeout:    cfg.Provider.Timeout,
	})
}

// provideRateLimiter prefers a shared Valkey window and falls back to an
// in-process limiter when Valkey is disabled or unreachable.
func provideRateLimiter(cfg *config.Config, logger *slog.Logger) (ratelimit.Limiter, func()) {
	rl := cfg.HTTP.RateLimit
	memory := ratelimit.NewMemoryLimiter(rl.RequestsPerMinute, rl.Burst)
	noop := func() {}
	if !rl.Enabled || !rl.Valkey.Enabled {
		return memory, noop
	}

	opt, err := buildValkeyOptions(rl.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory rate limiter", "error", err)
		return memory, noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory rate limiter", "error", err)
		return memory, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory rate limiter", "error", err)
		client.Close()
		return memory, noop
	}
	logger.Info("valkey rate limiter enabled", "addr", rl.Valkey.Addr)
	return ratelimit.NewValkeyLimiter(client, rl.Valkey.Prefix, rl.RequestsPerMinute), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
