//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/insurance-quotes/internal/bootstrap"
	"github.com/yanqian/insurance-quotes/internal/domain/discovery"
	"github.com/yanqian/insurance-quotes/internal/domain/quote"
	"github.com/yanqian/insurance-quotes/internal/infra/config"
	"github.com/yanqian/insurance-quotes/internal/infra/ratingapi"
	httpiface "github.com/yanqian/insurance-quotes/internal/interface/http"
	"github.com/yanqian/insurance-quotes/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideQuoteConfig,
		provideDiscoveryConfig,
		provideRatingClient,
		provideRateLimiter,
		quote.NewService,
		discovery.NewService,
		wire.Bind(new(quote.ProviderClient), new(*ratingapi.Client)),
		wire.Bind(new(httpiface.ProviderStatus), new(*ratingapi.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
