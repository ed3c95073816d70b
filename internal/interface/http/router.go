package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanqian/insurance-quotes/internal/domain/quote"
	"github.com/yanqian/insurance-quotes/internal/infra/config"
	"github.com/yanqian/insurance-quotes/internal/infra/ratelimit"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, limiter ratelimit.Limiter) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	logger := handler.logger

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(logger),
	)

	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(cfg.HTTP.RateLimit, limiter, logger))
	{
		quotes := api.Group("/quotes")
		quotes.POST("/"+string(quote.ProductMedicareSupplement), quoteEndpoint[quote.MedicareSupplementRequest](handler))
		quotes.POST("/"+string(quote.ProductDental), quoteEndpoint[quote.DentalRequest](handler))
		quotes.POST("/"+string(quote.ProductHospitalIndemnity), quoteEndpoint[quote.HospitalIndemnityRequest](handler))
		quotes.POST("/"+string(quote.ProductFinalExpenseLife), quoteEndpoint[quote.FinalExpenseRequest](handler))
		quotes.POST("/"+string(quote.ProductMedicareAdvantage), quoteEndpoint[quote.MedicareAdvantageRequest](handler))
		quotes.POST("/"+string(quote.ProductCancer), handler.QuoteCancer)

		api.POST("/discovery", handler.Discover)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
