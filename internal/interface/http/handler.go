package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/insurance-quotes/internal/domain/discovery"
	"github.com/yanqian/insurance-quotes/internal/domain/quote"
	apperrors "github.com/yanqian/insurance-quotes/pkg/errors"
)

// ProviderStatus reports whether outbound quoting is usable.
type ProviderStatus interface {
	Configured() bool
}

// Handler wires the HTTP transport to domain services.
type Handler struct {
	quoteSvc     quote.Service
	discoverySvc discovery.Service
	provider     ProviderStatus
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(quoteSvc quote.Service, discoverySvc discovery.Service, provider ProviderStatus, logger *slog.Logger) *Handler {
	return &Handler{
		quoteSvc:     quoteSvc,
		discoverySvc: discoverySvc,
		provider:     provider,
		logger:       logger.With("component", "http.handler"),
	}
}

// quoteEndpoint binds one product's request shape and runs the quote pipeline.
func quoteEndpoint[R quote.Request](h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req R
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, invalidBody(err))
			return
		}

		quotes, err := h.quoteSvc.Quote(c.Request.Context(), req)
		if err != nil {
			abortWithError(c, fromAppError(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"quotes": quotes})
	}
}

// QuoteCancer prices cancer coverage locally.
func (h *Handler) QuoteCancer(c *gin.Context) {
	var req quote.CancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidBody(err))
		return
	}

	quotes, err := h.quoteSvc.QuoteCancer(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

// Discover classifies a questionnaire and returns recommendations and a lead score.
func (h *Handler) Discover(c *gin.Context) {
	var answers discovery.Answers
	if err := c.ShouldBindJSON(&answers); err != nil {
		abortWithError(c, invalidBody(err))
		return
	}

	result, err := h.discoverySvc.Evaluate(c.Request.Context(), answers)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// Health reports liveness and whether the provider token is set.
func (h *Handler) Health(c *gin.Context) {
	configured := h.provider != nil && h.provider.Configured()
	c.JSON(http.StatusOK, gin.H{
		"status":             "ok",
		"providerConfigured": configured,
	})
}

func invalidBody(err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidArgument, "invalid request body: "+errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
