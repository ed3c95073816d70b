package quote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/yanqian/insurance-quotes/pkg/errors"
	"github.com/yanqian/insurance-quotes/pkg/metrics"
)

const defaultUnavailableMessage = "unable to fetch quotes right now, please try again later"

// Service exposes quote capabilities for every product line.
type Service interface {
	Quote(ctx context.Context, req Request) ([]Quote, error)
	QuoteCancer(ctx context.Context, req CancerRequest) ([]Quote, error)
}

// ProviderClient fetches raw quote records from the rating provider.
type ProviderClient interface {
	FetchQuotes(ctx context.Context, product Product, params url.Values) ([]RawRecord, error)
}

type service struct {
	cfg    Config
	client ProviderClient
	logger *slog.Logger
}

// NewService wires up the quote domain.
func NewService(cfg Config, client ProviderClient, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "quote.service"),
	}
}

// Result is the outcome of one provider call in a fan-out.
type Result struct {
	Query   ProviderQuery
	Records []RawRecord
	Err     error
}

func (s *service) Quote(ctx context.Context, req Request) ([]Quote, error) {
	if req == nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid quote request", errors.New("request is required"))
	}
	product := req.Product()
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid quote request", err)
	}

	queries := req.Queries()
	if len(queries) == 0 {
		return nil, apperrors.Wrap(apperrors.CodeInternal, s.unavailableMessage(), fmt.Errorf("%s request produced no provider queries", product))
	}

	results := s.fetchAll(ctx, queries)
	records, failed := s.collect(product, results)
	if failed == len(results) {
		return nil, apperrors.Wrap(apperrors.CodeInternal, s.unavailableMessage(), joinErrors(results))
	}
	if failed > 0 {
		metrics.PartialBatches.WithLabelValues(string(product)).Inc()
	}

	ranked := Rank(Transform(product, records))
	metrics.QuotesReturned.WithLabelValues(string(product)).Add(float64(len(ranked)))
	s.logger.Info("quotes fetched", "product", product, "calls", len(results), "failed_calls", failed, "quotes", len(ranked))
	return ranked, nil
}

func (s *service) QuoteCancer(_ context.Context, req CancerRequest) ([]Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid quote request", err)
	}
	state := strings.ToUpper(strings.TrimSpace(req.State))
	premium := CancerPremium(state, *req.Age, req.FamilyType, req.TobaccoStatus, *req.BenefitAmount)
	carrier := defaultString(strings.TrimSpace(s.cfg.CancerCarrierName), UnknownCarrier)

	q := Quote{
		ID:             fmt.Sprintf("%s-0", ProductCancer),
		Product:        ProductCancer,
		Carrier:        Carrier{Name: carrier, FullName: carrier},
		PlanName:       fmt.Sprintf("Cancer Benefit $%s", formatAmount(*req.BenefitAmount)),
		MonthlyPremium: premium,
		Cancer: &CancerDetails{
			BenefitAmount: *req.BenefitAmount,
			FamilyType:    req.FamilyType,
			TobaccoStatus: req.TobaccoStatus,
			State:         state,
		},
	}
	metrics.QuotesReturned.WithLabelValues(string(ProductCancer)).Inc()
	s.logger.Info("cancer premium computed", "state", state, "age", *req.Age, "premium", premium)
	return []Quote{q}, nil
}

// fetchAll runs every provider query, at most MaxConcurrency at a time. A
// failing call is recorded in its Result and never cancels its siblings.
func (s *service) fetchAll(ctx context.Context, queries []ProviderQuery) []Result {
	results := make([]Result, len(queries))
	var g errgroup.Group
	g.SetLimit(s.concurrency())
	for i, q := range queries {
		g.Go(func() error {
			records, err := s.client.FetchQuotes(ctx, q.Product, q.Params)
			results[i] = Result{Query: q, Records: records, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// collect flattens successful calls in query order and counts failures.
func (s *service) collect(product Product, results []Result) ([]RawRecord, int) {
	var (
		records []RawRecord
		failed  int
	)
	for _, res := range results {
		if res.Err != nil {
			failed++
			s.logger.Warn("provider call failed", "product", product, "label", res.Query.Label, "error", res.Err)
			continue
		}
		records = append(records, res.Records...)
	}
	return records, failed
}

func (s *service) concurrency() int {
	if s.cfg.MaxConcurrency <= 0 {
		return 1
	}
	return s.cfg.MaxConcurrency
}

func (s *service) unavailableMessage() string {
	return defaultString(strings.TrimSpace(s.cfg.UnavailableMessage), defaultUnavailableMessage)
}

func joinErrors(results []Result) error {
	errs := make([]error, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}
