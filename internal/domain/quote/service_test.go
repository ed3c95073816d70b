package quote

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/insurance-quotes/pkg/errors"
)

type stubProviderClient struct {
	mu       sync.Mutex
	calls    []url.Values
	products []Product
	records  map[string][]RawRecord
	failFor  map[string]bool
	err      error
}

func (s *stubProviderClient) FetchQuotes(_ context.Context, product Product, params url.Values) ([]RawRecord, error) {
	s.mu.Lock()
	s.calls = append(s.calls, params)
	s.products = append(s.products, product)
	s.mu.Unlock()

	key := params.Get("plan")
	if s.err != nil || s.failFor[key] {
		return nil, errors.Join(errors.New("provider unavailable"), s.err)
	}
	return s.records[key], nil
}

func newTestService(cfg Config, client ProviderClient) Service {
	return NewService(cfg, client, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func medSuppRequest(plans ...string) MedicareSupplementRequest {
	return MedicareSupplementRequest{Applicant: validApplicant(68), Plans: plans}
}

func TestQuoteDegradesWhenOnePlanFails(t *testing.T) {
	client := &stubProviderClient{
		records: map[string][]RawRecord{
			"G": {
				{"plan": "G", "monthly_premium": 140.0, "company_base": map[string]any{"name": "Aetna"}},
				{"plan": "G", "monthly_premium": 120.0, "company_base": map[string]any{"name": "Cigna"}},
			},
			"F": {
				{"plan": "F", "monthly_premium": 180.0, "company_base": map[string]any{"name": "Humana"}},
			},
		},
		failFor: map[string]bool{"N": true},
	}
	svc := newTestService(Config{MaxConcurrency: 3}, client)

	quotes, err := svc.Quote(context.Background(), medSuppRequest("G", "N", "F"))
	require.NoError(t, err)
	require.Len(t, client.calls, 3)
	require.Len(t, quotes, 3)
	require.Equal(t, []float64{120, 140, 180}, []float64{quotes[0].MonthlyPremium, quotes[1].MonthlyPremium, quotes[2].MonthlyPremium})
	require.Equal(t, "Cigna", quotes[0].Carrier.Name)
	require.Equal(t, "Plan F", quotes[2].PlanName)

	ids := map[string]bool{}
	for _, q := range quotes {
		require.False(t, ids[q.ID], "duplicate id %s", q.ID)
		ids[q.ID] = true
	}
}

func TestQuoteFailsWhenEveryCallFails(t *testing.T) {
	client := &stubProviderClient{err: errors.New("timeout")}
	svc := newTestService(Config{}, client)

	_, err := svc.Quote(context.Background(), medSuppRequest("G", "N"))
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInternal))
	require.Equal(t, defaultUnavailableMessage, apperrors.PublicMessage(err))
	require.Len(t, client.calls, 2)
}

func TestQuoteUsesConfiguredUnavailableMessage(t *testing.T) {
	client := &stubProviderClient{err: errors.New("boom")}
	svc := newTestService(Config{UnavailableMessage: "carriers are offline"}, client)

	_, err := svc.Quote(context.Background(), DentalRequest{Applicant: validApplicant(30)})
	require.Equal(t, "carriers are offline", apperrors.PublicMessage(err))
}

func TestQuoteRejectsInvalidRequestWithoutCallingProvider(t *testing.T) {
	client := &stubProviderClient{}
	svc := newTestService(Config{}, client)

	_, err := svc.Quote(context.Background(), DentalRequest{Applicant: Applicant{Zip: "75001"}})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidArgument))
	require.Empty(t, client.calls)

	_, err = svc.Quote(context.Background(), nil)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidArgument))
}

func TestQuoteEmptyProviderResponse(t *testing.T) {
	client := &stubProviderClient{}
	svc := newTestService(Config{}, client)

	quotes, err := svc.Quote(context.Background(), HospitalIndemnityRequest{Applicant: validApplicant(40)})
	require.NoError(t, err)
	require.NotNil(t, quotes)
	require.Empty(t, quotes)
	require.Equal(t, []Product{ProductHospitalIndemnity}, client.products)
}

func TestQuoteCancer(t *testing.T) {
	client := &stubProviderClient{}
	svc := newTestService(Config{CancerCarrierName: "Great Southern"}, client)

	quotes, err := svc.QuoteCancer(context.Background(), CancerRequest{
		State:         "tx",
		Age:           intPtr(70),
		FamilyType:    "Applicant and Spouse and Child(ren)",
		TobaccoStatus: "Tobacco",
		BenefitAmount: floatPtr(10000),
	})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	q := quotes[0]
	require.Equal(t, "cancer-0", q.ID)
	require.Equal(t, ProductCancer, q.Product)
	require.Equal(t, 57.92, q.MonthlyPremium)
	require.Equal(t, "Great Southern", q.Carrier.Name)
	require.Equal(t, "Cancer Benefit $10000", q.PlanName)
	require.Equal(t, "TX", q.Cancer.State)
	require.Empty(t, client.calls)
}

func TestQuoteCancerRejectsInvalidRequest(t *testing.T) {
	svc := newTestService(Config{}, &stubProviderClient{})
	_, err := svc.QuoteCancer(context.Background(), CancerRequest{State: "TX"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidArgument))
}
