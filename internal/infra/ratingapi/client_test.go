package ratingapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/insurance-quotes/internal/domain/quote"
	"github.com/yanqian/insurance-quotes/internal/infra/config"
)

func TestFetchQuotes(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
		wantLen int
	}{
		{name: "bare array", status: http.StatusOK, body: `[{"key":"a"},{"key":"b"},"junk",3]`, wantLen: 2},
		{name: "quotes envelope", status: http.StatusOK, body: `{"quotes":[{"key":"a"}],"meta":{}}`, wantLen: 1},
		{name: "results envelope", status: http.StatusOK, body: `{"results":[{"key":"a"},{"key":"b"}]}`, wantLen: 2},
		{name: "data before plans", status: http.StatusOK, body: `{"plans":[{"key":"a"}],"data":[{"key":"b"},{"key":"c"}]}`, wantLen: 2},
		{name: "single object", status: http.StatusOK, body: `{"key":"only"}`, wantLen: 1},
		{name: "empty list", status: http.StatusOK, body: `[]`, wantLen: 0},
		{name: "null body", status: http.StatusOK, body: `null`, wantLen: 0},
		{name: "scalar body", status: http.StatusOK, body: `"nope"`, wantErr: true},
		{name: "malformed json", status: http.StatusOK, body: `{invalid`, wantErr: true},
		{name: "server error", status: http.StatusBadGateway, body: `upstream down`, wantErr: true},
		{name: "error object with status 200", status: http.StatusOK, body: `{"message":"Invalid API token"}`, wantErr: true},
		{name: "null list key", status: http.StatusOK, body: `{"quotes":null,"error":"rate limited"}`, wantErr: true},
		{name: "list key holding object", status: http.StatusOK, body: `{"results":{"key":"a"}}`, wantErr: true},
		{name: "single priced object", status: http.StatusOK, body: `{"monthly_premium":42.5,"carrier_name":"Acme"}`, wantLen: 1},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"bad token"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/dental/quotes.json", r.URL.Path)
				assert.Equal(t, "secret", r.Header.Get("x-api-token"))
				assert.Equal(t, "75001", r.URL.Query().Get("zip5"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(Config{APIToken: "secret"}, WithBaseURL(srv.URL))
			records, err := client.FetchQuotes(context.Background(), quote.ProductDental, url.Values{"zip5": {"75001"}})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, eris.Is(err, ErrUnavailable))
				assert.Nil(t, records)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, records)
			assert.Len(t, records, tt.wantLen)
		})
	}
}

func TestFetchQuotesProductPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIToken: "secret"}, WithBaseURL(srv.URL+"/"))
	for _, p := range []quote.Product{
		quote.ProductMedicareSupplement, quote.ProductDental, quote.ProductHospitalIndemnity,
		quote.ProductFinalExpenseLife, quote.ProductMedicareAdvantage,
	} {
		_, err := client.FetchQuotes(context.Background(), p, nil)
		require.NoError(t, err)
	}
	require.Equal(t, []string{
		"/med_supp/quotes.json",
		"/dental/quotes.json",
		"/hospital_indemnity/quotes.json",
		"/final_expense_life/quotes.json",
		"/medicare_advantage/quotes.json",
	}, paths)

	_, err := client.FetchQuotes(context.Background(), quote.ProductCancer, nil)
	require.Error(t, err)
}

func TestFetchQuotesBearerHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIToken: "secret", AuthHeader: "Authorization"}, WithBaseURL(srv.URL))
	_, err := client.FetchQuotes(context.Background(), quote.ProductDental, nil)
	require.NoError(t, err)
}

func TestFetchQuotesUnconfigured(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	for _, token := range []string{"", "  ", config.PlaceholderProviderToken} {
		client := NewClient(Config{APIToken: token}, WithBaseURL(srv.URL))
		require.False(t, client.Configured())
		_, err := client.FetchQuotes(context.Background(), quote.ProductDental, nil)
		require.Error(t, err)
		require.True(t, eris.Is(err, ErrUnconfigured))
	}
	require.False(t, called)
}

func TestFetchQuotesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(Config{APIToken: "secret"}, WithBaseURL(srv.URL))
	_, err := client.FetchQuotes(context.Background(), quote.ProductDental, nil)
	require.Error(t, err)
	require.True(t, eris.Is(err, ErrUnavailable))
}

func TestConfiguredMatchesProviderConfig(t *testing.T) {
	for _, token := range []string{"", " ", config.PlaceholderProviderToken, " " + config.PlaceholderProviderToken + " ", "real-token"} {
		cfg := config.ProviderConfig{APIToken: token}
		client := NewClient(Config{APIToken: token})
		require.Equal(t, cfg.Configured(), client.Configured(), "token %q", token)
	}
}
