package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/yanqian/insurance-quotes/internal/domain/quote"
	"github.com/yanqian/insurance-quotes/internal/infra/ratingapi"
)

var quoteCmd = &cobra.Command{
	Use:   "quote <product>",
	Short: "Fetch ranked quotes from the rating provider",
	Long: `Reads a quote request as JSON, calls the rating provider and prints the
normalized quotes cheapest first. Requires PROVIDER_API_TOKEN.

Products: medicare-supplement, dental, hospital-indemnity, final-expense-life,
medicare-advantage, cancer.

Example:
  quotectl quote medicare-supplement -f medsupp.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringP("file", "f", "", "path to request JSON, or - for stdin")
}

// newRequest returns an empty request value for product.
func newRequest(product quote.Product) (any, error) {
	switch product {
	case quote.ProductMedicareSupplement:
		return &quote.MedicareSupplementRequest{}, nil
	case quote.ProductDental:
		return &quote.DentalRequest{}, nil
	case quote.ProductHospitalIndemnity:
		return &quote.HospitalIndemnityRequest{}, nil
	case quote.ProductFinalExpenseLife:
		return &quote.FinalExpenseRequest{}, nil
	case quote.ProductMedicareAdvantage:
		return &quote.MedicareAdvantageRequest{}, nil
	case quote.ProductCancer:
		return &quote.CancerRequest{}, nil
	default:
		return nil, fmt.Errorf("unknown product %q", product)
	}
}

func runQuote(cmd *cobra.Command, args []string) error {
	product := quote.Product(strings.ToLower(strings.TrimSpace(args[0])))
	req, err := newRequest(product)
	if err != nil {
		return err
	}
	path, err := requireFileFlag(cmd)
	if err != nil {
		return err
	}
	if err := readJSONFile(cmd, path, req); err != nil {
		return err
	}

	client := ratingapi.NewClient(ratingapi.Config{
		BaseURL:    cfg.Provider.BaseURL,
		APIToken:   cfg.Provider.APIToken,
		AuthHeader: cfg.Provider.AuthHeader,
		Timeout:    cfg.Provider.Timeout,
	})
	svc := quote.NewService(quoteConfig(), client, log)

	var quotes []quote.Quote
	switch r := req.(type) {
	case *quote.CancerRequest:
		quotes, err = svc.QuoteCancer(cmd.Context(), *r)
	case *quote.MedicareSupplementRequest:
		quotes, err = svc.Quote(cmd.Context(), *r)
	case *quote.DentalRequest:
		quotes, err = svc.Quote(cmd.Context(), *r)
	case *quote.HospitalIndemnityRequest:
		quotes, err = svc.Quote(cmd.Context(), *r)
	case *quote.FinalExpenseRequest:
		quotes, err = svc.Quote(cmd.Context(), *r)
	case *quote.MedicareAdvantageRequest:
		quotes, err = svc.Quote(cmd.Context(), *r)
	}
	if err != nil {
		return eris.Wrapf(err, "quote %s", product)
	}
	return printJSON(cmd.OutOrStdout(), quotes)
}
