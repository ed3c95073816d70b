package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/yanqian/insurance-quotes/internal/domain/quote"
)

var cancerCmd = &cobra.Command{
	Use:   "cancer",
	Short: "Price cancer coverage locally",
	Long: `Computes the flat-rate cancer premium without calling the rating provider.

Example:
  quotectl cancer --state TX --age 70 --family "Applicant and Spouse" --tobacco Tobacco --benefit 10000`,
	RunE: runCancer,
}

func init() {
	f := cancerCmd.Flags()
	f.String("state", "", "two letter state code")
	f.Int("age", 0, "applicant age")
	f.String("family", "Applicant", "family type, e.g. \"Applicant and Spouse\"")
	f.String("tobacco", "Non-Tobacco", "tobacco status: Tobacco or Non-Tobacco")
	f.Float64("benefit", 0, "benefit amount in dollars")
}

func runCancer(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	state, _ := f.GetString("state")
	age, _ := f.GetInt("age")
	family, _ := f.GetString("family")
	tobacco, _ := f.GetString("tobacco")
	benefit, _ := f.GetFloat64("benefit")

	req := quote.CancerRequest{
		State:         state,
		FamilyType:    family,
		TobaccoStatus: tobacco,
	}
	if f.Changed("age") {
		req.Age = &age
	}
	if f.Changed("benefit") {
		req.BenefitAmount = &benefit
	}

	svc := quote.NewService(quoteConfig(), nil, log)
	quotes, err := svc.QuoteCancer(cmd.Context(), req)
	if err != nil {
		return eris.Wrap(err, "cancer")
	}
	return printJSON(cmd.OutOrStdout(), quotes)
}

func quoteConfig() quote.Config {
	return quote.Config{
		MaxConcurrency:     cfg.Provider.MaxConcurrency,
		CancerCarrierName:  cfg.Cancer.CarrierName,
		UnavailableMessage: cfg.Quotes.UnavailableMessage,
	}
}
