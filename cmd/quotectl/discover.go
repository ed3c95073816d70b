package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/yanqian/insurance-quotes/internal/domain/discovery"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Classify a discovery questionnaire and score the lead",
	Long: `Reads discovery answers as JSON and prints the scenario, recommendations,
lead score and lead tier.

Examples:
  quotectl discover -f answers.json
  cat answers.json | quotectl discover -f -`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().StringP("file", "f", "", "path to answers JSON, or - for stdin")
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	path, err := requireFileFlag(cmd)
	if err != nil {
		return err
	}
	var answers discovery.Answers
	if err := readJSONFile(cmd, path, &answers); err != nil {
		return err
	}

	svc := discovery.NewService(discovery.Config{
		HotLeadScore:  cfg.Discovery.HotLeadScore,
		WarmLeadScore: cfg.Discovery.WarmLeadScore,
	}, log)
	result, err := svc.Evaluate(cmd.Context(), answers)
	if err != nil {
		return eris.Wrap(err, "discover")
	}
	return printJSON(cmd.OutOrStdout(), result)
}
