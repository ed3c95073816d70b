package discovery

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/yanqian/insurance-quotes/pkg/errors"
	"github.com/yanqian/insurance-quotes/pkg/metrics"
)

// Service evaluates discovery questionnaires.
type Service interface {
	Evaluate(ctx context.Context, answers Answers) (Result, error)
}

type service struct {
	cfg    Config
	logger *slog.Logger
}

// NewService wires the discovery engine.
func NewService(cfg Config, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		logger: logger.With("component", "discovery.service"),
	}
}

func (s *service) Evaluate(_ context.Context, answers Answers) (Result, error) {
	if err := Validate(answers); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return Result{}, apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid discovery answers", err)
		}
		return Result{}, apperrors.Wrap(apperrors.CodeInternal, "unable to evaluate answers", err)
	}

	scenario := Classify(answers)
	score := Score(answers, scenario)
	result := Result{
		Scenario:            scenario,
		ScenarioDescription: scenario.Description(),
		Recommendations:     Recommend(scenario, answers),
		LeadScore:           score,
		LeadTier:            TierFor(score, s.cfg),
	}

	metrics.LeadScores.WithLabelValues(string(scenario)).Observe(float64(score))
	s.logger.Info("discovery evaluated",
		"scenario", scenario,
		"lead_score", score,
		"lead_tier", result.LeadTier,
		"recommendations", len(result.Recommendations),
	)
	return result, nil
}
