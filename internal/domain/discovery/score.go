package discovery

// MaxLeadScore caps the additive lead score.
const MaxLeadScore = 100

var (
	timeframePoints = map[string]int{
		TimeframeImmediate:       40,
		TimeframeWithin30Days:    30,
		TimeframeWithin3Months:   20,
		TimeframeJustResearching: 5,
	}
	scenarioPoints = map[Scenario]int{
		ScenarioC: 25,
		ScenarioD: 20,
		ScenarioB: 15,
		ScenarioA: 10,
	}
	budgetPoints = map[string]int{
		BudgetOver500:  20,
		Budget300To500: 15,
		Budget200To300: 10,
		Budget100To200: 5,
		BudgetUnder100: 0,
	}
)

const (
	pointsPerHealthConcern = 5
	broadPrioritiesPoints  = 15
	broadPrioritiesCount   = 3
)

// Score computes a reproducible lead score in [0, MaxLeadScore].
func Score(a Answers, scenario Scenario) int {
	score := agePoints(a.Age)
	score += timeframePoints[a.Timeframe]
	score += scenarioPoints[scenario]
	score += pointsPerHealthConcern * len(a.HealthConcerns)
	score += budgetPoints[a.BudgetRange]
	if len(a.CoveragePriorities) > broadPrioritiesCount {
		score += broadPrioritiesPoints
	}
	return min(score, MaxLeadScore)
}

func agePoints(age int) int {
	switch {
	case age >= 65:
		return 30
	case age >= 60:
		return 20
	case age >= 50:
		return 10
	default:
		return 0
	}
}

// TierFor buckets a score using the configured thresholds.
func TierFor(score int, cfg Config) Tier {
	hot, warm := cfg.thresholds()
	switch {
	case score >= hot:
		return TierHot
	case score >= warm:
		return TierWarm
	default:
		return TierCold
	}
}

func (c Config) thresholds() (hot, warm int) {
	hot, warm = c.HotLeadScore, c.WarmLeadScore
	if hot <= 0 {
		hot = defaultHotLeadScore
	}
	if warm <= 0 {
		warm = defaultWarmLeadScore
	}
	return hot, warm
}
