package discovery

// Scenario classifies a prospect's Medicare enrollment situation.
type Scenario string

const (
	// ScenarioA is already on Medicare with a Medicare Advantage plan.
	ScenarioA Scenario = "A"
	// ScenarioB is already on Medicare with Medicare Supplement coverage, and the fallback.
	ScenarioB Scenario = "B"
	// ScenarioC is turning 65 or otherwise about to enroll for the first time.
	ScenarioC Scenario = "C"
	// ScenarioD is over 65 and moving off employer coverage.
	ScenarioD Scenario = "D"
)

var scenarioDescriptions = map[Scenario]string{
	ScenarioA: "Already on Medicare with a Medicare Advantage plan",
	ScenarioB: "Already on Medicare with Medicare Supplement coverage",
	ScenarioC: "Turning 65 or enrolling in Medicare for the first time",
	ScenarioD: "Over 65 and transitioning from employer coverage",
}

// Description returns a human readable summary of the scenario.
func (s Scenario) Description() string {
	return scenarioDescriptions[s]
}

// Medicare status values.
const (
	StatusTurning65Soon          = "turning-65-soon"
	StatusAlreadyOnMedicare      = "already-on-medicare"
	StatusOver65EmployerCoverage = "over-65-employer-coverage"
	StatusNotYetEligible         = "not-yet-eligible"
)

// Current coverage values that influence classification.
const (
	CoverageEmployerHealthPlan = "employer-health-plan"
	CoverageMedicareAdvantage  = "medicare-advantage"
	CoverageMedicareSupplement = "medicare-supplement"
)

// Timeframe values, most urgent first.
const (
	TimeframeImmediate       = "immediate"
	TimeframeWithin30Days    = "within-30-days"
	TimeframeWithin3Months   = "within-3-months"
	TimeframeJustResearching = "just-researching"
)

// Budget ranges in monthly dollars.
const (
	BudgetUnder100 = "under-100"
	Budget100To200 = "100-200"
	Budget200To300 = "200-300"
	Budget300To500 = "300-500"
	BudgetOver500  = "over-500"
)

// Life insurance interest values. An empty value means the question was skipped.
const (
	LifeInterestVery     = "very-interested"
	LifeInterestSomewhat = "somewhat-interested"
	LifeInterestNone     = "not-interested"
)

// Answers is the full discovery questionnaire from one session.
type Answers struct {
	Age                   int      `json:"age,omitempty"`
	ZipCode               string   `json:"zipCode,omitempty"`
	Gender                string   `json:"gender,omitempty"`
	TobaccoUse            *bool    `json:"tobaccoUse,omitempty"`
	MedicareStatus        string   `json:"medicareStatus,omitempty"`
	CoverageNeeds         []string `json:"coverageNeeds,omitempty"`
	CurrentCoverage       []string `json:"currentCoverage,omitempty"`
	HealthConcerns        []string `json:"healthConcerns,omitempty"`
	BudgetRange           string   `json:"budgetRange,omitempty"`
	CoveragePriorities    []string `json:"coveragePriorities,omitempty"`
	LifeInsuranceInterest string   `json:"lifeInsuranceInterest,omitempty"`
	Timeframe             string   `json:"timeframe,omitempty"`
	Contact               *Contact `json:"contact,omitempty"`
}

// Contact holds optional lead contact details. They never influence scoring.
type Contact struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ProductType names a product a prospect may be offered.
type ProductType string

const (
	ProductMedicareAdvantage  ProductType = "medicare-advantage"
	ProductMedicareSupplement ProductType = "medicare-supplement"
	ProductPrescriptionDrug   ProductType = "prescription-drug"
	ProductDental             ProductType = "dental"
	ProductHospitalIndemnity  ProductType = "hospital-indemnity"
	ProductCancer             ProductType = "cancer"
	ProductFinalExpenseLife   ProductType = "final-expense-life"
)

// Priority tiers a recommendation.
type Priority string

const (
	PriorityPrimary      Priority = "primary"
	PrioritySupplemental Priority = "supplemental"
	PriorityOptional     Priority = "optional"
)

// Recommendation is one suggested product for a prospect.
type Recommendation struct {
	ProductType          ProductType `json:"productType"`
	Priority             Priority    `json:"priority"`
	Reasoning            string      `json:"reasoning"`
	CrossSellOpportunity bool        `json:"crossSellOpportunity"`
}

// Tier buckets lead scores for sales routing.
type Tier string

const (
	TierHot  Tier = "hot"
	TierWarm Tier = "warm"
	TierCold Tier = "cold"
)

// Result is the outcome of evaluating one questionnaire.
type Result struct {
	Scenario            Scenario         `json:"scenario"`
	ScenarioDescription string           `json:"scenarioDescription"`
	Recommendations     []Recommendation `json:"recommendations"`
	LeadScore           int              `json:"leadScore"`
	LeadTier            Tier             `json:"leadTier"`
}

// Config tunes lead tiering.
type Config struct {
	HotLeadScore  int
	WarmLeadScore int
}

const (
	defaultHotLeadScore  = 70
	defaultWarmLeadScore = 40
)
