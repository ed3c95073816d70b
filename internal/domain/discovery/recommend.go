package discovery

import "slices"

var scenarioRecommendations = map[Scenario][]Recommendation{
	ScenarioA: {
		{ProductType: ProductMedicareAdvantage, Priority: PriorityPrimary, Reasoning: "Review your current Medicare Advantage plan against this year's options in your area"},
		{ProductType: ProductHospitalIndemnity, Priority: PrioritySupplemental, Reasoning: "Covers the daily hospital copays Medicare Advantage plans leave you to pay", CrossSellOpportunity: true},
		{ProductType: ProductCancer, Priority: PrioritySupplemental, Reasoning: "Pays a lump sum toward out-of-pocket costs after a cancer diagnosis", CrossSellOpportunity: true},
		{ProductType: ProductDental, Priority: PrioritySupplemental, Reasoning: "Adds dental benefits beyond the limited allowance in most Advantage plans", CrossSellOpportunity: true},
	},
	ScenarioB: {
		{ProductType: ProductMedicareSupplement, Priority: PriorityPrimary, Reasoning: "Compare Medicare Supplement rates; the same plan letter often costs less with another carrier"},
		{ProductType: ProductPrescriptionDrug, Priority: PriorityPrimary, Reasoning: "Medicare Supplement plans do not include drug coverage"},
		{ProductType: ProductDental, Priority: PrioritySupplemental, Reasoning: "Original Medicare and Supplement plans do not cover routine dental care", CrossSellOpportunity: true},
		{ProductType: ProductCancer, Priority: PrioritySupplemental, Reasoning: "Pays a lump sum toward costs Medicare does not cover after a cancer diagnosis", CrossSellOpportunity: true},
	},
	ScenarioC: {
		{ProductType: ProductMedicareSupplement, Priority: PriorityPrimary, Reasoning: "Your open enrollment period guarantees acceptance without health questions"},
		{ProductType: ProductPrescriptionDrug, Priority: PriorityPrimary, Reasoning: "Enroll in drug coverage on time to avoid a lifetime late enrollment penalty"},
		{ProductType: ProductDental, Priority: PrioritySupplemental, Reasoning: "Original Medicare does not cover routine dental care", CrossSellOpportunity: true},
		{ProductType: ProductHospitalIndemnity, Priority: PrioritySupplemental, Reasoning: "Cash benefits for hospital stays help with costs Medicare leaves behind", CrossSellOpportunity: true},
		{ProductType: ProductMedicareAdvantage, Priority: PriorityOptional, Reasoning: "A lower premium alternative if you are comfortable with a provider network"},
	},
	ScenarioD: {
		{ProductType: ProductMedicareSupplement, Priority: PriorityPrimary, Reasoning: "Leaving employer coverage opens a guaranteed issue window for Supplement plans"},
		{ProductType: ProductPrescriptionDrug, Priority: PriorityPrimary, Reasoning: "Replace your employer drug coverage before it ends to avoid a coverage gap"},
		{ProductType: ProductDental, Priority: PrioritySupplemental, Reasoning: "Replace the dental benefits your employer plan provided", CrossSellOpportunity: true},
		{ProductType: ProductHospitalIndemnity, Priority: PrioritySupplemental, Reasoning: "Cash benefits for hospital stays help with costs Medicare leaves behind", CrossSellOpportunity: true},
		{ProductType: ProductMedicareAdvantage, Priority: PriorityOptional, Reasoning: "A lower premium alternative if you are comfortable with a provider network"},
	},
}

var finalExpenseRecommendation = Recommendation{
	ProductType:          ProductFinalExpenseLife,
	Priority:             PriorityOptional,
	Reasoning:            "Affordable whole life coverage so final expenses do not fall on your family",
	CrossSellOpportunity: true,
}

// Recommend returns the scenario's fixed recommendations followed by any
// universal additions. Scenario entries are never removed or reordered.
func Recommend(scenario Scenario, a Answers) []Recommendation {
	recs := slices.Clone(scenarioRecommendations[scenario])
	if recs == nil {
		recs = []Recommendation{}
	}
	if a.Age >= 50 && a.LifeInsuranceInterest != LifeInterestNone {
		recs = append(recs, finalExpenseRecommendation)
	}
	return recs
}
