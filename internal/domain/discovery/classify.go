package discovery

import "slices"

// Classify assigns exactly one scenario. The turning-65 window is checked
// first, so an enrolled 64 to 66 year old lands in C even when already on a
// Medicare Advantage or Supplement plan.
func Classify(a Answers) Scenario {
	switch {
	case a.MedicareStatus == StatusTurning65Soon, inTurning65Window(a.Age):
		return ScenarioC
	case a.MedicareStatus == StatusOver65EmployerCoverage,
		a.Age > 65 && slices.Contains(a.CurrentCoverage, CoverageEmployerHealthPlan):
		return ScenarioD
	case a.MedicareStatus == StatusAlreadyOnMedicare && slices.Contains(a.CurrentCoverage, CoverageMedicareAdvantage):
		return ScenarioA
	case a.MedicareStatus == StatusAlreadyOnMedicare && slices.Contains(a.CurrentCoverage, CoverageMedicareSupplement):
		return ScenarioB
	default:
		return ScenarioB
	}
}

// TODO: confirm with sales whether enrolled 64-66 year olds should keep A/B;
// the window currently ignores medicare status.
func inTurning65Window(age int) bool {
	return age >= 64 && age <= 66
}
