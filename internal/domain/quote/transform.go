package quote

import (
	"fmt"
	"strings"
)

var (
	idPaths             = []string{"id", "key"}
	planNamePaths       = []string{"plan_name", "name", "product.name", "plan"}
	monthlyPremiumPaths = []string{"monthly_premium", "monthly_rate", "month_rate", "rate.month", "premium.monthly", "premium"}
	annualPremiumPaths  = []string{"annual_premium", "annual_rate", "rate.annual", "premium.annual"}
	carrierObjectPaths  = []string{"company_base", "carrier", "company"}
	carrierNamePaths    = []string{"carrier_name", "company_name"}
)

// Transform normalizes raw provider records for one product line. A malformed
// record degrades to defaults instead of failing the batch.
func Transform(product Product, records []RawRecord) []Quote {
	quotes := make([]Quote, 0, len(records))
	for i, rec := range records {
		quotes = append(quotes, transformRecord(product, i, rec))
	}
	return quotes
}

func transformRecord(product Product, index int, rec RawRecord) Quote {
	if rec == nil {
		rec = RawRecord{}
	}
	q := Quote{
		ID:             firstString(rec, idPaths...),
		Product:        product,
		Carrier:        resolveCarrier(rec),
		PlanName:       firstString(rec, planNamePaths...),
		MonthlyPremium: firstNumber(rec, monthlyPremiumPaths...),
		AnnualPremium:  firstNumber(rec, annualPremiumPaths...),
	}
	if q.ID == "" {
		q.ID = fmt.Sprintf("%s-%d", product, index)
	}

	switch product {
	case ProductMedicareSupplement:
		q.MedicareSupplement = medicareSupplementDetails(rec)
		if plan := q.MedicareSupplement.Plan; plan != "" && (q.PlanName == "" || q.PlanName == plan) {
			q.PlanName = "Plan " + plan
		}
	case ProductDental:
		q.Dental = dentalDetails(rec)
	case ProductHospitalIndemnity:
		q.HospitalIndemnity = hospitalIndemnityDetails(rec)
	case ProductFinalExpenseLife:
		q.FinalExpense = finalExpenseDetails(rec)
		q.MonthlyPremium = q.FinalExpense.MonthlyRate
		if q.AnnualPremium == 0 {
			q.AnnualPremium = q.FinalExpense.AnnualRate
		}
	case ProductMedicareAdvantage:
		q.MedicareAdvantage = medicareAdvantageDetails(rec)
	}
	return q
}

// LooksLikeQuote reports whether a bare provider object carries any quote
// identity, premium or carrier field. Error envelopes carry none of them.
func LooksLikeQuote(rec RawRecord) bool {
	for _, group := range [][]string{idPaths, monthlyPremiumPaths, annualPremiumPaths, carrierObjectPaths, carrierNamePaths} {
		for _, path := range group {
			if _, ok := lookup(rec, path); ok {
				return true
			}
		}
	}
	return false
}

// resolveCarrier prefers the nested company base object, then a flatter
// carrier object or string, then loose name fields.
func resolveCarrier(rec RawRecord) Carrier {
	for _, path := range carrierObjectPaths {
		v, ok := lookup(rec, path)
		if !ok {
			continue
		}
		if obj, ok := asObject(v); ok {
			name := firstString(obj, "name", "name_short")
			full := firstString(obj, "name_full", "full_name")
			if name == "" {
				name = full
			}
			if name == "" {
				continue
			}
			return Carrier{
				Name:     name,
				FullName: defaultString(full, name),
				LogoURL:  firstString(obj, "logo_url", "logo"),
			}
		}
		if name, ok := coerceString(v); ok {
			return Carrier{Name: name, FullName: name}
		}
	}
	if name := firstString(rec, carrierNamePaths...); name != "" {
		return Carrier{Name: name, FullName: name}
	}
	return Carrier{Name: UnknownCarrier, FullName: UnknownCarrier}
}

func medicareSupplementDetails(rec RawRecord) *MedicareSupplementDetails {
	details := &MedicareSupplementDetails{
		Plan:         firstString(rec, "plan"),
		RatingClass:  firstString(rec, "rating_class"),
		NAIC:         firstString(rec, "company_base.naic", "naic"),
		AMBestRating: firstString(rec, "company_base.ambest_rating", "ambest_rating"),
	}
	for _, item := range firstList(rec, "discounts") {
		if name, ok := coerceString(item); ok {
			details.Discounts = append(details.Discounts, name)
			continue
		}
		if obj, ok := asObject(item); ok {
			if name := firstString(obj, "name", "type"); name != "" {
				details.Discounts = append(details.Discounts, name)
			}
		}
	}
	return details
}

func dentalDetails(rec RawRecord) *DentalDetails {
	return &DentalDetails{
		AnnualMaximum:  firstNumber(rec, "annual_maximum", "annual_max", "benefits.annual_maximum"),
		Deductible:     firstNumber(rec, "deductible", "benefits.deductible"),
		BenefitSummary: firstString(rec, "benefit_summary", "description"),
	}
}

func hospitalIndemnityDetails(rec RawRecord) *HospitalIndemnityDetails {
	details := &HospitalIndemnityDetails{
		BaseBenefits: decodeBenefits(firstList(rec, "base_benefits", "base_plan.benefits", "base_plans.0.benefits", "benefits")),
		Riders:       []Rider{},
	}
	for _, item := range firstList(rec, "riders", "rider_options") {
		obj, ok := asObject(item)
		if !ok {
			continue
		}
		details.Riders = append(details.Riders, Rider{
			Name:           defaultString(firstString(obj, "name", "rider_name"), "Rider"),
			MonthlyPremium: firstNumber(obj, monthlyPremiumPaths...),
			Benefits:       decodeBenefits(firstList(obj, "benefits")),
		})
	}
	return details
}

func decodeBenefits(items []any) []Benefit {
	benefits := make([]Benefit, 0, len(items))
	for _, item := range items {
		if name, ok := item.(string); ok {
			if name = strings.TrimSpace(name); name != "" {
				benefits = append(benefits, Benefit{Name: name})
			}
			continue
		}
		obj, ok := asObject(item)
		if !ok {
			continue
		}
		benefits = append(benefits, Benefit{
			Name:        defaultString(firstString(obj, "name", "benefit_name", "label"), "Benefit"),
			Amount:      firstNumber(obj, "amount", "benefit_amount", "value"),
			Description: firstString(obj, "description", "quantifier"),
		})
	}
	return benefits
}

func finalExpenseDetails(rec RawRecord) *FinalExpenseDetails {
	return &FinalExpenseDetails{
		FaceValue:        firstNumber(rec, "face_value", "face_amount"),
		MonthlyRate:      firstNumber(rec, "monthly_rate", "rate.month", "monthly_premium", "premium"),
		AnnualRate:       firstNumber(rec, "annual_rate", "rate.annual", "annual_premium"),
		FaceAmountMin:    firstNumber(rec, "face_amount_min", "product.face_amount_min", "min_face_amount"),
		FaceAmountMax:    firstNumber(rec, "face_amount_max", "product.face_amount_max", "max_face_amount"),
		UnderwritingType: firstString(rec, "underwriting_type", "product.underwriting_type"),
	}
}

func medicareAdvantageDetails(rec RawRecord) *MedicareAdvantageDetails {
	return &MedicareAdvantageDetails{
		PlanType:       firstString(rec, "plan_type"),
		ContractID:     firstString(rec, "contract_id", "contract"),
		StarRating:     firstNumber(rec, "overall_star_rating", "star_rating", "rating"),
		DrugDeductible: firstNumber(rec, "drug_deductible", "annual_drug_deductible"),
		MaxOutOfPocket: firstNumber(rec, "in_network_moop", "max_out_of_pocket", "moop"),
	}
}
