package quote

import "net/url"

// Product identifies one insurance product line.
type Product string

const (
	ProductMedicareSupplement Product = "medicare-supplement"
	ProductDental             Product = "dental"
	ProductHospitalIndemnity  Product = "hospital-indemnity"
	ProductFinalExpenseLife   Product = "final-expense-life"
	ProductMedicareAdvantage  Product = "medicare-advantage"
	ProductCancer             Product = "cancer"
)

// UnknownCarrier is used when the provider record carries no carrier identity.
const UnknownCarrier = "Unknown Carrier"

// Quote is the normalized, carrier attributed price record returned to callers.
// Exactly one of the product blocks is populated, matching Product.
type Quote struct {
	ID             string  `json:"id"`
	Product        Product `json:"product"`
	Carrier        Carrier `json:"carrier"`
	PlanName       string  `json:"planName"`
	MonthlyPremium float64 `json:"monthlyPremium"`
	AnnualPremium  float64 `json:"annualPremium,omitempty"`

	MedicareSupplement *MedicareSupplementDetails `json:"medicareSupplement,omitempty"`
	Dental             *DentalDetails             `json:"dental,omitempty"`
	HospitalIndemnity  *HospitalIndemnityDetails  `json:"hospitalIndemnity,omitempty"`
	FinalExpense       *FinalExpenseDetails       `json:"finalExpense,omitempty"`
	MedicareAdvantage  *MedicareAdvantageDetails  `json:"medicareAdvantage,omitempty"`
	Cancer             *CancerDetails             `json:"cancer,omitempty"`
}

// MonthlyCost is the value quotes are ranked by.
func (q Quote) MonthlyCost() float64 {
	if q.Product == ProductFinalExpenseLife && q.FinalExpense != nil {
		return q.FinalExpense.MonthlyRate
	}
	return q.MonthlyPremium
}

// Carrier identifies the insurer behind a quote.
type Carrier struct {
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	LogoURL  string `json:"logoUrl,omitempty"`
}

// MedicareSupplementDetails holds Medigap specific fields.
type MedicareSupplementDetails struct {
	Plan         string   `json:"plan"`
	RatingClass  string   `json:"ratingClass,omitempty"`
	NAIC         string   `json:"naic,omitempty"`
	AMBestRating string   `json:"amBestRating,omitempty"`
	Discounts    []string `json:"discounts,omitempty"`
}

// DentalDetails holds dental plan fields.
type DentalDetails struct {
	AnnualMaximum  float64 `json:"annualMaximum"`
	Deductible     float64 `json:"deductible"`
	BenefitSummary string  `json:"benefitSummary,omitempty"`
}

// Benefit is one line of a hospital indemnity benefit schedule.
type Benefit struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// Rider is an optional add-on with its own price and benefit schedule.
type Rider struct {
	Name           string    `json:"name"`
	MonthlyPremium float64   `json:"monthlyPremium"`
	Benefits       []Benefit `json:"benefits"`
}

// HospitalIndemnityDetails holds the base benefit schedule and available riders.
type HospitalIndemnityDetails struct {
	BaseBenefits []Benefit `json:"baseBenefits"`
	Riders       []Rider   `json:"riders"`
}

// FinalExpenseDetails holds final expense life fields.
type FinalExpenseDetails struct {
	FaceValue        float64 `json:"faceValue"`
	MonthlyRate      float64 `json:"monthlyRate"`
	AnnualRate       float64 `json:"annualRate"`
	FaceAmountMin    float64 `json:"faceAmountMin"`
	FaceAmountMax    float64 `json:"faceAmountMax"`
	UnderwritingType string  `json:"underwritingType,omitempty"`
}

// MedicareAdvantageDetails holds Part C plan fields.
type MedicareAdvantageDetails struct {
	PlanType       string  `json:"planType,omitempty"`
	ContractID     string  `json:"contractId,omitempty"`
	StarRating     float64 `json:"starRating"`
	DrugDeductible float64 `json:"drugDeductible"`
	MaxOutOfPocket float64 `json:"maxOutOfPocket"`
}

// CancerDetails echoes the inputs of a locally computed cancer premium.
type CancerDetails struct {
	BenefitAmount float64 `json:"benefitAmount"`
	FamilyType    string  `json:"familyType"`
	TobaccoStatus string  `json:"tobaccoStatus"`
	State         string  `json:"state"`
}

// RawRecord is one undecoded quote object as returned by the rating provider.
type RawRecord map[string]any

// ProviderQuery is one outbound call worth of provider query parameters.
type ProviderQuery struct {
	Product Product
	// Label distinguishes fan-out calls in logs (the plan letter for Medigap).
	Label  string
	Params url.Values
}

// Config wires runtime knobs for the quote domain.
type Config struct {
	// MaxConcurrency bounds parallel provider calls for one request; 1 means sequential.
	MaxConcurrency     int
	CancerCarrierName  string
	UnavailableMessage string
}
