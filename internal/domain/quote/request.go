package quote

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Request is a product specific quote request that can validate itself and
// map itself onto provider query parameters.
type Request interface {
	Product() Product
	// Validate returns a *FieldError naming the first missing or invalid field.
	Validate() error
	// Queries maps a validated request to one provider call per parameter set.
	Queries() []ProviderQuery
}

const maxAge = 120

var (
	zipPattern   = regexp.MustCompile(`^\d{5}$`)
	statePattern = regexp.MustCompile(`^[A-Z]{2}$`)

	medigapPlans = map[string]struct{}{
		"A": {}, "B": {}, "C": {}, "D": {}, "F": {}, "G": {}, "K": {}, "L": {}, "M": {}, "N": {},
		"HDF": {}, "HDG": {},
	}
	advantagePlanTypes = map[string]struct{}{"MA": {}, "MAPD": {}, "PDP": {}, "SNP": {}}
)

// Flag is a yes/no answer that accepts JSON booleans, 0/1 and their string forms.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "y":
		*f = true
	case "false", "0", "no", "n":
		*f = false
	default:
		return fmt.Errorf("invalid yes/no value %s", string(data))
	}
	return nil
}

func (f Flag) providerValue() string {
	if f {
		return "1"
	}
	return "0"
}

// Applicant carries the rating inputs shared by most product lines.
type Applicant struct {
	Zip     string `json:"zip,omitempty"`
	Age     *int   `json:"age,omitempty"`
	Gender  string `json:"gender,omitempty"`
	Tobacco *Flag  `json:"tobacco,omitempty"`
}

func (a Applicant) validate(p Product, minAge int, zipRequired bool) error {
	if zipRequired {
		if err := validateZip(p, a.Zip); err != nil {
			return err
		}
	}
	if err := validateAge(p, a.Age, minAge); err != nil {
		return err
	}
	if err := validateGender(p, a.Gender); err != nil {
		return err
	}
	if a.Tobacco == nil {
		return missing(p, "tobacco")
	}
	return nil
}

func (a Applicant) params() url.Values {
	params := url.Values{}
	if zip := strings.TrimSpace(a.Zip); zip != "" {
		params.Set("zip5", zip)
	}
	if a.Age != nil {
		params.Set("age", strconv.Itoa(*a.Age))
	}
	if gender := normalizeGender(a.Gender); gender != "" {
		params.Set("gender", gender)
	}
	if a.Tobacco != nil {
		params.Set("tobacco", a.Tobacco.providerValue())
	}
	return params
}

// MedicareSupplementRequest asks for Medigap quotes for one or more plan letters.
type MedicareSupplementRequest struct {
	Applicant
	Plan          string   `json:"plan,omitempty"`
	Plans         []string `json:"plans,omitempty"`
	EffectiveDate string   `json:"effectiveDate,omitempty"`
}

func (r MedicareSupplementRequest) Product() Product { return ProductMedicareSupplement }

func (r MedicareSupplementRequest) Validate() error {
	p := r.Product()
	if err := r.Applicant.validate(p, 65, true); err != nil {
		return err
	}
	letters := r.PlanLetters()
	if len(letters) == 0 {
		return missing(p, "plan")
	}
	for _, letter := range letters {
		if _, ok := medigapPlans[letter]; !ok {
			return invalid(p, "plan", fmt.Sprintf("%q is not a supported plan letter", letter))
		}
	}
	return validateDate(p, "effectiveDate", r.EffectiveDate)
}

// PlanLetters returns the distinct requested plan letters in request order.
func (r MedicareSupplementRequest) PlanLetters() []string {
	candidates := append([]string{r.Plan}, r.Plans...)
	letters := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		letter := strings.ToUpper(strings.TrimSpace(c))
		if letter == "" {
			continue
		}
		if _, ok := seen[letter]; ok {
			continue
		}
		seen[letter] = struct{}{}
		letters = append(letters, letter)
	}
	return letters
}

// Queries fans out one provider call per plan letter; the provider prices a
// single plan per call.
func (r MedicareSupplementRequest) Queries() []ProviderQuery {
	letters := r.PlanLetters()
	queries := make([]ProviderQuery, 0, len(letters))
	for _, letter := range letters {
		params := r.Applicant.params()
		params.Set("plan", letter)
		setIfPresent(params, "effective_date", r.EffectiveDate)
		queries = append(queries, ProviderQuery{Product: r.Product(), Label: letter, Params: params})
	}
	return queries
}

// DefaultCoveredMembers is used when a dental request omits the coverage class.
const DefaultCoveredMembers = "Individual"

// DentalRequest asks for dental plan quotes.
type DentalRequest struct {
	Applicant
	CoveredMembers string `json:"coveredMembers,omitempty"`
}

func (r DentalRequest) Product() Product { return ProductDental }

func (r DentalRequest) Validate() error {
	return r.Applicant.validate(r.Product(), 18, true)
}

func (r DentalRequest) Queries() []ProviderQuery {
	params := r.Applicant.params()
	members := strings.TrimSpace(r.CoveredMembers)
	if members == "" {
		members = DefaultCoveredMembers
	}
	params.Set("covered_members", members)
	return []ProviderQuery{{Product: r.Product(), Params: params}}
}

// HospitalIndemnityRequest asks for hospital indemnity quotes.
type HospitalIndemnityRequest struct {
	Applicant
}

func (r HospitalIndemnityRequest) Product() Product { return ProductHospitalIndemnity }

func (r HospitalIndemnityRequest) Validate() error {
	return r.Applicant.validate(r.Product(), 18, true)
}

func (r HospitalIndemnityRequest) Queries() []ProviderQuery {
	return []ProviderQuery{{Product: r.Product(), Params: r.Applicant.params()}}
}

// Final expense quoting modes.
const (
	QuotingByRate      = "by-rate"
	QuotingByFaceValue = "by-face-value"
)

// FinalExpenseRequest asks for final expense life quotes either for a target
// monthly rate or for a target face value.
type FinalExpenseRequest struct {
	Applicant
	State            string   `json:"state,omitempty"`
	QuotingMode      string   `json:"quotingMode,omitempty"`
	DesiredRate      *float64 `json:"desiredRate,omitempty"`
	DesiredFaceValue *float64 `json:"desiredFaceValue,omitempty"`
	UnderwritingType string   `json:"underwritingType,omitempty"`
}

func (r FinalExpenseRequest) Product() Product { return ProductFinalExpenseLife }

func (r FinalExpenseRequest) Validate() error {
	p := r.Product()
	if err := validateZipOrState(p, r.Zip, r.State); err != nil {
		return err
	}
	if err := r.Applicant.validate(p, 18, false); err != nil {
		return err
	}
	switch normalizeQuotingMode(r.QuotingMode) {
	case "":
		return missing(p, "quotingMode")
	case QuotingByRate:
		return validatePositive(p, "desiredRate", r.DesiredRate)
	case QuotingByFaceValue:
		return validatePositive(p, "desiredFaceValue", r.DesiredFaceValue)
	default:
		return invalid(p, "quotingMode", fmt.Sprintf("must be %q or %q", QuotingByRate, QuotingByFaceValue))
	}
}

func (r FinalExpenseRequest) Queries() []ProviderQuery {
	params := r.Applicant.params()
	setIfPresent(params, "state", strings.ToUpper(r.State))
	switch normalizeQuotingMode(r.QuotingMode) {
	case QuotingByRate:
		params.Set("quoting_type", "by_rate")
		if r.DesiredRate != nil {
			params.Set("desired_rate", formatAmount(*r.DesiredRate))
		}
	case QuotingByFaceValue:
		params.Set("quoting_type", "by_face_value")
		if r.DesiredFaceValue != nil {
			params.Set("desired_face_value", formatAmount(*r.DesiredFaceValue))
		}
	}
	setIfPresent(params, "underwriting_type", r.UnderwritingType)
	return []ProviderQuery{{Product: r.Product(), Params: params}}
}

// MedicareAdvantageRequest asks for Medicare Advantage plan listings.
type MedicareAdvantageRequest struct {
	Zip           string `json:"zip,omitempty"`
	State         string `json:"state,omitempty"`
	PlanType      string `json:"planType,omitempty"`
	Sort          string `json:"sort,omitempty"`
	Order         string `json:"order,omitempty"`
	EffectiveDate string `json:"effectiveDate,omitempty"`
}

func (r MedicareAdvantageRequest) Product() Product { return ProductMedicareAdvantage }

func (r MedicareAdvantageRequest) Validate() error {
	p := r.Product()
	if err := validateZipOrState(p, r.Zip, r.State); err != nil {
		return err
	}
	planType := strings.ToUpper(strings.TrimSpace(r.PlanType))
	if planType == "" {
		return missing(p, "planType")
	}
	if _, ok := advantagePlanTypes[planType]; !ok {
		return invalid(p, "planType", "must be one of MA, MAPD, PDP, SNP")
	}
	if order := strings.ToLower(strings.TrimSpace(r.Order)); order != "" && order != "asc" && order != "desc" {
		return invalid(p, "order", `must be "asc" or "desc"`)
	}
	return validateDate(p, "effectiveDate", r.EffectiveDate)
}

func (r MedicareAdvantageRequest) Queries() []ProviderQuery {
	params := url.Values{}
	setIfPresent(params, "zip5", r.Zip)
	setIfPresent(params, "state", strings.ToUpper(r.State))
	params.Set("plan_type", strings.ToUpper(strings.TrimSpace(r.PlanType)))
	params.Set("sort", defaultString(strings.ToLower(strings.TrimSpace(r.Sort)), "price"))
	params.Set("order", defaultString(strings.ToLower(strings.TrimSpace(r.Order)), "asc"))
	setIfPresent(params, "effective_date", r.EffectiveDate)
	return []ProviderQuery{{Product: r.Product(), Params: params}}
}

// CancerRequest carries the inputs of the locally computed cancer premium.
type CancerRequest struct {
	State         string   `json:"state,omitempty"`
	Age           *int     `json:"age,omitempty"`
	FamilyType    string   `json:"familyType,omitempty"`
	TobaccoStatus string   `json:"tobaccoStatus,omitempty"`
	BenefitAmount *float64 `json:"benefitAmount,omitempty"`
}

func (r CancerRequest) Product() Product { return ProductCancer }

func (r CancerRequest) Validate() error {
	p := r.Product()
	if err := validateState(p, r.State); err != nil {
		return err
	}
	if err := validateAge(p, r.Age, 18); err != nil {
		return err
	}
	if strings.TrimSpace(r.FamilyType) == "" {
		return missing(p, "familyType")
	}
	if strings.TrimSpace(r.TobaccoStatus) == "" {
		return missing(p, "tobaccoStatus")
	}
	return validatePositive(p, "benefitAmount", r.BenefitAmount)
}

func validateZip(p Product, zip string) error {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return missing(p, "zip")
	}
	if !zipPattern.MatchString(zip) {
		return invalid(p, "zip", "must be a 5 digit ZIP code")
	}
	return nil
}

func validateState(p Product, state string) error {
	state = strings.ToUpper(strings.TrimSpace(state))
	if state == "" {
		return missing(p, "state")
	}
	if !statePattern.MatchString(state) {
		return invalid(p, "state", "must be a 2 letter state code")
	}
	return nil
}

// validateZipOrState fails only when both are absent; whichever is present
// must be well formed.
func validateZipOrState(p Product, zip, state string) error {
	if strings.TrimSpace(zip) == "" && strings.TrimSpace(state) == "" {
		return invalid(p, "zip", "or state is required")
	}
	if strings.TrimSpace(zip) != "" {
		if err := validateZip(p, zip); err != nil {
			return err
		}
	}
	if strings.TrimSpace(state) != "" {
		return validateState(p, state)
	}
	return nil
}

func validateAge(p Product, age *int, min int) error {
	if age == nil {
		return missing(p, "age")
	}
	if *age < min {
		return invalid(p, "age", fmt.Sprintf("must be at least %d", min))
	}
	if *age > maxAge {
		return invalid(p, "age", fmt.Sprintf("must be at most %d", maxAge))
	}
	return nil
}

func validateGender(p Product, gender string) error {
	switch normalizeGender(gender) {
	case "":
		return missing(p, "gender")
	case "M", "F":
		return nil
	default:
		return invalid(p, "gender", `must be "M" or "F"`)
	}
}

func validatePositive(p Product, field string, value *float64) error {
	if value == nil {
		return missing(p, field)
	}
	if math.IsNaN(*value) || math.IsInf(*value, 0) || *value <= 0 {
		return invalid(p, field, "must be a positive amount")
	}
	return nil
}

func validateDate(p Product, field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return invalid(p, field, "must be formatted as YYYY-MM-DD")
	}
	return nil
}

func normalizeGender(gender string) string {
	return strings.ToUpper(strings.TrimSpace(gender))
}

func normalizeQuotingMode(mode string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(mode)), "_", "-")
}

func setIfPresent(params url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		params.Set(key, value)
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
