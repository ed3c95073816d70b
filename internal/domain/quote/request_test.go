package quote

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func flagPtr(v bool) *Flag {
	f := Flag(v)
	return &f
}

func validApplicant(age int) Applicant {
	return Applicant{Zip: "75001", Age: intPtr(age), Gender: "F", Tobacco: flagPtr(false)}
}

var (
	_ Request = MedicareSupplementRequest{}
	_ Request = DentalRequest{}
	_ Request = HospitalIndemnityRequest{}
	_ Request = FinalExpenseRequest{}
	_ Request = MedicareAdvantageRequest{}
)

// validatable is satisfied by every request, including the locally priced
// cancer request that never reaches the provider.
type validatable interface {
	Product() Product
	Validate() error
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr), "expected *FieldError, got %T", err)
	require.Equal(t, field, fieldErr.Field)
}

func TestValidateRejectsEachMissingRequiredField(t *testing.T) {
	cases := []struct {
		name  string
		req   validatable
		field string
	}{
		{"medsupp zip", MedicareSupplementRequest{Applicant: Applicant{Age: intPtr(70), Gender: "M", Tobacco: flagPtr(false)}, Plan: "G"}, "zip"},
		{"medsupp age", MedicareSupplementRequest{Applicant: Applicant{Zip: "75001", Gender: "M", Tobacco: flagPtr(false)}, Plan: "G"}, "age"},
		{"medsupp gender", MedicareSupplementRequest{Applicant: Applicant{Zip: "75001", Age: intPtr(70), Tobacco: flagPtr(false)}, Plan: "G"}, "gender"},
		{"medsupp tobacco", MedicareSupplementRequest{Applicant: Applicant{Zip: "75001", Age: intPtr(70), Gender: "M"}, Plan: "G"}, "tobacco"},
		{"medsupp plan", MedicareSupplementRequest{Applicant: validApplicant(70)}, "plan"},
		{"medsupp everything", MedicareSupplementRequest{}, "zip"},
		{"dental zip", DentalRequest{Applicant: Applicant{Age: intPtr(40), Gender: "F", Tobacco: flagPtr(true)}}, "zip"},
		{"dental tobacco", DentalRequest{Applicant: Applicant{Zip: "75001", Age: intPtr(40), Gender: "F"}}, "tobacco"},
		{"hospital age", HospitalIndemnityRequest{Applicant: Applicant{Zip: "75001", Gender: "F", Tobacco: flagPtr(true)}}, "age"},
		{"hospital gender", HospitalIndemnityRequest{Applicant: Applicant{Zip: "75001", Age: intPtr(40), Tobacco: flagPtr(true)}}, "gender"},
		{"final expense zip and state", FinalExpenseRequest{Applicant: Applicant{Age: intPtr(60), Gender: "M", Tobacco: flagPtr(false)}, QuotingMode: QuotingByRate, DesiredRate: floatPtr(50)}, "zip"},
		{"final expense quoting mode", FinalExpenseRequest{Applicant: validApplicant(60)}, "quotingMode"},
		{"final expense desired rate", FinalExpenseRequest{Applicant: validApplicant(60), QuotingMode: QuotingByRate, DesiredFaceValue: floatPtr(10000)}, "desiredRate"},
		{"final expense desired face value", FinalExpenseRequest{Applicant: validApplicant(60), QuotingMode: QuotingByFaceValue, DesiredRate: floatPtr(50)}, "desiredFaceValue"},
		{"advantage zip and state", MedicareAdvantageRequest{PlanType: "MAPD"}, "zip"},
		{"advantage plan type", MedicareAdvantageRequest{Zip: "75001"}, "planType"},
		{"cancer state", CancerRequest{Age: intPtr(40), FamilyType: "Applicant", TobaccoStatus: "Non-Tobacco", BenefitAmount: floatPtr(10000)}, "state"},
		{"cancer benefit", CancerRequest{State: "TX", Age: intPtr(40), FamilyType: "Applicant", TobaccoStatus: "Non-Tobacco"}, "benefitAmount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireFieldError(t, tc.req.Validate(), tc.field)
		})
	}
}

func TestValidateRejectsMalformedFields(t *testing.T) {
	cases := []struct {
		name  string
		req   validatable
		field string
	}{
		{"medsupp under 65", MedicareSupplementRequest{Applicant: validApplicant(64), Plan: "G"}, "age"},
		{"medsupp unknown plan", MedicareSupplementRequest{Applicant: validApplicant(70), Plans: []string{"G", "Z"}}, "plan"},
		{"medsupp bad date", MedicareSupplementRequest{Applicant: validApplicant(70), Plan: "G", EffectiveDate: "01/02/2025"}, "effectiveDate"},
		{"dental minor", DentalRequest{Applicant: validApplicant(17)}, "age"},
		{"dental bad zip", DentalRequest{Applicant: Applicant{Zip: "7500", Age: intPtr(30), Gender: "F", Tobacco: flagPtr(false)}}, "zip"},
		{"hospital bad gender", HospitalIndemnityRequest{Applicant: Applicant{Zip: "75001", Age: intPtr(30), Gender: "X", Tobacco: flagPtr(false)}}, "gender"},
		{"final expense bad mode", FinalExpenseRequest{Applicant: validApplicant(60), QuotingMode: "by-magic"}, "quotingMode"},
		{"final expense zero rate", FinalExpenseRequest{Applicant: validApplicant(60), QuotingMode: QuotingByRate, DesiredRate: floatPtr(0)}, "desiredRate"},
		{"advantage bad state", MedicareAdvantageRequest{State: "Texas", PlanType: "MA"}, "state"},
		{"advantage bad order", MedicareAdvantageRequest{Zip: "75001", PlanType: "MA", Order: "sideways"}, "order"},
		{"cancer negative benefit", CancerRequest{State: "TX", Age: intPtr(40), FamilyType: "Applicant", TobaccoStatus: "Tobacco", BenefitAmount: floatPtr(-5)}, "benefitAmount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireFieldError(t, tc.req.Validate(), tc.field)
		})
	}
}

func TestValidateAcceptsCompleteRequests(t *testing.T) {
	requests := []validatable{
		MedicareSupplementRequest{Applicant: validApplicant(65), Plan: "g", Plans: []string{"N", "hdg"}},
		DentalRequest{Applicant: validApplicant(18)},
		HospitalIndemnityRequest{Applicant: validApplicant(45)},
		FinalExpenseRequest{Applicant: Applicant{Age: intPtr(70), Gender: "m", Tobacco: flagPtr(true)}, State: "tx", QuotingMode: "by_face_value", DesiredFaceValue: floatPtr(15000)},
		FinalExpenseRequest{Applicant: validApplicant(70), QuotingMode: QuotingByRate, DesiredRate: floatPtr(45.5)},
		MedicareAdvantageRequest{State: "FL", PlanType: "mapd"},
		CancerRequest{State: "TX", Age: intPtr(70), FamilyType: "Applicant", TobaccoStatus: "Tobacco", BenefitAmount: floatPtr(10000)},
	}
	for _, req := range requests {
		require.NoError(t, req.Validate(), "%s", req.Product())
	}
}

func TestMedicareSupplementQueriesFanOutPerPlan(t *testing.T) {
	req := MedicareSupplementRequest{
		Applicant:     Applicant{Zip: "75001", Age: intPtr(67), Gender: "f", Tobacco: flagPtr(true)},
		Plan:          "G",
		Plans:         []string{"n", "G", " F "},
		EffectiveDate: "2025-01-01",
	}

	queries := req.Queries()
	require.Len(t, queries, 3)
	for i, letter := range []string{"G", "N", "F"} {
		q := queries[i]
		require.Equal(t, ProductMedicareSupplement, q.Product)
		require.Equal(t, letter, q.Label)
		require.Equal(t, letter, q.Params.Get("plan"))
		require.Equal(t, "75001", q.Params.Get("zip5"))
		require.Equal(t, "67", q.Params.Get("age"))
		require.Equal(t, "F", q.Params.Get("gender"))
		require.Equal(t, "1", q.Params.Get("tobacco"))
		require.Equal(t, "2025-01-01", q.Params.Get("effective_date"))
	}
}

func TestDentalQueriesDefaultCoveredMembers(t *testing.T) {
	queries := DentalRequest{Applicant: validApplicant(30)}.Queries()
	require.Len(t, queries, 1)
	require.Equal(t, DefaultCoveredMembers, queries[0].Params.Get("covered_members"))
	require.Equal(t, "0", queries[0].Params.Get("tobacco"))

	queries = DentalRequest{Applicant: validApplicant(30), CoveredMembers: "Family"}.Queries()
	require.Equal(t, "Family", queries[0].Params.Get("covered_members"))
}

func TestFinalExpenseQueriesOmitAbsentFields(t *testing.T) {
	req := FinalExpenseRequest{
		Applicant:        Applicant{Age: intPtr(72), Gender: "M", Tobacco: flagPtr(false)},
		State:            "tx",
		QuotingMode:      QuotingByFaceValue,
		DesiredFaceValue: floatPtr(10000),
		DesiredRate:      floatPtr(30),
	}

	params := req.Queries()[0].Params
	require.Equal(t, "TX", params.Get("state"))
	require.Equal(t, "by_face_value", params.Get("quoting_type"))
	require.Equal(t, "10000", params.Get("desired_face_value"))
	require.False(t, params.Has("desired_rate"))
	require.False(t, params.Has("zip5"))
	require.False(t, params.Has("underwriting_type"))
}

func TestMedicareAdvantageQueriesApplyDefaults(t *testing.T) {
	params := MedicareAdvantageRequest{Zip: "33101", PlanType: "ma"}.Queries()[0].Params
	require.Equal(t, "33101", params.Get("zip5"))
	require.Equal(t, "MA", params.Get("plan_type"))
	require.Equal(t, "price", params.Get("sort"))
	require.Equal(t, "asc", params.Get("order"))
	require.False(t, params.Has("state"))
	require.False(t, params.Has("effective_date"))
}

func TestFlagUnmarshal(t *testing.T) {
	var req struct {
		A *Flag `json:"a"`
		B *Flag `json:"b"`
		C *Flag `json:"c"`
		D *Flag `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":true,"b":0,"c":"1","d":null}`), &req))
	require.True(t, bool(*req.A))
	require.False(t, bool(*req.B))
	require.True(t, bool(*req.C))
	require.Nil(t, req.D)

	var bad Flag
	require.Error(t, json.Unmarshal([]byte(`"maybe"`), &bad))
}
