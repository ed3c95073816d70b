package quote

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Cancer premiums are the only prices computed locally. Factors are kept as
// exact rationals so the result is rounded exactly once.
var (
	cancerBaseRate      = big.NewRat(1, 1000)
	cancerSeniorFactor  = big.NewRat(3, 2)
	cancerMatureFactor  = big.NewRat(6, 5)
	cancerTobaccoFactor = big.NewRat(3, 2)
	cancerSpouseFactor  = big.NewRat(9, 5)
	cancerChildFactor   = big.NewRat(13, 10)
	cancerStateFactor   = big.NewRat(11, 10)
)

// cancerSurchargeState carries the state specific loading.
const cancerSurchargeState = "TX"

// CancerPremium computes the monthly cancer premium for a benefit amount,
// rounded half up to the cent.
func CancerPremium(state string, age int, familyType, tobaccoStatus string, benefitAmount float64) float64 {
	if math.IsNaN(benefitAmount) || math.IsInf(benefitAmount, 0) || benefitAmount <= 0 {
		return 0
	}
	premium, ok := new(big.Rat).SetString(strconv.FormatFloat(benefitAmount, 'f', -1, 64))
	if !ok {
		return 0
	}
	premium.Mul(premium, cancerBaseRate)

	switch {
	case age >= 65:
		premium.Mul(premium, cancerSeniorFactor)
	case age >= 50:
		premium.Mul(premium, cancerMatureFactor)
	}
	if isTobaccoStatus(tobaccoStatus) {
		premium.Mul(premium, cancerTobaccoFactor)
	}
	family := strings.ToLower(familyType)
	if strings.Contains(family, "spouse") {
		premium.Mul(premium, cancerSpouseFactor)
	}
	if strings.Contains(family, "child") {
		premium.Mul(premium, cancerChildFactor)
	}
	if strings.EqualFold(strings.TrimSpace(state), cancerSurchargeState) {
		premium.Mul(premium, cancerStateFactor)
	}
	return roundHalfUpCents(premium)
}

func isTobaccoStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "tobacco", "smoker", "yes", "true", "1":
		return true
	default:
		return false
	}
}

func roundHalfUpCents(amount *big.Rat) float64 {
	scaled := new(big.Rat).Mul(amount, big.NewRat(100, 1))
	scaled.Add(scaled, big.NewRat(1, 2))
	cents := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	result, _ := new(big.Rat).SetFrac(cents, big.NewInt(100)).Float64()
	return result
}
