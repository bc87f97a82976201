// Package lending derives the maximum loan amount an account is
// eligible for from declared income, assets, and credit score.
package lending

import (
	"github.com/shopspring/decimal"
)

var (
	incomeFactor = decimal.RequireFromString("0.8")
	assetFactor  = decimal.NewFromInt(30)
	maxScore     = decimal.NewFromInt(850)
)

// MaxLoan applies the eligibility formula as-is, with no clamping:
//
//	min(monthlyIncome*0.8, sum(assets)*30) * (creditScore/850)
//
// Inputs are assumed non-negative; callers validate before calling.
func MaxLoan(monthlyIncome decimal.Decimal, assetValues []decimal.Decimal, creditScore int) decimal.Decimal {
	incomeCap := monthlyIncome.Mul(incomeFactor)

	totalAssets := decimal.Zero
	for _, v := range assetValues {
		totalAssets = totalAssets.Add(v)
	}
	assetCap := totalAssets.Mul(assetFactor)

	base := incomeCap
	if assetCap.LessThan(base) {
		base = assetCap
	}

	multiplier := decimal.NewFromInt(int64(creditScore)).Div(maxScore)
	return base.Mul(multiplier)
}
