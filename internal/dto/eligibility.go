package dto

// EligibilityRequest carries the declared financials for a loan
// eligibility check. Non-negative inputs are enforced here so the
// calculation itself stays a straight transcription of the formula.
type EligibilityRequest struct {
	MonthlyIncome float64   `json:"monthlyIncome" binding:"gte=0"`
	AssetValues   []float64 `json:"assetValues" binding:"dive,gte=0"`
}

// EligibilityResponse reports the derived maximum loan amount.
type EligibilityResponse struct {
	MaxLoanAmount string `json:"maxLoanAmount"`
	CreditScore   int    `json:"creditScore"`
}
