package domain

// LoanInput are the parameters of one annuity calculation.
type LoanInput struct {
	Amount       float64
	InterestRate float64 // nominal annual rate (TAN), percent
	TermMonths   int
}

// LoanResult is the computed amortization summary.
type LoanResult struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
}
