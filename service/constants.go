package service

const (
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 1000.0 // percent per year
	MaxTermMonths   = 600    // 50 years
	MinTermMonths   = 1

	// Defaults applied when the user leaves a rate prompt blank.
	DefaultTAN  = 7.86
	DefaultTAEG = 8.30
)
