package repository

import "docbot/domain"

// CalculationRepositoryMemory keeps computed amortizations in memory. Entries
// carry parameters only, never a client identity.
type CalculationRepositoryMemory struct {
	data []domain.LoanResult
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []domain.LoanResult{},
	}
}

// Save stores the calculation result in memory.
func (r *CalculationRepositoryMemory) Save(
	input domain.LoanInput,
	result domain.LoanResult,
) error {
	r.data = append(r.data, result)
	return nil
}
