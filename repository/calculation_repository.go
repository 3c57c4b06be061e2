package repository

import "docbot/domain"

type CalculationRepository interface {
	Save(input domain.LoanInput, result domain.LoanResult) error
}
