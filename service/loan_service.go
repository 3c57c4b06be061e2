package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"docbot/domain"
	"docbot/repository"
)

type LoanService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(repo repository.CalculationRepository,
	cache repository.CacheRepository,
) *LoanService {
	return &LoanService{repo: repo, cache: cache}
}

func cacheKey(input domain.LoanInput) string {
	return fmt.Sprintf("loan:%.2f:%d:%.4f", input.Amount, input.TermMonths, input.InterestRate)
}

// Calculate computes the fixed annuity payment for the given parameters.
// Results are rounded half-up to 2 decimals so they match the rendered
// currency figures exactly.
func (s *LoanService) Calculate(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	// A zero principal is a valid request and amortizes to a zero payment.
	if input.Amount < 0 {
		return domain.LoanResult{}, errors.New("invalid amount")
	}
	if input.Amount > MaxLoanAmount {
		return domain.LoanResult{}, fmt.Errorf("amount exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if input.InterestRate < 0 {
		return domain.LoanResult{}, errors.New("invalid rate")
	}
	if input.InterestRate > MaxInterestRate {
		return domain.LoanResult{}, fmt.Errorf("rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if input.TermMonths < MinTermMonths {
		return domain.LoanResult{}, errors.New("invalid term")
	}
	if input.TermMonths > MaxTermMonths {
		return domain.LoanResult{}, fmt.Errorf("term exceeds the maximum of %d months", MaxTermMonths)
	}

	if s.cache != nil {
		if raw, ok := s.cache.Get(cacheKey(input)); ok {
			var cached domain.LoanResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	var payment float64

	if input.InterestRate == 0 {
		payment = input.Amount / float64(input.TermMonths)
	} else {
		monthlyRate := (input.InterestRate / 100) / 12
		n := float64(input.TermMonths)

		payment = input.Amount * monthlyRate * math.Pow(1+monthlyRate, n) /
			(math.Pow(1+monthlyRate, n) - 1)
	}

	total := payment * float64(input.TermMonths)
	interest := total - input.Amount

	result := domain.LoanResult{
		MonthlyPayment: RoundMoney(payment),
		TotalPayment:   RoundMoney(total),
		TotalInterest:  RoundMoney(interest),
	}

	// Record the calculation (not critical if either side fails).
	if err := s.repo.Save(input, result); err != nil {
		log.Printf("Warning: failed to save loan calculation: %v", err)
	}
	if s.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(cacheKey(input), string(raw)); err != nil {
				log.Printf("Warning: failed to cache loan calculation: %v", err)
			}
		}
	}

	return result, nil
}
