package service

import (
	"errors"
	"testing"

	"docbot/domain"
	"docbot/repository"
)

type MockCalculationRepository struct {
	SaveCalled int
	ForceError bool
}

func (m *MockCalculationRepository) Save(
	input domain.LoanInput,
	result domain.LoanResult,
) error {
	m.SaveCalled++
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func TestCalculate_WithInterest(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewLoanService(mockRepo, repository.NewMemoryCache())

	input := domain.LoanInput{
		Amount:       10000,
		InterestRate: 7.86,
		TermMonths:   24,
	}

	result, err := service.Calculate(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Closed-form annuity value, pinned.
	if result.MonthlyPayment != 451.63 {
		t.Errorf("expected 451.63, got %.2f", result.MonthlyPayment)
	}

	if result.TotalPayment < input.Amount {
		t.Errorf("total paid %.2f must cover the principal", result.TotalPayment)
	}

	if mockRepo.SaveCalled != 1 {
		t.Errorf("expected repository Save to be called once")
	}
}

func TestCalculate_ZeroInterest(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewLoanService(mockRepo, repository.NewMemoryCache())

	input := domain.LoanInput{
		Amount:       1200,
		InterestRate: 0,
		TermMonths:   12,
	}

	result, err := service.Calculate(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := 100.0
	if result.MonthlyPayment != expected {
		t.Errorf("expected %.2f, got %.2f", expected, result.MonthlyPayment)
	}

	if result.TotalInterest != 0 {
		t.Errorf("zero-rate loan must carry zero interest, got %.2f", result.TotalInterest)
	}
}

func TestCalculate_PaymentCoversPrincipal(t *testing.T) {

	cases := []domain.LoanInput{
		{Amount: 5000, InterestRate: 8.3, TermMonths: 36},
		{Amount: 1000, InterestRate: 7.86, TermMonths: 12},
		{Amount: 250000, InterestRate: 3.5, TermMonths: 360},
	}

	for _, input := range cases {
		service := NewLoanService(&MockCalculationRepository{}, repository.NewMemoryCache())
		result, err := service.Calculate(input)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", input, err)
		}
		if result.MonthlyPayment*float64(input.TermMonths) < input.Amount {
			t.Errorf("payments for %+v do not amortize the principal", input)
		}
	}
}

func TestCalculate_PinnedValues(t *testing.T) {

	service := NewLoanService(&MockCalculationRepository{}, repository.NewMemoryCache())

	result, err := service.Calculate(domain.LoanInput{
		Amount: 5000, InterestRate: 8.3, TermMonths: 36,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MonthlyPayment != 157.37 {
		t.Errorf("expected 157.37, got %.2f", result.MonthlyPayment)
	}
}

func TestCalculate_CacheHitSkipsSave(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	cache := repository.NewMemoryCache()
	service := NewLoanService(mockRepo, cache)

	input := domain.LoanInput{Amount: 1000, InterestRate: 7.86, TermMonths: 12}

	first, err := service.Calculate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.Calculate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
	if mockRepo.SaveCalled != 1 {
		t.Errorf("expected a single Save, got %d", mockRepo.SaveCalled)
	}
}

func TestCalculate_ZeroAmount(t *testing.T) {

	service := NewLoanService(&MockCalculationRepository{}, repository.NewMemoryCache())

	result, err := service.Calculate(domain.LoanInput{
		Amount:       0,
		InterestRate: 7.86,
		TermMonths:   12,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MonthlyPayment != 0 {
		t.Errorf("zero principal must amortize to a zero payment, got %.2f", result.MonthlyPayment)
	}

	if result.TotalInterest != 0 {
		t.Errorf("zero principal must carry zero interest, got %.2f", result.TotalInterest)
	}
}

func TestCalculate_NegativeAmount(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewLoanService(mockRepo, repository.NewMemoryCache())

	input := domain.LoanInput{
		Amount:       -500,
		InterestRate: 10,
		TermMonths:   12,
	}

	_, err := service.Calculate(input)

	if err == nil {
		t.Errorf("expected error for negative amount")
	}

	if mockRepo.SaveCalled != 0 {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestCalculate_InvalidTerm(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewLoanService(mockRepo, repository.NewMemoryCache())

	input := domain.LoanInput{
		Amount:       1000,
		InterestRate: 10,
		TermMonths:   0,
	}

	_, err := service.Calculate(input)

	if err == nil {
		t.Errorf("expected error for invalid term")
	}
}
