package service

import (
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
)

// BudgetService reads the ledger. Rows are only written by OrderService.
type BudgetService interface {
	Total() (*model.BudgetTotal, error)
	Detail() ([]model.Budget, error)
	Income() ([]model.Budget, error)
	Outcome() ([]model.Budget, error)
}

type budgetService struct {
	repos *repository.Repositories
}

func NewBudgetService(repos *repository.Repositories) BudgetService {
	return &budgetService{repos: repos}
}

func (s *budgetService) Total() (*model.BudgetTotal, error) {
	income, err := s.repos.Budgets.Sum(repository.Incomes)
	if err != nil {
		return nil, internal("failed to sum income", err)
	}
	outcome, err := s.repos.Budgets.Sum(repository.Outcomes)
	if err != nil {
		return nil, internal("failed to sum outcome", err)
	}
	return &model.BudgetTotal{
		Total:   income.Sub(outcome),
		Income:  income,
		Outcome: outcome,
	}, nil
}

func (s *budgetService) Detail() ([]model.Budget, error) {
	return s.list()
}

func (s *budgetService) Income() ([]model.Budget, error) {
	return s.list(repository.Incomes)
}

func (s *budgetService) Outcome() ([]model.Budget, error) {
	return s.list(repository.Outcomes)
}

func (s *budgetService) list(scopes ...repository.Scope) ([]model.Budget, error) {
	rows, err := s.repos.Budgets.FindAll(scopes...)
	if err != nil {
		return nil, internal("failed to list budget", err)
	}
	return rows, nil
}
