package controllers

import (
	"github.com/hoa-ledger/backend/internal/models"
)

type BudgetResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message,omitempty" example:"Budget created successfully"`
	Budget  *models.Budget `json:"category,omitempty"`            // The budget
	Seeded  int            `json:"seeded,omitempty" example:"12"` // Number of budget income entries created for the owners of the category
}

type BudgetListResponse struct {
	Success bool            `json:"success" example:"true"`
	Budgets []models.Budget `json:"categories"` // Budgets of the category
}

type BudgetDeleteResponse struct {
	Success  bool           `json:"success" example:"true"`
	Message  string         `json:"message" example:"Budget deleted successfully"`
	Budget   *models.Budget `json:"category,omitempty"`    // The deleted budget
	Detached int64          `json:"detached" example:"12"` // Number of ledger entries that were detached from the budget
}
