package controllers

import (
	ez_uuid "github.com/hoa-ledger/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URICategoryID struct {
	CategoryID ez_uuid.UUID `uri:"categoryId" binding:"required"` // The ID of the category
}

type QueryMatch struct {
	Match string `form:"match" example:"Ali*"` // Glob pattern for the name, case insensitive
}

type QueryBudget struct {
	BudgetID ez_uuid.UUID `form:"budgetId" example:"5c1a5a3e-8a8e-4b51-9a38-52b7b8f2de3c"` // Only entries of this budget
}
