package controllers

import (
	"github.com/hoa-ledger/backend/internal/models"
)

type UnitResponse struct {
	Success  bool         `json:"success" example:"true"`
	Message  string       `json:"message,omitempty" example:"Units created successfully!"`
	Property *models.Unit `json:"property,omitempty"`
}

type UnitListResponse struct {
	Success    bool          `json:"success" example:"true"`
	Properties []models.Unit `json:"properties"`
}
