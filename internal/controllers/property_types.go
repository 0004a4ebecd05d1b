package controllers

import (
	"github.com/hoa-ledger/backend/internal/models"
)

type PropertyInformationResponse struct {
	Success  bool                        `json:"success" example:"true"`
	Message  string                      `json:"message,omitempty" example:"Property Information created successfully!"`
	Property *models.PropertyInformation `json:"property,omitempty"`
}

type PropertyInformationListResponse struct {
	Success    bool                         `json:"success" example:"true"`
	Properties []models.PropertyInformation `json:"properties"`
}
