package controllers

import (
	"github.com/hoa-ledger/backend/internal/models"
)

type CommitteeMemberResponse struct {
	Success  bool                    `json:"success" example:"true"`
	Message  string                  `json:"message,omitempty" example:"Property Committee created successfully!"`
	Property *models.CommitteeMember `json:"property,omitempty"`
}

type CommitteeMemberListResponse struct {
	Success    bool                     `json:"success" example:"true"`
	Properties []models.CommitteeMember `json:"properties"`
}
