package controllers

import (
	ez_uuid "github.com/hoa-ledger/backend/internal/uuid"
)

type QueryPrint struct {
	CategoryID  ez_uuid.UUID `form:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`  // ID of the category, required
	Month       string       `form:"month" example:"May"`                                        // Month of the monthly report
	OwnerID     ez_uuid.UUID `form:"ownerId" example:"65392deb-5e92-4268-b114-297faad6cdce"`     // ID of the income entry of the owner report
	CommitteeID ez_uuid.UUID `form:"committeeId" example:"0b2a6e0c-8d4f-4c1e-9f61-4b3a0c2f3d7e"` // ID of the committee member signing the owner report
}

type QueryListing struct {
	CategoryID ez_uuid.UUID `form:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // Only list resources of this category
}
