package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyInformation is the header data printed on reports of a category.
type PropertyInformation struct {
	DefaultModel
	PropertyInformationCreate
}

type PropertyInformationCreate struct {
	Name          string     `json:"pName" example:"Sunset Gardens"`                                         // Name of the property
	Address       string     `json:"pAddress" example:"12 Harbor Road"`                                      // Street address
	Location      string     `json:"pLocation" example:"Springfield"`                                        // City or area
	OwnerTitle    string     `json:"ownerTitle" example:"Sunset Gardens Owners Association"`                 // Title printed on reports
	Currency      string     `json:"currency" example:"USD"`                                                 // Currency of the property
	NumberOfUnits string     `json:"numberOfUnits" example:"24"`                                             // Number of units
	Logo          *Document  `json:"logo" gorm:"serializer:lenient"`                                         // Logo printed on reports
	CategoryID    *uuid.UUID `json:"categoryId" gorm:"index" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the category
	Category      *Category  `json:"-"`
}

func (p PropertyInformation) Self() string {
	return "Property Information"
}

func (p *PropertyInformation) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	return nil
}

// CreatePropertyInformation creates property information for a category.
func CreatePropertyInformation(db *gorm.DB, create PropertyInformationCreate) (PropertyInformation, error) {
	var absent []string
	if strings.TrimSpace(create.Name) == "" {
		absent = append(absent, "pName")
	}
	if strings.TrimSpace(create.Currency) == "" {
		absent = append(absent, "currency")
	}
	if create.CategoryID == nil {
		absent = append(absent, "categoryId")
	}
	if len(absent) > 0 {
		return PropertyInformation{}, missing(absent...)
	}

	property := PropertyInformation{PropertyInformationCreate: create}
	err := db.Omit("Category").Create(&property).Error
	return property, err
}

// FindPropertyInformation returns the property information of a category,
// or of all categories if no category is given.
func FindPropertyInformation(db *gorm.DB, categoryID *uuid.UUID) ([]PropertyInformation, error) {
	query := db.Order("created_at ASC, id ASC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var properties []PropertyInformation
	err := query.Find(&properties).Error
	if err != nil {
		return nil, err
	}

	return properties, nil
}

// DeletePropertyInformation deletes property information and returns it.
func DeletePropertyInformation(db *gorm.DB, id uuid.UUID) (PropertyInformation, error) {
	var property PropertyInformation
	err := db.First(&property, "id = ?", id).Error
	if err != nil {
		return PropertyInformation{}, err
	}

	return property, db.Delete(&property).Error
}
