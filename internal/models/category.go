package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category scopes ledger entries, budgets, units, property information
// and committee members to one property.
type Category struct {
	DefaultModel
	CategoryCreate
}

type CategoryCreate struct {
	Name     string `json:"name" example:"Sunset Gardens"` // Name of the category
	Currency string `json:"currency" example:"EUR"`        // ISO 4217 code copied to new ledger entries
}

func (c Category) Self() string {
	return "Category"
}

// EffectiveCurrency returns the currency of the category, the default
// currency if none is set.
func (c Category) EffectiveCurrency() string {
	if c.Currency == "" {
		return defaultCurrency
	}
	return c.Currency
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	return nil
}

// CreateCategory creates a category.
func CreateCategory(db *gorm.DB, create CategoryCreate) (Category, error) {
	if strings.TrimSpace(create.Name) == "" {
		return Category{}, missing("name")
	}

	category := Category{CategoryCreate: create}
	err := db.Create(&category).Error
	return category, err
}

// FindCategories returns all categories ordered by name.
func FindCategories(db *gorm.DB) ([]Category, error) {
	var categories []Category
	err := db.Order("name ASC, id ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// FindCategory returns the category with the ID.
func FindCategory(db *gorm.DB, id uuid.UUID) (Category, error) {
	var category Category
	err := db.First(&category, "id = ?", id).Error
	return category, err
}

// UpdateCategory replaces name and currency of a category.
func UpdateCategory(db *gorm.DB, id uuid.UUID, update CategoryCreate) (Category, error) {
	if strings.TrimSpace(update.Name) == "" {
		return Category{}, missing("name")
	}

	category, err := FindCategory(db, id)
	if err != nil {
		return Category{}, err
	}

	category.CategoryCreate = update
	err = db.Model(&category).Select("Name", "Currency").Updates(&category).Error
	return category, err
}

// DeleteCategory deletes a category together with its property
// information, committee members, units and budgets. Ledger entries of
// the category are kept and detached. It returns the number of detached
// entries.
func DeleteCategory(db *gorm.DB, id uuid.UUID) (int64, error) {
	var detached int64

	err := db.Transaction(func(tx *gorm.DB) error {
		var category Category
		err := tx.First(&category, "id = ?", id).Error
		if err != nil {
			return err
		}

		detached, err = DetachCategory(tx, id)
		if err != nil {
			return err
		}

		err = tx.Where("category_id = ?", id).Delete(&PropertyInformation{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("category_id = ?", id).Delete(&CommitteeMember{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("category_id = ?", id).Delete(&Unit{}).Error
		if err != nil {
			return err
		}

		err = deleteCategoryBudgets(tx, id)
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})

	return detached, err
}
