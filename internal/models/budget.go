package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget groups budget income and outcome entries of a category, e.g. for
// one fiscal year.
type Budget struct {
	DefaultModel
	Name       string     `json:"name" example:"Budget 2024"`                                             // Name of the budget
	Currency   string     `json:"currency" example:"USD"`                                                 // Copied from the category on creation
	CategoryID *uuid.UUID `json:"categoryId" gorm:"index" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the category
	Category   *Category  `json:"-"`
}

type BudgetCreate struct {
	Name       string     `json:"name" example:"Budget 2024"`                                // Name of the budget, required
	CategoryID *uuid.UUID `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the category, required
}

func (b Budget) Self() string {
	return "Budget"
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	return nil
}

// CreateBudget creates a budget for a category.
//
// Every owner of the category gets a budget income entry with an amount
// of zero in the new budget. It returns the budget and the number of
// seeded entries.
func CreateBudget(db *gorm.DB, create BudgetCreate) (Budget, int, error) {
	var absent []string
	if strings.TrimSpace(create.Name) == "" {
		absent = append(absent, "name")
	}
	if create.CategoryID == nil {
		absent = append(absent, "categoryId")
	}
	if len(absent) > 0 {
		return Budget{}, 0, missing(absent...)
	}

	var budget Budget
	var seeded int

	err := db.Transaction(func(tx *gorm.DB) error {
		currency, err := categoryCurrency(tx, create.CategoryID)
		if err != nil {
			return err
		}

		budget = Budget{
			Name:       create.Name,
			Currency:   currency,
			CategoryID: create.CategoryID,
		}

		err = tx.Omit("Category").Create(&budget).Error
		if err != nil {
			return err
		}

		owners, err := FindLedgerEntries(tx, KindIncome, create.CategoryID)
		if err != nil {
			return err
		}

		for _, owner := range owners {
			_, err := CreateBudgetIncome(tx, BudgetIncomeCreate{
				Name:       owner.Name,
				Amount:     decimal.NewNullDecimal(decimal.Zero),
				CategoryID: create.CategoryID,
				BudgetID:   &budget.ID,
			})
			if err != nil {
				return err
			}
		}
		seeded = len(owners)

		return nil
	})
	if err != nil {
		return Budget{}, 0, err
	}

	return budget, seeded, nil
}

// FindBudget returns the budget with the ID.
func FindBudget(db *gorm.DB, id uuid.UUID) (Budget, error) {
	var budget Budget
	err := db.First(&budget, "id = ?", id).Error
	return budget, err
}

// FindBudgets returns the budgets of a category.
func FindBudgets(db *gorm.DB, categoryID uuid.UUID) ([]Budget, error) {
	var budgets []Budget
	err := db.Where("category_id = ?", categoryID).Order("created_at ASC, id ASC").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// UpdateBudget renames a budget.
func UpdateBudget(db *gorm.DB, id uuid.UUID, name string) (Budget, error) {
	if strings.TrimSpace(name) == "" {
		return Budget{}, missing("name")
	}

	budget, err := FindBudget(db, id)
	if err != nil {
		return Budget{}, err
	}

	budget.Name = name
	err = db.Model(&budget).Select("Name").Updates(&budget).Error
	return budget, err
}

// DeleteBudget deletes a budget. Its entries are kept and detached from
// it. It returns the deleted budget and the number of detached entries.
func DeleteBudget(db *gorm.DB, id uuid.UUID) (Budget, int64, error) {
	var budget Budget
	var detached int64

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		budget, err = FindBudget(tx, id)
		if err != nil {
			return err
		}

		result := tx.Model(&LedgerEntry{}).Where("budget_id = ?", id).Update("budget_id", nil)
		if result.Error != nil {
			return result.Error
		}
		detached = result.RowsAffected

		return tx.Delete(&budget).Error
	})
	if err != nil {
		return Budget{}, 0, err
	}

	return budget, detached, nil
}

// deleteCategoryBudgets deletes all budgets of a category and detaches
// their entries.
func deleteCategoryBudgets(tx *gorm.DB, categoryID uuid.UUID) error {
	budgets := tx.Model(&Budget{}).Select("id").Where("category_id = ?", categoryID)

	err := tx.Model(&LedgerEntry{}).Where("budget_id IN (?)", budgets).Update("budget_id", nil).Error
	if err != nil {
		return err
	}

	return tx.Where("category_id = ?", categoryID).Delete(&Budget{}).Error
}
