package models

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrUnitCode is returned when no free unit code could be drawn.
var ErrUnitCode = errors.New("no free unit code could be generated, please try again")

const unitCodeAttempts = 10

// Unit is a unit type of a property with its monthly fee.
type Unit struct {
	DefaultModel
	Type       string          `json:"type" example:"Two bedroom apartment"`                                   // Description of the unit
	Fee        decimal.Decimal `json:"fee" gorm:"type:DECIMAL(20,8)" example:"120"`                            // Monthly fee
	Currency   string          `json:"currency" example:"USD"`                                                 // Currency of the fee
	UnitCode   string          `json:"unitCode" gorm:"uniqueIndex" example:"482913"`                           // Six digit code, generated on creation
	CategoryID *uuid.UUID      `json:"categoryId" gorm:"index" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the category
	Category   *Category       `json:"-"`
}

type UnitCreate struct {
	Type       string              `json:"type" example:"Two bedroom apartment"`                      // Description of the unit, required
	Fee        decimal.NullDecimal `json:"fee" swaggertype:"number" example:"120"`                    // Monthly fee, required
	Currency   string              `json:"currency" example:"USD"`                                    // Defaults to the currency of the category
	CategoryID *uuid.UUID          `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the category
}

func (u Unit) Self() string {
	return "Unit"
}

func (u *Unit) BeforeSave(_ *gorm.DB) error {
	u.Type = strings.TrimSpace(u.Type)
	u.Currency = strings.ToUpper(strings.TrimSpace(u.Currency))
	return nil
}

// CreateUnit creates a unit with a new unit code.
func CreateUnit(db *gorm.DB, create UnitCreate) (Unit, error) {
	var absent []string
	if strings.TrimSpace(create.Type) == "" {
		absent = append(absent, "type")
	}
	if !create.Fee.Valid {
		absent = append(absent, "fee")
	}
	if len(absent) > 0 {
		return Unit{}, missing(absent...)
	}

	currency := create.Currency
	if strings.TrimSpace(currency) == "" {
		var err error
		currency, err = categoryCurrency(db, create.CategoryID)
		if err != nil {
			return Unit{}, err
		}
	}

	code, err := freeUnitCode(db)
	if err != nil {
		return Unit{}, err
	}

	unit := Unit{
		Type:       create.Type,
		Fee:        create.Fee.Decimal,
		Currency:   currency,
		UnitCode:   code,
		CategoryID: create.CategoryID,
	}

	err = db.Omit("Category").Create(&unit).Error
	return unit, err
}

// freeUnitCode draws six digit codes until one is not used yet.
func freeUnitCode(db *gorm.DB) (string, error) {
	for range unitCodeAttempts {
		code := fmt.Sprintf("%06d", 100000+rand.IntN(900000))

		var count int64
		err := db.Model(&Unit{}).Where("unit_code = ?", code).Count(&count).Error
		if err != nil {
			return "", err
		}

		if count == 0 {
			return code, nil
		}
	}

	return "", ErrUnitCode
}

// FindUnit returns the unit with the ID.
func FindUnit(db *gorm.DB, id uuid.UUID) (Unit, error) {
	var unit Unit
	err := db.First(&unit, "id = ?", id).Error
	return unit, err
}

// FindUnits returns the units of a category, or all units if no
// category is given.
func FindUnits(db *gorm.DB, categoryID *uuid.UUID) ([]Unit, error) {
	query := db.Order("created_at ASC, id ASC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var units []Unit
	err := query.Find(&units).Error
	if err != nil {
		return nil, err
	}

	return units, nil
}

// DeleteUnit deletes a unit and returns it.
func DeleteUnit(db *gorm.DB, id uuid.UUID) (Unit, error) {
	unit, err := FindUnit(db, id)
	if err != nil {
		return Unit{}, err
	}

	return unit, db.Delete(&unit).Error
}
