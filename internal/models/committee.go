package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommitteeMember is a member of the property committee. Members can
// sign reports.
type CommitteeMember struct {
	DefaultModel
	CommitteeMemberCreate
}

type CommitteeMemberCreate struct {
	Name       string     `json:"name" example:"Bob Miller"`                                              // Name of the member
	Position   string     `json:"position" example:"Treasurer"`                                           // Position in the committee
	Phone      string     `json:"phone" example:"+1 555 0100"`                                            // Phone number
	Email      string     `json:"email" example:"bob@example.com"`                                        // Email address
	Account    string     `json:"account" example:"DE02120300000000202051"`                               // Bank account
	Currency   string     `json:"currency" example:"USD"`                                                 // Currency of the account
	Signature  *Document  `json:"signature" gorm:"serializer:lenient"`                                    // Signature image printed on reports
	CategoryID *uuid.UUID `json:"categoryId" gorm:"index" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the category
	Category   *Category  `json:"-"`
}

func (m CommitteeMember) Self() string {
	return "Committee Member"
}

func (m *CommitteeMember) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Position = strings.TrimSpace(m.Position)
	m.Email = strings.TrimSpace(m.Email)
	return nil
}

func (c CommitteeMemberCreate) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"position", c.Position},
		{"phone", c.Phone},
		{"email", c.Email},
		{"account", c.Account},
		{"currency", c.Currency},
	}

	var absent []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			absent = append(absent, f.name)
		}
	}

	if len(absent) > 0 {
		return missing(absent...)
	}
	return nil
}

// CreateCommitteeMember creates a committee member.
func CreateCommitteeMember(db *gorm.DB, create CommitteeMemberCreate) (CommitteeMember, error) {
	if err := create.validate(); err != nil {
		return CommitteeMember{}, err
	}

	member := CommitteeMember{CommitteeMemberCreate: create}
	err := db.Omit("Category").Create(&member).Error
	return member, err
}

// FindCommitteeMember returns the committee member with the ID.
func FindCommitteeMember(db *gorm.DB, id uuid.UUID) (CommitteeMember, error) {
	var member CommitteeMember
	err := db.First(&member, "id = ?", id).Error
	return member, err
}

// FindCommitteeMembers returns the committee members of a category, or
// all committee members if no category is given.
func FindCommitteeMembers(db *gorm.DB, categoryID *uuid.UUID) ([]CommitteeMember, error) {
	query := db.Order("created_at ASC, id ASC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var members []CommitteeMember
	err := query.Find(&members).Error
	if err != nil {
		return nil, err
	}

	return members, nil
}

// UpdateCommitteeMember replaces all fields of a committee member except
// the category.
func UpdateCommitteeMember(db *gorm.DB, id uuid.UUID, update CommitteeMemberCreate) (CommitteeMember, error) {
	if err := update.validate(); err != nil {
		return CommitteeMember{}, err
	}

	member, err := FindCommitteeMember(db, id)
	if err != nil {
		return CommitteeMember{}, err
	}

	update.CategoryID = member.CategoryID
	member.CommitteeMemberCreate = update

	err = db.Model(&member).
		Select("Name", "Position", "Phone", "Email", "Account", "Currency", "Signature").
		Updates(&member).Error
	return member, err
}

// DeleteCommitteeMember deletes a committee member and returns it.
func DeleteCommitteeMember(db *gorm.DB, id uuid.UUID) (CommitteeMember, error) {
	member, err := FindCommitteeMember(db, id)
	if err != nil {
		return CommitteeMember{}, err
	}

	return member, db.Delete(&member).Error
}
