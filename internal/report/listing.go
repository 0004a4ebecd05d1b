package report

import (
	"strconv"
	"strings"

	"github.com/hoa-ledger/backend/internal/models"
)

// PropertyListing lists property information, one row per property.
func PropertyListing(properties []models.PropertyInformation) *Listing {
	l := &Listing{Columns: []string{"Sr No.", "Property Name", "Address", "Ownership Title", "Units"}, Rows: [][]string{}}
	for i, p := range properties {
		address := strings.TrimSpace(strings.Join([]string{p.Address, p.Location}, " "))
		l.Rows = append(l.Rows, []string{strconv.Itoa(i + 1), p.Name, address, p.OwnerTitle, p.NumberOfUnits})
	}
	return l
}

// CommitteeListing lists committee members in the order they were added.
func CommitteeListing(members []models.CommitteeMember) *Listing {
	l := &Listing{Columns: []string{"Order", "Full Name", "Position", "Phone", "Email"}, Rows: [][]string{}}
	for i, m := range members {
		l.Rows = append(l.Rows, []string{strconv.Itoa(i + 1), m.Name, m.Position, m.Phone, m.Email})
	}
	return l
}

// UnitListing lists units with their monthly fee.
func UnitListing(units []models.Unit) *Listing {
	l := &Listing{Columns: []string{"Unit Code", "Description", "Monthly Fees"}, Rows: [][]string{}}
	for _, u := range units {
		l.Rows = append(l.Rows, []string{u.UnitCode, u.Type, strings.TrimSpace(u.Fee.StringFixed(2) + " " + u.Currency)})
	}
	return l
}

// OwnerListing lists the owners of income entries.
func OwnerListing(entries []models.LedgerEntry) *Listing {
	l := &Listing{Columns: []string{"Name", "Email", "Unit", "Monthly Contribution"}, Rows: [][]string{}}
	for _, e := range entries {
		if e.Kind != models.KindIncome {
			continue
		}
		l.Rows = append(l.Rows, []string{e.Name, e.Email, e.Unit, strings.TrimSpace(e.Contribution.StringFixed(2) + " " + e.Currency)})
	}
	return l
}
