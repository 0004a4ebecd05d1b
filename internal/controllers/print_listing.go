package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/internal/report"
	ez_uuid "github.com/hoa-ledger/backend/internal/uuid"
)

// listingScope resolves the optional category of a listing report. Without
// a category, the listing covers all categories and has no header.
func listingScope(c *gin.Context) (*uuid.UUID, report.Header, error) {
	var query QueryListing
	err := httputil.BindQuery(c, &query)
	if err != nil {
		return nil, report.Header{}, err
	}

	if query.CategoryID == ez_uuid.Nil {
		return nil, report.Header{}, nil
	}

	category, header, err := reportHeader(c, query.CategoryID)
	if err != nil {
		return nil, report.Header{}, err
	}

	return &category.ID, header, nil
}

// printListing renders a listing, an empty listing is not found.
func printListing(c *gin.Context, name, filename, title string, header report.Header, listing *report.Listing) {
	if len(listing.Rows) == 0 {
		printFail(c, errNothingToPrint)
		return
	}

	render(c, name, filename, report.Document{
		Title:   title,
		Header:  header,
		Listing: listing,
	})
}

// @Summary		Property information listing
// @Description	Renders a list of all property information, or that of a category
// @Tags			Reports
// @Produce		application/pdf
// @Success		200
// @Failure		400			{string}	string
// @Failure		404			{string}	string
// @Failure		500			{string}	string
// @Param			categoryId	query		string	false	"ID of the category"
// @Router			/print/propertyinformation [get]
func PrintPropertyInformation(c *gin.Context) {
	categoryID, header, err := listingScope(c)
	if err != nil {
		printFail(c, err)
		return
	}

	properties, err := models.FindPropertyInformation(models.DB, categoryID)
	if err != nil {
		printFail(c, err)
		return
	}

	printListing(c, "propertyinformation", "properties.pdf", "Property Details", header, report.PropertyListing(properties))
}

// @Summary		Committee listing
// @Description	Renders a list of all committee members, or those of a category
// @Tags			Reports
// @Produce		application/pdf
// @Success		200
// @Failure		400			{string}	string
// @Failure		404			{string}	string
// @Failure		500			{string}	string
// @Param			categoryId	query		string	false	"ID of the category"
// @Router			/print/commiti [get]
func PrintCommittee(c *gin.Context) {
	categoryID, header, err := listingScope(c)
	if err != nil {
		printFail(c, err)
		return
	}

	members, err := models.FindCommitteeMembers(models.DB, categoryID)
	if err != nil {
		printFail(c, err)
		return
	}

	printListing(c, "committee", "property_committee.pdf", "Property Committee Details", header, report.CommitteeListing(members))
}

// @Summary		Unit listing
// @Description	Renders a list of all units, or those of a category
// @Tags			Reports
// @Produce		application/pdf
// @Success		200
// @Failure		400			{string}	string
// @Failure		404			{string}	string
// @Failure		500			{string}	string
// @Param			categoryId	query		string	false	"ID of the category"
// @Router			/print/units [get]
func PrintUnits(c *gin.Context) {
	categoryID, header, err := listingScope(c)
	if err != nil {
		printFail(c, err)
		return
	}

	units, err := models.FindUnits(models.DB, categoryID)
	if err != nil {
		printFail(c, err)
		return
	}

	printListing(c, "units", "units.pdf", "Units Details", header, report.UnitListing(units))
}

// @Summary		Owner listing
// @Description	Renders a list of all owners, or those of a category
// @Tags			Reports
// @Produce		application/pdf
// @Success		200
// @Failure		400			{string}	string
// @Failure		404			{string}	string
// @Failure		500			{string}	string
// @Param			categoryId	query		string	false	"ID of the category"
// @Router			/print/owner [get]
func PrintOwners(c *gin.Context) {
	categoryID, header, err := listingScope(c)
	if err != nil {
		printFail(c, err)
		return
	}

	owners, err := models.FindLedgerEntries(models.DB, models.KindIncome, categoryID)
	if err != nil {
		printFail(c, err)
		return
	}

	printListing(c, "owners", "owners.pdf", "Owners Details", header, report.OwnerListing(owners))
}
