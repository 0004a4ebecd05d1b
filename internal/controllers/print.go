package controllers

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/metrics"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/internal/report"
	"github.com/hoa-ledger/backend/internal/types"
	ez_uuid "github.com/hoa-ledger/backend/internal/uuid"
	"github.com/rs/zerolog/log"
)

// Renderer renders all reports.
var Renderer report.Renderer = report.PDFRenderer{}

// RegisterPrintRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterPrintRoutes(r *gin.RouterGroup) {
	r.GET("/generate-pdf", GenerateMonthReport)
	r.GET("/generate-pdfYear", GenerateYearReport)
	r.GET("/generate-pdf-owner", GenerateOwnerReport)

	r.GET("/propertyinformation", PrintPropertyInformation)
	r.GET("/commiti", PrintCommittee)
	r.GET("/units", PrintUnits)
	r.GET("/owner", PrintOwners)
}

// @Summary		Monthly report
// @Description	Renders the payments of all owners of a category for one month of the current year
// @Tags			Reports
// @Produce		application/pdf
// @Success		200
// @Failure		400			{string}	string
// @Failure		404			{string}	string
// @Failure		500			{string}	string
// @Param			categoryId	query		string	true	"ID of the category"
// @Param			month		query		string	true	"Month name, number or YYYY-MM"
// @Router			/print/generate-pdf [get]
func GenerateMonthReport(c *gin.Context) {
	var query QueryPrint
	err := httputil.BindQuery(c, &query)
	if err != nil {
		printFail(c, err)
		return
	}

	if query.Month == "" {
		printFail(c, errMonthNotSet)
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		printFail(c, err)
		return
	}

	category, header, err := reportHeader(c, query.CategoryID)
	if err != nil {
		printFail(c, err)
		return
	}

	entries, err := models.FindLedgerEntries(models.DB, models.KindIncome, &category.ID)
	if err != nil {
		printFail(c, err)
		return
	}

	year := models.DB.NowFunc().Year()
	doc := report.Document{
		Title:    fmt.Sprintf("Payment Details for %s %d", month, year),
		Subtitle: category.Name,
		Currency: category.EffectiveCurrency(),
		Header:   header,
		Table:    report.Month(report.CreatedIn(entries, year), month),
	}

	render(c, "month", fmt.Sprintf("payments-%s-%d.pdf", strings.ToLower(month.String()), year), doc)
}

// @Summary		Year to date report
// @Description	Renders the payments of all owners of a category from January through the current month
// @Tags			Reports
// @Produce		application/pdf
// @Success		200
// @Failure		400			{string}	string
// @Failure		404			{string}	string
// @Failure		500			{string}	string
// @Param			categoryId	query		string	true	"ID of the category"
// @Router			/print/generate-pdfYear [get]
func GenerateYearReport(c *gin.Context) {
	var query QueryPrint
	err := httputil.BindQuery(c, &query)
	if err != nil {
		printFail(c, err)
		return
	}

	category, header, err := reportHeader(c, query.CategoryID)
	if err != nil {
		printFail(c, err)
		return
	}

	entries, err := models.FindLedgerEntries(models.DB, models.KindIncome, &category.ID)
	if err != nil {
		printFail(c, err)
		return
	}

	now := models.DB.NowFunc()
	doc := report.Document{
		Title:    fmt.Sprintf("Payment Details January to %s %d", types.MonthOf(now), now.Year()),
		Subtitle: category.Name,
		Currency: category.EffectiveCurrency(),
		Header:   header,
		Table:    report.YearToDate(report.CreatedIn(entries, now.Year()), now.Month()),
	}

	render(c, "year", fmt.Sprintf("payments-%d.pdf", now.Year()), doc)
}

// @Summary		Owner report
// @Description	Renders the payments of one owner for all months of the year, optionally signed by a committee member
// @Tags			Reports
// @Produce		application/pdf
// @Success		200
// @Failure		400			{string}	string
// @Failure		404			{string}	string
// @Failure		500			{string}	string
// @Param			categoryId	query		string	true	"ID of the category"
// @Param			ownerId		query		string	true	"ID of the income entry"
// @Param			committeeId	query		string	false	"ID of the signing committee member"
// @Router			/print/generate-pdf-owner [get]
func GenerateOwnerReport(c *gin.Context) {
	var query QueryPrint
	err := httputil.BindQuery(c, &query)
	if err != nil {
		printFail(c, err)
		return
	}

	if query.OwnerID == ez_uuid.Nil {
		printFail(c, errOwnerIDNotSet)
		return
	}

	category, header, err := reportHeader(c, query.CategoryID)
	if err != nil {
		printFail(c, err)
		return
	}

	entry, err := models.FindLedgerEntry(models.DB, models.KindIncome, query.OwnerID.UUID)
	if err != nil {
		printFail(c, err)
		return
	}

	if entry.CategoryID == nil || *entry.CategoryID != category.ID {
		printFail(c, fmt.Errorf("%w owner in this category", models.ErrResourceNotFound))
		return
	}

	var signatory *report.Signatory
	if query.CommitteeID != ez_uuid.Nil {
		member, err := models.FindCommitteeMember(models.DB, query.CommitteeID.UUID)
		if err != nil {
			printFail(c, err)
			return
		}

		signatory = &report.Signatory{
			Name:     member.Name,
			Position: member.Position,
		}

		if member.Signature != nil {
			signatory.Signature = fetchImage(c, member.Signature.URL)
		}
	}

	currency := entry.Currency
	if currency == "" {
		currency = category.EffectiveCurrency()
	}

	year := models.DB.NowFunc().Year()
	doc := report.Document{
		Title:     fmt.Sprintf("Payment Details of %s for %d", entry.Name, year),
		Subtitle:  entry.Unit,
		Currency:  currency,
		Header:    header,
		Table:     report.Owner(entry),
		Signatory: signatory,
	}

	render(c, "owner", fmt.Sprintf("payments-%s-%d.pdf", entry.ID, year), doc)
}

// reportHeader loads the category and builds the report header from its
// property information.
func reportHeader(c *gin.Context, categoryID ez_uuid.UUID) (models.Category, report.Header, error) {
	if categoryID == ez_uuid.Nil {
		return models.Category{}, report.Header{}, errCategoryIDNotSet
	}

	category, err := models.FindCategory(models.DB, categoryID.UUID)
	if err != nil {
		return models.Category{}, report.Header{}, err
	}

	properties, err := models.FindPropertyInformation(models.DB, &category.ID)
	if err != nil {
		return models.Category{}, report.Header{}, err
	}

	header := report.Header{PropertyName: category.Name}
	if len(properties) > 0 {
		p := properties[0]
		header = report.Header{
			PropertyName: p.Name,
			Address:      strings.TrimSpace(strings.Join([]string{p.Address, p.Location}, " ")),
			OwnerTitle:   p.OwnerTitle,
		}

		if p.Logo != nil {
			header.Logo = fetchImage(c, p.Logo.URL)
		}
	}

	return category, header, nil
}

// render renders the document and sends it as attachment.
func render(c *gin.Context, name, filename string, doc report.Document) {
	var buf bytes.Buffer
	err := Renderer.Render(&buf, doc)
	metrics.ReportRendered(name, err)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Str("report", name).Err(err).Msg("Report")
		printFail(c, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// printFail aborts a report request with the error as plain text.
func printFail(c *gin.Context, err error) {
	c.Abort()
	c.String(status(err), err.Error())
}
