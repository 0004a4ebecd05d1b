package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/metrics"
	"github.com/hoa-ledger/backend/internal/models"
)

// getLedgerEntries responds with all entries of the kind. If the route has
// a categoryId parameter, only entries of that category are listed.
func getLedgerEntries(c *gin.Context, kind models.LedgerKind) {
	var categoryID *uuid.UUID
	if c.Param("categoryId") != "" {
		var uri URICategoryID
		err := httputil.BindURI(c, &uri)
		if err != nil {
			fail(c, err)
			return
		}

		id := uri.CategoryID.UUID
		categoryID = &id
	}

	// Every parameter is bound into a string, so this will always succeed
	var filter QueryMatch
	_ = c.ShouldBindQuery(&filter)

	entries, err := models.FindLedgerEntries(models.DB, kind, categoryID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, LedgerEntryListResponse{
		Success:    true,
		Properties: newLedgerEntries(c, entries, filter.Match),
	})
}

// getLedgerEntry responds with the entry of the kind with the ID in the URI.
func getLedgerEntry(c *gin.Context, kind models.LedgerKind) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	entry, err := models.FindLedgerEntry(models.DB, kind, uri.ID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	data := newLedgerEntry(c, entry)
	c.JSON(http.StatusOK, LedgerEntryResponse{
		Success:  true,
		Property: &data,
	})
}

// deleteLedgerEntry deletes the entry of the kind with the ID in the URI
// and responds with the deleted entry.
func deleteLedgerEntry(c *gin.Context, kind models.LedgerKind, message string) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	entry, err := models.DeleteLedgerEntry(models.DB, kind, uri.ID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	metrics.LedgerWrite(string(kind), "deleted")

	data := newLedgerEntry(c, entry)
	c.JSON(http.StatusOK, LedgerEntryResponse{
		Success:  true,
		Message:  message,
		Property: &data,
	})
}

// respondLedgerEntry responds with a written entry and counts the write.
func respondLedgerEntry(c *gin.Context, code int, entry models.LedgerEntry, placement string, message string) {
	metrics.LedgerWrite(string(entry.Kind), placement)

	data := newLedgerEntry(c, entry)
	c.JSON(code, LedgerEntryResponse{
		Success:  true,
		Message:  message,
		Property: &data,
	})
}
