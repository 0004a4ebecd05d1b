package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/httperror"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/internal/report"
)

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, report.ErrRender) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrConflict) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// fail aborts the request with the error in the JSON envelope.
func fail(c *gin.Context, err error) {
	c.AbortWithStatusJSON(status(err), httperror.New(err))
}

var (
	errCategoryIDNotSet = errors.New("the categoryId query parameter must be set")
	errMonthNotSet      = errors.New("the month query parameter must be set")
	errOwnerIDNotSet    = errors.New("the ownerId query parameter must be set")
	errNothingToPrint   = fmt.Errorf("%w data to print for your query", models.ErrResourceNotFound)
)
