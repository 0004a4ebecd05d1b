package models

import (
	"errors"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrReferenceNotFound = errors.New("there is no resource for the ID you specified in the reference to another resource")
	ErrMissingFields     = errors.New("please provide all fields")
	ErrConflict          = errors.New("the resource was changed by another request in the meantime, please reload it and submit your change again")
	ErrInvalidStatus     = errors.New("the payment status must be one of 'normal', 'late paid' or 'pay in advance'")
	ErrPeriodEmpty       = errors.New("the period must not be empty")
)
