package common

import (
	"database/sql"
	"errors"
)

var (
	ErrNoRowsAffected        = errors.New("no rows affected")
	ErrValidation            = errors.New("validation failed")
	ErrDataNotFound          = errors.New("data not found")
	ErrDataExist             = errors.New("data exist")
	ErrUnableToCreate        = errors.New("unable to create data")
	ErrInternalServerError   = errors.New("internal server error")
	ErrInvalidFormatDate     = errors.New("invalid format date")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrNegativeValue         = errors.New("value must not be negative")
	ErrInvalidPhoneNumber    = errors.New("invalid phone number")
	ErrMissingAmount         = errors.New("missing amount")
	ErrMissingBalance        = errors.New("missing balance")
	ErrMissingReference      = errors.New("missing transaction reference")
	ErrMissingBody           = errors.New("missing message body")
	ErrSameSenderReceiver    = errors.New("sender and receiver resolve to the same user")
	ErrUncategorized         = errors.New("uncategorized")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrDataTrxDuplicate      = errors.New("duplicate transaction found by reference")
	ErrNoRows                = sql.ErrNoRows
)
