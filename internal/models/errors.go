package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("not found or not authorized")
	ErrMissingOwner     = errors.New("ownerId required")
	ErrValidation       = errors.New("validation failed")
)
