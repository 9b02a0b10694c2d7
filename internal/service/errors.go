package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmailRequired     = errors.New("a valid email is required")
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidID         = errors.New("invalid document id")
	ErrDuplicateFavorite = errors.New("favorite already exists for this name and email")
)

// shared validator instance; Var-level checks only, the stored documents
// are free-form.
var validate = validator.New()
