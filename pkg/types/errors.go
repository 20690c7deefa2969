package types

import (
	"errors"
	"fmt"
)

// Storage errors.
var (
	ErrKeyNotFound   = errors.New("storage key not found")
	ErrStorageClosed = errors.New("storage is closed")
	ErrInvalidKey    = errors.New("invalid storage key")
)

// Entity errors.
var (
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrInvalidWeekday  = errors.New("day of week must be 0 (Sunday) through 6 (Saturday)")
	ErrDuplicateMeal   = errors.New("meal id already logged")
	ErrNoActivePlan    = errors.New("no active diet plan")
)

// Validation field names reported in ValidationError.Field.
const (
	FieldTitle             = "title"
	FieldDescription       = "description"
	FieldIngredients       = "ingredients"
	FieldInstructions      = "instructions"
	FieldCalories          = "calories"
	FieldContent           = "content"
	FieldName              = "name"
	FieldDates             = "dates"
	FieldID                = "id"
	FieldType              = "type"
	FieldGoals             = "goals"
	FieldSponsoredProducts = "sponsoredProducts"
	FieldMeals             = "meals"
)

// ValidationError reports user input that breaks a domain rule. It never
// accompanies a state change.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is or wraps a ValidationError, and
// returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
