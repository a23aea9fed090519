package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidEmployee    = errors.New("invalid employee")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrInvalidQueryParams = errors.New("invalid query parameters")
	ErrInvalidCredentials = errors.New("invalid credentials data")
)
