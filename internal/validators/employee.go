// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-employee-service/models"
	"github.com/go-playground/validator/v10"
)

// EmployeeValidator implements the Validator interface for the request
// models of the employee API: EmployeeRequest, EmployeeUpdate,
// DepartmentFilter, SkillFilter and Credentials.
//
// Shape rules live in `validate` struct tags on the models. Optional field
// names restrict validation to those struct fields (Go field names, e.g.
// "Salary").
type EmployeeValidator struct {
	validate *validator.Validate
}

// NewEmployeeValidator constructs a new EmployeeValidator and returns it as
// the Validator interface. Reported field names are the JSON names.
func NewEmployeeValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &EmployeeValidator{validate: v}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms are accepted.
func (v *EmployeeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EmployeeRequest:
		return v.validateStruct(ctx, ErrInvalidEmployee, value, fields...)
	case *models.EmployeeRequest:
		return v.validateStruct(ctx, ErrInvalidEmployee, value, fields...)

	case models.EmployeeUpdate:
		return v.validateUpdate(value)
	case *models.EmployeeUpdate:
		return v.validateUpdate(*value)

	case models.DepartmentFilter:
		return v.validateStruct(ctx, ErrInvalidQueryParams, value, fields...)
	case *models.DepartmentFilter:
		return v.validateStruct(ctx, ErrInvalidQueryParams, value, fields...)

	case models.SkillFilter:
		return v.validateStruct(ctx, ErrInvalidQueryParams, value, fields...)
	case *models.SkillFilter:
		return v.validateStruct(ctx, ErrInvalidQueryParams, value, fields...)

	case models.Credentials:
		return v.validateStruct(ctx, ErrInvalidCredentials, value, fields...)
	case *models.Credentials:
		return v.validateStruct(ctx, ErrInvalidCredentials, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EmployeeValidator) validateStruct(ctx context.Context, sentinel error, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	return fmt.Errorf("%w: %s", sentinel, describe(validationErrors))
}

// validateUpdate only rejects an update with no fields: every supplied
// field is already typed by JSON decoding.
func (v *EmployeeValidator) validateUpdate(update models.EmployeeUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	return nil
}

func describe(validationErrors validator.ValidationErrors) string {
	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s: %s", fe.Field(), reason(fe)))
	}
	return strings.Join(problems, "; ")
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}
