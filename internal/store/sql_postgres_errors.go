// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells a repository which domain error a failed statement maps to.
type ErrorClassification int

const (
	// Unclassified is the default for unrecognised errors. The repository
	// returns them wrapped, without a domain meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation means the row clashes with a UNIQUE constraint
	// (a duplicate employee_id).
	UniqueViolation

	// SchemaViolation means the row does not satisfy the table schema:
	// a NOT NULL or CHECK constraint, or a value of the wrong type or format.
	SchemaViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to a [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - 23505 unique_violation → [UniqueViolation]
//   - 23502 not_null_violation, 23514 check_violation → [SchemaViolation]
//   - Class 22 data exceptions on user input (invalid datetime format,
//     datetime field overflow, invalid text representation, numeric value
//     out of range, null value not allowed) → [SchemaViolation]
//
// Any code not listed above is [Unclassified].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 23: integrity constraint violations
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation:
		return SchemaViolation

	// Class 22: data exceptions
	case pgerrcode.InvalidDatetimeFormat,
		pgerrcode.DatetimeFieldOverflow,
		pgerrcode.InvalidTextRepresentation,
		pgerrcode.NumericValueOutOfRange,
		pgerrcode.NullValueNotAllowedDataException:
		return SchemaViolation
	}

	return Unclassified
}
