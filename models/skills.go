// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Skills is an ordered list of skill names. It is persisted as a JSON array
// (JSONB in PostgreSQL, TEXT in SQLite).
type Skills []string

// Value implements [driver.Valuer]. A nil list is stored as an empty array,
// never as NULL.
func (s Skills) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, fmt.Errorf("error marshaling skills: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (s *Skills) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		*s = Skills{}
		return nil
	default:
		return fmt.Errorf("unsupported skills column type %T", src)
	}

	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return fmt.Errorf("error unmarshaling skills: %w", err)
	}
	if skills == nil {
		skills = []string{}
	}

	*s = skills
	return nil
}

// MarshalJSON keeps an empty list as [] instead of null.
func (s Skills) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}
