// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// pgTypes is used to encode and decode PostgreSQL text arrays.
var pgTypes = pgtype.NewMap()

// StringList maps a PostgreSQL `text[]` column. A NULL array scans into an
// empty list and is serialized as [] rather than null.
type StringList []string

// Scan implements [sql.Scanner] by decoding the array literal returned by
// the driver.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := pgTypes.SQLScanner(&items).Scan(src); err != nil {
		return fmt.Errorf("error scanning text array: %w", err)
	}
	if items == nil {
		items = []string{}
	}

	*l = items
	return nil
}

// Value implements [driver.Valuer] by encoding the list as an array literal,
// e.g. {Drama,"Science Fiction"}.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}

	buf, err := pgTypes.Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, []string(l), nil)
	if err != nil {
		return nil, fmt.Errorf("error encoding text array: %w", err)
	}

	return string(buf), nil
}
