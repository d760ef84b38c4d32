package util

import (
	"database/sql"
)

// StringToNullString converts a string to sql.NullString.
// An empty string is treated as NULL.
func StringToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullStringToString unwraps a sql.NullString, mapping NULL to "".
func NullStringToString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// IntToNullInt64 converts an int to sql.NullInt64.
// Zero is treated as NULL.
func IntToNullInt64(i int) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(i), Valid: true}
}

// NullInt64ToInt unwraps a sql.NullInt64, mapping NULL to 0.
func NullInt64ToInt(ni sql.NullInt64) int {
	if !ni.Valid {
		return 0
	}
	return int(ni.Int64)
}
