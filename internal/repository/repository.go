package repository

import (
	"database/sql"
	"strconv"
)

// placeholder returns the numbered PostgreSQL placeholder for position n.
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// rawOrNil converts an empty raw JSON payload to nil so that JSONB columns
// receive NULL instead of a zero-length value.
func rawOrNil(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return raw
}

// requireRow converts a zero-rows-affected update into sql.ErrNoRows so that
// callers can treat "not found" and "not owned" uniformly.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
