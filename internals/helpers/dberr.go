package helper

import (
	"errors"
	"strings"
)

type sqlStateErr interface {
	SQLState() string
	Error() string
}

// IsDuplicateKey reports a unique violation (SQLSTATE 23505). The substring
// fallback keeps it portable across drivers.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var se sqlStateErr
	if errors.As(err, &se) && se.SQLState() == "23505" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// IsForeignKeyViolation reports SQLSTATE 23503.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var se sqlStateErr
	if errors.As(err, &se) && se.SQLState() == "23503" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint") || strings.Contains(msg, "23503")
}
