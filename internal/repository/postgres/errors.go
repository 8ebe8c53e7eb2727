package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes inspected by the repositories.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

func pqCode(err error) string {
	var perr *pq.Error
	if errors.As(err, &perr) {
		return string(perr.Code)
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pqCode(err) == codeUniqueViolation
}

// isRetryable reports whether the whole transaction may be re-run after err.
func isRetryable(err error) bool {
	switch pqCode(err) {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	}
	return false
}
