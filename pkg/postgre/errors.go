package postgre

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrInvalidUUID is returned when an identifier is not a valid UUID.
var ErrInvalidUUID = fmt.Errorf("invalid UUID format")

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation. The store surfaces this outcome separately from generic errors
// so callers can treat insert races as duplicates rather than failures.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
