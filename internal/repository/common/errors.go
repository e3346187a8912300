package common

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation — код ошибки postgres для нарушения уникального индекса.
const uniqueViolation = "23505"

// IsUniqueViolation сообщает, что запрос нарушил уникальный индекс.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
