package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

// Postgres SQLSTATE codes the adapters react to
const (
	pqUniqueViolation      = "23505"
	pqForeignKeyViolation  = "23503"
	pqCheckViolation       = "23514"
	pqInvalidTextRepr      = "22P02"
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

// translateError maps driver errors onto application errors. Errors that
// already are application errors pass through unchanged.
func translateError(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return apperrors.NewInternalError(message, err)
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		if pqErr.Table == "ranks" || strings.HasPrefix(pqErr.Constraint, "ranks_") {
			return apperrors.NewDuplicateRankError()
		}
		return apperrors.NewConflictError(apperrors.CodeDuplicateSlug, "an entry with this slug already exists")
	case pqForeignKeyViolation:
		return apperrors.NewNotFoundError("referenced " + referencedEntity(pqErr.Constraint) + " does not exist")
	case pqCheckViolation:
		return apperrors.NewValidationError(checkCode(pqErr.Constraint), "value violates constraint "+pqErr.Constraint)
	case pqInvalidTextRepr:
		return apperrors.NewNotFoundError("malformed identifier")
	}

	return apperrors.NewInternalError(message, err)
}

// isRetryable reports whether a transaction failed only because it raced another one
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqSerializationFailure || pqErr.Code == pqDeadlockDetected
}

func referencedEntity(constraint string) string {
	switch {
	case strings.Contains(constraint, "hospital"):
		return "hospital"
	case strings.Contains(constraint, "service"):
		return "service"
	case strings.Contains(constraint, "category"):
		return "category"
	case strings.Contains(constraint, "author"):
		return "author"
	}
	return "entity"
}

func checkCode(constraint string) string {
	switch {
	case strings.HasSuffix(constraint, "_target_check"):
		return apperrors.CodeNeitherSet
	case strings.HasSuffix(constraint, "_value_check"):
		return apperrors.CodeOutOfRange
	case strings.HasSuffix(constraint, "_price_mode_check"):
		return apperrors.CodeExclusivityViolation
	case strings.HasSuffix(constraint, "_bounds_check"):
		return apperrors.CodeBoundsViolation
	}
	return apperrors.CodeInvalidInput
}

// likePattern builds an ILIKE pattern matching value as a plain substring
func likePattern(value string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(value) + "%"
}
