package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

const maxPageSize = 100

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondWithError renders err as {"error", "code"}. Errors that are not
// AppErrors are logged and reported as internal.
func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternalError("internal server error", err)
	}

	status := apperrors.HTTPStatus(appErr)
	message := appErr.Message
	if status >= http.StatusInternalServerError {
		observability.LoggerFromContext(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		message = "internal server error"
	}

	respondWithJSON(w, status, map[string]string{
		"error": message,
		"code":  appErr.PublicCode(),
	})
}

func invalidInput(format string, args ...interface{}) error {
	return apperrors.NewValidationError(apperrors.CodeInvalidInput, fmt.Sprintf(format, args...))
}

// decodePayload reads a JSON body into dst and runs its validate tags
func decodePayload(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return invalidInput("invalid request payload")
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return invalidInput("field %q failed the %q rule", fieldErrs[0].Field(), fieldErrs[0].Tag())
		}
		return invalidInput("invalid request payload")
	}
	return nil
}

// pagination reads limit and offset. Without a limit the whole list is
// returned; an explicit one is capped at maxPageSize.
func pagination(r *http.Request) (limit, offset int, err error) {
	query := r.URL.Query()

	if value := query.Get("limit"); value != "" {
		limit, err = strconv.Atoi(value)
		if err != nil || limit < 1 {
			return 0, 0, invalidInput("limit must be a positive integer")
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}
	}

	if value := query.Get("offset"); value != "" {
		offset, err = strconv.Atoi(value)
		if err != nil || offset < 0 {
			return 0, 0, invalidInput("offset must be a non-negative integer")
		}
	}
	return limit, offset, nil
}

// optionalFloat parses a query parameter that may be absent
func optionalFloat(r *http.Request, name string) (*float64, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, invalidInput("%s must be a number", name)
	}
	return &parsed, nil
}

func optionalBool(r *http.Request, name string) (*bool, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, invalidInput("%s must be true or false", name)
	}
	return &parsed, nil
}
