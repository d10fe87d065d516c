package middleware

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

func writeError(w http.ResponseWriter, err *apperrors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperrors.HTTPStatus(err))
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": err.Message,
		"code":  err.PublicCode(),
	})
}
