package rest

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/rahuljangu01/NEXUS/pkg/errors"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.CodeOf(err) {
	case errors.CodeInvalidArgument:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeAlreadyExists:
		status = http.StatusConflict
	case errors.CodePermissionDenied:
		status = http.StatusForbidden
	case errors.CodeFailedPrecondition:
		status = http.StatusConflict
	case errors.CodeUnavailable:
		status = http.StatusServiceUnavailable
	}
	msg := "internal error"
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		msg = appErr.Message
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

// callerID reads the identity injected by the authenticating proxy.
func callerID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.Header.Get("X-User-ID"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func pathID(vars map[string]string, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(vars[key])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
