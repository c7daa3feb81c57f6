package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

func renderStatus(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		io.WriteString(w, fmt.Sprintf("%d %s", code, http.StatusText(code))) //nolint:errcheck,gosec
	}
}

func renderNotFound(w http.ResponseWriter, r *http.Request) {
	renderStatus(http.StatusNotFound)(w, r)
}

// renderJSON writes v as a JSON response with the given status code.
func renderJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", "err", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// renderError maps a backend error onto an HTTP status. Timing and
// validation violations carry the error text verbatim so UIs can explain
// why; authorization failures say only "forbidden".
func renderError(w http.ResponseWriter, err error) {
	var code int
	switch {
	case errors.Is(err, proto.ErrHackathonNotFound),
		errors.Is(err, proto.ErrSubmissionNotFound),
		errors.Is(err, proto.ErrUserNotFound):
		code = http.StatusNotFound
	case errors.Is(err, proto.ErrForbidden):
		renderJSON(w, http.StatusForbidden, errorResponse{Error: proto.ErrForbidden.Error()})
		return
	case errors.Is(err, proto.ErrInvalidSchedule):
		code = http.StatusBadRequest
	case errors.Is(err, proto.ErrInvalidTransition),
		errors.Is(err, proto.ErrHackathonStarted),
		errors.Is(err, proto.ErrDuplicateFinalSubmission),
		errors.Is(err, proto.ErrUserExist),
		errors.Is(err, proto.ErrAlreadyFinal):
		code = http.StatusConflict
	case errors.Is(err, proto.ErrRegistrationClosed),
		errors.Is(err, proto.ErrSubmissionWindowNotOpen),
		errors.Is(err, proto.ErrSubmissionLocked),
		errors.Is(err, proto.ErrNotRegistered):
		code = http.StatusUnprocessableEntity
	default:
		log.Error("request failed", "err", err)
		renderJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	renderJSON(w, code, errorResponse{Error: err.Error()})
}
