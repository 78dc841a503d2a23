package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/friendgraph/internal/model"
)

// Error codes carried in the error envelope and in rejected mutations.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeDuplicateID  = "DUPLICATE_ID"
	CodeSelfLoop     = "SELF_LOOP"
	CodeInvalidInput = "INVALID_INPUT"
	CodeIOFailure    = "IO_FAILURE"
	CodeReadOnly     = "READ_ONLY"
	CodeInternal     = "INTERNAL"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Rejection is embedded into the data of a mutation the graph refused.
type Rejection struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func reject(err error) Rejection {
	if err == nil {
		return Rejection{}
	}
	return Rejection{Error: ErrorCode(err), Message: err.Error()}
}

// ErrorCode maps a domain error to its wire code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, model.ErrReadOnly):
		return CodeReadOnly
	case errors.Is(err, model.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, model.ErrDuplicateID):
		return CodeDuplicateID
	case errors.Is(err, model.ErrSelfLoop):
		return CodeSelfLoop
	case errors.Is(err, model.ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, model.ErrIO):
		return CodeIOFailure
	default:
		return CodeInternal
	}
}

func statusOf(code string) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeDuplicateID:
		return http.StatusConflict
	case CodeSelfLoop, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeReadOnly:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondJSON writes data inside a success envelope.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	write(w, status, Response{Success: true, Data: data})
}

// RespondError writes an error envelope.
func RespondError(w http.ResponseWriter, status int, code, message string) {
	write(w, status, Response{Success: false, Error: &ErrorInfo{Code: code, Message: message}})
}

// RespondDomainError writes err with the status matching its domain code.
// Internal errors are not exposed to the client.
func RespondDomainError(w http.ResponseWriter, err error) {
	code := ErrorCode(err)
	msg := err.Error()
	if code == CodeInternal {
		msg = "internal server error"
	}
	RespondError(w, statusOf(code), code, msg)
}

func write(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
