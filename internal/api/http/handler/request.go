package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

type addUserRequest struct {
	Name string `json:"name" validate:"required,max=256"`
}

type addUserWithIDRequest struct {
	Name string `json:"name" validate:"required,max=256"`
	ID   *int   `json:"id" validate:"required"`
}

type userRequest struct {
	ID *int `json:"id" validate:"required"`
}

type friendRequest struct {
	A *int `json:"a" validate:"required"`
	B *int `json:"b" validate:"required"`
}

type interestsRequest struct {
	ID        *int    `json:"id" validate:"required"`
	Interests tagList `json:"interests"`
}

type snapshotRequest struct {
	Path string `json:"path" validate:"omitempty,max=1024"`
}

// tagList accepts either a comma-separated string or an array of strings and
// holds the comma-joined form.
type tagList string

func (t *tagList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = tagList(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("interests must be a string or an array of strings")
	}
	*t = tagList(strings.Join(list, ","))
	return nil
}

func (h *Network) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("validation error: %s", formatValidationError(err))
	}
	return nil
}

func formatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, e.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

func intParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}
