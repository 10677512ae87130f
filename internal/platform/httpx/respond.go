package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// detailBody is the JSON envelope for every error response.
type detailBody struct {
	Detail any `json:"detail"`
}

// ValidationIssue describes one violated field in a request body or path.
type ValidationIssue struct {
	Loc   []any  `json:"loc"`
	Msg   string `json:"msg"`
	Type  string `json:"type"`
	Input any    `json:"input"`
}

// DecodeError reports a request body that could not be decoded at all,
// including bodies carrying unknown fields.
type DecodeError struct {
	cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return e.cause.Error()
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// DecodeJSON decodes a JSON request body into target. Unknown fields are
// rejected, not dropped.
func DecodeJSON(r *http.Request, target any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return &DecodeError{cause: err}
	}
	return nil
}

// NewValidator returns a validator that reports struct fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RespondError is the single dispatch point translating errors into JSON
// responses. Application errors render as {"detail": message} with their fixed
// status and headers; validation and decode failures render the 422 issue list.
// Anything else is a fault: a bare 500 with the default message.
func RespondError(w http.ResponseWriter, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		for key, values := range appErr.Headers {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		JSON(w, appErr.StatusCode, detailBody{Detail: appErr.Message})
		return
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		issues := make([]ValidationIssue, len(fieldErrs))
		for i, fe := range fieldErrs {
			issues[i] = ValidationIssue{
				Loc:   []any{"body", fe.Field()},
				Msg:   validationMessage(fe),
				Type:  fe.Tag(),
				Input: fe.Value(),
			}
		}
		RespondValidation(w, issues...)
		return
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		issue := ValidationIssue{
			Loc:  []any{"body"},
			Msg:  decodeErr.Error(),
			Type: "json_invalid",
		}
		if strings.HasPrefix(decodeErr.Error(), "json: unknown field") {
			issue.Type = "extra_forbidden"
		}
		RespondValidation(w, issue)
		return
	}

	JSON(w, http.StatusInternalServerError, detailBody{Detail: "Internal Server Error"})
}

// RespondValidation sends a 422 response listing the given issues.
func RespondValidation(w http.ResponseWriter, issues ...ValidationIssue) {
	JSON(w, http.StatusUnprocessableEntity, detailBody{Detail: issues})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "value is not a valid email address"
	case "max":
		return fmt.Sprintf("value must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}
