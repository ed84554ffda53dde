// Package validator holds the form field validators. Every validator is a pure function
// returning a Result; handlers compose them and render the field errors inline.
package validator

import (
	"fmt"
	"strings"

	"zipcode-web/internal/domain/model"
	"zipcode-web/pkg/msg"
)

// FieldError describes why one field was rejected.
type FieldError struct {
	Field   string
	Err     error
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// Result is either valid (no errors) or a list of per field errors.
type Result struct {
	Errors []FieldError
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// FieldErrors indexes the messages by field name, the shape the templates expect.
func (r Result) FieldErrors() map[string]string {
	errs := make(map[string]string, len(r.Errors))
	for _, fieldErr := range r.Errors {
		if _, exists := errs[fieldErr.Field]; !exists {
			errs[fieldErr.Field] = fieldErr.Message
		}
	}
	return errs
}

// Has reports whether field failed with target.
func (r Result) Has(field string, target error) bool {
	for _, fieldErr := range r.Errors {
		if fieldErr.Field == field && fieldErr.Err == target {
			return true
		}
	}
	return false
}

// Err returns nil for a valid result, otherwise a *ValidationError.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Result: r}
}

// ValidationError carries a failed Result through error returns.
// errors.Is matches the sentinel of any field.
type ValidationError struct {
	Result Result
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Result.Errors))
	for _, fieldErr := range e.Result.Errors {
		messages = append(messages, fieldErr.Error())
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Result.Errors))
	for _, fieldErr := range e.Result.Errors {
		errs = append(errs, fieldErr)
	}
	return errs
}

// Merge combines the errors of several results.
func Merge(results ...Result) Result {
	var merged Result
	for _, r := range results {
		merged.Errors = append(merged.Errors, r.Errors...)
	}
	return merged
}

// Required fails with ErrRequiredFieldMissing when value is empty or whitespace.
func Required(field string, value string) Result {
	if strings.TrimSpace(value) == "" {
		return Result{Errors: []FieldError{{
			Field:   field,
			Err:     model.ErrRequiredFieldMissing,
			Message: msg.GetMessage("form.error.required"),
		}}}
	}
	return Result{}
}

// StateAbbreviation requires value and checks it, upper cased, against the 50 US states.
func StateAbbreviation(field string, value string) Result {
	if r := Required(field, value); !r.Valid() {
		return r
	}
	if !IsStateAbbreviation(value) {
		return Result{Errors: []FieldError{{
			Field:   field,
			Err:     model.ErrInvalidStateAbbreviation,
			Message: msg.GetMessage("form.error.invalid-state", strings.TrimSpace(value)),
		}}}
	}
	return Result{}
}

// ZipLookup validates the home page form.
func ZipLookup(form model.ZipLookupForm) Result {
	return Merge(
		Required("name", form.Name),
		StateAbbreviation("state", form.State),
	)
}

// User validates the name entry form.
func User(form model.UserForm) Result {
	return Merge(
		Required("username", form.Username),
		Required("fullname", form.Fullname),
	)
}

// StateName validates the free text state name form.
func StateName(form model.StateNameForm) Result {
	return Required("state", form.State)
}
