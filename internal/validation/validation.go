// Package validation holds the per-entity input contracts. Each input type
// carries struct tags for the baseline rules and a Validate method adding the
// refinements tags cannot express (password confirmation, conditional
// requireds by role). Failures come back as a field-keyed error map and never
// travel past the action boundary as panics.
package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

var validate = newValidator()

// field errors are keyed by the wire (json) name, not the Go field name
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldErrors maps a field name to the reasons it failed.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, reason string) {
	fe[field] = append(fe[field], reason)
}

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// Details flattens the map into the wire error shape, fields in stable order.
func (fe FieldErrors) Details() []models.ValidationErrorDetail {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var out []models.ValidationErrorDetail
	for _, f := range fields {
		for _, reason := range fe[f] {
			out = append(out, models.ValidationErrorDetail{Field: f, Reason: reason})
		}
	}
	return out
}

// run executes tag validation and translates failures into readable reasons
// keyed by the lower-cased field name.
func run(input any) FieldErrors {
	fe := FieldErrors{}
	err := validate.Struct(input)
	if err == nil {
		return fe
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fe.Add("_", "invalid input")
		return fe
	}
	for _, v := range verrs {
		fe.Add(strings.ToLower(v.Field()), reason(v))
	}
	return fe
}

func reason(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", v.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", v.Param())
	case "url":
		return "must be a valid URL"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", v.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", v.Param())
	}
	return "is invalid"
}
