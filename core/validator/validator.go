package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"meeting-planner/core/controller"

	playground "github.com/go-playground/validator/v10"
)

// ValidationResult collects field errors keyed by their JSON names.
type ValidationResult struct {
	Errors []controller.ValidationError `json:"errors"`
}

func (r *ValidationResult) HasError() bool {
	return r != nil && len(r.Errors) > 0
}

func (r *ValidationResult) Add(field, message string) {
	r.Errors = append(r.Errors, controller.NewValidationError(field, message))
}

var (
	once     sync.Once
	validate *playground.Validate
)

func engine() *playground.Validate {
	once.Do(func() {
		validate = playground.New(playground.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct runs the `validate` tags of s.
func Struct(s any) *ValidationResult {
	result := &ValidationResult{}

	err := engine().Struct(s)
	if err == nil {
		return result
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		result.Add("", err.Error())
		return result
	}
	for _, fe := range fieldErrs {
		result.Add(fieldPath(fe), message(fe))
	}
	return result
}

// fieldPath drops the top-level struct name: "CreateMeetingRequest.prefer_times[0].start_time"
// becomes "prefer_times[0].start_time".
func fieldPath(fe playground.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match layout %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
