package validator

import (
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"

	"hotelreservation/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}

	errs := make(map[string]string)
	for _, e := range verrs {
		errs[e.Field()] = e.Tag()
	}
	return errs
}

// Check returns the first failing field as a *domain.ValidationError.
func Check(v interface{}) error {
	errs := Validate(v)
	if len(errs) == 0 {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return domain.NewValidationError(fields[0], "failed on '"+errs[fields[0]]+"'")
}
