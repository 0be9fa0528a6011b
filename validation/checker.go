package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"salonbook-backend/apperrors"
	"salonbook-backend/utils"
)

// Checker validates input structs against their schemas and reports every
// violated field, keyed by form field name.
type Checker struct {
	validate *validator.Validate
}

func NewChecker() *Checker {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseClock(fl.Field().String())
		return err == nil
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return utils.ValidatePhone(fl.Field().String())
	})

	v.RegisterStructValidation(scheduleTimeRange, ScheduleInput{})

	return &Checker{validate: v}
}

// Check returns nil for valid input, or a validation AppError whose field
// map contains every violated field.
func (c *Checker) Check(input any) error {
	err := c.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Storage("validate input", err)
	}

	fields := apperrors.FieldErrors{}
	for _, fe := range verrs {
		fields.Add(fe.Field(), messageFor(fe))
	}
	return apperrors.Validation(fields)
}

// The cross-field rule for schedules: only fires once both times parse, so
// format errors are not doubled up.
func scheduleTimeRange(sl validator.StructLevel) {
	in := sl.Current().Interface().(ScheduleInput)
	start, errStart := utils.ParseClock(in.StartTime)
	end, errEnd := utils.ParseClock(in.EndTime)
	if errStart != nil || errEnd != nil {
		return
	}
	if start >= end {
		sl.ReportError(in.EndTime, "end_time", "EndTime", "timegt", "")
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	case "uuid":
		return "must be a valid identifier"
	case "hhmm":
		return "must be a time in HH:MM format"
	case "timegt":
		return "must be later than start time"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "eqfield":
		return "does not match"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return "must be greater than zero"
		}
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return "must be zero or greater"
		}
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}
