package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bookwell/pkg/logger"
	"bookwell/pkg/model"
	"bookwell/pkg/schedule"

	"github.com/go-playground/validator/v10"
)

var timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type WorkingHoursValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewWorkingHoursValidator(log *logger.Logger) *WorkingHoursValidator {
	v := validator.New()

	if err := v.RegisterValidation("hhmm_time", validateHHMMTime); err != nil {
		log.Fatal("Failed to register 'hhmm_time' validator",
			"error", err,
		)
	}

	log.Info("Working hours validator initialized successfully")

	return &WorkingHoursValidator{
		validate: v,
		logger:   log,
	}
}

func validateHHMMTime(fl validator.FieldLevel) bool {
	return timeRegex.MatchString(fl.Field().String())
}

func (v *WorkingHoursValidator) Validate(hours *model.WorkingHours) error {
	if err := v.validate.Struct(hours); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if !hours.IsWorking {
		return nil
	}

	if hours.StartTime == "" || hours.EndTime == "" {
		return ValidationErrors{
			ValidationError{
				Field:   "StartTime",
				Message: "working days require start_time and end_time",
			},
		}
	}

	start, _ := schedule.MinutesOfDay(hours.StartTime)
	end, _ := schedule.MinutesOfDay(hours.EndTime)
	if start >= end {
		return ValidationErrors{
			ValidationError{
				Field:   "EndTime",
				Message: "end_time must be after start_time",
			},
		}
	}

	if hours.BreakStart != "" || hours.BreakEnd != "" {
		if !hours.HasBreak() {
			return ValidationErrors{
				ValidationError{
					Field:   "BreakStart",
					Message: "break_start and break_end must be set together",
				},
			}
		}
		breakStart, _ := schedule.MinutesOfDay(hours.BreakStart)
		breakEnd, _ := schedule.MinutesOfDay(hours.BreakEnd)
		if breakStart >= breakEnd {
			return ValidationErrors{
				ValidationError{
					Field:   "BreakEnd",
					Message: "break_end must be after break_start",
				},
			}
		}
		if breakStart < start || breakEnd > end {
			return ValidationErrors{
				ValidationError{
					Field:   "BreakStart",
					Message: "break must fall inside working hours",
				},
			}
		}
	}

	return nil
}

func (v *WorkingHoursValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		case "hhmm_time":
			message = fmt.Sprintf("%s must be a time in HH:MM format", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
