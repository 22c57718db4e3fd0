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

var (
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	dateRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
)

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

type AppointmentValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewAppointmentValidator(log *logger.Logger) *AppointmentValidator {
	v := validator.New()

	if err := v.RegisterValidation("hhmm_time", validateHHMMTime); err != nil {
		log.Fatal("Failed to register 'hhmm_time' validator",
			"error", err,
		)
	}
	if err := v.RegisterValidation("ymd_date", validateYMDDate); err != nil {
		log.Fatal("Failed to register 'ymd_date' validator",
			"error", err,
		)
	}

	log.Info("Appointment validator initialized successfully")

	return &AppointmentValidator{
		validate: v,
		logger:   log,
	}
}

func validateHHMMTime(fl validator.FieldLevel) bool {
	return timeRegex.MatchString(fl.Field().String())
}

func validateYMDDate(fl validator.FieldLevel) bool {
	return dateRegex.MatchString(fl.Field().String())
}

func (v *AppointmentValidator) Validate(appt *model.Appointment) error {
	if err := v.validate.Struct(appt); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	start, err := schedule.MinutesOfDay(appt.StartTime)
	if err != nil {
		return ValidationErrors{
			ValidationError{
				Field:   "StartTime",
				Message: "start_time must be in HH:MM format",
			},
		}
	}

	if start+appt.DurationMin > 24*60 {
		return ValidationErrors{
			ValidationError{
				Field:   "DurationMin",
				Message: "appointment must end by midnight",
			},
		}
	}

	return nil
}

func (v *AppointmentValidator) ValidateUpdate(update *model.AppointmentUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return nil
}

func (v *AppointmentValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
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
		case "e164":
			message = fmt.Sprintf("%s must be in E.164 format (e.g., +972501234567)", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "hhmm_time":
			message = fmt.Sprintf("%s must be a time in HH:MM format", err.Field())
		case "ymd_date":
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
