package create_booking

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Ключи ошибок совпадают с JSON-именами полей формы
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("booking_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	return v
}

// IsValidEmail проверяет формат адреса: что-то@что-то.что-то без пробелов
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// normalizeRequest обрезает пробелы у текстовых полей формы
func normalizeRequest(req *Request) {
	req.Date = strings.TrimSpace(req.Date)
	req.TimeSlot = strings.TrimSpace(req.TimeSlot)
	req.UserName = strings.TrimSpace(req.UserName)
	req.UserEmail = strings.TrimSpace(req.UserEmail)
}

// validateForm проверяет заполненность полей формы и формат имени и email
func validateForm(req *Request) domain.FieldErrors {
	errs := domain.FieldErrors{}

	err := validate.Struct(req)
	if err == nil {
		return errs
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs.Add(domain.FieldSubmit, MessageSaveFailed)
		return errs
	}
	for _, fe := range validationErrors {
		errs.Add(fe.Field(), fieldMessage(fe))
	}
	return errs
}

// validateDate проверяет окно бронирования (сегодня .. сегодня + 30 дней)
func validateDate(date string, now time.Time, errs domain.FieldErrors) bool {
	if _, exists := errs[domain.FieldDate]; exists {
		return false
	}
	if _, err := availability.ValidateDate(date, now); err != nil {
		errs.Add(domain.FieldDate, availability.Message(err))
		return false
	}
	return true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case domain.FieldDate:
		return availability.MessageDateRequired
	case domain.FieldTimeSlot:
		return availability.MessageTimeRequired
	case domain.FieldUserName:
		if fe.Tag() == "min" {
			return "Name must be at least 2 characters long"
		}
		return "Please enter your name"
	case domain.FieldUserEmail:
		if fe.Tag() == "required" {
			return "Please enter your email"
		}
		return "Please enter a valid email address"
	default:
		return "Invalid " + fe.Field()
	}
}

// rejectReason метка метрики для первой ошибки формы
func rejectReason(errs domain.FieldErrors) string {
	switch {
	case errs[domain.FieldTimeSlot] == availability.MessageSlotNotAvailable:
		return "slot_not_available"
	case errs[domain.FieldTimeSlot] == availability.MessageOutsideOperatingHours:
		return "outside_operating_hours"
	case errs[domain.FieldDate] != "":
		return "invalid_date"
	default:
		return "invalid_form"
	}
}
