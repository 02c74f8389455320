package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrValidation общая ошибка проверки формы, FieldErrors сопоставляется с ней через errors.Is
var ErrValidation = errors.New("validation failed")

// Поля формы бронирования, к которым привязываются сообщения об ошибках
const (
	FieldDate      = "date"
	FieldTimeSlot  = "timeSlot"
	FieldUserName  = "userName"
	FieldUserEmail = "userEmail"
	FieldSubmit    = "submit"
)

// FieldErrors сообщения об ошибках по полям формы. Показываются рядом с полем, не фатальны.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// Add запоминает первую ошибку поля, последующие для того же поля игнорируются
func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Empty true, если ошибок нет
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}
