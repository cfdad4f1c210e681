package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - заявка, комната или участник не существует
	ErrNotFound = errors.New("not found")
	// ErrConflict - заявка уже закреплена или находится в неподходящем состоянии
	ErrConflict = errors.New("conflict")
	// ErrValidation - некорректные входные данные
	ErrValidation = errors.New("validation failed")
)

// NewValidationError оборачивает ErrValidation с пояснением
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}
