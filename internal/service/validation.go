package service

import (
	"strings"

	"github.com/MKhiriev/go-task-board/models"
)

// Boundary validation for the plain request structures. Checks are
// deliberately minimal: presence of required fields and a shallow
// looks-like-an-email test. Anything richer belongs to the form layer in
// front of the API.

func validateRegisterRequest(request models.RegisterRequest) error {
	if err := validateEmail(request.Email); err != nil {
		return err
	}
	if request.Password == "" {
		return ErrValidationEmptyPassword
	}
	if request.Name == "" {
		return ErrValidationEmptyName
	}

	return nil
}

func validateLoginRequest(request models.LoginRequest) error {
	if err := validateEmail(request.Email); err != nil {
		return err
	}
	if request.Password == "" {
		return ErrValidationEmptyPassword
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrValidationEmptyEmail
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrValidationMalformedEmail
	}

	return nil
}

func validateTaskInput(input models.TaskInput) error {
	if input.TaskName == "" {
		return ErrValidationEmptyTaskName
	}
	if input.TaskDescription == "" {
		return ErrValidationEmptyDescription
	}
	if input.DueDate.IsZero() {
		return ErrValidationNoDueDate
	}
	if !input.Progress.Valid() {
		return ErrValidationBadProgress
	}

	return nil
}
