package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// Validation sentinels wrap [ErrInvalidDataProvided] so callers can match
// either the umbrella error or the specific field failure.
var (
	ErrValidationEmptyEmail       = fmt.Errorf("%w: email must not be empty", ErrInvalidDataProvided)
	ErrValidationMalformedEmail   = fmt.Errorf("%w: email does not look like an email address", ErrInvalidDataProvided)
	ErrValidationEmptyPassword    = fmt.Errorf("%w: password must not be empty", ErrInvalidDataProvided)
	ErrValidationEmptyName        = fmt.Errorf("%w: name must not be empty", ErrInvalidDataProvided)
	ErrValidationEmptyTaskName    = fmt.Errorf("%w: task name must not be empty", ErrInvalidDataProvided)
	ErrValidationEmptyDescription = fmt.Errorf("%w: task description must not be empty", ErrInvalidDataProvided)
	ErrValidationNoDueDate        = fmt.Errorf("%w: due date must be set", ErrInvalidDataProvided)
	ErrValidationBadProgress      = fmt.Errorf("%w: progress must be one of the three buckets", ErrInvalidDataProvided)
)
