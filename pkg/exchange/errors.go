package exchange

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("invalid gift exchange input")

	// ErrNoAssignment is returned when no assignment satisfies the exclusion and restriction constraints.
	ErrNoAssignment = errors.New("no assignment combinations found")

	// ErrStepBudgetExceeded is returned when the search consumed Config.MaxSteps without an outcome.
	ErrStepBudgetExceeded = errors.New("search step budget exceeded")
)

// ValidationError lists every violated precondition found while validating an Input.
type ValidationError struct {
	Problems []string
}

func (err *ValidationError) Error() string {
	return "invalid gift exchange input:\n\t" + strings.Join(err.Problems, "\n\t")
}

func (err *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
