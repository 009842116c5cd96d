package exchange

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// shape gathers the numeric properties of an Input that are checked through struct tags
type shape struct {
	MinParticipants int `validate:"gte=2"`
	MaxParticipants int `validate:"gtefield=MinParticipants"`
	Participants    int `validate:"gtefield=MinParticipants,ltefield=MaxParticipants"`
	HistoryLimit    int `validate:"gte=0"`
}

// Validate checks the preconditions the search relies on. Every violated condition is reported
// in a single *ValidationError, except for a missing or failing UniqueID function which stops
// the validation right away since no further check is meaningful without identifiers.
func Validate[P any, ID comparable](input Input[P, ID], config Config) error {
	problems := make([]string, 0)

	err := validate.Struct(shape{
		MinParticipants: config.MinParticipants,
		MaxParticipants: config.MaxParticipants,
		Participants:    len(input.Participants),
		HistoryLimit:    input.HistoryLimit,
	})
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		problems = append(problems, lo.Map(fieldErrors, func(fieldError validator.FieldError, _ int) string {
			return shapeProblem(fieldError, config)
		})...)
	} else if err != nil {
		return err
	}

	if input.UniqueID == nil {
		problems = append(problems, "a unique ID function must be provided")
		return &ValidationError{Problems: problems}
	}

	ids, err := probe(input.ids)
	if err != nil {
		problems = append(problems, fmt.Sprintf("unique ID function fails when getting IDs: %v", err))
		return &ValidationError{Problems: problems}
	}

	// IDs are compared with ==, pointer IDs by identity
	if len(lo.Uniq(ids)) != len(ids) {
		problems = append(problems, fmt.Sprintf("participants must be unique by ID, duplicated: %v", lo.FindDuplicates(ids)))
	}

	for i, record := range input.History {
		if record == nil {
			problems = append(problems, fmt.Sprintf("history record %d is nil", i))
		}
	}

	if len(input.Participants) >= 2 {
		giver, receiver := input.Participants[0], input.Participants[1]

		if input.Restriction != nil {
			if _, err := probe(func() bool { return input.Restriction(giver, receiver) }); err != nil {
				problems = append(problems, fmt.Sprintf("restriction function fails when running: %v", err))
			}
		}

		if input.Compatibility != nil {
			score, err := probe(func() float64 { return input.Compatibility(giver, receiver) })
			if err != nil {
				problems = append(problems, fmt.Sprintf("compatibility function fails when running: %v", err))
			} else if math.IsNaN(score) || score < 0 {
				problems = append(problems, fmt.Sprintf("compatibility function must return a non-negative number: %v", score))
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func shapeProblem(fieldError validator.FieldError, config Config) string {
	switch fieldError.Field() {
	case "MinParticipants":
		return fmt.Sprintf("minimum number of participants must be at least %v: %v", fieldError.Param(), fieldError.Value())
	case "MaxParticipants":
		return fmt.Sprintf("maximum number of participants (%v) must not be smaller than the minimum (%v)", fieldError.Value(), config.MinParticipants)
	case "Participants":
		if fieldError.Tag() == "gtefield" {
			return fmt.Sprintf("there must be at least %v participants: %v", config.MinParticipants, fieldError.Value())
		}
		return fmt.Sprintf("the max number of participants is %v: %v", config.MaxParticipants, fieldError.Value())
	case "HistoryLimit":
		return fmt.Sprintf("history limit must not be negative: %v", fieldError.Value())
	}
	return fieldError.Error()
}

// probe runs a caller supplied function, turning a panic into an error
func probe[T any](function func() T) (result T, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%v", recovered)
		}
	}()
	return function(), nil
}
