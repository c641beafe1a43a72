package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")
	ErrValidation = errors.New("validation failed")

	// * Business errors.
	ErrEmptyArticleList = errors.New("article creation data cannot be empty")
	ErrUnknownArticles  = errors.New("none of the requested articles exist")
	ErrOrderNotFound    = errors.New("order not found")
)

// Violation is one broken input rule.
type Violation struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError carries every rule a request violated.
type ValidationError struct {
	Request    string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation failed for %s: %s", e.Request, strings.Join(e.Messages(), ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return msgs
}
