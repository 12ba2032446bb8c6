package domain

// ValidationErr is returned when an input does not satisfy the use case rules.
type ValidationErr struct {
	message string
}

// NewValidationErr creates a new ValidationErr.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{message: message}
}

func (e *ValidationErr) Error() string {
	return e.message
}

// NotFoundErr is returned when the requested entity does not exist.
type NotFoundErr struct {
	message string
}

// NewNotFoundErr creates a new NotFoundErr.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{message: message}
}

func (e *NotFoundErr) Error() string {
	return e.message
}
