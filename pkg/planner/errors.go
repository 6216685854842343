package planner

// ValidationError is a problem with the caller's input, found before any upstream call
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(message string) error {
	return &ValidationError{Message: message}
}
