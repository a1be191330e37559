package service

// ValidationError is a client input problem, reported as a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Message == e.Message
}

var (
	ErrFileMissing    = &ValidationError{Message: "File is empty or not provided"}
	ErrFieldsRequired = &ValidationError{Message: "All fields are required"}
)
