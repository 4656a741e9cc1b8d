package usecase

// DomainError is a business-rule failure the client can act on.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure. The client only ever sees a
// generic message; the real cause stays in the server logs.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// ValidationFailedError carries the full per-field validation report so the
// handler can build the 400 body without re-running the validator.
type ValidationFailedError struct {
	Validation *FormValidation
}

func (e *ValidationFailedError) Error() string {
	return "validation failed"
}

func AsValidationFailed(err error) (*ValidationFailedError, bool) {
	v, ok := err.(*ValidationFailedError)
	return v, ok
}
