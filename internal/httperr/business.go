package httperr

import "errors"

// BusinessError is an expected domain failure identified by a stable code.
// Handlers map codes to HTTP statuses; anything else is a 500.
type BusinessError struct {
	Code  string
	Cause error
}

func (e BusinessError) Error() string {
	if e.Cause != nil {
		return e.Code + ": " + e.Cause.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Cause
}

// Is matches any BusinessError carrying the same code.
func (e BusinessError) Is(target error) bool {
	var be BusinessError
	if errors.As(target, &be) {
		return be.Code == e.Code
	}
	return false
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// Wrap classifies cause under code, keeping it for logs.
func Wrap(code string, cause error) error {
	return BusinessError{Code: code, Cause: cause}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Code returns the business code of err, or "" if err is not one.
func Code(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
