package httperr

import "errors"

type Kind int

const (
	KindNotFound Kind = iota
	KindBadRequest
	KindConflict
)

// BusinessError is a validation or state error that maps to a client-visible
// outcome. Message is a human-readable reason and is part of the contract;
// callers display it.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrBadRequest(code, message string) error {
	return BusinessError{Kind: KindBadRequest, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func IsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsKind(err error, kind Kind) bool {
	be, ok := IsBusiness(err)
	return ok && be.Kind == kind
}

func IsCode(err error, code string) bool {
	be, ok := IsBusiness(err)
	return ok && be.Code == code
}
