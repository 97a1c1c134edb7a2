package models

// Domain errors. The HTTP layer maps each type to a status code.

type ErrorUnauthorized struct{ Message string }

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct{ Message string }

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorNotFound struct{ Message string }

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct{ Message string }

func (e ErrorConflict) Error() string { return e.Message }

type ErrorValidation struct{ Message string }

func (e ErrorValidation) Error() string { return e.Message }

// ErrorDependency reports a failing collaborator such as the AI provider.
type ErrorDependency struct {
	Message string
	Err     error
}

func (e ErrorDependency) Error() string { return e.Message }

func (e ErrorDependency) Unwrap() error { return e.Err }

// ErrorConfiguration is a setup problem no request can recover from.
type ErrorConfiguration struct{ Message string }

func (e ErrorConfiguration) Error() string { return e.Message }

type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string { return e.Message }

func (e ErrorInternalServer) Unwrap() error { return e.Err }
