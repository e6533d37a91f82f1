package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidRole       = errors.New("role must be admin, hr or employee")
	ErrHRCreationDenied  = errors.New("only admin can create hr users")
	ErrCannotDeleteSelf  = errors.New("cannot delete your own account")
	ErrCannotDeleteAdmin = errors.New("hr cannot delete admin accounts")
	ErrUnauthorized      = errors.New("unauthorized to access this employee")
)
