package errs

// Categories shared by every layer. Domain and usecase sentinels are created
// with NewKind against one of these so the transport maps them without
// knowing each sentinel.
var (
	ErrValidation    = New("validation failed")
	ErrUnauthorized  = New("unauthorized")
	ErrNotFound      = New("not found")
	ErrConflict      = New("conflict")
	ErrForbidden     = New("forbidden")
	ErrUnprocessable = New("unprocessable")

	// Broken internal invariant. Never recovered from inside a unit of work.
	ErrInvariantViolation = New("invariant violation")

	ErrDatabaseOperationFailed = New("database operation failed")
)
