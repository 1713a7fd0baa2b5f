package entity

// ErrorKind buckets domain errors for HTTP status mapping. The mapping
// itself lives in the HTTP layer; everything below it works with
// errors.Is against the sentinel values.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

var (
	ErrAlreadyClockedIn = &DomainError{Kind: KindConflict, Code: "AlreadyClockedIn", Message: "you are already clocked in"}
	ErrNotClockedIn     = &DomainError{Kind: KindConflict, Code: "NotClockedIn", Message: "you are not clocked in"}
	ErrAlreadyCompleted = &DomainError{Kind: KindConflict, Code: "AlreadyCompleted", Message: "this time entry is already completed"}

	ErrInvalidDateRange = &DomainError{Kind: KindValidation, Code: "InvalidDateRange", Message: "end date must not be before start date"}
	ErrNotPending       = &DomainError{Kind: KindConflict, Code: "NotPending", Message: "only pending leave requests can be processed"}
	ErrNotOwner         = &DomainError{Kind: KindForbidden, Code: "NotOwner", Message: "not authorized to update this leave request"}
	ErrNotAuthorized    = &DomainError{Kind: KindForbidden, Code: "NotAuthorized", Message: "not authorized to perform this action"}

	ErrUnauthenticated = &DomainError{Kind: KindUnauthenticated, Code: "AuthenticationRequired", Message: "authentication required"}
	ErrForbidden       = &DomainError{Kind: KindForbidden, Code: "AuthorizationDenied", Message: "insufficient permissions"}
	ErrNotFound        = &DomainError{Kind: KindNotFound, Code: "NotFound", Message: "record not found"}

	ErrUsernameTaken      = &DomainError{Kind: KindValidation, Code: "UsernameTaken", Message: "username already exists"}
	ErrInvalidCredentials = &DomainError{Kind: KindUnauthenticated, Code: "InvalidCredentials", Message: "invalid username or password"}
)
