package errors

import "fmt"

// Error is a domain failure carrying a stable code alongside the message.
// Workflow commands return these instead of panicking or raw strings so
// callers can branch with errors.Is and render the code to the user.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any *Error with the same code, so sentinel comparison works
// even when a message was customized via WithMessage.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithMessage returns a copy of e with a more specific message.
func (e *Error) WithMessage(format string, args ...interface{}) *Error {
	return &Error{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// New builds a domain error with the given code.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Sentinel instances for workflow failures.
var (
	ErrVerificationNotFound    = New(VerificationNotFound, "verification not found")
	ErrVerificationResolved    = New(VerificationResolved, "verification already resolved")
	ErrVerificationNotApproved = New(VerificationNotApproved, "verification is not approved")
	ErrReasonRequired          = New(VerificationReasonEmpty, "rejection reason is required")
	ErrCertificateRequired     = New(ValidationRequired, "certificate reference is required")

	ErrReviewNotFound     = New(ReviewNotFound, "review not found")
	ErrDuplicateReview    = New(ReviewAlreadyExists, "verification already has a review")
	ErrInvalidRating      = New(ReviewInvalidRating, "rating must be between 1 and 5")
	ErrReviewTextRequired = New(ReviewTextEmpty, "review text is required")
	ErrNotReviewOwner     = New(ReviewNotOwner, "only the review author may edit it")

	ErrInvalidRole = New(SessionInvalidRole, "unknown role")
	ErrNotLoggedIn = New(SessionNotLoggedIn, "no user is logged in")
)
