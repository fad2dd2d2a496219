package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// Front-ends map these codes to display messages.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationRequired     = "VALIDATION_REQUIRED"      // required field missing
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE" // value outside allowed range
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed input

	// ==================== Verification (VERIFICATION_) ====================
	VerificationNotFound    = "VERIFICATION_NOT_FOUND"    // no verification with that id
	VerificationResolved    = "VERIFICATION_RESOLVED"     // already approved or rejected
	VerificationNotApproved = "VERIFICATION_NOT_APPROVED" // review requires approved status
	VerificationReasonEmpty = "VERIFICATION_REASON_EMPTY" // rejection needs a reason

	// ==================== Review (REVIEW_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"      // no review with that id
	ReviewAlreadyExists = "REVIEW_ALREADY_EXISTS" // verification already reviewed
	ReviewInvalidRating = "REVIEW_INVALID_RATING" // rating outside 1-5
	ReviewTextEmpty     = "REVIEW_TEXT_EMPTY"     // review body required
	ReviewNotOwner      = "REVIEW_NOT_OWNER"      // only the author may edit

	// ==================== Session (SESSION_) ====================
	SessionInvalidRole = "SESSION_INVALID_ROLE" // unknown login role
	SessionNotLoggedIn = "SESSION_NOT_LOGGED_IN"

	// ==================== Storage (STORAGE_) ====================
	StorageCorrupt     = "STORAGE_CORRUPT"     // snapshot blob failed to parse
	StorageUnavailable = "STORAGE_UNAVAILABLE" // backend not reachable
)
