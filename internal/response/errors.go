package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// Authentication
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// Authorization
	ErrStaffAccessOnly  ErrCode = "STAFF_ACCESS_ONLY"
	ErrPermissionDenied ErrCode = "PERMISSION_DENIED"

	// Validation
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// Resources
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrScreeningNotFound ErrCode = "SCREENING_NOT_FOUND"
	ErrStudentNotFound   ErrCode = "STUDENT_NOT_FOUND"
	ErrProgramNotFound   ErrCode = "PROGRAM_NOT_FOUND"
	ErrDocumentNotFound  ErrCode = "DOCUMENT_NOT_FOUND"
	ErrConflict          ErrCode = "CONFLICT"

	// Rate limiting
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// Server
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Username or password is incorrect."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid or expired."
	case ErrStaffAccessOnly:
		return "This resource is restricted to staff."
	case ErrPermissionDenied:
		return "Permission denied."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrNotFound:
		return "Resource not found."
	case ErrScreeningNotFound:
		return "Screening not found or expired. Please complete the questionnaire again."
	case ErrStudentNotFound:
		return "No student record matches that ID."
	case ErrProgramNotFound:
		return "No aid program with that name is tracked for this case."
	case ErrDocumentNotFound:
		return "That document is not on the checklist for this program."
	case ErrConflict:
		return "Resource already exists."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
