package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden           ErrCode = "FORBIDDEN"
	ErrPrincipalAccessOnly ErrCode = "PRINCIPAL_ACCESS_ONLY"
	ErrTeacherAccessOnly   ErrCode = "TEACHER_ACCESS_ONLY"
	ErrSchoolMismatch      ErrCode = "SCHOOL_MISMATCH"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrInvalidTime    ErrCode = "INVALID_TIME"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrDependencyExists ErrCode = "DEPENDENCY_EXISTS"

	// ─── Timetable ─────────────────────────────────────────────────────
	ErrScheduleConflict ErrCode = "SCHEDULE_CONFLICT"

	// ─── Attendance ────────────────────────────────────────────────────
	ErrDuplicateSession     ErrCode = "DUPLICATE_SESSION"
	ErrStudentNotInClass    ErrCode = "STUDENT_NOT_IN_CLASSROOM"
	ErrPeriodNotInTimetable ErrCode = "PERIOD_NOT_IN_TIMETABLE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."
	case ErrTokenExpired:
		return "The authentication token has expired."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrPrincipalAccessOnly:
		return "This resource is restricted to principals."
	case ErrTeacherAccessOnly:
		return "This resource is restricted to teachers."
	case ErrSchoolMismatch:
		return "The requested resource belongs to a different school."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrInvalidTime:
		return "Time values must be zero-padded 24-hour HH:MM strings."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."
	case ErrDependencyExists:
		return "The record cannot be deleted because other records still reference it."

	// ─── Timetable ─────────────────────────────────────────────────────
	case ErrScheduleConflict:
		return "Two or more periods overlap on this day. The timetable was not saved."

	// ─── Attendance ────────────────────────────────────────────────────
	case ErrDuplicateSession:
		return "Attendance has already been taken for this period and date."
	case ErrStudentNotInClass:
		return "One or more marked students do not belong to this classroom."
	case ErrPeriodNotInTimetable:
		return "The referenced period is not part of this classroom's timetable."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
