package response

import (
	"errors"
	"net/http"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/attendance"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/auth"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/category"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/employee"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/leave"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/memo"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/nte"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/schedule"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/survey"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/ticket"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/user"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthEmailUnknown):
		Forbidden(w, "No account registered for this Google email")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Ticket domain errors
	case errors.Is(err, ticket.ErrTicketNotFound):
		NotFound(w, "Ticket not found")

	// Memo domain errors
	case errors.Is(err, memo.ErrMemoNotFound):
		NotFound(w, "Memo not found")

	// Category domain errors
	case errors.Is(err, category.ErrCategoryNotFound):
		NotFound(w, "Category not found")
	case errors.Is(err, category.ErrCategoryExists):
		Conflict(w, "Category already exists in this department")
	case errors.Is(err, category.ErrAssigneeNotFound):
		NotFound(w, "Assignee not found")
	case errors.Is(err, category.ErrAssigneeExists):
		Conflict(w, "Employee is already an assignee")

	// Leave domain errors
	case errors.Is(err, leave.ErrCreditNotFound):
		NotFound(w, "Leave credit record not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrEntryNotFound):
		NotFound(w, "Schedule entry not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Time session not found")
	case errors.Is(err, attendance.ErrAlreadyTimedIn):
		Conflict(w, "An open time session already exists")
	case errors.Is(err, attendance.ErrSessionClosed):
		Conflict(w, "Time session is already closed")
	case errors.Is(err, attendance.ErrNoOpenSession):
		BadRequest(w, "No open time session", nil)

	// Survey domain errors
	case errors.Is(err, survey.ErrSurveyNotFound):
		NotFound(w, "Survey not found")
	case errors.Is(err, survey.ErrAlreadyResponded):
		Conflict(w, "Already responded to this survey")

	// NTE domain errors
	case errors.Is(err, nte.ErrRecordNotFound):
		NotFound(w, "NTE record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
