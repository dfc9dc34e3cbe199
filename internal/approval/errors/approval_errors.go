package approvalerrors

import (
	"fmt"
	"net/http"

	"worknest/internal/shared/apperror"
)

var (
	ErrActionForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to act on this request",
		http.StatusForbidden,
	)

	// ErrDecisionConflict surfaces the audit log's unique index. Two
	// decisions racing on the same request and date land here; the loser
	// retries against the new state.
	ErrDecisionConflict = apperror.New(
		apperror.CodeConflict,
		"A conflicting decision was recorded for this request",
		http.StatusConflict,
	)
)

// InvalidTransition reports that the request's current status does not
// permit the attempted action.
func InvalidTransition(current, action string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("Cannot %s a request in status %s", action, current),
		http.StatusConflict,
	)
}
