package services

import (
	"errors"
	"fmt"
)

// Destructive or ambiguous commands return a ConfirmationRequiredError until
// the caller re-invokes them with an explicit affirmative signal. Declining
// leaves all state untouched.
const (
	ActionDeleteRecord        = "delete_record"
	ActionPurgeTrash          = "purge_trash"
	ActionPromoteStage        = "promote_stage"
	ActionSaveWithoutReminder = "save_without_reminder"
	ActionBulkReassign        = "bulk_reassign"
	ActionDeactivateUser      = "deactivate_user"
)

type ConfirmationRequiredError struct {
	Action   string
	Affected int
}

func (err *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("confirmation required for %s (%d affected)", err.Action, err.Affected)
}

// AsConfirmationRequired unwraps a pending confirmation from an error chain.
func AsConfirmationRequired(err error) (*ConfirmationRequiredError, bool) {
	var confirmation *ConfirmationRequiredError
	if errors.As(err, &confirmation) {
		return confirmation, true
	}
	return nil, false
}

// ValidationError blocks a write without committing partial state.
type ValidationError struct {
	Message string
}

func (err *ValidationError) Error() string {
	return err.Message
}

// AsValidationError unwraps a validation failure from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation, true
	}
	return nil, false
}
