package dispatch

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError indicates invalid dispatch input: an empty vendor id list
// or a vendor id set that resolves to no vendors.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NotFoundError indicates the referenced RFP does not exist.
type NotFoundError struct {
	RFPID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("RFP not found: %s", e.RFPID)
}

// DispatchError indicates a dispatch with zero successful sends. It carries
// the full failure partition so callers can report exactly which recipients
// were not reached.
type DispatchError struct {
	Message  string
	FailedTo []string
	Skipped  []string
}

func (e *DispatchError) Error() string {
	if len(e.FailedTo) > 0 {
		return fmt.Sprintf("%s (failed: %v)", e.Message, e.FailedTo)
	}
	return e.Message
}
