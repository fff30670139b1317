package scormpack

import "context"

// Approver handles user interaction before an existing archive is replaced.
//
// Implementations:
//   - ForcedApprover: Approves without asking (--force)
//   - InteractiveApprover: Prompts the user for a yes/no answer
//   - NonInteractiveApprover: Approves when no terminal is attached
type Approver interface {
	// RequestApproval asks whether the archive at archivePath may be overwritten.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, archivePath string) (bool, error)
}
