package perinat

import "context"

// Approver handles user interaction for approval workflows,
// particularly for the destructive drop-and-recreate of the raw schema.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts user to type database name for confirmation
type Approver interface {
	// RequestApproval prompts for confirmation before dropping and recreating
	// the raw tables of the named database.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - dbName: Name of the database whose raw tables will be rebuilt
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, dbName string) (bool, error)
}
