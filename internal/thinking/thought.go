// Package thinking implements the thought ledger behind the
// deliberatethinking MCP tool: an append-only history of submitted
// thinking steps plus a branch index keyed by caller-chosen branch IDs.
package thinking

// Thought is one submitted thinking step.
//
// Optional numeric fields use 0 to mean "not provided"; the validator
// guarantees any provided value is >= 1, so the zero value is unambiguous.
type Thought struct {
	// Content is the thought text. Never empty after validation.
	Content string

	// Number is the sequence position asserted by the caller (>= 1).
	Number int

	// Total is the caller's current estimate of total steps needed (>= 1).
	// May change between calls; the ledger only corrects it upward.
	Total int

	// NextNeeded reports whether the caller intends to submit again.
	NextNeeded bool

	// IsRevision marks this thought as reconsidering an earlier one.
	IsRevision bool

	// Revises is the thought number being reconsidered (0 when absent).
	Revises int

	// BranchFrom is the thought number this branch diverges from (0 when absent).
	BranchFrom int

	// BranchID identifies the branch this thought belongs to ("" when absent).
	BranchID string

	// NeedsMore hints that more thoughts are needed beyond the estimate.
	NeedsMore bool
}

// Snapshot is the status summary returned after each successful submission.
type Snapshot struct {
	ThoughtNumber        int      `json:"thoughtNumber"`
	TotalThoughts        int      `json:"totalThoughts"`
	NextThoughtNeeded    bool     `json:"nextThoughtNeeded"`
	Branches             []string `json:"branches"`
	ThoughtHistoryLength int      `json:"thoughtHistoryLength"`
}
