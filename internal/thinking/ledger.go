package thinking

import "sync"

// Ledger is the process-wide store of submitted thoughts.
//
// History is append-only: revisions are represented by appending a new
// thought that references an earlier one, never by mutating history in
// place. Branches are tracked as named sub-sequences of the history,
// listed in first-seen order.
//
// A single mutex covers the whole of Submit, so concurrent tool calls
// never observe a history update without the matching branch update.
type Ledger struct {
	mu          sync.Mutex
	history     []Thought
	branches    map[string][]Thought
	branchOrder []string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		branches: make(map[string][]Thought),
	}
}

// Submit appends a validated thought and returns the resulting snapshot.
//
// If the caller's total-thoughts estimate is below the thought number, the
// estimate is raised to match rather than rejected. Submit cannot fail on
// a validated thought and performs no I/O.
func (l *Ledger) Submit(t Thought) Snapshot {
	if t.Total < t.Number {
		t.Total = t.Number
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.history = append(l.history, t)

	if t.BranchID != "" {
		if _, ok := l.branches[t.BranchID]; !ok {
			l.branchOrder = append(l.branchOrder, t.BranchID)
		}
		l.branches[t.BranchID] = append(l.branches[t.BranchID], t)
	}

	branches := make([]string, len(l.branchOrder))
	copy(branches, l.branchOrder)

	return Snapshot{
		ThoughtNumber:        t.Number,
		TotalThoughts:        t.Total,
		NextThoughtNeeded:    t.NextNeeded,
		Branches:             branches,
		ThoughtHistoryLength: len(l.history),
	}
}

// HistoryLength returns the number of thoughts submitted so far.
func (l *Ledger) HistoryLength() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.history)
}

// History returns a copy of the full thought history in submission order.
func (l *Ledger) History() []Thought {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Thought, len(l.history))
	copy(out, l.history)
	return out
}

// Branch returns a copy of the thoughts recorded under the given branch ID.
// The second return value reports whether the branch exists.
func (l *Ledger) Branch(id string) ([]Thought, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	seq, ok := l.branches[id]
	if !ok {
		return nil, false
	}
	out := make([]Thought, len(seq))
	copy(out, seq)
	return out, true
}

// Branches returns the known branch IDs in first-seen order.
func (l *Ledger) Branches() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.branchOrder))
	copy(out, l.branchOrder)
	return out
}
