package thinking

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmitFirstThought(t *testing.T) {
	l := NewLedger()

	snap := l.Submit(Thought{Content: "start", Number: 1, Total: 3, NextNeeded: true})

	require.Equal(t, 1, snap.ThoughtNumber)
	require.Equal(t, 3, snap.TotalThoughts)
	require.True(t, snap.NextThoughtNeeded)
	require.Empty(t, snap.Branches)
	require.NotNil(t, snap.Branches, "branches must serialize as [], not null")
	require.Equal(t, 1, snap.ThoughtHistoryLength)
}

func TestSubmitCorrectsTotalEstimate(t *testing.T) {
	l := NewLedger()

	snap := l.Submit(Thought{Content: "x", Number: 5, Total: 2, NextNeeded: false})

	require.Equal(t, 5, snap.ThoughtNumber)
	require.Equal(t, 5, snap.TotalThoughts, "estimate below the thought number is raised, not rejected")
	require.False(t, snap.NextThoughtNeeded)
	require.Equal(t, 1, snap.ThoughtHistoryLength)

	// The correction is persisted in history, not just echoed.
	history := l.History()
	require.Len(t, history, 1)
	require.Equal(t, 5, history[0].Total)
}

func TestSubmitHistoryGrowsMonotonically(t *testing.T) {
	l := NewLedger()

	for i := 1; i <= 10; i++ {
		snap := l.Submit(Thought{Content: fmt.Sprintf("step %d", i), Number: i, Total: 10, NextNeeded: i < 10})
		require.Equal(t, i, snap.ThoughtHistoryLength)
	}
	require.Equal(t, 10, l.HistoryLength())
}

func TestSubmitBranching(t *testing.T) {
	l := NewLedger()

	l.Submit(Thought{Content: "start", Number: 1, Total: 3, NextNeeded: true})

	snap := l.Submit(Thought{
		Content:    "alt",
		Number:     2,
		Total:      3,
		NextNeeded: true,
		BranchFrom: 1,
		BranchID:   "alpha",
	})
	require.Equal(t, []string{"alpha"}, snap.Branches)
	require.Equal(t, 2, snap.ThoughtHistoryLength, "branch thoughts land in history too")

	branch, ok := l.Branch("alpha")
	require.True(t, ok)
	require.Len(t, branch, 1)
	require.Equal(t, "alt", branch[0].Content)

	// Second thought on the same branch extends it without duplicating the ID.
	snap = l.Submit(Thought{Content: "alt2", Number: 3, Total: 3, NextNeeded: false, BranchFrom: 1, BranchID: "alpha"})
	require.Equal(t, []string{"alpha"}, snap.Branches)
	branch, ok = l.Branch("alpha")
	require.True(t, ok)
	require.Len(t, branch, 2)
}

func TestBranchOrderIsFirstSeen(t *testing.T) {
	l := NewLedger()

	l.Submit(Thought{Content: "a", Number: 1, Total: 3, NextNeeded: true, BranchFrom: 1, BranchID: "b1"})
	l.Submit(Thought{Content: "b", Number: 2, Total: 3, NextNeeded: true, BranchFrom: 1, BranchID: "b2"})
	snap := l.Submit(Thought{Content: "c", Number: 3, Total: 3, NextNeeded: false})

	require.Equal(t, []string{"b1", "b2"}, snap.Branches)
	require.Equal(t, []string{"b1", "b2"}, l.Branches())

	// Revisiting b1 must not move it to the back.
	snap = l.Submit(Thought{Content: "d", Number: 4, Total: 4, NextNeeded: false, BranchFrom: 1, BranchID: "b1"})
	require.Equal(t, []string{"b1", "b2"}, snap.Branches)
}

func TestSubmitRevisionAppendsNewRecord(t *testing.T) {
	l := NewLedger()

	l.Submit(Thought{Content: "first", Number: 1, Total: 2, NextNeeded: true})
	snap := l.Submit(Thought{
		Content:    "actually, reconsider",
		Number:     2,
		Total:      2,
		NextNeeded: false,
		IsRevision: true,
		Revises:    1,
	})

	// Revisions never mutate history in place.
	require.Equal(t, 2, snap.ThoughtHistoryLength)
	history := l.History()
	require.Equal(t, "first", history[0].Content)
	require.Equal(t, 1, history[1].Revises)
}

func TestSubmitUnknownBranchAbsent(t *testing.T) {
	l := NewLedger()
	l.Submit(Thought{Content: "plain", Number: 1, Total: 1, NextNeeded: false})

	_, ok := l.Branch("nope")
	require.False(t, ok)
}

func TestSnapshotBranchesIsACopy(t *testing.T) {
	l := NewLedger()
	snap := l.Submit(Thought{Content: "a", Number: 1, Total: 1, NextNeeded: true, BranchFrom: 1, BranchID: "b1"})

	snap.Branches[0] = "mutated"
	require.Equal(t, []string{"b1"}, l.Branches())
}

func TestSubmitConcurrent(t *testing.T) {
	l := NewLedger()

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 1; i <= perWorker; i++ {
				l.Submit(Thought{
					Content:    "concurrent",
					Number:     i,
					Total:      perWorker,
					NextNeeded: true,
					BranchFrom: 1,
					BranchID:   fmt.Sprintf("worker-%d", w),
				})
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, l.HistoryLength())
	require.Len(t, l.Branches(), workers)
	for w := 0; w < workers; w++ {
		branch, ok := l.Branch(fmt.Sprintf("worker-%d", w))
		require.True(t, ok)
		require.Len(t, branch, perWorker)
	}
}
