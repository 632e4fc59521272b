package taskstack_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-backoffice/pkg/taskstack"
)

func item(id string, status taskstack.Status) taskstack.StackItem {
	return taskstack.StackItem{ID: id, Status: status, TaskName: "search_hotels", AssistantName: "booker"}
}

func ids(stack []taskstack.StackItem) []string {
	out := make([]string, len(stack))
	for i, it := range stack {
		out[i] = it.ID
	}
	return out
}

func TestMerge(t *testing.T) {
	done := "booked room 204"

	tests := []struct {
		name     string
		current  []taskstack.StackItem
		incoming []taskstack.StackItem
		wantIDs  []string
	}{
		{
			name:     "empty current yields incoming",
			incoming: []taskstack.StackItem{item("a", taskstack.StatusQueued), item("b", taskstack.StatusLoading)},
			wantIDs:  []string{"a", "b"},
		},
		{
			name:    "empty incoming keeps current",
			current: []taskstack.StackItem{item("a", taskstack.StatusLoading)},
			wantIDs: []string{"a"},
		},
		{
			name:     "replacement keeps position and new ids append",
			current:  []taskstack.StackItem{item("a", taskstack.StatusLoading), item("b", taskstack.StatusQueued)},
			incoming: []taskstack.StackItem{item("c", taskstack.StatusQueued), item("a", taskstack.StatusSuccess)},
			wantIDs:  []string{"a", "b", "c"},
		},
		{
			name:     "duplicate incoming ids collapse",
			incoming: []taskstack.StackItem{item("x", taskstack.StatusQueued), item("y", taskstack.StatusQueued), item("x", taskstack.StatusLoading)},
			wantIDs:  []string{"x", "y"},
		},
		{
			name:    "both empty",
			wantIDs: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := taskstack.Merge(tc.current, tc.incoming)
			assert.Equal(t, tc.wantIDs, ids(got))
		})
	}

	t.Run("incoming version replaces whole item", func(t *testing.T) {
		current := []taskstack.StackItem{{
			ID: "a", Status: taskstack.StatusLoading, TaskName: "book_hotel",
			AssistantName: "booker", Args: json.RawMessage(`{"hotel":"Ritz"}`),
		}}
		incoming := []taskstack.StackItem{{ID: "a", Status: taskstack.StatusSuccess, Resolution: &done}}

		got := taskstack.Merge(current, incoming)
		require.Len(t, got, 1)
		assert.Equal(t, incoming[0], got[0])
		assert.Empty(t, got[0].TaskName, "fields are not patched from the old version")
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		got := taskstack.Merge(nil, []taskstack.StackItem{item("x", taskstack.StatusQueued), item("x", taskstack.StatusError)})
		require.Len(t, got, 1)
		assert.Equal(t, taskstack.StatusError, got[0].Status)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		current := []taskstack.StackItem{item("a", taskstack.StatusLoading)}
		incoming := []taskstack.StackItem{item("a", taskstack.StatusSuccess)}

		got := taskstack.Merge(current, incoming)
		got[0].TaskName = "changed"

		assert.Equal(t, taskstack.StatusLoading, current[0].Status)
		assert.Equal(t, "search_hotels", incoming[0].TaskName)
	})
}

func TestMergeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	statuses := []taskstack.Status{taskstack.StatusQueued, taskstack.StatusLoading, taskstack.StatusSuccess, taskstack.StatusError}

	randomStack := func() []taskstack.StackItem {
		n := rng.Intn(6)
		seen := map[string]bool{}
		var out []taskstack.StackItem
		for i := 0; i < n; i++ {
			id := fmt.Sprintf("t%d", rng.Intn(8))
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, item(id, statuses[rng.Intn(len(statuses))]))
		}
		return out
	}

	for i := 0; i < 200; i++ {
		current, incoming := randomStack(), randomStack()
		got := taskstack.Merge(current, incoming)

		union := map[string]bool{}
		for _, it := range current {
			union[it.ID] = true
		}
		for _, it := range incoming {
			union[it.ID] = true
		}

		seen := map[string]bool{}
		for _, it := range got {
			require.False(t, seen[it.ID], "duplicate id %s", it.ID)
			seen[it.ID] = true
		}
		require.Len(t, got, len(union))

		for _, in := range incoming {
			for _, it := range got {
				if it.ID == in.ID {
					require.Equal(t, in, it)
				}
			}
		}
	}
}

func TestSettled(t *testing.T) {
	assert.True(t, taskstack.Settled(nil))
	assert.True(t, taskstack.Settled([]taskstack.StackItem{item("a", taskstack.StatusSuccess), item("b", taskstack.StatusError)}))
	assert.False(t, taskstack.Settled([]taskstack.StackItem{item("a", taskstack.StatusSuccess), item("b", taskstack.StatusQueued)}))
	assert.Equal(t, 1, taskstack.Pending([]taskstack.StackItem{item("a", taskstack.StatusSuccess), item("b", taskstack.StatusLoading)}))
}

func TestStatus(t *testing.T) {
	assert.True(t, taskstack.StatusQueued.Valid())
	assert.False(t, taskstack.Status("done").Valid())
	assert.True(t, taskstack.StatusError.Terminal())
	assert.False(t, taskstack.StatusLoading.Terminal())
}
