package taskstack

// Merge folds incoming into current by id.
//
// Items of current that reappear in incoming are replaced whole and keep their position.
// Ids seen only in incoming are appended in incoming order. When incoming repeats an id
// the last occurrence wins. Neither argument is modified.
func Merge(current, incoming []StackItem) []StackItem {
	order := make([]string, 0, len(current)+len(incoming))
	byID := make(map[string]StackItem, len(current)+len(incoming))

	for _, item := range current {
		if _, seen := byID[item.ID]; !seen {
			order = append(order, item.ID)
		}
		byID[item.ID] = item
	}
	for _, item := range incoming {
		if _, seen := byID[item.ID]; !seen {
			order = append(order, item.ID)
		}
		byID[item.ID] = item
	}

	merged := make([]StackItem, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}
	return merged
}

// Settled reports whether every item is terminal. An empty stack is settled.
func Settled(stack []StackItem) bool {
	for _, item := range stack {
		if !item.Status.Terminal() {
			return false
		}
	}
	return true
}

// Pending returns the number of items still queued or loading.
func Pending(stack []StackItem) int {
	n := 0
	for _, item := range stack {
		if !item.Status.Terminal() {
			n++
		}
	}
	return n
}
