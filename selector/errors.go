package selector

import "fmt"

// DuplicateError signals that an at-most-once fragment (element, id or
// pseudo-element) was added a second time.
type DuplicateError struct {
	Category Category
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s may occur at most once inside a selector", e.Category)
}

// OrderError signals that a fragment was added after a higher-ranked
// fragment was already present.
type OrderError struct {
	Category Category
	After    Category
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s must come before %s inside a selector", e.Category, e.After)
}
