// Package selector builds CSS-like selector strings out of typed fragments,
// enforcing the ordering and cardinality rules of the selector grammar.
package selector

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Category identifies the kind of a selector fragment. Ranks are fixed:
// fragments must appear in non-decreasing Category order within a selector.
type Category int

const (
	CategoryElement Category = iota + 1
	CategoryID
	CategoryClass
	CategoryAttribute
	CategoryPseudoClass
	CategoryPseudoElement

	// categoryCombined marks the result of Combine. It outranks everything
	// so that no fragment can be appended after two selectors are joined.
	categoryCombined
)

func (c Category) String() string {
	switch c {
	case CategoryElement:
		return "element"
	case CategoryID:
		return "id"
	case CategoryClass:
		return "class"
	case CategoryAttribute:
		return "attribute"
	case CategoryPseudoClass:
		return "pseudo-class"
	case CategoryPseudoElement:
		return "pseudo-element"
	case categoryCombined:
		return "combined selector"
	}

	return "<unknown>"
}

// unique reports whether the category may occur at most once per selector.
func (c Category) unique() bool {
	return c == CategoryElement || c == CategoryID || c == CategoryPseudoElement
}

// Fragment is one atomic piece of a selector.
type Fragment struct {
	Category Category
	Value    string
}

func (f Fragment) render(sb *strings.Builder) {
	switch f.Category {
	case CategoryID:
		sb.WriteByte('#')
	case CategoryClass:
		sb.WriteByte('.')
	case CategoryAttribute:
		sb.WriteByte('[')
	case CategoryPseudoClass:
		sb.WriteByte(':')
	case CategoryPseudoElement:
		sb.WriteString("::")
	}

	sb.WriteString(f.Value)

	if f.Category == CategoryAttribute {
		sb.WriteByte(']')
	}
}

// Combinator joins two selectors.
type Combinator string

const (
	Descendant Combinator = " "
	Child      Combinator = ">"
	Adjacent   Combinator = "+"
	Sibling    Combinator = "~"
)

// Builder accumulates selector fragments. It is an immutable value: every
// operation returns a new Builder, so forked chains never share state. The
// zero value is an empty selector.
//
// Once an operation fails, the error sticks and later operations are no-ops
// preserving the first error; Build reports it.
type Builder struct {
	fragments []Fragment

	maxRank Category
	seen    uint8 // presence bitmask for the at-most-once categories

	err error
}

// Element starts a selector with an element fragment.
func Element(name string) Builder {
	return Builder{}.Element(name)
}

// ID starts a selector with an id fragment.
func ID(id string) Builder {
	return Builder{}.ID(id)
}

// Class starts a selector with a class fragment.
func Class(name string) Builder {
	return Builder{}.Class(name)
}

// Attr starts a selector with an attribute fragment.
func Attr(value string) Builder {
	return Builder{}.Attr(value)
}

// PseudoClass starts a selector with a pseudo-class fragment.
func PseudoClass(name string) Builder {
	return Builder{}.PseudoClass(name)
}

// PseudoElement starts a selector with a pseudo-element fragment.
func PseudoElement(name string) Builder {
	return Builder{}.PseudoElement(name)
}

// Element appends an element fragment, rendered as the bare tag name.
func (b Builder) Element(name string) Builder {
	return b.add(CategoryElement, name)
}

// ID appends an id fragment, rendered as "#id".
func (b Builder) ID(id string) Builder {
	return b.add(CategoryID, id)
}

// Class appends a class fragment, rendered as ".name".
func (b Builder) Class(name string) Builder {
	return b.add(CategoryClass, name)
}

// Attr appends an attribute fragment, rendered as "[value]".
func (b Builder) Attr(value string) Builder {
	return b.add(CategoryAttribute, value)
}

// PseudoClass appends a pseudo-class fragment, rendered as ":name".
func (b Builder) PseudoClass(name string) Builder {
	return b.add(CategoryPseudoClass, name)
}

// PseudoElement appends a pseudo-element fragment, rendered as "::name".
func (b Builder) PseudoElement(name string) Builder {
	return b.add(CategoryPseudoElement, name)
}

func (b Builder) add(c Category, value string) Builder {
	if b.err != nil {
		return b
	}

	if c.unique() && b.seen&(1<<c) != 0 {
		b.err = &DuplicateError{Category: c}
		return b
	}
	if c < b.maxRank {
		b.err = &OrderError{Category: c, After: b.maxRank}
		return b
	}

	// Clone so that forks of the same chain never share a backing array.
	b.fragments = append(slices.Clone(b.fragments), Fragment{
		Category: c,
		Value:    value,
	})

	if c > b.maxRank {
		b.maxRank = c
	}
	if c.unique() {
		b.seen |= 1 << c
	}

	return b
}

// Combine joins two built selectors with a combinator. The result is itself
// a Builder and may be used as an operand of another Combine, but no further
// fragments can be appended to it. The combinator token is not validated.
func Combine(left Builder, comb Combinator, right Builder) Builder {
	if left.err != nil {
		return left
	}
	if right.err != nil {
		return right
	}

	var sb strings.Builder

	left.renderTo(&sb)
	if comb == Descendant {
		sb.WriteByte(' ')
	} else {
		sb.WriteByte(' ')
		sb.WriteString(string(comb))
		sb.WriteByte(' ')
	}
	right.renderTo(&sb)

	return Builder{
		fragments: []Fragment{{Category: categoryCombined, Value: sb.String()}},
		maxRank:   categoryCombined,
	}
}

// Build renders the selector. It is a pure projection: calling it any number
// of times yields the same result and never mutates the builder.
func (b Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	var sb strings.Builder
	b.renderTo(&sb)

	return sb.String(), nil
}

// String renders the selector, or returns the empty string if any operation
// on the chain has failed.
func (b Builder) String() string {
	s, err := b.Build()
	if err != nil {
		return ""
	}

	return s
}

// Err returns the first error recorded on the chain, if any.
func (b Builder) Err() error {
	return b.err
}

func (b Builder) renderTo(sb *strings.Builder) {
	for _, f := range b.fragments {
		f.render(sb)
	}
}
