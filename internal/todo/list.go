package todo

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tada-menu/internal/model"
)

// Validation errors. All of them leave the list unchanged.
var (
	ErrEmptyTitle = errors.New("item text cannot be empty")
	ErrEmptyList  = errors.New("no items to delete")
	ErrNotANumber = errors.New("must be a number")
	ErrNoSuchItem = errors.New("number does not exist")
)

// List is the ordered, in-memory todo list for one session.
// Insertion order defines the 1-based numbering users see.
// The zero value is an empty list ready to use.
type List struct {
	items []model.Item
}

// New returns a list holding the given titles in order. Blank titles are skipped.
func New(titles ...string) *List {
	l := &List{}
	for _, t := range titles {
		_, _ = l.Add(t)
	}
	return l
}

func (l *List) Len() int    { return len(l.items) }
func (l *List) Empty() bool { return len(l.items) == 0 }

// Items returns a copy of the items in list order.
func (l *List) Items() []model.Item {
	return slices.Clone(l.items)
}

// Add trims title and appends it to the end of the list.
func (l *List) Add(title string) (model.Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Item{}, ErrEmptyTitle
	}
	it := model.Item{Title: title}
	l.items = append(l.items, it)
	return it, nil
}

// Remove deletes the item at the 1-based index n and returns it.
// Later items shift down by one position.
func (l *List) Remove(n uint64) (model.Item, error) {
	if l.Empty() {
		return model.Item{}, ErrEmptyList
	}
	if n == 0 || n > uint64(len(l.items)) {
		return model.Item{}, fmt.Errorf("%w: have %d, got %d", ErrNoSuchItem, len(l.items), n)
	}
	idx := int(n - 1)
	it := l.items[idx]
	l.items = slices.Delete(l.items, idx, idx+1)
	return it, nil
}

// ParseIndex parses a user-typed item number. One leading '+' is allowed;
// a minus sign, non-digits and values that overflow are rejected with
// ErrNotANumber. Range is checked by Remove.
func ParseIndex(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "+"), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return n, nil
}
