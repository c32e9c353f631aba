// Package collection holds the observable list of books a view renders.
package collection

import (
	"fmt"

	"bookshelf/internal/book"
	"bookshelf/internal/observable"
	"bookshelf/internal/record"

	"go.uber.org/zap"
)

// BookCollection owns an ordered list of books and notifies its subscribers
// after every change. The zero value is an empty collection that does not
// log. It is not safe for concurrent use.
type BookCollection struct {
	observable.Observable
	books []*book.Book
}

var _ observable.Notifier = (*BookCollection)(nil)

// New creates a collection holding books in the given order.
func New(books []*book.Book, log *zap.Logger) *BookCollection {
	owned := make([]*book.Book, 0, len(books))
	for _, b := range books {
		if b != nil {
			owned = append(owned, b)
		}
	}
	return &BookCollection{
		Observable: *observable.New(log),
		books:      owned,
	}
}

// Get returns the first book whose id matches.
func (c *BookCollection) Get(id int) (*book.Book, bool) {
	for _, b := range c.books {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Add appends b and notifies subscribers. Duplicate ids are not rejected.
func (c *BookCollection) Add(b *book.Book) error {
	if b == nil {
		return fmt.Errorf("add book: %w", record.ErrInvalid)
	}
	c.books = append(c.books, b)
	c.notify()
	return nil
}

// Update merges in onto the book with the same id and notifies subscribers.
func (c *BookCollection) Update(in book.Input) error {
	if in.ID == nil {
		return fmt.Errorf("update book: %w: id is required", record.ErrInvalid)
	}
	b, ok := c.Get(*in.ID)
	if !ok {
		return fmt.Errorf("update book %d: %w", *in.ID, record.ErrNotFound)
	}
	if err := b.Update(in); err != nil {
		return fmt.Errorf("update book %d: %w", *in.ID, err)
	}
	c.notify()
	return nil
}

// Len returns the number of books.
func (c *BookCollection) Len() int {
	return len(c.books)
}

// Books returns the books in collection order. The slice is a copy; the
// books are shared.
func (c *BookCollection) Books() []*book.Book {
	out := make([]*book.Book, len(c.books))
	copy(out, c.books)
	return out
}

// Subscriber failures are logged by the observable and isolated from the
// mutation that triggered them.
func (c *BookCollection) notify() {
	_ = c.NotifySubscribers()
}
